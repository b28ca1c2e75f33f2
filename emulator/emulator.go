// Package emulator drives the SM83 arithmetic core with assembled scripts:
// register presets and decoded instructions, stepped one at a time with
// source line tracking for runtime errors.
package emulator

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/gbcore/sm83/cpu"
	"github.com/gbcore/sm83/internal"
)

const (
	PROGRAM_LIMIT = 4096 // Maximum steps in a single program.
)

var _emulator_defines = map[string]string{
	"PROGRAM_LIMIT": fmt.Sprintf("%v", PROGRAM_LIMIT),
}

// Emulator state. CPU + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Pc int // Index of the next step in the program.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset zeroes the register file and restarts the program.
func (emu *Emulator) Reset() (err error) {
	if len(emu.Program.Opcodes) > PROGRAM_LIMIT {
		err = ErrProgramTooLong
		return
	}

	if emu.Verbose {
		log.Printf("emulator: reset, %v steps", len(emu.Program.Opcodes))
	}

	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Pc = 0

	return
}

// LineNo returns the source line number for the current step.
func (emu *Emulator) LineNo() int {
	return emu.Program.LineNo(emu.Pc)
}

// Tick performs a single step of the program.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	if emu.Pc >= len(emu.Program.Opcodes) {
		done = true
		return
	}

	op := emu.Program.Opcodes[emu.Pc]
	emu.Pc++

	switch {
	case op.Preset != nil:
		if emu.Verbose {
			log.Printf("emulator: %v <- %#02x", op.Preset.Target, op.Preset.Value)
		}
		emu.Cpu.Registers.Write(op.Preset.Target, op.Preset.Value)
	case op.Inst != nil:
		err = emu.Cpu.Execute(*op.Inst)
	}

	return
}

// Run executes the program to completion.
func (emu *Emulator) Run() (err error) {
	for {
		var done bool
		done, err = emu.Tick()
		if err != nil || done {
			return
		}
	}
}
