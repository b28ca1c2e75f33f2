package cpu

import (
	"iter"
	"strings"
)

// Preset is a direct register write applied by the driver before execution
// reaches the following instructions. Presets are debug access to the
// register file, not instructions; they never touch the flag register.
type Preset struct {
	Target Target
	Value  uint8
}

// Opcode represents a line of assembled script with its source location and
// the step it generated. Exactly one of Inst or Preset is set.
type Opcode struct {
	LineNo int
	Words  []string
	Inst   *Instruction
	Preset *Preset
}

// String returns the source form of the assembled line.
func (op Opcode) String() string {
	return strings.Join(op.Words, " ")
}

// Program is an assembled driver script.
type Program struct {
	Opcodes []Opcode
}

// Steps iterates over the assembled steps in execution order.
func (prog *Program) Steps() iter.Seq2[int, Opcode] {
	return func(yield func(int, Opcode) bool) {
		for n, op := range prog.Opcodes {
			if !yield(n, op) {
				return
			}
		}
	}
}

// LineNo returns the source line for a step index, or 0 when the index is
// outside the program.
func (prog *Program) LineNo(index int) int {
	if index < 0 || index >= len(prog.Opcodes) {
		return 0
	}

	return prog.Opcodes[index].LineNo
}
