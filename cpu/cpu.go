package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"FLAG_ZERO":       fmt.Sprintf("0x%02x", FLAG_ZERO),
	"FLAG_SUBTRACT":   fmt.Sprintf("0x%02x", FLAG_SUBTRACT),
	"FLAG_HALF_CARRY": fmt.Sprintf("0x%02x", FLAG_HALF_CARRY),
	"FLAG_CARRY":      fmt.Sprintf("0x%02x", FLAG_CARRY),
}

// Cpu is the execution engine. It owns the register file and commits the
// result and flag side effects of each executed instruction.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Registers *Registers // Register file, exclusively owned by this CPU.
}

// NewCpu creates a CPU with a zeroed register file.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Registers: NewRegisters(),
	}

	return
}

// Defines for the cpu.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset zeroes the register file.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	*cpu.Registers = Registers{}
}

// String returns the current register state as a string.
func (cpu *Cpu) String() (text string) {
	regs := cpu.Registers

	names := []string{
		"a", "b", "c", "d", "e", "h", "l",
		"f",
		"af", "bc", "de", "hl",
	}
	for _, name := range names {
		var strval string
		switch name {
		case "a", "b", "c", "d", "e", "h", "l":
			target := targetMap[name]
			strval = fmt.Sprintf("%02X", regs.Read(target))
		case "f":
			flags := regs.F
			strval = fmt.Sprintf("%02X [z:%v n:%v h:%v c:%v]",
				flags.Byte(), flags.Zero, flags.Subtract, flags.HalfCarry, flags.Carry)
		case "af", "bc", "de", "hl":
			pair := pairMap[name]
			strval = fmt.Sprintf("%04X", regs.GetPair(pair))
		}
		text += fmt.Sprintf("% 3s: %v\n", name, strval)
	}

	return
}

// Execute executes a single decoded instruction against the register file.
// The committed register and flag mutation is the only side effect. An
// operation family with no execution routine returns an error wrapping the
// instruction, and the register file is left untouched.
func (cpu *Cpu) Execute(inst Instruction) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst), err)
		}
	}()
	if cpu.Verbose {
		log.Printf("cpu: %v", inst)
	}

	regs := cpu.Registers

	switch inst.Op {
	case OP_ADD:
		regs.A, regs.F = cpu.add(inst.Target)
	case OP_ADC:
		regs.A, regs.F = cpu.addWithCarry(inst.Target)
	case OP_SUB:
		regs.A, regs.F = cpu.subtract(inst.Target)
	case OP_SBC:
		regs.A, regs.F = cpu.subtractWithCarry(inst.Target)
	case OP_AND:
		regs.A, regs.F = cpu.and(inst.Target)
	case OP_OR:
		regs.A, regs.F = cpu.or(inst.Target)
	case OP_XOR:
		regs.A, regs.F = cpu.xor(inst.Target)
	case OP_CP:
		// Subtraction flags without the result commit.
		_, regs.F = cpu.subtract(inst.Target)
	case OP_INC:
		value, flags := cpu.increment(inst.Target)
		regs.Write(inst.Target, value)
		regs.F = flags
	case OP_DEC:
		value, flags := cpu.decrement(inst.Target)
		regs.Write(inst.Target, value)
		regs.F = flags
	case OP_SWAP:
		value, flags := cpu.swap(inst.Target)
		regs.Write(inst.Target, value)
		regs.F = flags
	default:
		err = ErrOpcodeUnimplemented
		return
	}

	return
}

// add computes A plus the target register.
func (cpu *Cpu) add(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers
	operand := regs.Read(target)

	sum := uint16(regs.A) + uint16(operand)
	value = uint8(sum)
	flags = Flags{
		Zero:      value == 0,
		Subtract:  false,
		HalfCarry: (regs.A&0xf)+(operand&0xf) > 0xf,
		Carry:     sum > 0xff,
	}

	return
}

// addWithCarry computes A plus the target register plus the incoming carry.
// Half-carry considers only the operand nibbles, not the carry in.
func (cpu *Cpu) addWithCarry(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers
	operand := regs.Read(target)

	var carry uint16
	if regs.F.Carry {
		carry = 1
	}

	sum := uint16(regs.A) + uint16(operand) + carry
	value = uint8(sum)
	flags = Flags{
		Zero:      value == 0,
		Subtract:  false,
		HalfCarry: (regs.A&0xf)+(operand&0xf) > 0xf,
		Carry:     sum > 0xff,
	}

	return
}

// subtract computes A minus the target register. Also supplies the flag
// state for cp, which discards the value.
func (cpu *Cpu) subtract(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers
	operand := regs.Read(target)

	value = regs.A - operand
	flags = Flags{
		Zero:      value == 0,
		Subtract:  true,
		HalfCarry: (regs.A & 0xf) < (operand & 0xf),
		Carry:     regs.A < operand,
	}

	return
}

// subtractWithCarry computes A minus (operand minus the incoming carry).
// The inner subtraction wraps as an eight-bit quantity, so an operand of 0
// with carry set borrows as 0xff.
func (cpu *Cpu) subtractWithCarry(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers
	operand := regs.Read(target)

	var carry uint8
	if regs.F.Carry {
		carry = 1
	}

	borrowed := operand - carry
	value = regs.A - borrowed
	flags = Flags{
		Zero:      value == 0,
		Subtract:  true,
		HalfCarry: (regs.A & 0xf) < (operand & 0xf),
		Carry:     regs.A < borrowed,
	}

	return
}

// and computes A bitwise-and the target register. Half-carry is fixed true.
func (cpu *Cpu) and(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers

	value = regs.A & regs.Read(target)
	flags = Flags{
		Zero:      value == 0,
		Subtract:  false,
		HalfCarry: true,
		Carry:     false,
	}

	return
}

// or computes A bitwise-or the target register.
func (cpu *Cpu) or(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers

	value = regs.A | regs.Read(target)
	flags = Flags{
		Zero:      value == 0,
		Subtract:  false,
		HalfCarry: false,
		Carry:     false,
	}

	return
}

// xor computes A bitwise-xor the target register.
func (cpu *Cpu) xor(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers

	value = regs.A ^ regs.Read(target)
	flags = Flags{
		Zero:      value == 0,
		Subtract:  false,
		HalfCarry: false,
		Carry:     false,
	}

	return
}

// increment computes the target register plus one, wrapping. The carry flag
// passes through untouched. Half-carry is computed from the accumulator
// nibble even when the target is another register; this quirk is kept
// bit-compatible with the behavior this core reproduces.
func (cpu *Cpu) increment(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers

	value = regs.Read(target) + 1
	flags = Flags{
		Zero:      value == 0,
		Subtract:  false,
		HalfCarry: (regs.A&0xf)+1 > 0xf,
		Carry:     regs.F.Carry,
	}

	return
}

// decrement computes the target register minus one, wrapping. The carry
// flag passes through untouched. Half-carry reads the accumulator nibble,
// as in increment.
func (cpu *Cpu) decrement(target Target) (value uint8, flags Flags) {
	regs := cpu.Registers

	value = regs.Read(target) - 1
	flags = Flags{
		Zero:      value == 0,
		Subtract:  true,
		HalfCarry: (regs.A & 0xf) == 0,
		Carry:     regs.F.Carry,
	}

	return
}

// swap exchanges the two nibbles of the target register. Every flag is
// cleared, even when the result is zero.
func (cpu *Cpu) swap(target Target) (value uint8, flags Flags) {
	operand := cpu.Registers.Read(target)

	value = operand<<4 | operand>>4
	flags = Flags{}

	return
}
