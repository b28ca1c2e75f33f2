package cpu

// Registers is the SM83 register file: seven eight-bit registers plus the
// flag register. The sixteen-bit pair views are computed, not stored.
type Registers struct {
	A uint8 // Accumulator
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
	F Flags // Flag register
}

// NewRegisters creates a register file with every register and flag zeroed.
func NewRegisters() *Registers {
	return &Registers{}
}

// unfold splits a sixteen-bit value into its high and low bytes.
func unfold(value uint16) (hi uint8, lo uint8) {
	hi = uint8(value >> 8)
	lo = uint8(value & 0x00ff)
	return
}

// fold joins a high and low byte into a sixteen-bit value, high byte first.
func fold(hi uint8, lo uint8) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}

// Read returns the value of the selected register.
func (regs *Registers) Read(target Target) uint8 {
	switch target {
	case TARGET_A:
		return regs.A
	case TARGET_B:
		return regs.B
	case TARGET_C:
		return regs.C
	case TARGET_D:
		return regs.D
	case TARGET_E:
		return regs.E
	case TARGET_H:
		return regs.H
	case TARGET_L:
		return regs.L
	default:
		panic("unknown target")
	}
}

// Write overwrites the selected register.
func (regs *Registers) Write(target Target, value uint8) {
	switch target {
	case TARGET_A:
		regs.A = value
	case TARGET_B:
		regs.B = value
	case TARGET_C:
		regs.C = value
	case TARGET_D:
		regs.D = value
	case TARGET_E:
		regs.E = value
	case TARGET_H:
		regs.H = value
	case TARGET_L:
		regs.L = value
	default:
		panic("unknown target")
	}
}

// GetPair returns the folded sixteen-bit view of a register pair.
func (regs *Registers) GetPair(pair Pair) uint16 {
	switch pair {
	case PAIR_AF:
		return fold(regs.A, regs.F.Byte())
	case PAIR_BC:
		return fold(regs.B, regs.C)
	case PAIR_DE:
		return fold(regs.D, regs.E)
	case PAIR_HL:
		return fold(regs.H, regs.L)
	default:
		panic("unknown pair")
	}
}

// SetPair unfolds a sixteen-bit value into the pair's two registers.
// Writing AF decodes the low byte into the flag register, discarding its
// low nibble.
func (regs *Registers) SetPair(pair Pair, value uint16) {
	hi, lo := unfold(value)

	switch pair {
	case PAIR_AF:
		regs.A = hi
		regs.F = FlagsFromByte(lo)
	case PAIR_BC:
		regs.B = hi
		regs.C = lo
	case PAIR_DE:
		regs.D = hi
		regs.E = lo
	case PAIR_HL:
		regs.H = hi
		regs.L = lo
	default:
		panic("unknown pair")
	}
}
