package cpu

// Flag bit positions in the F register byte.
// The low nibble is unused and always reads as zero.
const (
	FLAG_ZERO       = uint8(1 << 7) // Result was zero
	FLAG_SUBTRACT   = uint8(1 << 6) // Last operation subtracted
	FLAG_HALF_CARRY = uint8(1 << 5) // Carry or borrow across the bit 3/4 boundary
	FLAG_CARRY      = uint8(1 << 4) // Unsigned overflow or underflow
)

// Flags is the unpacked view of the F register.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// FlagsFromByte decodes an F register byte. Low nibble bits are discarded.
func FlagsFromByte(value uint8) Flags {
	return Flags{
		Zero:      (value & FLAG_ZERO) != 0,
		Subtract:  (value & FLAG_SUBTRACT) != 0,
		HalfCarry: (value & FLAG_HALF_CARRY) != 0,
		Carry:     (value & FLAG_CARRY) != 0,
	}
}

// Byte encodes the flags into an F register byte with a zero low nibble.
func (flags Flags) Byte() (value uint8) {
	if flags.Zero {
		value |= FLAG_ZERO
	}
	if flags.Subtract {
		value |= FLAG_SUBTRACT
	}
	if flags.HalfCarry {
		value |= FLAG_HALF_CARRY
	}
	if flags.Carry {
		value |= FLAG_CARRY
	}

	return
}
