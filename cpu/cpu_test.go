package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeCpu(a uint8, flags Flags) *Cpu {
	cpu := NewCpu()
	cpu.Registers.A = a
	cpu.Registers.F = flags
	return cpu
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		a     uint8
		value uint8
		want  uint8
		flags Flags
	}{
		{"simple", 10, 5, 15, Flags{}},
		{"half_carry", 0x0f, 0x01, 0x10, Flags{HalfCarry: true}},
		{"carry", 0xff, 0x01, 0x00, Flags{Zero: true, HalfCarry: true, Carry: true}},
		{"carry_no_half", 0xf0, 0x10, 0x00, Flags{Zero: true, Carry: true}},
	}

	for _, entry := range table {
		cpu := makeCpu(entry.a, Flags{})
		cpu.Registers.B = entry.value

		err := cpu.Execute(MakeInstruction(OP_ADD, TARGET_B))
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, cpu.Registers.A, entry.name)
		assert.Equal(entry.flags, cpu.Registers.F, entry.name)
	}
}

func TestAddEveryTarget(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.B = 1
	cpu.Registers.C = 2
	cpu.Registers.D = 3
	cpu.Registers.E = 4
	cpu.Registers.H = 5
	cpu.Registers.L = 6

	table := []struct {
		target Target
		want   uint8
	}{
		{TARGET_B, 11},
		{TARGET_C, 12},
		{TARGET_D, 13},
		{TARGET_E, 14},
		{TARGET_H, 15},
		{TARGET_L, 16},
	}
	for _, entry := range table {
		cpu.Registers.A = 10
		err := cpu.Execute(MakeInstruction(OP_ADD, entry.target))
		assert.NoError(err, entry.target.String())
		assert.Equal(entry.want, cpu.Registers.A, entry.target.String())
	}

	// add.a doubles the accumulator.
	cpu.Registers.A = 10
	err := cpu.Execute(MakeInstruction(OP_ADD, TARGET_A))
	assert.NoError(err)
	assert.Equal(uint8(20), cpu.Registers.A)
}

func TestAddWithCarry(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name    string
		a       uint8
		value   uint8
		carryIn bool
		want    uint8
		flags   Flags
	}{
		{"no_carry_in", 0x10, 0x05, false, 0x15, Flags{}},
		{"carry_in", 0x10, 0x05, true, 0x16, Flags{}},
		{"wrap_to_zero", 0xfe, 0x01, true, 0x00, Flags{Zero: true, Carry: true}},
		{"max_operands", 0xff, 0xff, true, 0xff, Flags{HalfCarry: true, Carry: true}},
		// Half-carry considers only the operand nibbles, not the carry in.
		{"half_carry_excludes_carry_in", 0x0f, 0x00, true, 0x10, Flags{}},
	}

	for _, entry := range table {
		cpu := makeCpu(entry.a, Flags{Carry: entry.carryIn})
		cpu.Registers.C = entry.value

		err := cpu.Execute(MakeInstruction(OP_ADC, TARGET_C))
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, cpu.Registers.A, entry.name)
		assert.Equal(entry.flags, cpu.Registers.F, entry.name)
	}
}

func TestSubtract(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		a     uint8
		value uint8
		want  uint8
		flags Flags
	}{
		{"simple", 15, 5, 10, Flags{Subtract: true}},
		{"zero", 5, 5, 0, Flags{Zero: true, Subtract: true}},
		{"half_borrow", 0x10, 0x01, 0x0f, Flags{Subtract: true, HalfCarry: true}},
		{"underflow", 0x00, 0x01, 0xff, Flags{Subtract: true, HalfCarry: true, Carry: true}},
	}

	for _, entry := range table {
		cpu := makeCpu(entry.a, Flags{})
		cpu.Registers.E = entry.value

		err := cpu.Execute(MakeInstruction(OP_SUB, TARGET_E))
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, cpu.Registers.A, entry.name)
		assert.Equal(entry.flags, cpu.Registers.F, entry.name)
	}
}

func TestSubtractWithCarry(t *testing.T) {
	assert := assert.New(t)

	cpu := makeCpu(0x10, Flags{Carry: true})
	cpu.Registers.B = 0x05

	err := cpu.Execute(MakeInstruction(OP_SBC, TARGET_B))
	assert.NoError(err)
	assert.Equal(uint8(0x0c), cpu.Registers.A)
	assert.Equal(Flags{Subtract: true, HalfCarry: true}, cpu.Registers.F)
}

func TestSubtractWithCarryWrapsBorrowedOperand(t *testing.T) {
	assert := assert.New(t)

	// Operand 0 with carry set borrows as 0xff.
	cpu := makeCpu(0x05, Flags{Carry: true})
	cpu.Registers.B = 0x00

	err := cpu.Execute(MakeInstruction(OP_SBC, TARGET_B))
	assert.NoError(err)
	assert.Equal(uint8(0x06), cpu.Registers.A)
	assert.Equal(Flags{Subtract: true, Carry: true}, cpu.Registers.F)
}

func TestLogic(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name  string
		op    Operation
		a     uint8
		value uint8
		want  uint8
		flags Flags
	}{
		{"and", OP_AND, 0b1100, 0b1010, 0b1000, Flags{HalfCarry: true}},
		{"and_zero", OP_AND, 0xf0, 0x0f, 0x00, Flags{Zero: true, HalfCarry: true}},
		{"or", OP_OR, 0b1100, 0b1010, 0b1110, Flags{}},
		{"or_zero", OP_OR, 0x00, 0x00, 0x00, Flags{Zero: true}},
		{"xor", OP_XOR, 0xff, 0x0f, 0xf0, Flags{}},
		{"xor_zero", OP_XOR, 0xaa, 0xaa, 0x00, Flags{Zero: true}},
	}

	for _, entry := range table {
		// Pre-set flags are fully overwritten.
		cpu := makeCpu(entry.a, Flags{Subtract: true, Carry: true})
		cpu.Registers.H = entry.value

		err := cpu.Execute(MakeInstruction(entry.op, TARGET_H))
		assert.NoError(err, entry.name)
		assert.Equal(entry.want, cpu.Registers.A, entry.name)
		assert.Equal(entry.flags, cpu.Registers.F, entry.name)
	}
}

func TestCompareNeverMutatesA(t *testing.T) {
	assert := assert.New(t)

	for _, a := range []uint8{0x00, 0x05, 0x10, 0x80, 0xff} {
		for _, value := range []uint8{0x00, 0x01, 0x05, 0x0f, 0xff} {
			cpu := makeCpu(a, Flags{})
			cpu.Registers.C = value
			err := cpu.Execute(MakeInstruction(OP_CP, TARGET_C))
			assert.NoError(err)
			assert.Equal(a, cpu.Registers.A)

			// Flags match the subtraction it did not commit.
			sub := makeCpu(a, Flags{})
			sub.Registers.C = value
			err = sub.Execute(MakeInstruction(OP_SUB, TARGET_C))
			assert.NoError(err)
			assert.Equal(sub.Registers.F, cpu.Registers.F)
		}
	}
}

func TestIncrementDecrementRoundTrip(t *testing.T) {
	assert := assert.New(t)

	for _, carry := range []bool{false, true} {
		for v := range 255 {
			cpu := NewCpu()
			cpu.Registers.F.Carry = carry
			cpu.Registers.D = uint8(v)

			err := cpu.Execute(MakeInstruction(OP_INC, TARGET_D))
			assert.NoError(err)
			assert.Equal(uint8(v+1), cpu.Registers.D)
			assert.Equal(carry, cpu.Registers.F.Carry)

			err = cpu.Execute(MakeInstruction(OP_DEC, TARGET_D))
			assert.NoError(err)
			assert.Equal(uint8(v), cpu.Registers.D)
			assert.Equal(carry, cpu.Registers.F.Carry)
		}
	}
}

func TestIncrementDecrementWrap(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Registers.L = 0xff

	err := cpu.Execute(MakeInstruction(OP_INC, TARGET_L))
	assert.NoError(err)
	assert.Equal(uint8(0x00), cpu.Registers.L)
	assert.True(cpu.Registers.F.Zero)
	assert.False(cpu.Registers.F.Subtract)

	err = cpu.Execute(MakeInstruction(OP_DEC, TARGET_L))
	assert.NoError(err)
	assert.Equal(uint8(0xff), cpu.Registers.L)
	assert.False(cpu.Registers.F.Zero)
	assert.True(cpu.Registers.F.Subtract)
}

func TestIncrementHalfCarryReadsAccumulator(t *testing.T) {
	assert := assert.New(t)

	// Accumulator at the nibble boundary, target clear.
	cpu := makeCpu(0x0f, Flags{})
	cpu.Registers.B = 0x00
	err := cpu.Execute(MakeInstruction(OP_INC, TARGET_B))
	assert.NoError(err)
	assert.Equal(uint8(0x01), cpu.Registers.B)
	assert.True(cpu.Registers.F.HalfCarry)

	// Target at the nibble boundary, accumulator clear.
	cpu = makeCpu(0x00, Flags{})
	cpu.Registers.B = 0x0f
	err = cpu.Execute(MakeInstruction(OP_INC, TARGET_B))
	assert.NoError(err)
	assert.Equal(uint8(0x10), cpu.Registers.B)
	assert.False(cpu.Registers.F.HalfCarry)
}

func TestDecrementHalfCarryReadsAccumulator(t *testing.T) {
	assert := assert.New(t)

	// Accumulator nibble borrows, target does not.
	cpu := makeCpu(0x10, Flags{})
	cpu.Registers.E = 0x05
	err := cpu.Execute(MakeInstruction(OP_DEC, TARGET_E))
	assert.NoError(err)
	assert.Equal(uint8(0x04), cpu.Registers.E)
	assert.True(cpu.Registers.F.HalfCarry)

	// Target nibble borrows, accumulator does not.
	cpu = makeCpu(0x01, Flags{})
	cpu.Registers.E = 0x10
	err = cpu.Execute(MakeInstruction(OP_DEC, TARGET_E))
	assert.NoError(err)
	assert.Equal(uint8(0x0f), cpu.Registers.E)
	assert.False(cpu.Registers.F.HalfCarry)
}

func TestSwap(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value uint8
		want  uint8
	}{
		{0b11110000, 0b00001111},
		{0b00001111, 0b11110000},
		{0b01111110, 0b11100111},
		{0xab, 0xba},
	}

	for _, entry := range table {
		cpu := makeCpu(0, Flags{Zero: true, Subtract: true, HalfCarry: true, Carry: true})
		cpu.Registers.E = entry.value

		err := cpu.Execute(MakeInstruction(OP_SWAP, TARGET_E))
		assert.NoError(err)
		assert.Equal(entry.want, cpu.Registers.E)
		assert.Equal(Flags{}, cpu.Registers.F)
	}
}

func TestSwapZero(t *testing.T) {
	assert := assert.New(t)

	// Swapping zero clears every flag; it does not set zero.
	cpu := makeCpu(0, Flags{Carry: true})
	cpu.Registers.E = 0x00

	err := cpu.Execute(MakeInstruction(OP_SWAP, TARGET_E))
	assert.NoError(err)
	assert.Equal(uint8(0x00), cpu.Registers.E)
	assert.Equal(Flags{}, cpu.Registers.F)
}

func TestUnimplemented(t *testing.T) {
	assert := assert.New(t)

	cpu := makeCpu(0x12, Flags{Carry: true})
	cpu.Registers.B = 0x34
	before := *cpu.Registers

	ops := []Operation{OP_RLC, OP_RRC, OP_RL, OP_RR, OP_SLA, OP_SRA, OP_SRL}
	for _, op := range ops {
		err := cpu.Execute(MakeInstruction(op, TARGET_B))
		assert.Error(err, op.String())
		assert.ErrorIs(err, ErrOpcodeUnimplemented, op.String())
		assert.ErrorIs(err, ErrOpcode(Instruction{}), op.String())
		assert.Equal(before, *cpu.Registers, op.String())
	}
}
