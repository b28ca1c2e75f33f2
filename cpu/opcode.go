package cpu

import (
	"fmt"
)

// Operation is an instruction family.
type Operation int

//go:generate go tool stringer -linecomment -type=Operation
const (
	OP_ADD  = Operation(0)  // add
	OP_ADC  = Operation(1)  // adc
	OP_SUB  = Operation(2)  // sub
	OP_SBC  = Operation(3)  // sbc
	OP_AND  = Operation(4)  // and
	OP_OR   = Operation(5)  // or
	OP_XOR  = Operation(6)  // xor
	OP_CP   = Operation(7)  // cp
	OP_INC  = Operation(8)  // inc
	OP_DEC  = Operation(9)  // dec
	OP_SWAP = Operation(10) // swap

	// Rotate and shift families decode, but have no execution routine.
	OP_RLC = Operation(11) // rlc
	OP_RRC = Operation(12) // rrc
	OP_RL  = Operation(13) // rl
	OP_RR  = Operation(14) // rr
	OP_SLA = Operation(15) // sla
	OP_SRA = Operation(16) // sra
	OP_SRL = Operation(17) // srl
)

// Target selects the register supplying an operand. For inc, dec and swap
// it also selects the register receiving the result.
type Target int

//go:generate go tool stringer -linecomment -type=Target
const (
	TARGET_A = Target(0) // a
	TARGET_B = Target(1) // b
	TARGET_C = Target(2) // c
	TARGET_D = Target(3) // d
	TARGET_E = Target(4) // e
	TARGET_H = Target(5) // h
	TARGET_L = Target(6) // l
)

// Pair names a sixteen-bit paired register view.
type Pair int

//go:generate go tool stringer -linecomment -type=Pair
const (
	PAIR_AF = Pair(0) // af
	PAIR_BC = Pair(1) // bc
	PAIR_DE = Pair(2) // de
	PAIR_HL = Pair(3) // hl
)

// Instruction is a decoded instruction: an operation family and the
// register target it applies to.
type Instruction struct {
	Op     Operation
	Target Target
}

// MakeInstruction builds an instruction from an operation family and a target.
func MakeInstruction(op Operation, target Target) Instruction {
	return Instruction{Op: op, Target: target}
}

// String returns the assembly language representation of this instruction.
func (inst Instruction) String() string {
	return fmt.Sprintf("%v.%v", inst.Op.String(), inst.Target.String())
}
