// Package cpu implements the arithmetic core of an SM83 (Game Boy class)
// processor: the eight-bit register file with its paired sixteen-bit views,
// the flag register, and the execution engine for the eight-bit
// arithmetic/logic instruction families.
//
// The assembler provides a small script language for driving the core,
// supporting equates, register presets, dotted instruction mnemonics, and
// compile-time expression evaluation.
package cpu
