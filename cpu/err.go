package cpu

import (
	"errors"

	"github.com/gbcore/sm83/translate"
)

var f = translate.From

var (
	// Execution errors
	ErrOpcodeUnimplemented = errors.New(f("opcode unimplemented"))

	// Assembler errors
	ErrEquateSyntax    = errors.New(f(".equ syntax"))
	ErrEquateDuplicate = errors.New(f(".equ duplicated"))
	ErrPresetSyntax    = errors.New(f(".reg syntax"))
	ErrOpcodeExtraArgs = errors.New(f("excessive arguments"))
	ErrOpcodeInvalid   = errors.New(f("opcode invalid"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrTargetMissing   = errors.New(f("target missing"))
	ErrTargetInvalid   = errors.New(f("target invalid"))
)

type ErrOpcode Instruction

func (eo ErrOpcode) Error() string {
	return f("bad opcode %v", Instruction(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
