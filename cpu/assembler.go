package cpu

import (
	"bufio"
	"io"
	"log"
	"regexp"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// opMap is a map of mnemonics to operation families.
var opMap = map[string]Operation{
	"add":  OP_ADD,
	"adc":  OP_ADC,
	"sub":  OP_SUB,
	"sbc":  OP_SBC,
	"and":  OP_AND,
	"or":   OP_OR,
	"xor":  OP_XOR,
	"cp":   OP_CP,
	"inc":  OP_INC,
	"dec":  OP_DEC,
	"swap": OP_SWAP,
	"rlc":  OP_RLC,
	"rrc":  OP_RRC,
	"rl":   OP_RL,
	"rr":   OP_RR,
	"sla":  OP_SLA,
	"sra":  OP_SRA,
	"srl":  OP_SRL,
}

// targetMap is a map of register names to operand targets.
var targetMap = map[string]Target{
	"a": TARGET_A,
	"b": TARGET_B,
	"c": TARGET_C,
	"d": TARGET_D,
	"e": TARGET_E,
	"h": TARGET_H,
	"l": TARGET_L,
}

// pairMap is a map of pair names to paired register views.
var pairMap = map[string]Pair{
	"af": PAIR_AF,
	"bc": PAIR_BC,
	"de": PAIR_DE,
	"hl": PAIR_HL,
}

// Assembler is a single pass assembler for driver scripts. A script line is
// a comment (';'), an '.equ NAME value' equate, a '.reg r value' register
// preset, or a dotted instruction mnemonic such as 'add.b' or 'swap.l'.
// Values accept decimal, 0x hex, 0b binary, equate names, and compile-time
// $( ... ) expressions.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Opcode  []Opcode // List of generated opcodes.

	predefine map[string]string // Predefines
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value uint8, err error) {
	// Chase equates. Bounded, to catch definition cycles.
	for range 8 {
		next, ok := asm.Equate[word]
		if !ok {
			break
		}
		word = next
	}

	parsed, perr := strconv.ParseUint(word, 0, 8)
	if perr != nil {
		err = ErrParseNumber(word)
		return
	}

	value = uint8(parsed)
	return
}

// parenEval does compile-time $(...) evaluations.
func (asm *Assembler) parenEval(expr string) (value uint8, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var value8 uint8
		value8, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates. They may be registers
			// or something else.
			continue
		}
		pred[key] = starlark.MakeInt(int(value8))
	}
	err = nil

	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 || st_int64 > 0xff {
		err = ErrParseExpression(expr)
		return
	}
	value = uint8(st_int64)
	return
}

var parenRe = regexp.MustCompile(`\$\(([^)]*)\)`)

// Parse assembles a driver script into a program.
func (asm *Assembler) Parse(in io.Reader) (prog *Program, err error) {
	asm.Equate = map[string]string{}
	for key, value := range sysEquate {
		asm.Equate[key] = value
	}
	for key, value := range asm.predefine {
		asm.Equate[key] = value
	}

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		err = asm.parseLine(lineno, line)
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
			return
		}
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	prog = &Program{Opcodes: asm.Opcode}
	return
}

// parseLine assembles a single script line.
func (asm *Assembler) parseLine(lineno int, line string) (err error) {
	// Strip comments.
	if n := strings.IndexByte(line, ';'); n >= 0 {
		line = line[:n]
	}

	asm.Equate["LINENO"] = strconv.Itoa(lineno)

	// Expand $( ... ) expressions.
	line = parenRe.ReplaceAllStringFunc(line, func(match string) string {
		if err != nil {
			return match
		}
		var value uint8
		value, err = asm.parenEval(match[2 : len(match)-1])
		if err != nil {
			return match
		}
		return strconv.Itoa(int(value))
	})
	if err != nil {
		return
	}

	words := strings.Fields(line)
	if len(words) == 0 {
		return
	}

	if asm.Verbose {
		log.Printf("asm: %4d: %v", lineno, strings.Join(words, " "))
	}

	switch words[0] {
	case ".equ":
		if len(words) != 3 {
			return ErrEquateSyntax
		}
		if _, ok := asm.Equate[words[1]]; ok {
			return ErrEquateDuplicate
		}
		asm.Equate[words[1]] = words[2]
		return
	case ".reg":
		if len(words) != 3 {
			return ErrPresetSyntax
		}
		target, ok := targetMap[words[1]]
		if !ok {
			return ErrRegisterInvalid
		}
		var value uint8
		value, err = asm.valueOf(words[2])
		if err != nil {
			return
		}
		asm.Opcode = append(asm.Opcode, Opcode{
			LineNo: lineno,
			Words:  words,
			Preset: &Preset{Target: target, Value: value},
		})
		return
	}

	if len(words) != 1 {
		return ErrOpcodeExtraArgs
	}

	parts := strings.Split(words[0], ".")
	op, ok := opMap[parts[0]]
	if !ok {
		return ErrOpcodeInvalid
	}
	if len(parts) != 2 {
		return ErrTargetMissing
	}
	target, ok := targetMap[parts[1]]
	if !ok {
		return ErrTargetInvalid
	}

	asm.Opcode = append(asm.Opcode, Opcode{
		LineNo: lineno,
		Words:  words,
		Inst:   &Instruction{Op: op, Target: target},
	})
	return
}
