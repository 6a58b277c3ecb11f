package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog, err := asm.Parse(strings.NewReader(""))
	assert.NoError(err)
	assert.Equal(0, len(prog.Opcodes))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%v", LITERAL_LIMIT), asm.Equate["LITERAL_LIMIT"])
}

func opEqual(t *testing.T, expected, opcodes []Opcode) {
	assert := assert.New(t)

	assert.Equal(len(expected), len(opcodes))
	if len(expected) == len(opcodes) {
		for n := range len(expected) {
			assert.Equal(expected[n], opcodes[n])
		}
	}
}

func TestAssemblerDemo(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	program := []string{
		"; Adds 5 and 10 to number registers",
		"store 5",
		"store 0b1010",
		"",
		"add r1 r10  ; field 00010 is register 10",
		"sub 1 10",
		"mul r1 r10",
		"div r1 r10",
		"last",
		"last",
		"last",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
		return
	}

	expected := []Opcode{
		{2, []string{"store", "5"}, "00000100000000000000000101000000"},
		{3, []string{"store", "0b1010"}, "00000100000000000000001010000000"},
		{5, []string{"add", "r1", "r10"}, "00000000001000100000000000100000"},
		{6, []string{"sub", "1", "10"}, "00000000001000100000000000100010"},
		{7, []string{"mul", "r1", "r10"}, "00000000001000100000000000011000"},
		{8, []string{"div", "r1", "r10"}, "00000000001000100000000000011010"},
		{9, []string{"last"}, "10000100000000000000000000000000"},
		{10, []string{"last"}, "10000100000000000000000000000000"},
		{11, []string{"last"}, "10000100000000000000000000000000"},
	}

	opEqual(t, expected, prog.Opcodes)
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("BASE", "100")

	program := []string{
		".equ FIVE 5",
		".equ X r11",
		"store FIVE",
		"store $(FIVE * 3 + BASE)",
		"store $(LINENO)",
		"add X r0",
		"store $(LITERAL_LIMIT - 1)",
	}

	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	var text []string
	for _, code := range prog.Codes() {
		text = append(text, code.String())
	}
	assert.Equal([]string{
		"store 5",
		"store 115",
		"store 5",
		"add r11 r0",
		"store 1023",
	}, text)
}

func TestAssemblerRaw(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("raw 11111100000000000000000000000000\nraw 0101"))
	assert.NoError(err)

	assert.Equal(Instruction("11111100000000000000000000000000"), prog.Opcodes[0].Code)
	assert.Equal(Instruction("0101"), prog.Opcodes[1].Code)
}

func TestAssemblerDisassemble(t *testing.T) {
	assert := assert.New(t)

	program := []string{"store 1023", "add r0 r1", "sub r10 r11", "mul r1 r1", "div r11 r10", "last"}

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	for n, op := range prog.Opcodes {
		assert.Equal(program[n], op.Code.String())
	}
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		lineno int
		err    error
	}){
		{"mnemonic", "store 1\njump 4", 2, ErrMnemonicInvalid},
		{"store_missing", "store", 1, ErrOpcodeValueMissing},
		{"store_extra", "store 1 2", 1, ErrOpcodeExtraArgs},
		{"store_range", "store 1024", 1, ErrLiteralRange(1024)},
		{"store_nan", "store five", 1, ErrParseNumber("five")},
		{"add_missing", "add r1", 1, ErrOpcodeValueMissing},
		{"add_extra", "add r1 r1 r1", 1, ErrOpcodeExtraArgs},
		{"add_register", "add r1 rx", 1, ErrParseRegister("rx")},
		{"add_unencodable", "add r1 r2", 1, ErrRegisterUnencodable(2)},
		{"last_extra", "last 1", 1, ErrOpcodeExtraArgs},
		{"raw_missing", "raw", 1, ErrOpcodeValueMissing},
		{"equ_syntax", ".equ A", 1, ErrEquateSyntax},
		{"equ_duplicate", ".equ A 1\n.equ A 2", 2, ErrEquateDuplicate},
		{"expr", "store $(\"five\")", 1, ErrParseExpression(`"five"`)},
	}

	for _, entry := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(entry.source))
		assert.Error(err, entry.name)
		assert.True(errors.Is(err, entry.err), "%v: %v", entry.name, err)

		var syntax *ErrSyntax
		if assert.True(errors.As(err, &syntax), entry.name) {
			assert.Equal(entry.lineno, syntax.LineNo, entry.name)
		}
	}
}

func TestAssemblerStarlarkError(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("store $(1 +)"))
	assert.Error(err)

	var syntax *ErrSyntax
	assert.True(errors.As(err, &syntax))
	assert.Equal("store $(1 +)", syntax.Line)
}
