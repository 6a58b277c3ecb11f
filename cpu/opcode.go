package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// INSTRUCTION_LENGTH is the number of bit characters in an instruction.
const INSTRUCTION_LENGTH = 32

// Field is the [Start, End) character range of an instruction field.
type Field struct {
	Start int
	End   int
}

// Width returns the number of characters in the field.
func (fd Field) Width() int {
	return fd.End - fd.Start
}

// Instruction fields.
var (
	FIELD_OPCODE     = Field{0, 6}
	FIELD_SOURCE_ONE = Field{6, 11}
	FIELD_SOURCE_TWO = Field{11, 16}
	FIELD_LITERAL    = Field{16, 26}
	FIELD_FUNCTION   = Field{26, 32}
)

// LITERAL_LIMIT is one past the largest storable literal.
const LITERAL_LIMIT = 1 << 10

// CodeOp is an opcode.
type CodeOp int

const (
	OP_ARITH = CodeOp(0b000000) // alu
	OP_STORE = CodeOp(0b000001) // store
	OP_LAST  = CodeOp(0b100001) // last
)

var _code_op_names = map[CodeOp]string{
	OP_ARITH: "alu",
	OP_STORE: "store",
	OP_LAST:  "last",
}

func (op CodeOp) String() string {
	name, ok := _code_op_names[op]
	if !ok {
		return fmt.Sprintf("CodeOp(%06b)", int(op))
	}
	return name
}

// CodeFunc is an arithmetic function code.
type CodeFunc int

const (
	FUNC_ADD = CodeFunc(0b100000) // add
	FUNC_SUB = CodeFunc(0b100010) // sub
	FUNC_MUL = CodeFunc(0b011000) // mul
	FUNC_DIV = CodeFunc(0b011010) // div
)

var _code_func_names = map[CodeFunc]string{
	FUNC_ADD: "add",
	FUNC_SUB: "sub",
	FUNC_MUL: "mul",
	FUNC_DIV: "div",
}

func (fn CodeFunc) String() string {
	name, ok := _code_func_names[fn]
	if !ok {
		return fmt.Sprintf("CodeFunc(%06b)", int(fn))
	}
	return name
}

// Valid returns true if the function code names an arithmetic operation.
func (fn CodeFunc) Valid() bool {
	_, ok := _code_func_names[fn]
	return ok
}

// Instruction is a validated 32 character instruction.
type Instruction string

// Decode validates the length and encoding of bits.
func Decode(bits string) (inst Instruction, err error) {
	if len(bits) != INSTRUCTION_LENGTH {
		err = ErrInstructionLength
		return
	}

	for n := range len(bits) {
		if bits[n] != '0' && bits[n] != '1' {
			err = ErrInstructionEncoding
			return
		}
	}

	inst = Instruction(bits)
	return
}

// Field returns the characters of a field.
func (inst Instruction) Field(fd Field) string {
	return string(inst[fd.Start:fd.End])
}

// binary returns the field read as a binary number.
func (inst Instruction) binary(fd Field) int {
	value, err := strconv.ParseUint(inst.Field(fd), 2, fd.Width())
	if err != nil {
		panic("instruction not decoded")
	}
	return int(value)
}

// decimal returns the field read as decimal digits.
func (inst Instruction) decimal(fd Field) int {
	value, err := strconv.Atoi(inst.Field(fd))
	if err != nil {
		panic("instruction not decoded")
	}
	return value
}

// Opcode returns the opcode field.
func (inst Instruction) Opcode() CodeOp {
	return CodeOp(inst.binary(FIELD_OPCODE))
}

// Function returns the function code field.
func (inst Instruction) Function() CodeFunc {
	return CodeFunc(inst.binary(FIELD_FUNCTION))
}

// SourceOne returns the first register address.
func (inst Instruction) SourceOne() int {
	return inst.decimal(FIELD_SOURCE_ONE)
}

// SourceTwo returns the second register address.
func (inst Instruction) SourceTwo() int {
	return inst.decimal(FIELD_SOURCE_TWO)
}

// Literal returns the store literal.
func (inst Instruction) Literal() uint32 {
	return uint32(inst.binary(FIELD_LITERAL))
}

// String returns the assembly language representation of the instruction.
func (inst Instruction) String() (out string) {
	if _, err := Decode(string(inst)); err != nil {
		return fmt.Sprintf("raw %q", string(inst))
	}

	switch op := inst.Opcode(); op {
	case OP_STORE:
		out = fmt.Sprintf("%v %v", op, inst.Literal())
	case OP_LAST:
		out = op.String()
	case OP_ARITH:
		fn := inst.Function()
		if !fn.Valid() {
			out = fmt.Sprintf("raw %v", string(inst))
			break
		}
		out = fmt.Sprintf("%v r%v r%v", fn, inst.SourceOne(), inst.SourceTwo())
	default:
		out = fmt.Sprintf("raw %v", string(inst))
	}

	return
}

// encodeField renders a value as a zero padded binary field.
func encodeField(fd Field, value int) string {
	return fmt.Sprintf("%0*b", fd.Width(), value)
}

// EncodeAddress renders a register address as its decimal digit field.
// Only addresses whose decimal digits are all 0 or 1 can be encoded.
func EncodeAddress(address int) (field string, err error) {
	digits := strconv.Itoa(address)
	width := FIELD_SOURCE_ONE.Width()
	if address < 0 || len(digits) > width || strings.Trim(digits, "01") != "" {
		err = ErrRegisterUnencodable(address)
		return
	}

	field = strings.Repeat("0", width-len(digits)) + digits
	return
}

// MakeCodeStore creates a store instruction.
func MakeCodeStore(value uint32) (inst Instruction, err error) {
	if value >= LITERAL_LIMIT {
		err = ErrLiteralRange(value)
		return
	}

	inst = Instruction(encodeField(FIELD_OPCODE, int(OP_STORE)) +
		encodeField(FIELD_SOURCE_ONE, 0) +
		encodeField(FIELD_SOURCE_TWO, 0) +
		encodeField(FIELD_LITERAL, int(value)) +
		encodeField(FIELD_FUNCTION, 0))
	return
}

// MakeCodeLast creates a history read instruction.
func MakeCodeLast() Instruction {
	return Instruction(encodeField(FIELD_OPCODE, int(OP_LAST)) +
		strings.Repeat("0", INSTRUCTION_LENGTH-FIELD_OPCODE.Width()))
}

// MakeCodeArith creates an arithmetic instruction on two registers.
func MakeCodeArith(fn CodeFunc, src_one, src_two int) (inst Instruction, err error) {
	if !fn.Valid() {
		err = ErrFunctionInvalid
		return
	}

	one, err := EncodeAddress(src_one)
	if err != nil {
		return
	}

	two, err := EncodeAddress(src_two)
	if err != nil {
		return
	}

	inst = Instruction(encodeField(FIELD_OPCODE, int(OP_ARITH)) +
		one +
		two +
		encodeField(FIELD_LITERAL, 0) +
		encodeField(FIELD_FUNCTION, int(fn)))
	return
}
