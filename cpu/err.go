package cpu

import (
	"errors"

	"github.com/ezrec/uscc/translate"
)

var f = translate.From

var (
	// Instruction decode errors
	ErrInstructionLength   = errors.New(f("Invalid Instruction Length"))
	ErrInstructionEncoding = errors.New(f("Invalid Instruction Encoding"))
	ErrOpcodeInvalid       = errors.New(f("Invalid OPCODE"))
	ErrFunctionInvalid     = errors.New(f("Invalid Function Code"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrMnemonicInvalid    = errors.New(f("mnemonic invalid"))
)

// ErrAddress reports an arithmetic source outside the number bank.
type ErrAddress struct {
	Index int
	Err   error
}

func (err ErrAddress) Error() string {
	return f("Invalid Register Address %v", translate.Int(int64(err.Index)))
}

func (err ErrAddress) Unwrap() error {
	return err.Err
}

// ErrDivideByZero reports a division by zero. It is not fatal: the
// quotient is taken as 0.
type ErrDivideByZero struct {
	Dividend int64
	Divisor  int64
}

func (err ErrDivideByZero) Error() string {
	return f("Division by 0 error: %v/%v.", translate.Int(err.Dividend), translate.Int(err.Divisor))
}

type ErrRegisterUnencodable int

func (err ErrRegisterUnencodable) Error() string {
	return f("register r%v has no address encoding", translate.Int(int64(err)))
}

type ErrLiteralRange uint32

func (err ErrLiteralRange) Error() string {
	return f("literal %v exceeds %v bits", translate.Int(int64(err)), translate.Int(int64(FIELD_LITERAL.Width())))
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

type ErrParseRegister string

func (err ErrParseRegister) Error() string {
	return f("'%v' is not a register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
