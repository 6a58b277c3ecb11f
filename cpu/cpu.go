package cpu

import (
	"errors"
	"log"

	"github.com/ezrec/uscc/io"
	"github.com/ezrec/uscc/register"
	"github.com/ezrec/uscc/translate"
)

// Calculator is the simulation context for the USCC calculator: the
// instruction dispatcher, its register file, and its display.
type Calculator struct {
	Verbose bool // Set to enable verbose logging.

	Name     string         // Name greeted at power on.
	Register *register.File // Register file.
	Display  io.Display     // Display sink for status lines.

	Ticks int // Instructions submitted since the last reset.
}

// NewCalculator powers on a calculator, and greets name on the display.
func NewCalculator(name string, display io.Display) (calc *Calculator) {
	calc = &Calculator{
		Name:     name,
		Register: register.NewFile(),
		Display:  display,
	}

	calc.show(f("Hello %v! Welcome to the USCC.", name))

	return
}

// show sends a line to the display.
func (calc *Calculator) show(line string) {
	if calc.Display != nil {
		calc.Display.Display(line)
	}
}

// Reset the calculator state.
// - Clears the number and history banks.
// - Rewinds the register cursors.
// - Zeros the tick counter.
func (calc *Calculator) Reset() {
	if calc.Verbose {
		log.Printf("cpu: reset")
	}

	calc.Register.Reset()
	calc.Ticks = 0
}

// Submit executes one instruction. Every outcome, including a
// diagnostic, is reported on the display.
func (calc *Calculator) Submit(bits string) {
	err := calc.Execute(bits)
	if err != nil {
		calc.show(err.Error())
	}
}

// Execute executes one instruction, and returns any diagnostic as an
// error instead of displaying it. A rejected instruction leaves the
// register file untouched.
func (calc *Calculator) Execute(bits string) (err error) {
	calc.Ticks++

	inst, err := Decode(bits)
	if err != nil {
		if calc.Verbose {
			log.Printf("cpu: %q: %v", bits, err)
		}
		return
	}

	if calc.Verbose {
		log.Printf("cpu: %v: %v", bits, inst)
	}

	switch inst.Opcode() {
	case OP_STORE:
		value := inst.Literal()
		slot := calc.Register.Store(value)
		calc.show(f("The number %v was stored to register %v", translate.Int(int64(value)), translate.Int(int64(slot))))
	case OP_LAST:
		value := calc.Register.Last()
		calc.show(f("Last Calculated Value: %v", translate.Int(value)))
	case OP_ARITH:
		err = calc.arith(inst)
	default:
		err = ErrOpcodeInvalid
	}

	return
}

// arith executes an arithmetic instruction, and records its result to
// the history bank.
func (calc *Calculator) arith(inst Instruction) (err error) {
	fn := inst.Function()
	if !fn.Valid() {
		err = ErrFunctionInvalid
		return
	}

	a, err := calc.load(inst.SourceOne())
	if err != nil {
		return
	}

	b, err := calc.load(inst.SourceTwo())
	if err != nil {
		return
	}

	result, err := doAlu(fn, a, b)
	var div_zero ErrDivideByZero
	if errors.As(err, &div_zero) {
		calc.show(div_zero.Error())
		err = nil
	}
	if err != nil {
		return
	}

	calc.Register.Record(result)

	if calc.Verbose {
		log.Printf("cpu: %v %v %v = %v", fn, a, b, result)
	}

	calc.show(f("Calculated Result: %v", translate.Int(result)))

	return
}

// load reads an arithmetic source register.
func (calc *Calculator) load(index int) (value int64, err error) {
	value, err = calc.Register.Load(index)
	if err != nil {
		err = ErrAddress{Index: index, Err: err}
	}
	return
}

// doAlu performs the requested arithmetic, and returns the output value.
// Division truncates toward zero; a zero divisor yields 0 and an
// ErrDivideByZero.
func doAlu(fn CodeFunc, a int64, b int64) (output int64, err error) {
	switch fn {
	case FUNC_ADD: // add
		output = a + b
	case FUNC_SUB: // sub
		output = a - b
	case FUNC_MUL: // mul
		output = a * b
	case FUNC_DIV: // div
		if b == 0 {
			err = ErrDivideByZero{Dividend: a, Divisor: b}
			break
		}
		output = a / b
	default:
		err = ErrFunctionInvalid
	}

	return
}
