package register

import (
	"errors"

	"github.com/ezrec/uscc/translate"
)

var f = translate.From

var (
	// Register file errors
	ErrRegisterRange = errors.New(f("register out of range"))
)

// ErrLoad reports a load from an address outside the number bank.
type ErrLoad struct {
	Index int
}

func (err ErrLoad) Error() string {
	return f("load r%v", translate.Int(int64(err.Index)))
}

func (err ErrLoad) Unwrap() error {
	return ErrRegisterRange
}
