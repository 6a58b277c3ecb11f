package io

import (
	"errors"

	"github.com/ezrec/uscc/translate"
)

var f = translate.From

var (
	// Display errors
	ErrDisplayClosed = errors.New(f("display closed"))
)
