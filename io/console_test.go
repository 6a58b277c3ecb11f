package io

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConsole(t *testing.T) {
	assert := assert.New(t)

	out := &bytes.Buffer{}
	con := &Console{Output: out}

	con.Display("Hello Nick! Welcome to the USCC.")
	con.Display("Calculated Result: -5")

	assert.NoError(con.Err)
	assert.Equal("Hello Nick! Welcome to the USCC.\nCalculated Result: -5\n", out.String())
}

func TestConsole_Closed(t *testing.T) {
	assert := assert.New(t)

	con := &Console{}
	con.Display("lost")
	assert.Equal(ErrDisplayClosed, con.Err)
}

type failWriter struct {
	writes int
}

var errFail = errors.New("write failed")

func (fw *failWriter) Write(p []byte) (int, error) {
	fw.writes++
	return 0, errFail
}

func TestConsole_WriteError(t *testing.T) {
	assert := assert.New(t)

	fw := &failWriter{}
	con := &Console{Output: fw}

	con.Display("one")
	con.Display("two")

	assert.Equal(errFail, con.Err)
	assert.Equal(1, fw.writes)
}
