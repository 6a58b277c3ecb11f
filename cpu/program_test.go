package cpu

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("store 5\n\n; nothing\nadd r1 r1\nlast"))
	assert.NoError(err)

	op, ok := prog.Debug(4)
	assert.True(ok)
	assert.Equal([]string{"add", "r1", "r1"}, op.Words)

	_, ok = prog.Debug(3)
	assert.False(ok)

	var lines []int
	for lineno := range prog.Codes() {
		lines = append(lines, lineno)
	}
	assert.Equal([]int{1, 4, 5}, lines)

	out := &bytes.Buffer{}
	assert.NoError(prog.Binary(out))
	assert.Equal("00000100000000000000000101000000\n"+
		"00000000001000010000000000100000\n"+
		"10000100000000000000000000000000\n", out.String())

	out.Reset()
	assert.NoError(prog.Listing(out))
	assert.Equal("   1: 00000100000000000000000101000000 ; store 5\n"+
		"   4: 00000000001000010000000000100000 ; add r1 r1\n"+
		"   5: 10000100000000000000000000000000 ; last\n", out.String())
}

func TestProgramEmpty(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{}
	out := &bytes.Buffer{}
	assert.NoError(prog.Binary(out))
	assert.NoError(prog.Listing(out))
	assert.Equal(0, out.Len())
}
