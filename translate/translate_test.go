package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Invalid OPCODE", From("Invalid OPCODE"))
	assert.Equal("Calculated Result: -5", From("Calculated Result: %v", Int(-5)))
}

func TestInt(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		value  int64
		expect string
	}{
		{0, "0"},
		{15, "15"},
		{-5, "-5"},
		{1046529, "1046529"},
	}

	for _, entry := range table {
		assert.Equal(entry.expect, Int(entry.value))
	}
}
