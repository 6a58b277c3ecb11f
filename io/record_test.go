package io

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecord(t *testing.T) {
	assert := assert.New(t)

	rec := &Record{}
	_, ok := rec.Last()
	assert.False(ok)

	rec.Display("one")
	rec.Display("two")

	line, ok := rec.Last()
	assert.True(ok)
	assert.Equal("two", line)

	assert.Equal([]string{"one", "two"}, rec.Take())
	assert.Empty(rec.Lines)

	rec.Display("three")
	rec.Reset()
	assert.Empty(rec.Lines)
}
