package io

import (
	"bufio"
	"io"
	"iter"
	"strings"
)

// TAPE_COMMENT starts a comment that runs to the end of the line.
const TAPE_COMMENT = "#"

// Tape reads instructions, one per line, from Input.
// Blank lines and comments are skipped.
type Tape struct {
	Input io.Reader

	LineNo int   // Line number of the last instruction received.
	Err    error // Read error that ended the tape, if any.

	scanner *bufio.Scanner
}

// Receive returns an iterator that yields instructions from the input
// stream until it is exhausted.
func (tc *Tape) Receive() iter.Seq[string] {
	return func(yield func(inst string) bool) {
		if tc.Input == nil {
			return
		}
		if tc.scanner == nil {
			tc.scanner = bufio.NewScanner(tc.Input)
		}
		for tc.scanner.Scan() {
			tc.LineNo++
			line, _, _ := strings.Cut(tc.scanner.Text(), TAPE_COMMENT)
			line = strings.TrimSpace(line)
			if len(line) == 0 {
				continue
			}
			if !yield(line) {
				return
			}
		}
		tc.Err = tc.scanner.Err()
	}
}
