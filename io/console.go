package io

import (
	"fmt"
	"io"
	"log"
)

// Console writes each status line, newline terminated, to Output.
type Console struct {
	Output io.Writer

	Err error // First write error, if any.
}

var _ Display = (*Console)(nil)

// Display writes line to the console output.
// After a write error the console stops writing.
func (con *Console) Display(line string) {
	if con.Err != nil {
		return
	}

	if con.Output == nil {
		con.Err = ErrDisplayClosed
		return
	}

	_, err := fmt.Fprintln(con.Output, line)
	if err != nil {
		log.Printf("console: %v", err)
		con.Err = err
	}
}
