// Package io provides the display sinks and instruction sources of the
// USCC calculator. A display sink receives one status line per call; a
// tape yields one instruction string per line of input.
package io

// Display is a sink for calculator status lines.
type Display interface {
	// Display shows a single line of text.
	Display(line string)
}
