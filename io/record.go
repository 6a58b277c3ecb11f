package io

// Record keeps every status line in memory.
type Record struct {
	Lines []string
}

var _ Display = (*Record)(nil)

// Display appends line to the record.
func (rec *Record) Display(line string) {
	rec.Lines = append(rec.Lines, line)
}

// Last returns the most recent line.
func (rec *Record) Last() (line string, ok bool) {
	if len(rec.Lines) > 0 {
		ok = true
		line = rec.Lines[len(rec.Lines)-1]
	}
	return
}

// Take returns the recorded lines, and clears the record.
func (rec *Record) Take() (lines []string) {
	lines = rec.Lines
	rec.Lines = nil
	return
}

// Reset clears the record.
func (rec *Record) Reset() {
	rec.Lines = nil
}
