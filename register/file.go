package register

import (
	"fmt"
	"strings"
)

const (
	NUMBER_COUNT  = 22 // Number bank size, including the constant slot.
	NUMBER_ZERO   = 0  // Slot holding the constant 0.
	NUMBER_FIRST  = 1  // First writable number slot.
	HISTORY_COUNT = 10 // History bank size.
)

// Bounds policy for reads from the banks.
const (
	// LOAD_POLICY: loads outside [0, NUMBER_COUNT) fail with ErrLoad.
	LOAD_POLICY = "fail"
	// HISTORY_POLICY: reading backward past slot 0 wraps to the
	// newest slot, so the bank is walked as a ring.
	HISTORY_POLICY = "wrap"
)

// File is the register file: number bank, history bank, and cursors.
type File struct {
	Number  [NUMBER_COUNT]int64  // Number bank.
	History [HISTORY_COUNT]int64 // History bank.

	NextNumber  Cursor // Next number slot to write.
	NextHistory Cursor // Next history slot to write.
	LastHistory Cursor // Slot above the next history slot to read.
}

// NewFile returns a register file in its power-on state.
func NewFile() (file *File) {
	file = &File{}
	file.Reset()
	return
}

// Reset clears both banks and rewinds the cursors.
func (file *File) Reset() {
	clear(file.Number[:])
	clear(file.History[:])

	file.NextNumber = NewCursor(NUMBER_FIRST, NUMBER_COUNT)
	file.NextHistory = NewCursor(0, HISTORY_COUNT)
	file.LastHistory = NewCursor(0, HISTORY_COUNT)
}

// Store writes value to the next number slot, and returns that slot.
// Slot 0 is never written.
func (file *File) Store(value uint32) (slot int) {
	slot = file.NextNumber.Pos
	file.Number[slot] = int64(value)
	file.NextNumber.Advance()
	return
}

// Load returns the value of number slot index.
func (file *File) Load(index int) (value int64, err error) {
	if index < 0 || index >= NUMBER_COUNT {
		err = ErrLoad{Index: index}
		return
	}

	value = file.Number[index]
	return
}

// Record writes a calculation result to the next history slot, and
// resynchronises the read cursor to the write cursor.
func (file *File) Record(value int64) {
	file.History[file.NextHistory.Pos] = value
	file.NextHistory.Advance()
	file.LastHistory.Sync(file.NextHistory)
}

// Last steps the read cursor back one slot and returns the result there.
// Each call reaches one result further into the past.
func (file *File) Last() (value int64) {
	file.LastHistory.Retreat()
	value = file.History[file.LastHistory.Pos]
	return
}

// String returns the register file state as a string.
func (file *File) String() string {
	var text strings.Builder

	for n, val := range file.Number {
		mark := " "
		if n == file.NextNumber.Pos {
			mark = ">"
		}
		text.WriteString(fmt.Sprintf("%v r%-2d: %d\n", mark, n, val))
	}

	for n, val := range file.History {
		mark := " "
		switch n {
		case file.NextHistory.Pos:
			mark = ">"
		case file.LastHistory.Pos:
			mark = "<"
		}
		text.WriteString(fmt.Sprintf("%v h%-2d: %d\n", mark, n, val))
	}

	return text.String()
}
