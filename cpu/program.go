package cpu

import (
	"fmt"
	"io"
	"iter"
)

// Opcode represents a line of assembled code with its source location and
// generated instruction.
type Opcode struct {
	LineNo int
	Words  []string
	Code   Instruction
}

type Program struct {
	Opcodes []Opcode
}

// Debug returns the opcode assembled from source line lineno.
func (prog *Program) Debug(lineno int) (op *Opcode, ok bool) {
	for n := range prog.Opcodes {
		if prog.Opcodes[n].LineNo == lineno {
			return &prog.Opcodes[n], true
		}
	}

	return
}

// Codes returns an iterator of source line numbers and instructions.
func (prog *Program) Codes() iter.Seq2[int, Instruction] {
	return func(yield func(lineno int, code Instruction) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.LineNo, op.Code) {
				return
			}
		}
	}
}

// Binary writes the program as instruction strings, one per line.
func (prog *Program) Binary(out io.Writer) (err error) {
	for _, code := range prog.Codes() {
		_, err = fmt.Fprintln(out, string(code))
		if err != nil {
			return
		}
	}

	return
}

// Listing writes the program with source line numbers and disassembly.
func (prog *Program) Listing(out io.Writer) (err error) {
	for lineno, code := range prog.Codes() {
		_, err = fmt.Fprintf(out, "%4d: %v ; %v\n", lineno, string(code), code)
		if err != nil {
			return
		}
	}

	return
}
