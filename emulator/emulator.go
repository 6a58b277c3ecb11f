// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"iter"
	"log"

	"github.com/ezrec/uscc/cpu"
	"github.com/ezrec/uscc/internal"
	"github.com/ezrec/uscc/io"
)

// Emulator state. Calculator + program listing + instruction tape.
type Emulator struct {
	Verbose         bool         // If set, enables verbose logging.
	Strict          bool         // If set, a diagnostic halts the emulator.
	*cpu.Calculator              // Reference to the calculator simulation.
	Program         *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Tape instruction source, run after the program.

	lineno int
	next   func() (int, string, bool)
	stop   func()
}

// NewEmulator creates a new emulator, powering on a calculator named name.
func NewEmulator(name string, display io.Display) (emu *Emulator) {
	emu = &Emulator{
		Calculator: cpu.NewCalculator(name, display),
		Program:    &cpu.Program{},
	}

	return
}

// Close the emulator
func (emu *Emulator) Close() (err error) {
	if emu.stop != nil {
		emu.stop()
		emu.next = nil
		emu.stop = nil
	}

	return
}

// Reset the emulator state.
// - Clears the calculator registers.
// - Restarts the program listing; the tape continues where it was.
func (emu *Emulator) Reset() (err error) {
	emu.Close()

	emu.Calculator.Verbose = emu.Verbose
	emu.Calculator.Reset()
	emu.lineno = 0

	emu.next, emu.stop = iter.Pull2(internal.IterSeq2Concat(emu.programCodes(), emu.tapeCodes()))

	return
}

// programCodes yields the program listing with source line numbers.
func (emu *Emulator) programCodes() iter.Seq2[int, string] {
	return func(yield func(lineno int, bits string) bool) {
		if emu.Program == nil {
			return
		}
		for lineno, code := range emu.Program.Codes() {
			if !yield(lineno, string(code)) {
				return
			}
		}
	}
}

// tapeCodes yields the tape instructions with tape line numbers.
func (emu *Emulator) tapeCodes() iter.Seq2[int, string] {
	return internal.IterSeqKeyed(emu.Tape.Receive(), func() int { return emu.Tape.LineNo })
}

// LineNo returns the source line number of the last executed instruction.
func (emu *Emulator) LineNo() int {
	return emu.lineno
}

// Tick submits the next instruction to the calculator.
// Without Strict, diagnostics are shown on the display and do not stop
// the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.next == nil {
		err = emu.Reset()
		if err != nil {
			return
		}
	}

	// Set calculator verbosity
	emu.Calculator.Verbose = emu.Verbose

	lineno, bits, ok := emu.next()
	if !ok {
		done = true
		err = emu.Tape.Err
		if err != nil {
			err = &ErrRuntime{LineNo: emu.Tape.LineNo, Err: err}
		}
		return
	}
	emu.lineno = lineno

	if emu.Verbose {
		log.Printf("emulator: %d: %v", lineno, bits)
	}

	if !emu.Strict {
		emu.Calculator.Submit(bits)
		return
	}

	err = emu.Calculator.Execute(bits)
	if err != nil {
		err = &ErrRuntime{LineNo: lineno, Err: err}
	}

	return
}

// Run ticks the emulator until the instructions are exhausted.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
