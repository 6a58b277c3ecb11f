// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"log"
	"os"

	"github.com/ezrec/uscc/cpu"
	"github.com/ezrec/uscc/emulator"
	"github.com/ezrec/uscc/io"
)

func main() {
	var name string
	var compile string
	var save bool
	var listing bool
	var input string
	var output string
	var demo bool
	var strict bool
	var verbose bool

	flag.StringVar(&name, "n", "Nick", "Name to greet")
	flag.StringVar(&compile, "c", "", ".uscc file to compile")
	flag.BoolVar(&save, "s", false, "Write compiled instructions to output, do not execute")
	flag.BoolVar(&listing, "l", false, "With -s, write a listing instead of bare instructions")
	flag.StringVar(&input, "i", "", "Instruction tape input ('-' for stdin)")
	flag.StringVar(&output, "o", "-", "Display output")
	flag.BoolVar(&demo, "demo", false, "Run the demonstration program")
	flag.BoolVar(&strict, "strict", false, "Stop on the first diagnostic")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	prog := &cpu.Program{}

	// Compile a new instruction stream.
	switch {
	case len(compile) != 0:
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	case demo:
		var err error
		prog, err = emulator.Demo()
		if err != nil {
			log.Fatalf("demo: %v", err)
		}
	case len(input) == 0:
		// Nothing to compile, so read instructions from stdin.
		input = "-"
	}

	ouf := os.Stdout
	if output != "-" {
		var err error
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
	}

	if save {
		var err error
		if listing {
			err = prog.Listing(ouf)
		} else {
			err = prog.Binary(ouf)
		}
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		return
	}

	console := &io.Console{Output: ouf}
	emu := emulator.NewEmulator(name, console)
	defer emu.Close()
	emu.Program = prog
	emu.Verbose = verbose
	emu.Strict = strict

	switch input {
	case "":
	case "-":
		emu.Tape.Input = os.Stdin
	default:
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if console.Err != nil {
		log.Fatalf("%v: %v", output, console.Err)
	}
}
