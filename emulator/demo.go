package emulator

import (
	"strings"

	"github.com/ezrec/uscc/cpu"
)

// DEMO_SOURCE is the power-on demonstration program.
const DEMO_SOURCE = `; Adds 5 and 10 to number registers
store 5
store 10

; Adds/Subtracts/Multiplies/Divides registers 1 and 10
add r1 r10
sub r1 r10
mul r1 r10
div r1 r10

; Gets the last three calculations
last
last
last
`

// Demo assembles the demonstration program.
func Demo() (prog *cpu.Program, err error) {
	asm := &cpu.Assembler{}
	prog, err = asm.Parse(strings.NewReader(DEMO_SOURCE))
	return
}
