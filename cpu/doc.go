// Package cpu implements the instruction decoder, the dispatcher and the
// assembler for the USCC calculator.
//
// An instruction is a 32 character string of '0' and '1' characters,
// split into five fields:
//
//	[0:6]   opcode
//	[6:11]  source one register address
//	[11:16] source two register address
//	[16:26] store literal
//	[26:32] function code
//
// The store literal is read as a binary number. The register addresses
// are read as decimal digits, so the field 00010 addresses register 10,
// and only registers 0, 1, 10 and 11 can be reached by an arithmetic
// instruction.
//
// The assembler provides a small mnemonic language for the instruction set,
// supporting equates and compile-time expression evaluation.
package cpu
