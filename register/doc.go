// Package register implements the register file of the USCC calculator.
//
// The file holds two fixed banks. The number bank has 22 slots; slot 0 is
// the constant 0 and slots 1-21 receive stored literals in round-robin
// order. The history bank has 10 slots that receive calculation results,
// again round-robin, and is read backward from the most recent result.
//
// Each bank is driven by a Cursor: a position inside a fixed index range
// that wraps to the start of the range when advanced past its end.
package register
