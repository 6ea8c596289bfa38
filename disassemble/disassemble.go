// Package disassemble implements a disassembler for the 6502 opcodes
// the cpu package decodes.
package disassemble

import (
	"fmt"

	"github.com/ginkxo/6502/cpu"
	"github.com/ginkxo/6502/memory"
)

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. This does not interpret the instructions so JSR, LDA in memory
// will disassemble as that sequence and not follow the JSR.
// Bytes that aren't a known opcode are shown as .BYTE and take 1 byte.
// This always reads two bytes past the current PC (wrapping at 0xFFFF).
func Step(pc uint16, r memory.Reader) (string, int) {
	o := cpu.Opcode(r.Read(pc))
	pc1 := r.Read(pc + 1)
	pc2 := r.Read(pc + 2)
	op := o.Mnemonic()

	out := fmt.Sprintf("%.4X %.2X ", pc, uint8(o))
	switch o.Mode() {
	case cpu.MODE_IMMEDIATE:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", pc1, op, pc1)
	case cpu.MODE_ZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", pc1, op, pc1)
	case cpu.MODE_ZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", pc1, op, pc1)
	case cpu.MODE_ZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", pc1, op, pc1)
	case cpu.MODE_INDIRECTX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", pc1, op, pc1)
	case cpu.MODE_INDIRECTY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", pc1, op, pc1)
	case cpu.MODE_ABSOLUTE:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", pc1, pc2, op, pc2, pc1)
	case cpu.MODE_ABSOLUTEX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", pc1, pc2, op, pc2, pc1)
	case cpu.MODE_ABSOLUTEY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", pc1, pc2, op, pc2, pc1)
	default:
		out += fmt.Sprintf("        .BYTE %.2X     ", uint8(o))
	}
	return out, o.Mode().Bytes()
}
