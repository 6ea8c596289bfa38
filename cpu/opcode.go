package cpu

import "fmt"

// Opcode is a single byte instruction encoding. Only the values defined
// below are decoded, anything else is an InvalidInstruction.
type Opcode uint8

const (
	// LDA
	LDA_IMMEDIATE   = Opcode(0xA9)
	LDA_ZERO_PAGE   = Opcode(0xA5)
	LDA_ZERO_PAGE_X = Opcode(0xB5)
	LDA_ABSOLUTE    = Opcode(0xAD)
	LDA_ABSOLUTE_X  = Opcode(0xBD)
	LDA_ABSOLUTE_Y  = Opcode(0xB9)
	LDA_INDIRECT_X  = Opcode(0xA1)
	LDA_INDIRECT_Y  = Opcode(0xB1)
	// LDX
	LDX_IMMEDIATE   = Opcode(0xA2)
	LDX_ZERO_PAGE   = Opcode(0xA6)
	LDX_ZERO_PAGE_Y = Opcode(0xB6)
	LDX_ABSOLUTE    = Opcode(0xAE)
	LDX_ABSOLUTE_Y  = Opcode(0xBE)
	// LDY
	LDY_IMMEDIATE   = Opcode(0xA0)
	LDY_ZERO_PAGE   = Opcode(0xA4)
	LDY_ZERO_PAGE_X = Opcode(0xB4)
	LDY_ABSOLUTE    = Opcode(0xAC)
	LDY_ABSOLUTE_X  = Opcode(0xBC)
	// JSR
	JSR_ABSOLUTE = Opcode(0x20)
)

// Mode is an enumeration of the addressing modes used by the opcode table.
type Mode int

const (
	MODE_UNIMPLEMENTED Mode = iota // Not a valid opcode.
	MODE_IMMEDIATE                 // #i
	MODE_ZP                        // d
	MODE_ZPX                       // d,x
	MODE_ZPY                       // d,y
	MODE_INDIRECTX                 // (d,x)
	MODE_INDIRECTY                 // (d),y
	MODE_ABSOLUTE                  // a
	MODE_ABSOLUTEX                 // a,x
	MODE_ABSOLUTEY                 // a,y
)

// String returns the short operand notation for the mode.
func (m Mode) String() string {
	switch m {
	case MODE_IMMEDIATE:
		return "#i"
	case MODE_ZP:
		return "d"
	case MODE_ZPX:
		return "d,x"
	case MODE_ZPY:
		return "d,y"
	case MODE_INDIRECTX:
		return "(d,x)"
	case MODE_INDIRECTY:
		return "(d),y"
	case MODE_ABSOLUTE:
		return "a"
	case MODE_ABSOLUTEX:
		return "a,x"
	case MODE_ABSOLUTEY:
		return "a,y"
	}
	return "?"
}

// Bytes is the total instruction length (opcode included) for the mode.
func (m Mode) Bytes() int {
	switch m {
	case MODE_ABSOLUTE, MODE_ABSOLUTEX, MODE_ABSOLUTEY:
		return 3
	case MODE_UNIMPLEMENTED:
		return 1
	}
	return 2
}

type opcodeInfo struct {
	mnemonic string
	mode     Mode
}

// opcodeTable is indexed by encoding. A duplicate encoding above is a compile
// error here since keys in an array literal must be unique.
var opcodeTable = [256]opcodeInfo{
	LDA_IMMEDIATE:   {"LDA", MODE_IMMEDIATE},
	LDA_ZERO_PAGE:   {"LDA", MODE_ZP},
	LDA_ZERO_PAGE_X: {"LDA", MODE_ZPX},
	LDA_ABSOLUTE:    {"LDA", MODE_ABSOLUTE},
	LDA_ABSOLUTE_X:  {"LDA", MODE_ABSOLUTEX},
	LDA_ABSOLUTE_Y:  {"LDA", MODE_ABSOLUTEY},
	LDA_INDIRECT_X:  {"LDA", MODE_INDIRECTX},
	LDA_INDIRECT_Y:  {"LDA", MODE_INDIRECTY},
	LDX_IMMEDIATE:   {"LDX", MODE_IMMEDIATE},
	LDX_ZERO_PAGE:   {"LDX", MODE_ZP},
	LDX_ZERO_PAGE_Y: {"LDX", MODE_ZPY},
	LDX_ABSOLUTE:    {"LDX", MODE_ABSOLUTE},
	LDX_ABSOLUTE_Y:  {"LDX", MODE_ABSOLUTEY},
	LDY_IMMEDIATE:   {"LDY", MODE_IMMEDIATE},
	LDY_ZERO_PAGE:   {"LDY", MODE_ZP},
	LDY_ZERO_PAGE_X: {"LDY", MODE_ZPX},
	LDY_ABSOLUTE:    {"LDY", MODE_ABSOLUTE},
	LDY_ABSOLUTE_X:  {"LDY", MODE_ABSOLUTEX},
	JSR_ABSOLUTE:    {"JSR", MODE_ABSOLUTE},
}

// Opcodes returns every defined opcode in encoding order.
func Opcodes() []Opcode {
	var ret []Opcode
	for i, o := range opcodeTable {
		if o.mode != MODE_UNIMPLEMENTED {
			ret = append(ret, Opcode(i))
		}
	}
	return ret
}

// Valid reports whether o is in the opcode table.
func (o Opcode) Valid() bool {
	return opcodeTable[o].mode != MODE_UNIMPLEMENTED
}

// Mnemonic returns the 3 letter instruction name or "" for an invalid opcode.
func (o Opcode) Mnemonic() string {
	return opcodeTable[o].mnemonic
}

// Mode returns the addressing mode for o.
func (o Opcode) Mode() Mode {
	return opcodeTable[o].mode
}

// String returns the mnemonic and mode in the form "LDA d,x".
func (o Opcode) String() string {
	if !o.Valid() {
		return fmt.Sprintf("UNKNOWN(0x%.2X)", uint8(o))
	}
	return fmt.Sprintf("%s %s", o.Mnemonic(), o.Mode())
}
