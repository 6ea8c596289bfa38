// Package cpu defines the 6502 architecture and provides
// the methods needed to run the CPU and interface with it
// for emulation.
//
// Execution is cycle accounted rather than cycle stepped. Each
// instruction reports the number of clock cycles the real part
// would have spent on it (including page crossing penalties) and
// Execute runs instructions until a caller supplied budget is used up.
package cpu

import (
	"fmt"

	"github.com/ginkxo/6502/memory"
)

const (
	RESET_VECTOR = uint16(0xFFFC)

	// STACK_BASE is page 1 where the stack lives. The effective stack address
	// is STACK_BASE + (SP & 0xFF).
	STACK_BASE = uint16(0x0100)

	// Reset value for SP.
	STACK_RESET = uint16(0x00FF)
)

// Registers holds the programmer visible state of the processor.
// Each status flag is kept as its own 0/1 byte rather than packed into P.
type Registers struct {
	PC uint16 // Program counter
	SP uint16 // Stack pointer (only the low 8 bits are meaningful)

	A uint8 // Accumulator register
	X uint8 // X register
	Y uint8 // Y register

	Carry     uint8
	Zero      uint8
	Interrupt uint8
	Decimal   uint8
	Break     uint8
	Overflow  uint8
	Negative  uint8
}

// Processor is a 6502 core. It's not safe for concurrent use.
type Processor struct {
	Registers
	op       Opcode // The current working opcode
	opAddr   uint16 // Address computed during opcode (effective address or JSR target).
	opCycles int    // Cycles spent so far on the current opcode.
}

// A few custom error types to distinguish why the CPU stopped

// InvalidInstruction is returned when the fetched opcode isn't in the opcode table.
type InvalidInstruction struct {
	Opcode uint8
	PC     uint16 // Address the opcode was fetched from.
}

// Error implements the interface for error types.
func (e InvalidInstruction) Error() string {
	return fmt.Sprintf("invalid instruction 0x%.2X at PC 0x%.4X", e.Opcode, e.PC)
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// New returns a processor in reset state.
func New() *Processor {
	p := &Processor{}
	p.Reset()
	return p
}

// Reset puts the processor in its power on state. PC points at the reset vector itself
// (it is not loaded indirectly from it), SP is 0xFF and everything else is zero.
func (p *Processor) Reset() {
	p.Registers = Registers{
		PC: RESET_VECTOR,
		SP: STACK_RESET,
	}
	p.op = 0x00
	p.opAddr = 0x0000
	p.opCycles = 0
}

// Execute runs instructions from memory until cycles is used up and returns the
// number of cycles actually consumed. The budget is only checked before fetching
// a new instruction so the last one may run past it.
// On an invalid instruction the cycles consumed up to and including the bad fetch
// are returned along with the error. A budget <= 0 does nothing.
func (p *Processor) Execute(cycles int, r memory.Reader) (int, error) {
	requested := cycles
	for cycles > 0 {
		n, err := p.Step(r)
		cycles -= n
		if err != nil {
			return requested - cycles, err
		}
	}
	return requested - cycles, nil
}

// Step runs exactly one instruction and returns the cycles it took.
func (p *Processor) Step(r memory.Reader) (int, error) {
	p.opCycles = 0
	p.op = Opcode(p.fetchByte(r))
	err := p.processOpcode(r)
	return p.opCycles, err
}

func (p *Processor) processOpcode(r memory.Reader) error {
	// Opcode descriptions/timing/etc:
	// http://obelisk.me.uk/6502/reference.html
	//
	// NOTE: Loads don't update Z/N here. Flag computation isn't implemented.
	switch p.op {
	case LDA_IMMEDIATE:
		// LDA #i
		p.A = p.addrImmediate(r)
	case LDA_ZERO_PAGE:
		// LDA d
		p.A = p.addrZP(r)
	case LDA_ZERO_PAGE_X:
		// LDA d,x
		p.A = p.addrZPXY(r, p.X)
	case LDA_ABSOLUTE:
		// LDA a
		p.A = p.addrAbsolute(r)
	case LDA_ABSOLUTE_X:
		// LDA a,x
		p.A = p.addrAbsoluteXY(r, p.X)
	case LDA_ABSOLUTE_Y:
		// LDA a,y
		p.A = p.addrAbsoluteXY(r, p.Y)
	case LDA_INDIRECT_X:
		// LDA (d,x)
		p.A = p.addrIndirectX(r)
	case LDA_INDIRECT_Y:
		// LDA (d),y
		p.A = p.addrIndirectY(r)
	case LDX_IMMEDIATE:
		// LDX #i
		p.X = p.addrImmediate(r)
	case LDX_ZERO_PAGE:
		// LDX d
		p.X = p.addrZP(r)
	case LDX_ZERO_PAGE_Y:
		// LDX d,y
		p.X = p.addrZPXY(r, p.Y)
	case LDX_ABSOLUTE:
		// LDX a
		p.X = p.addrAbsolute(r)
	case LDX_ABSOLUTE_Y:
		// LDX a,y
		p.X = p.addrAbsoluteXY(r, p.Y)
	case LDY_IMMEDIATE:
		// LDY #i
		p.Y = p.addrImmediate(r)
	case LDY_ZERO_PAGE:
		// LDY d
		p.Y = p.addrZP(r)
	case LDY_ZERO_PAGE_X:
		// LDY d,x
		p.Y = p.addrZPXY(r, p.X)
	case LDY_ABSOLUTE:
		// LDY a
		p.Y = p.addrAbsolute(r)
	case LDY_ABSOLUTE_X:
		// LDY a,x
		p.Y = p.addrAbsoluteXY(r, p.X)
	case JSR_ABSOLUTE:
		// JSR a
		p.iJSRIncomplete(r)
	default:
		if p.op.Valid() {
			return InvalidCPUState{fmt.Sprintf("no handler for %s", p.op)}
		}
		return InvalidInstruction{Opcode: uint8(p.op), PC: p.PC - 1}
	}
	return nil
}

// fetchByte reads the byte at PC and advances it. 1 cycle.
func (p *Processor) fetchByte(r memory.Reader) uint8 {
	v := r.Read(p.PC)
	p.PC++
	p.opCycles++
	return v
}

// fetchWord reads a little endian word at PC and advances past it. 2 cycles.
func (p *Processor) fetchWord(r memory.Reader) uint16 {
	lo := p.fetchByte(r)
	hi := p.fetchByte(r)
	return (uint16(hi) << 8) | uint16(lo)
}

// readByte reads addr without touching PC. 1 cycle.
func (p *Processor) readByte(r memory.Reader, addr uint16) uint8 {
	p.opCycles++
	return r.Read(addr)
}

// readByteZeroPage reads from page zero. 1 cycle.
func (p *Processor) readByteZeroPage(r memory.Reader, addr uint8) uint8 {
	return p.readByte(r, uint16(addr))
}

// readWordZeroPage reads a little endian pointer stored in page zero. 2 cycles.
// The high byte comes from addr+1 wrapped within page zero so a pointer at 0xFF
// takes its high byte from 0x00.
func (p *Processor) readWordZeroPage(r memory.Reader, addr uint8) uint16 {
	lo := p.readByteZeroPage(r, addr)
	hi := p.readByteZeroPage(r, addr+1)
	return (uint16(hi) << 8) | uint16(lo)
}

// pageCrossed is true if base and addr are on different pages.
func pageCrossed(base, addr uint16) bool {
	return (base & 0xFF00) != (addr & 0xFF00)
}

// addrImmediate implements immediate mode - #i
// 2 cycles total with the opcode fetch.
func (p *Processor) addrImmediate(r memory.Reader) uint8 {
	p.opAddr = p.PC
	return p.fetchByte(r)
}

// addrZP implements Zero page mode - d
// 3 cycles total with the opcode fetch.
func (p *Processor) addrZP(r memory.Reader) uint8 {
	a := p.fetchByte(r)
	p.opAddr = uint16(a)
	return p.readByteZeroPage(r, a)
}

// addrZPXY implements Zero page plus X or Y mode - d,x / d,y
// The index is added as a uint8 so it wraps within page zero. Adding it
// costs a cycle for 4 total.
func (p *Processor) addrZPXY(r memory.Reader, reg uint8) uint8 {
	a := p.fetchByte(r) + reg
	p.opCycles++
	p.opAddr = uint16(a)
	return p.readByteZeroPage(r, a)
}

// addrAbsolute implements absolute mode - a
// 4 cycles total with the opcode fetch.
func (p *Processor) addrAbsolute(r memory.Reader) uint8 {
	p.opAddr = p.fetchWord(r)
	return p.readByte(r, p.opAddr)
}

// addrAbsoluteXY implements absolute plus X or Y mode - a,x / a,y
// 4 cycles total plus 1 if the index moves the address onto another page.
// The 16 bit sum wraps so 0xFFFF,x with X == 1 reads 0x0000.
func (p *Processor) addrAbsoluteXY(r memory.Reader, reg uint8) uint8 {
	base := p.fetchWord(r)
	p.opAddr = base + uint16(reg)
	if pageCrossed(base, p.opAddr) {
		p.opCycles++
	}
	return p.readByte(r, p.opAddr)
}

// addrIndirectX implements Zero page indirect plus X mode - (d,x)
// X is added to the pointer as a uint8 (1 cycle) and the pointer itself wraps
// within page zero. 6 cycles total.
func (p *Processor) addrIndirectX(r memory.Reader) uint8 {
	ptr := p.fetchByte(r) + p.X
	p.opCycles++
	p.opAddr = p.readWordZeroPage(r, ptr)
	return p.readByte(r, p.opAddr)
}

// addrIndirectY implements Zero page indirect plus Y mode - (d),y
// Y is added to the 16 bit base read from page zero at no cost. 5 cycles total
// plus 1 if the index crosses a page.
func (p *Processor) addrIndirectY(r memory.Reader) uint8 {
	ptr := p.fetchByte(r)
	base := p.readWordZeroPage(r, ptr)
	p.opAddr = base + uint16(p.Y)
	if pageCrossed(base, p.opAddr) {
		p.opCycles++
	}
	return p.readByte(r, p.opAddr)
}

// iJSRIncomplete is a partial JSR. Only the target address is fetched (3 cycles)
// and left in p.opAddr.
// TODO(ginkxo): Push PC-1 (high byte then low) at STACK_BASE+SP decrementing SP after
// each byte and load PC with the target, 6 cycles total. Needs memory.Ram in Step.
func (p *Processor) iJSRIncomplete(r memory.Reader) {
	p.opAddr = p.fetchWord(r)
}
