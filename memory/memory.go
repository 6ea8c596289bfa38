// Package memory defines the basic interfaces for working
// with a 6502 family memory map along with a flat 64k
// implementation where every address is plain RAM.
package memory

import "fmt"

// MaxMem is the size of the 6502 address space.
const MaxMem = 65536

// Reader is the read side of a memory map. The CPU only needs this
// since none of the implemented opcodes store anything.
type Reader interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
}

type Ram interface {
	Reader
	// Write updates addr with the new value.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to all zeros.
	PowerOn()
}

// Flat is 64k of RAM with no mirroring or ROM regions.
// Addr may be set directly to stage programs.
type Flat struct {
	Addr [MaxMem]uint8
}

// New returns a zero filled memory image.
func New() *Flat {
	return &Flat{}
}

// Read implements Reader.
func (f *Flat) Read(addr uint16) uint8 {
	return f.Addr[addr]
}

// Write implements Ram.
func (f *Flat) Write(addr uint16, val uint8) {
	f.Addr[addr] = val
}

// PowerOn zeroes every cell.
func (f *Flat) PowerOn() {
	for i := range f.Addr {
		f.Addr[i] = 0x00
	}
}

// WriteWord stores val little endian at addr and addr+1 and returns cycles
// reduced by the 2 write cycles this takes.
// Writing at 0xFFFF puts the high byte at 0x0000 the same as the address bus wraps.
func (f *Flat) WriteWord(val uint16, addr uint16, cycles int) int {
	f.Addr[addr] = uint8(val & 0xFF)
	f.Addr[uint16(addr+1)] = uint8((val & 0xFF00) >> 8)
	return cycles - 2
}

// TruncatedImage is returned from LoadImage when the data runs past the end of memory.
type TruncatedImage struct {
	Offset uint16
	Length int
}

// Error implements the interface for error types.
func (e TruncatedImage) Error() string {
	return fmt.Sprintf("image of length %d at offset 0x%.4X runs past 0xFFFF", e.Length, e.Offset)
}

// LoadImage copies b into memory starting at offset and returns the number of bytes
// copied. Anything past 0xFFFF is dropped and a TruncatedImage error is returned along
// with the partial count.
func (f *Flat) LoadImage(offset uint16, b []byte) (int, error) {
	n := copy(f.Addr[offset:], b)
	if n != len(b) {
		return n, TruncatedImage{Offset: offset, Length: len(b)}
	}
	return n, nil
}
