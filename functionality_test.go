// Package functionality does basic end-end verification
// of the 6502 core with a flat memory map.
package functionality

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/ginkxo/6502/cpu"
	"github.com/ginkxo/6502/disassemble"
	"github.com/ginkxo/6502/memory"
	"github.com/go-test/deep"
)

const START = uint16(0x0600)

func TestResetVectorProgram(t *testing.T) {
	c := cpu.New()
	r := memory.New()
	for i, v := range r.Addr {
		if v != 0x00 {
			t.Fatalf("Memory not zeroed at 0x%.4X", i)
		}
	}
	r.Addr[cpu.RESET_VECTOR] = uint8(cpu.LDA_IMMEDIATE)
	r.Addr[cpu.RESET_VECTOR+1] = 0x84
	cycles, err := c.Execute(2, r)
	if err != nil {
		t.Fatalf("Unexpected error: %v\nstate: %s", err, spew.Sdump(c))
	}
	if got, want := cycles, 2; got != want {
		t.Errorf("Invalid cycle count - got %d want %d", got, want)
	}
	if got, want := c.A, uint8(0x84); got != want {
		t.Errorf("A register doesn't have correct value. Got 0x%.2X and want 0x%.2X", got, want)
	}
}

func TestLoad(t *testing.T) {
	r := memory.New()
	prog := []uint8{
		0xA2, 0x10, // LDX #$10
		0xA1, 0xEA, // LDA ($EA,x)
		0xA0, 0xFF, // LDY #$FF
		0xBE, 0x02, 0x44, // LDX $4402,y
		0xB1, 0xFA, // LDA ($FA),y
		0xB4, 0x80, // LDY $80,x
		0x20, 0x00, 0x80, // JSR $8000
	}
	if _, err := r.LoadImage(START, prog); err != nil {
		t.Fatalf("Can't load program: %v", err)
	}
	// (0x00FA) points to 0x551F
	r.WriteWord(0x551F, 0x00FA, 0)
	r.Addr[0x551F] = 0xCD
	// 0x4402 + 0xFF
	r.Addr[0x4501] = 0x37
	// 0x551F + 0xFF
	r.Addr[0x561E] = 0xAB
	// 0x80 + 0x37 (X)
	r.Addr[0x00B7] = 0x42

	c := cpu.New()
	c.PC = START

	tests := []struct {
		name   string
		cycles int
	}{
		{"LDX #$10", 2},
		{"LDA ($EA,x)", 6},
		{"LDY #$FF", 2},
		{"LDX $4402,y", 5},
		{"LDA ($FA),y", 6},
		{"LDY $80,x", 4},
		{"JSR $8000", 3},
	}
	total := 0
	for _, test := range tests {
		dis, _ := disassemble.Step(c.PC, r)
		cycles, err := c.Step(r)
		if err != nil {
			t.Fatalf("%s: CPU failed unexpectedly: %v\nstate: %s", test.name, err, spew.Sdump(c))
		}
		if got, want := cycles, test.cycles; got != want {
			t.Errorf("%s (%s): Invalid cycle count - got %d want %d", test.name, dis, got, want)
		}
		total += cycles
	}
	want := cpu.Registers{
		PC: START + uint16(len(prog)),
		SP: 0x00FF,
		A:  0xAB,
		X:  0x37,
		Y:  0x42,
	}
	if diff := deep.Equal(c.Registers, want); diff != nil {
		t.Errorf("Bad final state: %v", diff)
	}

	// Running the whole thing through Execute costs the same.
	c.Reset()
	c.PC = START
	cycles, err := c.Execute(total, r)
	if err != nil {
		t.Fatalf("Execute failed: %v\nstate: %s", err, spew.Sdump(c))
	}
	if got, want := cycles, total; got != want {
		t.Errorf("Execute: Invalid cycle count - got %d want %d", got, want)
	}
	if diff := deep.Equal(c.Registers, want); diff != nil {
		t.Errorf("Execute: bad final state: %v", diff)
	}
}

func TestInvalidInstruction(t *testing.T) {
	c := cpu.New()
	r := memory.New()
	r.Addr[cpu.RESET_VECTOR] = 0x02
	_, err := c.Execute(2, r)
	if err == nil {
		t.Fatalf("Didn't get an error for an invalid opcode?\nstate: %s", spew.Sdump(c))
	}
	if _, ok := err.(cpu.InvalidInstruction); !ok {
		t.Errorf("Wrong error type %T: %v", err, err)
	}
	if got, want := c.PC, cpu.RESET_VECTOR+1; got != want {
		t.Errorf("Bad PC. Got 0x%.4X and want 0x%.4X", got, want)
	}
}
