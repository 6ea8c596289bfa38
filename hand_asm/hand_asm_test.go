package main

import (
	"strings"
	"testing"

	"github.com/ginkxo/6502/cpu"
)

func TestParse(t *testing.T) {
	in := `; hand assembled loader
FFFC A9 84	LDA #$84
0042 37 (*) data
1000 BD 02 44
not a listing line
`
	m, err := parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	tests := []struct {
		addr uint16
		want uint8
	}{
		{0xFFFC, 0xA9},
		{0xFFFD, 0x84},
		{0x0042, 0x37},
		{0x1000, 0xBD},
		{0x1001, 0x02},
		{0x1002, 0x44},
		{0x1003, 0x00},
	}
	for _, test := range tests {
		if got, want := m.Read(test.addr), test.want; got != want {
			t.Errorf("Bad byte at 0x%.4X. Got 0x%.2X and want 0x%.2X", test.addr, got, want)
		}
	}

	// And the result runs.
	c := cpu.New()
	if _, err := c.Execute(2, m); err != nil {
		t.Fatalf("Can't run parsed image: %v", err)
	}
	if got, want := c.A, uint8(0x84); got != want {
		t.Errorf("Bad A. Got 0x%.2X and want 0x%.2X", got, want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"1000 A9 84 00 00\n",
		"1000 ZZ\n",
		"1000 \n",
		"1000 100\n",
	} {
		if _, err := parse(strings.NewReader(in)); err == nil {
			t.Errorf("Didn't get an error for %q", in)
		}
	}
}
