package disassemble

import (
	"strings"
	"testing"

	"github.com/ginkxo/6502/cpu"
	"github.com/ginkxo/6502/memory"
)

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		prog  []uint8
		want  string
		count int
	}{
		{"LDA #i", []uint8{0xA9, 0x84}, "LDA #84", 2},
		{"LDA d", []uint8{0xA5, 0x42}, "LDA 42", 2},
		{"LDY d,x", []uint8{0xB4, 0x42}, "LDY 42,X", 2},
		{"LDX d,y", []uint8{0xB6, 0x42}, "LDX 42,Y", 2},
		{"LDA (d,x)", []uint8{0xA1, 0xEA}, "LDA (EA,X)", 2},
		{"LDA (d),y", []uint8{0xB1, 0xEA}, "LDA (EA),Y", 2},
		{"LDA a", []uint8{0xAD, 0x02, 0x44}, "LDA 4402", 3},
		{"LDY a,x", []uint8{0xBC, 0x02, 0x44}, "LDY 4402,X", 3},
		{"LDX a,y", []uint8{0xBE, 0x02, 0x44}, "LDX 4402,Y", 3},
		{"JSR a", []uint8{0x20, 0x34, 0x12}, "JSR 1234", 3},
		{"Unknown", []uint8{0xEA, 0x00}, ".BYTE EA", 1},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r := memory.New()
			if _, err := r.LoadImage(0x1000, test.prog); err != nil {
				t.Fatalf("Can't load: %v", err)
			}
			out, cnt := Step(0x1000, r)
			if !strings.HasPrefix(out, "1000 ") {
				t.Errorf("Missing PC prefix: %q", out)
			}
			if got, want := strings.TrimSpace(out[13:]), test.want; got != want {
				t.Errorf("Bad disassembly. Got %q and want %q (full %q)", got, want, out)
			}
			if got, want := cnt, test.count; got != want {
				t.Errorf("Bad length. Got %d and want %d", got, want)
			}
		})
	}
}

func TestStepMatchesTable(t *testing.T) {
	r := memory.New()
	for _, o := range cpu.Opcodes() {
		r.Addr[0x0000] = uint8(o)
		out, cnt := Step(0x0000, r)
		if !strings.Contains(out, o.Mnemonic()) {
			t.Errorf("%s: mnemonic missing from %q", o, out)
		}
		if got, want := cnt, o.Mode().Bytes(); got != want {
			t.Errorf("%s: bad length. Got %d and want %d", o, got, want)
		}
	}
}
