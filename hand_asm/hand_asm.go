// hand_asm takes a filename and produces a 64k bin file
// from parsing the input as a hand assembled file
// of the form:
//
// XXXX OP A1 A2 ....
//
// Where XXXX is the address field and OP is the opcode
// A1,A2 are then optional params as needed. Anything after
// a tab or a (*) marker is a comment. Lines that don't start
// with a 4 digit hex address are skipped.
// The output can be run directly with run6502 -image.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/ginkxo/6502/memory"
)

var lineRE = regexp.MustCompile(`^[0-9A-F]{4} `)

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s <input> <output>", os.Args[0])
	}
	fn := flag.Args()[0]
	out := flag.Args()[1]

	in, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", fn, err)
	}
	defer in.Close()
	m, err := parse(in)
	if err != nil {
		log.Fatalf("Can't process %q - %v", fn, err)
	}

	of, err := os.Create(out)
	if err != nil {
		log.Fatalf("Can't open output %q - %v", out, err)
	}
	n, err := of.Write(m.Addr[:])
	if got, want := n, len(m.Addr); got != want {
		log.Fatalf("Short write to %q. Got %d and want %d", out, got, want)
	}
	if err != nil {
		log.Fatalf("Got error writing to %q - %v", out, err)
	}
	if err := of.Close(); err != nil {
		log.Fatalf("Error closing %q - %v", out, err)
	}
}

// parse reads a hand assembled listing and places every byte at its address.
func parse(r io.Reader) (*memory.Flat, error) {
	m := memory.New()
	scanner := bufio.NewScanner(r)
	l := 0
	for scanner.Scan() {
		t := scanner.Text()
		l++
		if !lineRE.MatchString(t) {
			continue
		}
		if i := strings.IndexByte(t, '\t'); i >= 0 {
			t = t[:i]
		}
		if i := strings.Index(t, "(*)"); i >= 0 {
			t = t[:i]
		}
		toks := strings.Fields(t)
		// Address plus 1-3 bytes.
		if len(toks) < 2 || len(toks) > 4 {
			return nil, fmt.Errorf("invalid line %d - %q", l, scanner.Text())
		}
		a, err := strconv.ParseUint(toks[0], 16, 16)
		if err != nil {
			return nil, fmt.Errorf("bad address on line %d %q - %v", l, t, err)
		}
		addr := uint16(a)
		for _, v := range toks[1:] {
			b, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("can't process input line %d %q - %v", l, t, err)
			}
			m.Write(addr, uint8(b))
			addr++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return m, nil
}
