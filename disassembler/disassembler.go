// disassembler takes a filename and loads it and then
// disassembles it to stdout starting at the first instruction.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/ginkxo/6502/disassemble"
	"github.com/ginkxo/6502/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}
	if *offset < 0 || *offset > 0xFFFF {
		log.Fatal("--offset out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]

	f := memory.New()
	b, err := ioutil.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	n, err := f.LoadImage(uint16(*offset), b)
	if err != nil {
		log.Printf("Truncating to 64k: %v", err)
	}
	pc := uint16(*startPC)
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", n, pc)
	cnt := 0
	// Can't base it on PC since it may rollover so just disassemble until we run out of buffer.
	for cnt < n {
		dis, off := disassemble.Step(pc, f)
		pc += uint16(off)
		cnt += off
		fmt.Printf("%s\n", dis)
	}
}
