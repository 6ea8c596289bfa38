// run6502 loads a memory image, runs the CPU for a cycle budget
// and prints the resulting register and memory state.
//
// With no image the demo program LDA #$84 is placed at the reset
// vector. Execution always starts at PC 0xFFFC unless -start_pc is given.
// An invalid instruction logs the processor state and exits with status 1.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/ginkxo/6502/cpu"
	"github.com/ginkxo/6502/disassemble"
	"github.com/ginkxo/6502/memory"
)

var (
	image   = flag.String("image", "", "Binary file to load. If unset a 2 byte LDA #$84 program is staged at the reset vector.")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading the image. All other RAM is zero'd out.")
	startPC = flag.Int("start_pc", int(cpu.RESET_VECTOR), "PC value to start execution")
	cycles  = flag.Int("cycles", 2, "Cycle budget to execute")
	dump    = flag.String("dump", "0x0001 0x0002 0x0003", "Space separated list of addresses to print after execution")
	trace   = flag.Bool("trace", false, "If set disassemble each instruction before it runs")
	spewOut = flag.Bool("spew", false, "If set dump the full processor state with spew")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 0 {
		log.Fatalf("Invalid command: %s [-image <file> -offset <offset> -cycles <n>]", os.Args[0])
	}
	if *offset < 0 || *offset > 0xFFFF {
		log.Fatal("--offset out of range. Must be between 0-65535")
	}
	if *startPC < 0 || *startPC > 0xFFFF {
		log.Fatal("--start_pc out of range. Must be between 0-65535")
	}
	addrs, err := parseAddrs(*dump)
	if err != nil {
		log.Fatalf("Bad --dump: %v", err)
	}

	r := memory.New()
	if *image != "" {
		b, err := ioutil.ReadFile(*image)
		if err != nil {
			log.Fatalf("Can't open %s - %v", *image, err)
		}
		if _, err := r.LoadImage(uint16(*offset), b); err != nil {
			log.Printf("Truncating: %v", err)
		}
	} else {
		r.Addr[cpu.RESET_VECTOR] = uint8(cpu.LDA_IMMEDIATE)
		r.Addr[cpu.RESET_VECTOR+1] = 0x84
	}

	c := cpu.New()
	c.PC = uint16(*startPC)

	fmt.Printf("init cycles: %d\n", *cycles)
	used, err := run(c, r, *cycles)
	if err != nil {
		log.Printf("Invalid memory and instruction situation: %v", err)
		printState(c, r, append(addrs, 0xFFFB, 0xFFFC, 0xFFFD, 0xFFFE, 0xFFFF))
		os.Exit(1)
	}
	fmt.Printf("cycles: %d\n", used)
	printState(c, r, addrs)
}

// run is Execute with optional tracing. The budget is checked the same way,
// before each instruction.
func run(c *cpu.Processor, r memory.Reader, budget int) (int, error) {
	if !*trace {
		return c.Execute(budget, r)
	}
	total := 0
	for total < budget {
		dis, _ := disassemble.Step(c.PC, r)
		fmt.Println(dis)
		n, err := c.Step(r)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func printState(c *cpu.Processor, r memory.Reader, addrs []uint16) {
	fmt.Printf("program counter: 0x%.4X\n", c.PC)
	fmt.Printf("stack pointer: 0x%.4X\n", c.SP)
	fmt.Printf("reg A: 0x%.2X X: 0x%.2X Y: 0x%.2X\n", c.A, c.X, c.Y)
	fmt.Printf("flags C:%d Z:%d I:%d D:%d B:%d V:%d N:%d\n", c.Carry, c.Zero, c.Interrupt, c.Decimal, c.Break, c.Overflow, c.Negative)
	fmt.Println("memory:")
	for _, a := range addrs {
		fmt.Printf("[0x%.4X] : 0x%.2X\n", a, r.Read(a))
	}
	if *spewOut {
		fmt.Print(spew.Sdump(c.Registers))
	}
}

func parseAddrs(s string) ([]uint16, error) {
	var ret []uint16
	for _, f := range strings.Fields(s) {
		v, err := strconv.ParseUint(f, 0, 16)
		if err != nil {
			return nil, err
		}
		ret = append(ret, uint16(v))
	}
	return ret, nil
}
