// convertprg takes a C64 style PRG file (or a raw binary with -raw)
// and converts it into a 64k bin image for running under romtest.
// Execution starts at 0xD000 which will JSR to the start PC given and
// halt once that returns, so -success_pc 0xD003 marks a clean finish.
// If no start PC is given for a PRG loading at 0x0801 the target of
// its BASIC SYS line is used instead.
// BRK/IRQ/NMI vectors all point at 0xC000 which halts the processor.
//
// For PRG files parts of zero page and low RAM are initialized with
// C64 values (such as the vectors used for finding start of basic, etc)
// since test programs in that format tend to assume them. 0xFFD2 (CHROUT)
// is a bare RTS.
//
// The output file is named after the input with .bin
// appended onto the end.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmchacon/nes6502/c64basic"
	"github.com/jmchacon/nes6502/memory"
)

var (
	startPC  = flag.Int("start_pc", 0x0000, "PC value to start execution")
	raw      = flag.Bool("raw", false, "Input has no PRG load address header")
	loadAddr = flag.Int("load_addr", 0x0000, "Load address for -raw input")
)

const (
	// HaltStub is where IRQ/NMI/BRK land. It holds a halt opcode.
	HaltStub = 0xC000
	// Boot is the reset vector target which calls the program.
	Boot = 0xD000
	// Done is the halt the boot code reaches once the program returns.
	Done = Boot + 3
)

// c64 holds RAM presets based from data in http://sta.c64.org/cbm64mem.html.
var c64 = map[uint16]uint8{
	// Zero page.
	0x0000: 0x2F,
	0x0001: 0x37,
	0x0003: 0xAA,
	0x0004: 0xB1,
	0x0005: 0x91,
	0x0006: 0xB3,
	0x0016: 0x19,
	0x002B: 0x01, // Pointer to start of BASIC area
	0x002C: 0x08,
	0x0038: 0xA0, // Pointer to end of BASIC area
	0x0053: 0x03,
	0x0054: 0x4C,
	0x0091: 0xFF,
	0x009A: 0x03,
	0x00B2: 0x3C,
	0x00B3: 0x03,
	0x00C8: 0x27,
	0x00D5: 0x27,

	// Some other random locations in RAM that have presets
	// which may be used in test programs assuming c64.
	0x0282: 0x08,
	0x0284: 0xA0,
	0x0288: 0x04,
	0x0300: 0x8B,
	0x0301: 0xE3,
	0x0302: 0x83,
	0x0303: 0xA4,
	0x0304: 0x7C,
	0x0305: 0xA5,
	0x0306: 0x1A,
	0x0307: 0xA7,
	0x0308: 0xE4,
	0x0309: 0xA7,
	0x030A: 0x86,
	0x030B: 0xAE,
	0x0310: 0x4C,
	0x0314: 0x31,
	0x0315: 0xEA,
	0x0316: 0x66,
	0x0317: 0xFE,
	0x0318: 0x47,
	0x0319: 0xFE,
	0x031A: 0x4A,
	0x031B: 0xF3,
	0x031C: 0x91,
	0x031D: 0xF2,
	0x031E: 0x0E,
	0x031F: 0xF2,
	0x0320: 0x50,
	0x0321: 0xF2,
	0x0322: 0x33,
	0x0323: 0xF3,
	0x0324: 0x57,
	0x0325: 0xF1,
	0x0326: 0xCA,
	0x0327: 0xF1,
	0x0328: 0xED,
	0x0329: 0xF6,
	0x032A: 0x3E,
	0x032B: 0xF1,
	0x032C: 0x2F,
	0x032D: 0xF3,
	0x032E: 0x66,
	0x032F: 0xFE,
	0x0330: 0xA5,
	0x0331: 0xF4,
	0x0332: 0xED,
	0x0333: 0xF5,
}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s --start_pc=XXXX [--raw --load_addr=XXXX] <filename>", os.Args[0])
	}
	if *startPC < 0 || *startPC > 65535 {
		log.Fatal("--start_pc out of range. Must be between 0-65535")
	}
	if *loadAddr < 0 || *loadAddr > 65535 {
		log.Fatal("--load_addr out of range. Must be between 0-65535")
	}
	fn := flag.Args()[0]
	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	out, addr, err := convert(b, *raw, uint16(*loadAddr), uint16(*startPC))
	if err != nil {
		log.Fatalf("Can't convert %s - %v", fn, err)
	}
	fmt.Printf("Addr is 0x%.4X\n", addr)

	outfn := fn + ".bin"
	if err := os.WriteFile(outfn, out, 0644); err != nil {
		log.Fatalf("Can't write %q: %v", outfn, err)
	}
}

// convert builds the 64k image for b and returns it along with the address b was placed at.
// A zero start PC for a BASIC PRG is taken from its SYS line.
func convert(b []byte, raw bool, load, start uint16) ([]byte, uint16, error) {
	// We know this is a 64k image so allocate and zero it.
	out := make([]byte, 0x10000)

	addr := load
	if !raw {
		if len(b) < 2 {
			return nil, 0, errors.New("PRG file too short for a load address")
		}
		// First 2 bytes are the load address.
		addr = uint16(b[1])<<8 | uint16(b[0])
		b = b[2:]
		for a, v := range c64 {
			out[a] = v
		}
	}

	max := 0x10000 - int(addr)
	if l := len(b); l > max {
		log.Printf("Length %d at offset %d too long, truncating to 64k", l, addr)
		b = b[:max]
	}
	copy(out[addr:], b)

	if !raw && start == 0 && addr == c64basic.Start {
		r := memory.New64K(0x00)
		if _, err := r.Load(bytes.NewReader(out), 0x0000, len(out)); err != nil {
			return nil, 0, err
		}
		sys, ok := c64basic.SysTarget(addr, r)
		if !ok {
			return nil, 0, errors.New("no start PC given and no SYS line found in BASIC")
		}
		start = sys
	}

	// Now setup a starting routine and vectors. These go in after the program so
	// they're always present.
	out[HaltStub] = 0x02 // HLT

	out[Boot] = 0x20 // JSR <start>
	out[Boot+1] = byte(start & 0xFF)
	out[Boot+2] = byte(start >> 8)
	out[Done] = 0x02 // HLT

	out[0xFFD2] = 0x60 // RTS

	for _, v := range []int{0xFFFA, 0xFFFE} {
		out[v] = byte(HaltStub & 0xFF)
		out[v+1] = byte(HaltStub >> 8)
	}
	out[0xFFFC] = byte(Boot & 0xFF)
	out[0xFFFD] = byte(Boot >> 8)
	return out, addr, nil
}
