// disassembler takes a filename and loads it and then
// disassembles it to stdout starting at the first instruction.
// If the filename ends in .prg (case insensitive) it will assume
// this is a C64 style program file and use the first 2 bytes as the load
// address. If the load address is 0x0801 it will then assume it's a
// BASIC program and list it until it ends. At that point it'll
// disassemble until the loaded bytes are used up.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/jmchacon/nes6502/c64basic"
	"github.com/jmchacon/nes6502/disassemble"
	"github.com/jmchacon/nes6502/memory"
)

var (
	startPC = flag.Int("start_pc", 0x0000, "PC value to start disassembling")
	offset  = flag.Int("offset", 0x0000, "Offset into RAM to start loading data. All other RAM will be zero'd out. Ignored for PRG files.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [-start_pc <PC> -offset <offset>] <filename>", os.Args[0])
	}
	fn := flag.Args()[0]
	if *startPC < 0 || *startPC > 0xFFFF || *offset < 0 || *offset > 0xFFFF {
		log.Fatal("-start_pc and -offset must be between 0-65535")
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	pc, off := uint16(*startPC), uint16(*offset)
	prg := strings.HasSuffix(strings.ToLower(fn), ".prg")
	if prg {
		fmt.Println("PRG program file")
		if len(b) < 2 {
			log.Fatalf("%s is too short to be a PRG file", fn)
		}
		// We're supplied with the load offset instead of using the flag.
		off = uint16(b[1])<<8 | uint16(b[0])
		pc = off
		b = b[2:]
	}
	lines, err := listing(b, pc, off, prg && off == c64basic.Start)
	if err != nil {
		log.Fatalf("Can't disassemble %s - %v", fn, err)
	}
	fmt.Printf("0x%.2X bytes at pc: %.4X\n", len(b), pc)
	for _, l := range lines {
		fmt.Println(l)
	}
}

// listing loads b at offset in an otherwise zero'd 64k and disassembles from pc
// until as many bytes as b holds have been covered. If basic is set the BASIC
// program at pc is listed first and disassembly starts after it.
func listing(b []byte, pc, offset uint16, basic bool) ([]string, error) {
	max := 0x10000 - int(offset)
	if l := len(b); l > max {
		log.Printf("Length %d at offset %d too long, truncating to 64k", l, offset)
		b = b[:max]
	}
	r := memory.New64K(0x00)
	if _, err := r.Load(bytes.NewReader(b), offset, len(b)); err != nil {
		return nil, err
	}
	var out []string
	cnt := 0
	if basic {
		for {
			l, next, err := c64basic.List(pc, r)
			if err != nil {
				return nil, fmt.Errorf("%.4X %s: %w", pc, l, err)
			}
			if next == 0x0000 {
				// Account for the 2 NULs indicating end of program
				pc += 2
				break
			}
			if next <= pc {
				return nil, fmt.Errorf("BASIC line at %.4X links backwards to %.4X", pc, next)
			}
			out = append(out, fmt.Sprintf("%.4X %s", pc, l))
			pc = next
		}
		cnt = int(pc - offset)
	}
	// Can't base it on PC since it may rollover so just disassemble until we run out of buffer.
	for cnt < len(b) {
		dis, n := disassemble.Step(pc, r)
		pc += uint16(n)
		cnt += n
		out = append(out, dis)
	}
	return out, nil
}
