// hand_asm takes a filename and produces a bin file
// from parsing the output as a hand assembled file
// of the form:
//
// XXXX OP A1 A2 A3 ....
//
// Where XXXX is the address field and OP is the opcode
// A1,A2,A3 are then optional params as needed. Anything after
// a tab or a (*) marker is commentary and lines which don't start
// with an address are skipped.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"regexp"
	"strconv"
	"strings"
)

var (
	offset = flag.Int("offset", 0x0000, "Offset to start writing assembled data. Everything prior is zero filled.")
)

func main() {
	flag.Parse()
	if len(flag.Args()) != 2 {
		log.Fatalf("Invalid command: %s [-offset <offset>] <input> <output>", os.Args[0])
	}
	fn := flag.Args()[0]
	out := flag.Args()[1]

	in, err := os.Open(fn)
	if err != nil {
		log.Fatalf("Can't open %q for input - %v", fn, err)
	}
	defer in.Close()
	output, err := assemble(in, *offset)
	if err != nil {
		log.Fatalf("Can't process %q - %v", fn, err)
	}
	if err := os.WriteFile(out, output, 0644); err != nil {
		log.Fatalf("Can't write output %q - %v", out, err)
	}
}

var addrLine = regexp.MustCompile(`^[0-9A-F]{4}`)

// assemble returns offset zero bytes followed by the bytes listed in r.
func assemble(r io.Reader, offset int) ([]byte, error) {
	if offset < 0 || offset > 0xFFFF {
		return nil, fmt.Errorf("offset %d out of range. Must be between 0-65535", offset)
	}
	output := bytes.Repeat([]byte{0x00}, offset)
	scanner := bufio.NewScanner(r)
	l := 0
	for scanner.Scan() {
		l++
		line := scanner.Text()
		if !addrLine.MatchString(line) {
			continue
		}
		if i := strings.IndexByte(line, '\t'); i >= 0 {
			line = line[:i]
		}
		if i := strings.Index(line, "(*)"); i >= 0 {
			line = line[:i]
		}
		// Drop the address and the space after it.
		if len(line) <= 5 {
			continue
		}
		t := strings.TrimSpace(line[5:])
		// Should be 1-3 tokens
		toks := strings.Fields(t)
		if len(toks) > 3 {
			return nil, fmt.Errorf("invalid line %d - %q", l, scanner.Text())
		}
		for _, v := range toks {
			b, err := strconv.ParseUint(v, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("can't process input line %d %q - %w", l, scanner.Text(), err)
			}
			output = append(output, byte(b))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return output, nil
}
