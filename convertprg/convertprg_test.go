package main

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmchacon/nes6502/harness"
)

func TestConvert(t *testing.T) {
	// LDA #42, STA 0400, RTS
	prog := []byte{0xA9, 0x42, 0x8D, 0x00, 0x04, 0x60}
	tests := []struct {
		name   string
		in     []byte
		raw    bool
		load   uint16
		addr   uint16
		preset bool
		sys    bool
	}{
		{
			name:   "prg",
			in:     append([]byte{0x01, 0x08}, prog...),
			addr:   0x0801,
			preset: true,
		},
		{
			name: "basic stub",
			// 10 SYS2061 and the program right after the end of BASIC.
			in: append([]byte{
				0x01, 0x08,
				0x0B, 0x08, 0x0A, 0x00, 0x9E, '2', '0', '6', '1', 0x00,
				0x00, 0x00,
			}, prog...),
			addr:   0x0801,
			preset: true,
			sys:    true,
		},
		{
			name: "raw",
			in:   prog,
			raw:  true,
			load: 0x2000,
			addr: 0x2000,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			start := test.addr
			if test.sys {
				start = 0
			}
			out, addr, err := convert(test.in, test.raw, test.load, start)
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			if got, want := len(out), 0x10000; got != want {
				t.Fatalf("image is %d bytes want %d", got, want)
			}
			if got, want := addr, test.addr; got != want {
				t.Errorf("addr got 0x%.4X want 0x%.4X", got, want)
			}
			if got, want := out[0x002B] == 0x01, test.preset; got != want {
				t.Errorf("c64 presets applied: %t want %t", got, want)
			}
			res, err := harness.Run(&harness.Config{
				Image:      out,
				SuccessPC:  Done,
				ResultAddr: u16(0x0400),
				WantResult: 0x42,
				MaxCycles:  1000,
			})
			if err != nil {
				t.Fatalf("harness.Run: %v", err)
			}
			if !res.Passed {
				t.Errorf("converted image didn't run: %s", spew.Sdump(res))
			}
			if got, want := res.Cycles, uint64(25); got != want {
				t.Errorf("cycles got %d want %d", got, want)
			}
		})
	}
}

func TestConvertErrors(t *testing.T) {
	if _, _, err := convert([]byte{0x01}, false, 0, 0); err == nil {
		t.Error("didn't get an error for a PRG without a header")
	}
	if _, _, err := convert([]byte{0x01, 0x08, 0x00, 0x00}, false, 0, 0); err == nil {
		t.Error("didn't get an error for a BASIC PRG with no SYS")
	}
	// A raw image hanging off the end is truncated rather than rejected.
	out, _, err := convert(make([]byte, 0x20), true, 0xFFF0, 0)
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if got, want := out[0xFFFC], uint8(Boot&0xFF); got != want {
		t.Errorf("reset vector overwritten: got 0x%.2X want 0x%.2X", got, want)
	}
}

func u16(v uint16) *uint16 {
	return &v
}
