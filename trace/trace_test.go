package trace

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/go-test/deep"
	"github.com/jmchacon/nes6502/cpu"
	"github.com/jmchacon/nes6502/memory"
)

func setup(t *testing.T, prog []uint8) (*cpu.Processor, *memory.RAM64K) {
	t.Helper()
	r := memory.New64K(0xEA)
	r.WriteAddr(cpu.RESET_VECTOR, 0x4000)
	if _, err := r.Load(bytes.NewReader(prog), 0x4000, len(prog)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	c, err := cpu.Init(&cpu.ChipDef{Ram: r})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	return c, r
}

func TestCapture(t *testing.T) {
	c, r := setup(t, []uint8{0xA9, 0x05, 0x85})
	want := Entry{
		Interrupt: "RESET",
		PC:        0x0000,
		Bytes:     [3]uint8{0xEA, 0xEA, 0xEA},
		P:         0x30,
	}
	if diff := deep.Equal(Capture(c, r), want); diff != nil {
		t.Errorf("pre reset capture differs: %v", diff)
	}
	c.Step()
	want = Entry{
		PC:     0x4000,
		Bytes:  [3]uint8{0xA9, 0x05, 0x85},
		P:      0x34,
		S:      0xFD,
		Cycles: 7,
	}
	got := Capture(c, r)
	if diff := deep.Equal(got, want); diff != nil {
		t.Errorf("capture differs: %v", diff)
	}
	if s, want := got.String(), "4000 A9 05      LDA #05       A:00 X:00 Y:00 P:34 SP:FD CYC:7"; s != want {
		t.Errorf("String got %q want %q", s, want)
	}
}

func TestRing(t *testing.T) {
	if _, err := NewRing(0); err == nil {
		t.Error("expected error for empty ring")
	}
	r, err := NewRing(3)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	if got := r.Entries(); len(got) != 0 {
		t.Errorf("new ring has %d entries", len(got))
	}
	for i := 1; i <= 5; i++ {
		r.Add(Entry{PC: uint16(i)})
	}
	var pcs []uint16
	for _, e := range r.Entries() {
		pcs = append(pcs, e.PC)
	}
	if diff := deep.Equal(pcs, []uint16{3, 4, 5}); diff != nil {
		t.Errorf("ring order differs: %v", diff)
	}
	var buf bytes.Buffer
	if err := r.Dump(&buf); err != nil {
		t.Fatalf("Dump: %v", err)
	}
	if got, want := strings.Count(buf.String(), "\n"), 3; got != want {
		t.Errorf("Dump wrote %d lines want %d", got, want)
	}
}

func TestHooks(t *testing.T) {
	c, r := setup(t, []uint8{0xA9, 0x05, 0x85, 0x10})
	ring, err := NewRing(8)
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}
	var buf bytes.Buffer
	c.OnStep(ring.Hook(r))
	c.OnStep(NewTracer(log.New(&buf, "", 0), r).Hook())
	for i := 0; i < 3; i++ {
		c.Step()
	}
	entries := ring.Entries()
	if got, want := len(entries), 3; got != want {
		t.Fatalf("ring has %d entries want %d", got, want)
	}
	if got, want := entries[0].Interrupt, "RESET"; got != want {
		t.Errorf("first entry got %q want %q", got, want)
	}
	if got, want := entries[2].PC, uint16(0x4002); got != want {
		t.Errorf("last entry PC got 0x%.4X want 0x%.4X", got, want)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if got, want := len(lines), 3; got != want {
		t.Fatalf("tracer logged %d lines want %d:\n%s", got, want, buf.String())
	}
	if !strings.Contains(lines[0], "<RESET>") || !strings.Contains(lines[2], "STA 10") {
		t.Errorf("unexpected trace:\n%s", buf.String())
	}
}
