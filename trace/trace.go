// Package trace records processor state as instructions execute. It hooks
// the CPU through cpu.Processor.OnStep so nothing is paid when it isn't used.
package trace

import (
	"fmt"
	"io"
	"log"

	"github.com/jmchacon/nes6502/cpu"
	"github.com/jmchacon/nes6502/disassemble"
	"github.com/jmchacon/nes6502/memory"
)

// Entry is the processor state at the start of a step along with the 3 bytes
// at PC which is everything needed to disassemble the instruction later.
type Entry struct {
	PC     uint16
	Bytes  [3]uint8
	A      uint8
	X      uint8
	Y      uint8
	P      uint8
	S      uint8
	Cycles uint64
	// Interrupt is set if the step serviced a reset or interrupt instead of running Bytes.
	Interrupt string
}

// Capture snapshots p and the bytes at its PC from r.
func Capture(p *cpu.Processor, r memory.Bank) Entry {
	pc := p.PC()
	e := Entry{
		PC:     pc,
		Bytes:  [3]uint8{r.Read(pc), r.Read(pc + 1), r.Read(pc + 2)},
		A:      p.A(),
		X:      p.X(),
		Y:      p.Y(),
		P:      p.Status(),
		S:      p.SP(),
		Cycles: p.Cycles(),
	}
	switch {
	case p.ResetPending():
		e.Interrupt = "RESET"
	case p.Halted():
	case p.NMIPending():
		e.Interrupt = "NMI"
	case p.IRQPending() && !p.Flags().Interrupt:
		e.Interrupt = "IRQ"
	}
	return e
}

// String renders the entry with its disassembly in the same layout the disassembler uses.
func (e Entry) String() string {
	regs := fmt.Sprintf("A:%.2X X:%.2X Y:%.2X P:%.2X SP:%.2X CYC:%d", e.A, e.X, e.Y, e.P, e.S, e.Cycles)
	if e.Interrupt != "" {
		return fmt.Sprintf("%.4X %-24s %s", e.PC, "<"+e.Interrupt+">", regs)
	}
	dis, _ := disassemble.Format(e.PC, e.Bytes[0], e.Bytes[1], e.Bytes[2])
	return dis + regs
}

// Ring keeps the last N entries.
type Ring struct {
	entries []Entry
	next    int
	full    bool
}

// NewRing returns a ring holding up to size entries. size must be positive.
func NewRing(size int) (*Ring, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring size must be positive, got %d", size)
	}
	return &Ring{entries: make([]Entry, size)}, nil
}

// Add records e, dropping the oldest entry if the ring is full.
func (r *Ring) Add(e Entry) {
	r.entries[r.next] = e
	r.next++
	if r.next == len(r.entries) {
		r.next = 0
		r.full = true
	}
}

// Entries returns the recorded entries oldest first.
func (r *Ring) Entries() []Entry {
	if !r.full {
		return append([]Entry(nil), r.entries[:r.next]...)
	}
	out := make([]Entry, 0, len(r.entries))
	out = append(out, r.entries[r.next:]...)
	return append(out, r.entries[:r.next]...)
}

// Dump writes every entry oldest first, one per line.
func (r *Ring) Dump(w io.Writer) error {
	for _, e := range r.Entries() {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

// Hook returns a step hook which captures into the ring.
func (r *Ring) Hook(mem memory.Bank) cpu.StepHook {
	return func(p *cpu.Processor) {
		r.Add(Capture(p, mem))
	}
}

// Tracer logs one line per step.
type Tracer struct {
	l   *log.Logger
	mem memory.Bank
}

// NewTracer returns a tracer which reads instruction bytes from mem and writes to l.
// A nil l uses log.Default().
func NewTracer(l *log.Logger, mem memory.Bank) *Tracer {
	if l == nil {
		l = log.Default()
	}
	return &Tracer{l: l, mem: mem}
}

// Hook returns a step hook which logs every step.
func (t *Tracer) Hook() cpu.StepHook {
	return func(p *cpu.Processor) {
		t.l.Print(Capture(p, t.mem))
	}
}
