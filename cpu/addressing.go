package cpu

import (
	"github.com/jmchacon/nes6502/memory"
)

// instructionMode is an enumeration of the 6502 addressing modes.
type instructionMode int

const (
	kMODE_IMPLIED instructionMode = iota
	kMODE_ACCUMULATOR
	kMODE_IMMEDIATE
	kMODE_ZP
	kMODE_ZPX
	kMODE_ZPY
	kMODE_ABSOLUTE
	kMODE_ABSOLUTEX
	kMODE_ABSOLUTEY
	kMODE_INDIRECT
	kMODE_INDIRECTX
	kMODE_INDIRECTY
	kMODE_RELATIVE
)

// size returns the number of bytes an instruction in this mode occupies.
func (m instructionMode) size() uint16 {
	switch m {
	case kMODE_IMPLIED, kMODE_ACCUMULATOR:
		return 1
	case kMODE_ABSOLUTE, kMODE_ABSOLUTEX, kMODE_ABSOLUTEY, kMODE_INDIRECT:
		return 3
	}
	return 2
}

// operand is where an instruction gets its argument from and puts its result.
type operand struct {
	mode instructionMode
	addr uint16 // Effective address for memory modes, branch target for relative.
}

// resolve computes the operand for the given mode from the staged instruction bytes.
// Must be called before PC is advanced past the instruction except for relative mode
// which is computed against the address of the next instruction.
// crossed reports whether indexing moved the effective address onto another page.
func (p *Processor) resolve(mode instructionMode) (o operand, crossed bool) {
	o.mode = mode
	switch mode {
	case kMODE_ZP:
		o.addr = uint16(p.data)
	case kMODE_ZPX:
		o.addr = uint16(p.data + p.x)
	case kMODE_ZPY:
		o.addr = uint16(p.data + p.y)
	case kMODE_ABSOLUTE:
		o.addr = p.address
	case kMODE_ABSOLUTEX:
		o.addr = p.address + uint16(p.x)
		crossed = pageCrossed(p.address, o.addr)
	case kMODE_ABSOLUTEY:
		o.addr = p.address + uint16(p.y)
		crossed = pageCrossed(p.address, o.addr)
	case kMODE_INDIRECT:
		o.addr = p.indirect(p.address)
	case kMODE_INDIRECTX:
		o.addr = memory.ReadAddr(p.ram, uint16(p.data+p.x))
	case kMODE_INDIRECTY:
		base := memory.ReadAddr(p.ram, uint16(p.data))
		o.addr = base + uint16(p.y)
		crossed = pageCrossed(base, o.addr)
	case kMODE_RELATIVE:
		// Offset is from the instruction after the branch.
		next := p.pc + kMODE_RELATIVE.size()
		o.addr = next + uint16(int16(int8(p.data)))
	}
	return o, crossed
}

// indirect reads the JMP target stored at ptr. With the page wrap bug enabled a pointer
// at $xxFF takes its high byte from $xx00.
func (p *Processor) indirect(ptr uint16) uint16 {
	if p.jmpBug && ptr&0x00FF == 0x00FF {
		lo := uint16(p.ram.Read(ptr))
		hi := uint16(p.ram.Read(ptr & 0xFF00))
		return hi<<8 | lo
	}
	return memory.ReadAddr(p.ram, ptr)
}

func pageCrossed(a, b uint16) bool {
	return a&0xFF00 != b&0xFF00
}

// load returns the value an instruction operates on.
func (p *Processor) load(o operand) uint8 {
	switch o.mode {
	case kMODE_IMMEDIATE:
		return p.data
	case kMODE_ACCUMULATOR:
		return p.a
	}
	return p.ram.Read(o.addr)
}

// store writes an instruction result back to the operand location.
func (p *Processor) store(o operand, val uint8) {
	if o.mode == kMODE_ACCUMULATOR {
		p.a = val
		return
	}
	p.ram.Write(o.addr, val)
}
