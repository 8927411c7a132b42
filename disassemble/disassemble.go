// Package disassemble implements a disassembler for 6502 opcodes
package disassemble

import (
	"fmt"

	"github.com/jmchacon/nes6502/memory"
)

type mode int

const (
	kMODE_IMPLIED mode = iota
	kMODE_ACCUMULATOR
	kMODE_IMMEDIATE
	kMODE_ZP
	kMODE_ZPX
	kMODE_ZPY
	kMODE_INDIRECTX
	kMODE_INDIRECTY
	kMODE_ABSOLUTE
	kMODE_ABSOLUTEX
	kMODE_ABSOLUTEY
	kMODE_INDIRECT
	kMODE_RELATIVE
)

type entry struct {
	op   string
	mode mode
}

// opcodes covers all 256 values including the undocumented ones. Anything the
// NMOS part halts on is HLT.
var opcodes = [256]entry{
	{"BRK", kMODE_IMMEDIATE}, // Ok, not really but the byte after BRK is read and skipped.
	{"ORA", kMODE_INDIRECTX},
	{"HLT", kMODE_IMPLIED},
	{"SLO", kMODE_INDIRECTX},
	{"NOP", kMODE_ZP},
	{"ORA", kMODE_ZP},
	{"ASL", kMODE_ZP},
	{"SLO", kMODE_ZP},
	{"PHP", kMODE_IMPLIED},
	{"ORA", kMODE_IMMEDIATE},
	{"ASL", kMODE_ACCUMULATOR},
	{"ANC", kMODE_IMMEDIATE},
	{"NOP", kMODE_ABSOLUTE},
	{"ORA", kMODE_ABSOLUTE},
	{"ASL", kMODE_ABSOLUTE},
	{"SLO", kMODE_ABSOLUTE},
	// 0x10
	{"BPL", kMODE_RELATIVE},
	{"ORA", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"SLO", kMODE_INDIRECTY},
	{"NOP", kMODE_ZPX},
	{"ORA", kMODE_ZPX},
	{"ASL", kMODE_ZPX},
	{"SLO", kMODE_ZPX},
	{"CLC", kMODE_IMPLIED},
	{"ORA", kMODE_ABSOLUTEY},
	{"NOP", kMODE_IMPLIED},
	{"SLO", kMODE_ABSOLUTEY},
	{"NOP", kMODE_ABSOLUTEX},
	{"ORA", kMODE_ABSOLUTEX},
	{"ASL", kMODE_ABSOLUTEX},
	{"SLO", kMODE_ABSOLUTEX},
	// 0x20
	{"JSR", kMODE_ABSOLUTE},
	{"AND", kMODE_INDIRECTX},
	{"HLT", kMODE_IMPLIED},
	{"RLA", kMODE_INDIRECTX},
	{"BIT", kMODE_ZP},
	{"AND", kMODE_ZP},
	{"ROL", kMODE_ZP},
	{"RLA", kMODE_ZP},
	{"PLP", kMODE_IMPLIED},
	{"AND", kMODE_IMMEDIATE},
	{"ROL", kMODE_ACCUMULATOR},
	{"ANC", kMODE_IMMEDIATE},
	{"BIT", kMODE_ABSOLUTE},
	{"AND", kMODE_ABSOLUTE},
	{"ROL", kMODE_ABSOLUTE},
	{"RLA", kMODE_ABSOLUTE},
	// 0x30
	{"BMI", kMODE_RELATIVE},
	{"AND", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"RLA", kMODE_INDIRECTY},
	{"NOP", kMODE_ZPX},
	{"AND", kMODE_ZPX},
	{"ROL", kMODE_ZPX},
	{"RLA", kMODE_ZPX},
	{"SEC", kMODE_IMPLIED},
	{"AND", kMODE_ABSOLUTEY},
	{"NOP", kMODE_IMPLIED},
	{"RLA", kMODE_ABSOLUTEY},
	{"NOP", kMODE_ABSOLUTEX},
	{"AND", kMODE_ABSOLUTEX},
	{"ROL", kMODE_ABSOLUTEX},
	{"RLA", kMODE_ABSOLUTEX},
	// 0x40
	{"RTI", kMODE_IMPLIED},
	{"EOR", kMODE_INDIRECTX},
	{"HLT", kMODE_IMPLIED},
	{"SRE", kMODE_INDIRECTX},
	{"NOP", kMODE_ZP},
	{"EOR", kMODE_ZP},
	{"LSR", kMODE_ZP},
	{"SRE", kMODE_ZP},
	{"PHA", kMODE_IMPLIED},
	{"EOR", kMODE_IMMEDIATE},
	{"LSR", kMODE_ACCUMULATOR},
	{"ALR", kMODE_IMMEDIATE},
	{"JMP", kMODE_ABSOLUTE},
	{"EOR", kMODE_ABSOLUTE},
	{"LSR", kMODE_ABSOLUTE},
	{"SRE", kMODE_ABSOLUTE},
	// 0x50
	{"BVC", kMODE_RELATIVE},
	{"EOR", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"SRE", kMODE_INDIRECTY},
	{"NOP", kMODE_ZPX},
	{"EOR", kMODE_ZPX},
	{"LSR", kMODE_ZPX},
	{"SRE", kMODE_ZPX},
	{"CLI", kMODE_IMPLIED},
	{"EOR", kMODE_ABSOLUTEY},
	{"NOP", kMODE_IMPLIED},
	{"SRE", kMODE_ABSOLUTEY},
	{"NOP", kMODE_ABSOLUTEX},
	{"EOR", kMODE_ABSOLUTEX},
	{"LSR", kMODE_ABSOLUTEX},
	{"SRE", kMODE_ABSOLUTEX},
	// 0x60
	{"RTS", kMODE_IMPLIED},
	{"ADC", kMODE_INDIRECTX},
	{"HLT", kMODE_IMPLIED},
	{"RRA", kMODE_INDIRECTX},
	{"NOP", kMODE_ZP},
	{"ADC", kMODE_ZP},
	{"ROR", kMODE_ZP},
	{"RRA", kMODE_ZP},
	{"PLA", kMODE_IMPLIED},
	{"ADC", kMODE_IMMEDIATE},
	{"ROR", kMODE_ACCUMULATOR},
	{"ARR", kMODE_IMMEDIATE},
	{"JMP", kMODE_INDIRECT},
	{"ADC", kMODE_ABSOLUTE},
	{"ROR", kMODE_ABSOLUTE},
	{"RRA", kMODE_ABSOLUTE},
	// 0x70
	{"BVS", kMODE_RELATIVE},
	{"ADC", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"RRA", kMODE_INDIRECTY},
	{"NOP", kMODE_ZPX},
	{"ADC", kMODE_ZPX},
	{"ROR", kMODE_ZPX},
	{"RRA", kMODE_ZPX},
	{"SEI", kMODE_IMPLIED},
	{"ADC", kMODE_ABSOLUTEY},
	{"NOP", kMODE_IMPLIED},
	{"RRA", kMODE_ABSOLUTEY},
	{"NOP", kMODE_ABSOLUTEX},
	{"ADC", kMODE_ABSOLUTEX},
	{"ROR", kMODE_ABSOLUTEX},
	{"RRA", kMODE_ABSOLUTEX},
	// 0x80
	{"NOP", kMODE_IMMEDIATE},
	{"STA", kMODE_INDIRECTX},
	{"NOP", kMODE_IMMEDIATE},
	{"SAX", kMODE_INDIRECTX},
	{"STY", kMODE_ZP},
	{"STA", kMODE_ZP},
	{"STX", kMODE_ZP},
	{"SAX", kMODE_ZP},
	{"DEY", kMODE_IMPLIED},
	{"NOP", kMODE_IMMEDIATE},
	{"TXA", kMODE_IMPLIED},
	{"XAA", kMODE_IMMEDIATE},
	{"STY", kMODE_ABSOLUTE},
	{"STA", kMODE_ABSOLUTE},
	{"STX", kMODE_ABSOLUTE},
	{"SAX", kMODE_ABSOLUTE},
	// 0x90
	{"BCC", kMODE_RELATIVE},
	{"STA", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"AHX", kMODE_INDIRECTY},
	{"STY", kMODE_ZPX},
	{"STA", kMODE_ZPX},
	{"STX", kMODE_ZPY},
	{"SAX", kMODE_ZPY},
	{"TYA", kMODE_IMPLIED},
	{"STA", kMODE_ABSOLUTEY},
	{"TXS", kMODE_IMPLIED},
	{"TAS", kMODE_ABSOLUTEY},
	{"SHY", kMODE_ABSOLUTEX},
	{"STA", kMODE_ABSOLUTEX},
	{"SHX", kMODE_ABSOLUTEY},
	{"AHX", kMODE_ABSOLUTEY},
	// 0xA0
	{"LDY", kMODE_IMMEDIATE},
	{"LDA", kMODE_INDIRECTX},
	{"LDX", kMODE_IMMEDIATE},
	{"LAX", kMODE_INDIRECTX},
	{"LDY", kMODE_ZP},
	{"LDA", kMODE_ZP},
	{"LDX", kMODE_ZP},
	{"LAX", kMODE_ZP},
	{"TAY", kMODE_IMPLIED},
	{"LDA", kMODE_IMMEDIATE},
	{"TAX", kMODE_IMPLIED},
	{"OAL", kMODE_IMMEDIATE},
	{"LDY", kMODE_ABSOLUTE},
	{"LDA", kMODE_ABSOLUTE},
	{"LDX", kMODE_ABSOLUTE},
	{"LAX", kMODE_ABSOLUTE},
	// 0xB0
	{"BCS", kMODE_RELATIVE},
	{"LDA", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"LAX", kMODE_INDIRECTY},
	{"LDY", kMODE_ZPX},
	{"LDA", kMODE_ZPX},
	{"LDX", kMODE_ZPY},
	{"LAX", kMODE_ZPY},
	{"CLV", kMODE_IMPLIED},
	{"LDA", kMODE_ABSOLUTEY},
	{"TSX", kMODE_IMPLIED},
	{"LAS", kMODE_ABSOLUTEY},
	{"LDY", kMODE_ABSOLUTEX},
	{"LDA", kMODE_ABSOLUTEX},
	{"LDX", kMODE_ABSOLUTEY},
	{"LAX", kMODE_ABSOLUTEY},
	// 0xC0
	{"CPY", kMODE_IMMEDIATE},
	{"CMP", kMODE_INDIRECTX},
	{"NOP", kMODE_IMMEDIATE},
	{"DCP", kMODE_INDIRECTX},
	{"CPY", kMODE_ZP},
	{"CMP", kMODE_ZP},
	{"DEC", kMODE_ZP},
	{"DCP", kMODE_ZP},
	{"INY", kMODE_IMPLIED},
	{"CMP", kMODE_IMMEDIATE},
	{"DEX", kMODE_IMPLIED},
	{"AXS", kMODE_IMMEDIATE},
	{"CPY", kMODE_ABSOLUTE},
	{"CMP", kMODE_ABSOLUTE},
	{"DEC", kMODE_ABSOLUTE},
	{"DCP", kMODE_ABSOLUTE},
	// 0xD0
	{"BNE", kMODE_RELATIVE},
	{"CMP", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"DCP", kMODE_INDIRECTY},
	{"NOP", kMODE_ZPX},
	{"CMP", kMODE_ZPX},
	{"DEC", kMODE_ZPX},
	{"DCP", kMODE_ZPX},
	{"CLD", kMODE_IMPLIED},
	{"CMP", kMODE_ABSOLUTEY},
	{"NOP", kMODE_IMPLIED},
	{"DCP", kMODE_ABSOLUTEY},
	{"NOP", kMODE_ABSOLUTEX},
	{"CMP", kMODE_ABSOLUTEX},
	{"DEC", kMODE_ABSOLUTEX},
	{"DCP", kMODE_ABSOLUTEX},
	// 0xE0
	{"CPX", kMODE_IMMEDIATE},
	{"SBC", kMODE_INDIRECTX},
	{"NOP", kMODE_IMMEDIATE},
	{"ISC", kMODE_INDIRECTX},
	{"CPX", kMODE_ZP},
	{"SBC", kMODE_ZP},
	{"INC", kMODE_ZP},
	{"ISC", kMODE_ZP},
	{"INX", kMODE_IMPLIED},
	{"SBC", kMODE_IMMEDIATE},
	{"NOP", kMODE_IMPLIED},
	{"SBC", kMODE_IMMEDIATE},
	{"CPX", kMODE_ABSOLUTE},
	{"SBC", kMODE_ABSOLUTE},
	{"INC", kMODE_ABSOLUTE},
	{"ISC", kMODE_ABSOLUTE},
	// 0xF0
	{"BEQ", kMODE_RELATIVE},
	{"SBC", kMODE_INDIRECTY},
	{"HLT", kMODE_IMPLIED},
	{"ISC", kMODE_INDIRECTY},
	{"NOP", kMODE_ZPX},
	{"SBC", kMODE_ZPX},
	{"INC", kMODE_ZPX},
	{"ISC", kMODE_ZPX},
	{"SED", kMODE_IMPLIED},
	{"SBC", kMODE_ABSOLUTEY},
	{"NOP", kMODE_IMPLIED},
	{"ISC", kMODE_ABSOLUTEY},
	{"NOP", kMODE_ABSOLUTEX},
	{"SBC", kMODE_ABSOLUTEX},
	{"INC", kMODE_ABSOLUTEX},
	{"ISC", kMODE_ABSOLUTEX},
}

// Mnemonic returns the instruction name for op.
func Mnemonic(op uint8) string {
	return opcodes[op].op
}

// Step will take the given PC value and disassemble the instruction at that location
// returning a string for the disassembly and the bytes forward the PC should move to get to
// the next instruction. This does not interpret the instructions so LDA, JMP, LDA in memory
// will disassemble as that sequence and not follow the JMP.
// This always reads the 2 bytes past the current PC so make sure those addresses are valid.
func Step(pc uint16, r memory.Bank) (string, int) {
	return Format(pc, r.Read(pc), r.Read(pc+1), r.Read(pc+2))
}

// Format disassembles an instruction from already fetched bytes. pc1 and pc2 are the
// 2 bytes after the opcode and are ignored if the instruction doesn't use them.
func Format(pc uint16, o, pc1, pc2 uint8) (string, int) {
	op := opcodes[o].op
	// Setup a 16 bit value so it can be added the the PC for branch offsets.
	// Sign extend it as needed.
	pc116 := uint16(int16(int8(pc1)))

	count := 2 // Default byte count, adjusted below.
	out := fmt.Sprintf("%.4X %.2X ", pc, o)
	switch opcodes[o].mode {
	case kMODE_IMMEDIATE:
		out += fmt.Sprintf("%.2X      %s #%.2X       ", pc1, op, pc1)
	case kMODE_ZP:
		out += fmt.Sprintf("%.2X      %s %.2X        ", pc1, op, pc1)
	case kMODE_ZPX:
		out += fmt.Sprintf("%.2X      %s %.2X,X      ", pc1, op, pc1)
	case kMODE_ZPY:
		out += fmt.Sprintf("%.2X      %s %.2X,Y      ", pc1, op, pc1)
	case kMODE_INDIRECTX:
		out += fmt.Sprintf("%.2X      %s (%.2X,X)    ", pc1, op, pc1)
	case kMODE_INDIRECTY:
		out += fmt.Sprintf("%.2X      %s (%.2X),Y    ", pc1, op, pc1)
	case kMODE_ABSOLUTE:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X      ", pc1, pc2, op, pc2, pc1)
		count++
	case kMODE_ABSOLUTEX:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,X    ", pc1, pc2, op, pc2, pc1)
		count++
	case kMODE_ABSOLUTEY:
		out += fmt.Sprintf("%.2X %.2X   %s %.2X%.2X,Y    ", pc1, pc2, op, pc2, pc1)
		count++
	case kMODE_INDIRECT:
		out += fmt.Sprintf("%.2X %.2X   %s (%.2X%.2X)    ", pc1, pc2, op, pc2, pc1)
		count++
	case kMODE_ACCUMULATOR:
		out += fmt.Sprintf("        %s A         ", op)
		count--
	case kMODE_IMPLIED:
		out += fmt.Sprintf("        %s           ", op)
		count--
	case kMODE_RELATIVE:
		out += fmt.Sprintf("%.2X      %s %.2X (%.4X) ", pc1, op, pc1, pc+pc116+2)
	}
	return out, count
}
