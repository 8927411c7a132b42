package cpu

// opcode is one decode table entry.
type opcode struct {
	name   string
	mode   instructionMode
	size   uint16 // How far PC moves before the instruction runs.
	cycles int    // Base cycle cost.
	page   bool   // Costs one more cycle when indexing crosses a page.
	exec   func(*Processor, operand)
}

func op(name string, mode instructionMode, cycles int, exec func(*Processor, operand)) opcode {
	return opcode{
		name:   name,
		mode:   mode,
		size:   mode.size(),
		cycles: cycles,
		exec:   exec,
	}
}

// pageOp is op for reads where indexing across a page costs a cycle.
func pageOp(name string, mode instructionMode, cycles int, exec func(*Processor, operand)) opcode {
	o := op(name, mode, cycles, exec)
	o.page = true
	return o
}

// kil never moves PC and charges nothing.
var kil = opcode{
	name: "KIL",
	mode: kMODE_IMPLIED,
	exec: (*Processor).iKIL,
}

// documentedOps is the official instruction set plus ANC and the KIL family.
// Empty entries decode as unimplemented and run as a 1 byte NOP.
var documentedOps = [256]opcode{
	// ADC
	0x69: op("ADC", kMODE_IMMEDIATE, 2, (*Processor).iADC),
	0x65: op("ADC", kMODE_ZP, 3, (*Processor).iADC),
	0x75: op("ADC", kMODE_ZPX, 4, (*Processor).iADC),
	0x6D: op("ADC", kMODE_ABSOLUTE, 4, (*Processor).iADC),
	0x7D: pageOp("ADC", kMODE_ABSOLUTEX, 4, (*Processor).iADC),
	0x79: pageOp("ADC", kMODE_ABSOLUTEY, 4, (*Processor).iADC),
	0x61: op("ADC", kMODE_INDIRECTX, 6, (*Processor).iADC),
	0x71: pageOp("ADC", kMODE_INDIRECTY, 5, (*Processor).iADC),

	// AND
	0x29: op("AND", kMODE_IMMEDIATE, 2, (*Processor).iAND),
	0x25: op("AND", kMODE_ZP, 3, (*Processor).iAND),
	0x35: op("AND", kMODE_ZPX, 4, (*Processor).iAND),
	0x2D: op("AND", kMODE_ABSOLUTE, 4, (*Processor).iAND),
	0x3D: pageOp("AND", kMODE_ABSOLUTEX, 4, (*Processor).iAND),
	0x39: pageOp("AND", kMODE_ABSOLUTEY, 4, (*Processor).iAND),
	0x21: op("AND", kMODE_INDIRECTX, 6, (*Processor).iAND),
	0x31: pageOp("AND", kMODE_INDIRECTY, 5, (*Processor).iAND),

	// ASL
	0x0A: op("ASL", kMODE_ACCUMULATOR, 2, (*Processor).iASL),
	0x06: op("ASL", kMODE_ZP, 5, (*Processor).iASL),
	0x16: op("ASL", kMODE_ZPX, 6, (*Processor).iASL),
	0x0E: op("ASL", kMODE_ABSOLUTE, 6, (*Processor).iASL),
	0x1E: op("ASL", kMODE_ABSOLUTEX, 7, (*Processor).iASL),

	// Branches
	0x90: op("BCC", kMODE_RELATIVE, 2, (*Processor).iBCC),
	0xB0: op("BCS", kMODE_RELATIVE, 2, (*Processor).iBCS),
	0xF0: op("BEQ", kMODE_RELATIVE, 2, (*Processor).iBEQ),
	0x30: op("BMI", kMODE_RELATIVE, 2, (*Processor).iBMI),
	0xD0: op("BNE", kMODE_RELATIVE, 2, (*Processor).iBNE),
	0x10: op("BPL", kMODE_RELATIVE, 2, (*Processor).iBPL),
	0x50: op("BVC", kMODE_RELATIVE, 2, (*Processor).iBVC),
	0x70: op("BVS", kMODE_RELATIVE, 2, (*Processor).iBVS),

	// BIT
	0x24: op("BIT", kMODE_ZP, 3, (*Processor).iBIT),
	0x2C: op("BIT", kMODE_ABSOLUTE, 4, (*Processor).iBIT),

	// BRK skips the byte after it so it's sized like immediate.
	0x00: op("BRK", kMODE_IMMEDIATE, 7, (*Processor).iBRK),

	// Flag operations
	0x18: op("CLC", kMODE_IMPLIED, 2, (*Processor).iCLC),
	0xD8: op("CLD", kMODE_IMPLIED, 2, (*Processor).iCLD),
	0x58: op("CLI", kMODE_IMPLIED, 2, (*Processor).iCLI),
	0xB8: op("CLV", kMODE_IMPLIED, 2, (*Processor).iCLV),
	0x38: op("SEC", kMODE_IMPLIED, 2, (*Processor).iSEC),
	0xF8: op("SED", kMODE_IMPLIED, 2, (*Processor).iSED),
	0x78: op("SEI", kMODE_IMPLIED, 2, (*Processor).iSEI),

	// CMP
	0xC9: op("CMP", kMODE_IMMEDIATE, 2, (*Processor).iCMP),
	0xC5: op("CMP", kMODE_ZP, 3, (*Processor).iCMP),
	0xD5: op("CMP", kMODE_ZPX, 4, (*Processor).iCMP),
	0xCD: op("CMP", kMODE_ABSOLUTE, 4, (*Processor).iCMP),
	0xDD: pageOp("CMP", kMODE_ABSOLUTEX, 4, (*Processor).iCMP),
	0xD9: pageOp("CMP", kMODE_ABSOLUTEY, 4, (*Processor).iCMP),
	0xC1: op("CMP", kMODE_INDIRECTX, 6, (*Processor).iCMP),
	0xD1: pageOp("CMP", kMODE_INDIRECTY, 5, (*Processor).iCMP),

	// CPX
	0xE0: op("CPX", kMODE_IMMEDIATE, 2, (*Processor).iCPX),
	0xE4: op("CPX", kMODE_ZP, 3, (*Processor).iCPX),
	0xEC: op("CPX", kMODE_ABSOLUTE, 4, (*Processor).iCPX),

	// CPY
	0xC0: op("CPY", kMODE_IMMEDIATE, 2, (*Processor).iCPY),
	0xC4: op("CPY", kMODE_ZP, 3, (*Processor).iCPY),
	0xCC: op("CPY", kMODE_ABSOLUTE, 4, (*Processor).iCPY),

	// DEC
	0xC6: op("DEC", kMODE_ZP, 5, (*Processor).iDEC),
	0xD6: op("DEC", kMODE_ZPX, 6, (*Processor).iDEC),
	0xCE: op("DEC", kMODE_ABSOLUTE, 6, (*Processor).iDEC),
	0xDE: op("DEC", kMODE_ABSOLUTEX, 7, (*Processor).iDEC),

	0xCA: op("DEX", kMODE_IMPLIED, 2, (*Processor).iDEX),
	0x88: op("DEY", kMODE_IMPLIED, 2, (*Processor).iDEY),

	// EOR
	0x49: op("EOR", kMODE_IMMEDIATE, 2, (*Processor).iEOR),
	0x45: op("EOR", kMODE_ZP, 3, (*Processor).iEOR),
	0x55: op("EOR", kMODE_ZPX, 4, (*Processor).iEOR),
	0x4D: op("EOR", kMODE_ABSOLUTE, 4, (*Processor).iEOR),
	0x5D: pageOp("EOR", kMODE_ABSOLUTEX, 4, (*Processor).iEOR),
	0x59: pageOp("EOR", kMODE_ABSOLUTEY, 4, (*Processor).iEOR),
	0x41: op("EOR", kMODE_INDIRECTX, 6, (*Processor).iEOR),
	0x51: pageOp("EOR", kMODE_INDIRECTY, 5, (*Processor).iEOR),

	// INC
	0xE6: op("INC", kMODE_ZP, 5, (*Processor).iINC),
	0xF6: op("INC", kMODE_ZPX, 6, (*Processor).iINC),
	0xEE: op("INC", kMODE_ABSOLUTE, 6, (*Processor).iINC),
	0xFE: op("INC", kMODE_ABSOLUTEX, 7, (*Processor).iINC),

	0xE8: op("INX", kMODE_IMPLIED, 2, (*Processor).iINX),
	0xC8: op("INY", kMODE_IMPLIED, 2, (*Processor).iINY),

	// JMP/JSR
	0x4C: op("JMP", kMODE_ABSOLUTE, 3, (*Processor).iJMP),
	0x6C: op("JMP", kMODE_INDIRECT, 5, (*Processor).iJMP),
	0x20: op("JSR", kMODE_ABSOLUTE, 6, (*Processor).iJSR),

	// LDA
	0xA9: op("LDA", kMODE_IMMEDIATE, 2, (*Processor).iLDA),
	0xA5: op("LDA", kMODE_ZP, 3, (*Processor).iLDA),
	0xB5: op("LDA", kMODE_ZPX, 4, (*Processor).iLDA),
	0xAD: op("LDA", kMODE_ABSOLUTE, 4, (*Processor).iLDA),
	0xBD: pageOp("LDA", kMODE_ABSOLUTEX, 4, (*Processor).iLDA),
	0xB9: pageOp("LDA", kMODE_ABSOLUTEY, 4, (*Processor).iLDA),
	0xA1: op("LDA", kMODE_INDIRECTX, 6, (*Processor).iLDA),
	0xB1: pageOp("LDA", kMODE_INDIRECTY, 5, (*Processor).iLDA),

	// LDX
	0xA2: op("LDX", kMODE_IMMEDIATE, 2, (*Processor).iLDX),
	0xA6: op("LDX", kMODE_ZP, 3, (*Processor).iLDX),
	0xB6: op("LDX", kMODE_ZPY, 4, (*Processor).iLDX),
	0xAE: op("LDX", kMODE_ABSOLUTE, 4, (*Processor).iLDX),
	0xBE: pageOp("LDX", kMODE_ABSOLUTEY, 4, (*Processor).iLDX),

	// LDY
	0xA0: op("LDY", kMODE_IMMEDIATE, 2, (*Processor).iLDY),
	0xA4: op("LDY", kMODE_ZP, 3, (*Processor).iLDY),
	0xB4: op("LDY", kMODE_ZPX, 4, (*Processor).iLDY),
	0xAC: op("LDY", kMODE_ABSOLUTE, 4, (*Processor).iLDY),
	0xBC: pageOp("LDY", kMODE_ABSOLUTEX, 4, (*Processor).iLDY),

	// LSR
	0x4A: op("LSR", kMODE_ACCUMULATOR, 2, (*Processor).iLSR),
	0x46: op("LSR", kMODE_ZP, 5, (*Processor).iLSR),
	0x56: op("LSR", kMODE_ZPX, 6, (*Processor).iLSR),
	0x4E: op("LSR", kMODE_ABSOLUTE, 6, (*Processor).iLSR),
	0x5E: op("LSR", kMODE_ABSOLUTEX, 7, (*Processor).iLSR),

	0xEA: op("NOP", kMODE_IMPLIED, 2, (*Processor).iNOP),

	// ORA
	0x09: op("ORA", kMODE_IMMEDIATE, 2, (*Processor).iORA),
	0x05: op("ORA", kMODE_ZP, 3, (*Processor).iORA),
	0x15: op("ORA", kMODE_ZPX, 4, (*Processor).iORA),
	0x0D: op("ORA", kMODE_ABSOLUTE, 4, (*Processor).iORA),
	0x1D: pageOp("ORA", kMODE_ABSOLUTEX, 4, (*Processor).iORA),
	0x19: pageOp("ORA", kMODE_ABSOLUTEY, 4, (*Processor).iORA),
	0x01: op("ORA", kMODE_INDIRECTX, 6, (*Processor).iORA),
	0x11: pageOp("ORA", kMODE_INDIRECTY, 5, (*Processor).iORA),

	// Stack
	0x48: op("PHA", kMODE_IMPLIED, 3, (*Processor).iPHA),
	0x08: op("PHP", kMODE_IMPLIED, 3, (*Processor).iPHP),
	0x68: op("PLA", kMODE_IMPLIED, 4, (*Processor).iPLA),
	0x28: op("PLP", kMODE_IMPLIED, 4, (*Processor).iPLP),

	// ROL
	0x2A: op("ROL", kMODE_ACCUMULATOR, 2, (*Processor).iROL),
	0x26: op("ROL", kMODE_ZP, 5, (*Processor).iROL),
	0x36: op("ROL", kMODE_ZPX, 6, (*Processor).iROL),
	0x2E: op("ROL", kMODE_ABSOLUTE, 6, (*Processor).iROL),
	0x3E: op("ROL", kMODE_ABSOLUTEX, 7, (*Processor).iROL),

	// ROR
	0x6A: op("ROR", kMODE_ACCUMULATOR, 2, (*Processor).iROR),
	0x66: op("ROR", kMODE_ZP, 5, (*Processor).iROR),
	0x76: op("ROR", kMODE_ZPX, 6, (*Processor).iROR),
	0x6E: op("ROR", kMODE_ABSOLUTE, 6, (*Processor).iROR),
	0x7E: op("ROR", kMODE_ABSOLUTEX, 7, (*Processor).iROR),

	0x40: op("RTI", kMODE_IMPLIED, 6, (*Processor).iRTI),
	0x60: op("RTS", kMODE_IMPLIED, 6, (*Processor).iRTS),

	// SBC
	0xE9: op("SBC", kMODE_IMMEDIATE, 2, (*Processor).iSBC),
	0xE5: op("SBC", kMODE_ZP, 3, (*Processor).iSBC),
	0xF5: op("SBC", kMODE_ZPX, 4, (*Processor).iSBC),
	0xED: op("SBC", kMODE_ABSOLUTE, 4, (*Processor).iSBC),
	0xFD: pageOp("SBC", kMODE_ABSOLUTEX, 4, (*Processor).iSBC),
	0xF9: pageOp("SBC", kMODE_ABSOLUTEY, 4, (*Processor).iSBC),
	0xE1: op("SBC", kMODE_INDIRECTX, 6, (*Processor).iSBC),
	0xF1: pageOp("SBC", kMODE_INDIRECTY, 5, (*Processor).iSBC),

	// STA always pays for indexing.
	0x85: op("STA", kMODE_ZP, 3, (*Processor).iSTA),
	0x95: op("STA", kMODE_ZPX, 4, (*Processor).iSTA),
	0x8D: op("STA", kMODE_ABSOLUTE, 4, (*Processor).iSTA),
	0x9D: op("STA", kMODE_ABSOLUTEX, 5, (*Processor).iSTA),
	0x99: op("STA", kMODE_ABSOLUTEY, 5, (*Processor).iSTA),
	0x81: op("STA", kMODE_INDIRECTX, 6, (*Processor).iSTA),
	0x91: op("STA", kMODE_INDIRECTY, 6, (*Processor).iSTA),

	// STX
	0x86: op("STX", kMODE_ZP, 3, (*Processor).iSTX),
	0x96: op("STX", kMODE_ZPY, 4, (*Processor).iSTX),
	0x8E: op("STX", kMODE_ABSOLUTE, 4, (*Processor).iSTX),

	// STY
	0x84: op("STY", kMODE_ZP, 3, (*Processor).iSTY),
	0x94: op("STY", kMODE_ZPX, 4, (*Processor).iSTY),
	0x8C: op("STY", kMODE_ABSOLUTE, 4, (*Processor).iSTY),

	// Transfers
	0xAA: op("TAX", kMODE_IMPLIED, 2, (*Processor).iTAX),
	0xA8: op("TAY", kMODE_IMPLIED, 2, (*Processor).iTAY),
	0xBA: op("TSX", kMODE_IMPLIED, 2, (*Processor).iTSX),
	0x8A: op("TXA", kMODE_IMPLIED, 2, (*Processor).iTXA),
	0x9A: op("TXS", kMODE_IMPLIED, 2, (*Processor).iTXS),
	0x98: op("TYA", kMODE_IMPLIED, 2, (*Processor).iTYA),

	// ANC
	0x0B: op("ANC", kMODE_IMMEDIATE, 2, (*Processor).iANC),
	0x2B: op("ANC", kMODE_IMMEDIATE, 2, (*Processor).iANC),

	// KIL
	0x02: kil,
	0x12: kil,
	0x22: kil,
	0x32: kil,
	0x42: kil,
	0x52: kil,
	0x62: kil,
	0x72: kil,
	0x92: kil,
	0xB2: kil,
	0xD2: kil,
	0xF2: kil,
}

// undocumentedExtras are the stable NMOS undocumented opcodes. 0x8B, 0x93, 0x9B,
// 0x9C, 0x9E, 0x9F, 0xAB and 0xBB depend on analog effects and stay unimplemented.
var undocumentedExtras = map[uint8]opcode{
	// SLO
	0x07: op("SLO", kMODE_ZP, 5, (*Processor).iSLO),
	0x17: op("SLO", kMODE_ZPX, 6, (*Processor).iSLO),
	0x0F: op("SLO", kMODE_ABSOLUTE, 6, (*Processor).iSLO),
	0x1F: op("SLO", kMODE_ABSOLUTEX, 7, (*Processor).iSLO),
	0x1B: op("SLO", kMODE_ABSOLUTEY, 7, (*Processor).iSLO),
	0x03: op("SLO", kMODE_INDIRECTX, 8, (*Processor).iSLO),
	0x13: op("SLO", kMODE_INDIRECTY, 8, (*Processor).iSLO),

	// RLA
	0x27: op("RLA", kMODE_ZP, 5, (*Processor).iRLA),
	0x37: op("RLA", kMODE_ZPX, 6, (*Processor).iRLA),
	0x2F: op("RLA", kMODE_ABSOLUTE, 6, (*Processor).iRLA),
	0x3F: op("RLA", kMODE_ABSOLUTEX, 7, (*Processor).iRLA),
	0x3B: op("RLA", kMODE_ABSOLUTEY, 7, (*Processor).iRLA),
	0x23: op("RLA", kMODE_INDIRECTX, 8, (*Processor).iRLA),
	0x33: op("RLA", kMODE_INDIRECTY, 8, (*Processor).iRLA),

	// SRE
	0x47: op("SRE", kMODE_ZP, 5, (*Processor).iSRE),
	0x57: op("SRE", kMODE_ZPX, 6, (*Processor).iSRE),
	0x4F: op("SRE", kMODE_ABSOLUTE, 6, (*Processor).iSRE),
	0x5F: op("SRE", kMODE_ABSOLUTEX, 7, (*Processor).iSRE),
	0x5B: op("SRE", kMODE_ABSOLUTEY, 7, (*Processor).iSRE),
	0x43: op("SRE", kMODE_INDIRECTX, 8, (*Processor).iSRE),
	0x53: op("SRE", kMODE_INDIRECTY, 8, (*Processor).iSRE),

	// RRA
	0x67: op("RRA", kMODE_ZP, 5, (*Processor).iRRA),
	0x77: op("RRA", kMODE_ZPX, 6, (*Processor).iRRA),
	0x6F: op("RRA", kMODE_ABSOLUTE, 6, (*Processor).iRRA),
	0x7F: op("RRA", kMODE_ABSOLUTEX, 7, (*Processor).iRRA),
	0x7B: op("RRA", kMODE_ABSOLUTEY, 7, (*Processor).iRRA),
	0x63: op("RRA", kMODE_INDIRECTX, 8, (*Processor).iRRA),
	0x73: op("RRA", kMODE_INDIRECTY, 8, (*Processor).iRRA),

	// DCP
	0xC7: op("DCP", kMODE_ZP, 5, (*Processor).iDCP),
	0xD7: op("DCP", kMODE_ZPX, 6, (*Processor).iDCP),
	0xCF: op("DCP", kMODE_ABSOLUTE, 6, (*Processor).iDCP),
	0xDF: op("DCP", kMODE_ABSOLUTEX, 7, (*Processor).iDCP),
	0xDB: op("DCP", kMODE_ABSOLUTEY, 7, (*Processor).iDCP),
	0xC3: op("DCP", kMODE_INDIRECTX, 8, (*Processor).iDCP),
	0xD3: op("DCP", kMODE_INDIRECTY, 8, (*Processor).iDCP),

	// ISC
	0xE7: op("ISC", kMODE_ZP, 5, (*Processor).iISC),
	0xF7: op("ISC", kMODE_ZPX, 6, (*Processor).iISC),
	0xEF: op("ISC", kMODE_ABSOLUTE, 6, (*Processor).iISC),
	0xFF: op("ISC", kMODE_ABSOLUTEX, 7, (*Processor).iISC),
	0xFB: op("ISC", kMODE_ABSOLUTEY, 7, (*Processor).iISC),
	0xE3: op("ISC", kMODE_INDIRECTX, 8, (*Processor).iISC),
	0xF3: op("ISC", kMODE_INDIRECTY, 8, (*Processor).iISC),

	// SAX
	0x87: op("SAX", kMODE_ZP, 3, (*Processor).iSAX),
	0x97: op("SAX", kMODE_ZPY, 4, (*Processor).iSAX),
	0x8F: op("SAX", kMODE_ABSOLUTE, 4, (*Processor).iSAX),
	0x83: op("SAX", kMODE_INDIRECTX, 6, (*Processor).iSAX),

	// LAX
	0xA7: op("LAX", kMODE_ZP, 3, (*Processor).iLAX),
	0xB7: op("LAX", kMODE_ZPY, 4, (*Processor).iLAX),
	0xAF: op("LAX", kMODE_ABSOLUTE, 4, (*Processor).iLAX),
	0xBF: pageOp("LAX", kMODE_ABSOLUTEY, 4, (*Processor).iLAX),
	0xA3: op("LAX", kMODE_INDIRECTX, 6, (*Processor).iLAX),
	0xB3: pageOp("LAX", kMODE_INDIRECTY, 5, (*Processor).iLAX),

	// NOP variants
	0x1A: op("NOP", kMODE_IMPLIED, 2, (*Processor).iNOP),
	0x3A: op("NOP", kMODE_IMPLIED, 2, (*Processor).iNOP),
	0x5A: op("NOP", kMODE_IMPLIED, 2, (*Processor).iNOP),
	0x7A: op("NOP", kMODE_IMPLIED, 2, (*Processor).iNOP),
	0xDA: op("NOP", kMODE_IMPLIED, 2, (*Processor).iNOP),
	0xFA: op("NOP", kMODE_IMPLIED, 2, (*Processor).iNOP),
	0x80: op("NOP", kMODE_IMMEDIATE, 2, (*Processor).iNOP),
	0x82: op("NOP", kMODE_IMMEDIATE, 2, (*Processor).iNOP),
	0x89: op("NOP", kMODE_IMMEDIATE, 2, (*Processor).iNOP),
	0xC2: op("NOP", kMODE_IMMEDIATE, 2, (*Processor).iNOP),
	0xE2: op("NOP", kMODE_IMMEDIATE, 2, (*Processor).iNOP),
	0x04: op("NOP", kMODE_ZP, 3, (*Processor).iNOP),
	0x44: op("NOP", kMODE_ZP, 3, (*Processor).iNOP),
	0x64: op("NOP", kMODE_ZP, 3, (*Processor).iNOP),
	0x14: op("NOP", kMODE_ZPX, 4, (*Processor).iNOP),
	0x34: op("NOP", kMODE_ZPX, 4, (*Processor).iNOP),
	0x54: op("NOP", kMODE_ZPX, 4, (*Processor).iNOP),
	0x74: op("NOP", kMODE_ZPX, 4, (*Processor).iNOP),
	0xD4: op("NOP", kMODE_ZPX, 4, (*Processor).iNOP),
	0xF4: op("NOP", kMODE_ZPX, 4, (*Processor).iNOP),
	0x0C: op("NOP", kMODE_ABSOLUTE, 4, (*Processor).iNOP),
	0x1C: pageOp("NOP", kMODE_ABSOLUTEX, 4, (*Processor).iNOP),
	0x3C: pageOp("NOP", kMODE_ABSOLUTEX, 4, (*Processor).iNOP),
	0x5C: pageOp("NOP", kMODE_ABSOLUTEX, 4, (*Processor).iNOP),
	0x7C: pageOp("NOP", kMODE_ABSOLUTEX, 4, (*Processor).iNOP),
	0xDC: pageOp("NOP", kMODE_ABSOLUTEX, 4, (*Processor).iNOP),
	0xFC: pageOp("NOP", kMODE_ABSOLUTEX, 4, (*Processor).iNOP),

	// Immediate only
	0x4B: op("ALR", kMODE_IMMEDIATE, 2, (*Processor).iALR),
	0x6B: op("ARR", kMODE_IMMEDIATE, 2, (*Processor).iARR),
	0xCB: op("AXS", kMODE_IMMEDIATE, 2, (*Processor).iAXS),
	0xEB: op("SBC", kMODE_IMMEDIATE, 2, (*Processor).iSBC),
}

var undocumentedOps = func() [256]opcode {
	t := documentedOps
	for code, o := range undocumentedExtras {
		t[code] = o
	}
	return t
}()

// Mnemonic returns the name the processor decodes op as or "???" if it runs as
// an unimplemented opcode.
func (p *Processor) Mnemonic(code uint8) string {
	if n := p.ops[code].name; n != "" {
		return n
	}
	return "???"
}
