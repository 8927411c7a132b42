package cpu

import (
	"github.com/jmchacon/nes6502/memory"
)

// Each instruction runs after PC has moved past it. Base cycle costs live in the
// opcode tables, anything data dependent (taken branches) goes in p.extra.

// iADC implements the ADC instruction for both binary and BCD modes (if implemented) and sets all associated flags.
func (p *Processor) iADC(o operand) {
	p.adc(p.load(o))
}

func (p *Processor) adc(arg uint8) {
	carry := uint8(0)
	if p.flags.Carry {
		carry = 1
	}

	if p.bcd() {
		// Flags come from the value before the decimal adjust which
		// matches NMOS parts.
		low := int(p.a&0x0F) + int(arg&0x0F) + int(carry)
		halfCarry := low > 0x09
		high := int(p.a&0xF0) + int(arg&0xF0)
		if halfCarry {
			high += 0x10
		}
		p.flags.Carry = high > 0x9F
		bin := uint8((low & 0x0F) + (high & 0xF0))
		p.zeroCheck(bin)
		p.negativeCheck(bin)
		p.overflowCheck(p.a, arg, bin)

		if halfCarry {
			low += 0x06
		}
		if p.flags.Carry {
			high += 0x60
		}
		p.a = uint8((low & 0x0F) + (high & 0xF0))
		return
	}

	// Yes, could do bit checks here like the hardware but
	// just treating as uint16 math is simpler to code.
	sum := uint16(p.a) + uint16(arg) + uint16(carry)
	p.overflowCheck(p.a, arg, uint8(sum))
	p.carryCheck(sum)
	// Now set the accumulator so the other flag checks are against the result.
	p.loadRegister(&p.a, uint8(sum))
}

// iSBC implements the SBC instruction for both binary and BCD modes (if implemented) and sets all associated flags.
func (p *Processor) iSBC(o operand) {
	p.sbc(p.load(o))
}

func (p *Processor) sbc(arg uint8) {
	carry := 0
	if p.flags.Carry {
		carry = 1
	}

	if p.bcd() {
		low := 0x0F + int(p.a&0x0F) - int(arg&0x0F) + carry
		halfCarry := low > 0x0F
		high := 0xF0 + int(p.a&0xF0) - int(arg&0xF0)
		if halfCarry {
			high += 0x10
		}
		p.flags.Carry = high > 0xFF
		bin := uint8((low & 0x0F) + (high & 0xF0))
		p.zeroCheck(bin)
		p.negativeCheck(bin)
		p.overflowCheck(p.a, ^arg, bin)

		if !halfCarry {
			low -= 0x06
		}
		if !p.flags.Carry {
			high -= 0x60
		}
		p.a = uint8((low & 0x0F) + (high & 0xF0))
		return
	}

	// A + ~arg + C done as 0xFF + A - arg + C so carry out is result > 0xFF.
	res := 0xFF + int(p.a) - int(arg) + carry
	p.overflowCheck(p.a, ^arg, uint8(res))
	p.flags.Carry = res > 0xFF
	p.loadRegister(&p.a, uint8(res))
}

func (p *Processor) iAND(o operand) {
	p.loadRegister(&p.a, p.a&p.load(o))
}

func (p *Processor) iORA(o operand) {
	p.loadRegister(&p.a, p.a|p.load(o))
}

func (p *Processor) iEOR(o operand) {
	p.loadRegister(&p.a, p.a^p.load(o))
}

// asl, lsr, rol and ror return the shifted value with C/Z/N set from it.

func (p *Processor) asl(val uint8) uint8 {
	p.carryCheck(uint16(val) << 1)
	val <<= 1
	p.zeroCheck(val)
	p.negativeCheck(val)
	return val
}

func (p *Processor) lsr(val uint8) uint8 {
	p.flags.Carry = val&0x01 != 0
	val >>= 1
	p.zeroCheck(val)
	p.negativeCheck(val)
	return val
}

func (p *Processor) rol(val uint8) uint8 {
	carry := p.flags.Carry
	p.carryCheck(uint16(val) << 1)
	val <<= 1
	if carry {
		val |= 0x01
	}
	p.zeroCheck(val)
	p.negativeCheck(val)
	return val
}

func (p *Processor) ror(val uint8) uint8 {
	carry := p.flags.Carry
	p.flags.Carry = val&0x01 != 0
	val >>= 1
	if carry {
		val |= 0x80
	}
	p.zeroCheck(val)
	p.negativeCheck(val)
	return val
}

// iASL implements the ASL instruction on either the accumulator or memory.
func (p *Processor) iASL(o operand) {
	p.store(o, p.asl(p.load(o)))
}

func (p *Processor) iLSR(o operand) {
	p.store(o, p.lsr(p.load(o)))
}

func (p *Processor) iROL(o operand) {
	p.store(o, p.rol(p.load(o)))
}

func (p *Processor) iROR(o operand) {
	p.store(o, p.ror(p.load(o)))
}

// iBIT implements the BIT instruction. N and V come straight from memory, Z from A AND memory.
func (p *Processor) iBIT(o operand) {
	val := p.load(o)
	p.zeroCheck(p.a & val)
	p.negativeCheck(val)
	p.flags.Overflow = val&P_OVERFLOW != 0
}

// compare implements the logic for all CMP/CPX/CPY instructions and
// sets flags accordingly from the results.
func (p *Processor) compare(reg uint8, val uint8) {
	p.flags.Carry = reg >= val
	p.zeroCheck(reg - val)
	p.negativeCheck(reg - val)
}

func (p *Processor) iCMP(o operand) { p.compare(p.a, p.load(o)) }
func (p *Processor) iCPX(o operand) { p.compare(p.x, p.load(o)) }
func (p *Processor) iCPY(o operand) { p.compare(p.y, p.load(o)) }

// iINC and iDEC are read-modify-write on memory and set Z/N from the new value.
func (p *Processor) iINC(o operand) {
	val := p.load(o) + 1
	p.zeroCheck(val)
	p.negativeCheck(val)
	p.store(o, val)
}

func (p *Processor) iDEC(o operand) {
	val := p.load(o) - 1
	p.zeroCheck(val)
	p.negativeCheck(val)
	p.store(o, val)
}

func (p *Processor) iINX(operand) { p.loadRegister(&p.x, p.x+1) }
func (p *Processor) iINY(operand) { p.loadRegister(&p.y, p.y+1) }
func (p *Processor) iDEX(operand) { p.loadRegister(&p.x, p.x-1) }
func (p *Processor) iDEY(operand) { p.loadRegister(&p.y, p.y-1) }

func (p *Processor) iLDA(o operand) { p.loadRegister(&p.a, p.load(o)) }
func (p *Processor) iLDX(o operand) { p.loadRegister(&p.x, p.load(o)) }
func (p *Processor) iLDY(o operand) { p.loadRegister(&p.y, p.load(o)) }

func (p *Processor) iSTA(o operand) { p.store(o, p.a) }
func (p *Processor) iSTX(o operand) { p.store(o, p.x) }
func (p *Processor) iSTY(o operand) { p.store(o, p.y) }

func (p *Processor) iTAX(operand) { p.loadRegister(&p.x, p.a) }
func (p *Processor) iTAY(operand) { p.loadRegister(&p.y, p.a) }
func (p *Processor) iTSX(operand) { p.loadRegister(&p.x, p.s) }
func (p *Processor) iTXA(operand) { p.loadRegister(&p.a, p.x) }
func (p *Processor) iTYA(operand) { p.loadRegister(&p.a, p.y) }

// iTXS is the only transfer which doesn't touch flags.
func (p *Processor) iTXS(operand) { p.s = p.x }

func (p *Processor) iCLC(operand) { p.flags.Carry = false }
func (p *Processor) iCLD(operand) { p.flags.Decimal = false }
func (p *Processor) iCLI(operand) { p.flags.Interrupt = false }
func (p *Processor) iCLV(operand) { p.flags.Overflow = false }
func (p *Processor) iSEC(operand) { p.flags.Carry = true }
func (p *Processor) iSED(operand) { p.flags.Decimal = true }
func (p *Processor) iSEI(operand) { p.flags.Interrupt = true }

func (p *Processor) iNOP(operand) {}

// branch takes the branch to o.addr if cond is set. A taken branch costs
// one more cycle and one beyond that if the target is on another page.
func (p *Processor) branch(o operand, cond bool) {
	if !cond {
		return
	}
	p.extra++
	if pageCrossed(p.pc, o.addr) {
		p.extra++
	}
	p.pc = o.addr
}

func (p *Processor) iBCC(o operand) { p.branch(o, !p.flags.Carry) }
func (p *Processor) iBCS(o operand) { p.branch(o, p.flags.Carry) }
func (p *Processor) iBEQ(o operand) { p.branch(o, p.flags.Zero) }
func (p *Processor) iBNE(o operand) { p.branch(o, !p.flags.Zero) }
func (p *Processor) iBMI(o operand) { p.branch(o, p.flags.Negative) }
func (p *Processor) iBPL(o operand) { p.branch(o, !p.flags.Negative) }
func (p *Processor) iBVC(o operand) { p.branch(o, !p.flags.Overflow) }
func (p *Processor) iBVS(o operand) { p.branch(o, p.flags.Overflow) }

// iJMP handles both absolute and indirect forms since resolve already followed the pointer.
func (p *Processor) iJMP(o operand) {
	p.pc = o.addr
}

// iJSR pushes the address of the last byte of the JSR (return address - 1) and jumps.
func (p *Processor) iJSR(o operand) {
	p.pushAddr(p.pc - 1)
	p.pc = o.addr
}

// iRTS pops the address JSR pushed and resumes at the byte after it.
func (p *Processor) iRTS(operand) {
	p.pc = p.popAddr() + 1
}

// iRTI pops P and then PC.
func (p *Processor) iRTI(operand) {
	p.flags.Set(p.popStack())
	p.pc = p.popAddr()
}

// iBRK pushes PC (already past the padding byte) and P with B set and then vectors
// through IRQ.
func (p *Processor) iBRK(operand) {
	p.pushAddr(p.pc)
	p.pushStack(p.Status())
	p.flags.Interrupt = true
	p.pc = memory.ReadAddr(p.ram, IRQ_VECTOR)
}

func (p *Processor) iPHA(operand) { p.pushStack(p.a) }

// iPHP always pushes with B set.
func (p *Processor) iPHP(operand) { p.pushStack(p.Status()) }

func (p *Processor) iPLA(operand) { p.loadRegister(&p.a, p.popStack()) }
func (p *Processor) iPLP(operand) { p.flags.Set(p.popStack()) }

// iANC implements the undocumented opcode for ANC. This does AND #i and then sets carry based on bit 7 (sign extend).
func (p *Processor) iANC(o operand) {
	p.loadRegister(&p.a, p.a&p.load(o))
	p.flags.Carry = p.flags.Negative
}

// iKIL halts the processor. PC doesn't move and nothing else happens until a reset.
func (p *Processor) iKIL(operand) {
	p.jam = true
}

// Everything below is only reachable with ChipDef.Undocumented set.

// iALR implements the undocumented opcode for ALR. This does AND #i and then LSR setting all associated flags.
func (p *Processor) iALR(o operand) {
	p.a = p.lsr(p.a & p.load(o))
}

// iARR implements the undocumented opcode for ARR. This does AND #i and then ROR except some flags are set differently.
// Implemented as described in http://nesdev.com/6502_cpu.txt
func (p *Processor) iARR(o operand) {
	t := p.a & p.load(o)
	p.a = p.ror(t)
	if p.bcd() {
		// If bit 6 changed state between the AND result and the rotate set V.
		p.flags.Overflow = (t^p.a)&0x40 != 0
		// Now do possible odd BCD fixups and set C
		ah := t >> 4
		al := t & 0x0F
		if al+(al&0x01) > 5 {
			p.a = (p.a & 0xF0) | ((p.a + 6) & 0x0F)
		}
		if ah+(ah&0x01) > 5 {
			p.flags.Carry = true
			p.a += 0x60
		} else {
			p.flags.Carry = false
		}
		return
	}
	// C is bit 6 and V is bit 6 ^ bit 5
	p.flags.Carry = p.a&0x40 != 0
	p.flags.Overflow = ((p.a>>6)^(p.a>>5))&0x01 != 0
}

// iAXS implements the undocumented opcode for AXS. X = (A AND X) - arg without borrow in and setting
// C/Z/N like CMP.
func (p *Processor) iAXS(o operand) {
	arg := p.load(o)
	t := p.a & p.x
	p.flags.Carry = t >= arg
	p.loadRegister(&p.x, t-arg)
}

// iLAX implements the undocumented opcode for LAX. This loads A and X with the same value and sets all associated flags.
func (p *Processor) iLAX(o operand) {
	val := p.load(o)
	p.loadRegister(&p.a, val)
	p.loadRegister(&p.x, val)
}

// iSAX implements the undocumented opcode for SAX. Stores A AND X without touching flags.
func (p *Processor) iSAX(o operand) {
	p.store(o, p.a&p.x)
}

// iDCP implements the undocumented opcode for DCP. This decrements the given address and then does a CMP with A setting associated flags.
func (p *Processor) iDCP(o operand) {
	val := p.load(o) - 1
	p.store(o, val)
	p.compare(p.a, val)
}

// iISC implements the undocumented opcode for ISC. This increments the given address and then does an SBC with setting associated flags.
func (p *Processor) iISC(o operand) {
	val := p.load(o) + 1
	p.store(o, val)
	p.sbc(val)
}

// iSLO implements the undocumented opcode for SLO. This does an ASL on the given address and then OR's it against A. Sets flags and carry.
func (p *Processor) iSLO(o operand) {
	val := p.asl(p.load(o))
	p.store(o, val)
	p.loadRegister(&p.a, p.a|val)
}

// iRLA implements the undocumented opcode for RLA. This does a ROL on the given address and then AND's it against A. Sets flags and carry.
func (p *Processor) iRLA(o operand) {
	val := p.rol(p.load(o))
	p.store(o, val)
	p.loadRegister(&p.a, p.a&val)
}

// iSRE implements the undocumented opcode for SRE. This does a LSR on the given address and then EOR's it against A. Sets flags and carry.
func (p *Processor) iSRE(o operand) {
	val := p.lsr(p.load(o))
	p.store(o, val)
	p.loadRegister(&p.a, p.a^val)
}

// iRRA implements the undocumented opcode for RRA. This does a ROR on the given address and then ADC's it against A.
// The carry out of the ROR feeds the ADC.
func (p *Processor) iRRA(o operand) {
	val := p.ror(p.load(o))
	p.store(o, val)
	p.adc(val)
}
