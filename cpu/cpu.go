// Package cpu defines the 6502 architecture as used in the NES and provides
// the methods needed to run the CPU and interface with it
// for emulation. Execution is instruction stepped: each call to Step
// services a reset, an interrupt or exactly one instruction and charges
// the cycles the hardware would have taken.
package cpu

import (
	"fmt"
	"log"

	"github.com/jmchacon/nes6502/memory"
)

// CPUType is an enumeration of the valid CPU types.
type CPUType int

const (
	CPU_UNIMPLMENTED CPUType = iota // Start of valid cpu enumerations.
	CPU_NMOS                        // Basic NMOS 6502 with BCD arithmetic.
	CPU_NMOS_RICOH                  // Ricoh 2A03 used in the NES which is identical to NMOS except BCD mode is unimplemented.
	CPU_MAX                         // End of CPU enumerations.
)

const (
	NMI_VECTOR   = uint16(0xFFFA)
	RESET_VECTOR = uint16(0xFFFC)
	IRQ_VECTOR   = uint16(0xFFFE)

	P_NEGATIVE  = uint8(0x80)
	P_OVERFLOW  = uint8(0x40)
	P_S1        = uint8(0x20) // Always 1
	P_B         = uint8(0x10) // Only set when pushed by BRK/PHP. Cleared on all other interrupts.
	P_DECIMAL   = uint8(0x8)
	P_INTERRUPT = uint8(0x4)
	P_ZERO      = uint8(0x2)
	P_CARRY     = uint8(0x1)

	// Cycles charged for a reset or an interrupt sequence.
	kINTERRUPT_CYCLES = 7
)

// Flags holds the 6 status bits the processor actually tracks. Bits 4 and 5 of the
// packed status byte aren't storage and always read back as 1.
type Flags struct {
	Carry     bool
	Zero      bool
	Interrupt bool
	Decimal   bool
	Overflow  bool
	Negative  bool
}

// Byte packs the flags into the status register layout with P_S1 and P_B set.
func (f Flags) Byte() uint8 {
	v := P_S1 | P_B
	if f.Carry {
		v |= P_CARRY
	}
	if f.Zero {
		v |= P_ZERO
	}
	if f.Interrupt {
		v |= P_INTERRUPT
	}
	if f.Decimal {
		v |= P_DECIMAL
	}
	if f.Overflow {
		v |= P_OVERFLOW
	}
	if f.Negative {
		v |= P_NEGATIVE
	}
	return v
}

// Set unpacks a status byte. P_S1 and P_B are ignored.
func (f *Flags) Set(v uint8) {
	f.Carry = v&P_CARRY != 0
	f.Zero = v&P_ZERO != 0
	f.Interrupt = v&P_INTERRUPT != 0
	f.Decimal = v&P_DECIMAL != 0
	f.Overflow = v&P_OVERFLOW != 0
	f.Negative = v&P_NEGATIVE != 0
}

// CycleHook is called once for every elapsed cycle with the updated cycle count.
type CycleHook func(cycles uint64)

// StepHook is called at the start of every Step before any state changes.
type StepHook func(p *Processor)

// ChipDef defines the processor to create.
type ChipDef struct {
	// Cpu is the variant to emulate. The zero value means CPU_NMOS.
	Cpu CPUType
	// Ram is the address space the processor runs against. Required.
	Ram memory.Bank
	// Undocumented enables the stable NMOS undocumented opcodes. When false
	// every opcode outside the documented set (other than ANC and KIL) logs
	// a diagnostic and executes as a 1 byte NOP.
	Undocumented bool
	// IndirectJMPBug emulates JMP ($xxFF) fetching the high byte from $xx00.
	IndirectJMPBug bool
	// Logger receives diagnostics. If nil log.Default() is used.
	Logger *log.Logger
}

// Processor is a single 6502 core.
type Processor struct {
	a     uint8  // Accumulator register
	x     uint8  // X register
	y     uint8  // Y register
	s     uint8  // Stack pointer
	pc    uint16 // Program counter
	flags Flags  // Processor status register

	opcode  uint8  // The last fetched opcode
	data    uint8  // The byte after the opcode (all instructions fetch this).
	address uint16 // The 2 bytes after the opcode as a little endian value.
	extra   int    // Cycles added by the running instruction (taken branches).

	reset bool // Reset pending
	nmi   bool // NMI pending
	irq   bool // IRQ pending
	jam   bool // Halted by a KIL opcode until reset

	cycles  uint64
	charged int // Cycles ticked by the running Step.

	ram        memory.Bank
	cpuType    CPUType
	ops        *[256]opcode // Decode table for the configured opcode set.
	jmpBug     bool
	logger     *log.Logger
	cycleHooks []CycleHook
	stepHooks  []StepHook
}

// A few custom error types to distinguish why the CPU stopped

// UnimplementedOpcode represents a currently unimplmented opcode in the emulator.
type UnimplementedOpcode struct {
	Opcode uint8
}

// Error implements the interface for error types.
func (e UnimplementedOpcode) Error() string {
	return fmt.Sprintf("0x%.2X is an unimplemented opcode", e.Opcode)
}

// InvalidCPUState represents an invalid CPU state in the emulator.
type InvalidCPUState struct {
	Reason string
}

// Error implements the interface for error types.
func (e InvalidCPUState) Error() string {
	return fmt.Sprintf("invalid CPU state: %s", e.Reason)
}

// HaltOpcode represents an opcode which halts the CPU.
type HaltOpcode struct {
	Opcode uint8
}

// Error implements the interface for error types.
func (e HaltOpcode) Error() string {
	return fmt.Sprintf("HALT(0x%.2X) executed", e.Opcode)
}

// Init will create a new CPU from the definition and return it in powered on state
// with a reset pending. Memory is not powered on here since its contents are
// generally loaded before the CPU is created.
func Init(d *ChipDef) (*Processor, error) {
	if d == nil {
		return nil, InvalidCPUState{"nil ChipDef"}
	}
	if d.Ram == nil {
		return nil, InvalidCPUState{"ChipDef must have a Ram"}
	}
	cpu := d.Cpu
	if cpu == CPU_UNIMPLMENTED {
		cpu = CPU_NMOS
	}
	if cpu <= CPU_UNIMPLMENTED || cpu >= CPU_MAX {
		return nil, fmt.Errorf("CPU type %d is invalid", cpu)
	}
	p := &Processor{
		ram:     d.Ram,
		cpuType: cpu,
		ops:     &documentedOps,
		jmpBug:  d.IndirectJMPBug,
		logger:  d.Logger,
	}
	if d.Undocumented {
		p.ops = &undocumentedOps
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	p.PowerOn()
	return p, nil
}

// PowerOn will reset the CPU to specific power on state. Registers are zero, stack is zero,
// all flags are clear and a reset is pending so the first Step loads PC from the reset vector.
func (p *Processor) PowerOn() {
	p.a = 0
	p.x = 0
	p.y = 0
	p.s = 0
	p.pc = 0
	p.flags = Flags{}
	p.opcode, p.data, p.address = 0, 0, 0
	p.nmi = false
	p.irq = false
	p.jam = false
	p.cycles = 0
	p.reset = true
}

// SetReset marks a reset as pending. It's serviced on the next Step.
func (p *Processor) SetReset() {
	p.reset = true
}

// SetNMI marks an NMI as pending. It's serviced on the next Step unless a reset is pending.
func (p *Processor) SetNMI() {
	p.nmi = true
}

// SetIRQ marks an IRQ as pending. It stays pending while interrupts are disabled.
func (p *Processor) SetIRQ() {
	p.irq = true
}

// ClearIRQ withdraws a pending IRQ which hasn't been serviced yet.
func (p *Processor) ClearIRQ() {
	p.irq = false
}

// OnCycle adds a hook which runs once per elapsed cycle.
func (p *Processor) OnCycle(f CycleHook) {
	p.cycleHooks = append(p.cycleHooks, f)
}

// OnStep adds a hook which runs at the start of every Step.
func (p *Processor) OnStep(f StepHook) {
	p.stepHooks = append(p.stepHooks, f)
}

// Jump sets PC to the 16 bit value stored at addr.
func (p *Processor) Jump(addr uint16) {
	p.pc = memory.ReadAddr(p.ram, addr)
}

// SetPC sets PC directly.
func (p *Processor) SetPC(pc uint16) {
	p.pc = pc
}

func (p *Processor) A() uint8           { return p.a }
func (p *Processor) X() uint8           { return p.x }
func (p *Processor) Y() uint8           { return p.y }
func (p *Processor) SP() uint8          { return p.s }
func (p *Processor) PC() uint16         { return p.pc }
func (p *Processor) Flags() Flags       { return p.flags }
func (p *Processor) Cycles() uint64     { return p.cycles }
func (p *Processor) Opcode() uint8      { return p.opcode }
func (p *Processor) Data() uint8        { return p.data }
func (p *Processor) Halted() bool       { return p.jam }
func (p *Processor) ResetPending() bool { return p.reset }
func (p *Processor) NMIPending() bool   { return p.nmi }
func (p *Processor) IRQPending() bool   { return p.irq }
func (p *Processor) Type() CPUType      { return p.cpuType }

// Status returns the packed status register. Bits 4 and 5 always read as 1.
func (p *Processor) Status() uint8 {
	return p.flags.Byte()
}

// SetStatus unpacks v into the flags. Bits 4 and 5 are ignored.
func (p *Processor) SetStatus(v uint8) {
	p.flags.Set(v)
}

// Registers is a point in time copy of the programmer visible registers.
type Registers struct {
	A  uint8
	X  uint8
	Y  uint8
	S  uint8
	P  uint8
	PC uint16
}

// Registers returns a copy of the current register state.
func (p *Processor) Registers() Registers {
	return Registers{
		A:  p.a,
		X:  p.x,
		Y:  p.y,
		S:  p.s,
		P:  p.Status(),
		PC: p.pc,
	}
}

// HaltError returns a HaltOpcode for the opcode which halted the processor or nil if it's running.
func (p *Processor) HaltError() error {
	if !p.jam {
		return nil
	}
	return HaltOpcode{p.opcode}
}

// Step runs the processor forward by exactly one reset service, one interrupt service
// or one instruction and returns the cycles that took. The returned error is only
// ever a HaltOpcode and is set while the processor is halted (including the step
// which halted it). A halted processor only moves again once a reset is serviced.
func (p *Processor) Step() (int, error) {
	for _, h := range p.stepHooks {
		h(p)
	}
	p.charged = 0
	switch {
	case p.reset:
		p.serviceReset()
	case p.jam:
		// Interrupts arriving while halted are lost.
		p.nmi = false
		p.irq = false
	case p.nmi:
		p.runInterrupt(NMI_VECTOR)
		p.nmi = false
		p.irq = false
	case p.irq && !p.flags.Interrupt:
		p.runInterrupt(IRQ_VECTOR)
		p.irq = false
	default:
		p.execute()
	}
	return p.charged, p.HaltError()
}

// serviceReset runs the reset sequence. The stack moves as if PC/P were pushed but
// nothing is written.
func (p *Processor) serviceReset() {
	p.s -= 3
	p.flags.Interrupt = true
	p.pc = memory.ReadAddr(p.ram, RESET_VECTOR)
	p.cycles = 0
	p.reset = false
	p.jam = false
	p.nmi = false
	p.irq = false
	p.tick(kINTERRUPT_CYCLES)
}

// runInterrupt pushes PC and P (with B clear) and then loads PC from the given vector.
func (p *Processor) runInterrupt(vector uint16) {
	p.pushAddr(p.pc)
	p.pushStack(p.Status() &^ P_B)
	p.flags.Interrupt = true
	p.pc = memory.ReadAddr(p.ram, vector)
	p.tick(kINTERRUPT_CYCLES)
}

// execute fetches, decodes and runs the instruction at PC.
func (p *Processor) execute() {
	// Every instruction stages 3 bytes regardless of length.
	p.opcode = p.ram.Read(p.pc)
	p.data = p.ram.Read(p.pc + 1)
	p.address = uint16(p.ram.Read(p.pc+2))<<8 | uint16(p.data)
	p.extra = 0

	op := &p.ops[p.opcode]
	if op.exec == nil {
		p.logger.Printf("%v at 0x%.4X, executing as NOP", UnimplementedOpcode{p.opcode}, p.pc)
		p.pc++
		p.tick(2)
		return
	}
	o, crossed := p.resolve(op.mode)
	p.pc += op.size
	op.exec(p, o)
	cycles := op.cycles + p.extra
	if crossed && op.page {
		cycles++
	}
	p.tick(cycles)
}

// tick advances the cycle counter n times running every cycle hook each time.
func (p *Processor) tick(n int) {
	for i := 0; i < n; i++ {
		p.cycles++
		p.charged++
		for _, h := range p.cycleHooks {
			h(p.cycles)
		}
	}
}

// zeroCheck sets the Z flag based on the register contents.
func (p *Processor) zeroCheck(reg uint8) {
	p.flags.Zero = reg == 0
}

// negativeCheck sets the N flag based on the register contents.
func (p *Processor) negativeCheck(reg uint8) {
	p.flags.Negative = reg&0x80 != 0
}

// carryCheck sets the C flag if the result of an 8 bit ALU operation
// (passed as a 16 bit result) caused a carry out by generating a value >= 0x100.
func (p *Processor) carryCheck(res uint16) {
	p.flags.Carry = res >= 0x100
}

// overflowCheck sets the V flag if the result of the ALU operation
// caused a two's complement sign change.
// Taken from http://www.righto.com/2012/12/the-6502-overflow-flag-explained.html
func (p *Processor) overflowCheck(reg uint8, arg uint8, res uint8) {
	// If the originals signs differ from the end sign bit
	p.flags.Overflow = (reg^res)&(arg^res)&0x80 != 0
}

// loadRegister takes the val and inserts it into the given register.
// It then does Z and N checks against the new value and sets flags.
func (p *Processor) loadRegister(reg *uint8, val uint8) {
	*reg = val
	p.zeroCheck(*reg)
	p.negativeCheck(*reg)
}

// pushStack pushes the given byte onto the stack and adjusts the stack pointer accordingly.
func (p *Processor) pushStack(val uint8) {
	p.ram.Write(0x0100|uint16(p.s), val)
	p.s--
}

// popStack pops the top byte off the stack and adjusts the stack pointer accordingly.
func (p *Processor) popStack() uint8 {
	p.s++
	return p.ram.Read(0x0100 | uint16(p.s))
}

// pushAddr pushes a 16 bit value high byte first.
func (p *Processor) pushAddr(val uint16) {
	p.pushStack(uint8(val >> 8))
	p.pushStack(uint8(val & 0xFF))
}

// popAddr pops a 16 bit value pushed by pushAddr.
func (p *Processor) popAddr() uint16 {
	lo := uint16(p.popStack())
	hi := uint16(p.popStack())
	return hi<<8 | lo
}

// bcd reports whether ADC/SBC should use decimal arithmetic right now.
func (p *Processor) bcd() bool {
	return p.flags.Decimal && p.cpuType != CPU_NMOS_RICOH
}
