// Package irq defines the basic interfaces for working
// with a 6502 family interrupt. A receiver of interrupts (IRQ/NMI/reset)
// will implement this interface to allow other components which generate
// them to easily raise state without cross coupling component logic.
// NOTE: The receiver latches a pending line until it services it. Level
//       triggered sources need to keep raising (see FeedbackPort.Poll) and
//       can drop a still pending IRQ if the receiver implements Clearer.
package irq

import (
	"github.com/jmchacon/nes6502/memory"
)

type Receiver interface {
	// SetIRQ marks a maskable interrupt as pending.
	SetIRQ()
	// SetNMI marks a non-maskable interrupt as pending.
	SetNMI()
	// SetReset marks a reset as pending.
	SetReset()
}

// Clearer is implemented by receivers which allow a pending IRQ to be withdrawn
// before it's serviced.
type Clearer interface {
	ClearIRQ()
}

const (
	// FeedbackIRQ is the bit in the feedback port which holds IRQ asserted.
	FeedbackIRQ = uint8(0x01)
	// FeedbackNMI is the bit in the feedback port which raises NMI on a 0->1 transition.
	FeedbackNMI = uint8(0x02)
	// FeedbackMask is the set of bits the port stores. Bit 7 is reserved for
	// the program under test.
	FeedbackMask = uint8(0x7F)
)

// FeedbackPort wraps a memory.Bank and intercepts a single address. Programs write
// to it to raise interrupts on themselves which is how interrupt test ROMs exercise
// IRQ and NMI handling without real peripherals.
type FeedbackPort struct {
	parent memory.Bank
	addr   uint16
	recv   Receiver
	val    uint8
}

// NewFeedbackPort returns a port at addr backed by parent which raises lines on recv.
// recv may be nil and supplied later with Install since the receiver generally needs
// the port as its memory before it exists.
func NewFeedbackPort(parent memory.Bank, addr uint16, recv Receiver) *FeedbackPort {
	return &FeedbackPort{
		parent: parent,
		addr:   addr,
		recv:   recv,
	}
}

// Install sets the receiver lines are raised on.
func (f *FeedbackPort) Install(recv Receiver) {
	f.recv = recv
}

// Read implements the interface for memory.Bank.
func (f *FeedbackPort) Read(addr uint16) uint8 {
	if addr == f.addr {
		return f.val
	}
	return f.parent.Read(addr)
}

// Write implements the interface for memory.Bank.
func (f *FeedbackPort) Write(addr uint16, val uint8) {
	if addr != f.addr {
		f.parent.Write(addr, val)
		return
	}
	prev := f.val
	f.val = val & FeedbackMask
	if f.recv == nil {
		return
	}
	if f.val&FeedbackNMI != 0 && prev&FeedbackNMI == 0 {
		f.recv.SetNMI()
	}
	f.Poll()
}

// PowerOn implements the interface for memory.Bank. The port itself comes up with no lines held.
func (f *FeedbackPort) PowerOn() {
	f.parent.PowerOn()
	f.val = 0
}

// Poll asserts IRQ on the receiver while the IRQ bit is held. If the bit is clear and
// the receiver can withdraw a pending IRQ it is cleared. Call before every step so the
// line acts level triggered.
func (f *FeedbackPort) Poll() {
	if f.recv == nil {
		return
	}
	if f.val&FeedbackIRQ != 0 {
		f.recv.SetIRQ()
		return
	}
	if c, ok := f.recv.(Clearer); ok {
		c.ClearIRQ()
	}
}

// Value returns the current port contents.
func (f *FeedbackPort) Value() uint8 {
	return f.val
}
