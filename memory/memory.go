// Package memory defines the basic interfaces for working
// with a 6502 family memory map. Since each implementation
// that is emulated has specific mappings (including shadowed
// regions) this is defined as an interface. A flat 64k implementation
// is provided for test ROMs and simple systems without a mapper.
package memory

import (
	"errors"
	"fmt"
	"io"
)

// Bank is the contract the CPU uses to reach memory.
type Bank interface {
	// Read returns the data byte stored at addr.
	Read(addr uint16) uint8
	// Write updates addr with the new value. For ROM addresses this is simply a no-op without
	// any error.
	Write(addr uint16, val uint8)
	// PowerOn performs power on reset of the memory. This is implementation specific as to
	// whether it's randomized or preset to a fill value.
	PowerOn()
}

// ReadAddr returns the little endian 16 bit value stored at addr and addr+1.
// addr+1 wraps naturally at 0xFFFF.
func ReadAddr(b Bank, addr uint16) uint16 {
	lo := uint16(b.Read(addr))
	hi := uint16(b.Read(addr + 1))
	return hi<<8 | lo
}

// WriteAddr stores val little endian at addr (low byte) and addr+1 (high byte).
func WriteAddr(b Bank, addr uint16, val uint16) {
	b.Write(addr, uint8(val&0xFF))
	b.Write(addr+1, uint8(val>>8))
}

// Load copies bytes from r into b starting at addr. A size of 0 copies until EOF.
// The copy never runs past 0xFFFF. If a positive size can't be satisfied the number
// of bytes copied is returned along with an error wrapping io.ErrUnexpectedEOF.
func Load(b Bank, r io.Reader, addr uint16, size int) (int, error) {
	max := 0x10000 - int(addr)
	if size < 0 {
		return 0, fmt.Errorf("invalid load size %d", size)
	}
	want := size
	if size == 0 || size > max {
		size = max
	}
	buf := make([]byte, size)
	n, err := io.ReadFull(r, buf)
	switch {
	case want == 0 && (errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF)):
		// Until EOF means a short read is expected.
		err = nil
	case errors.Is(err, io.EOF):
		err = io.ErrUnexpectedEOF
	}
	for i := 0; i < n; i++ {
		b.Write(addr+uint16(i), buf[i])
	}
	if err != nil {
		return n, fmt.Errorf("loading 0x%.4X: read %d of %d bytes: %w", addr, n, size, err)
	}
	return n, nil
}

// DefaultFill is the value RAM64K holds after PowerOn unless told otherwise.
const DefaultFill = uint8(0xFF)

// RAM64K is a flat 64k address space with no mirroring or ROM regions.
type RAM64K struct {
	addr [0x10000]uint8
	fill uint8
}

// New64K returns a powered on flat RAM filled with fill.
func New64K(fill uint8) *RAM64K {
	r := &RAM64K{fill: fill}
	r.PowerOn()
	return r
}

// Read implements the interface for memory.Bank.
func (r *RAM64K) Read(addr uint16) uint8 {
	return r.addr[addr]
}

// Write implements the interface for memory.Bank.
func (r *RAM64K) Write(addr uint16, val uint8) {
	r.addr[addr] = val
}

// PowerOn implements the interface for memory.Bank and sets every location to the fill value.
func (r *RAM64K) PowerOn() {
	for i := range r.addr {
		r.addr[i] = r.fill
	}
}

// ReadAddr is the same as the package level ReadAddr for this RAM.
func (r *RAM64K) ReadAddr(addr uint16) uint16 {
	return ReadAddr(r, addr)
}

// WriteAddr is the same as the package level WriteAddr for this RAM.
func (r *RAM64K) WriteAddr(addr uint16, val uint16) {
	WriteAddr(r, addr, val)
}

// Load is the same as the package level Load for this RAM.
func (r *RAM64K) Load(rd io.Reader, addr uint16, size int) (int, error) {
	return Load(r, rd, addr, size)
}
