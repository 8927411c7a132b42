// Package harness runs self checking 6502 test ROMs. An image is loaded into
// a flat 64k RAM, vectors are patched as needed and the processor is stepped
// until it reaches a success address, halts, traps itself in a loop or runs
// out of cycles.
package harness

import (
	"bytes"
	"errors"
	"fmt"
	"log"

	"github.com/jmchacon/nes6502/cpu"
	"github.com/jmchacon/nes6502/irq"
	"github.com/jmchacon/nes6502/memory"
	"github.com/jmchacon/nes6502/trace"
)

// DefaultRingSize is the number of trailing steps kept for Result.Recent when
// Config.RingSize is zero.
const DefaultRingSize = 32

// ProgressInterval is how many instructions run between Config.Progress calls.
const ProgressInterval = 1000000

// Config describes a single ROM run.
type Config struct {
	// Image is loaded at LoadAddr. It must be non-empty. Anything past 0xFFFF is dropped.
	Image    []byte
	LoadAddr uint16

	// Vectors written into memory after the image is loaded if set.
	ResetVector *uint16
	IRQVector   *uint16
	NMIVector   *uint16

	// StartPC overrides PC once the reset has been serviced if set.
	StartPC *uint16

	// SuccessPC ends the run when the processor is about to execute from it.
	SuccessPC uint16
	// ResultAddr if set is checked against WantResult when SuccessPC is reached.
	ResultAddr *uint16
	WantResult uint8

	// MaxCycles fails the run once exceeded. 0 means unlimited.
	MaxCycles uint64
	// TrapDetect fails the run when an instruction leaves PC unchanged (i.e. JMP *).
	TrapDetect bool

	// FeedbackPort installs an irq.FeedbackPort at the given address.
	FeedbackPort *uint16

	// Chip configures the processor. Ram is always replaced by the harness.
	Chip cpu.ChipDef

	// Trace if set logs every step through a trace.Tracer.
	Trace *log.Logger
	// RingSize is how many steps are kept for Result.Recent. 0 uses DefaultRingSize
	// and a negative value disables it.
	RingSize int

	// Progress if set is called every ProgressInterval instructions.
	Progress func(pc uint16, cycles uint64)
}

// Result is the outcome of a run.
type Result struct {
	Passed       bool
	PC           uint16
	Cycles       uint64
	Instructions uint64
	// Reason describes why the run stopped.
	Reason string
	// Recent holds the last steps executed, oldest first.
	Recent []trace.Entry
}

// Quick returns the configuration for the quick instruction test image.
func Quick(image []byte) *Config {
	return &Config{
		Image:       image,
		LoadAddr:    0x4000,
		ResetVector: addr(0x4000),
		IRQVector:   addr(0x45A4),
		SuccessPC:   0x45CA,
		ResultAddr:  addr(0x0210),
		WantResult:  0xFF,
	}
}

// Full returns the configuration for the full functional test image which is
// loaded as a complete 64k memory image.
func Full(image []byte) *Config {
	return &Config{
		Image:       image,
		LoadAddr:    0x0000,
		ResetVector: addr(0x1000),
		SuccessPC:   0x3B1C,
		MaxCycles:   81000000,
		TrapDetect:  true,
	}
}

func addr(a uint16) *uint16 {
	return &a
}

// ErrEmptyImage is returned when Config.Image has nothing in it.
var ErrEmptyImage = errors.New("empty image")

// Run executes the configuration. An error is only returned when the run can't be
// set up. A ROM that fails is reported through Result.
func Run(cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	if len(cfg.Image) == 0 {
		return nil, ErrEmptyImage
	}
	ram := memory.New64K(memory.DefaultFill)
	if _, err := ram.Load(bytes.NewReader(cfg.Image), cfg.LoadAddr, len(cfg.Image)); err != nil {
		return nil, fmt.Errorf("can't load image: %w", err)
	}
	for _, v := range []struct {
		loc uint16
		val *uint16
	}{
		{cpu.RESET_VECTOR, cfg.ResetVector},
		{cpu.IRQ_VECTOR, cfg.IRQVector},
		{cpu.NMI_VECTOR, cfg.NMIVector},
	} {
		if v.val != nil {
			ram.WriteAddr(v.loc, *v.val)
		}
	}

	var bank memory.Bank = ram
	var port *irq.FeedbackPort
	if cfg.FeedbackPort != nil {
		port = irq.NewFeedbackPort(ram, *cfg.FeedbackPort, nil)
		bank = port
	}

	def := cfg.Chip
	def.Ram = bank
	c, err := cpu.Init(&def)
	if err != nil {
		return nil, fmt.Errorf("can't initialize processor: %w", err)
	}
	if port != nil {
		port.Install(c)
	}

	var ring *trace.Ring
	size := cfg.RingSize
	if size == 0 {
		size = DefaultRingSize
	}
	if size > 0 {
		if ring, err = trace.NewRing(size); err != nil {
			return nil, err
		}
		c.OnStep(ring.Hook(bank))
	}
	if cfg.Trace != nil {
		c.OnStep(trace.NewTracer(cfg.Trace, bank).Hook())
	}

	// Reset is always the first step.
	c.Step()
	if cfg.StartPC != nil {
		c.SetPC(*cfg.StartPC)
	}

	res := &Result{}
	for {
		if port != nil {
			port.Poll()
		}
		pc := c.PC()
		if pc == cfg.SuccessPC && !c.Halted() {
			res.Passed = true
			res.Reason = fmt.Sprintf("reached success PC 0x%.4X", pc)
			if cfg.ResultAddr != nil {
				if got := bank.Read(*cfg.ResultAddr); got != cfg.WantResult {
					res.Passed = false
					res.Reason = fmt.Sprintf("reached success PC 0x%.4X but result at 0x%.4X is 0x%.2X want 0x%.2X", pc, *cfg.ResultAddr, got, cfg.WantResult)
				}
			}
			break
		}
		interrupt := c.ResetPending() || c.NMIPending() || (c.IRQPending() && !c.Flags().Interrupt)
		if _, err := c.Step(); err != nil {
			res.Reason = fmt.Sprintf("halted at 0x%.4X: %v", pc, err)
			break
		}
		if !interrupt {
			res.Instructions++
		}
		if cfg.TrapDetect && !interrupt && c.PC() == pc {
			res.Reason = fmt.Sprintf("trapped at 0x%.4X", pc)
			break
		}
		if cfg.MaxCycles != 0 && c.Cycles() > cfg.MaxCycles {
			res.Reason = fmt.Sprintf("exceeded %d cycles at 0x%.4X", cfg.MaxCycles, c.PC())
			break
		}
		if cfg.Progress != nil && !interrupt && res.Instructions%ProgressInterval == 0 {
			cfg.Progress(c.PC(), c.Cycles())
		}
	}
	res.PC = c.PC()
	res.Cycles = c.Cycles()
	if ring != nil {
		res.Recent = ring.Entries()
	}
	return res, nil
}
