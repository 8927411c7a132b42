package harness

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/go-test/deep"
	"github.com/jmchacon/nes6502/cpu"
)

// storeAndTrap writes 0xFF to 0x0210 and then spins on a JMP * at 0x4005.
var storeAndTrap = []uint8{
	0xA9, 0xFF, //       LDA #FF
	0x8D, 0x10, 0x02, // STA 0210
	0x4C, 0x05, 0x40, // JMP 4005
}

func TestRun(t *testing.T) {
	tests := []struct {
		name    string
		cfg     *Config
		want    Result
		reason  string
		entries int
	}{
		{
			name: "success",
			cfg: &Config{
				Image:       storeAndTrap,
				LoadAddr:    0x4000,
				ResetVector: addr(0x4000),
				SuccessPC:   0x4005,
				ResultAddr:  addr(0x0210),
				WantResult:  0xFF,
			},
			want: Result{
				Passed:       true,
				PC:           0x4005,
				Cycles:       13,
				Instructions: 2,
			},
			reason:  "reached success PC",
			entries: 3,
		},
		{
			name: "image clamped at top of memory",
			cfg: &Config{
				// Anything past 0xFFFF is dropped so 0x0000 keeps its fill.
				Image: append([]uint8{
					0xAD, 0x00, 0x00, // LDA 0000
					0x8D, 0x10, 0x02, // STA 0210
					0x4C, 0xF6, 0xFF, // JMP FFF6
				}, make([]uint8, 0x17)...),
				LoadAddr:    0xFFF0,
				ResetVector: addr(0xFFF0),
				SuccessPC:   0xFFF6,
				ResultAddr:  addr(0x0210),
				WantResult:  0xFF,
			},
			want: Result{
				Passed:       true,
				PC:           0xFFF6,
				Cycles:       15,
				Instructions: 2,
			},
			reason:  "reached success PC",
			entries: 3,
		},
		{
			name: "wrong result",
			cfg: &Config{
				Image:       storeAndTrap,
				LoadAddr:    0x4000,
				ResetVector: addr(0x4000),
				SuccessPC:   0x4005,
				ResultAddr:  addr(0x0210),
				WantResult:  0x01,
			},
			want: Result{
				PC:           0x4005,
				Cycles:       13,
				Instructions: 2,
			},
			reason:  "result at 0x0210 is 0xFF want 0x01",
			entries: 3,
		},
		{
			name: "trap",
			cfg: &Config{
				Image:       storeAndTrap,
				LoadAddr:    0x4000,
				ResetVector: addr(0x4000),
				SuccessPC:   0x5000,
				TrapDetect:  true,
			},
			want: Result{
				PC:           0x4005,
				Cycles:       16,
				Instructions: 3,
			},
			reason:  "trapped at 0x4005",
			entries: 4,
		},
		{
			name: "cycle limit",
			cfg: &Config{
				Image:       storeAndTrap,
				LoadAddr:    0x4000,
				ResetVector: addr(0x4000),
				SuccessPC:   0x5000,
				MaxCycles:   20,
				RingSize:    2,
			},
			want: Result{
				PC:           0x4005,
				Cycles:       22,
				Instructions: 5,
			},
			reason:  "exceeded 20 cycles",
			entries: 2,
		},
		{
			name: "halt",
			cfg: &Config{
				Image:       []uint8{0xEA, 0x02},
				LoadAddr:    0x4000,
				ResetVector: addr(0x4000),
				SuccessPC:   0x5000,
				RingSize:    -1,
			},
			want: Result{
				PC:           0x4001,
				Cycles:       9,
				Instructions: 1,
			},
			reason: "halted at 0x4001",
		},
		{
			name: "start PC",
			cfg: &Config{
				Image:       storeAndTrap,
				LoadAddr:    0x4000,
				ResetVector: addr(0x1234),
				StartPC:     addr(0x4002),
				SuccessPC:   0x4005,
				ResultAddr:  addr(0x0210),
				// LDA was skipped so A is still zero from power on.
				WantResult: 0x00,
			},
			want: Result{
				Passed:       true,
				PC:           0x4005,
				Cycles:       11,
				Instructions: 1,
			},
			reason:  "reached success PC",
			entries: 2,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := Run(test.cfg)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if !strings.Contains(got.Reason, test.reason) {
				t.Errorf("reason %q doesn't contain %q", got.Reason, test.reason)
			}
			if got, want := len(got.Recent), test.entries; got != want {
				t.Errorf("got %d recent entries want %d", got, want)
			}
			got.Reason = ""
			got.Recent = nil
			if diff := deep.Equal(*got, test.want); diff != nil {
				t.Errorf("result differs: %v\n%s", diff, spew.Sdump(got))
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		is   error
	}{
		{
			name: "nil config",
		},
		{
			name: "empty image",
			cfg:  &Config{},
			is:   ErrEmptyImage,
		},
		{
			name: "bad processor",
			cfg: &Config{
				Image: []uint8{0xEA},
				Chip:  cpu.ChipDef{Cpu: cpu.CPU_MAX},
			},
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := Run(test.cfg)
			if err == nil {
				t.Fatalf("didn't get an error. Got %s", spew.Sdump(res))
			}
			if test.is != nil && !errors.Is(err, test.is) {
				t.Errorf("got %v want %v", err, test.is)
			}
		})
	}
}

func TestFeedbackPort(t *testing.T) {
	// Main program enables interrupts, raises IRQ through the port and spins.
	// The handler drops the line, stores the result and lands on the success PC.
	image := make([]uint8, 0x10D)
	copy(image, []uint8{
		0x58, //             CLI
		0xA9, 0x01, //       LDA #01
		0x8D, 0xFC, 0xBF, // STA BFFC
		0x4C, 0x06, 0x40, // JMP 4006
	})
	copy(image[0x100:], []uint8{
		0xA9, 0x00, //       LDA #00
		0x8D, 0xFC, 0xBF, // STA BFFC
		0xA9, 0xFF, //       LDA #FF
		0x8D, 0x10, 0x02, // STA 0210
		0x4C, 0x0A, 0x41, // JMP 410A
	})
	res, err := Run(&Config{
		Image:        image,
		LoadAddr:     0x4000,
		ResetVector:  addr(0x4000),
		IRQVector:    addr(0x4100),
		SuccessPC:    0x410A,
		ResultAddr:   addr(0x0210),
		WantResult:   0xFF,
		MaxCycles:    1000,
		FeedbackPort: addr(0xBFFC),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Passed {
		var buf bytes.Buffer
		for _, e := range res.Recent {
			buf.WriteString(e.String() + "\n")
		}
		t.Fatalf("didn't pass: %s\n%s", res.Reason, buf.String())
	}
	var irq bool
	for _, e := range res.Recent {
		if e.Interrupt == "IRQ" {
			irq = true
		}
	}
	if !irq {
		t.Errorf("no IRQ serviced in %s", spew.Sdump(res.Recent))
	}
}

func TestQuickPreset(t *testing.T) {
	image := make([]uint8, 0x5CB)
	copy(image, []uint8{
		0xA9, 0xFF, //       LDA #FF
		0x8D, 0x10, 0x02, // STA 0210
		0x4C, 0xCA, 0x45, // JMP 45CA
	})
	res, err := Run(Quick(image))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.Passed {
		t.Errorf("didn't pass: %s", spew.Sdump(res))
	}
	cfg := Full(make([]uint8, 0x10000))
	if got, want := *cfg.ResetVector, uint16(0x1000); got != want {
		t.Errorf("full reset vector got 0x%.4X want 0x%.4X", got, want)
	}
}

func TestTraceAndProgress(t *testing.T) {
	var buf bytes.Buffer
	var calls int
	res, err := Run(&Config{
		Image:       []uint8{0x4C, 0x00, 0x40}, // JMP 4000
		LoadAddr:    0x4000,
		ResetVector: addr(0x4000),
		SuccessPC:   0x5000,
		// 1000002 JMPs at 3 cycles each plus the reset.
		MaxCycles: 3000010,
		Progress: func(pc uint16, cycles uint64) {
			calls++
			if pc != 0x4000 {
				t.Errorf("progress PC got 0x%.4X want 0x4000", pc)
			}
		},
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got, want := calls, 1; got != want {
		t.Errorf("progress called %d times want %d", got, want)
	}
	if got, want := res.Instructions, uint64(1000002); got != want {
		t.Errorf("instructions got %d want %d", got, want)
	}

	res, err = Run(&Config{
		Image:       storeAndTrap,
		LoadAddr:    0x4000,
		ResetVector: addr(0x4000),
		SuccessPC:   0x4005,
		Trace:       log.New(&buf, "", 0),
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if got, want := len(lines), 3; got != want {
		t.Fatalf("traced %d lines want %d:\n%s", got, want, buf.String())
	}
	if !strings.Contains(lines[2], "STA 0210") {
		t.Errorf("unexpected trace:\n%s", buf.String())
	}
}
