package main

import (
	"flag"
	"reflect"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/jmchacon/nes6502/cpu"
	"github.com/jmchacon/nes6502/harness"
)

func u16(v uint16) *uint16 {
	return &v
}

// setFlags applies args to the command line flags and records them as explicit
// the way main does. Everything is put back to defaults when the test ends.
func setFlags(t *testing.T, args map[string]string) {
	t.Helper()
	for k, v := range args {
		if err := flag.Set(k, v); err != nil {
			t.Fatalf("can't set -%s=%s: %v", k, v, err)
		}
		explicit[k] = true
	}
	t.Cleanup(func() {
		for k := range args {
			f := flag.Lookup(k)
			if err := flag.Set(k, f.DefValue); err != nil {
				t.Fatalf("can't reset -%s: %v", k, err)
			}
			delete(explicit, k)
		}
	})
}

func TestBuildConfig(t *testing.T) {
	image := []byte{0xEA}
	tests := []struct {
		name    string
		args    map[string]string
		want    *harness.Config
		wantErr bool
	}{
		{
			name: "plain",
			args: map[string]string{
				"load_addr":    "0x0400",
				"reset_vector": "0x0400",
				"success_pc":   "0x3469",
				"trap":         "true",
				"ricoh":        "true",
			},
			want: &harness.Config{
				Image:       image,
				LoadAddr:    0x0400,
				ResetVector: u16(0x0400),
				SuccessPC:   0x3469,
				WantResult:  0xFF,
				TrapDetect:  true,
				Chip:        cpu.ChipDef{Cpu: cpu.CPU_NMOS_RICOH},
				RingSize:    harness.DefaultRingSize,
			},
		},
		{
			name: "quick preset",
			args: map[string]string{
				"preset":       "quick",
				"undocumented": "true",
				"ring":         "0",
			},
			want: &harness.Config{
				Image:       image,
				LoadAddr:    0x4000,
				ResetVector: u16(0x4000),
				IRQVector:   u16(0x45A4),
				SuccessPC:   0x45CA,
				ResultAddr:  u16(0x0210),
				WantResult:  0xFF,
				Chip:        cpu.ChipDef{Cpu: cpu.CPU_NMOS, Undocumented: true},
				RingSize:    -1,
			},
		},
		{
			name: "full preset with override",
			args: map[string]string{
				"preset":        "full",
				"max_cycles":    "100",
				"feedback_port": "0xBFFC",
			},
			want: &harness.Config{
				Image:        image,
				ResetVector:  u16(0x1000),
				SuccessPC:    0x3B1C,
				MaxCycles:    100,
				TrapDetect:   true,
				FeedbackPort: u16(0xBFFC),
				Chip:         cpu.ChipDef{Cpu: cpu.CPU_NMOS},
				RingSize:     harness.DefaultRingSize,
			},
		},
		{
			name:    "no success PC",
			args:    map[string]string{},
			wantErr: true,
		},
		{
			name:    "bad preset",
			args:    map[string]string{"preset": "slow"},
			wantErr: true,
		},
		{
			name: "address out of range",
			args: map[string]string{
				"success_pc": "0x1000",
				"irq_vector": "0x10000",
			},
			wantErr: true,
		},
		{
			name: "result out of range",
			args: map[string]string{
				"success_pc":  "0x1000",
				"want_result": "256",
			},
			wantErr: true,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			setFlags(t, test.args)
			got, err := buildConfig(image)
			switch {
			case test.wantErr && err == nil:
				t.Fatalf("didn't get an error. Got %s", spew.Sdump(got))
			case test.wantErr:
				return
			case err != nil:
				t.Fatalf("buildConfig: %v", err)
			}
			// Config carries a func so compare with reflect which treats nil funcs as equal.
			if !reflect.DeepEqual(got, test.want) {
				t.Errorf("config differs:\ngot  %s\nwant %s", spew.Sdump(got), spew.Sdump(test.want))
			}
		})
	}
}

func TestRate(t *testing.T) {
	tests := []struct {
		name   string
		cycles uint64
		d      time.Duration
		want   string
	}{
		{"one MHz", 1000000, time.Second, "1.00 MHz"},
		{"fast", 81000000, 4 * time.Second, "20.25 MHz"},
		{"no time", 10, 0, "rate unknown"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := rate(test.cycles, test.d); got != test.want {
				t.Errorf("rate got %q want %q", got, test.want)
			}
		})
	}
}
