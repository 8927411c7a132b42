// romtest loads a self checking 6502 test image and runs it until it
// reaches the success PC, halts, traps in a loop or runs out of cycles.
//
// With -preset quick or -preset full the load address, vectors and
// completion checks for the two standard suites are used and any other
// flags given explicitly override them.
//
// Exits 0 if the run passed and 1 otherwise. When stdout is a terminal a
// dot is printed every million instructions so long runs show progress.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jmchacon/nes6502/cpu"
	"github.com/jmchacon/nes6502/harness"
	"github.com/jmchacon/nes6502/statsview"
	"golang.org/x/term"
)

// unset marks an address flag which wasn't given.
const unset = -1

var (
	preset       = flag.String("preset", "", "Use the settings for a standard suite: quick or full")
	loadAddr     = flag.Int("load_addr", 0x0000, "Address the image is loaded at")
	resetVector  = flag.Int("reset_vector", unset, "If set, value written to the reset vector")
	irqVector    = flag.Int("irq_vector", unset, "If set, value written to the IRQ vector")
	nmiVector    = flag.Int("nmi_vector", unset, "If set, value written to the NMI vector")
	startPC      = flag.Int("start_pc", unset, "If set, PC is forced to this after reset")
	successPC    = flag.Int("success_pc", unset, "PC which indicates the test completed")
	resultAddr   = flag.Int("result_addr", unset, "If set, address checked once success_pc is reached")
	wantResult   = flag.Int("want_result", 0xFF, "Value expected at result_addr")
	maxCycles    = flag.Uint64("max_cycles", 0, "Fail once this many cycles have run. 0 is unlimited")
	trap         = flag.Bool("trap", false, "Fail when an instruction branches or jumps to itself")
	feedbackPort = flag.Int("feedback_port", unset, "If set, address of an interrupt feedback port")
	undocumented = flag.Bool("undocumented", false, "Enable the undocumented opcodes")
	ricoh        = flag.Bool("ricoh", false, "Emulate the Ricoh 2A03 (no decimal mode)")
	jmpBug       = flag.Bool("jmp_bug", false, "Emulate the JMP (xxFF) page wrap bug")
	traceRun     = flag.Bool("trace", false, "Log every step to stderr")
	ring         = flag.Int("ring", harness.DefaultRingSize, "Number of trailing steps to print on failure")
	stats        = flag.Bool("statsview", false, "Launch the runtime statistics viewer (needs the statsview build tag)")
	statsAddr    = flag.String("statsview_addr", statsview.DefaultAddress, "Listen address for -statsview")
)

// explicit records which flags were set on the command line.
var explicit = map[string]bool{}

func main() {
	flag.Parse()
	if len(flag.Args()) != 1 {
		log.Fatalf("Invalid command: %s [flags] <image>", os.Args[0])
	}
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})
	fn := flag.Args()[0]
	b, err := os.ReadFile(fn)
	if err != nil {
		log.Fatalf("Can't open %s - %v", fn, err)
	}
	cfg, err := buildConfig(b)
	if err != nil {
		log.Fatal(err)
	}
	if *traceRun {
		cfg.Trace = log.New(os.Stderr, "", 0)
	}
	var srv *statsview.Server
	if *stats {
		if !statsview.Available() {
			log.Fatal("statsview requested but not built in. Rebuild with -tags statsview")
		}
		srv = statsview.Launch(os.Stdout, *statsAddr)
	}
	dots := term.IsTerminal(int(os.Stdout.Fd()))
	if dots {
		cfg.Progress = func(pc uint16, cycles uint64) {
			fmt.Print(".")
		}
	}

	begin := time.Now()
	res, err := harness.Run(cfg)
	elapsed := time.Since(begin)
	srv.Stop()
	if dots {
		fmt.Println()
	}
	if err != nil {
		log.Fatalf("Can't run %s - %v", fn, err)
	}
	fmt.Printf("%s: %s\nPC: %.4X cycles: %d instructions: %d\n", fn, res.Reason, res.PC, res.Cycles, res.Instructions)
	fmt.Printf("%s elapsed, %s\n", elapsed.Round(time.Millisecond), rate(res.Cycles, elapsed))
	if res.Passed {
		fmt.Println("PASS")
		return
	}
	for _, e := range res.Recent {
		fmt.Println(e)
	}
	fmt.Println("FAIL")
	os.Exit(1)
}

// rate formats cycles over d as an emulated clock speed.
func rate(cycles uint64, d time.Duration) string {
	if d <= 0 {
		return "rate unknown"
	}
	return fmt.Sprintf("%.2f MHz", float64(cycles)/d.Seconds()/1e6)
}

// buildConfig turns the flags into a harness configuration for image.
func buildConfig(image []byte) (*harness.Config, error) {
	cfg := &harness.Config{}
	switch *preset {
	case "":
		if *successPC == unset {
			return nil, fmt.Errorf("-success_pc must be set without a -preset")
		}
	case "quick":
		cfg = harness.Quick(image)
	case "full":
		cfg = harness.Full(image)
	default:
		return nil, fmt.Errorf("unknown -preset %q. Must be quick or full", *preset)
	}
	cfg.Image = image

	addrs := []struct {
		name string
		val  int
		dest **uint16
	}{
		{"reset_vector", *resetVector, &cfg.ResetVector},
		{"irq_vector", *irqVector, &cfg.IRQVector},
		{"nmi_vector", *nmiVector, &cfg.NMIVector},
		{"start_pc", *startPC, &cfg.StartPC},
		{"result_addr", *resultAddr, &cfg.ResultAddr},
		{"feedback_port", *feedbackPort, &cfg.FeedbackPort},
	}
	for _, a := range addrs {
		if a.val == unset {
			continue
		}
		v, err := address(a.name, a.val)
		if err != nil {
			return nil, err
		}
		*a.dest = &v
	}
	if *preset == "" || explicit["load_addr"] {
		v, err := address("load_addr", *loadAddr)
		if err != nil {
			return nil, err
		}
		cfg.LoadAddr = v
	}
	if *successPC != unset {
		v, err := address("success_pc", *successPC)
		if err != nil {
			return nil, err
		}
		cfg.SuccessPC = v
	}
	if *preset == "" || explicit["want_result"] {
		if *wantResult < 0 || *wantResult > 0xFF {
			return nil, fmt.Errorf("-want_result 0x%X out of range. Must be between 0-255", *wantResult)
		}
		cfg.WantResult = uint8(*wantResult)
	}
	if *preset == "" || explicit["max_cycles"] {
		cfg.MaxCycles = *maxCycles
	}
	if *preset == "" || explicit["trap"] {
		cfg.TrapDetect = *trap
	}

	cfg.Chip = cpu.ChipDef{
		Cpu:            cpu.CPU_NMOS,
		Undocumented:   *undocumented,
		IndirectJMPBug: *jmpBug,
	}
	if *ricoh {
		cfg.Chip.Cpu = cpu.CPU_NMOS_RICOH
	}
	cfg.RingSize = *ring
	if cfg.RingSize == 0 {
		cfg.RingSize = -1
	}
	return cfg, nil
}

func address(name string, v int) (uint16, error) {
	if v < 0 || v > 0xFFFF {
		return 0, fmt.Errorf("-%s 0x%X out of range. Must be between 0-65535", name, v)
	}
	return uint16(v), nil
}
