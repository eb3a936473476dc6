package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/katalvlaran/cubewalk/config"
)

// loadConfig reads -config, if any, then applies the flags that were set.
func loadConfig(args []string) (config.Config, error) {
	fs := flag.NewFlagSet("cubewalk", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	var (
		cfgPath    = fs.String("config", "", "YAML configuration file")
		input      = fs.String("input", "", "puzzle input file (may also be given as the only argument)")
		faceSize   = fs.Int("face-size", 0, "face edge length; 0 derives it from the net")
		tracePath  = fs.String("trace", "", "write a .jsonl.zst walk trace to this path")
		traceLevel = fs.String("trace-level", config.TraceInstruction, "trace detail: instruction or step")
		ledgerPath = fs.String("ledger", "", "SQLite answer ledger path")
		expectFlat = fs.Int("expect-flat", -1, "expected flat answer; -1 skips the check")
		expectCube = fs.Int("expect-cube", -1, "expected cube answer; -1 skips the check")
		verbose    = fs.Bool("v", false, "verbose logging")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, err
	}
	if fs.NArg() > 1 {
		return config.Config{}, fmt.Errorf("expected at most one input file, got %d", fs.NArg())
	}

	cfg := config.Defaults()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return config.Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "face-size":
			cfg.FaceSize = *faceSize
		case "trace":
			cfg.Trace.Path = *tracePath
		case "trace-level":
			cfg.Trace.Level = *traceLevel
		case "ledger":
			cfg.Ledger.Path = *ledgerPath
		case "expect-flat":
			cfg.Expected.Flat = expectation(expectFlat)
		case "expect-cube":
			cfg.Expected.Cube = expectation(expectCube)
		case "v":
			cfg.Verbose = *verbose
		}
	})
	if fs.NArg() == 1 {
		cfg.Input = fs.Arg(0)
	}
	return cfg, nil
}

// expectation turns an -expect-* flag value into a known answer; a negative
// value clears it.
func expectation(v *int) *int {
	if *v < 0 {
		return nil
	}
	return v
}
