// Command cubewalk folds a cube net, walks the path on it under flat and cube
// wrapping, and prints both scores.
//
//	cubewalk [flags] [input]
//
// Flags override the YAML file given with -config.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/puzzle"
	"github.com/katalvlaran/cubewalk/store"
	"github.com/katalvlaran/cubewalk/trace"
)

func main() {
	logger := log.New(os.Stdout, "[cubewalk] ", log.LstdFlags|log.Lmicroseconds)
	if err := run(context.Background(), os.Args[1:], os.Stdout, logger); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logger.Fatalf("%v", err)
	}
}

// run executes one solve; answers go to stdout, diagnostics to logger.
func run(ctx context.Context, args []string, stdout io.Writer, logger *log.Logger) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	debugf := func(format string, v ...any) {
		if cfg.Verbose {
			logger.Printf(format, v...)
		}
	}
	if cfg.Input == "" {
		return errors.New("missing input: pass a file or set input in -config")
	}

	// 1. Parse.
	start := time.Now()
	raw, err := os.ReadFile(cfg.Input)
	if err != nil {
		return err
	}
	p, err := puzzle.Parse(string(raw))
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.Input, err)
	}
	size := cfg.FaceSize
	if size <= 0 {
		size = p.FaceSize()
	}
	debugf("parsed %s in %v: net %dx%d, face size %d, %d instructions",
		cfg.Input, time.Since(start), p.Grid.Width, p.Grid.Height, size, len(p.Path))
	if cfg.Verbose {
		if cube, err := p.Fold(size); err == nil {
			for i, f := range cube.Faces {
				debugf("face %-6v %v -> %v %v %v %v", cubenet.Slots[i], f.Position, f.Left(), f.Top(), f.Right(), f.Bottom())
			}
		}
	}

	// 2. Solve, tracing if asked.
	opts := []puzzle.Option{puzzle.WithFaceSize(size)}
	if cfg.Trace.Path != "" {
		level, err := trace.ParseLevel(cfg.Trace.Level)
		if err != nil {
			return err
		}
		tw, err := trace.Create(cfg.Trace.Path)
		if err != nil {
			return fmt.Errorf("trace: %w", err)
		}
		defer func() {
			if err := tw.Close(); err != nil {
				logger.Printf("trace: close: %v", err)
			}
		}()
		opts = append(opts,
			puzzle.WithFlatOptions(trace.Flat(tw, level)...),
			puzzle.WithCubeOptions(trace.Cube(tw, level, size)...),
		)
	}

	start = time.Now()
	ans, err := puzzle.Solve(ctx, p, opts...)
	if err != nil {
		return err
	}
	debugf("solved in %v", time.Since(start))

	// 3. Check against configured and recorded answers.
	if err := ans.Check(puzzle.Expected{Flat: cfg.Expected.Flat, Cube: cfg.Expected.Cube}); err != nil {
		return err
	}
	if cfg.Ledger.Path != "" {
		if err := checkLedger(ctx, cfg.Ledger.Path, raw, size, ans, debugf); err != nil {
			return err
		}
	}

	fmt.Fprintf(stdout, "flat: %d\ncube: %d\n", ans.Flat, ans.Cube)
	return nil
}

// checkLedger compares ans with the answers recorded for this input, or
// records them if the input is new.
func checkLedger(ctx context.Context, path string, raw []byte, size int, ans puzzle.Answers, debugf func(string, ...any)) error {
	l, err := store.Open(path)
	if err != nil {
		return err
	}
	defer l.Close()

	digest := store.Digest(raw)
	prev, err := l.Lookup(ctx, digest)
	switch {
	case errors.Is(err, store.ErrNotFound):
		debugf("ledger: recording %s", digest[:12])
		return l.Record(ctx, store.Entry{Digest: digest, Flat: ans.Flat, Cube: ans.Cube, FaceSize: size})
	case err != nil:
		return err
	case prev.FaceSize != size:
		debugf("ledger: %s was recorded with face size %d, re-recording", digest[:12], prev.FaceSize)
		return l.Record(ctx, store.Entry{Digest: digest, Flat: ans.Flat, Cube: ans.Cube, FaceSize: size})
	}

	debugf("ledger: checking against answers recorded %v", prev.RecordedAt.Format(time.RFC3339))
	if err := ans.Check(puzzle.Expected{Flat: &prev.Flat, Cube: &prev.Cube}); err != nil {
		return fmt.Errorf("ledger: %w", err)
	}
	return nil
}
