// Package trace records walks as zstd-compressed JSON lines.
//
// A Writer is shared by both walks of a solve; every record names its
// policy. Flat and Cube build the walk options that feed a Writer:
//
//   - LevelInstruction  one record per instruction plus one per blocked move.
//   - LevelStep         additionally one record per tile advanced.
package trace

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/cubewalk/grid"
)

// ErrUnknownLevel indicates a level name other than "instruction" or "step".
var ErrUnknownLevel = errors.New("trace: unknown level")

// Level selects how much of a walk is recorded.
type Level uint8

const (
	LevelInstruction Level = iota
	LevelStep
)

// ParseLevel converts a level name.
func ParseLevel(s string) (Level, error) {
	switch s {
	case "", "instruction":
		return LevelInstruction, nil
	case "step":
		return LevelStep, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownLevel, s)
	}
}

// Record kinds.
const (
	KindInstruction = "instruction"
	KindStep        = "step"
	KindBlocked     = "blocked"
)

// Record is one trace line. X, Y and Dir are net coordinates; Face is set
// for cube walks only.
type Record struct {
	Policy      string      `json:"policy"`
	Kind        string      `json:"kind"`
	Index       int         `json:"index"`
	Instruction string      `json:"instruction,omitempty"`
	X           int         `json:"x"`
	Y           int         `json:"y"`
	Dir         string      `json:"dir"`
	Face        *grid.Point `json:"face,omitempty"`
}

// Writer appends records to a .jsonl.zst file. It is safe for concurrent use.
type Writer struct {
	mu  sync.Mutex
	f   *os.File
	enc *zstd.Encoder
	w   *bufio.Writer
}

// Create truncates or creates the file at path, making parent directories.
func Create(path string) (*Writer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &Writer{f: f, enc: enc, w: bufio.NewWriterSize(enc, 64*1024)}, nil
}

// Write appends r as one JSON line.
func (w *Writer) Write(r Record) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return os.ErrClosed
	}
	if _, err := w.w.Write(b); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Close flushes buffered records and closes the file. Further writes fail.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.w == nil {
		return nil
	}

	err := w.w.Flush()
	err = errors.Join(err, w.enc.Close(), w.f.Close())
	w.w, w.enc, w.f = nil, nil, nil
	return err
}

// ReadAll decodes every record from a compressed trace stream.
func ReadAll(r io.Reader) ([]Record, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	var out []Record
	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for line := 1; sc.Scan(); line++ {
		var rec Record
		if err := json.Unmarshal(sc.Bytes(), &rec); err != nil {
			return nil, fmt.Errorf("trace: line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile decodes every record from the trace file at path.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadAll(f)
}
