package puzzle

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
)

var (
	// ErrMissingPath indicates the input has no path section.
	ErrMissingPath = errors.New("puzzle: missing path after blank line")
	// ErrWrongAnswer indicates a score differs from the expected answer.
	ErrWrongAnswer = errors.New("puzzle: wrong answer")
)

// Puzzle is a parsed input.
type Puzzle struct {
	Grid *grid.Grid
	Path []instruction.Instruction
}

// Parse splits raw at the first blank line into the net and the path.
func Parse(raw string) (*Puzzle, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	net, path, ok := strings.Cut(raw, "\n\n")
	if !ok {
		return nil, ErrMissingPath
	}
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, ErrMissingPath
	}

	g, err := grid.Parse(net)
	if err != nil {
		return nil, fmt.Errorf("puzzle: net: %w", err)
	}
	ins, err := instruction.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("puzzle: path: %w", err)
	}

	return &Puzzle{Grid: g, Path: ins}, nil
}

// Load reads and parses the puzzle file at path.
func Load(path string) (*Puzzle, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// Answers holds one score per wrap policy.
type Answers struct {
	Flat int `json:"flat"`
	Cube int `json:"cube"`
}

// Expected holds known answers; nil fields are not checked.
type Expected struct {
	Flat *int
	Cube *int
}

// Check returns nil when every known answer matches a. Each mismatch is
// reported as an ErrWrongAnswer.
func (a Answers) Check(want Expected) error {
	var errs []error
	if want.Flat != nil && *want.Flat != a.Flat {
		errs = append(errs, fmt.Errorf("%w: flat = %d, want %d", ErrWrongAnswer, a.Flat, *want.Flat))
	}
	if want.Cube != nil && *want.Cube != a.Cube {
		errs = append(errs, fmt.Errorf("%w: cube = %d, want %d", ErrWrongAnswer, a.Cube, *want.Cube))
	}
	return errors.Join(errs...)
}
