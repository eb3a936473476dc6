// Package flatwrap implements the flat wrap policy: walking off the net
// re-enters on the far side of the same row or column, skipping empty space.
//
// Errors:
//
//   - ErrBadFaceSize   if size <= 0.
//   - grid.ErrNoStart  if the first row has no Open tile.
package flatwrap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
	"github.com/katalvlaran/cubewalk/walk"
)

// ErrBadFaceSize indicates a non-positive face size.
var ErrBadFaceSize = errors.New("flatwrap: face size must be positive")

// Map is a walk.Map over net positions with flat wrapping.
type Map struct {
	g     *grid.Grid
	size  int
	start grid.Position
}

var _ walk.Map[grid.Position] = (*Map)(nil)

// New returns a flat-wrap map over g. size is the skip stride used to cross
// empty space, normally g.FaceSize().
func New(g *grid.Grid, size int) (*Map, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadFaceSize, size)
	}
	start, err := g.Start()
	if err != nil {
		return nil, err
	}
	return &Map{g: g, size: size, start: start}, nil
}

// Next steps one tile and wraps toroidally. While the landing tile is Void
// it keeps stepping by whole faces along the same line.
// Complexity: O(max(W, H) / size).
func (m *Map) Next(p grid.Position) grid.Position {
	p.At = m.g.Wrap(p.Step(1).At)
	// A row or column crossing the net holds at most 4 faces; bound the
	// search by the grid extent anyway so a malformed net cannot spin.
	for i := 0; m.g.At(p.At) == grid.Void && i < m.g.Width+m.g.Height; i++ {
		p.At = m.g.Wrap(p.Step(m.size).At)
	}
	return p
}

// Turn rotates p.
func (m *Map) Turn(p grid.Position, t grid.Turn) grid.Position { return p.Turn(t) }

// TileAt returns the tile under p.
func (m *Map) TileAt(p grid.Position) grid.Tile { return m.g.At(p.At) }

// Start returns the leftmost Open tile of row 0, facing right.
func (m *Map) Start() grid.Position { return m.start }

// ScorePosition returns p.Score().
func (m *Map) ScorePosition(p grid.Position) int { return p.Score() }

// Score walks path on m and returns the final score.
func (m *Map) Score(path []instruction.Instruction, opts ...walk.Option[grid.Position]) (int, error) {
	return walk.Score[grid.Position](m, path, opts...)
}
