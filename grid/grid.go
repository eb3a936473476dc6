package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular tile map. It is immutable once built.
// tiles[y][x] holds the tile at column x, row y.
type Grid struct {
	Width, Height int
	tiles         [][]Tile
}

// New constructs a Grid from a non-empty, rectangular 2D slice of tiles.
// It deep-copies the input so later mutation by the caller has no effect.
// Returns ErrEmptyGrid if rows has no rows or no columns, ErrNonRectangular
// if any row length differs.
// Complexity: O(W×H) time and memory.
func New(rows [][]Tile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	tiles := make([][]Tile, h)
	for y := 0; y < h; y++ {
		tiles[y] = make([]Tile, w)
		copy(tiles[y], rows[y])
	}

	return &Grid{Width: w, Height: h, tiles: tiles}, nil
}

// Parse reads a net drawing. Each line is one row; lines shorter than the
// longest are padded with Void on the right. A single trailing newline is
// ignored, and "\r\n" line endings are accepted.
func Parse(raw string) (*Grid, error) {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(raw, "\n")
	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	if width == 0 {
		return nil, ErrEmptyGrid
	}

	rows := make([][]Tile, len(lines))
	for y, line := range lines {
		row := make([]Tile, width) // zero value is Void
		for x := 0; x < len(line); x++ {
			t, err := ParseTile(line[x])
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y+1, x+1, err)
			}
			row[x] = t
		}
		rows[y] = row
	}

	return New(rows)
}

// InBounds reports whether p lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the tile at p, or Void when p is outside the grid.
// Complexity: O(1).
func (g *Grid) At(p Point) Tile {
	if !g.InBounds(p) {
		return Void
	}
	return g.tiles[p.Y][p.X]
}

// Wrap applies toroidal wrapping to p.
// Complexity: O(1).
func (g *Grid) Wrap(p Point) Point {
	return Point{euclidMod(p.X, g.Width), euclidMod(p.Y, g.Height)}
}

// Start returns the leftmost Open tile of the first row, facing right.
// Complexity: O(W).
func (g *Grid) Start() (Position, error) {
	for x := 0; x < g.Width; x++ {
		if g.tiles[0][x] == Open {
			return Position{At: Point{X: x}, Dir: Right}, nil
		}
	}
	return Position{}, ErrNoStart
}

// FaceSize returns the cube face edge length implied by the grid's
// bounding box. See the package-level FaceSize.
func (g *Grid) FaceSize() int {
	return FaceSize(g.Width, g.Height)
}

// FaceSize derives the face edge length from a net's bounding box.
// Every cube net fits a 3×4 or a 2×5 box of faces: when the long side is
// more than twice the short side the box is 2×5, otherwise it is 3×4.
func FaceSize(width, height int) int {
	long, short := max(width, height), min(width, height)
	if long > short*2 {
		return short / 2
	}
	return long / 4
}

// String renders the grid back into its textual form, one row per line,
// with trailing Void trimmed.
func (g *Grid) String() string {
	var sb strings.Builder
	buf := make([]byte, g.Width)
	for y, row := range g.tiles {
		for x, t := range row {
			buf[x] = t.Byte()
		}
		sb.WriteString(strings.TrimRight(string(buf), " "))
		if y < g.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
