// Package nettest provides cube-net fixtures shared by the folding and
// walking tests: the worked sample, the 11 cube net shapes and a renderer
// that turns a shape into a tile grid of any face size.
package nettest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/grid"
)

// Sample is the 4×4-face worked example net.
const Sample = `        ...#
        .#..
        #...
        ....
...#.......#
........#...
..#....#....
..........#.
        ...#....
        .....#..
        .#......
        ......#.`

// SamplePath is the worked example path for Sample.
const SamplePath = "10R5L5R10L4R5L5"

// Shapes are the 11 distinct cube nets drawn one character per face.
var Shapes = [][]string{
	{"#...", "####", "#..."},
	{"#...", "####", ".#.."},
	{"#...", "####", "..#."},
	{"#...", "####", "...#"},
	{".#..", "####", ".#.."},
	{".#..", "####", "..#."},
	{"##..", ".###", ".#.."},
	{"##..", ".###", "..#."},
	{"##..", ".###", "...#"},
	{"##...", ".##..", "..##."},
	{"###..", "..###"},
}

// Cell is a face position in a shape drawing.
type Cell struct{ X, Y int }

// Cells returns the '#' cells of a drawing.
func Cells(shape []string) []Cell {
	var out []Cell
	for y, row := range shape {
		for x := 0; x < len(row); x++ {
			if row[x] == '#' {
				out = append(out, Cell{x, y})
			}
		}
	}
	return out
}

// Orientations returns the 8 rotations/reflections of cells, each shifted
// back to the origin. Duplicates for symmetric shapes are kept.
func Orientations(cells []Cell) [][]Cell {
	var out [][]Cell
	for k := 0; k < 8; k++ {
		cur := make([]Cell, len(cells))
		copy(cur, cells)
		for r := 0; r < k%4; r++ {
			for i, c := range cur {
				cur[i] = Cell{-c.Y, c.X}
			}
		}
		if k >= 4 {
			for i, c := range cur {
				cur[i] = Cell{-c.X, c.Y}
			}
		}
		minX, minY := cur[0].X, cur[0].Y
		for _, c := range cur {
			minX, minY = min(minX, c.X), min(minY, c.Y)
		}
		for i := range cur {
			cur[i].X -= minX
			cur[i].Y -= minY
		}
		out = append(out, cur)
	}
	return out
}

// Render draws cells as size×size blocks of open tiles.
func Render(cells []Cell, size int) string {
	w, h := 0, 0
	for _, c := range cells {
		w, h = max(w, c.X+1), max(h, c.Y+1)
	}
	rows := make([][]byte, h*size)
	for y := range rows {
		rows[y] = []byte(strings.Repeat(" ", w*size))
	}
	for _, c := range cells {
		for dy := 0; dy < size; dy++ {
			for dx := 0; dx < size; dx++ {
				rows[c.Y*size+dy][c.X*size+dx] = '.'
			}
		}
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		lines[i] = string(r)
	}
	return strings.Join(lines, "\n")
}

// MustGrid parses raw or fails the test.
func MustGrid(t testing.TB, raw string) *grid.Grid {
	t.Helper()
	g, err := grid.Parse(raw)
	require.NoError(t, err)
	return g
}
