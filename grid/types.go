package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidTile indicates a character that is not '.', '#' or ' '.
	ErrInvalidTile = errors.New("grid: invalid tile character")
	// ErrNoStart indicates the first row contains no Open tile.
	ErrNoStart = errors.New("grid: no open tile in first row")
)

// Tile is the content of a single grid cell.
type Tile uint8

const (
	// Void is empty space outside the net.
	Void Tile = iota
	// Open is a walkable tile.
	Open
	// Closed is a wall; walking into it stops the move.
	Closed
)

// ParseTile converts a net character into a Tile.
func ParseTile(c byte) (Tile, error) {
	switch c {
	case '.':
		return Open, nil
	case '#':
		return Closed, nil
	case ' ':
		return Void, nil
	default:
		return Void, fmt.Errorf("%w: %q", ErrInvalidTile, c)
	}
}

// Byte returns the net character for t.
func (t Tile) Byte() byte {
	switch t {
	case Open:
		return '.'
	case Closed:
		return '#'
	default:
		return ' '
	}
}

func (t Tile) String() string {
	switch t {
	case Open:
		return "Open"
	case Closed:
		return "Closed"
	default:
		return "Void"
	}
}

// Point is a column/row pair. It addresses tiles, and also blocks of tiles
// when divided by a face size.
type Point struct {
	X, Y int
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Scale returns p*k.
func (p Point) Scale(k int) Point { return Point{p.X * k, p.Y * k} }

// Div returns p/k, rounding toward negative infinity so that negative
// coordinates land in the block before zero.
func (p Point) Div(k int) Point { return Point{floorDiv(p.X, k), floorDiv(p.Y, k)} }

// Mod returns the Euclidean remainder of each coordinate by k.
func (p Point) Mod(k int) Point { return Point{euclidMod(p.X, k), euclidMod(p.Y, k)} }

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func euclidMod(a, b int) int {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

// Direction is one of the four unit vectors. The numeric value is the
// facing score: Right=0, Down=1, Left=2, Up=3.
type Direction uint8

const (
	Right Direction = iota
	Down
	Left
	Up
)

// Directions lists all four directions in facing-score order.
var Directions = [4]Direction{Right, Down, Left, Up}

var deltas = [4]Point{
	Right: {1, 0},
	Down:  {0, 1},
	Left:  {-1, 0},
	Up:    {0, -1},
}

// Delta returns the unit vector for d.
func (d Direction) Delta() Point { return deltas[d&3] }

// Turn rotates d by 90° in the given sense.
func (d Direction) Turn(t Turn) Direction {
	if t == TurnRight {
		return (d + 1) & 3
	}
	return (d + 3) & 3
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction { return (d + 2) & 3 }

// Facing returns the score contribution of d.
func (d Direction) Facing() int { return int(d & 3) }

func (d Direction) String() string {
	switch d & 3 {
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "up"
	}
}

// Turn is a 90° rotation, left (counter-clockwise) or right (clockwise).
type Turn uint8

const (
	TurnLeft Turn = iota
	TurnRight
)

// ParseTurn converts 'L' or 'R' into a Turn.
func ParseTurn(c byte) (Turn, bool) {
	switch c {
	case 'L':
		return TurnLeft, true
	case 'R':
		return TurnRight, true
	default:
		return TurnLeft, false
	}
}

// Byte returns 'L' or 'R'.
func (t Turn) Byte() byte {
	if t == TurnRight {
		return 'R'
	}
	return 'L'
}

func (t Turn) String() string { return string(t.Byte()) }

// Position is a tile coordinate on the net together with a facing.
type Position struct {
	At  Point
	Dir Direction
}

// Step moves p by n tiles along its facing, without any wrapping.
func (p Position) Step(n int) Position {
	p.At = p.At.Add(p.Dir.Delta().Scale(n))
	return p
}

// Turn returns p with its direction rotated.
func (p Position) Turn(t Turn) Position {
	p.Dir = p.Dir.Turn(t)
	return p
}

// Score is 1000*(row+1) + 4*(col+1) + facing.
func (p Position) Score() int {
	return 1000*(p.At.Y+1) + 4*(p.At.X+1) + p.Dir.Facing()
}

func (p Position) String() string {
	return fmt.Sprintf("%v facing %v", p.At, p.Dir)
}
