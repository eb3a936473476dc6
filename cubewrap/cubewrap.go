package cubewrap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
	"github.com/katalvlaran/cubewalk/walk"
)

var (
	// ErrOffCube indicates a net position outside every face.
	ErrOffCube = errors.New("cubewrap: position is not on any cube face")
	// ErrAsymmetricAdjacency indicates a face is not listed back by its
	// neighbour. It is raised as a panic.
	ErrAsymmetricAdjacency = errors.New("cubewrap: face adjacency is not symmetric")
)

// FacePosition is a position on one cube face, in face-local coordinates.
type FacePosition struct {
	Face  cubenet.Face
	Local grid.Position
}

// Net converts p to net coordinates for faces of the given size.
func (p FacePosition) Net(size int) grid.Position {
	return grid.Position{
		At:  p.Face.Position.Scale(size).Add(p.Local.At),
		Dir: p.Local.Dir,
	}
}

func (p FacePosition) String() string {
	return fmt.Sprintf("face %v %v", p.Face.Position, p.Local)
}

// FromNet converts a net position to face-local coordinates on cube.
// It reports false when p lies on no face.
func FromNet(p grid.Position, cube *cubenet.Cube) (FacePosition, bool) {
	face, ok := cube.Face(p.At.Div(cube.FaceSize))
	if !ok {
		return FacePosition{}, false
	}
	return FacePosition{
		Face:  face,
		Local: grid.Position{At: p.At.Mod(cube.FaceSize), Dir: p.Dir},
	}, true
}

// Map is a walk.Map over face positions with cube wrapping.
type Map struct {
	g     *grid.Grid
	cube  *cubenet.Cube
	start FacePosition
}

var _ walk.Map[FacePosition] = (*Map)(nil)

// New returns a cube-wrap map over g folded as cube.
func New(g *grid.Grid, cube *cubenet.Cube) (*Map, error) {
	netStart, err := g.Start()
	if err != nil {
		return nil, err
	}
	start, ok := FromNet(netStart, cube)
	if !ok {
		return nil, fmt.Errorf("%w: start %v", ErrOffCube, netStart.At)
	}
	return &Map{g: g, cube: cube, start: start}, nil
}

// Cube returns the folded cube.
func (m *Map) Cube() *cubenet.Cube { return m.cube }

// Next steps one tile, crossing onto the glued face when p leaves its face.
// Complexity: O(1).
func (m *Map) Next(p FacePosition) FacePosition {
	local := p.Local.Step(1)
	size := m.cube.FaceSize
	if local.At.X >= 0 && local.At.X < size && local.At.Y >= 0 && local.At.Y < size {
		p.Local = local
		return p
	}
	return m.cross(p)
}

// cross moves p over the edge it faces onto the neighbouring face.
func (m *Map) cross(p FacePosition) FacePosition {
	last := m.cube.FaceSize - 1
	x, y := p.Local.At.X, p.Local.At.Y

	// 1. Distance along the exit edge.
	exit := exitSide(p.Local.Dir)
	var d int
	switch exit {
	case cubenet.SideLeft:
		d = last - y
	case cubenet.SideTop:
		d = x
	case cubenet.SideRight:
		d = y
	default:
		d = last - x
	}

	// 2. Find the side of the target face glued to this one.
	target, ok := m.cube.Face(p.Face.Neighbor(exit))
	if !ok {
		panic(fmt.Errorf("%w: %v has unknown neighbour %v", ErrAsymmetricAdjacency,
			p.Face.Position, p.Face.Neighbor(exit)))
	}
	entry, ok := target.SideOf(p.Face.Position)
	if !ok {
		panic(fmt.Errorf("%w: %v lists %v on its %v side but not the reverse", ErrAsymmetricAdjacency,
			p.Face.Position, target.Position, exit))
	}

	// 3. Enter at the mirrored distance, facing inward.
	var at grid.Point
	switch entry {
	case cubenet.SideLeft:
		at = grid.Point{X: 0, Y: d}
	case cubenet.SideTop:
		at = grid.Point{X: last - d, Y: 0}
	case cubenet.SideRight:
		at = grid.Point{X: last, Y: last - d}
	default:
		at = grid.Point{X: d, Y: last}
	}

	return FacePosition{
		Face:  target,
		Local: grid.Position{At: at, Dir: entry.Inward()},
	}
}

// exitSide is the face side crossed when walking in direction d.
func exitSide(d grid.Direction) cubenet.Side {
	for _, s := range cubenet.Sides {
		if s.Direction() == d {
			return s
		}
	}
	return cubenet.SideBottom
}

// Turn rotates p in place.
func (m *Map) Turn(p FacePosition, t grid.Turn) FacePosition {
	p.Local = p.Local.Turn(t)
	return p
}

// TileAt returns the net tile under p.
func (m *Map) TileAt(p FacePosition) grid.Tile { return m.g.At(p.Net(m.cube.FaceSize).At) }

// Start returns the leftmost Open tile of row 0, facing right, on its face.
func (m *Map) Start() FacePosition { return m.start }

// ScorePosition scores p in net coordinates.
func (m *Map) ScorePosition(p FacePosition) int { return p.Net(m.cube.FaceSize).Score() }

// Score walks path on m and returns the final score.
func (m *Map) Score(path []instruction.Instruction, opts ...walk.Option[FacePosition]) (int, error) {
	return walk.Score[FacePosition](m, path, opts...)
}
