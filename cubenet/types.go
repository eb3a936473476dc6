package cubenet

import (
	"errors"

	"github.com/katalvlaran/cubewalk/grid"
)

// Sentinel errors for net folding.
var (
	// ErrBadFaceSize indicates a non-positive face size.
	ErrBadFaceSize = errors.New("cubenet: face size must be positive")
	// ErrFaceCount indicates the net does not have exactly six faces.
	ErrFaceCount = errors.New("cubenet: a cube net must have exactly 6 faces")
	// ErrFaceConflict indicates one face was reached for two different slots.
	ErrFaceConflict = errors.New("cubenet: face placed in two slots")
	// ErrUnplacedSlot indicates a slot stayed empty after propagation.
	ErrUnplacedSlot = errors.New("cubenet: slot left unplaced")
	// ErrNoRotationReference indicates no placed neighbour could orient a face.
	ErrNoRotationReference = errors.New("cubenet: no placed neighbour to infer rotation")
	// ErrDisconnectedNet indicates the net's tiles form more than one region.
	ErrDisconnectedNet = errors.New("cubenet: net is not connected")
)

// FaceCoord is the block coordinate of a face on the net: tile coordinate
// divided by the face size.
type FaceCoord = grid.Point

// Side indexes the four edges of a face in net order.
type Side uint8

const (
	SideLeft Side = iota
	SideTop
	SideRight
	SideBottom
)

// Sides lists the four sides in net order.
var Sides = [4]Side{SideLeft, SideTop, SideRight, SideBottom}

var sideDirections = [4]grid.Direction{
	SideLeft:   grid.Left,
	SideTop:    grid.Up,
	SideRight:  grid.Right,
	SideBottom: grid.Down,
}

// Direction returns the outward direction of side s.
func (s Side) Direction() grid.Direction { return sideDirections[s&3] }

// Inward returns the facing of an agent that has just crossed side s onto
// the face.
func (s Side) Inward() grid.Direction { return sideDirections[s&3].Reverse() }

func (s Side) String() string {
	switch s & 3 {
	case SideLeft:
		return "left"
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	default:
		return "bottom"
	}
}

// mod4 is the Euclidean remainder by 4; rotation offsets are often negative.
func mod4(n int) int {
	return ((n % 4) + 4) % 4
}

// Neighbor is an optional FaceCoord.
type Neighbor struct {
	Coord FaceCoord
	Valid bool
}

// PartialFace is a face during assembly: its coordinate and the faces that
// touch it on the flat net, by side. Sides facing empty space are invalid.
type PartialFace struct {
	Position FaceCoord
	Adjacent [4]Neighbor
}

// SideOf returns the side on which c touches p on the net.
func (p PartialFace) SideOf(c FaceCoord) (Side, bool) {
	for i, n := range p.Adjacent {
		if n.Valid && n.Coord == c {
			return Side(i), true
		}
	}
	return 0, false
}

// Face is an assembled cube face: its net coordinate and its four cube
// neighbours, by side, in the face's own net orientation.
type Face struct {
	Position FaceCoord
	Adjacent [4]FaceCoord
}

// Left returns the face across the left edge.
func (f Face) Left() FaceCoord { return f.Adjacent[SideLeft] }

// Top returns the face across the top edge.
func (f Face) Top() FaceCoord { return f.Adjacent[SideTop] }

// Right returns the face across the right edge.
func (f Face) Right() FaceCoord { return f.Adjacent[SideRight] }

// Bottom returns the face across the bottom edge.
func (f Face) Bottom() FaceCoord { return f.Adjacent[SideBottom] }

// Neighbor returns the face across side s.
func (f Face) Neighbor(s Side) FaceCoord { return f.Adjacent[s&3] }

// SideOf returns the side of f that borders c.
func (f Face) SideOf(c FaceCoord) (Side, bool) {
	for i, n := range f.Adjacent {
		if n == c {
			return Side(i), true
		}
	}
	return 0, false
}

// Cube is the folded net: six faces stored in Slot order plus the face edge
// length in tiles. It is never mutated after Assemble returns.
type Cube struct {
	FaceSize int
	Faces    [6]Face
}

// Face returns the face at net block pos.
func (c *Cube) Face(pos FaceCoord) (Face, bool) {
	for _, f := range c.Faces {
		if f.Position == pos {
			return f, true
		}
	}
	return Face{}, false
}

// SlotOf returns the canonical slot the face at pos was placed in.
func (c *Cube) SlotOf(pos FaceCoord) (Slot, bool) {
	for i, f := range c.Faces {
		if f.Position == pos {
			return Slot(i), true
		}
	}
	return 0, false
}

// Opposite returns the face across the cube from pos.
func (c *Cube) Opposite(pos FaceCoord) (Face, bool) {
	s, ok := c.SlotOf(pos)
	if !ok {
		return Face{}, false
	}
	return c.Faces[s.Opposite()], true
}
