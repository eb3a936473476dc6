package cubenet

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/cubewalk/grid"
)

// assembler holds the partial slot assignment during placement.
type assembler struct {
	faces    map[FaceCoord]PartialFace // every located face
	slots    [6]PartialFace            // face assigned to each slot
	filled   [6]bool                   // slot has a face
	rotation [6]int                    // canonical index - net index, mod 4
	placed   map[FaceCoord]Slot        // reverse index, face → slot
}

// Assemble folds located faces into a Cube.
//
// The first face in row-major block order is placed in SlotFront with
// rotation 0. Placing a face in a slot then:
//
//  1. infers the slot's rotation from the first canonical neighbour
//     (left, top, right, bottom) that is already placed and also touches
//     the face on the net: rotation = canonicalIndex - netIndex (mod 4);
//  2. for every canonical neighbour not yet placed, takes the face's net
//     neighbour at canonicalIndex - rotation (mod 4), if any, and places it
//     there recursively.
//
// Recursion depth is bounded by 6. Finally each slot's canonical adjacency
// is rotated back into the face's own net order.
//
// Returns ErrFaceCount, ErrFaceConflict, ErrUnplacedSlot or
// ErrNoRotationReference when faces is not a cube net.
func Assemble(faces map[FaceCoord]PartialFace, size int) (*Cube, error) {
	if size <= 0 {
		return nil, fmt.Errorf("Assemble(size=%d): %w", size, ErrBadFaceSize)
	}
	if len(faces) != 6 {
		return nil, fmt.Errorf("Assemble: found %d faces: %w", len(faces), ErrFaceCount)
	}

	a := &assembler{
		faces:  faces,
		placed: make(map[FaceCoord]Slot, 6),
	}
	if err := a.place(faces[firstFace(faces)], SlotFront, true); err != nil {
		return nil, err
	}
	for _, s := range Slots {
		if !a.filled[s] {
			return nil, fmt.Errorf("Assemble: %v: %w", s, ErrUnplacedSlot)
		}
	}

	return &Cube{FaceSize: size, Faces: a.fill()}, nil
}

// Fold derives faces from g and assembles them; size is normally
// g.FaceSize(). A net whose tiles do not form a single region is rejected
// before any face is located.
func Fold(g *grid.Grid, size int) (*Cube, error) {
	if n := len(g.Components()); n != 1 {
		return nil, fmt.Errorf("Fold: %d regions: %w", n, ErrDisconnectedNet)
	}
	faces, err := LocateFaces(g, size)
	if err != nil {
		return nil, err
	}
	return Assemble(faces, size)
}

// firstFace returns the top-most, then left-most, face coordinate so the
// placement order does not depend on map iteration.
func firstFace(faces map[FaceCoord]PartialFace) FaceCoord {
	coords := make([]FaceCoord, 0, len(faces))
	for c := range faces {
		coords = append(coords, c)
	}
	sort.Slice(coords, func(i, j int) bool {
		if coords[i].Y != coords[j].Y {
			return coords[i].Y < coords[j].Y
		}
		return coords[i].X < coords[j].X
	})
	return coords[0]
}

// place assigns face to slot and recurses into the unplaced neighbours.
// root marks the very first face, whose rotation is 0 by definition.
func (a *assembler) place(face PartialFace, slot Slot, root bool) error {
	if prev, dup := a.placed[face.Position]; dup {
		return fmt.Errorf("place %v: already in %v, wanted %v: %w", face.Position, prev, slot, ErrFaceConflict)
	}
	a.slots[slot] = face
	a.filled[slot] = true
	a.placed[face.Position] = slot

	// 1. Orient the face against any already-placed canonical neighbour.
	rotation := 0
	if !root {
		r, ok := a.inferRotation(face, slot)
		if !ok {
			return fmt.Errorf("place %v in %v: %w", face.Position, slot, ErrNoRotationReference)
		}
		rotation = r
	}
	a.rotation[slot] = rotation

	// 2. Propagate to canonical neighbours that are still empty.
	for idx, adj := range slot.Adjacent() {
		if a.filled[adj] {
			continue
		}
		n := face.Adjacent[mod4(idx-rotation)]
		if !n.Valid {
			continue
		}
		if err := a.place(a.faces[n.Coord], adj, false); err != nil {
			return err
		}
	}

	return nil
}

// inferRotation returns canonicalIndex - netIndex for the first placed
// canonical neighbour of slot that also borders face on the net.
// Valid nets never disagree between candidates, so the first one wins.
func (a *assembler) inferRotation(face PartialFace, slot Slot) (int, bool) {
	for idx, adj := range slot.Adjacent() {
		if !a.filled[adj] {
			continue
		}
		if side, ok := face.SideOf(a.slots[adj].Position); ok {
			return mod4(idx - int(side)), true
		}
	}
	return 0, false
}

// fill builds the final faces. A face's net side i borders the canonical
// neighbour at index i+rotation.
func (a *assembler) fill() [6]Face {
	var out [6]Face
	for _, s := range Slots {
		canon := s.Adjacent()
		rot := a.rotation[s]
		f := Face{Position: a.slots[s].Position}
		for i := range f.Adjacent {
			f.Adjacent[i] = a.slots[canon[mod4(i+rot)]].Position
		}
		out[s] = f
	}
	return out
}
