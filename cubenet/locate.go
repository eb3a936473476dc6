package cubenet

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/grid"
)

// LocateFaces scans g in strides of size and returns every occupied block
// keyed by its FaceCoord. A block is occupied when its top-left tile is not
// Void. Each PartialFace records the occupied blocks beside it on the net.
//
// The face count is not checked here; Assemble does that.
// Complexity: O(W×H / size²).
func LocateFaces(g *grid.Grid, size int) (map[FaceCoord]PartialFace, error) {
	if size <= 0 {
		return nil, fmt.Errorf("LocateFaces(size=%d): %w", size, ErrBadFaceSize)
	}

	// 1. Collect occupied blocks.
	faces := make(map[FaceCoord]PartialFace)
	for y := 0; y < g.Height; y += size {
		for x := 0; x < g.Width; x += size {
			corner := grid.Point{X: x, Y: y}
			if g.At(corner) == grid.Void {
				continue
			}
			pos := corner.Div(size)
			faces[pos] = PartialFace{Position: pos}
		}
	}

	// 2. Link net neighbours, left/top/right/bottom.
	for pos, face := range faces {
		for _, s := range Sides {
			n := pos.Add(s.Direction().Delta())
			if _, ok := faces[n]; ok {
				face.Adjacent[s] = Neighbor{Coord: n, Valid: true}
			}
		}
		faces[pos] = face
	}

	return faces, nil
}
