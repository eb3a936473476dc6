// Package cubewrap implements the cube wrap policy: the net is folded into a
// cube and walking off a face edge continues on the face glued to it.
//
// Positions are face-local (FacePosition): a face plus a tile coordinate and
// facing inside that face, in the face's own net orientation. Leaving a face
// maps the exit point to a distance along the edge, measured clockwise around
// the exiting face:
//
//	left edge   max-y
//	top edge    x
//	right edge  y
//	bottom edge max-x
//
// and enters the neighbour through whichever of its sides lists the exiting
// face, at the same distance measured the other way round, facing inward:
//
//	via left    (0, d)          facing right
//	via top     (max-d, 0)      facing down
//	via right   (max, max-d)    facing left
//	via bottom  (d, max)        facing up
//
// with max = size-1. Glued edges run in opposite senses around their faces,
// which is why the entry measures the distance anticlockwise.
//
// Errors:
//
//   - ErrOffCube              if the start tile is not on any face.
//   - ErrAsymmetricAdjacency  panics only; a Cube from cubenet.Assemble is
//     always symmetric.
package cubewrap
