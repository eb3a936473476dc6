// Package cubenet folds a 2-D cube net into the 3-D adjacency graph of a
// cube.
//
// What:
//
//   - LocateFaces partitions a grid.Grid into face-sized blocks, keeps the
//     occupied ones and records which occupied blocks touch on the flat net.
//   - Assemble places those faces into the six canonical Slots of a cube
//     (Front, Back, Left, Right, Top, Bottom) by depth-first propagation,
//     inferring each face's rotation from an already-placed neighbour, and
//     then expresses every face's four cube neighbours in the face's own net
//     orientation (left, top, right, bottom).
//   - Fold checks the net is one connected region and chains both steps.
//
// Faces are referenced by their block coordinate (FaceCoord), never by
// pointer, so the cyclic cube graph is plain data.
//
// Invariants of a Cube produced by Assemble:
//
//   - exactly six faces, one per occupied block of the net;
//   - closure: every neighbour coordinate names one of the six faces;
//   - symmetry: if A lists B on some side, B lists A on some side;
//   - each face is adjacent to four distinct faces, none of them itself,
//     and the one face it is not adjacent to is its opposite.
//
// Errors:
//
//   - ErrBadFaceSize: face size is not positive.
//   - ErrFaceCount: the net does not have exactly six faces.
//   - ErrFaceConflict: one face would occupy two slots.
//   - ErrUnplacedSlot: propagation left a slot empty.
//   - ErrNoRotationReference: a face has no placed neighbour to orient it.
//   - ErrDisconnectedNet: Fold was given tiles in more than one region.
//
// All of these mean the input is not a cube net; none is recoverable.
//
// Complexity: LocateFaces is O(W×H / s²); Assemble is O(1) (six faces).
package cubenet
