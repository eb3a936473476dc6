// Package grid models the tile map a cube net is drawn on: a rectangular
// grid of Open, Closed and Void tiles, plus the small geometry vocabulary
// (Point, Direction, Turn, Position) shared by every other package.
//
// What:
//
//   - Grid wraps a rectangular [][]Tile, padded with Void to the widest row.
//   - Parse reads the textual form ('.' open, '#' closed, ' ' void).
//   - FaceSize derives the edge length of one cube face from the grid's
//     bounding box (a cube net is always 3×4 or 2×5 faces).
//   - Position couples a tile Point with a facing Direction and carries the
//     scoring formula 1000*(row+1) + 4*(col+1) + facing.
//
// Directions are ordered Right, Down, Left, Up so that the numeric value of
// a Direction is its facing score and turning right is +1 (mod 4).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrInvalidTile: a character outside ".# " was found while parsing.
//   - ErrNoStart: the first row has no Open tile.
//
// Complexity:
//
//   - Parse, New: O(W×H) time and memory.
//   - At, InBounds, Wrap: O(1).
//   - Start: O(W).
package grid
