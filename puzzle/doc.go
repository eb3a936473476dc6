// Package puzzle reads a complete puzzle input (a cube net, a blank line,
// then a path) and solves it under both wrap policies.
//
// What:
//
//   - Parse / Load split the input and parse both halves.
//   - Solve runs the flat and the cube walk concurrently and returns both
//     scores.
//   - Answers.Check compares scores against known answers.
//
// Options (Solve):
//
//   - WithFaceSize(n)        override the face size derived from the net.
//   - WithFlatOptions(...)   walk hooks for the flat walk.
//   - WithCubeOptions(...)   walk hooks for the cube walk.
//
// The two walks run on separate goroutines; a hook is only ever called from
// the goroutine of its own walk.
//
// Errors:
//
//   - ErrMissingPath   if no blank line separates net and path, or the path
//     is empty.
//   - ErrWrongAnswer   from Check, once per mismatching policy.
//   - grid, instruction and cubenet errors, wrapped with context.
package puzzle
