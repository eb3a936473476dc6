// Package walk drives an agent across a map by following a path of
// instructions, independent of how the map wraps at its edges.
//
// A wrap policy implements Map[P] for its own position type P by providing
// five primitives: Next, Turn, TileAt, Start and ScorePosition. The engine
// derives everything else:
//
//   - Follow applies one instruction. Move(n) advances up to n times,
//     stopping early (and keeping the previous position) as soon as the
//     candidate tile is Closed; Turn(t) only rotates.
//   - Run folds Follow over a path from Start.
//   - Score scores Run's final position.
//
// Options:
//
//   - WithContext(ctx)      stops the walk between instructions once ctx is done.
//   - WithOnStep(fn)        called after every tile advanced.
//   - WithOnInstruction(fn) called after every instruction.
//   - WithOnBlocked(fn)     called when a Closed tile stops a move.
//
// A hook returning an error aborts the walk with that error; without hooks
// or a context Run and Score never fail.
//
// Walks hold no shared state, so several may run concurrently over the same
// Map as long as the Map itself is read-only.
//
// Complexity: O(total steps) time, O(1) memory.
package walk
