// Package cubewalk folds a flat cube net into a cube and walks paths on it.
//
// What is cubewalk?
//
//	A small library plus command for the "monkey map" family of puzzles:
//		• Grid: tile nets parsed from text, face size derived from the shape
//		• Instructions: path strings such as "10R5L5" parsed into moves/turns
//		• Cube nets: locate the six faces and fold them into a closed cube
//		• Walks: one engine, two wrap policies (flat and cube)
//		• Puzzles: solve both policies concurrently and check the answers
//
// Under the hood, everything is organized under these subpackages:
//
//	grid/         tiles, points, directions, positions and the Grid type
//	instruction/  path grammar and the Instruction type
//	cubenet/      face location, slot table and cube assembly
//	walk/         generic walk engine over any wrap policy
//	flatwrap/     toroidal wrapping that skips empty space
//	cubewrap/     wrapping across glued cube edges
//	puzzle/       input splitting, concurrent solve, answer checking
//	config/       YAML run configuration with schema validation
//	trace/        zstd-compressed JSONL walk traces
//	store/        SQLite ledger of known answers
//
// Quick ASCII example, the worked sample net with 4×4 faces:
//
//	        ...#
//	        .#..
//	        #...
//	        ....
//	...#.......#
//	........#...
//	..#....#....
//	..........#.
//	        ...#....
//	        .....#..
//	        .#......
//	        ......#.
//
// Walking "10R5L5R10L4R5L5" scores 6032 with flat wrapping and 5031 on the
// folded cube.
//
//	go run github.com/katalvlaran/cubewalk/cmd/cubewalk input.txt
package cubewalk
