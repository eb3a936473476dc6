package trace

import (
	"github.com/katalvlaran/cubewalk/cubewrap"
	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
	"github.com/katalvlaran/cubewalk/walk"
)

// Policy names used in records.
const (
	PolicyFlat = "flat"
	PolicyCube = "cube"
)

// Flat returns walk options that record a flat walk to w.
func Flat(w *Writer, level Level) []walk.Option[grid.Position] {
	return hooks(w, level, PolicyFlat, func(p grid.Position, r *Record) {
		r.X, r.Y, r.Dir = p.At.X, p.At.Y, p.Dir.String()
	})
}

// Cube returns walk options that record a cube walk on faces of the given
// size to w.
func Cube(w *Writer, level Level, size int) []walk.Option[cubewrap.FacePosition] {
	return hooks(w, level, PolicyCube, func(p cubewrap.FacePosition, r *Record) {
		net := p.Net(size)
		face := p.Face.Position
		r.X, r.Y, r.Dir, r.Face = net.At.X, net.At.Y, net.Dir.String(), &face
	})
}

// hooks builds the options for one walk; fill copies a position into a record.
func hooks[P any](w *Writer, level Level, policy string, fill func(P, *Record)) []walk.Option[P] {
	// next is the index of the instruction being executed; hooks of a single
	// walk run on one goroutine.
	next := 0
	emit := func(kind string, index int, p P, in string) error {
		r := Record{Policy: policy, Kind: kind, Index: index, Instruction: in}
		fill(p, &r)
		return w.Write(r)
	}

	opts := []walk.Option[P]{
		walk.WithOnInstruction(func(i int, in instruction.Instruction, p P) error {
			next = i + 1
			return emit(KindInstruction, i, p, in.String())
		}),
		walk.WithOnBlocked(func(i int, p P) error {
			return emit(KindBlocked, i, p, "")
		}),
	}
	if level == LevelStep {
		opts = append(opts, walk.WithOnStep(func(p P) error {
			return emit(KindStep, next, p, "")
		}))
	}
	return opts
}
