package walk

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
)

// walker carries the map and hooks through one walk.
type walker[P any] struct {
	m    Map[P]
	opts Options[P]
}

// Follow applies a single instruction to pos and returns the new position.
func Follow[P any](m Map[P], pos P, in instruction.Instruction) P {
	w := walker[P]{m: m}
	// No hooks are installed, so follow cannot fail.
	next, _ := w.follow(-1, pos, in)
	return next
}

// Run walks the whole path from m.Start() and returns the final position.
// The returned error, if any, comes from a hook or a cancelled context; the
// position is then the one reached when the walk stopped.
func Run[P any](m Map[P], path []instruction.Instruction, opts ...Option[P]) (P, error) {
	w := walker[P]{m: m}
	for _, opt := range opts {
		opt(&w.opts)
	}

	pos := m.Start()
	for i, in := range path {
		if w.opts.Ctx != nil {
			select {
			case <-w.opts.Ctx.Done():
				return pos, fmt.Errorf("instruction %d: %w", i, w.opts.Ctx.Err())
			default:
			}
		}
		next, err := w.follow(i, pos, in)
		if err != nil {
			return next, fmt.Errorf("instruction %d (%v): %w", i, in, err)
		}
		pos = next
		if w.opts.OnInstruction != nil {
			if err := w.opts.OnInstruction(i, in, pos); err != nil {
				return pos, fmt.Errorf("instruction %d (%v): %w", i, in, err)
			}
		}
	}

	return pos, nil
}

// Score walks the path and scores the final position.
func Score[P any](m Map[P], path []instruction.Instruction, opts ...Option[P]) (int, error) {
	pos, err := Run(m, path, opts...)
	if err != nil {
		return 0, err
	}
	return m.ScorePosition(pos), nil
}

// follow applies one instruction at path index idx.
func (w *walker[P]) follow(idx int, pos P, in instruction.Instruction) (P, error) {
	if in.Kind == instruction.KindTurn {
		return w.m.Turn(pos, in.Turn), nil
	}

	for step := 0; step < in.Steps; step++ {
		next := w.m.Next(pos)
		if w.m.TileAt(next) == grid.Closed {
			if w.opts.OnBlocked != nil {
				if err := w.opts.OnBlocked(idx, pos); err != nil {
					return pos, err
				}
			}
			break
		}
		pos = next
		if w.opts.OnStep != nil {
			if err := w.opts.OnStep(pos); err != nil {
				return pos, err
			}
		}
	}

	return pos, nil
}
