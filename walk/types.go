package walk

import (
	"context"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
)

// Map is a walkable surface with a wrap policy over positions of type P.
type Map[P any] interface {
	// Next returns the position one tile ahead of p, wrapping as needed.
	// It does not look at the destination tile.
	Next(p P) P
	// Turn rotates p in place.
	Turn(p P, t grid.Turn) P
	// TileAt returns the tile under p.
	TileAt(p P) grid.Tile
	// Start returns the initial position.
	Start() P
	// ScorePosition maps p to the puzzle score.
	ScorePosition(p P) int
}

// Option configures a walk.
type Option[P any] func(*Options[P])

// Options holds the walk hooks.
type Options[P any] struct {
	// Ctx, if non-nil, is checked before each instruction; a cancelled walk
	// stops with ctx.Err().
	Ctx context.Context

	// OnStep, if non-nil, is called after each tile advanced.
	OnStep func(p P) error

	// OnInstruction, if non-nil, is called after each instruction with its
	// index in the path and the resulting position.
	OnInstruction func(index int, in instruction.Instruction, p P) error

	// OnBlocked, if non-nil, is called when a Closed tile ends a move early,
	// with the position the agent stays at.
	OnBlocked func(index int, p P) error
}

// WithContext makes the walk stop once ctx is done.
func WithContext[P any](ctx context.Context) Option[P] {
	return func(o *Options[P]) {
		o.Ctx = ctx
	}
}

// WithOnStep installs a per-tile hook.
func WithOnStep[P any](fn func(p P) error) Option[P] {
	return func(o *Options[P]) {
		o.OnStep = fn
	}
}

// WithOnInstruction installs a per-instruction hook.
func WithOnInstruction[P any](fn func(index int, in instruction.Instruction, p P) error) Option[P] {
	return func(o *Options[P]) {
		o.OnInstruction = fn
	}
}

// WithOnBlocked installs a hook for moves stopped by a wall.
func WithOnBlocked[P any](fn func(index int, p P) error) Option[P] {
	return func(o *Options[P]) {
		o.OnBlocked = fn
	}
}
