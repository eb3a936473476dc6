package puzzle

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/cubewrap"
	"github.com/katalvlaran/cubewalk/flatwrap"
	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/walk"
)

// Option configures Solve.
type Option func(*Options)

// Options holds the Solve parameters.
type Options struct {
	// FaceSize overrides the derived face size when positive.
	FaceSize int

	Flat []walk.Option[grid.Position]
	Cube []walk.Option[cubewrap.FacePosition]
}

// WithFaceSize overrides the face size; n <= 0 keeps the derived one.
func WithFaceSize(n int) Option {
	return func(o *Options) {
		o.FaceSize = n
	}
}

// WithFlatOptions adds walk options to the flat walk.
func WithFlatOptions(opts ...walk.Option[grid.Position]) Option {
	return func(o *Options) {
		o.Flat = append(o.Flat, opts...)
	}
}

// WithCubeOptions adds walk options to the cube walk.
func WithCubeOptions(opts ...walk.Option[cubewrap.FacePosition]) Option {
	return func(o *Options) {
		o.Cube = append(o.Cube, opts...)
	}
}

// FaceSize returns the face size derived from the net.
func (p *Puzzle) FaceSize() int { return p.Grid.FaceSize() }

// Fold folds the net with faces of the given size.
func (p *Puzzle) Fold(size int) (*cubenet.Cube, error) {
	return cubenet.Fold(p.Grid, size)
}

// Solve scores the path under both wrap policies. The walks run
// concurrently; the first failure cancels ctx for the other, which stops
// at its next instruction.
func Solve(ctx context.Context, p *Puzzle, opts ...Option) (Answers, error) {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	size := o.FaceSize
	if size <= 0 {
		size = p.FaceSize()
	}

	var ans Answers
	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		m, err := flatwrap.New(p.Grid, size)
		if err != nil {
			return fmt.Errorf("flat: %w", err)
		}
		flat := append([]walk.Option[grid.Position]{walk.WithContext[grid.Position](ctx)}, o.Flat...)
		score, err := m.Score(p.Path, flat...)
		if err != nil {
			return fmt.Errorf("flat: %w", err)
		}
		ans.Flat = score
		return nil
	})

	eg.Go(func() error {
		cube, err := p.Fold(size)
		if err != nil {
			return fmt.Errorf("cube: %w", err)
		}
		m, err := cubewrap.New(p.Grid, cube)
		if err != nil {
			return fmt.Errorf("cube: %w", err)
		}
		cw := append([]walk.Option[cubewrap.FacePosition]{walk.WithContext[cubewrap.FacePosition](ctx)}, o.Cube...)
		score, err := m.Score(p.Path, cw...)
		if err != nil {
			return fmt.Errorf("cube: %w", err)
		}
		ans.Cube = score
		return nil
	})

	if err := eg.Wait(); err != nil {
		return Answers{}, err
	}
	return ans, nil
}
