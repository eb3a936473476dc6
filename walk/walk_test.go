package walk_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
	"github.com/katalvlaran/cubewalk/walk"
)

// ring is a one-row toroidal map used to exercise the engine on its own.
type ring struct{ g *grid.Grid }

func newRing(t *testing.T, row string) ring {
	t.Helper()
	g, err := grid.Parse(row)
	require.NoError(t, err)
	return ring{g: g}
}

func (r ring) Next(p grid.Position) grid.Position {
	p = p.Step(1)
	p.At = r.g.Wrap(p.At)
	return p
}
func (r ring) Turn(p grid.Position, t grid.Turn) grid.Position { return p.Turn(t) }
func (r ring) TileAt(p grid.Position) grid.Tile                { return r.g.At(p.At) }
func (r ring) Start() grid.Position                            { return grid.Position{Dir: grid.Right} }
func (r ring) ScorePosition(p grid.Position) int               { return p.Score() }

//--------------------------------------------------------------------------------
// Follow
//--------------------------------------------------------------------------------

func TestFollow_MoveZeroStays(t *testing.T) {
	m := newRing(t, "..#..")
	got := walk.Follow[grid.Position](m, m.Start(), instruction.Move(0))
	assert.Equal(t, m.Start(), got)
}

func TestFollow_BlockedByWall(t *testing.T) {
	m := newRing(t, ".#...")
	got := walk.Follow[grid.Position](m, m.Start(), instruction.Move(3))
	assert.Equal(t, grid.Point{X: 0, Y: 0}, got.At, "wall directly ahead must not be entered")

	m = newRing(t, "..#..")
	got = walk.Follow[grid.Position](m, m.Start(), instruction.Move(10))
	assert.Equal(t, grid.Point{X: 1, Y: 0}, got.At)
	assert.Equal(t, grid.Right, got.Dir)
}

func TestFollow_TurnOnlyRotates(t *testing.T) {
	m := newRing(t, ".....")
	got := walk.Follow[grid.Position](m, m.Start(), instruction.Turn(grid.TurnLeft))
	assert.Equal(t, grid.Position{Dir: grid.Up}, got)
	got = walk.Follow[grid.Position](m, got, instruction.Turn(grid.TurnLeft))
	assert.Equal(t, grid.Position{Dir: grid.Left}, got)
}

//--------------------------------------------------------------------------------
// Run / Score
//--------------------------------------------------------------------------------

func TestRun_WrapsAround(t *testing.T) {
	m := newRing(t, "..#..")
	path := []instruction.Instruction{
		instruction.Turn(grid.TurnRight),
		instruction.Turn(grid.TurnRight),
		instruction.Move(2),
	}
	pos, err := walk.Run[grid.Position](m, path)
	require.NoError(t, err)
	assert.Equal(t, grid.Position{At: grid.Point{X: 3}, Dir: grid.Left}, pos)

	score, err := walk.Score[grid.Position](m, path)
	require.NoError(t, err)
	assert.Equal(t, 1000+4*4+2, score)
}

func TestScore_Deterministic(t *testing.T) {
	m := newRing(t, "...#.....#..")
	path, err := instruction.Parse("7R2L13L1R20")
	require.NoError(t, err)

	first, err := walk.Score[grid.Position](m, path)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := walk.Score[grid.Position](m, path)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRun_EmptyPath(t *testing.T) {
	m := newRing(t, "..")
	pos, err := walk.Run[grid.Position](m, nil)
	require.NoError(t, err)
	assert.Equal(t, m.Start(), pos)
}

//--------------------------------------------------------------------------------
// Hooks
//--------------------------------------------------------------------------------

func TestRun_Hooks(t *testing.T) {
	m := newRing(t, "..#..")
	path := []instruction.Instruction{
		instruction.Move(4),
		instruction.Turn(grid.TurnLeft),
		instruction.Move(0),
	}

	var steps []grid.Point
	var indices []int
	var blocked []int
	_, err := walk.Run[grid.Position](m, path,
		walk.WithOnStep(func(p grid.Position) error {
			steps = append(steps, p.At)
			return nil
		}),
		walk.WithOnInstruction(func(i int, _ instruction.Instruction, _ grid.Position) error {
			indices = append(indices, i)
			return nil
		}),
		walk.WithOnBlocked(func(i int, p grid.Position) error {
			blocked = append(blocked, i)
			assert.Equal(t, grid.Point{X: 1}, p.At)
			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, []grid.Point{{X: 1}}, steps)
	assert.Equal(t, []int{0, 1, 2}, indices)
	assert.Equal(t, []int{0}, blocked)
}

func TestRun_HookErrorAborts(t *testing.T) {
	m := newRing(t, ".....")
	stop := errors.New("stop")
	calls := 0
	pos, err := walk.Run[grid.Position](m, []instruction.Instruction{instruction.Move(4), instruction.Move(4)},
		walk.WithOnStep(func(p grid.Position) error {
			calls++
			if calls == 2 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 2, calls)
	assert.Equal(t, grid.Point{X: 2}, pos.At)

	_, err = walk.Score[grid.Position](m, []instruction.Instruction{instruction.Move(1)},
		walk.WithOnInstruction(func(int, instruction.Instruction, grid.Position) error { return stop }),
	)
	assert.ErrorIs(t, err, stop)
}

func TestRun_ContextCancelled(t *testing.T) {
	m := newRing(t, ".....")
	path := []instruction.Instruction{instruction.Move(2), instruction.Move(2), instruction.Move(2)}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ran := 0
	pos, err := walk.Run[grid.Position](m, path,
		walk.WithContext[grid.Position](ctx),
		walk.WithOnInstruction(func(int, instruction.Instruction, grid.Position) error {
			ran++
			cancel()
			return nil
		}),
	)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, ran)
	assert.Equal(t, grid.Point{X: 2}, pos.At)

	// A live context does not change the walk.
	pos, err = walk.Run[grid.Position](m, path, walk.WithContext[grid.Position](context.Background()))
	require.NoError(t, err)
	assert.Equal(t, grid.Point{X: 1}, pos.At)
}
