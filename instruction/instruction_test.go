package instruction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
)

func TestParse_Sample(t *testing.T) {
	ins, err := instruction.Parse("10R5L5R10L4R5L5")
	require.NoError(t, err)

	want := []instruction.Instruction{
		instruction.Move(10),
		instruction.Turn(grid.TurnRight),
		instruction.Move(5),
		instruction.Turn(grid.TurnLeft),
		instruction.Move(5),
		instruction.Turn(grid.TurnRight),
		instruction.Move(10),
		instruction.Turn(grid.TurnLeft),
		instruction.Move(4),
		instruction.Turn(grid.TurnRight),
		instruction.Move(5),
		instruction.Turn(grid.TurnLeft),
		instruction.Move(5),
	}
	assert.Equal(t, want, ins)
}

func TestParse_Shapes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"Empty", "", ""},
		{"TrailingNewline", "3L4\n", "3L4"},
		{"TrailingCRLF", "3L4\r\n", "3L4"},
		{"LeadingTurn", "R12", "R12"},
		{"ConsecutiveTurns", "1LL2RR", "1LL2RR"},
		{"Zero", "0", "0"},
		{"LeadingZeroIsDecimal", "010", "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ins, err := instruction.Parse(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, instruction.Format(ins))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	for _, in := range []string{"10X5", "5l", "-3", "99999999999999999999999", "1 0R5", "10 R5", "10\nR\n5", " 10", "10\t", "10\n\n"} {
		t.Run(in, func(t *testing.T) {
			_, err := instruction.Parse(in)
			assert.ErrorIs(t, err, instruction.ErrSyntax)
		})
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "42", instruction.Move(42).String())
	assert.Equal(t, "L", instruction.Turn(grid.TurnLeft).String())
	assert.Equal(t, "R", instruction.Turn(grid.TurnRight).String())
}
