package instruction

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/cubewalk/grid"
)

// ErrSyntax indicates the path text is not digits interleaved with L/R.
var ErrSyntax = errors.New("instruction: invalid path syntax")

// Kind distinguishes the two instruction forms.
type Kind uint8

const (
	// KindMove walks forward Steps tiles.
	KindMove Kind = iota
	// KindTurn rotates the facing by Turn.
	KindTurn
)

// Instruction is a single Move(n) or Turn(t). It is a small value type and
// is never mutated after parsing.
type Instruction struct {
	Kind  Kind
	Steps int       // valid when Kind == KindMove
	Turn  grid.Turn // valid when Kind == KindTurn
}

// Move returns a Move(n) instruction.
func Move(n int) Instruction {
	return Instruction{Kind: KindMove, Steps: n}
}

// Turn returns a Turn(t) instruction.
func Turn(t grid.Turn) Instruction {
	return Instruction{Kind: KindTurn, Turn: t}
}

// String renders the instruction in path notation: "10", "L" or "R".
func (in Instruction) String() string {
	if in.Kind == KindTurn {
		return in.Turn.String()
	}
	return strconv.Itoa(in.Steps)
}

// Format renders a sequence back into path notation.
func Format(ins []Instruction) string {
	buf := make([]byte, 0, len(ins)*2)
	for _, in := range ins {
		if in.Kind == KindTurn {
			buf = append(buf, in.Turn.Byte())
			continue
		}
		buf = strconv.AppendInt(buf, int64(in.Steps), 10)
	}
	return string(buf)
}
