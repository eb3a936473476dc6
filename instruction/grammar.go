package instruction

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/katalvlaran/cubewalk/grid"
)

// path is the participle AST for a whole path line.
type path struct {
	Tokens []*token `parser:"@@*"`
}

// token is one run of digits or one turn letter. Digits are captured as
// text and converted by hand so leading zeros stay decimal.
type token struct {
	Steps *string `parser:"  @Steps"`
	Turn  *string `parser:"| @Turn"`
}

var pathLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Steps", Pattern: `[0-9]+`},
	{Name: "Turn", Pattern: `[LR]`},
})

var parser = participle.MustBuild[path](
	participle.Lexer(pathLexer),
)

// Parse converts path text into instructions. A single trailing newline is
// dropped. Returns an error wrapping ErrSyntax on any other character
// outside [0-9LR], or on a step count that overflows int.
func Parse(raw string) ([]Instruction, error) {
	raw = strings.TrimSuffix(strings.TrimSuffix(raw, "\n"), "\r")
	ast, err := parser.ParseString("path", raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	out := make([]Instruction, 0, len(ast.Tokens))
	for _, tok := range ast.Tokens {
		switch {
		case tok.Steps != nil:
			n, err := strconv.Atoi(*tok.Steps)
			if err != nil {
				return nil, fmt.Errorf("%w: step count %q: %v", ErrSyntax, *tok.Steps, err)
			}
			out = append(out, Move(n))
		case tok.Turn != nil:
			t, ok := grid.ParseTurn((*tok.Turn)[0])
			if !ok {
				return nil, fmt.Errorf("%w: turn %q", ErrSyntax, *tok.Turn)
			}
			out = append(out, Turn(t))
		}
	}

	return out, nil
}
