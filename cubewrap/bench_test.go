package cubewrap_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/cubewalk/flatwrap"
	"github.com/katalvlaran/cubewalk/instruction"
	"github.com/katalvlaran/cubewalk/internal/nettest"
)

// benchPath is a long path in the shape of a real puzzle input.
var benchPath = strings.Repeat("37R12L50L3R", 500) + "7"

func BenchmarkScore_Cube(b *testing.B) {
	_, m := fold(b, nettest.Render(nettest.Cells([]string{".##", ".#.", "##.", "#.."}), 50))
	path, err := instruction.Parse(benchPath)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Score(path); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScore_Flat(b *testing.B) {
	g := nettest.MustGrid(b, nettest.Render(nettest.Cells([]string{".##", ".#.", "##.", "#.."}), 50))
	m, err := flatwrap.New(g, g.FaceSize())
	if err != nil {
		b.Fatal(err)
	}
	path, err := instruction.Parse(benchPath)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Score(path); err != nil {
			b.Fatal(err)
		}
	}
}
