package cubenet_test

import (
	"testing"

	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/internal/nettest"
)

// BenchmarkFold measures locating and assembling a 50-tile-face net, the
// size of a real puzzle input.
func BenchmarkFold(b *testing.B) {
	g := nettest.MustGrid(b, nettest.Render(nettest.Cells([]string{".##", ".#.", "##.", "#.."}), 50))
	size := g.FaceSize()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cubenet.Fold(g, size); err != nil {
			b.Fatal(err)
		}
	}
}
