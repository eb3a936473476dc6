package cubewrap_test

import (
	"fmt"

	"github.com/katalvlaran/cubewalk/cubenet"
	"github.com/katalvlaran/cubewalk/cubewrap"
	"github.com/katalvlaran/cubewalk/grid"
	"github.com/katalvlaran/cubewalk/instruction"
	"github.com/katalvlaran/cubewalk/internal/nettest"
)

// ExampleMap_Score walks the sample path on the folded sample cube.
func ExampleMap_Score() {
	g, _ := grid.Parse(nettest.Sample)
	cube, err := cubenet.Fold(g, g.FaceSize())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	m, _ := cubewrap.New(g, cube)
	path, _ := instruction.Parse(nettest.SamplePath)

	score, _ := m.Score(path)
	fmt.Println(score)
	// Output: 5031
}
