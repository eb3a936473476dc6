package grid

// Components finds all 4-connected regions of non-Void tiles. Each region
// lists its tiles in BFS order from its top-left-most tile; regions are
// ordered by that first tile in row-major order.
//
// A cube net is one region: faces meet edge to edge.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) Components() [][]Point {
	seen := make([][]bool, g.Height)
	for y := range seen {
		seen[y] = make([]bool, g.Width)
	}
	var comps [][]Point

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.tiles[y][x] == Void || seen[y][x] {
				continue
			}
			// BFS to collect the region
			queue := []Point{{x, y}}
			seen[y][x] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range Directions {
					v := u.Add(d.Delta())
					if g.At(v) == Void || seen[v.Y][v.X] {
						continue
					}
					seen[v.Y][v.X] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}
	return comps
}
