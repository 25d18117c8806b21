package grid

import (
	"github.com/MrRobotMan/puzlib/dsu"
	"github.com/MrRobotMan/puzlib/vec"
)

// ConnectedComponents finds all contiguous regions of cells for which keep
// returns true, according to the grid's connectivity. Each component lists
// its cell coordinates in row-major order; components appear ordered by
// their first (row-major smallest) cell.
//
// Adjacent kept cells are merged with a disjoint-set union rather than a
// per-region flood fill, so the pass over the grid is single and forward-only.
//
// Time: O(W·H·d·α(W·H)), d = 4 or 8. Memory: O(W·H).
func (g *Grid) ConnectedComponents(keep func(cell int) bool) [][]vec.V2[int] {
	total := g.width * g.height
	sets := dsu.New(total)

	// 1. Union every kept cell with its kept neighbors. Offsets with
	//    negative row (or same row, negative column) point at cells already
	//    seen, but unioning both directions is harmless, so all offsets are
	//    applied.
	var p vec.V2[int]
	for x := 0; x < g.height; x++ {
		for y := 0; y < g.width; y++ {
			p = vec.V2[int]{X: x, Y: y}
			if !keep(g.At(p)) {
				continue
			}
			for _, d := range g.offsets {
				n := p.Add(d)
				if g.InBounds(n) && keep(g.At(n)) {
					sets.Union(g.index(p), g.index(n))
				}
			}
		}
	}

	// 2. Group kept cells by representative, preserving row-major order.
	byRoot := make(map[int]int) // root → index into comps
	var comps [][]vec.V2[int]
	for idx := 0; idx < total; idx++ {
		p = g.Coordinate(idx)
		if !keep(g.At(p)) {
			continue
		}
		root := sets.Find(idx)
		ci, ok := byRoot[root]
		if !ok {
			ci = len(comps)
			byRoot[root] = ci
			comps = append(comps, nil)
		}
		comps[ci] = append(comps[ci], p)
	}

	return comps
}
