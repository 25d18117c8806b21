package grid

import (
	"github.com/MrRobotMan/puzlib/search"
	"github.com/MrRobotMan/puzlib/vec"
)

// New constructs a Grid from a non-empty, rectangular 2D slice.
// The input is deep-copied to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int, opts ...Option) (*Grid, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]int, h)
	for x, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		cells[x] = make([]int, w)
		copy(cells[x], row)
	}

	g := &Grid{
		width:  w,
		height: h,
		cells:  cells,
		conn:   o.Conn,
	}
	// Precompute neighbor offsets once; every traversal reuses them.
	cardinals := vec.Cardinals[int]()
	g.offsets = append(g.offsets, cardinals[:]...)
	if o.Conn == Conn8 {
		ordinals := vec.Ordinals[int]()
		g.offsets = append(g.offsets, ordinals[:]...)
	}

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Connectivity returns the neighbor connectivity the grid was built with.
func (g *Grid) Connectivity() Connectivity { return g.conn }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p vec.V2[int]) bool {
	return p.X >= 0 && p.X < g.height && p.Y >= 0 && p.Y < g.width
}

// At returns the cell value at p. p must be in bounds.
func (g *Grid) At(p vec.V2[int]) int { return g.cells[p.X][p.Y] }

// Neighbors returns the in-bounds neighbors of p under the grid's
// connectivity. Complexity: O(1) (at most 8 candidates).
func (g *Grid) Neighbors(p vec.V2[int]) []vec.V2[int] {
	out := make([]vec.V2[int], 0, len(g.offsets))
	for _, d := range g.offsets {
		if n := p.Add(d); g.InBounds(n) {
			out = append(out, n)
		}
	}

	return out
}

// NeighborFunc adapts the grid for the unweighted searches:
//
//	res, err := search.BFS(start, g.NeighborFunc(), isGoal)
func (g *Grid) NeighborFunc() search.NeighborFunc[vec.V2[int]] {
	return g.Neighbors
}

// CostFunc adapts the grid for the weighted searches. The cost of moving
// into a neighbor cell is enter(value) for that cell's value; enter may
// ignore the value entirely (constant-cost grids) or derive terrain costs
// from it.
//
//	res, err := search.Dijkstra(start, g.CostFunc(func(v int) int64 { return int64(v) }), isGoal)
func (g *Grid) CostFunc(enter func(cell int) int64) search.WeightedNeighborFunc[vec.V2[int]] {
	return func(p vec.V2[int]) []search.Edge[vec.V2[int]] {
		out := make([]search.Edge[vec.V2[int]], 0, len(g.offsets))
		for _, d := range g.offsets {
			n := p.Add(d)
			if !g.InBounds(n) {
				continue
			}
			out = append(out, search.Edge[vec.V2[int]]{To: n, Cost: enter(g.At(n))})
		}

		return out
	}
}

// index maps p to a row-major element ID: X*width + Y.
func (g *Grid) index(p vec.V2[int]) int { return p.X*g.width + p.Y }

// Coordinate converts a row-major element ID back to a cell coordinate.
func (g *Grid) Coordinate(idx int) vec.V2[int] {
	return vec.V2[int]{X: idx / g.width, Y: idx % g.width}
}
