package search_test

import (
	"fmt"

	"github.com/MrRobotMan/puzlib/search"
)

// ExampleBFS demonstrates the fewest-hop route between two routers in a
// small network map.
//
//	R1──R2──R3
//	│   │   │
//	R4──R5──R6
func ExampleBFS() {
	links := map[string][]string{
		"R1": {"R2", "R4"},
		"R2": {"R1", "R3", "R5"},
		"R3": {"R2", "R6"},
		"R4": {"R1", "R5"},
		"R5": {"R2", "R4", "R6"},
		"R6": {"R3", "R5"},
	}

	res, err := search.BFS("R1",
		func(s string) []string { return links[s] },
		func(s string) bool { return s == "R6" },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("hops: %d\n", res.Cost)
	fmt.Println(res.Path)
	// Output:
	// hops: 3
	// [R1 R2 R3 R6]
}

// ExampleDijkstra finds the cheapest route when edges carry tolls; the
// direct road is more expensive than the detour.
func ExampleDijkstra() {
	tolls := map[string][]search.Edge[string]{
		"A": {{To: "B", Cost: 1}, {To: "C", Cost: 5}},
		"B": {{To: "C", Cost: 2}},
		"C": {},
	}

	res, err := search.Dijkstra("A",
		func(s string) []search.Edge[string] { return tolls[s] },
		func(s string) bool { return s == "C" },
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost: %d path: %v\n", res.Cost, res.Path)
	// Output:
	// cost: 3 path: [A B C]
}

// ExampleAStar walks a 4x4 unit grid with the Manhattan-distance heuristic,
// which is admissible for 4-adjacent movement.
func ExampleAStar() {
	type cell struct{ X, Y int }
	goal := cell{3, 3}

	neighbors := func(c cell) []search.Edge[cell] {
		var out []search.Edge[cell]
		for _, d := range []cell{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
			n := cell{c.X + d.X, c.Y + d.Y}
			if n.X >= 0 && n.X < 4 && n.Y >= 0 && n.Y < 4 {
				out = append(out, search.Edge[cell]{To: n, Cost: 1})
			}
		}
		return out
	}
	manhattan := func(c cell) int64 {
		dx, dy := goal.X-c.X, goal.Y-c.Y
		if dx < 0 {
			dx = -dx
		}
		if dy < 0 {
			dy = -dy
		}
		return int64(dx + dy)
	}

	res, err := search.AStar(cell{0, 0}, neighbors,
		func(c cell) bool { return c == goal }, manhattan)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost: %d steps: %d\n", res.Cost, len(res.Path)-1)
	// Output:
	// cost: 6 steps: 6
}
