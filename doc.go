// Package puzlib is a grab-bag of helpers for recreational coding puzzles —
// input readers, number theory, combinatorics, grid utilities and generic
// graph search.
//
// 🧩 What is puzlib?
//
//	A small, dependency-light toolkit of independent leaf utilities:
//		• search/  — generic DFS, BFS, Dijkstra and A* over any comparable state
//		• grid/    — rectangular int grids as search spaces (4/8-connectivity)
//		• vec/     — 2D/3D integer vectors, Manhattan distance, direction sets
//		• reader/  — text-or-file puzzle input to lines, numbers, grids, records
//		• combin/  — distinct permutations, k-combinations, binomial counts
//		• mathx/   — GCD, LCM, slice midpoints
//		• dsu/     — disjoint-set union (path compression, union by rank/size)
//
// ✨ Design
//
//   - Each package stands alone – no unifying architecture, no shared state
//   - Stateless functions – every call owns its frontier, visited set, result
//   - Explicit errors – sentinel errors per package, wrapped with context
//   - Generics – search is polymorphic over any comparable state type
//
// Quick taste:
//
//	g, _ := grid.New([][]int{{1, 1, 1}, {1, 9, 1}, {1, 1, 1}})
//	start, goal := vec.V2[int]{}, vec.V2[int]{X: 2, Y: 2}
//	res, _ := search.BFS(start, g.NeighborFunc(), func(p vec.V2[int]) bool { return p == goal })
//	fmt.Println(res.Path) // one of the 4-edge corner-to-corner routes
//
// Dive into each package's doc.go for contracts, complexity and edge cases.
package puzlib
