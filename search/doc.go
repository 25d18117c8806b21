// Package search provides four generic pathfinding algorithms — DFS, BFS,
// Dijkstra and A* — over an abstract state space defined entirely by
// caller-supplied functions.
//
// There is no graph type here: a state space is any `S comparable` together
// with a neighbor-expansion function. The algorithms never see the whole
// graph; they expand it lazily from the start state, so implicit and very
// large spaces work as long as the goal test (or the expansion function
// itself) bounds exploration.
//
// Operations:
//
//   - DFS(start, neighbors, isGoal)        — explicit-stack depth-first search.
//     Returns some path if one exists; no ordering guarantee on which.
//   - BFS(start, neighbors, isGoal)        — FIFO breadth-first search.
//     The returned path has the minimum number of edges.
//   - Dijkstra(start, neighbors, isGoal)   — min-cost path, non-negative costs.
//   - AStar(start, neighbors, isGoal, h)   — Dijkstra guided by a heuristic.
//
// Preconditions (caller obligations, not detected beyond what is noted):
//
//   - States that compare equal must be behaviorally identical; an expansion
//     function that violates this yields undefined results.
//   - Dijkstra and AStar require non-negative edge costs. A negative cost
//     encountered during relaxation aborts with ErrNegativeCost.
//   - AStar optimality requires an admissible heuristic (never overestimates
//     the true remaining cost); the lazy re-expansion strategy additionally
//     behaves best with a consistent one. Neither property can be verified
//     here.
//
// Complexity (V = distinct states reached, E = expansions):
//
//   - DFS/BFS:        O(V + E) time, O(V) memory.
//   - Dijkstra/AStar: O((V + E) log V) time, O(V + E) memory
//     (lazy decrease-key: stale heap entries are skipped at pop).
//
// Absence of a path is a normal outcome, reported as Result.Found == false
// with a nil error. Errors are reserved for contract violations (nil
// callbacks, negative costs).
package search
