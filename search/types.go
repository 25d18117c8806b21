// Package search defines the callback types, result type, and sentinel
// errors shared by the four search algorithms.
package search

import "errors"

// Sentinel errors for search execution.
var (
	// ErrNilNeighborFunc is returned when the neighbor-expansion function is nil.
	ErrNilNeighborFunc = errors.New("search: neighbor function is nil")

	// ErrNilGoalFunc is returned when the goal test is nil.
	ErrNilGoalFunc = errors.New("search: goal function is nil")

	// ErrNilHeuristic is returned when AStar is given a nil heuristic.
	ErrNilHeuristic = errors.New("search: heuristic function is nil")

	// ErrNegativeCost is returned when Dijkstra or AStar encounters a
	// negative edge cost during relaxation. Non-negative costs are a
	// precondition of both algorithms.
	ErrNegativeCost = errors.New("search: negative edge cost encountered")
)

// NeighborFunc expands a state into its successor states (unweighted).
// It is called at most once per expanded state.
type NeighborFunc[S comparable] func(S) []S

// Edge is a successor state together with the cost of moving to it.
type Edge[S comparable] struct {
	To   S
	Cost int64
}

// WeightedNeighborFunc expands a state into its successors with move costs.
// Costs must be non-negative for Dijkstra and AStar.
type WeightedNeighborFunc[S comparable] func(S) []Edge[S]

// GoalFunc reports whether a state satisfies the search goal.
type GoalFunc[S comparable] func(S) bool

// HeuristicFunc estimates the remaining cost from a state to the goal.
// For AStar optimality it must never overestimate (admissible).
type HeuristicFunc[S comparable] func(S) int64

// Result holds the outcome of one search invocation.
//
// When Found is true, Path runs from the start state to the goal state
// inclusive, and Cost is the total path cost (for DFS/BFS, the edge count).
// When Found is false the goal was unreachable: Path is nil and Cost is 0.
// All internal state (frontier, visited set) is discarded on return.
type Result[S comparable] struct {
	// Path is the ordered sequence of states from start to goal inclusive.
	Path []S

	// Cost is the total path cost: summed edge costs for Dijkstra/AStar,
	// edge count for DFS/BFS.
	Cost int64

	// Found reports whether the goal was reached. False is the normal
	// "no path" outcome, not an error.
	Found bool

	// Expanded counts states popped from the frontier, for diagnostics.
	Expanded int
}

// buildPath walks the predecessor links from end back to the start (the only
// state with no recorded parent) and reverses, producing start → end inclusive.
func buildPath[S comparable](parent map[S]S, end S) []S {
	path := []S{end}
	for {
		prev, ok := parent[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, prev)
	}
	// reverse in place to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
