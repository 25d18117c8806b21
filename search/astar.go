// Package search implements A*: Dijkstra's runner with the frontier ordered
// by accumulated cost plus a caller-supplied heuristic estimate.
package search

// AStar computes the minimum-cost path from start to the first state
// satisfying isGoal, expanding states in order of accumulated cost plus
// h(state).
//
// Preconditions (caller obligations):
//
//   - Edge costs must be non-negative; a negative cost aborts with
//     ErrNegativeCost, exactly as in Dijkstra.
//   - h must be admissible — it never overestimates the true remaining
//     cost — or the returned path may not be optimal. With an admissible but
//     inconsistent heuristic the lazy-deletion strategy still re-expands
//     states whenever a cheaper path appears, preserving correctness at the
//     price of extra expansions. Neither property is verifiable here.
//
// With h ≡ 0 AStar degenerates to Dijkstra; a well-informed heuristic only
// prunes expansions, never the answer.
//
// Returns ErrNilNeighborFunc, ErrNilGoalFunc or ErrNilHeuristic for missing
// callbacks. An unreachable goal yields Found == false with a nil error.
func AStar[S comparable](start S, neighbors WeightedNeighborFunc[S], isGoal GoalFunc[S], h HeuristicFunc[S]) (Result[S], error) {
	if neighbors == nil {
		return Result[S]{}, ErrNilNeighborFunc
	}
	if isGoal == nil {
		return Result[S]{}, ErrNilGoalFunc
	}
	if h == nil {
		return Result[S]{}, ErrNilHeuristic
	}

	r := newRunner(neighbors, isGoal, h)

	return r.run(start)
}
