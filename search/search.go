// Package search implements the unweighted traversals: DFS and BFS.
// Both share the frontier + visited-set + predecessor-map skeleton and
// differ only in frontier discipline (LIFO stack vs FIFO queue).
package search

// walker encapsulates mutable state for one unweighted traversal.
type walker[S comparable] struct {
	neighbors NeighborFunc[S]
	isGoal    GoalFunc[S]
	visited   map[S]bool
	parent    map[S]S
	res       Result[S]
}

// DFS performs depth-first search from start until isGoal is satisfied or the
// state space reachable from start is exhausted.
//
// The traversal uses an explicit stack rather than recursion, so call depth
// stays O(1) regardless of how deep the search tree grows. A state is marked
// visited when popped; its unvisited neighbors are then pushed. When several
// paths to the goal exist, whichever is discovered first under LIFO order is
// returned — no optimality guarantee.
//
// Returns ErrNilNeighborFunc or ErrNilGoalFunc for missing callbacks.
// An unreachable goal yields Found == false with a nil error.
func DFS[S comparable](start S, neighbors NeighborFunc[S], isGoal GoalFunc[S]) (Result[S], error) {
	// 1. Validate callbacks.
	if neighbors == nil {
		return Result[S]{}, ErrNilNeighborFunc
	}
	if isGoal == nil {
		return Result[S]{}, ErrNilGoalFunc
	}

	w := newWalker(neighbors, isGoal)

	// 2. Seed the stack with the start state.
	stack := []S{start}

	// 3. Pop until the goal is found or the stack empties.
	var node S
	for len(stack) > 0 {
		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Skip states already expanded (duplicates may sit on the stack).
		if w.visited[node] {
			continue
		}
		w.res.Expanded++

		if w.isGoal(node) {
			return w.finish(node), nil
		}
		w.visited[node] = true

		// 4. Push every unvisited neighbor, recording its predecessor the
		//    first time it is seen so path reconstruction follows the
		//    discovery tree.
		for _, next := range w.neighbors(node) {
			if w.visited[next] {
				continue
			}
			if _, seen := w.parent[next]; !seen && next != start {
				w.parent[next] = node
			}
			stack = append(stack, next)
		}
	}

	// 5. Frontier exhausted: no path.
	return w.res, nil
}

// BFS performs breadth-first search from start until isGoal is satisfied or
// the state space reachable from start is exhausted.
//
// States are expanded in FIFO order, so the returned path (if any) has the
// minimum possible number of edges. A state is marked visited at enqueue
// time, never at dequeue time, which guarantees each state enters the
// frontier at most once.
//
// Returns ErrNilNeighborFunc or ErrNilGoalFunc for missing callbacks.
// An unreachable goal yields Found == false with a nil error.
func BFS[S comparable](start S, neighbors NeighborFunc[S], isGoal GoalFunc[S]) (Result[S], error) {
	// 1. Validate callbacks.
	if neighbors == nil {
		return Result[S]{}, ErrNilNeighborFunc
	}
	if isGoal == nil {
		return Result[S]{}, ErrNilGoalFunc
	}

	w := newWalker(neighbors, isGoal)

	// 2. Seed the queue; the start state is visited at enqueue time.
	queue := []S{start}
	w.visited[start] = true

	// 3. Dequeue until the goal is found or the queue empties.
	var node S
	for len(queue) > 0 {
		node = queue[0]
		queue = queue[1:]
		w.res.Expanded++

		if w.isGoal(node) {
			return w.finish(node), nil
		}

		// 4. Enqueue each first-seen neighbor, recording its predecessor.
		for _, next := range w.neighbors(node) {
			if w.visited[next] {
				continue
			}
			w.visited[next] = true
			w.parent[next] = node
			queue = append(queue, next)
		}
	}

	// 5. Frontier exhausted: no path.
	return w.res, nil
}

// newWalker allocates the shared visited/parent maps for one traversal.
func newWalker[S comparable](neighbors NeighborFunc[S], isGoal GoalFunc[S]) *walker[S] {
	return &walker[S]{
		neighbors: neighbors,
		isGoal:    isGoal,
		visited:   make(map[S]bool),
		parent:    make(map[S]S),
	}
}

// finish reconstructs the path ending at goal and fills in the result.
// For unweighted traversals Cost is the number of edges on the path.
func (w *walker[S]) finish(goal S) Result[S] {
	w.res.Path = buildPath(w.parent, goal)
	w.res.Cost = int64(len(w.res.Path) - 1)
	w.res.Found = true

	return w.res
}
