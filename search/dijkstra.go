// Package search implements Dijkstra's algorithm for the weighted variant of
// the shared traversal skeleton. The priority queue, the runner, and the
// relaxation step live here; AStar reuses them with a different priority key.
package search

import (
	"container/heap"
	"fmt"
)

// Dijkstra computes the minimum-cost path from start to the first state
// satisfying isGoal, expanding states in order of accumulated cost.
//
// Precondition: every cost produced by neighbors must be non-negative.
// A negative cost voids the optimality guarantee, so it is rejected at
// relaxation time with ErrNegativeCost rather than silently accepted.
//
// The priority queue has no decrease-key operation; instead a cheaper path
// re-inserts the state and stale entries are skipped at pop time when their
// recorded cost exceeds the best known (“lazy deletion”). A state is
// re-inserted only when a strictly cheaper path to it is found.
//
// Complexity: O((V + E) log V) time, O(V + E) memory,
// where V = distinct states reached and E = relaxations performed.
//
// Returns ErrNilNeighborFunc or ErrNilGoalFunc for missing callbacks and
// ErrNegativeCost for invalid costs. An unreachable goal yields
// Found == false with a nil error.
func Dijkstra[S comparable](start S, neighbors WeightedNeighborFunc[S], isGoal GoalFunc[S]) (Result[S], error) {
	if neighbors == nil {
		return Result[S]{}, ErrNilNeighborFunc
	}
	if isGoal == nil {
		return Result[S]{}, ErrNilGoalFunc
	}

	// A nil heuristic means the priority key is the accumulated cost alone.
	r := newRunner[S](neighbors, isGoal, nil)

	return r.run(start)
}

// runner holds the mutable state for one weighted search (Dijkstra or AStar).
type runner[S comparable] struct {
	neighbors WeightedNeighborFunc[S]
	isGoal    GoalFunc[S]
	h         HeuristicFunc[S] // nil for Dijkstra
	dist      map[S]int64      // state → best known cost from start
	parent    map[S]S          // state → predecessor on the best known path
	pq        statePQ[S]       // min-heap ordered by prio
	res       Result[S]
}

// newRunner allocates the per-call maps and heap.
func newRunner[S comparable](neighbors WeightedNeighborFunc[S], isGoal GoalFunc[S], h HeuristicFunc[S]) *runner[S] {
	return &runner[S]{
		neighbors: neighbors,
		isGoal:    isGoal,
		h:         h,
		dist:      make(map[S]int64),
		parent:    make(map[S]S),
		pq:        make(statePQ[S], 0),
	}
}

// run executes the main loop: pop the cheapest frontier entry, skip it if
// stale, test the goal, then relax its outgoing edges.
func (r *runner[S]) run(start S) (Result[S], error) {
	// 1. Seed: the start state costs 0; its priority includes the heuristic
	//    when one is set (AStar), matching every later push.
	r.dist[start] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &pqItem[S]{state: start, cost: 0, prio: r.prio(start, 0)})

	var item *pqItem[S]
	for r.pq.Len() > 0 {
		// 2. Pop the lowest-priority entry.
		item = heap.Pop(&r.pq).(*pqItem[S])

		// 3. Lazy deletion: a cheaper path to this state was found after
		//    this entry was pushed, so the entry is stale. Skip it.
		if item.cost > r.dist[item.state] {
			continue
		}
		r.res.Expanded++

		// 4. Goal test at pop time: the popped cost is final, so the first
		//    goal state popped carries the minimum cost.
		if r.isGoal(item.state) {
			r.res.Path = buildPath(r.parent, item.state)
			r.res.Cost = item.cost
			r.res.Found = true

			return r.res, nil
		}

		// 5. Relax outgoing edges.
		if err := r.relax(item); err != nil {
			return Result[S]{}, err
		}
	}

	// 6. Frontier exhausted: goal unreachable.
	return r.res, nil
}

// relax attempts to improve the best known cost of each successor of item.
// A successor is re-inserted into the frontier only when the new path to it
// is strictly cheaper than any recorded one.
func (r *runner[S]) relax(item *pqItem[S]) error {
	var next int64
	for _, e := range r.neighbors(item.state) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, item.state, e.To, e.Cost)
		}
		next = item.cost + e.Cost
		if best, ok := r.dist[e.To]; ok && next >= best {
			continue
		}
		r.dist[e.To] = next
		r.parent[e.To] = item.state
		heap.Push(&r.pq, &pqItem[S]{state: e.To, cost: next, prio: r.prio(e.To, next)})
	}

	return nil
}

// prio computes the frontier ordering key for a state with accumulated cost:
// the cost itself for Dijkstra, cost plus the heuristic estimate for AStar.
func (r *runner[S]) prio(s S, cost int64) int64 {
	if r.h == nil {
		return cost
	}

	return cost + r.h(s)
}

// pqItem is one frontier entry: a state, its accumulated cost from start,
// and the priority key it was pushed with.
type pqItem[S comparable] struct {
	state S
	cost  int64
	prio  int64
}

// statePQ is a min-heap of frontier entries ordered by prio ascending.
// Stale entries are never removed eagerly; they are skipped at pop.
type statePQ[S comparable] []*pqItem[S]

func (pq statePQ[S]) Len() int            { return len(pq) }
func (pq statePQ[S]) Less(i, j int) bool  { return pq[i].prio < pq[j].prio }
func (pq statePQ[S]) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *statePQ[S]) Push(x interface{}) { *pq = append(*pq, x.(*pqItem[S])) }

func (pq *statePQ[S]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
