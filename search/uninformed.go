package search

import "math"

func zeroKey[S comparable](*node[S]) float64 { return 0 }

// DepthFirst searches the deepest nodes first using a LIFO frontier.
// A state is marked explored when it is expanded; the goal test runs on every
// popped node. The returned path reaches a goal but is not necessarily shortest.
// Returns ErrNoPath if no goal is reachable.
func DepthFirst[S comparable](p Problem[S], opts ...Option[S]) (*Result, error) {
	w, err := newWalker(p, NewStackFrontier[*node[S]](), zeroKey[S], opts)
	if err != nil {
		return nil, err
	}
	return w.firstGoal()
}

// BreadthFirst searches the shallowest nodes first using a FIFO frontier.
// The goal test runs before a dequeued node is marked explored, so the first
// goal returned has the minimum action count. Duplicate frontier entries for
// one state may exist; only the first dequeued copy is expanded.
// Returns ErrNoPath if no goal is reachable.
func BreadthFirst[S comparable](p Problem[S], opts ...Option[S]) (*Result, error) {
	w, err := newWalker(p, NewQueueFrontier[*node[S]](), zeroKey[S], opts)
	if err != nil {
		return nil, err
	}
	return w.firstGoal()
}

// UniformCost searches the cheapest nodes first, keyed by cumulative path cost
// with ties served in insertion order.
//
// A popped goal does not end the run: it becomes the best candidate if its
// cost is lower than or equal to the best seen so far, and the goal itself is
// never expanded. A non-goal node is expanded only when it is unexplored and
// cheaper than the best goal. The run ends when the frontier is empty or its
// head costs more than the best goal, since step costs are non-negative.
// Returns the cheapest path found, or ErrNoPath if no goal was reachable.
func UniformCost[S comparable](p Problem[S], opts ...Option[S]) (*Result, error) {
	w, err := newWalker(p, NewPriorityFrontier[*node[S]](), func(n *node[S]) float64 { return n.cost }, opts)
	if err != nil {
		return nil, err
	}

	w.seed()
	best := math.Inf(1)
	var bestNode *node[S]
	for {
		n, ok := w.frontier.Pop()
		if !ok || n.cost > best {
			break
		}
		if w.problem.IsGoal(n.state) {
			w.opts.OnGoal(n.state, n.cost)
			if n.cost <= best {
				best, bestNode = n.cost, n
			}
			continue
		}
		if w.explored.Has(n.state) || n.cost >= best {
			continue
		}
		if err = w.expand(n); err != nil {
			return w.failure(err)
		}
	}

	if bestNode == nil {
		return w.failure(ErrNoPath)
	}
	return w.success(bestNode), nil
}
