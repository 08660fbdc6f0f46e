package search

// AStar searches by f(n) = g(n) + h(n) and returns the first popped goal.
// The result is optimal when h is consistent; explored states are never
// re-expanded. A nil h behaves like NullHeuristic, reducing AStar to a
// first-goal Uniform-Cost search.
// Returns ErrNoPath if no goal is reachable.
func AStar[S comparable](p Problem[S], h Heuristic[S], opts ...Option[S]) (*Result, error) {
	if h == nil {
		h = NullHeuristic[S]()
	}
	w, err := newWalker(p, NewPriorityFrontier[*node[S]](), func(n *node[S]) float64 {
		return n.cost + h(n.state)
	}, opts)
	if err != nil {
		return nil, err
	}
	return w.firstGoal()
}

// GreedyBestFirst has the structure of AStar but keys the frontier on h(n)
// alone, ignoring the cost already paid. It is usually faster and makes no
// optimality claim. A nil h behaves like NullHeuristic.
// Returns ErrNoPath if no goal is reachable.
func GreedyBestFirst[S comparable](p Problem[S], h Heuristic[S], opts ...Option[S]) (*Result, error) {
	if h == nil {
		h = NullHeuristic[S]()
	}
	w, err := newWalker(p, NewPriorityFrontier[*node[S]](), func(n *node[S]) float64 {
		return h(n.state)
	}, opts)
	if err != nil {
		return nil, err
	}
	return w.firstGoal()
}
