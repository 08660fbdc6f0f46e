package search

import "fmt"

// Algorithm is the closed set of search strategies Run can dispatch to.
type Algorithm int

const (
	// AlgorithmDFS selects DepthFirst.
	AlgorithmDFS Algorithm = iota
	// AlgorithmBFS selects BreadthFirst.
	AlgorithmBFS
	// AlgorithmUCS selects UniformCost.
	AlgorithmUCS
	// AlgorithmAStar selects AStar.
	AlgorithmAStar
	// AlgorithmGreedy selects GreedyBestFirst.
	AlgorithmGreedy
)

// Algorithms lists every defined Algorithm in declaration order.
var Algorithms = []Algorithm{AlgorithmDFS, AlgorithmBFS, AlgorithmUCS, AlgorithmAStar, AlgorithmGreedy}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case AlgorithmDFS:
		return "depth-first"
	case AlgorithmBFS:
		return "breadth-first"
	case AlgorithmUCS:
		return "uniform-cost"
	case AlgorithmAStar:
		return "a-star"
	case AlgorithmGreedy:
		return "greedy-best-first"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Informed reports whether a consumes a heuristic.
func (a Algorithm) Informed() bool {
	return a == AlgorithmAStar || a == AlgorithmGreedy
}

// Optimal reports whether a returns a minimum-cost path (for AStar, given a
// consistent heuristic).
func (a Algorithm) Optimal() bool {
	return a == AlgorithmUCS || a == AlgorithmAStar
}

// Run dispatches to the algorithm named by a. The heuristic is ignored by
// uninformed algorithms and may be nil.
func Run[S comparable](a Algorithm, p Problem[S], h Heuristic[S], opts ...Option[S]) (*Result, error) {
	switch a {
	case AlgorithmDFS:
		return DepthFirst(p, opts...)
	case AlgorithmBFS:
		return BreadthFirst(p, opts...)
	case AlgorithmUCS:
		return UniformCost(p, opts...)
	case AlgorithmAStar:
		return AStar(p, h, opts...)
	case AlgorithmGreedy:
		return GreedyBestFirst(p, h, opts...)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, a)
	}
}
