package problems

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// HeuristicKind is the closed set of heuristics available for PositionProblem.
type HeuristicKind int

const (
	// HeuristicNull always estimates 0.
	HeuristicNull HeuristicKind = iota
	// HeuristicManhattan estimates |dx|+|dy| to the goal.
	HeuristicManhattan
	// HeuristicEuclidean estimates the straight-line distance to the goal.
	HeuristicEuclidean
)

// String implements fmt.Stringer.
func (k HeuristicKind) String() string {
	switch k {
	case HeuristicNull:
		return "null"
	case HeuristicManhattan:
		return "manhattan"
	case HeuristicEuclidean:
		return "euclidean"
	default:
		return fmt.Sprintf("HeuristicKind(%d)", int(k))
	}
}

// PositionHeuristic builds the heuristic named by kind for p.
func PositionHeuristic(kind HeuristicKind, p *PositionProblem) (search.Heuristic[grid.Position], error) {
	switch kind {
	case HeuristicNull:
		return search.NullHeuristic[grid.Position](), nil
	case HeuristicManhattan:
		return ManhattanHeuristic(p), nil
	case HeuristicEuclidean:
		return EuclideanHeuristic(p), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownHeuristic, kind)
	}
}

// ManhattanHeuristic estimates |dx|+|dy| from a cell to p's goal.
// Admissible and consistent for unit step cost.
func ManhattanHeuristic(p *PositionProblem) search.Heuristic[grid.Position] {
	goal := p.Goal()
	return func(pos grid.Position) float64 {
		return float64(pos.Manhattan(goal))
	}
}

// EuclideanHeuristic estimates the straight-line distance from a cell to p's
// goal. It never exceeds the Manhattan estimate, so it is admissible too.
func EuclideanHeuristic(p *PositionProblem) search.Heuristic[grid.Position] {
	goal := p.Goal()
	return func(pos grid.Position) float64 {
		return pos.Euclidean(goal)
	}
}
