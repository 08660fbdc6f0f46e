package problems

import (
	"errors"
	"math"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// Sentinel errors for problem construction.
var (
	// ErrNilGrid indicates that no maze grid was supplied.
	ErrNilGrid = errors.New("problems: grid is nil")
	// ErrStartBlocked indicates a start cell inside a wall or outside the grid.
	ErrStartBlocked = errors.New("problems: start cell is blocked")
	// ErrGoalBlocked indicates a goal cell inside a wall or outside the grid.
	ErrGoalBlocked = errors.New("problems: goal cell is blocked")
	// ErrCornerBlocked indicates a corner cell inside a wall.
	ErrCornerBlocked = errors.New("problems: corner cell is blocked")
	// ErrFoodBlocked indicates a food cell inside a wall or outside the grid.
	ErrFoodBlocked = errors.New("problems: food cell is blocked")
	// ErrUnknownHeuristic indicates a HeuristicKind outside the enumeration.
	ErrUnknownHeuristic = errors.New("problems: unknown heuristic")
)

// CostFunc prices the step that lands on a cell. It must be non-negative.
type CostFunc func(p grid.Position) float64

// UnitCost charges 1 for every step.
func UnitCost(grid.Position) float64 { return 1 }

// StayEastCost charges 0.5^x for landing on column x, favouring the East side.
func StayEastCost(p grid.Position) float64 { return math.Pow(0.5, float64(p.X)) }

// StayWestCost charges 2^x for landing on column x, favouring the West side.
func StayWestCost(p grid.Position) float64 { return math.Pow(2, float64(p.X)) }

// Option configures a PositionProblem.
type Option func(*PositionProblem)

// WithCostFn replaces the default unit step cost. A nil fn is ignored.
func WithCostFn(fn CostFunc) Option {
	return func(p *PositionProblem) {
		if fn != nil {
			p.costFn = fn
		}
	}
}

// walk replays actions from start over g, calling step with every landing
// cell. It reports false as soon as an action is undefined or lands on a
// blocked cell.
func walk(g *grid.Grid, start grid.Position, actions []grid.Direction, step func(grid.Position)) bool {
	pos := start
	for _, d := range actions {
		if !d.Valid() {
			return false
		}
		pos = pos.Move(d)
		if g.Blocked(pos) {
			return false
		}
		step(pos)
	}
	return true
}

// unitCost is the Cost of an action sequence under unit step cost.
func unitCost(g *grid.Grid, start grid.Position, actions []grid.Direction) float64 {
	n := 0
	if !walk(g, start, actions, func(grid.Position) { n++ }) {
		return search.IllegalCost
	}
	return float64(n)
}

// moves lists the cardinal moves from pos that land on open cells,
// in grid.Cardinal order.
func moves(g *grid.Grid, pos grid.Position) []move {
	out := make([]move, 0, len(grid.Cardinal))
	for _, d := range grid.Cardinal {
		next := pos.Move(d)
		if !g.Blocked(next) {
			out = append(out, move{dir: d, to: next})
		}
	}
	return out
}

type move struct {
	dir grid.Direction
	to  grid.Position
}
