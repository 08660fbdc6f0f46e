package problems

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// PositionProblem finds a path from a start cell to a single goal cell.
// Each step costs costFn(landing cell); the default is 1.
type PositionProblem struct {
	grid   *grid.Grid
	start  grid.Position
	goal   grid.Position
	costFn CostFunc
}

var _ search.Problem[grid.Position] = (*PositionProblem)(nil)

// NewPositionProblem validates that both endpoints are open cells of g.
// Returns ErrNilGrid, ErrStartBlocked or ErrGoalBlocked otherwise.
func NewPositionProblem(g *grid.Grid, start, goal grid.Position, opts ...Option) (*PositionProblem, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if g.Blocked(goal) {
		return nil, fmt.Errorf("%w: %v", ErrGoalBlocked, goal)
	}
	p := &PositionProblem{grid: g, start: start, goal: goal, costFn: UnitCost}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Grid returns the maze the problem is posed on.
func (p *PositionProblem) Grid() *grid.Grid { return p.grid }

// Goal returns the target cell.
func (p *PositionProblem) Goal() grid.Position { return p.goal }

// Start returns the start cell.
func (p *PositionProblem) Start() grid.Position { return p.start }

// IsGoal reports whether state is the target cell.
func (p *PositionProblem) IsGoal(state grid.Position) bool { return state == p.goal }

// Successors returns the open cardinal neighbours of state.
func (p *PositionProblem) Successors(state grid.Position) []search.Transition[grid.Position] {
	ms := moves(p.grid, state)
	out := make([]search.Transition[grid.Position], len(ms))
	for i, m := range ms {
		out[i] = search.Transition[grid.Position]{State: m.to, Action: m.dir, Cost: p.costFn(m.to)}
	}
	return out
}

// Cost sums costFn over the cells landed on, or returns search.IllegalCost
// if any step is illegal.
func (p *PositionProblem) Cost(actions []grid.Direction) float64 {
	total := 0.0
	if !walk(p.grid, p.start, actions, func(c grid.Position) { total += p.costFn(c) }) {
		return search.IllegalCost
	}
	return total
}
