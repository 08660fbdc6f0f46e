package problems

import (
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// AnyFoodProblem finds a path from a start cell to whichever food cell is
// reached first. It shares PositionProblem's state space and unit step cost.
type AnyFoodProblem struct {
	grid  *grid.Grid
	start grid.Position
	food  map[grid.Position]bool
}

var _ search.Problem[grid.Position] = (*AnyFoodProblem)(nil)

// NewAnyFoodProblem validates the start cell and every food cell of g.
func NewAnyFoodProblem(g *grid.Grid, start grid.Position, food []grid.Position) (*AnyFoodProblem, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	set := make(map[grid.Position]bool, len(food))
	for _, f := range food {
		if g.Blocked(f) {
			return nil, fmt.Errorf("%w: %v", ErrFoodBlocked, f)
		}
		set[f] = true
	}
	return &AnyFoodProblem{grid: g, start: start, food: set}, nil
}

// Start returns the start cell.
func (p *AnyFoodProblem) Start() grid.Position { return p.start }

// IsGoal reports whether state holds food.
func (p *AnyFoodProblem) IsGoal(state grid.Position) bool { return p.food[state] }

// Successors returns the open cardinal neighbours of state at cost 1.
func (p *AnyFoodProblem) Successors(state grid.Position) []search.Transition[grid.Position] {
	ms := moves(p.grid, state)
	out := make([]search.Transition[grid.Position], len(ms))
	for i, m := range ms {
		out[i] = search.Transition[grid.Position]{State: m.to, Action: m.dir, Cost: 1}
	}
	return out
}

// Cost returns the number of actions, or search.IllegalCost if any step is illegal.
func (p *AnyFoodProblem) Cost(actions []grid.Direction) float64 {
	return unitCost(p.grid, p.start, actions)
}

// ClosestDotPath eats every food cell of lay by repeatedly running a
// breadth-first search to the nearest remaining food and following it.
// Food passed over on the way is eaten too. The result is fast to compute
// but not necessarily the shortest complete tour.
// Returns a wrapped search.ErrNoPath if some food is unreachable.
func ClosestDotPath(lay *grid.Layout) ([]grid.Direction, error) {
	if lay == nil || lay.Grid == nil {
		return nil, ErrNilGrid
	}
	remaining := make(map[grid.Position]bool, len(lay.Food))
	for _, f := range lay.Food {
		remaining[f] = true
	}
	delete(remaining, lay.Start)

	pos := lay.Start
	path := make([]grid.Direction, 0)
	for len(remaining) > 0 {
		food := make([]grid.Position, 0, len(remaining))
		for f := range remaining {
			food = append(food, f)
		}
		p, err := NewAnyFoodProblem(lay.Grid, pos, food)
		if err != nil {
			return nil, err
		}
		res, err := search.BreadthFirst[grid.Position](p)
		if err != nil {
			return nil, fmt.Errorf("closest dot from %v with %d food left: %w", pos, len(remaining), err)
		}
		for _, d := range res.Actions {
			pos = pos.Move(d)
			delete(remaining, pos)
		}
		path = append(path, res.Actions...)
	}
	return path, nil
}

// MazeDistance returns the number of steps on a shortest path from a to b
// in g, found by breadth-first search.
// Returns ErrStartBlocked or ErrGoalBlocked for blocked endpoints and
// search.ErrNoPath if b is unreachable.
func MazeDistance(g *grid.Grid, a, b grid.Position) (int, error) {
	p, err := NewPositionProblem(g, a, b)
	if err != nil {
		return 0, err
	}
	res, err := search.BreadthFirst[grid.Position](p)
	if err != nil {
		return 0, err
	}
	return len(res.Actions), nil
}
