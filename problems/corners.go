package problems

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// allCorners has one bit per entry of CornersProblem.Corners.
const allCorners uint8 = 1<<4 - 1

// CornersState is the agent's cell plus a bitmask of corners not yet visited;
// bit i stands for CornersProblem.Corners()[i].
type CornersState struct {
	Pos       grid.Position
	Remaining uint8
}

// CornersProblem finds a path that visits all four inner corners of a maze
// in any order. Every step costs 1.
type CornersProblem struct {
	grid    *grid.Grid
	start   grid.Position
	corners [4]grid.Position
}

var _ search.Problem[CornersState] = (*CornersProblem)(nil)

// NewCornersProblem validates the start cell and the four corners of g.
// Returns ErrNilGrid, ErrStartBlocked or ErrCornerBlocked otherwise.
func NewCornersProblem(g *grid.Grid, start grid.Position) (*CornersProblem, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	corners := g.Corners()
	for _, c := range corners {
		if g.Blocked(c) {
			return nil, fmt.Errorf("%w: %v", ErrCornerBlocked, c)
		}
	}
	return &CornersProblem{grid: g, start: start, corners: corners}, nil
}

// Corners returns the four target cells.
func (p *CornersProblem) Corners() [4]grid.Position { return p.corners }

// Start returns the start cell with every corner pending, except one the
// agent already stands on.
func (p *CornersProblem) Start() CornersState {
	return CornersState{Pos: p.start, Remaining: p.visit(allCorners, p.start)}
}

// IsGoal reports whether no corner remains.
func (p *CornersProblem) IsGoal(state CornersState) bool { return state.Remaining == 0 }

// Successors moves to each open cardinal neighbour, clearing the corner landed on.
func (p *CornersProblem) Successors(state CornersState) []search.Transition[CornersState] {
	ms := moves(p.grid, state.Pos)
	out := make([]search.Transition[CornersState], len(ms))
	for i, m := range ms {
		out[i] = search.Transition[CornersState]{
			State:  CornersState{Pos: m.to, Remaining: p.visit(state.Remaining, m.to)},
			Action: m.dir,
			Cost:   1,
		}
	}
	return out
}

// Cost returns the number of actions, or search.IllegalCost if any step is illegal.
func (p *CornersProblem) Cost(actions []grid.Direction) float64 {
	return unitCost(p.grid, p.start, actions)
}

// visit clears the bits of every corner located at pos.
func (p *CornersProblem) visit(remaining uint8, pos grid.Position) uint8 {
	for i, c := range p.corners {
		if c == pos {
			remaining &^= 1 << i
		}
	}
	return remaining
}

// pending lists the corners still set in remaining.
func (p *CornersProblem) pending(remaining uint8) []grid.Position {
	out := make([]grid.Position, 0, len(p.corners))
	for i, c := range p.corners {
		if remaining&(1<<i) != 0 {
			out = append(out, c)
		}
	}
	return out
}

// CornersHeuristic estimates the remaining cost as the shortest Manhattan
// tour that starts at the agent and visits every pending corner once, taken
// over all visiting orders. Walls can only lengthen the real tour, so the
// estimate is admissible; it is also consistent because one step changes the
// tour start by one cell.
func CornersHeuristic(p *CornersProblem) search.Heuristic[CornersState] {
	return func(state CornersState) float64 {
		return float64(shortestTour(state.Pos, p.pending(state.Remaining)))
	}
}

// shortestTour returns the cheapest Manhattan path from pos through all of
// targets, trying every order. targets is not modified.
func shortestTour(pos grid.Position, targets []grid.Position) int {
	if len(targets) == 0 {
		return 0
	}
	best := math.MaxInt
	rest := make([]grid.Position, 0, len(targets)-1)
	for i, t := range targets {
		rest = append(rest[:0], targets[:i]...)
		rest = append(rest, targets[i+1:]...)
		if c := pos.Manhattan(t) + shortestTour(t, rest); c < best {
			best = c
		}
	}
	return best
}
