package problems

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// FoodState is the agent's cell plus the food not yet eaten.
type FoodState struct {
	Pos  grid.Position
	Food FoodSet
}

// FoodProblem finds a path that eats every food cell in any order.
// Every step costs 1.
//
// The problem lazily owns a DistanceOracle for FoodHeuristic. It is built at
// most once, on first use, and never changes afterwards; the grid must not
// change for the lifetime of the problem.
type FoodProblem struct {
	grid  *grid.Grid
	start grid.Position
	food  []grid.Position
	index map[grid.Position]int

	oracleOnce   sync.Once
	oracle       *DistanceOracle
	oracleErr    error
	oracleBuilds int
}

var _ search.Problem[FoodState] = (*FoodProblem)(nil)

// NewFoodProblem validates the start cell and every food cell of g.
// Duplicate food cells are collapsed. Returns ErrNilGrid, ErrStartBlocked or
// ErrFoodBlocked otherwise.
func NewFoodProblem(g *grid.Grid, start grid.Position, food []grid.Position) (*FoodProblem, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if g.Blocked(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	p := &FoodProblem{
		grid:  g,
		start: start,
		food:  make([]grid.Position, 0, len(food)),
		index: make(map[grid.Position]int, len(food)),
	}
	for _, f := range food {
		if g.Blocked(f) {
			return nil, fmt.Errorf("%w: %v", ErrFoodBlocked, f)
		}
		if _, dup := p.index[f]; dup {
			continue
		}
		p.index[f] = len(p.food)
		p.food = append(p.food, f)
	}
	return p, nil
}

// NewFoodProblemFromLayout poses the food problem of a parsed layout.
func NewFoodProblemFromLayout(lay *grid.Layout) (*FoodProblem, error) {
	if lay == nil {
		return nil, ErrNilGrid
	}
	return NewFoodProblem(lay.Grid, lay.Start, lay.Food)
}

// Start returns the start cell with all food present, except food under the agent.
func (p *FoodProblem) Start() FoodState {
	return FoodState{Pos: p.start, Food: p.eat(fullFoodSet(len(p.food)), p.start)}
}

// IsGoal reports whether no food remains.
func (p *FoodProblem) IsGoal(state FoodState) bool { return state.Food.Len() == 0 }

// Successors moves to each open cardinal neighbour, eating the food landed on.
func (p *FoodProblem) Successors(state FoodState) []search.Transition[FoodState] {
	ms := moves(p.grid, state.Pos)
	out := make([]search.Transition[FoodState], len(ms))
	for i, m := range ms {
		out[i] = search.Transition[FoodState]{
			State:  FoodState{Pos: m.to, Food: p.eat(state.Food, m.to)},
			Action: m.dir,
			Cost:   1,
		}
	}
	return out
}

// Cost returns the number of actions, or search.IllegalCost if any step is illegal.
func (p *FoodProblem) Cost(actions []grid.Direction) float64 {
	return unitCost(p.grid, p.start, actions)
}

// Remaining lists the food cells still present in state.
func (p *FoodProblem) Remaining(state FoodState) []grid.Position {
	out := make([]grid.Position, 0, state.Food.Len())
	state.Food.Each(func(i int) {
		out = append(out, p.food[i])
	})
	return out
}

// Distances returns the problem's all-pairs distance table, building it on
// the first call. Later calls return the same table.
func (p *FoodProblem) Distances() (*DistanceOracle, error) {
	p.oracleOnce.Do(func() {
		p.oracleBuilds++
		p.oracle, p.oracleErr = BuildDistanceOracle(p.grid)
	})
	return p.oracle, p.oracleErr
}

func (p *FoodProblem) eat(food FoodSet, pos grid.Position) FoodSet {
	if i, ok := p.index[pos]; ok {
		return food.Without(i)
	}
	return food
}

// FoodHeuristic estimates the remaining cost as the largest true maze distance
// from the agent to any remaining food. Reaching the farthest food is part of
// every complete tour, so the estimate is admissible and consistent.
//
// The distance table is built on the first call that sees food. If building
// fails the heuristic degrades to 0, which is still admissible.
func FoodHeuristic(p *FoodProblem) search.Heuristic[FoodState] {
	return func(state FoodState) float64 {
		if state.Food.Len() == 0 {
			return 0
		}
		oracle, err := p.Distances()
		if err != nil {
			return 0
		}
		farthest := 0.0
		state.Food.Each(func(i int) {
			if d := oracle.Distance(state.Pos, p.food[i]); d > farthest {
				farthest = d
			}
		})
		return farthest
	}
}
