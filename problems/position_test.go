package problems_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/problems"
	"github.com/katalvlaran/mazepath/search"
)

func TestNewPositionProblem_Errors(t *testing.T) {
	g := mustBordered(t, 5, 5)
	_, err := problems.NewPositionProblem(nil, grid.Pos(1, 1), grid.Pos(2, 2))
	assert.ErrorIs(t, err, problems.ErrNilGrid)

	_, err = problems.NewPositionProblem(g, grid.Pos(0, 0), grid.Pos(2, 2))
	assert.ErrorIs(t, err, problems.ErrStartBlocked)

	_, err = problems.NewPositionProblem(g, grid.Pos(1, 1), grid.Pos(9, 9))
	assert.ErrorIs(t, err, problems.ErrGoalBlocked)
}

func TestPositionProblem_Successors(t *testing.T) {
	lay := mustParse(t, walledMaze)
	p, err := problems.NewPositionProblem(lay.Grid, lay.Start, grid.Pos(6, 2))
	require.NoError(t, err)

	// From (1,4): North is the border, South is (1,3), East is (2,4), West is the border.
	succ := p.Successors(lay.Start)
	require.Len(t, succ, 2)
	assert.Equal(t, search.Transition[grid.Position]{State: grid.Pos(1, 3), Action: grid.South, Cost: 1}, succ[0])
	assert.Equal(t, search.Transition[grid.Position]{State: grid.Pos(2, 4), Action: grid.East, Cost: 1}, succ[1])
}

func TestPositionProblem_Cost(t *testing.T) {
	g := mustBordered(t, 7, 3)
	p, err := problems.NewPositionProblem(g, grid.Pos(1, 1), grid.Pos(5, 1))
	require.NoError(t, err)

	assert.Equal(t, 0.0, p.Cost(nil))
	assert.Equal(t, 0.0, p.Cost([]grid.Direction{}))
	assert.Equal(t, 2.0, p.Cost([]grid.Direction{grid.East, grid.East}))
	assert.Equal(t, 2.0, p.Cost([]grid.Direction{grid.East, grid.West}))
	assert.Equal(t, 1.0, p.Cost([]grid.Direction{grid.Stop}))
	assert.Equal(t, float64(search.IllegalCost), p.Cost([]grid.Direction{grid.North}))
	assert.Equal(t, float64(search.IllegalCost), p.Cost([]grid.Direction{grid.East, grid.North, grid.East}))
	assert.Equal(t, float64(search.IllegalCost), p.Cost([]grid.Direction{grid.Direction(17)}))
}

// TestPositionProblem_GoalIsStart covers the 3×3 room whose only open cell is
// both start and goal.
func TestPositionProblem_GoalIsStart(t *testing.T) {
	g := mustBordered(t, 3, 3)
	p, err := problems.NewPositionProblem(g, grid.Pos(1, 1), grid.Pos(1, 1))
	require.NoError(t, err)

	for _, alg := range search.Algorithms {
		res, err := search.Run[grid.Position](alg, p, problems.ManhattanHeuristic(p))
		require.NoError(t, err, alg.String())
		assert.Empty(t, res.Actions, alg.String())
		assert.Zero(t, res.Cost, alg.String())
		assert.Zero(t, p.Cost(res.Actions), alg.String())
	}
}

// TestPositionProblem_Corridor covers a straight five-cell corridor.
func TestPositionProblem_Corridor(t *testing.T) {
	g := mustBordered(t, 7, 3)
	p, err := problems.NewPositionProblem(g, grid.Pos(1, 1), grid.Pos(5, 1))
	require.NoError(t, err)
	want := []grid.Direction{grid.East, grid.East, grid.East, grid.East}

	for _, alg := range []search.Algorithm{search.AlgorithmBFS, search.AlgorithmUCS, search.AlgorithmAStar} {
		res, err := search.Run[grid.Position](alg, p, problems.ManhattanHeuristic(p))
		require.NoError(t, err, alg.String())
		assert.Equal(t, want, res.Actions, alg.String())
		assert.Equal(t, 4.0, res.Cost, alg.String())
	}

	res, err := search.DepthFirst[grid.Position](p)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, res.Cost, 4.0)
	assert.Equal(t, p.Goal(), replay(p.Start(), res.Actions)[len(res.Actions)])
}

// TestBreadthFirstMatchesUniformCost_AllPairs compares BFS and unit-cost UCS
// between every pair of open cells, reachable or not.
func TestBreadthFirstMatchesUniformCost_AllPairs(t *testing.T) {
	g := mustParse(t, walledMaze).Grid
	free := g.FreeCells()
	for _, a := range free {
		for _, b := range free {
			p, err := problems.NewPositionProblem(g, a, b)
			require.NoError(t, err)

			bfs, bfsErr := search.BreadthFirst[grid.Position](p)
			ucs, ucsErr := search.UniformCost[grid.Position](p)
			if errors.Is(bfsErr, search.ErrNoPath) {
				assert.ErrorIs(t, ucsErr, search.ErrNoPath, "%v→%v", a, b)
				continue
			}
			require.NoError(t, bfsErr)
			require.NoError(t, ucsErr)
			assert.Len(t, ucs.Actions, len(bfs.Actions), "%v→%v", a, b)
			assert.Equal(t, bfs.Cost, ucs.Cost, "%v→%v", a, b)
		}
	}
}

// TestAStarMatchesUniformCost_Position checks optimality equivalence for both
// position heuristics from the layout start to every open cell.
func TestAStarMatchesUniformCost_Position(t *testing.T) {
	lay := mustParse(t, walledMaze)
	for _, goal := range lay.Grid.FreeCells() {
		p, err := problems.NewPositionProblem(lay.Grid, lay.Start, goal)
		require.NoError(t, err)
		ucs, err := search.UniformCost[grid.Position](p)
		require.NoError(t, err)

		for _, kind := range []problems.HeuristicKind{problems.HeuristicNull, problems.HeuristicManhattan, problems.HeuristicEuclidean} {
			h, err := problems.PositionHeuristic(kind, p)
			require.NoError(t, err)
			res, err := search.AStar[grid.Position](p, h)
			require.NoError(t, err, kind.String())
			assert.Equal(t, ucs.Cost, res.Cost, "%s to %v", kind, goal)
			assert.Equal(t, p.Cost(res.Actions), res.Cost, "%s to %v", kind, goal)
		}
	}
}

func TestPositionHeuristic_Values(t *testing.T) {
	g := mustBordered(t, 8, 8)
	p, err := problems.NewPositionProblem(g, grid.Pos(1, 1), grid.Pos(4, 5))
	require.NoError(t, err)

	assert.Equal(t, 7.0, problems.ManhattanHeuristic(p)(grid.Pos(1, 1)))
	assert.InDelta(t, 5.0, problems.EuclideanHeuristic(p)(grid.Pos(1, 1)), 1e-9)
	assert.Zero(t, problems.ManhattanHeuristic(p)(p.Goal()))
	assert.Zero(t, problems.EuclideanHeuristic(p)(p.Goal()))

	_, err = problems.PositionHeuristic(problems.HeuristicKind(7), p)
	assert.ErrorIs(t, err, problems.ErrUnknownHeuristic)
	assert.Equal(t, "HeuristicKind(7)", problems.HeuristicKind(7).String())
}

// TestPositionProblem_WeightedCosts checks that UCS follows the cheap side of
// a room under the stay-east and stay-west cost functions.
func TestPositionProblem_WeightedCosts(t *testing.T) {
	g := mustBordered(t, 6, 4)
	start, goal := grid.Pos(1, 1), grid.Pos(4, 2)

	east, err := problems.NewPositionProblem(g, start, goal, problems.WithCostFn(problems.StayEastCost))
	require.NoError(t, err)
	res, err := search.UniformCost[grid.Position](east)
	require.NoError(t, err)
	// The single North step is cheapest taken at the East end.
	assert.Equal(t, []grid.Direction{grid.East, grid.East, grid.East, grid.North}, res.Actions)
	assert.Equal(t, east.Cost(res.Actions), res.Cost)

	west, err := problems.NewPositionProblem(g, start, goal, problems.WithCostFn(problems.StayWestCost))
	require.NoError(t, err)
	res, err = search.UniformCost[grid.Position](west)
	require.NoError(t, err)
	assert.Equal(t, []grid.Direction{grid.North, grid.East, grid.East, grid.East}, res.Actions)
	assert.Equal(t, west.Cost(res.Actions), res.Cost)
}

func TestPositionProblem_NegativeCostFn(t *testing.T) {
	g := mustBordered(t, 5, 3)
	p, err := problems.NewPositionProblem(g, grid.Pos(1, 1), grid.Pos(3, 1),
		problems.WithCostFn(func(grid.Position) float64 { return -1 }))
	require.NoError(t, err)
	_, err = search.UniformCost[grid.Position](p)
	assert.ErrorIs(t, err, search.ErrNegativeCost)
}
