package problems

import (
	"errors"
	"math"

	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// DistanceOracle is an all-pairs table of true maze distances between the
// open cells of a grid. It is immutable once built.
type DistanceOracle struct {
	grid  *grid.Grid
	index map[grid.Position]int
	dist  [][]float64
}

// BuildDistanceOracle runs a Uniform-Cost search from every open cell to every
// other open cell of g under unit step cost. Unreachable pairs get +Inf.
// Distances are symmetric, so each unordered pair is searched once.
//
// Complexity: O(F²) searches of O(F log F) each, F = number of open cells.
// Memory: O(F²).
func BuildDistanceOracle(g *grid.Grid) (*DistanceOracle, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	free := g.FreeCells()
	o := &DistanceOracle{
		grid:  g,
		index: make(map[grid.Position]int, len(free)),
		dist:  make([][]float64, len(free)),
	}
	for i, c := range free {
		o.index[c] = i
		o.dist[i] = make([]float64, len(free))
	}

	for i := range free {
		for j := i + 1; j < len(free); j++ {
			p, err := NewPositionProblem(g, free[i], free[j])
			if err != nil {
				return nil, err
			}
			d := math.Inf(1)
			res, err := search.UniformCost[grid.Position](p)
			switch {
			case err == nil:
				d = res.Cost
			case !errors.Is(err, search.ErrNoPath):
				return nil, err
			}
			o.dist[i][j], o.dist[j][i] = d, d
		}
	}
	return o, nil
}

// Distance returns the maze distance from a to b: 0 when a == b, +Inf when
// either cell is not an open cell of the grid or b is unreachable from a.
func (o *DistanceOracle) Distance(a, b grid.Position) float64 {
	i, ok := o.index[a]
	if !ok {
		return math.Inf(1)
	}
	j, ok := o.index[b]
	if !ok {
		return math.Inf(1)
	}
	return o.dist[i][j]
}

// Len returns the number of open cells covered by the table.
func (o *DistanceOracle) Len() int { return len(o.dist) }
