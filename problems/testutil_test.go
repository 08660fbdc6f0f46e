package problems_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazepath/grid"
)

// walledMaze has internal walls, a dead end and a detour around column 5.
const walledMaze = `
%%%%%%%%
%P   % %
% %% % %
%    %.%
%% %   %
%%%%%%%%`

// detourMaze puts two food cells on either side of a wall: two cells apart
// by Manhattan distance, six steps apart through the maze.
const detourMaze = `
%%%%%%%
%P.%. %
%  %  %
%     %
%%%%%%%`

// trickyMaze is a small multi-food maze used for optimality comparisons.
const trickyMaze = `
%%%%%%%%
%.  P .%
% %%%% %
%.   ..%
%%%%%%%%`

func mustParse(t testing.TB, text string) *grid.Layout {
	t.Helper()
	lay, err := grid.Parse(text)
	require.NoError(t, err)
	return lay
}

func mustBordered(t testing.TB, w, h int) *grid.Grid {
	t.Helper()
	g, err := grid.Bordered(w, h)
	require.NoError(t, err)
	return g
}

// replay walks actions from start and returns every cell visited, start included.
func replay(start grid.Position, actions []grid.Direction) []grid.Position {
	cells := []grid.Position{start}
	pos := start
	for _, d := range actions {
		pos = pos.Move(d)
		cells = append(cells, pos)
	}
	return cells
}

// permutations returns every ordering of ps.
func permutations(ps []grid.Position) [][]grid.Position {
	if len(ps) <= 1 {
		return [][]grid.Position{append([]grid.Position(nil), ps...)}
	}
	var out [][]grid.Position
	for i := range ps {
		rest := make([]grid.Position, 0, len(ps)-1)
		rest = append(rest, ps[:i]...)
		rest = append(rest, ps[i+1:]...)
		for _, tail := range permutations(rest) {
			out = append(out, append([]grid.Position{ps[i]}, tail...))
		}
	}
	return out
}
