// Package mazepath is a search engine for Pacman-style grid mazes.
//
// It separates three concerns:
//
//	grid/      the maze itself: walls, positions, directions and the
//	           classic text layout format (% wall, . food, P start).
//	search/    problem-agnostic graph search: Depth-First, Breadth-First,
//	           Uniform-Cost, A* and Greedy-Best-First over any Problem.
//	problems/  concrete maze problems (reach a cell, visit all corners,
//	           eat all food) with their admissible heuristics and an
//	           all-pairs maze distance table.
//
// Quick example:
//
//	lay, _ := grid.Parse(text)
//	p, _ := problems.NewFoodProblemFromLayout(lay)
//	res, err := search.AStar[problems.FoodState](p, problems.FoodHeuristic(p))
//	if errors.Is(err, search.ErrNoPath) {
//		// some food is walled off
//	}
//	fmt.Println(res.Actions, res.Cost)
//
// Coordinates put (0,0) in the bottom-left corner with y growing North, so
// the first text row of a layout is the top of the maze.
//
// The library does not log. Callers observe a search through Result.Stats
// and the WithOnExpand / WithOnGoal hooks.
//
//	go get github.com/katalvlaran/mazepath
package mazepath
