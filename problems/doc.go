// Package problems formulates maze navigation tasks as search.Problem values
// and supplies the heuristics that drive informed search over them.
//
// Problems:
//
//   - PositionProblem: reach one target cell. State = grid.Position.
//   - AnyFoodProblem:  reach whichever food cell is nearest. State = grid.Position.
//   - CornersProblem:  visit the four inner corners in any order.
//     State = CornersState{Pos, Remaining bitmask}.
//   - FoodProblem:     collect every food cell in any order.
//     State = FoodState{Pos, Food FoodSet}.
//
// States are plain comparable values. "Remaining" sets are immutable
// snapshots, so a state never changes after it has been pushed to a frontier.
//
// Heuristics:
//
//   - ManhattanHeuristic / EuclideanHeuristic for PositionProblem.
//   - CornersHeuristic: cheapest Manhattan tour through the remaining corners,
//     by brute force over all orderings (at most 4! = 24).
//   - FoodHeuristic: largest true maze distance from the agent to any remaining
//     food, read from a DistanceOracle built once per FoodProblem.
//
// All heuristics are admissible and consistent for unit step costs.
//
// Errors:
//
//   - ErrNilGrid:          no grid supplied.
//   - ErrStartBlocked:     start cell is a wall or outside the grid.
//   - ErrGoalBlocked:      goal cell is a wall or outside the grid.
//   - ErrCornerBlocked:    a corner cell is a wall.
//   - ErrFoodBlocked:      a food cell is a wall or outside the grid.
//   - ErrUnknownHeuristic: HeuristicKind outside the enumeration.
//
// Construction errors are reported by the constructors; they are never
// discovered mid-search. Cost never fails: an illegal action sequence costs
// search.IllegalCost.
package problems
