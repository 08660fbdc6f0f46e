// Package search implements frontier-based graph search over abstract
// search problems: Depth-First, Breadth-First, Uniform-Cost, A* and
// Greedy-Best-First.
//
// A Problem describes a state space: a start state, a goal test, a successor
// generator and a path-cost function that re-derives legality from scratch.
// Every algorithm pulls a node from a Frontier, asks the Problem whether it is
// a goal, and otherwise expands it, pushing one child node per successor.
// Nodes are immutable once pushed; the action sequence of a node is recovered
// through parent links only when a goal is returned.
//
// Frontier disciplines:
//
//   - DepthFirst:      LIFO stack.
//   - BreadthFirst:    FIFO queue.
//   - UniformCost:     priority by cumulative cost g(n).
//   - AStar:           priority by g(n) + h(n).
//   - GreedyBestFirst: priority by h(n) alone.
//
// Equal priorities are served in insertion order.
//
// Termination:
//
//   - DepthFirst, BreadthFirst, AStar and GreedyBestFirst return the first
//     popped node that passes the goal test.
//   - UniformCost keeps popping after a goal, recording the cheapest goal seen,
//     and stops once the frontier head costs more than that goal.
//
// Every state is expanded at most once per run (Explored set), so all
// algorithms terminate on finite state spaces.
//
// Complexity (S = reachable states, B = max successors per state):
//
//   - Time:   O(S·B·log(S·B)) for the priority disciplines, O(S·B) otherwise.
//   - Memory: O(S·B) frontier entries plus O(S) explored states.
//
// Options:
//
//   - WithOnExpand(fn):      called with each state right before it is expanded.
//   - WithOnGoal(fn):        called with each goal state popped and its cost.
//   - WithMaxExpansions(n):  abort with ErrExpansionLimit after n expansions.
//
// Errors:
//
//   - ErrNoPath:          the frontier emptied without reaching a goal.
//   - ErrNilProblem:      a nil Problem was supplied.
//   - ErrNegativeCost:    a successor reported a step cost below zero.
//   - ErrExpansionLimit:  WithMaxExpansions was exceeded.
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrUnknownAlgorithm: Run was given an Algorithm outside the enumeration.
package search
