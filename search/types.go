package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/grid"
)

// IllegalCost is the path cost reported for an action sequence that walks
// into a wall or off the maze. It is a value, not an error.
const IllegalCost = 999999

// Sentinel errors for search execution.
var (
	// ErrNoPath is returned when the frontier empties without reaching a goal.
	ErrNoPath = errors.New("search: no path found")

	// ErrNilProblem is returned if a nil Problem is passed.
	ErrNilProblem = errors.New("search: problem is nil")

	// ErrNegativeCost is returned when a successor has a negative step cost.
	ErrNegativeCost = errors.New("search: negative step cost")

	// ErrExpansionLimit is returned when WithMaxExpansions is exceeded.
	ErrExpansionLimit = errors.New("search: expansion limit reached")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrUnknownAlgorithm is returned by Run for an undefined Algorithm.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")
)

// Problem is the contract every search problem satisfies.
// States must be comparable so they can live in the Explored set.
//
// Successors must not mutate shared state. Cost re-walks actions from Start
// and returns IllegalCost if any prefix is illegal.
type Problem[S comparable] interface {
	Start() S
	IsGoal(state S) bool
	Successors(state S) []Transition[S]
	Cost(actions []grid.Direction) float64
}

// Transition is one successor of a state: where the action leads and what it costs.
type Transition[S comparable] struct {
	State  S
	Action grid.Direction
	Cost   float64
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must be non-negative and zero at goals. Heuristics that need problem data
// close over the problem when they are built.
type Heuristic[S comparable] func(state S) float64

// NullHeuristic returns the trivial heuristic h(n) = 0.
func NullHeuristic[S comparable]() Heuristic[S] {
	return func(S) float64 { return 0 }
}

// Stats reports search diagnostics. They describe effort only; the path and
// its cost are the normative output.
type Stats struct {
	// Expanded counts states whose successors were generated.
	Expanded int
	// Pushed counts frontier insertions, including the start node.
	Pushed int
	// MaxFrontier is the largest frontier size observed.
	MaxFrontier int
}

// Result is a finished search: the action sequence from the start state to a
// goal, its accumulated step cost, and the run's Stats.
type Result struct {
	Actions []grid.Direction
	Cost    float64
	Stats   Stats
}

// Option configures a search run via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation.
type Option[S comparable] func(*Options[S])

// Options holds hooks and limits for a search run.
type Options[S comparable] struct {
	// OnExpand is called with each state right before its successors are generated.
	OnExpand func(state S)

	// OnGoal is called with each goal state popped from the frontier and the
	// cumulative cost of the path that reached it.
	OnGoal func(state S, cost float64)

	// MaxExpansions, if > 0, aborts the run with ErrExpansionLimit once this
	// many states have been expanded. Zero means no limit.
	MaxExpansions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no-op hooks and no expansion limit.
func DefaultOptions[S comparable]() Options[S] {
	return Options[S]{
		OnExpand:      func(S) {},
		OnGoal:        func(S, float64) {},
		MaxExpansions: 0,
	}
}

// WithOnExpand registers a callback to run before each expansion.
func WithOnExpand[S comparable](fn func(state S)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithOnGoal registers a callback to run whenever a goal state is popped.
func WithOnGoal[S comparable](fn func(state S, cost float64)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnGoal = fn
		}
	}
}

// WithMaxExpansions caps the number of expansions.
//
//	n > 0: abort after n expansions
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxExpansions[S comparable](n int) Option[S] {
	return func(o *Options[S]) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

func buildOptions[S comparable](opts []Option[S]) (Options[S], error) {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}
