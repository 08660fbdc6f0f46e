package search

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/mazepath/grid"
)

// node is an immutable frontier entry. The path to it is held implicitly by
// the parent chain, so extending a path never copies or mutates an ancestor.
type node[S comparable] struct {
	state  S
	parent *node[S]
	action grid.Direction
	cost   float64 // cumulative step cost from the start
	depth  int
}

// actions rebuilds the action sequence from the start node to n.
// The start node yields an empty, non-nil slice.
func (n *node[S]) actions() []grid.Direction {
	out := make([]grid.Direction, n.depth)
	for cur := n; cur.parent != nil; cur = cur.parent {
		out[cur.depth-1] = cur.action
	}
	return out
}

// keyFunc computes the frontier key of a freshly created child node.
type keyFunc[S comparable] func(child *node[S]) float64

// walker encapsulates the mutable state of a single search run.
// It is owned by one invocation and discarded at return.
type walker[S comparable] struct {
	problem  Problem[S]
	opts     Options[S]
	frontier Frontier[*node[S]]
	explored mapset.Set[S]
	key      keyFunc[S]
	stats    Stats
}

func newWalker[S comparable](p Problem[S], f Frontier[*node[S]], key keyFunc[S], opts []Option[S]) (*walker[S], error) {
	if p == nil {
		return nil, ErrNilProblem
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return &walker[S]{
		problem:  p,
		opts:     o,
		frontier: f,
		explored: mapset.New[S](),
		key:      key,
	}, nil
}

// seed pushes the start node.
func (w *walker[S]) seed() {
	root := &node[S]{state: w.problem.Start()}
	w.push(root, w.key(root))
}

func (w *walker[S]) push(n *node[S], key float64) {
	w.frontier.Push(n, key)
	w.stats.Pushed++
	if l := w.frontier.Len(); l > w.stats.MaxFrontier {
		w.stats.MaxFrontier = l
	}
}

// expand marks n explored and pushes one child per successor whose state is
// not yet explored. Returns ErrExpansionLimit or ErrNegativeCost on failure.
func (w *walker[S]) expand(n *node[S]) error {
	if w.opts.MaxExpansions > 0 && w.stats.Expanded >= w.opts.MaxExpansions {
		return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, w.stats.Expanded)
	}
	w.explored.Put(n.state)
	w.opts.OnExpand(n.state)
	w.stats.Expanded++

	for _, t := range w.problem.Successors(n.state) {
		if t.Cost < 0 {
			return fmt.Errorf("%w: %v via %s costs %v", ErrNegativeCost, t.State, t.Action, t.Cost)
		}
		if w.explored.Has(t.State) {
			continue
		}
		child := &node[S]{
			state:  t.State,
			parent: n,
			action: t.Action,
			cost:   n.cost + t.Cost,
			depth:  n.depth + 1,
		}
		w.push(child, w.key(child))
	}
	return nil
}

// firstGoal runs the shared pop/goal-test/expand loop and returns the first
// popped node that passes the goal test. The goal test happens at pop time for
// every node, duplicates included; explored states are never re-expanded.
func (w *walker[S]) firstGoal() (*Result, error) {
	w.seed()
	for {
		n, ok := w.frontier.Pop()
		if !ok {
			return w.failure(ErrNoPath)
		}
		if w.problem.IsGoal(n.state) {
			w.opts.OnGoal(n.state, n.cost)
			return w.success(n), nil
		}
		if w.explored.Has(n.state) {
			continue
		}
		if err := w.expand(n); err != nil {
			return w.failure(err)
		}
	}
}

func (w *walker[S]) success(n *node[S]) *Result {
	return &Result{Actions: n.actions(), Cost: n.cost, Stats: w.stats}
}

// failure returns the run's Stats alongside err so callers can still inspect effort.
func (w *walker[S]) failure(err error) (*Result, error) {
	return &Result{Stats: w.stats}, err
}
