package search_test

import (
	"github.com/katalvlaran/mazepath/grid"
	"github.com/katalvlaran/mazepath/search"
)

// arc is one labelled, weighted edge of a graphProblem.
type arc struct {
	to   string
	cost float64
}

// graphProblem is a small explicit state graph whose edges are labelled with
// directions, so action sequences can be re-walked by Cost.
type graphProblem struct {
	start string
	goals map[string]bool
	arcs  map[string]map[grid.Direction]arc
}

func newGraphProblem(start string, goals ...string) *graphProblem {
	g := &graphProblem{
		start: start,
		goals: make(map[string]bool, len(goals)),
		arcs:  make(map[string]map[grid.Direction]arc),
	}
	for _, goal := range goals {
		g.goals[goal] = true
	}
	return g
}

func (g *graphProblem) link(from string, d grid.Direction, to string, cost float64) *graphProblem {
	if g.arcs[from] == nil {
		g.arcs[from] = make(map[grid.Direction]arc)
	}
	g.arcs[from][d] = arc{to: to, cost: cost}
	return g
}

func (g *graphProblem) Start() string { return g.start }

func (g *graphProblem) IsGoal(s string) bool { return g.goals[s] }

func (g *graphProblem) Successors(s string) []search.Transition[string] {
	var out []search.Transition[string]
	for _, d := range grid.Cardinal {
		if a, ok := g.arcs[s][d]; ok {
			out = append(out, search.Transition[string]{State: a.to, Action: d, Cost: a.cost})
		}
	}
	return out
}

func (g *graphProblem) Cost(actions []grid.Direction) float64 {
	cur, total := g.start, 0.0
	for _, d := range actions {
		a, ok := g.arcs[cur][d]
		if !ok {
			return search.IllegalCost
		}
		cur, total = a.to, total+a.cost
	}
	return total
}

// diamond builds the reference graph used across tests:
//
//	      C ──E(5)── G
//	      │N(1)    ╱ │
//	      A ─E(10)╱  │N(1)
//	      │N(1)      │
//	      S ──E(4)── B
//
// Cheapest S→G is S→B→G (cost 5); the first two-step path breadth-first
// reaches is S→A→G (cost 11).
func diamond() *graphProblem {
	return newGraphProblem("S", "G").
		link("S", grid.North, "A", 1).
		link("S", grid.East, "B", 4).
		link("A", grid.North, "C", 1).
		link("A", grid.East, "G", 10).
		link("B", grid.North, "G", 1).
		link("C", grid.East, "G", 5)
}

// consistentDiamondH is a consistent heuristic for diamond().
func consistentDiamondH(s string) float64 {
	return map[string]float64{"S": 5, "A": 5, "B": 1, "C": 5, "G": 0}[s]
}
