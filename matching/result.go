package matching

import (
	"strings"
)

// Result is the outcome of HopcroftKarp.
//
// Paths lists the augmenting paths in discovery order; Phases counts the
// phases that applied at least one of them. The final matching is read from
// the graph the result was computed on.
type Result struct {
	Paths  []Path
	Phases int

	graph *Graph
}

// Graph returns the graph the result refers to.
func (r *Result) Graph() *Graph { return r.graph }

// Size returns the number of matched pairs.
func (r *Result) Size() int {
	n := 0
	for _, u := range r.graph.Left() {
		if _, ok := r.graph.Match(u); ok {
			n++
		}
	}

	return n
}

// Pairs returns every matched pair ordered by left vertex name.
func (r *Result) Pairs() []Pair {
	g := r.graph
	var out []Pair
	for _, u := range g.Left() {
		if v, ok := g.Match(u); ok {
			out = append(out, Pair{Left: g.Name(u), Right: g.Name(v)})
		}
	}

	return out
}

// Unmatched returns the names of left vertices without a partner, ordered
// by name.
func (r *Result) Unmatched() []string {
	g := r.graph
	var out []string
	for _, u := range g.Left() {
		if _, ok := g.Match(u); !ok {
			out = append(out, g.Name(u))
		}
	}

	return out
}

// Endpoints pairs the two ends of every augmenting path, in discovery
// order. Pairs formed inside longer paths of later phases are not reported,
// and an endpoint pair may have been rematched since; use Pairs for the
// final matching.
func (r *Result) Endpoints() []Pair {
	g := r.graph
	out := make([]Pair, 0, len(r.Paths))
	for _, p := range r.Paths {
		out = append(out, Pair{Left: g.Name(p.Last()), Right: g.Name(p.First())})
	}

	return out
}

// describe renders a path as "name-name-...".
func (g *Graph) describe(p Path) string {
	names := make([]string, len(p))
	for i, id := range p {
		names[i] = g.Name(id)
	}

	return strings.Join(names, "-")
}
