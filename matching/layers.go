package matching

import (
	"github.com/emirpasic/gods/sets/treeset"
)

// layering is the per-phase level structure. levels[i] holds the vertices
// at level i ordered by name; even levels are left vertices, odd levels right.
type layering struct {
	g      *Graph
	levels []*treeset.Set
}

func newLayering(g *Graph) *layering {
	return &layering{g: g}
}

// add places id on level with the given live predecessor count.
func (ls *layering) add(id VertexID, level, indegree int) {
	for len(ls.levels) <= level {
		ls.levels = append(ls.levels, treeset.NewWith(ls.g.compareNames))
	}
	ls.levels[level].Add(id)
	ls.g.setLevel(id, level, indegree)
}

// remove takes id out of its level and marks it pruned for the phase.
func (ls *layering) remove(id VertexID) {
	if lvl, ok := ls.g.level(id); ok {
		ls.levels[lvl].Remove(id)
	}
	ls.g.prune(id)
}

// build lays out the shortest alternating paths from all unmatched left
// vertices. It returns the first level holding an unmatched right vertex,
// or ok == false when no augmenting path exists.
//
// Steps:
//  1. Clear the phase state of every vertex.
//  2. Unmatched left vertices form level 0; none means the matching is final.
//  3. For each even level i, every non-matching edge u→v reaches level i+1.
//     v is leveled on first sight; its predecessor count grows with every
//     edge from level i.
//  4. A free vertex on level i+1 ends the layering with target i+1.
//  5. Otherwise each matched vertex of level i+1 contributes its partner to
//     level i+2 with predecessor count 1, and layering continues from i+2.
//  6. An empty level ends the layering without a target.
//
// Complexity: O((V + E) log V).
func (ls *layering) build() (target int, ok bool) {
	g := ls.g

	// 1) Phase-local state starts empty.
	g.clearLevels()
	ls.levels = ls.levels[:0]

	// 2) Seed level 0.
	for _, u := range g.Left() {
		if _, matched := g.Match(u); !matched {
			ls.add(u, 0, 0)
		}
	}
	if len(ls.levels) == 0 {
		return 0, false
	}

	for i := 0; ; i += 2 {
		// 3) Even level i → odd level i+1 over non-matching edges.
		for _, u := range idsOf(ls.levels[i]) {
			mate, _ := g.Match(u)
			for _, v := range idsOf(g.vertices[u].adj) {
				if v == mate {
					continue
				}
				if g.isUnleveled(v) {
					ls.add(v, i+1, 0)
				}
				if lvl, leveledNow := g.level(v); leveledNow && lvl == i+1 {
					g.vertices[v].phase.indegree++
				}
			}
		}
		if len(ls.levels) <= i+1 || ls.levels[i+1].Empty() {
			return 0, false
		}

		// 4) A free right vertex makes i+1 the target.
		if ls.hasFree(i + 1) {
			return i + 1, true
		}

		// 5) Every right vertex of i+1 is matched: hop to the partners.
		for _, v := range idsOf(ls.levels[i+1]) {
			mate := g.vertices[v].match
			if g.isUnleveled(mate) {
				ls.add(mate, i+2, 1)
			}
		}
		// 6) Nothing new to explore.
		if len(ls.levels) <= i+2 || ls.levels[i+2].Empty() {
			return 0, false
		}
	}
}

// hasFree reports whether level holds an unmatched vertex.
func (ls *layering) hasFree(level int) bool {
	it := ls.levels[level].Iterator()
	for it.Next() {
		if _, matched := ls.g.Match(it.Value().(VertexID)); !matched {
			return true
		}
	}

	return false
}
