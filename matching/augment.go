package matching

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

// extractor consumes one layering and applies a maximal set of
// vertex-disjoint shortest augmenting paths to the graph.
type extractor struct {
	g      *Graph
	ls     *layering
	target int
}

func newExtractor(ls *layering, target int) *extractor {
	return &extractor{g: ls.g, ls: ls, target: target}
}

// extract repeatedly searches from the free vertices of the target level,
// flips every path found into the matching and prunes the layering, until
// the target level is exhausted. Paths are returned in discovery order.
func (e *extractor) extract() []Path {
	var paths []Path

	// 1) Only free right vertices may end a path.
	for _, v := range idsOf(e.ls.levels[e.target]) {
		if _, matched := e.g.Match(v); matched {
			e.ls.remove(v)
		}
	}

	for !e.ls.levels[e.target].Empty() {
		// 2) First start vertex that reaches a free level-0 vertex wins.
		var (
			path  Path
			found bool
		)
		for _, start := range idsOf(e.ls.levels[e.target]) {
			if path, found = e.search(start, e.target); found {
				break
			}
			// A start vertex that cannot reach level 0 never will this phase.
			e.deleteCascade([]VertexID{start})
		}
		if !found {
			break
		}

		// 3) Flip and 4) record.
		e.flip(path)
		paths = append(paths, path)

		// 5) The path's vertices and every vertex left without a live
		//    predecessor leave the layering.
		e.deleteCascade(path)
	}

	return paths
}

// search walks from id on level down to a free vertex of level 0 and
// returns the vertices visited, id first.
func (e *extractor) search(id VertexID, level int) (Path, bool) {
	if level == 0 {
		if _, matched := e.g.Match(id); matched {
			return nil, false
		}
		return Path{id}, true
	}

	for _, next := range e.below(id, level) {
		if rest, ok := e.search(next, level-1); ok {
			return append(Path{id}, rest...), true
		}
	}

	return nil, false
}

// below lists the live vertices on level-1 that id may step down to. A left
// vertex was leveled through its partner, so its only step is back to it;
// a right vertex may step to any live left neighbor one level down.
func (e *extractor) below(id VertexID, level int) []VertexID {
	g := e.g
	if g.vertices[id].side == Left {
		mate, matched := g.Match(id)
		if !matched {
			return nil
		}
		if lvl, ok := g.level(mate); ok && lvl == level-1 {
			return []VertexID{mate}
		}
		return nil
	}

	var out []VertexID
	for _, u := range idsOf(g.vertices[id].adj) {
		if lvl, ok := g.level(u); ok && lvl == level-1 {
			out = append(out, u)
		}
	}

	return out
}

// flip matches consecutive pairs of path, which turns its alternating
// edges inside out and grows the matching by one.
func (e *extractor) flip(path Path) {
	for i := 0; i+1 < len(path); i += 2 {
		e.g.setMatch(path[i], path[i+1])
	}
}

// deleteCascade removes seeds from the layering. Each removal decrements
// the live predecessor count of the vertex's successors on the next level;
// successors that reach zero are queued and removed in turn.
func (e *extractor) deleteCascade(seeds []VertexID) {
	queue := linkedlistqueue.New()
	for _, id := range seeds {
		queue.Enqueue(id)
	}

	for !queue.Empty() {
		raw, _ := queue.Dequeue()
		id := raw.(VertexID)

		lvl, ok := e.g.level(id)
		if !ok {
			// Already pruned through another predecessor.
			continue
		}
		for _, succ := range e.successors(id, lvl) {
			ps := &e.g.vertices[succ].phase
			ps.indegree--
			if ps.indegree == 0 {
				queue.Enqueue(succ)
			}
		}
		e.ls.remove(id)
	}
}

// successors lists the live vertices on level+1 that were reached from id
// while layering: through non-matching edges for a left vertex and through
// the matching edge for a right vertex.
func (e *extractor) successors(id VertexID, level int) []VertexID {
	g := e.g
	mate, _ := g.Match(id)

	if g.vertices[id].side == Right {
		if mate == NoVertex {
			return nil
		}
		if lvl, ok := g.level(mate); ok && lvl == level+1 {
			return []VertexID{mate}
		}
		return nil
	}

	var out []VertexID
	for _, v := range idsOf(g.vertices[id].adj) {
		if v == mate {
			continue
		}
		if lvl, ok := g.level(v); ok && lvl == level+1 {
			out = append(out, v)
		}
	}

	return out
}
