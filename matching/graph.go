// File: graph.go
// Role: bipartite graph model. Vertex arena, side indexes, symmetric ordered
//       adjacency and the match relation.
// Determinism:
//   - Left(), Right() and Neighbors() return IDs ordered by vertex name.
// Concurrency:
//   - None. A Graph is owned by one computation at a time.

package matching

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// vertex is one arena slot. adj holds neighbor IDs ordered by name.
type vertex struct {
	name  string
	side  Side
	adj   *treeset.Set
	match VertexID
	phase phaseState
}

// Graph is a bipartite graph together with its current matching.
//
// Vertices are created once and never removed; edges only connect opposite
// sides. The match relation is kept symmetric: Match(u) == v ⇔ Match(v) == u.
type Graph struct {
	vertices []vertex
	byName   [2]map[string]VertexID
	sides    [2]*treeset.Set
	edges    int
}

// NewGraph creates an empty bipartite graph.
// Complexity: O(1)
func NewGraph() *Graph {
	g := &Graph{
		byName: [2]map[string]VertexID{
			Left:  make(map[string]VertexID),
			Right: make(map[string]VertexID),
		},
	}
	g.sides[Left] = treeset.NewWith(g.compareNames)
	g.sides[Right] = treeset.NewWith(g.compareNames)

	return g
}

// compareNames orders VertexIDs by vertex name. It is only ever applied to
// IDs of one side, where names are unique, so it is a total order.
func (g *Graph) compareNames(a, b interface{}) int {
	return strings.Compare(g.vertices[a.(VertexID)].name, g.vertices[b.(VertexID)].name)
}

// AddLeft adds a left vertex named name, or returns the existing one.
func (g *Graph) AddLeft(name string) (VertexID, error) {
	return g.addVertex(Left, name)
}

// AddRight adds a right vertex named name, or returns the existing one.
func (g *Graph) AddRight(name string) (VertexID, error) {
	return g.addVertex(Right, name)
}

func (g *Graph) addVertex(side Side, name string) (VertexID, error) {
	if name == "" {
		return NoVertex, ErrEmptyVertexName
	}
	if id, ok := g.byName[side][name]; ok {
		return id, nil
	}

	id := VertexID(len(g.vertices))
	g.vertices = append(g.vertices, vertex{
		name:  name,
		side:  side,
		adj:   treeset.NewWith(g.compareNames),
		match: NoVertex,
	})
	g.byName[side][name] = id
	g.sides[side].Add(id)

	return id, nil
}

// AddEdge connects the left vertex left with the right vertex right,
// creating either vertex if needed. Inserting an existing edge is a no-op.
func (g *Graph) AddEdge(left, right string) error {
	u, err := g.AddLeft(left)
	if err != nil {
		return fmt.Errorf("AddEdge(%q, %q): %w", left, right, err)
	}
	v, err := g.AddRight(right)
	if err != nil {
		return fmt.Errorf("AddEdge(%q, %q): %w", left, right, err)
	}

	return g.AddEdgeByID(u, v)
}

// AddEdgeByID connects two existing vertices of opposite sides.
// Inserting an existing edge is a no-op.
//
// Errors: ErrVertexNotFound, ErrSameSide.
func (g *Graph) AddEdgeByID(u, v VertexID) error {
	if !g.valid(u) || !g.valid(v) {
		return fmt.Errorf("AddEdgeByID(%d, %d): %w", u, v, ErrVertexNotFound)
	}
	if g.vertices[u].side == g.vertices[v].side {
		return fmt.Errorf("AddEdgeByID(%q, %q): %w", g.vertices[u].name, g.vertices[v].name, ErrSameSide)
	}
	if g.vertices[u].adj.Contains(v) {
		return nil
	}

	// Symmetric insertion keeps adjacency undirected.
	g.vertices[u].adj.Add(v)
	g.vertices[v].adj.Add(u)
	g.edges++

	return nil
}

func (g *Graph) valid(id VertexID) bool {
	return id >= 0 && int(id) < len(g.vertices)
}

// Lookup returns the ID of the vertex named name on side.
func (g *Graph) Lookup(side Side, name string) (VertexID, bool) {
	if side != Left && side != Right {
		return NoVertex, false
	}
	id, ok := g.byName[side][name]

	return id, ok
}

// Name returns the name of id, or "" if id is unknown.
func (g *Graph) Name(id VertexID) string {
	if !g.valid(id) {
		return ""
	}

	return g.vertices[id].name
}

// Side returns the side of id. The result is meaningless for unknown IDs.
func (g *Graph) Side(id VertexID) Side {
	if !g.valid(id) {
		return Left
	}

	return g.vertices[id].side
}

// Left returns all left vertices ordered by name.
func (g *Graph) Left() []VertexID { return idsOf(g.sides[Left]) }

// Right returns all right vertices ordered by name.
func (g *Graph) Right() []VertexID { return idsOf(g.sides[Right]) }

// Neighbors returns the neighbors of id ordered by name.
func (g *Graph) Neighbors(id VertexID) ([]VertexID, error) {
	if !g.valid(id) {
		return nil, fmt.Errorf("Neighbors(%d): %w", id, ErrVertexNotFound)
	}

	return idsOf(g.vertices[id].adj), nil
}

// HasEdge reports whether u and v are adjacent.
func (g *Graph) HasEdge(u, v VertexID) bool {
	// Adjacency sets compare by name, which is only unique within a side.
	if !g.valid(u) || !g.valid(v) || g.vertices[u].side == g.vertices[v].side {
		return false
	}

	return g.vertices[u].adj.Contains(v)
}

// Degree returns the number of neighbors of id (0 for unknown IDs).
func (g *Graph) Degree(id VertexID) int {
	if !g.valid(id) {
		return 0
	}

	return g.vertices[id].adj.Size()
}

// Order returns the number of vertices on both sides.
func (g *Graph) Order() int { return len(g.vertices) }

// Size returns the number of edges.
func (g *Graph) Size() int { return g.edges }

// Match returns the partner of id, if any.
func (g *Graph) Match(id VertexID) (VertexID, bool) {
	if !g.valid(id) {
		return NoVertex, false
	}
	m := g.vertices[id].match

	return m, m != NoVertex
}

// setMatch links u and v as partners. Both must already be unlinked from
// any previous partner or be relinked as part of a path flip.
func (g *Graph) setMatch(u, v VertexID) {
	g.vertices[u].match = v
	g.vertices[v].match = u
}

// ResetMatching unmatches every vertex so the graph can be solved again
// from scratch.
func (g *Graph) ResetMatching() {
	for i := range g.vertices {
		g.vertices[i].match = NoVertex
	}
	g.clearLevels()
}

// ValidateMatching checks that the match relation is symmetric, connects
// opposite sides and uses only edges of the graph.
func (g *Graph) ValidateMatching() error {
	for i := range g.vertices {
		u := VertexID(i)
		v := g.vertices[i].match
		if v == NoVertex {
			continue
		}
		switch {
		case !g.valid(v):
			return fmt.Errorf("%w: %q matched to unknown vertex %d", ErrInvalidMatching, g.vertices[i].name, v)
		case g.vertices[v].match != u:
			return fmt.Errorf("%w: %q→%q is not symmetric", ErrInvalidMatching, g.vertices[i].name, g.vertices[v].name)
		case g.vertices[v].side == g.vertices[i].side:
			return fmt.Errorf("%w: %q and %q on the same side", ErrInvalidMatching, g.vertices[i].name, g.vertices[v].name)
		case !g.vertices[i].adj.Contains(v):
			return fmt.Errorf("%w: %q and %q are not adjacent", ErrInvalidMatching, g.vertices[i].name, g.vertices[v].name)
		}
	}

	return nil
}

// idsOf snapshots an ordered set of VertexIDs.
func idsOf(s *treeset.Set) []VertexID {
	out := make([]VertexID, 0, s.Size())
	it := s.Iterator()
	for it.Next() {
		out = append(out, it.Value().(VertexID))
	}

	return out
}
