// Package matching computes maximum-cardinality matchings in bipartite graphs
// with the Hopcroft–Karp phase algorithm.
//
// What
//
//   - Graph: an arena of vertices addressed by stable VertexID indices.
//     Every vertex belongs to exactly one Side (Left or Right); edges only
//     connect opposite sides and insertion is idempotent.
//   - HopcroftKarp(g, opts...): repeats phases until no augmenting path
//     remains and returns a Result with every augmenting path in discovery
//     order. The matching itself lives on the Graph (Graph.Match).
//
// How a phase works
//
//  1. Layering: all unmatched left vertices form level 0. From each even
//     level i, every non-matching edge leads to level i+1. If level i+1 holds
//     an unmatched right vertex it becomes the target level L; otherwise
//     every right vertex of level i+1 is matched and its partner forms level
//     i+2. An empty level ends the whole computation.
//  2. Extraction: from each free vertex of level L a depth-first search walks
//     back to level 0 through still-live vertices. Each path found is flipped
//     into the matching and its vertices leave the layering. Every vertex
//     keeps a count of live predecessors; when it drops to zero the vertex is
//     pruned as well, cascading through a work queue. This keeps the paths
//     of one phase vertex-disjoint and shortest.
//
// Determinism
//
//	Vertices are ordered by name within their side. Levels and adjacency are
//	iterated in that order, so a fixed graph always yields the same paths and
//	the same final matching.
//
// Complexity (V = |Vertices|, E = |Edges|)
//
//   - Phases: O(√V)
//   - Per phase: O(E log V) (ordered sets add the log factor)
//   - Memory: O(V + E)
//
// Concurrency
//
//	A Graph is not safe for concurrent use. Independent graphs may be solved
//	in parallel without synchronization.
//
// Usage
//
//	g := matching.NewGraph()
//	_ = g.AddEdge("alice", "1")
//	_ = g.AddEdge("bob", "1")
//	_ = g.AddEdge("bob", "2")
//
//	res, err := matching.HopcroftKarp(g)
//	if err != nil {
//		// ErrGraphNil or ErrOptionViolation
//	}
//	for _, p := range res.Pairs() {
//		fmt.Println(p.Left, p.Right)
//	}
//
// Errors
//
//	ErrGraphNil          - nil *Graph passed to HopcroftKarp.
//	ErrEmptyVertexName   - AddLeft/AddRight/AddEdge with an empty name.
//	ErrVertexNotFound    - unknown VertexID.
//	ErrSameSide          - AddEdgeByID with both endpoints on one side.
//	ErrOptionViolation   - invalid functional option.
//	ErrInvalidMatching   - ValidateMatching found a broken match relation.
package matching
