// Package builder provides deterministic, functional-options style
// constructors that populate a *matching.Graph.
//
// The package offers:
//
//   - One orchestrator: BuildGraph(bopts, cons...) creates a graph, resolves
//     the configuration and applies every Constructor in order.
//   - Constructors:
//     – CompleteBipartite(n1, n2): every left vertex adjacent to every right one.
//     – RandomBipartite(n1, n2, p): each cross pair kept with probability p.
//     – Edges(pairs...): an explicit edge list.
//     – Exclusions(n, records): availability graph of the exam-date problem;
//     each record names a left vertex and the right indices 1..n it must avoid.
//   - Options:
//     – WithIDScheme / WithExcelColumnIDs / WithDefaultIDs: index → name.
//     – WithPartitionPrefix(left, right): side prefixes ("L"/"R" by default).
//     – WithSeed / WithRand: RNG for stochastic constructors.
//
// Guarantees:
//
//   - Determinism: same options, seed and constructor order ⇒ identical graphs.
//   - Idempotence: edge insertion never duplicates an edge, so re-running a
//     constructor on the same graph adds nothing.
//   - Constructors return sentinel errors wrapped with the method name; they
//     never panic. Option constructors panic on meaningless input.
//
// Errors:
//
//	ErrTooFewVertices     - a size parameter is below its minimum.
//	ErrInvalidProbability - p outside [0,1].
//	ErrNeedRandSource     - stochastic constructor without RNG.
//	ErrIndexOutOfRange    - an exclusion index outside 1..n.
//	ErrConstructFailed    - nil constructor or graph insertion failure.
package builder
