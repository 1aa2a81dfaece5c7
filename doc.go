// Package hopcroftkarp computes maximum-cardinality matchings in
// bipartite graphs and uses them to assign exam dates.
//
// The module is organized as:
//
//	matching/          : bipartite Graph, the Hopcroft–Karp phase loop, Result views
//	builder/           : functional graph constructors
//	schedule/          : reader for the exam-date input format, matching and endpoint reports
//	internal/config/   : flag, environment and .env settings of the command
//	cmd/hopcroftkarp/  : command reading instances until end of input
//	examples/          : small runnable programs
//
// Quick start:
//
//	g := matching.NewGraph()
//	_ = g.AddEdge("ada", "1")
//	_ = g.AddEdge("bob", "1")
//	_ = g.AddEdge("bob", "2")
//	res, _ := matching.HopcroftKarp(g)
//	fmt.Println(res.Pairs()) // [{ada 1} {bob 2}]
//
// Every package returns sentinel errors that callers match with errors.Is.
package hopcroftkarp
