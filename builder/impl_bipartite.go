// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1,n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left names "{leftPrefix}{idFn(i)}", i=0..n1-1; right "{rightPrefix}{idFn(j)}".
//   • Emits every cross pair L_i–R_j.
//
// Complexity:
//   • Time: O(n1·n2 · log(n1+n2)) edge insertions into ordered adjacency.
//
// Determinism:
//   • Deterministic names via (prefix, index); emission order i asc, j asc.

package builder

import (
	"github.com/vegri/HopcroftKarpAlgorithm/matching"
)

const methodCompleteBipartite = "CompleteBipartite"

// CompleteBipartite returns a Constructor for the complete bipartite graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *matching.Graph, cfg builderConfig) error {
		if err := validatePartition(methodCompleteBipartite, n1, n2); err != nil {
			return err
		}

		for i := 0; i < n1; i++ {
			u := cfg.leftName(i)
			for j := 0; j < n2; j++ {
				if err := addEdge(g, methodCompleteBipartite, u, cfg.rightName(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
