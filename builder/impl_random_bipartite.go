// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_random_bipartite.go - implementation of RandomBipartite(n1, n2, p).
//
// Model:
//   - Each cross pair (L_i, R_j) is kept independently with probability p.
//
// Contract:
//   - n1 ≥ 1, n2 ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//   - Every vertex is added, including isolated ones.
//
// Determinism:
//   - Stable trial order: i asc, j asc. Fixed seed ⇒ fixed graph.

package builder

import (
	"fmt"

	"github.com/vegri/HopcroftKarpAlgorithm/matching"
)

const methodRandomBipartite = "RandomBipartite"

// RandomBipartite returns a Constructor that samples a random bipartite
// graph with n1 left and n2 right vertices and edge probability p.
func RandomBipartite(n1, n2 int, p float64) Constructor {
	return func(g *matching.Graph, cfg builderConfig) error {
		// 1) Validate parameters before any mutation.
		if err := validatePartition(methodRandomBipartite, n1, n2); err != nil {
			return err
		}
		if err := validateProbability(methodRandomBipartite, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomBipartite, ErrNeedRandSource)
		}

		// 2) Isolated vertices still belong to the graph.
		for i := 0; i < n1; i++ {
			if _, err := g.AddLeft(cfg.leftName(i)); err != nil {
				return fmt.Errorf("%s: %w: %w", methodRandomBipartite, err, ErrConstructFailed)
			}
		}
		for j := 0; j < n2; j++ {
			if _, err := g.AddRight(cfg.rightName(j)); err != nil {
				return fmt.Errorf("%s: %w: %w", methodRandomBipartite, err, ErrConstructFailed)
			}
		}

		// 3) Bernoulli trial per cross pair.
		for i := 0; i < n1; i++ {
			u := cfg.leftName(i)
			for j := 0; j < n2; j++ {
				keep := p == probMax
				if cfg.rng != nil && p > probMin && p < probMax {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err := addEdge(g, methodRandomBipartite, u, cfg.rightName(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
