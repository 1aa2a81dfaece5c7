// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - public entry point of the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: constructors never panic; they return wrapped sentinel errors.

package builder

import (
	"fmt"

	"github.com/vegri/HopcroftKarpAlgorithm/matching"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g.
type Constructor func(g *matching.Graph, cfg builderConfig) error

// BuildGraph creates a new matching.Graph, resolves the builder
// configuration from bopts and applies all constructors in order.
// Any constructor error is wrapped as "BuildGraph: %w" and returned
// immediately; no partial cleanup is attempted.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*matching.Graph, error) {
	g := matching.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph. Because edge insertion is
// idempotent, applying the same constructor twice leaves g unchanged.
func Apply(g *matching.Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addEdge inserts one edge and tags failures with the method name.
func addEdge(g *matching.Graph, method, left, right string) error {
	if err := g.AddEdge(left, right); err != nil {
		return fmt.Errorf("%s: %w: %w", method, err, ErrConstructFailed)
	}

	return nil
}
