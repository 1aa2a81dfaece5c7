// SPDX-License-Identifier: MIT
// Package: builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn        = DefaultIDFn ("0","1","2",...)
//   • rng         = nil (pure/deterministic unless seeded)
//   • left/right  = "L" / "R"

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	// Vertex name strategy: index -> name suffix.
	idFn IDFn
	// RNG for stochastic choices; nil means no randomness.
	rng *rand.Rand

	// Side prefixes. Empty → defaults resolved in newBuilderConfig.
	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L"
	defaultRightPrefix = "R"
)

// newBuilderConfig applies opts in order over the defaults (last wins).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        DefaultIDFn,
		rng:         nil,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	// Empty prefixes fall back to the defaults.
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// leftName composes the name of the i-th left vertex, e.g. "L0".
func (c builderConfig) leftName(i int) string { return c.leftPrefix + c.idFn(i) }

// rightName composes the name of the j-th right vertex, e.g. "R0".
func (c builderConfig) rightName(j int) string { return c.rightPrefix + c.idFn(j) }
