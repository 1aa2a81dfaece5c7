// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Constructors attach the method name with %w wrapping.
//   • Constructors never panic; option constructors may.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, n2) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrIndexOutOfRange indicates a right-vertex index outside 1..n in an
// exclusion record.
var ErrIndexOutOfRange = errors.New("builder: index out of range")

// ErrConstructFailed indicates that a constructor could not insert into the
// graph, or that a nil constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")
