// SPDX-License-Identifier: MIT
// Package: builder
//
// impl_exclusions.go - implementation of Exclusions(n, records).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Right vertices are named "1".."n" (1-based, no prefix) and all exist
//     even if nobody can take them.
//   • Each record adds a left vertex named record.Name and edges to every
//     right index in 1..n not listed in record.Excluded.
//   • An excluded index outside 1..n fails with ErrIndexOutOfRange before
//     the graph is touched.
//   • Duplicate exclusions are harmless.
//
// Complexity:
//   • Time: O(len(records) · n · log n).

package builder

import (
	"fmt"
	"strconv"

	"github.com/vegri/HopcroftKarpAlgorithm/matching"
)

const (
	methodExclusions = "Exclusions"
	minExclusionsN   = 1
)

// Record is one availability line: a left vertex and the 1-based right
// indices it cannot be matched to.
type Record struct {
	Name     string
	Excluded []int
}

// Exclusions returns a Constructor for the availability graph of n right
// vertices "1".."n" and one left vertex per record.
func Exclusions(n int, records []Record) Constructor {
	return func(g *matching.Graph, _ builderConfig) error {
		// 1) Validate indices first so an out-of-range one leaves g untouched.
		if n < minExclusionsN {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodExclusions, n, minExclusionsN, ErrTooFewVertices)
		}
		blocked := make([]map[int]struct{}, len(records))
		for r, rec := range records {
			blocked[r] = make(map[int]struct{}, len(rec.Excluded))
			for _, idx := range rec.Excluded {
				if idx < 1 || idx > n {
					return fmt.Errorf("%s: record %q excludes %d, want 1..%d: %w",
						methodExclusions, rec.Name, idx, n, ErrIndexOutOfRange)
				}
				blocked[r][idx] = struct{}{}
			}
		}

		// 2) Right side "1".."n".
		for j := 1; j <= n; j++ {
			if _, err := g.AddRight(strconv.Itoa(j)); err != nil {
				return fmt.Errorf("%s: %w: %w", methodExclusions, err, ErrConstructFailed)
			}
		}

		// 3) One left vertex per record, adjacent to every available index.
		for r, rec := range records {
			if _, err := g.AddLeft(rec.Name); err != nil {
				return fmt.Errorf("%s: %w: %w", methodExclusions, err, ErrConstructFailed)
			}
			for j := 1; j <= n; j++ {
				if _, skip := blocked[r][j]; skip {
					continue
				}
				if err := addEdge(g, methodExclusions, rec.Name, strconv.Itoa(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
