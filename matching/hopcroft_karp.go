package matching

import (
	"github.com/plan-systems/klog"
)

// HopcroftKarp grows the matching stored on g to maximum cardinality.
//
// It returns:
//   - res : every augmenting path applied, in discovery order, plus a view
//     of the final matching
//   - err : ErrGraphNil or ErrOptionViolation; the algorithm itself cannot fail
//
// Steps:
//  1. Validate g and resolve options.
//  2. Repeat phases:
//     a. Build the layering from the unmatched left vertices.
//     b. If no free right vertex is reachable, stop: the matching is maximum.
//     c. Extract and apply vertex-disjoint shortest augmenting paths.
//  3. Clear phase-local state and return.
//
// The matching is kept on g, so calling HopcroftKarp again on the same graph
// performs no augmentation and returns a Result without paths.
//
// Complexity:
//
//	Time:   O(√V · E log V)
//	Memory: O(V + E)
func HopcroftKarp(g *Graph, opts ...Option) (*Result, error) {
	// 1) Validate input and options.
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	res := &Result{graph: g}
	defer g.clearLevels()

	// 2) Phase loop.
	for phase := 1; o.MaxPhases == 0 || phase <= o.MaxPhases; phase++ {
		// 2a) Layering.
		ls := newLayering(g)
		target, ok := ls.build()
		// 2b) Terminal state.
		if !ok {
			if o.Verbose {
				klog.V(2).Infof("HopcroftKarp: phase %d found no augmenting path, matching size %d", phase, res.Size())
			}
			break
		}

		// 2c) Extraction.
		paths := newExtractor(ls, target).extract()
		if len(paths) == 0 {
			break
		}
		res.Paths = append(res.Paths, paths...)
		res.Phases++

		stats := PhaseStats{Phase: phase, Level: target, Paths: len(paths), Matched: res.Size()}
		if o.Verbose {
			for _, p := range paths {
				klog.V(2).Infof("HopcroftKarp: phase %d augmented %s", phase, g.describe(p))
			}
			klog.V(2).Infof("HopcroftKarp: phase %d level %d paths %d matched %d",
				stats.Phase, stats.Level, stats.Paths, stats.Matched)
		}
		o.OnPhase(stats)
	}

	return res, nil
}
