package matching

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and matching.
var (
	// ErrGraphNil is returned when a nil *Graph is passed to HopcroftKarp.
	ErrGraphNil = errors.New("matching: graph is nil")

	// ErrEmptyVertexName indicates that a vertex name is the empty string.
	ErrEmptyVertexName = errors.New("matching: vertex name is empty")

	// ErrVertexNotFound indicates an operation referenced an unknown VertexID.
	ErrVertexNotFound = errors.New("matching: vertex not found")

	// ErrSameSide indicates an edge whose endpoints belong to the same side.
	ErrSameSide = errors.New("matching: edge endpoints on the same side")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("matching: invalid option supplied")

	// ErrInvalidMatching is returned by ValidateMatching when the match
	// relation is not a symmetric set of edges of the graph.
	ErrInvalidMatching = errors.New("matching: invalid matching")
)

// VertexID addresses a vertex inside a Graph. IDs are dense, start at 0 and
// never change for the lifetime of the Graph.
type VertexID int

// NoVertex marks an absent vertex reference, e.g. the partner of an
// unmatched vertex.
const NoVertex VertexID = -1

// Side is one of the two vertex classes of a bipartite graph.
type Side uint8

const (
	// Left vertices seed every layering (students in the exam-date framing).
	Left Side = iota
	// Right vertices terminate augmenting paths (dates).
	Right
)

// Opposite returns the other side.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}

	return Left
}

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Path is an augmenting path, stored from its free right endpoint (the
// target level) down to its free left endpoint (level 0). It always has an
// even number of vertices; after augmentation Path[2k] is matched to Path[2k+1].
type Path []VertexID

// First returns the right endpoint of the path.
func (p Path) First() VertexID { return p[0] }

// Last returns the left endpoint of the path.
func (p Path) Last() VertexID { return p[len(p)-1] }

// Pair is one matched edge, reported by vertex names.
type Pair struct {
	Left  string
	Right string
}

// PhaseStats summarizes one completed phase.
type PhaseStats struct {
	// Phase is the 1-based phase index.
	Phase int
	// Level is the target level L of the layering (length of the paths found).
	Level int
	// Paths is the number of vertex-disjoint augmenting paths applied.
	Paths int
	// Matched is the matching size after the phase.
	Matched int
}

// Option configures HopcroftKarp via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the tunables of a HopcroftKarp run.
type Options struct {
	// OnPhase is called after every productive phase.
	OnPhase func(PhaseStats)

	// Verbose logs phases and augmentations through klog at V(2).
	Verbose bool

	// MaxPhases, if > 0, stops after that many phases even if augmenting
	// paths remain. 0 means no limit.
	MaxPhases int

	err error
}

// DefaultOptions returns Options with a no-op phase hook, logging disabled
// and no phase limit.
func DefaultOptions() Options {
	return Options{
		OnPhase:   func(PhaseStats) {},
		Verbose:   false,
		MaxPhases: 0,
	}
}

// WithOnPhase registers a callback run after each productive phase.
func WithOnPhase(fn func(PhaseStats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPhase = fn
		}
	}
}

// WithVerbose toggles phase logging.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.Verbose = v }
}

// WithMaxPhases caps the number of phases.
//
//	n > 0: at most n phases
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxPhases(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxPhases cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxPhases = n
	}
}
