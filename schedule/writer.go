package schedule

import (
	"fmt"
	"io"

	"github.com/vegri/HopcroftKarpAlgorithm/matching"
)

const (
	separator = "\t->\t"
	unmatched = "unmatched"
)

// WriteMatching writes one line per person in name order: the date they
// were matched to, or "unmatched".
func WriteMatching(w io.Writer, res *matching.Result) error {
	g := res.Graph()
	for _, u := range g.Left() {
		date := unmatched
		if v, ok := g.Match(u); ok {
			date = g.Name(v)
		}
		if _, err := fmt.Fprint(w, g.Name(u), separator, date, "\n"); err != nil {
			return err
		}
	}

	return nil
}

// WriteEndpoints writes the two ends of every augmenting path, person
// first, in discovery order.
func WriteEndpoints(w io.Writer, res *matching.Result) error {
	for _, p := range res.Endpoints() {
		if _, err := fmt.Fprint(w, p.Left, separator, p.Right, "\n"); err != nil {
			return err
		}
	}

	return nil
}
