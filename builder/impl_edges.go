package builder

import (
	"github.com/vegri/HopcroftKarpAlgorithm/matching"
)

const methodEdges = "Edges"

// Edges returns a Constructor that inserts the given left–right pairs as
// edges, in order. Names are used verbatim; prefixes and ID schemes do not
// apply. Repeated pairs are inserted once.
func Edges(pairs ...matching.Pair) Constructor {
	return func(g *matching.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := addEdge(g, methodEdges, p.Left, p.Right); err != nil {
				return err
			}
		}

		return nil
	}
}
