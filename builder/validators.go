package builder

import "fmt"

const (
	minPartitionSize = 1
	probMin          = 0.0
	probMax          = 1.0
)

// validatePartition checks that both side sizes are at least 1.
func validatePartition(method string, n1, n2 int) error {
	if n1 < minPartitionSize || n2 < minPartitionSize {
		return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
			method, n1, n2, minPartitionSize, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [0,1].
func validateProbability(method string, p float64) error {
	if p < probMin || p > probMax {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, probMin, probMax, ErrInvalidProbability)
	}

	return nil
}
