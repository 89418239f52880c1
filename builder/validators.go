// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/shortreach/core"
)

// validateMin ensures that got ≥ min, wrapping ErrTooFewVertices otherwise.
// Complexity: O(1).
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateProbability enforces p ∈ [MinProbability, MaxProbability]; NaN is rejected.
// Complexity: O(1).
func validateProbability(method string, p float64) error {
	if math.IsNaN(p) || p < MinProbability || p > MaxProbability {
		return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			method, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// addBlock appends n vertices to g and returns the ID of the first one.
func addBlock(g *core.Graph, method string, n int) (int, error) {
	first, err := g.AddVertices(n)
	if err != nil {
		return 0, fmt.Errorf("%s: AddVertices(%d): %w", method, n, err)
	}

	return first, nil
}

// connect adds the edge {u, v} with method context on failure.
func connect(g *core.Graph, method string, u, v int) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}
