// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi-like generator: include each unordered pair {i,j}, i<j,
//     independently with probability p.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//     p=0 and p=1 are deterministic and need no RNG.
//
// Complexity:
//   - Time: O(n) vertices + O(n²) Bernoulli trials.
//   - Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: for each i asc, j asc (j>i).
//   - Deterministic outcomes for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortreach/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor that samples a G(n, p) graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, "n", n, MinRandomSparseNodes); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		stochastic := p > MinProbability && p < MaxProbability
		if stochastic && cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		first, err := addBlock(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		if p == MinProbability {
			return nil
		}

		last := first + n - 1
		for i := first; i <= last; i++ {
			for j := i + 1; j <= last; j++ {
				// one trial per pair keeps the sequence seed-stable
				if stochastic && cfg.rng.Float64() >= p {
					continue
				}
				if err = connect(g, methodRandomSparse, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
