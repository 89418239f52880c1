// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices). K₁ is a single vertex with no edges.
//   • Emits every unordered pair {i, j}, i < j, for i ascending then j ascending.
//
// Complexity:
//   • Time: O(n) vertices + O(n(n-1)/2) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/shortreach/core"

const methodComplete = "Complete"

// Complete returns a Constructor that builds the complete graph Kₙ.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodComplete, n)
		if err != nil {
			return err
		}
		last := first + n - 1
		for i := first; i <= last; i++ {
			for j := i + 1; j <= last; j++ {
				if err = connect(g, methodComplete, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
