// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Appends n fresh vertices first..first+n-1.
//   • Emits edges {first+i, first+i+1} for i=0..n-2, in that order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/shortreach/core"

const methodPath = "Path"

// Path returns a Constructor that builds a simple path Pₙ.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodPath, "n", n, MinPathNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err = connect(g, methodPath, first+i, first+i+1); err != nil {
				return err
			}
		}

		return nil
	}
}
