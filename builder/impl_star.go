// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first appended vertex is the center; the other n-1 are leaves.
//   • Emits spokes {center, leaf} in ascending leaf order.
//
// Complexity:
//   • Time: O(n) vertices + O(n-1) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/shortreach/core"

const methodStar = "Star"

// Star returns a Constructor that builds a star K₁,ₙ₋₁ centered on its
// first vertex.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodStar, "n", n, MinStarNodes); err != nil {
			return err
		}
		center, err := addBlock(g, methodStar, n)
		if err != nil {
			return err
		}
		for leaf := center + 1; leaf < center+n; leaf++ {
			if err = connect(g, methodStar, center, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
