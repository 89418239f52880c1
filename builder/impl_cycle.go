// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Appends n fresh vertices and closes them into a ring.
//   • Emits edges {first+i, first+(i+1)%n} for i=0..n-1; the closing edge is last.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/shortreach/core"

const methodCycle = "Cycle"

// Cycle returns a Constructor that builds a simple cycle Cₙ.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}
		first, err := addBlock(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = connect(g, methodCycle, first+i, first+(i+1)%n); err != nil {
				return err
			}
		}

		return nil
	}
}
