// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub, i.e., a cycle of size (n-1) plus a hub vertex.
//   • Therefore, n ≥ 4 (since the outer ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Builds the outer ring using Cycle(n-1) with the same cfg.
//   • Appends the hub as the last vertex of the block.
//   • Emits spokes {hub, rim} in ascending rim order after the ring edges.
//
// Complexity:
//   • Time: O(n) vertices + O(2(n-1)) edges.
//   • Space: O(1) extra.

package builder

import (
	"fmt"

	"github.com/katalvlaran/shortreach/core"
)

const methodWheel = "Wheel"

// Wheel returns a Constructor that builds a wheel Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		rimFirst := g.VertexCount() + 1
		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		hub, err := addBlock(g, methodWheel, 1)
		if err != nil {
			return err
		}
		for rim := rimFirst; rim < hub; rim++ {
			if err = connect(g, methodWheel, hub, rim); err != nil {
				return err
			}
		}

		return nil
	}
}
