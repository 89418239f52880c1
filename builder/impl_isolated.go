// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_isolated.go - implementation of Isolated(k) constructor.
//
// Contract:
//   • k ≥ 1 (else ErrTooFewVertices).
//   • Appends k fresh vertices and emits no edges.

package builder

import "github.com/katalvlaran/shortreach/core"

const methodIsolated = "Isolated"

// Isolated returns a Constructor that appends k vertices with no incident
// edges. Composed after another constructor it yields unreachable vertices.
func Isolated(k int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodIsolated, "k", k, 1); err != nil {
			return err
		}
		_, err := addBlock(g, methodIsolated, k)

		return err
	}
}
