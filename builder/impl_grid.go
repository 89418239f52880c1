// SPDX-License-Identifier: MIT
// Package: shortreach/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Cell (r, c) gets vertex first + r*cols + c (row-major).
//   • For each cell in row-major order, emits the right neighbor edge (if any)
//     then the down neighbor edge (if any).
//
// Complexity:
//   • Time: O(rows*cols) vertices + O(2*rows*cols - rows - cols) edges.
//   • Space: O(1) extra.

package builder

import "github.com/katalvlaran/shortreach/core"

const methodGrid = "Grid"

// Grid returns a Constructor that builds a rows×cols 4-neighbor lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		first, err := addBlock(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		cell := func(r, c int) int { return first + r*cols + c }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = connect(g, methodGrid, cell(r, c), cell(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(g, methodGrid, cell(r, c), cell(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
