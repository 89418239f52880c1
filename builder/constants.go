// Package builder defines shared constants used by graph builders, ensuring
// consistent validation across all topology constructors.
package builder

// MinCycleNodes is the smallest meaningful size for a cycle (ring) topology.
// A cycle with fewer than 3 nodes cannot form a ring without loops or multi-edges.
const MinCycleNodes = 3

// MinPathNodes is the smallest meaningful size for a simple path.
const MinPathNodes = 2

// MinStarNodes is the smallest meaningful size for a star: one center plus a leaf.
const MinStarNodes = 2

// MinWheelNodes is the smallest meaningful size for a wheel: a 3-cycle plus a hub.
const MinWheelNodes = 4

// MinCompleteNodes is the smallest size for a complete graph; K_1 has no edges.
const MinCompleteNodes = 1

// MinGridDim is the smallest allowed dimension (rows or cols) for a 2D Grid.
// A grid of size 1×1 has no edges, but is considered valid.
const MinGridDim = 1

// MinRandomSparseNodes is the smallest vertex count for RandomSparse.
const MinRandomSparseNodes = 1

// MinProbability is the inclusive lower bound for p in RandomSparse.
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for p in RandomSparse.
const MaxProbability = 1.0
