// Package builder provides deterministic, composable graph fixtures on top of
// core.Graph: paths, cycles, stars, wheels, complete graphs, grids, random
// sparse graphs and isolated vertices.
//
// Every topology factory returns a Constructor. BuildGraph applies
// constructors in order to one graph; each constructor appends its own block
// of fresh vertices, so composing constructors yields the disjoint union of
// their topologies with vertex IDs assigned left to right:
//
//	// 1–2–3 path, then one isolated vertex 4.
//	g, err := builder.BuildGraph(nil, nil, builder.Path(3), builder.Isolated(1))
//
// BuildEdges does the same and returns the vertex count and edge list, the
// shape bfs.ShortestReach and the query codecs consume.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG used by stochastic constructors.
//   - Validation helpers:
//     – validateMin:         ensure integer ≥ minimum, wrapping ErrTooFewVertices.
//     – validateProbability: ensure p ∈ [0.0,1.0], wrapping ErrInvalidProbability.
//   - Shared constants:
//     – MinCycleNodes, MinPathNodes, MinStarNodes, MinWheelNodes, MinGridDim, …
//
// Guarantees:
//
//   - Deterministic output: the same constructors, order, and seed produce the
//     same vertex numbering and the same edge sequence.
//   - Structured errors wrapping package sentinels with method context;
//     constructors never panic. Option constructors panic on nil inputs.
//   - Documented algorithmic complexity per constructor.
package builder
