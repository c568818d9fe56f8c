// Package builder assembles deterministic core.Graph fixtures from
// composable constructors: classic topologies (complete, path, star, cycle),
// Erdős–Rényi sparse graphs, and graphs with a planted cluster structure.
//
// A Constructor mutates a graph under a resolved builder configuration.
// BuildGraph creates the graph, resolves options once and applies the
// constructors in order:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7)},
//		builder.Cliques(3, 4, 0.1))
//
// Determinism: identical options, seed and constructor order yield identical
// vertex order, edge order and weights.
//
// Errors are sentinels checked with errors.Is: ErrTooFewVertices,
// ErrInvalidProbability, ErrNeedRandSource, ErrInvalidWeight,
// ErrConstructFailed.
package builder
