// Package clustering defines the contract shared by every graph clustering
// algorithm in watset, together with the trivial and connectivity-based
// algorithms.
//
// The contract
//
//	Graph      — read-only view of a weighted graph (*core.Graph satisfies it).
//	Clustering — an ordered, immutable collection of clusters (vertex ID sets).
//	Algorithm  — Clustering() (*Clustering, error); computed at most once.
//	Builder    — Build(Graph) (Algorithm, error); configuration is validated here.
//	Memo       — the compute-once cell every Algorithm uses for its result.
//
// Every algorithm is built in two phases. Options are collected and validated
// first; Build then checks the graph's structural preconditions and returns
// either a ready Algorithm or a configuration error, never both. The
// computation itself happens lazily on the first Clustering() call and the
// result (or error) is cached for the lifetime of the Algorithm, even under
// concurrent first access.
//
// Algorithms in this package
//
//	Empty      — zero clusters.
//	Together   — one cluster holding every vertex (even for 0 or 1 vertex).
//	Singleton  — one single-vertex cluster per vertex.
//	Components — connected components; weakly connected for directed graphs.
//
// Errors
//
//	ErrConfiguration — root of all construction-time failures.
//	ErrNumerical     — root of computation-time numerical failures.
//	ErrGraphNil, ErrDirectedGraph, ErrMissingOption, ErrBadOption wrap
//	ErrConfiguration, so errors.Is matches both the specific and the root.
package clustering
