// Package bfs grows vertex sets by breadth-first reachability.
//
// Connectivity-style clustering reduces to reachability: components is a
// Forest over the vertex order with a symmetric neighbor view, and MaxMax
// collects the descendants of each root of the maximal-affinity graph with
// Reach.
//
// Traversal consumes the small Graph interface (HasVertex + NeighborIDs),
// so it runs on *core.Graph and on derived views alike. Edge weights are
// ignored.
//
// Determinism: neighbors are visited in the order NeighborIDs returns them
// (vertex insertion order for *core.Graph), so Order is reproducible.
//
// Complexity: O(V + E) time, O(V) memory per traversal.
//
// Errors: ErrNilGraph, ErrUnknownStart, ErrNeighbors,
// context errors, and hook errors from WithOnVisit (wrapped).
package bfs
