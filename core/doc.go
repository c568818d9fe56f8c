// Package core provides the thread-safe, in-memory weighted graph consumed by
// every clustering algorithm in watset.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Real-valued, non-negative edge weights
//   - Parallel edges / multi-graphs (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Constant-time edge insertion via nested maps:
//     adjacencyList[from][to][edgeID] = struct{}{}
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj)
//
// Determinism:
//
//   - Vertices() returns IDs in insertion order. Two graphs built by the same
//     sequence of calls enumerate their vertices identically, which is what
//     the clustering algorithms rely on for reproducible output.
//   - NeighborIDs() follows the same vertex order.
//   - Edges() returns edges in insertion order.
//
// Parallel edges:
//
//	Weight(from, to) returns the SUM of the weights of all parallel edges
//	between the pair. Every parallel edge is a distinct contribution to
//	adjacency, and Degree counts each of them.
//
// Core Methods:
//
//	AddVertex(id string) error                               // O(1)
//	HasVertex(id string) bool                                // O(1)
//	AddEdge(from, to string, weight float64) (string, error) // O(1)
//	HasEdge(from, to string) bool                            // O(1)
//	Weight(from, to string) (float64, error)                 // O(p), p = parallel edges
//	NeighborIDs(id string) ([]string, error)                 // O(d·log d)
//	Degree(id string) (int, error)                           // O(d)
//	Vertices() []string                                      // O(V)
//	Edges() []*Edge                                          // O(E)
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – no edge between the pair
//	ErrBadWeight           – negative, NaN or infinite weight
//	ErrLoopNotAllowed      – self-loop when loops disabled
//	ErrMultiEdgeNotAllowed – parallel edge when multi-edges disabled
package core
