// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Weight/Edges/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in insertion order.
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix for edge identifiers.
const edgeIDPrefix = 'e'

// AddEdge creates a new edge from 'from' to 'to' with the given weight and
// returns its unique Edge.ID. Missing endpoints are added first.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. Ensure endpoints via AddVertex.
//  3. Lock muEdgeAdj, check multi-edge constraint.
//  4. Generate eid atomically, store the edge and link adjacency.
//  5. If the graph is undirected and from!=to, mirror the adjacency.
//
// Errors: ErrEmptyVertexID, ErrBadWeight, ErrLoopNotAllowed, ErrMultiEdgeNotAllowed.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string, weight float64) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.Looped() {
		return "", ErrLoopNotAllowed
	}

	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if !g.allowMulti {
		if inner := g.adjacencyList[from][to]; len(inner) > 0 {
			return "", ErrMultiEdgeNotAllowed
		}
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: from, To: to, Weight: weight}
	g.edgeOrder = append(g.edgeOrder, eid)

	linkAdjacency(g, from, to, eid)
	addPairWeight(g, from, to, weight)
	if !g.directed && from != to {
		linkAdjacency(g, to, from, eid)
		addPairWeight(g, to, from, weight)
	}

	return eid, nil
}

// HasEdge reports true if at least one edge from 'from' to 'to' exists.
// For undirected graphs the pair is unordered.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacencyList[from][to]) > 0
}

// Weight returns the total weight of the edges from 'from' to 'to'.
// Parallel edges contribute the sum of their weights, added in edge
// insertion order.
//
// Errors:
//   - ErrVertexNotFound: if either endpoint is missing.
//   - ErrEdgeNotFound: if the endpoints are not adjacent.
//
// Complexity: O(1).
func (g *Graph) Weight(from, to string) (float64, error) {
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, ErrVertexNotFound
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if len(g.adjacencyList[from][to]) == 0 {
		return 0, ErrEdgeNotFound
	}

	return g.pairWeight[from][to], nil
}

// Edges returns all edges in insertion order.
// The returned *Edge values must be treated as read-only.
// Complexity: O(E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edgeOrder))
	for _, eid := range g.edgeOrder {
		out = append(out, g.edges[eid])
	}

	return out
}

// EdgeCount returns the number of edges (parallel edges counted individually).
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// addPairWeight adds w to the running total of from→to.
// Caller must hold muEdgeAdj for writing.
func addPairWeight(g *Graph, from, to string, w float64) {
	inner, ok := g.pairWeight[from]
	if !ok {
		inner = make(map[string]float64)
		g.pairWeight[from] = inner
	}
	inner[to] += w
}

// nextEdgeID returns "e<N>" where N is the next value of the atomic counter.
// Caller must hold muEdgeAdj for writing.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
