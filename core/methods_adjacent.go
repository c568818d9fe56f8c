// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs in vertex insertion order.
// Concurrency:
//   - Read operations hold muVert then muEdgeAdj read locks.
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the unique set of vertex IDs adjacent to id.
//
// Adjacency policy:
//   - Directed graphs: only successors (edges with From == id).
//   - Undirected graphs: every vertex sharing an edge with id.
//   - A self-loop makes id its own neighbor.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]string, 0, len(g.adjacencyList[id]))
	for to, edgeSet := range g.adjacencyList[id] {
		if len(edgeSet) > 0 {
			out = append(out, to)
		}
	}
	// Order by vertex insertion index for reproducible iteration.
	sort.Slice(out, func(i, j int) bool { return g.vertices[out[i]] < g.vertices[out[j]] })

	return out, nil
}

// AdjacencyList returns a snapshot mapping each vertex to its neighbor IDs
// (same policy and order as NeighborIDs).
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() map[string][]string {
	out := make(map[string][]string, g.VertexCount())
	for _, id := range g.Vertices() {
		nbrs, err := g.NeighborIDs(id)
		if err != nil {
			continue // vertices are never removed, so this is unreachable
		}
		out[id] = nbrs
	}

	return out
}

// ensureAdjacency guarantees that adjacencyList[id] exists.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, id string) {
	if _, ok := g.adjacencyList[id]; !ok {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
}

// linkAdjacency records eid in adjacencyList[from][to].
// Caller must hold muEdgeAdj for writing.
func linkAdjacency(g *Graph, from, to, eid string) {
	ensureAdjacency(g, from)
	if _, ok := g.adjacencyList[from][to]; !ok {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][eid] = struct{}{}
}
