// Package maxmax implements MaxMax, a parameter-free graph clustering
// algorithm based on maximal affinity.
//
// Implementation:
//   - Stage 1: For every vertex v find its maximal neighbors, the neighbors
//     joined to v by the heaviest edge (ties keep all of them).
//   - Stage 2: Build a directed affinity graph with an arc u→v whenever u is a
//     maximal neighbor of v.
//   - Stage 3: Mark every vertex as a root. Visiting vertices in graph order,
//     every vertex still marked as a root unmarks all of its descendants
//     (found by breadth-first search over the affinity graph).
//   - Stage 4: Each remaining root forms a cluster with its descendants.
//
// A vertex reachable from two roots belongs to both clusters, so MaxMax is
// the one algorithm in this module whose output may overlap. Isolated
// vertices become singleton clusters.
//
// Complexity: O(V·(V + E)) time in the worst case, O(V + E) space.
package maxmax

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/watset/bfs"
	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/core"
)

// MaxMax is the algorithm bound to one graph.
type MaxMax struct {
	graph clustering.Graph
	ctx   context.Context
	memo  clustering.Memo
}

// Option configures MaxMax.
type Option func(*MaxMax)

// WithContext cancels the root-marking traversals when ctx is done
// (default context.Background()). A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(m *MaxMax) {
		if ctx != nil {
			m.ctx = ctx
		}
	}
}

// New returns MaxMax for g. The graph must be undirected.
func New(g clustering.Graph, opts ...Option) (*MaxMax, error) {
	if err := clustering.RequireUndirected(g); err != nil {
		return nil, err
	}
	m := &MaxMax{graph: g, ctx: context.Background()}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Builder builds MaxMax for every graph.
var Builder clustering.Builder = clustering.BuilderFunc(func(g clustering.Graph) (clustering.Algorithm, error) {
	return clustering.Built(New(g))
})

// Clustering computes the clusters once and caches them. Clusters are
// ordered by their root; members follow graph order.
func (m *MaxMax) Clustering() (*clustering.Clustering, error) {
	return m.memo.Do(m.compute)
}

func (m *MaxMax) compute() (*clustering.Clustering, error) {
	affinity, err := AffinityGraph(m.graph)
	if err != nil {
		return nil, err
	}

	vertices := m.graph.Vertices()
	index := clustering.VertexIndex(m.graph)
	root := make(map[string]bool, len(vertices))
	for _, v := range vertices {
		root[v] = true
	}

	descendants := make(map[string][]string, len(vertices))
	for _, v := range vertices {
		if !root[v] {
			continue
		}
		res, err := bfs.Reach(affinity, v,
			bfs.WithContext(m.ctx),
			bfs.WithOnVisit(func(u string, depth int) error {
				if depth > 0 {
					root[u] = false
				}
				return nil
			}))
		if err != nil {
			return nil, fmt.Errorf("maxmax: traversal from %q: %w", v, err)
		}
		descendants[v] = res.Order
	}

	var clusters [][]string
	for _, v := range vertices {
		if !root[v] {
			continue
		}
		members := descendants[v]
		sort.Slice(members, func(i, j int) bool { return index[members[i]] < index[members[j]] })
		clusters = append(clusters, members)
	}

	return clustering.NewClustering(clusters), nil
}

// AffinityGraph returns the directed graph holding an arc u→v for every
// maximal neighbor u of v. Self-loops are ignored and every vertex of g is
// present, including isolated ones. Arc weights carry the maximal edge weight.
func AffinityGraph(g clustering.Graph) (*core.Graph, error) {
	affinity := core.NewGraph(core.WithDirected(true))
	vertices := g.Vertices()
	for _, v := range vertices {
		if err := affinity.AddVertex(v); err != nil {
			return nil, fmt.Errorf("maxmax: %w", err)
		}
	}

	for _, v := range vertices {
		nbrs, err := g.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("maxmax: neighbors of %q: %w", v, err)
		}

		best := -1.0
		var maximal []string
		for _, u := range nbrs {
			if u == v {
				continue
			}
			w, err := g.Weight(v, u)
			if err != nil {
				return nil, fmt.Errorf("maxmax: weight %q–%q: %w", v, u, err)
			}
			switch {
			case w > best:
				best, maximal = w, append(maximal[:0], u)
			case w == best:
				maximal = append(maximal, u)
			}
		}

		for _, u := range maximal {
			if _, err := affinity.AddEdge(u, v, best); err != nil {
				return nil, fmt.Errorf("maxmax: arc %q→%q: %w", u, v, err)
			}
		}
	}

	return affinity, nil
}
