package clustering

import (
	"fmt"
	"sort"
)

// Clustering is an ordered collection of clusters, each a set of vertex IDs.
// A Clustering is immutable once created; accessors return copies.
type Clustering struct {
	clusters [][]string
}

// NewClustering copies clusters into a new Clustering. Cluster order and
// member order are preserved.
func NewClustering(clusters [][]string) *Clustering {
	c := &Clustering{clusters: make([][]string, len(clusters))}
	for i, members := range clusters {
		c.clusters[i] = append([]string(nil), members...)
	}

	return c
}

// Len returns the number of clusters.
func (c *Clustering) Len() int { return len(c.clusters) }

// Cluster returns a copy of the i-th cluster. It panics if i is out of range,
// like slice indexing.
func (c *Clustering) Cluster(i int) []string {
	return append([]string(nil), c.clusters[i]...)
}

// Clusters returns a deep copy of all clusters.
func (c *Clustering) Clusters() [][]string {
	out := make([][]string, len(c.clusters))
	for i := range c.clusters {
		out[i] = c.Cluster(i)
	}

	return out
}

// Sizes returns the size of every cluster, in cluster order.
func (c *Clustering) Sizes() []int {
	sizes := make([]int, len(c.clusters))
	for i, members := range c.clusters {
		sizes[i] = len(members)
	}

	return sizes
}

// CheckPartition verifies the hard-clustering invariant: clusters are
// pairwise disjoint, contain only IDs from vertices, and together cover all
// of them. Empty clusters are rejected as well.
func CheckPartition(c *Clustering, vertices []string) error {
	owner := make(map[string]int, len(vertices))
	for _, v := range vertices {
		owner[v] = -1
	}
	for i, members := range c.clusters {
		if len(members) == 0 {
			return fmt.Errorf("%w: cluster %d is empty", ErrNotPartition, i)
		}
		for _, v := range members {
			prev, known := owner[v]
			switch {
			case !known:
				return fmt.Errorf("%w: cluster %d has unknown vertex %q", ErrNotPartition, i, v)
			case prev >= 0:
				return fmt.Errorf("%w: vertex %q is in clusters %d and %d", ErrNotPartition, v, prev, i)
			}
			owner[v] = i
		}
	}
	for _, v := range vertices {
		if owner[v] < 0 {
			return fmt.Errorf("%w: vertex %q is not covered", ErrNotPartition, v)
		}
	}

	return nil
}

// VertexIndex maps every vertex of g to its position in g.Vertices().
func VertexIndex(g Graph) map[string]int {
	vertices := g.Vertices()
	index := make(map[string]int, len(vertices))
	for i, v := range vertices {
		index[v] = i
	}

	return index
}

// sortByIndex orders ids by their position in index.
func sortByIndex(ids []string, index map[string]int) {
	sort.Slice(ids, func(i, j int) bool { return index[ids[i]] < index[ids[j]] })
}
