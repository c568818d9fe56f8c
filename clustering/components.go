package clustering

import (
	"fmt"

	"github.com/katalvlaran/watset/bfs"
)

// Components clusters vertices by connectivity: two vertices share a cluster
// iff a path joins them, ignoring edge direction. Isolated vertices form
// singleton clusters.
type Components struct {
	graph Graph
	memo  Memo
}

// NewComponents builds a Components clustering for g.
func NewComponents(g Graph) (*Components, error) {
	if err := RequireGraph(g); err != nil {
		return nil, err
	}

	return &Components{graph: g}, nil
}

// ComponentsBuilder builds Components algorithms.
var ComponentsBuilder Builder = BuilderFunc(func(g Graph) (Algorithm, error) {
	return Built(NewComponents(g))
})

// Clustering returns one cluster per connected component. Clusters are
// ordered by their first vertex and members follow vertex order.
func (a *Components) Clustering() (*Clustering, error) {
	return a.memo.Do(a.compute)
}

func (a *Components) compute() (*Clustering, error) {
	var walk bfs.Graph = a.graph
	if a.graph.Directed() {
		view, err := newSymmetricView(a.graph)
		if err != nil {
			return nil, fmt.Errorf("components: %w", err)
		}
		walk = view
	}

	index := VertexIndex(a.graph)
	trees, err := bfs.Forest(walk, a.graph.Vertices())
	if err != nil {
		return nil, fmt.Errorf("components: %w", err)
	}
	clusters := make([][]string, len(trees))
	for i, t := range trees {
		sortByIndex(t.Order, index)
		clusters[i] = t.Order
	}

	return NewClustering(clusters), nil
}
