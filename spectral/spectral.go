// Package spectral clusters graph vertices by embedding them with the
// eigenvectors of the graph Laplacian and handing the embedded points to a
// generic point clusterer.
//
// Pipeline:
//  1. Index vertices in g.Vertices() order.
//  2. Embed them into k dimensions (embedding.Spectral).
//  3. Delegate the points to the configured embedding.PointClusterer.
//  4. Project every point group back onto vertex IDs.
//
// Boundary policy: a graph without vertices yields no clusters and a single
// vertex yields one singleton cluster; neither case reaches the embedding.
// Otherwise k ≥ n fails with embedding.ErrTooManyDimensions.
//
// The result is a pure function of the graph, k and the clusterer; any
// randomness of the clusterer carries over.
package spectral

import (
	"fmt"

	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/embedding"
)

// Option configures Spectral.
type Option func(*options)

type options struct {
	k         int
	kSet      bool
	clusterer embedding.PointClusterer
	laplacian embedding.Laplacian
}

// WithK sets the embedding dimensionality (required, ≥ 1).
func WithK(k int) Option {
	return func(o *options) {
		o.k = k
		o.kSet = true
	}
}

// WithClusterer sets the point clusterer that groups embedded vertices (required).
func WithClusterer(c embedding.PointClusterer) Option {
	return func(o *options) { o.clusterer = c }
}

// WithLaplacian selects the Laplacian variant (default embedding.Symmetric).
func WithLaplacian(l embedding.Laplacian) Option {
	return func(o *options) { o.laplacian = l }
}

// Spectral is the spectral clustering algorithm bound to one graph.
type Spectral struct {
	graph     clustering.Graph
	k         int
	clusterer embedding.PointClusterer
	laplacian embedding.Laplacian
	memo      clustering.Memo
}

// New validates opts against g and returns a ready-to-run algorithm.
//
// Errors (all wrap clustering.ErrConfiguration):
//   - clustering.ErrGraphNil, clustering.ErrDirectedGraph.
//   - clustering.ErrMissingOption when k or the clusterer is absent.
//   - clustering.ErrBadOption when k < 1.
func New(g clustering.Graph, opts ...Option) (*Spectral, error) {
	o := options{laplacian: embedding.Symmetric}
	for _, opt := range opts {
		opt(&o)
	}

	if err := clustering.RequireUndirected(g); err != nil {
		return nil, err
	}
	switch {
	case !o.kSet:
		return nil, fmt.Errorf("%w: spectral requires k", clustering.ErrMissingOption)
	case o.k < 1:
		return nil, fmt.Errorf("%w: spectral k=%d", clustering.ErrBadOption, o.k)
	case o.clusterer == nil:
		return nil, fmt.Errorf("%w: spectral requires a point clusterer", clustering.ErrMissingOption)
	}

	return &Spectral{graph: g, k: o.k, clusterer: o.clusterer, laplacian: o.laplacian}, nil
}

// Builder returns a clustering.Builder that applies opts to every graph.
func Builder(opts ...Option) clustering.Builder {
	return clustering.BuilderFunc(func(g clustering.Graph) (clustering.Algorithm, error) {
		return clustering.Built(New(g, opts...))
	})
}

// Clustering computes the clustering once and returns the cached result on
// later calls. Clusterer failures are returned wrapped; a clusterer that
// drops, invents or repeats vertices yields clustering.ErrNotPartition.
func (s *Spectral) Clustering() (*clustering.Clustering, error) {
	return s.memo.Do(s.compute)
}

func (s *Spectral) compute() (*clustering.Clustering, error) {
	vertices := s.graph.Vertices()
	switch len(vertices) {
	case 0:
		return clustering.NewClustering(nil), nil
	case 1:
		return clustering.NewClustering([][]string{vertices}), nil
	}

	ix := embedding.NewIndex(s.graph)
	points, err := embedding.Spectral(s.graph, ix, s.k, embedding.WithLaplacian(s.laplacian))
	if err != nil {
		return nil, fmt.Errorf("spectral: %w", err)
	}

	groups, err := s.clusterer.Cluster(points)
	if err != nil {
		return nil, fmt.Errorf("spectral: point clusterer: %w", err)
	}

	clusters := make([][]string, 0, len(groups))
	for _, group := range groups {
		members := make([]string, len(group))
		for i, p := range group {
			members[i] = p.Node
		}
		clusters = append(clusters, members)
	}

	c := clustering.NewClustering(clusters)
	if err := clustering.CheckPartition(c, vertices); err != nil {
		return nil, fmt.Errorf("spectral: point clusterer output: %w", err)
	}

	return c, nil
}
