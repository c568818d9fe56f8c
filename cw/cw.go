// Package cw implements Chinese Whispers, a randomized label-propagation
// graph clustering algorithm.
//
// Every vertex starts with a label of its own. On each iteration the
// vertices are visited in a freshly shuffled order and each adopts the label
// with the highest total neighbor weight, as scored by the configured
// weighting.Weighting. Ties go to the smallest label; a vertex without
// neighbors keeps its label. Iteration stops once a full pass changes no
// label or the iteration cap is reached. Vertices sharing a final label form
// a cluster.
//
// Complexity: O(I·(V + E)) weighting calls for I iterations.
package cw

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/weighting"
)

// Defaults.
const (
	DefaultIterations = 20
	DefaultSeed       = int64(1)
)

// Option configures ChineseWhispers.
type Option func(*options)

type options struct {
	weighting  weighting.Weighting
	iterations int
	seed       int64
}

// WithWeighting sets the neighbor weighting (default weighting.Top()).
func WithWeighting(w weighting.Weighting) Option {
	return func(o *options) { o.weighting = w }
}

// WithIterations caps the number of propagation passes (default 20, ≥ 1).
func WithIterations(n int) Option {
	return func(o *options) { o.iterations = n }
}

// WithSeed sets the seed of the visiting-order shuffle (default 1).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// ChineseWhispers is the algorithm bound to one graph.
type ChineseWhispers struct {
	graph      clustering.Graph
	weighting  weighting.Weighting
	iterations int
	seed       int64
	memo       clustering.Memo
}

// New validates opts against g.
//
// Errors: clustering.ErrGraphNil, clustering.ErrDirectedGraph, and
// clustering.ErrBadOption for a nil weighting or a non-positive iteration cap.
func New(g clustering.Graph, opts ...Option) (*ChineseWhispers, error) {
	o := options{weighting: weighting.Top(), iterations: DefaultIterations, seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}

	if err := clustering.RequireUndirected(g); err != nil {
		return nil, err
	}
	if o.weighting == nil {
		return nil, fmt.Errorf("%w: cw weighting is nil", clustering.ErrBadOption)
	}
	if o.iterations < 1 {
		return nil, fmt.Errorf("%w: cw iterations=%d", clustering.ErrBadOption, o.iterations)
	}

	return &ChineseWhispers{graph: g, weighting: o.weighting, iterations: o.iterations, seed: o.seed}, nil
}

// Builder returns a clustering.Builder that applies opts to every graph.
func Builder(opts ...Option) clustering.Builder {
	return clustering.BuilderFunc(func(g clustering.Graph) (clustering.Algorithm, error) {
		return clustering.Built(New(g, opts...))
	})
}

// Clustering runs label propagation once and caches the result.
func (cw *ChineseWhispers) Clustering() (*clustering.Clustering, error) {
	return cw.memo.Do(cw.compute)
}

func (cw *ChineseWhispers) compute() (*clustering.Clustering, error) {
	vertices := cw.graph.Vertices()
	index := clustering.VertexIndex(cw.graph)

	neighbors := make([][]string, len(vertices))
	for i, v := range vertices {
		nbrs, err := cw.graph.NeighborIDs(v)
		if err != nil {
			return nil, fmt.Errorf("cw: neighbors of %q: %w", v, err)
		}
		neighbors[i] = nbrs
	}

	labels := make([]int, len(vertices))
	for i := range labels {
		labels[i] = i
	}

	rng := rand.New(rand.NewSource(cw.seed))
	order := make([]int, len(vertices))
	for i := range order {
		order[i] = i
	}

	for iter := 0; iter < cw.iterations; iter++ {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

		changed := false
		for _, i := range order {
			label, ok, err := cw.vote(vertices[i], neighbors[i], labels, index)
			if err != nil {
				return nil, err
			}
			if ok && label != labels[i] {
				labels[i] = label
				changed = true
			}
		}
		if !changed {
			break
		}
	}

	return clustering.NewClustering(groupByLabel(vertices, labels)), nil
}

// vote returns the winning label among v's neighbors, or ok=false when v has
// no neighbor other than itself.
func (cw *ChineseWhispers) vote(v string, nbrs []string, labels []int, index map[string]int) (int, bool, error) {
	scores := make(map[int]float64, len(nbrs))
	for _, u := range nbrs {
		if u == v {
			continue
		}
		w, err := cw.weighting(cw.graph, v, u)
		if err != nil {
			return 0, false, fmt.Errorf("cw: weighting %q–%q: %w", v, u, err)
		}
		scores[labels[index[u]]] += w
	}
	if len(scores) == 0 {
		return 0, false, nil
	}

	best, bestScore := -1, 0.0
	for label, score := range scores {
		if best < 0 || score > bestScore || (score == bestScore && label < best) {
			best, bestScore = label, score
		}
	}

	return best, true, nil
}

// groupByLabel collects vertices per label. Clusters are ordered by their
// first vertex and members keep vertex order.
func groupByLabel(vertices []string, labels []int) [][]string {
	slot := make(map[int]int)
	var clusters [][]string
	for i, v := range vertices {
		s, ok := slot[labels[i]]
		if !ok {
			s = len(clusters)
			slot[labels[i]] = s
			clusters = append(clusters, nil)
		}
		clusters[s] = append(clusters[s], v)
	}

	return clusters
}
