package mcl

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/watset/clustering"
)

// Defaults.
const (
	DefaultExpansion     = 2
	DefaultInflation     = 2.0
	DefaultMaxIterations = 20
)

const (
	// pruneThreshold zeroes entries that no longer carry flow.
	pruneThreshold = 1e-9
	// convergenceTolerance bounds the elementwise change between iterations.
	convergenceTolerance = 1e-9
)

// Option configures MarkovClustering and External. Options that do not
// apply to a variant are ignored by it.
type Option func(*options)

type options struct {
	expansion int
	inflation float64
	maxIter   int

	binary  string
	threads int
	ctx     context.Context
	logger  *zap.Logger
}

// WithExpansion sets the expansion power e (default 2, ≥ 1).
func WithExpansion(e int) Option {
	return func(o *options) { o.expansion = e }
}

// WithInflation sets the inflation power r (default 2, > 0).
func WithInflation(r float64) Option {
	return func(o *options) { o.inflation = r }
}

// WithMaxIterations caps the number of expansion/inflation rounds (default 20, ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIter = n }
}

// MarkovClustering is the in-process MCL algorithm bound to one graph.
type MarkovClustering struct {
	graph     clustering.Graph
	expansion int
	inflation float64
	maxIter   int
	memo      clustering.Memo
}

// New validates opts against g.
//
// Errors: clustering.ErrGraphNil; clustering.ErrBadOption for e < 1,
// a non-positive or non-finite r, or a non-positive iteration cap.
func New(g clustering.Graph, opts ...Option) (*MarkovClustering, error) {
	o := options{expansion: DefaultExpansion, inflation: DefaultInflation, maxIter: DefaultMaxIterations}
	for _, opt := range opts {
		opt(&o)
	}

	if err := clustering.RequireGraph(g); err != nil {
		return nil, err
	}
	switch {
	case o.expansion < 1:
		return nil, fmt.Errorf("%w: mcl e=%d", clustering.ErrBadOption, o.expansion)
	case !validInflation(o.inflation):
		return nil, fmt.Errorf("%w: mcl r=%v", clustering.ErrBadOption, o.inflation)
	case o.maxIter < 1:
		return nil, fmt.Errorf("%w: mcl max iterations=%d", clustering.ErrBadOption, o.maxIter)
	}

	return &MarkovClustering{graph: g, expansion: o.expansion, inflation: o.inflation, maxIter: o.maxIter}, nil
}

func validInflation(r float64) bool {
	return r > 0 && !math.IsInf(r, 0)
}

// Builder returns a clustering.Builder that applies opts to every graph.
func Builder(opts ...Option) clustering.Builder {
	return clustering.BuilderFunc(func(g clustering.Graph) (clustering.Algorithm, error) {
		return clustering.Built(New(g, opts...))
	})
}

// Clustering runs the flow simulation once and caches the result.
func (m *MarkovClustering) Clustering() (*clustering.Clustering, error) {
	return m.memo.Do(m.compute)
}

func (m *MarkovClustering) compute() (*clustering.Clustering, error) {
	vertices := m.graph.Vertices()
	n := len(vertices)
	if n == 0 {
		return clustering.NewClustering(nil), nil
	}

	flow, err := transitions(m.graph, vertices)
	if err != nil {
		return nil, err
	}

	next := mat.NewDense(n, n, nil)
	for iter := 0; iter < m.maxIter; iter++ {
		next.Pow(flow, m.expansion)
		next.Apply(func(_, _ int, v float64) float64 {
			v = math.Pow(v, m.inflation)
			if v < pruneThreshold {
				return 0
			}
			return v
		}, next)
		normalizeColumns(next)

		converged := mat.EqualApprox(flow, next, convergenceTolerance)
		flow, next = next, flow
		if converged {
			break
		}
	}

	return clustering.NewClustering(attractors(flow, vertices)), nil
}

// transitions builds the column-stochastic matrix of g with a unit self-loop
// on every vertex. Column i holds the flow leaving vertex i.
func transitions(g clustering.Graph, vertices []string) (*mat.Dense, error) {
	n := len(vertices)
	index := make(map[string]int, n)
	for i, v := range vertices {
		index[v] = i
	}

	flow := mat.NewDense(n, n, nil)
	for i, u := range vertices {
		flow.Set(i, i, 1)
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("mcl: neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			w, err := g.Weight(u, v)
			if err != nil {
				return nil, fmt.Errorf("mcl: weight %q–%q: %w", u, v, err)
			}
			j := index[v]
			flow.Set(j, i, flow.At(j, i)+w)
		}
	}
	normalizeColumns(flow)

	return flow, nil
}

// normalizeColumns scales every column with a positive sum to sum to one.
func normalizeColumns(m *mat.Dense) {
	rows, cols := m.Dims()
	col := make([]float64, rows)
	for j := 0; j < cols; j++ {
		mat.Col(col, j, m)
		sum := floats.Sum(col)
		if sum <= 0 {
			continue
		}
		floats.Scale(1/sum, col)
		m.SetCol(j, col)
	}
}

// attractors assigns every column to the row with the largest value and
// groups the columns by that row. Clusters are ordered by their first
// vertex; members keep vertex order.
func attractors(flow *mat.Dense, vertices []string) [][]string {
	n := len(vertices)
	slot := make(map[int]int)
	var clusters [][]string
	col := make([]float64, n)
	for j := 0; j < n; j++ {
		mat.Col(col, j, flow)
		owner := j
		if floats.Max(col) > 0 {
			owner = floats.MaxIdx(col)
		}
		s, ok := slot[owner]
		if !ok {
			s = len(clusters)
			slot[owner] = s
			clusters = append(clusters, nil)
		}
		clusters[s] = append(clusters[s], vertices[j])
	}

	return clusters
}
