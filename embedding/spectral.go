package embedding

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/watset/clustering"
)

// Option configures Spectral.
type Option func(*options)

type options struct {
	laplacian Laplacian
}

// WithLaplacian selects the Laplacian variant (default Symmetric).
func WithLaplacian(l Laplacian) Option {
	return func(o *options) { o.laplacian = l }
}

// Adjacency builds the symmetric weighted adjacency matrix of g under ix.
// Parallel edges contribute the sum of their weights; a self-loop lands on
// the diagonal. Directed graphs are rejected with clustering.ErrDirectedGraph.
//
// Complexity: O(n² + E) time, O(n²) space.
func Adjacency(g clustering.Graph, ix *Index) (*mat.SymDense, error) {
	if err := clustering.RequireUndirected(g); err != nil {
		return nil, err
	}
	n := ix.Len()
	a := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		u := ix.Vertex(i)
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, fmt.Errorf("embedding: neighbors of %q: %w", u, err)
		}
		for _, v := range nbrs {
			j, ok := ix.Position(v)
			if !ok {
				return nil, fmt.Errorf("embedding: neighbor %q of %q is not indexed", v, u)
			}
			if j < i {
				continue // each unordered pair once
			}
			w, err := g.Weight(u, v)
			if err != nil {
				return nil, fmt.Errorf("embedding: weight %q–%q: %w", u, v, err)
			}
			a.SetSym(i, j, w)
		}
	}

	return a, nil
}

// LaplacianOf returns the Laplacian variant of the adjacency matrix a.
// For the symmetric variant an isolated vertex gets a unit diagonal entry.
func LaplacianOf(a *mat.SymDense, variant Laplacian) (*mat.SymDense, error) {
	n := a.SymmetricDim()
	deg := make([]float64, n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			deg[i] += a.At(i, j)
		}
	}

	l := mat.NewSymDense(n, nil)
	switch variant {
	case Unnormalized:
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				if i == j {
					l.SetSym(i, i, deg[i]-a.At(i, i))
				} else {
					l.SetSym(i, j, -a.At(i, j))
				}
			}
		}
	case Symmetric:
		inv := make([]float64, n)
		for i, d := range deg {
			if d > 0 {
				inv[i] = 1 / math.Sqrt(d)
			}
		}
		for i := 0; i < n; i++ {
			for j := i; j < n; j++ {
				v := -inv[i] * a.At(i, j) * inv[j]
				if i == j {
					v++
				}
				l.SetSym(i, j, v)
			}
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrBadLaplacian, variant)
	}

	return l, nil
}

// Spectral computes a k-dimensional spectral embedding of g's vertices.
//
// Implementation:
//   - Stage 1: Validate k (1 ≤ k ≤ n-1).
//   - Stage 2: Build adjacency and Laplacian.
//   - Stage 3: Factorize with mat.EigenSym and order eigenpairs by eigenvalue.
//   - Stage 4: Skip the trivial eigenvector, keep the next k, sign-normalize.
//   - Stage 5: Vertex i receives row i across the kept eigenvectors.
//
// The result follows ix order.
func Spectral(g clustering.Graph, ix *Index, k int, opts ...Option) ([]NodeEmbedding, error) {
	o := options{laplacian: Symmetric}
	for _, opt := range opts {
		opt(&o)
	}

	n := ix.Len()
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d", ErrBadDimension, k)
	}
	if k > n-1 {
		return nil, fmt.Errorf("%w: k=%d, n=%d", ErrTooManyDimensions, k, n)
	}

	a, err := Adjacency(g, ix)
	if err != nil {
		return nil, err
	}
	l, err := LaplacianOf(a, o.laplacian)
	if err != nil {
		return nil, err
	}

	var es mat.EigenSym
	if ok := es.Factorize(l, true); !ok {
		return nil, ErrEigenFailed
	}
	values := es.Values(nil)
	var vectors mat.Dense
	es.VectorsTo(&vectors)

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(x, y int) bool { return values[order[x]] < values[order[y]] })

	columns := order[1 : k+1]
	signs := make([]float64, k)
	for d, col := range columns {
		signs[d] = columnSign(&vectors, col)
	}

	out := make([]NodeEmbedding, n)
	for i := 0; i < n; i++ {
		vec := make([]float64, k)
		for d, col := range columns {
			vec[d] = signs[d] * vectors.At(i, col)
		}
		out[i] = NodeEmbedding{Node: ix.Vertex(i), Vector: vec}
	}

	return out, nil
}

// signTolerance absorbs rounding noise when comparing component magnitudes.
const signTolerance = 1e-9

// columnSign returns the sign that makes the largest-magnitude component of
// column col positive. Components within signTolerance of the maximum count
// as tied and the first of them wins.
func columnSign(m *mat.Dense, col int) float64 {
	rows, _ := m.Dims()
	maxAbs := 0.0
	for i := 0; i < rows; i++ {
		maxAbs = math.Max(maxAbs, math.Abs(m.At(i, col)))
	}
	for i := 0; i < rows; i++ {
		v := m.At(i, col)
		if math.Abs(v) >= maxAbs-signTolerance {
			if v < 0 {
				return -1
			}
			break
		}
	}

	return 1
}
