// Package kmeans implements the default point clusterer used by spectral
// clustering: k-means++ seeding followed by Lloyd refinement.
//
// Implementation:
//   - Stage 1: Validate input (consistent dimensionality).
//   - Stage 2: Seed min(k, n) centroids with k-means++ (squared distances).
//   - Stage 3: Alternate assignment and centroid update until no point moves
//     or the iteration cap is reached. An emptied centroid is re-seeded from
//     the point farthest from its own centroid.
//   - Stage 4: Emit non-empty groups ordered by their first point.
//
// Randomness comes from a seeded math/rand source created per Cluster call,
// so a given seed always yields the same grouping for the same input.
//
// Complexity: O(I·n·k·d) time for I iterations, O(n·d + k·d) space.
package kmeans

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/embedding"
)

// Defaults.
const (
	DefaultMaxIterations = 100
	DefaultSeed          = int64(1)
)

// ErrDimensionMismatch is returned when input vectors differ in length.
var ErrDimensionMismatch = errors.New("kmeans: points have different dimensions")

// Option configures a KMeans clusterer.
type Option func(*options)

type options struct {
	k       int
	maxIter int
	seed    int64
}

// WithK sets the number of groups (required, ≥ 1). Fewer groups are
// returned when there are fewer distinct points.
func WithK(k int) Option {
	return func(o *options) { o.k = k }
}

// WithMaxIterations caps the Lloyd iterations (default 100, ≥ 1).
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIter = n }
}

// WithSeed sets the random seed (default 1).
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// KMeans partitions points into at most k groups. It implements
// embedding.PointClusterer and is safe for concurrent use.
type KMeans struct {
	k       int
	maxIter int
	seed    int64
}

var _ embedding.PointClusterer = (*KMeans)(nil)

// New validates opts and returns a clusterer.
//
// Errors: clustering.ErrMissingOption when WithK is absent,
// clustering.ErrBadOption for k < 1 or a non-positive iteration cap.
func New(opts ...Option) (*KMeans, error) {
	o := options{maxIter: DefaultMaxIterations, seed: DefaultSeed}
	for _, opt := range opts {
		opt(&o)
	}
	switch {
	case o.k == 0:
		return nil, fmt.Errorf("%w: kmeans requires k", clustering.ErrMissingOption)
	case o.k < 0:
		return nil, fmt.Errorf("%w: kmeans k=%d", clustering.ErrBadOption, o.k)
	case o.maxIter < 1:
		return nil, fmt.Errorf("%w: kmeans max iterations=%d", clustering.ErrBadOption, o.maxIter)
	}

	return &KMeans{k: o.k, maxIter: o.maxIter, seed: o.seed}, nil
}

// K returns the configured number of groups.
func (km *KMeans) K() int { return km.k }

// Cluster assigns every point to exactly one non-empty group.
// An empty input yields no groups.
func (km *KMeans) Cluster(points []embedding.NodeEmbedding) ([][]embedding.NodeEmbedding, error) {
	n := len(points)
	if n == 0 {
		return nil, nil
	}
	dim := len(points[0].Vector)
	for _, p := range points[1:] {
		if len(p.Vector) != dim {
			return nil, fmt.Errorf("%w: %q has %d, want %d", ErrDimensionMismatch, p.Node, len(p.Vector), dim)
		}
	}

	k := km.k
	if k > n {
		k = n
	}
	rng := rand.New(rand.NewSource(km.seed))
	centroids := seed(points, k, rng)

	assign := make([]int, n)
	for i := range assign {
		assign[i] = -1
	}
	for iter := 0; iter < km.maxIter; iter++ {
		if !reassign(points, centroids, assign) {
			break
		}
		update(points, centroids, assign)
	}

	return group(points, assign, k), nil
}

// seed picks k initial centroids with k-means++.
func seed(points []embedding.NodeEmbedding, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	centroids := make([][]float64, 0, k)
	centroids = append(centroids, clone(points[rng.Intn(n)].Vector))

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.MaxFloat64
	}
	for len(centroids) < k {
		last := centroids[len(centroids)-1]
		var total float64
		for i, p := range points {
			d := sqDistance(p.Vector, last)
			if d < dist[i] {
				dist[i] = d
			}
			total += dist[i]
		}

		// All points coincide with a centroid: any choice is as good.
		if total == 0 {
			centroids = append(centroids, clone(points[rng.Intn(n)].Vector))
			continue
		}

		target := rng.Float64() * total
		chosen := n - 1
		var cumulative float64
		for i, d := range dist {
			cumulative += d
			if cumulative >= target && d > 0 {
				chosen = i
				break
			}
		}
		centroids = append(centroids, clone(points[chosen].Vector))
	}

	return centroids
}

// reassign moves every point to its nearest centroid (lowest index on ties)
// and reports whether any assignment changed.
func reassign(points []embedding.NodeEmbedding, centroids [][]float64, assign []int) bool {
	changed := false
	for i, p := range points {
		best, bestDist := 0, math.Inf(1)
		for c, centroid := range centroids {
			if d := sqDistance(p.Vector, centroid); d < bestDist {
				best, bestDist = c, d
			}
		}
		if assign[i] != best {
			assign[i] = best
			changed = true
		}
	}

	return changed
}

// update recomputes centroids as member means. A centroid left without
// members is moved onto the point farthest from its own centroid.
func update(points []embedding.NodeEmbedding, centroids [][]float64, assign []int) {
	counts := make([]int, len(centroids))
	sums := make([][]float64, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, len(centroids[c]))
	}
	for i, p := range points {
		floats.Add(sums[assign[i]], p.Vector)
		counts[assign[i]]++
	}

	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		copy(centroids[c], sums[c])
	}

	for c := range centroids {
		if counts[c] > 0 {
			continue
		}
		far, farDist := -1, -1.0
		for i, p := range points {
			if counts[assign[i]] < 2 {
				continue // do not empty another group
			}
			if d := sqDistance(p.Vector, centroids[assign[i]]); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			continue
		}
		copy(centroids[c], points[far].Vector)
		counts[assign[far]]--
		assign[far] = c
		counts[c] = 1
	}
}

// group collects points by assignment, dropping empty groups. Groups are
// ordered by their first member; members keep input order.
func group(points []embedding.NodeEmbedding, assign []int, k int) [][]embedding.NodeEmbedding {
	slot := make([]int, k)
	for c := range slot {
		slot[c] = -1
	}
	var out [][]embedding.NodeEmbedding
	for i, p := range points {
		c := assign[i]
		if slot[c] < 0 {
			slot[c] = len(out)
			out = append(out, nil)
		}
		out[slot[c]] = append(out[slot[c]], p)
	}

	return out
}

func sqDistance(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return d * d
}

func clone(v []float64) []float64 {
	return append([]float64(nil), v...)
}
