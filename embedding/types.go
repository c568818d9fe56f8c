package embedding

import (
	"fmt"

	"github.com/katalvlaran/watset/clustering"
)

// NodeEmbedding attaches a coordinate vector to a graph vertex.
type NodeEmbedding struct {
	Node   string
	Vector []float64
}

// PointClusterer partitions labeled points in vector space.
//
// Every input point must appear in exactly one returned group, and groups
// must not be empty. Implementations may be randomized; callers inherit that
// non-determinism.
type PointClusterer interface {
	Cluster(points []NodeEmbedding) ([][]NodeEmbedding, error)
}

// PointClustererFunc adapts an ordinary function to PointClusterer.
type PointClustererFunc func(points []NodeEmbedding) ([][]NodeEmbedding, error)

// Cluster calls f(points).
func (f PointClustererFunc) Cluster(points []NodeEmbedding) ([][]NodeEmbedding, error) {
	return f(points)
}

// Laplacian selects the graph Laplacian variant.
type Laplacian int

const (
	// Symmetric is the normalized Laplacian I - D^-1/2·A·D^-1/2.
	Symmetric Laplacian = iota
	// Unnormalized is the combinatorial Laplacian D - A.
	Unnormalized
)

// String returns the variant name.
func (l Laplacian) String() string {
	switch l {
	case Symmetric:
		return "symmetric"
	case Unnormalized:
		return "unnormalized"
	default:
		return fmt.Sprintf("Laplacian(%d)", int(l))
	}
}

// Sentinel errors.
var (
	// ErrBadDimension is returned when k < 1.
	ErrBadDimension = fmt.Errorf("%w: embedding dimension must be at least 1", clustering.ErrBadOption)

	// ErrBadLaplacian is returned for an unknown Laplacian variant.
	ErrBadLaplacian = fmt.Errorf("%w: unknown Laplacian variant", clustering.ErrBadOption)

	// ErrTooManyDimensions is returned when k exceeds the n-1 non-trivial eigenvectors.
	ErrTooManyDimensions = fmt.Errorf("%w: embedding dimension exceeds vertex count minus one", clustering.ErrNumerical)

	// ErrEigenFailed is returned when the eigendecomposition does not converge.
	ErrEigenFailed = fmt.Errorf("%w: eigendecomposition failed", clustering.ErrNumerical)
)

// Index is a stable bijection between vertices and 0..n-1.
type Index struct {
	vertices []string
	position map[string]int
}

// NewIndex numbers g's vertices in g.Vertices() order.
func NewIndex(g clustering.Graph) *Index {
	vertices := g.Vertices()
	position := make(map[string]int, len(vertices))
	for i, v := range vertices {
		position[v] = i
	}

	return &Index{vertices: vertices, position: position}
}

// Len returns the number of indexed vertices.
func (ix *Index) Len() int { return len(ix.vertices) }

// Vertex returns the vertex at position i.
func (ix *Index) Vertex(i int) string { return ix.vertices[i] }

// Position returns the index of v and whether v is indexed.
func (ix *Index) Position(v string) (int, bool) {
	i, ok := ix.position[v]
	return i, ok
}
