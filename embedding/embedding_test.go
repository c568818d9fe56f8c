package embedding_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/core"
	"github.com/katalvlaran/watset/embedding"
)

// twoTriangles builds triangles a-b-c and d-e-f joined by a weak c–d bridge.
func twoTriangles(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	edges := []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 1}, {"b", "c", 1}, {"a", "c", 1},
		{"d", "e", 1}, {"e", "f", 1}, {"d", "f", 1},
		{"c", "d", 0.1},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestIndex(t *testing.T) {
	g := twoTriangles(t)
	ix := embedding.NewIndex(g)

	require.Equal(t, 6, ix.Len())
	for i, v := range g.Vertices() {
		assert.Equal(t, v, ix.Vertex(i))
		pos, ok := ix.Position(v)
		require.True(t, ok)
		assert.Equal(t, i, pos)
	}
	_, ok := ix.Position("zz")
	assert.False(t, ok)
}

func TestAdjacency_SumsParallelEdges(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"a", "c"}, {"d", "e"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	a, err := embedding.Adjacency(g, embedding.NewIndex(g))
	require.NoError(t, err)

	assert.Equal(t, 1.0, a.At(0, 1))
	assert.Equal(t, 2.0, a.At(0, 2))
	assert.Equal(t, 2.0, a.At(2, 0))
	assert.Equal(t, 1.0, a.At(3, 4))
	assert.Equal(t, 0.0, a.At(0, 3))
}

func TestLaplacianOf(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 2)
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("z"))

	a, err := embedding.Adjacency(g, embedding.NewIndex(g))
	require.NoError(t, err)

	un, err := embedding.LaplacianOf(a, embedding.Unnormalized)
	require.NoError(t, err)
	assert.Equal(t, 2.0, un.At(0, 0))
	assert.Equal(t, -2.0, un.At(0, 1))
	assert.Equal(t, 0.0, un.At(2, 2))

	sym, err := embedding.LaplacianOf(a, embedding.Symmetric)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, sym.At(0, 0), 1e-12)
	assert.InDelta(t, -1.0, sym.At(0, 1), 1e-12)
	assert.Equal(t, 1.0, sym.At(2, 2), "isolated vertex keeps a unit diagonal")

	_, err = embedding.LaplacianOf(a, embedding.Laplacian(7))
	assert.ErrorIs(t, err, embedding.ErrBadLaplacian)
	assert.ErrorIs(t, err, clustering.ErrConfiguration)
}

func TestSpectral_TwoVertices(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	for _, variant := range []embedding.Laplacian{embedding.Symmetric, embedding.Unnormalized} {
		t.Run(variant.String(), func(t *testing.T) {
			points, err := embedding.Spectral(g, embedding.NewIndex(g), 1, embedding.WithLaplacian(variant))
			require.NoError(t, err)
			require.Len(t, points, 2)

			assert.Equal(t, "a", points[0].Node)
			assert.Equal(t, "b", points[1].Node)
			assert.InDelta(t, 1/math.Sqrt2, points[0].Vector[0], 1e-9)
			assert.InDelta(t, -1/math.Sqrt2, points[1].Vector[0], 1e-9)
		})
	}
}

func TestSpectral_FiedlerSeparatesTriangles(t *testing.T) {
	g := twoTriangles(t)

	for _, variant := range []embedding.Laplacian{embedding.Symmetric, embedding.Unnormalized} {
		t.Run(variant.String(), func(t *testing.T) {
			points, err := embedding.Spectral(g, embedding.NewIndex(g), 1, embedding.WithLaplacian(variant))
			require.NoError(t, err)

			sign := make(map[string]bool, len(points))
			for _, p := range points {
				require.Len(t, p.Vector, 1)
				sign[p.Node] = p.Vector[0] > 0
			}
			assert.Equal(t, sign["a"], sign["b"])
			assert.Equal(t, sign["a"], sign["c"])
			assert.Equal(t, sign["d"], sign["e"])
			assert.Equal(t, sign["d"], sign["f"])
			assert.NotEqual(t, sign["a"], sign["d"])
		})
	}
}

func TestSpectral_Deterministic(t *testing.T) {
	g := twoTriangles(t)
	ix := embedding.NewIndex(g)

	first, err := embedding.Spectral(g, ix, 3)
	require.NoError(t, err)
	second, err := embedding.Spectral(g, ix, 3)
	require.NoError(t, err)

	require.Len(t, first, 6)
	for i := range first {
		assert.Equal(t, first[i].Node, second[i].Node)
		assert.InDeltaSlice(t, first[i].Vector, second[i].Vector, 1e-12)
		assert.Len(t, first[i].Vector, 3)
	}
}

func TestSpectral_DimensionErrors(t *testing.T) {
	g := twoTriangles(t)
	ix := embedding.NewIndex(g)

	_, err := embedding.Spectral(g, ix, 6)
	assert.ErrorIs(t, err, embedding.ErrTooManyDimensions)
	assert.ErrorIs(t, err, clustering.ErrNumerical)

	_, err = embedding.Spectral(g, ix, 0)
	assert.ErrorIs(t, err, embedding.ErrBadDimension)
	assert.ErrorIs(t, err, clustering.ErrConfiguration)

	_, err = embedding.Spectral(g, ix, 5)
	assert.NoError(t, err, "k = n-1 is the largest admissible dimension")
}

func TestPointClustererFunc(t *testing.T) {
	var pc embedding.PointClusterer = embedding.PointClustererFunc(
		func(points []embedding.NodeEmbedding) ([][]embedding.NodeEmbedding, error) {
			return [][]embedding.NodeEmbedding{points}, nil
		})

	groups, err := pc.Cluster([]embedding.NodeEmbedding{{Node: "a"}, {Node: "b"}})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
}

func TestAdjacency_RejectsDirected(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, err := g.AddEdge("a", "b", 1)
	require.NoError(t, err)

	_, err = embedding.Spectral(g, embedding.NewIndex(g), 1)
	assert.ErrorIs(t, err, clustering.ErrDirectedGraph)
}

// weightedMultigraph rebuilds the same undirected multigraph from scratch,
// with parallel edges whose sum depends on addition order.
func weightedMultigraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	edges := []struct {
		u, v string
		w    float64
	}{
		{"a", "b", 0.1}, {"a", "b", 0.2}, {"a", "b", 0.3},
		{"b", "c", 0.7}, {"c", "a", 0.3}, {"a", "c", 0.6},
		{"d", "e", 0.1}, {"e", "d", 0.2}, {"d", "e", 0.3},
		{"e", "f", 1.1}, {"d", "f", 0.9},
		{"c", "d", 0.05}, {"d", "c", 0.01},
	}
	for _, e := range edges {
		_, err := g.AddEdge(e.u, e.v, e.w)
		require.NoError(t, err)
	}

	return g
}

func TestSpectral_ReproducibleAcrossRebuilds(t *testing.T) {
	ref := weightedMultigraph(t)
	want, err := embedding.Spectral(ref, embedding.NewIndex(ref), 2)
	require.NoError(t, err)

	for i := 0; i < 50; i++ {
		g := weightedMultigraph(t)
		got, err := embedding.Spectral(g, embedding.NewIndex(g), 2)
		require.NoError(t, err)
		require.Equal(t, want, got, "rebuild %d", i)
	}
}
