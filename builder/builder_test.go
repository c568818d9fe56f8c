package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watset/builder"
	"github.com/katalvlaran/watset/core"
)

func TestBuildGraph_Classic(t *testing.T) {
	cases := []struct {
		name  string
		con   builder.Constructor
		verts int
		edges int
	}{
		{"complete-1", builder.Complete(1), 1, 0},
		{"complete-5", builder.Complete(5), 5, 10},
		{"path-4", builder.Path(4), 4, 3},
		{"star-6", builder.Star(6), 6, 5},
		{"cycle-5", builder.Cycle(5), 5, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(nil, nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.verts, g.VertexCount())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestBuildGraph_Validation(t *testing.T) {
	cases := []struct {
		name string
		con  builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"complete-0", builder.Complete(0), nil, builder.ErrTooFewVertices},
		{"path-1", builder.Path(1), nil, builder.ErrTooFewVertices},
		{"star-1", builder.Star(1), nil, builder.ErrTooFewVertices},
		{"cycle-2", builder.Cycle(2), nil, builder.ErrTooFewVertices},
		{"random-no-rng", builder.RandomSparse(4, 0.5), nil, builder.ErrNeedRandSource},
		{"random-bad-p", builder.RandomSparse(4, 1.5), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"cliques-0", builder.Cliques(0, 3, 0), nil, builder.ErrTooFewVertices},
		{"cliques-neg-bridge", builder.Cliques(2, 3, -1), nil, builder.ErrInvalidWeight},
		{"planted-no-rng", builder.PlantedPartition(2, 3, 1, 0), nil, builder.ErrNeedRandSource},
		{"planted-bad-p", builder.PlantedPartition(2, 3, -0.1, 0), []builder.BuilderOption{builder.WithSeed(1)}, builder.ErrInvalidProbability},
		{"nil-constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCliques_Structure(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithIDScheme(builder.PrefixIDFn("v"))},
		builder.Cliques(3, 4, 0.1))
	require.NoError(t, err)

	assert.Equal(t, 12, g.VertexCount())
	assert.Equal(t, 3*6+2, g.EdgeCount())

	w, err := g.Weight("v1", "v3")
	require.NoError(t, err)
	assert.Equal(t, builder.DefaultEdgeWeight, w)

	w, err = g.Weight("v4", "v0")
	require.NoError(t, err)
	assert.Equal(t, 0.1, w)

	assert.False(t, g.HasEdge("v1", "v5"))
	assert.True(t, g.HasEdge("v4", "v8"))
	assert.False(t, g.HasEdge("v0", "v8"))
}

func TestCliques_NoBridge(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cliques(2, 3, 0))
	require.NoError(t, err)
	assert.Equal(t, 6, g.EdgeCount())
	assert.False(t, g.HasEdge("0", "3"))
}

func TestPlantedPartition_Extremes(t *testing.T) {
	g, err := builder.BuildGraph(nil,
		[]builder.BuilderOption{builder.WithSeed(3)},
		builder.PlantedPartition(3, 4, 1, 0))
	require.NoError(t, err)
	assert.Equal(t, 3*6, g.EdgeCount(), "pIn=1, pOut=0 yields disjoint cliques")
	for _, e := range g.Edges() {
		var from, to int
		for i, id := range g.Vertices() {
			if id == e.From {
				from = i
			}
			if id == e.To {
				to = i
			}
		}
		assert.Equal(t, from/4, to/4, "edge %s–%s crosses blocks", e.From, e.To)
	}
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func() []*core.Edge {
		g, err := builder.BuildGraph(nil,
			[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformWeight(1, 2)},
			builder.RandomSparse(20, 0.3))
		require.NoError(t, err)

		return g.Edges()
	}
	a, b := build(), build()
	require.Len(t, b, len(a))
	for i := range a {
		assert.Equal(t, *a[i], *b[i])
		assert.GreaterOrEqual(t, a[i].Weight, 1.0)
		assert.Less(t, a[i].Weight, 2.0)
	}

	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithRand(rand.New(rand.NewSource(1)))},
		builder.RandomSparse(6, 0))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
	g, err = builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(6, 1))
	require.NoError(t, err)
	assert.Equal(t, 15, g.EdgeCount())
}

func TestBuildGraph_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithConstantWeight(2)},
		builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, 4, g.EdgeCount())
	assert.True(t, g.HasEdge("1", "0"))
	w, err := g.Weight("2", "1")
	require.NoError(t, err)
	assert.Equal(t, 2.0, w)
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "0", builder.DefaultIDFn(0))
	assert.Equal(t, "x12", builder.PrefixIDFn("x")(12))
	assert.Equal(t, "A", builder.ExcelColumnIDFn(0))
	assert.Equal(t, "Z", builder.ExcelColumnIDFn(25))
	assert.Equal(t, "AA", builder.ExcelColumnIDFn(26))
	assert.Equal(t, "AZ", builder.ExcelColumnIDFn(51))
	assert.Equal(t, "BA", builder.ExcelColumnIDFn(52))
	assert.Panics(t, func() { builder.ExcelColumnIDFn(-1) })
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(2, 1) })
	assert.Equal(t, builder.DefaultEdgeWeight, builder.UniformWeightFn(1, 3)(nil))
}
