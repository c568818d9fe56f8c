package provider_test

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/core"
	"github.com/katalvlaran/watset/embedding"
	"github.com/katalvlaran/watset/provider"
	"github.com/katalvlaran/watset/weighting"
)

// exampleGraph builds vertices a..e with edges a–b, a–c (twice) and d–e.
func exampleGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithMultiEdges())
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		require.NoError(t, g.AddVertex(id))
	}
	for _, e := range [][2]string{{"a", "b"}, {"a", "c"}, {"a", "c"}, {"d", "e"}} {
		_, err := g.AddEdge(e[0], e[1], 1)
		require.NoError(t, err)
	}

	return g
}

// ProviderSuite checks name resolution and the built-in algorithms.
type ProviderSuite struct {
	suite.Suite
	graph *core.Graph
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) SetupTest() {
	s.graph = exampleGraph(s.T())
}

func (s *ProviderSuite) cluster(name string, params map[string]string) *clustering.Clustering {
	p, err := provider.New(name, params, provider.WithLogger(zap.NewNop()))
	s.Require().NoError(err)
	c, err := p.Cluster(s.graph)
	s.Require().NoError(err)

	return c
}

func (s *ProviderSuite) TestNames() {
	s.Equal([]string{"components", "cw", "empty", "maxmax", "mcl", "mcl-bin", "singleton", "spectral", "together"},
		provider.Names())
}

func (s *ProviderSuite) TestTrivialAlgorithms() {
	s.Equal(0, s.cluster("empty", nil).Len())
	s.Equal([]int{1, 1, 1, 1, 1}, s.cluster("singleton", nil).Sizes())
	s.Equal([]int{5}, s.cluster("together", map[string]string{}).Sizes())
	s.Equal([][]string{{"a", "b", "c"}, {"d", "e"}}, s.cluster("components", nil).Clusters())
}

func (s *ProviderSuite) TestNameIsCaseInsensitive() {
	p, err := provider.New("  TOGETHER ", nil)
	s.Require().NoError(err)
	s.Equal("together", p.Name())
}

func (s *ProviderSuite) TestUnknownAlgorithm() {
	_, err := provider.New("bogus", nil)
	s.ErrorIs(err, provider.ErrUnknownAlgorithm)
	s.ErrorIs(err, clustering.ErrConfiguration)
	s.Contains(err.Error(), "bogus")

	_, err = provider.New("", nil)
	s.ErrorIs(err, provider.ErrNoAlgorithm)
}

func (s *ProviderSuite) TestPartitioningAlgorithms() {
	for _, tc := range []struct {
		name   string
		params map[string]string
	}{
		{"cw", nil},
		{"cw", map[string]string{"mode": "log", "iterations": "5", "seed": "7"}},
		{"mcl", map[string]string{"e": "2", "r": "1.5"}},
		{"maxmax", nil},
		{"spectral", map[string]string{"k": "2", "laplacian": "unnormalized"}},
	} {
		c := s.cluster(tc.name, tc.params)
		s.NoError(clustering.CheckPartition(c, s.graph.Vertices()), tc.name)
	}
}

func (s *ProviderSuite) TestCWModes() {
	want := s.cluster("cw", nil).Clusters()
	for _, mode := range []string{"top", "TOP", " Top "} {
		s.Equal(want, s.cluster("cw", map[string]string{"mode": mode}).Clusters(), mode)
	}

	_, err := provider.New("cw", map[string]string{"mode": "bogus"})
	s.ErrorIs(err, weighting.ErrUnknownMode)
	s.ErrorIs(err, clustering.ErrConfiguration)
	s.Contains(err.Error(), "cw")
}

func (s *ProviderSuite) TestCWNoLogWarnsOnce() {
	obs, logs := observer.New(zapcore.WarnLevel)
	p, err := provider.New("cw", map[string]string{"mode": "nolog"}, provider.WithLogger(zap.New(obs)))
	s.Require().NoError(err)

	for i := 0; i < 3; i++ {
		_, err = p.Cluster(s.graph)
		s.Require().NoError(err)
	}

	entries := logs.All()
	s.Require().Len(entries, 1, "the mode is resolved once, at construction")
	s.Equal("cw", entries[0].ContextMap()["algorithm"])
	s.Equal("linear", entries[0].ContextMap()["replacement"])
}

func (s *ProviderSuite) TestBadParameters() {
	for _, tc := range []struct {
		name   string
		params map[string]string
		want   error
	}{
		{"mcl", map[string]string{"e": "two"}, provider.ErrBadParameter},
		{"mcl", map[string]string{"e": "0"}, provider.ErrBadParameter},
		{"mcl", map[string]string{"r": "NaN"}, provider.ErrBadParameter},
		{"mcl", map[string]string{"r": "-1"}, provider.ErrBadParameter},
		{"cw", map[string]string{"iterations": "0"}, provider.ErrBadParameter},
		{"mcl-bin", nil, provider.ErrMissingParameter},
		{"mcl-bin", map[string]string{"bin": "/definitely/not/here/mcl"}, provider.ErrBadParameter},
		{"spectral", nil, provider.ErrMissingParameter},
		{"spectral", map[string]string{"k": "x"}, provider.ErrBadParameter},
		{"spectral", map[string]string{"k": "0"}, provider.ErrBadParameter},
		{"spectral", map[string]string{"k": "2", "laplacian": "weird"}, provider.ErrBadParameter},
	} {
		_, err := provider.New(tc.name, tc.params)
		s.ErrorIs(err, tc.want, "%s %v", tc.name, tc.params)
		s.ErrorIs(err, clustering.ErrConfiguration, "%s %v", tc.name, tc.params)
	}

	_, err := provider.New("spectral", nil)
	s.ErrorIs(err, clustering.ErrMissingOption)
}

func (s *ProviderSuite) TestMCLBin() {
	if runtime.GOOS == "windows" {
		s.T().Skip("shell scripts are not executable on windows")
	}
	bin := filepath.Join(s.T().TempDir(), "mcl")
	s.Require().NoError(os.WriteFile(bin, []byte("#!/bin/sh\ncat >/dev/null\nprintf 'a\\tb\\tc\\nd\\te\\n'\n"), 0o755))

	_, err := provider.New("mcl-bin", map[string]string{"bin": bin, "threads": "0"})
	s.ErrorIs(err, provider.ErrBadParameter)

	c := s.cluster("mcl-bin", map[string]string{"bin": bin, "r": "1.8", "threads": "2"})
	s.Equal([][]string{{"a", "b", "c"}, {"d", "e"}}, c.Clusters())
}

func (s *ProviderSuite) TestSpectralNumericalError() {
	p, err := provider.New("spectral", map[string]string{"k": "5"})
	s.Require().NoError(err, "k is only checked against a graph")

	_, err = p.Cluster(s.graph)
	s.ErrorIs(err, embedding.ErrTooManyDimensions)
	s.ErrorIs(err, clustering.ErrNumerical)
}

func (s *ProviderSuite) TestDirectedGraphRejectedAtApply() {
	p, err := provider.New("cw", nil)
	s.Require().NoError(err)

	alg, err := p.Apply(core.NewGraph(core.WithDirected(true)))
	s.ErrorIs(err, clustering.ErrDirectedGraph)
	s.Nil(alg)
}

func (s *ProviderSuite) TestReusableAcrossGraphs() {
	p, err := provider.New("components", nil)
	s.Require().NoError(err)

	other := core.NewGraph()
	_, err = other.AddEdge("x", "y", 1)
	s.Require().NoError(err)

	first, err := p.Apply(s.graph)
	s.Require().NoError(err)
	second, err := p.Apply(other)
	s.Require().NoError(err)
	s.NotSame(first, second)

	c1, err := first.Clustering()
	s.Require().NoError(err)
	c2, err := second.Clustering()
	s.Require().NoError(err)
	s.Equal(2, c1.Len())
	s.Equal([][]string{{"x", "y"}}, c2.Clusters())
}

func (s *ProviderSuite) TestConcurrentApply() {
	p, err := provider.New("cw", map[string]string{"mode": "top"})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	results := make([][][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := p.Cluster(s.graph)
			if err == nil {
				results[i] = c.Clusters()
			}
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		s.Equal(results[0], r)
	}
	s.NotEmpty(results[0])
}

func (s *ProviderSuite) TestParamsAreCopied() {
	params := map[string]string{"mode": "top"}
	p, err := provider.New("cw", params)
	s.Require().NoError(err)

	params["mode"] = "bogus"
	s.Equal(map[string]string{"mode": "top"}, p.Params())
}

func TestRegistry(t *testing.T) {
	r := provider.NewRegistry()
	require.NoError(t, r.Register("Custom", func(provider.Params, *zap.Logger) (clustering.Builder, error) {
		return clustering.SingletonBuilder, nil
	}))

	err := r.Register("custom", func(provider.Params, *zap.Logger) (clustering.Builder, error) { return nil, nil })
	assert.ErrorIs(t, err, provider.ErrDuplicateAlgorithm)
	assert.ErrorIs(t, r.Register(" ", nil), provider.ErrNoAlgorithm)
	assert.ErrorIs(t, r.Register("nil", nil), clustering.ErrConfiguration)
	assert.Equal(t, []string{"custom"}, r.Names())

	p, err := provider.New("CUSTOM", nil, provider.WithRegistry(r))
	require.NoError(t, err)
	c, err := p.Cluster(exampleGraph(t))
	require.NoError(t, err)
	assert.Equal(t, 5, c.Len())

	_, err = provider.New("cw", nil, provider.WithRegistry(r))
	assert.ErrorIs(t, err, provider.ErrUnknownAlgorithm)

	assert.Panics(t, func() { r.MustRegister("custom", nil) })
}

func TestParams(t *testing.T) {
	p := provider.Params{"n": " 7 ", "f": "2.5", "bad": "x", "zero": "0", "s": "  hi  "}

	n, err := p.Int("n", 0)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = p.Int("missing", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = p.Int("bad", 0)
	assert.ErrorIs(t, err, provider.ErrBadParameter)
	assert.Contains(t, err.Error(), "bad")

	_, err = p.RequiredInt("missing")
	assert.ErrorIs(t, err, provider.ErrMissingParameter)

	f, err := p.Float("f", 0)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = p.Float("bad", 0)
	assert.ErrorIs(t, err, provider.ErrBadParameter)

	threads, err := p.Threads("missing")
	require.NoError(t, err)
	assert.Equal(t, runtime.NumCPU(), threads)

	_, err = p.Threads("zero")
	assert.ErrorIs(t, err, provider.ErrBadParameter)

	assert.Equal(t, "hi", p.String("s", ""))
	assert.Equal(t, "def", p.String("missing", "def"))
	assert.True(t, p.Has("zero"))
	assert.False(t, p.Has("missing"))

	_, err = p.Path("missing")
	assert.ErrorIs(t, err, provider.ErrMissingParameter)

	dir := t.TempDir()
	_, err = provider.Params{"bin": dir}.Path("bin")
	assert.ErrorIs(t, err, provider.ErrBadParameter)

	file := filepath.Join(dir, "tool")
	require.NoError(t, os.WriteFile(file, nil, 0o600))
	got, err := provider.Params{"bin": file}.Path("bin")
	require.NoError(t, err)
	assert.Equal(t, file, got)
	assert.Equal(t, "7", p.String("n", ""))
}

// TestReproducibleAcrossRebuilds rebuilds a weighted multigraph from scratch
// and checks that every weight-sensitive algorithm returns the same clusters.
func TestReproducibleAcrossRebuilds(t *testing.T) {
	build := func() *core.Graph {
		g := core.NewGraph(core.WithMultiEdges())
		for _, e := range []struct {
			u, v string
			w    float64
		}{
			{"a", "b", 0.1}, {"a", "b", 0.2}, {"a", "b", 0.3},
			{"a", "c", 0.3}, {"c", "a", 0.3}, {"b", "c", 0.6},
			{"c", "d", 0.1}, {"c", "d", 0.2}, {"d", "c", 0.3},
			{"d", "e", 0.6}, {"e", "f", 0.4}, {"d", "f", 0.2},
		} {
			_, err := g.AddEdge(e.u, e.v, e.w)
			require.NoError(t, err)
		}

		return g
	}

	for _, tc := range []struct {
		name   string
		params provider.Params
	}{
		{"cw", provider.Params{"mode": "top"}},
		{"cw", provider.Params{"mode": "log"}},
		{"mcl", nil},
		{"maxmax", nil},
		{"spectral", provider.Params{"k": "2"}},
	} {
		p, err := provider.New(tc.name, tc.params, provider.WithLogger(zap.NewNop()))
		require.NoError(t, err)

		first, err := p.Cluster(build())
		require.NoError(t, err)
		for i := 0; i < 20; i++ {
			again, err := p.Cluster(build())
			require.NoError(t, err)
			require.Equal(t, first.Clusters(), again.Clusters(), "%s rebuild %d", tc.name, i)
		}
	}
}
