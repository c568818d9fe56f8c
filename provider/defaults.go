package provider

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/watset/clustering"
	"github.com/katalvlaran/watset/cw"
	"github.com/katalvlaran/watset/embedding"
	"github.com/katalvlaran/watset/kmeans"
	"github.com/katalvlaran/watset/maxmax"
	"github.com/katalvlaran/watset/mcl"
	"github.com/katalvlaran/watset/spectral"
	"github.com/katalvlaran/watset/weighting"
)

// Algorithm names registered in DefaultRegistry.
const (
	Empty      = "empty"
	Together   = "together"
	Singleton  = "singleton"
	Components = "components"
	CW         = "cw"
	MCL        = "mcl"
	MCLBin     = "mcl-bin"
	MaxMax     = "maxmax"
	Spectral   = "spectral"
)

func init() {
	DefaultRegistry.MustRegister(Empty, fixed(clustering.EmptyBuilder))
	DefaultRegistry.MustRegister(Together, fixed(clustering.TogetherBuilder))
	DefaultRegistry.MustRegister(Singleton, fixed(clustering.SingletonBuilder))
	DefaultRegistry.MustRegister(Components, fixed(clustering.ComponentsBuilder))
	DefaultRegistry.MustRegister(CW, newCW)
	DefaultRegistry.MustRegister(MCL, newMCL)
	DefaultRegistry.MustRegister(MCLBin, newMCLBin)
	DefaultRegistry.MustRegister(MaxMax, fixed(maxmax.Builder))
	DefaultRegistry.MustRegister(Spectral, newSpectral)
}

// fixed wraps a parameterless builder.
func fixed(b clustering.Builder) Factory {
	return func(Params, *zap.Logger) (clustering.Builder, error) { return b, nil }
}

func newCW(p Params, logger *zap.Logger) (clustering.Builder, error) {
	w, err := weighting.Parse(p.String("mode", ""), logger)
	if err != nil {
		return nil, err
	}
	iterations, err := p.Int("iterations", cw.DefaultIterations)
	if err != nil {
		return nil, err
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations=%d must be positive", ErrBadParameter, iterations)
	}
	seed, err := p.Int("seed", int(cw.DefaultSeed))
	if err != nil {
		return nil, err
	}

	return cw.Builder(cw.WithWeighting(w), cw.WithIterations(iterations), cw.WithSeed(int64(seed))), nil
}

func newMCL(p Params, _ *zap.Logger) (clustering.Builder, error) {
	e, err := p.Int("e", mcl.DefaultExpansion)
	if err != nil {
		return nil, err
	}
	if e < 1 {
		return nil, fmt.Errorf("%w: e=%d must be positive", ErrBadParameter, e)
	}
	r, err := inflation(p)
	if err != nil {
		return nil, err
	}
	iterations, err := p.Int("iterations", mcl.DefaultMaxIterations)
	if err != nil {
		return nil, err
	}
	if iterations < 1 {
		return nil, fmt.Errorf("%w: iterations=%d must be positive", ErrBadParameter, iterations)
	}

	return mcl.Builder(mcl.WithExpansion(e), mcl.WithInflation(r), mcl.WithMaxIterations(iterations)), nil
}

func newMCLBin(p Params, logger *zap.Logger) (clustering.Builder, error) {
	bin, err := p.Path("bin")
	if err != nil {
		return nil, err
	}
	r, err := inflation(p)
	if err != nil {
		return nil, err
	}
	threads, err := p.Threads("threads")
	if err != nil {
		return nil, err
	}

	return mcl.ExternalBuilder(
		mcl.WithBinary(bin),
		mcl.WithInflation(r),
		mcl.WithThreads(threads),
		mcl.WithLogger(logger),
	), nil
}

func inflation(p Params) (float64, error) {
	r, err := p.Float("r", mcl.DefaultInflation)
	if err != nil {
		return 0, err
	}
	if r <= 0 {
		return 0, fmt.Errorf("%w: r=%v must be positive", ErrBadParameter, r)
	}

	return r, nil
}

func newSpectral(p Params, _ *zap.Logger) (clustering.Builder, error) {
	k, err := p.RequiredInt("k")
	if err != nil {
		return nil, err
	}
	if k < 1 {
		return nil, fmt.Errorf("%w: k=%d must be positive", ErrBadParameter, k)
	}
	seed, err := p.Int("seed", int(kmeans.DefaultSeed))
	if err != nil {
		return nil, err
	}
	laplacian, err := parseLaplacian(p.String("laplacian", ""))
	if err != nil {
		return nil, err
	}

	km, err := kmeans.New(kmeans.WithK(k), kmeans.WithSeed(int64(seed)))
	if err != nil {
		return nil, err
	}

	return spectral.Builder(
		spectral.WithK(k),
		spectral.WithClusterer(km),
		spectral.WithLaplacian(laplacian),
	), nil
}

func parseLaplacian(name string) (embedding.Laplacian, error) {
	switch normalize(name) {
	case "", embedding.Symmetric.String():
		return embedding.Symmetric, nil
	case embedding.Unnormalized.String():
		return embedding.Unnormalized, nil
	default:
		return 0, fmt.Errorf("%w: laplacian=%q", ErrBadParameter, name)
	}
}
