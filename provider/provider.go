package provider

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/watset/clustering"
)

// Option configures New.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	registry *Registry
}

// WithLogger sets the logger for configuration warnings (default zap.L()).
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithRegistry resolves names against r instead of DefaultRegistry.
func WithRegistry(r *Registry) Option {
	return func(o *options) { o.registry = r }
}

// Provider is a resolved algorithm configuration, reusable across graphs.
type Provider struct {
	name    string
	params  Params
	builder clustering.Builder
}

// New resolves name and params into a Provider. A nil params map is treated
// as empty. Every parameter is validated here, before any graph is seen.
//
// Errors: ErrNoAlgorithm, ErrUnknownAlgorithm, ErrBadParameter,
// ErrMissingParameter, weighting.ErrUnknownMode; all wrap
// clustering.ErrConfiguration and name the algorithm.
func New(name string, params map[string]string, opts ...Option) (*Provider, error) {
	o := options{registry: DefaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.L()
	}

	key := normalize(name)
	if key == "" {
		return nil, ErrNoAlgorithm
	}
	factory, ok := o.registry.Lookup(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}

	p := Params(params).clone()
	builder, err := factory(p, o.logger.With(zap.String("algorithm", key)))
	if err != nil {
		return nil, fmt.Errorf("provider: %s: %w", key, err)
	}

	return &Provider{name: key, params: p, builder: builder}, nil
}

// Name returns the normalized algorithm name.
func (p *Provider) Name() string { return p.name }

// Params returns a copy of the parameters the Provider was built with.
func (p *Provider) Params() map[string]string { return p.params.clone() }

// Apply builds a fresh algorithm instance for g.
func (p *Provider) Apply(g clustering.Graph) (clustering.Algorithm, error) {
	alg, err := p.builder.Build(g)
	if err != nil {
		return nil, fmt.Errorf("provider: %s: %w", p.name, err)
	}

	return alg, nil
}

// Cluster applies the Provider to g and computes the clustering.
func (p *Provider) Cluster(g clustering.Graph) (*clustering.Clustering, error) {
	alg, err := p.Apply(g)
	if err != nil {
		return nil, err
	}
	c, err := alg.Clustering()
	if err != nil {
		return nil, fmt.Errorf("provider: %s: %w", p.name, err)
	}

	return c, nil
}
