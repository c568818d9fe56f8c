package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value so constructors cannot leak changes to each other.
type builderConfig struct {
	// idFn maps a zero-based index to a vertex ID.
	idFn IDFn
	// rng drives stochastic choices; nil means no randomness.
	rng *rand.Rand
	// weightFn produces intra-structure edge weights.
	weightFn WeightFn
}

// newBuilderConfig applies opts over deterministic defaults (later options win).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
