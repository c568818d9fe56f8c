package builder

import (
	"fmt"

	"github.com/katalvlaran/watset/core"
)

const methodRandomSparse = "RandomSparse"

// RandomSparse returns a Constructor for an Erdős–Rényi G(n,p) graph: each
// unordered pair i<j is joined independently with probability p, pairs
// visited in lexicographic order.
//
// Requires n ≥ 1, p ∈ [0,1] and an RNG (WithSeed or WithRand).
// Complexity: O(n²).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodRandomSparse, n, ErrTooFewVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%g: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(g, cfg, methodRandomSparse, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, methodRandomSparse, ids[i], ids[j], cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
