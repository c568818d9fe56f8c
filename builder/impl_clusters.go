package builder

import (
	"fmt"
	"math"

	"github.com/katalvlaran/watset/core"
)

const (
	methodCliques          = "Cliques"
	methodPlantedPartition = "PlantedPartition"
)

// Cliques returns a Constructor for count disjoint cliques of size vertices
// each, where consecutive cliques are linked by a single bridge edge of
// weight bridge between their first vertices. Vertex index c*size+i is
// member i of clique c. A bridge of 0 leaves the cliques disconnected.
//
// Requires count ≥ 1, size ≥ 1 and a finite bridge ≥ 0.
// Complexity: O(count·size²).
func Cliques(count, size int, bridge float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if count < 1 || size < 1 {
			return fmt.Errorf("%s: count=%d size=%d: %w", methodCliques, count, size, ErrTooFewVertices)
		}
		if bridge < 0 || math.IsNaN(bridge) || math.IsInf(bridge, 0) {
			return fmt.Errorf("%s: bridge=%g: %w", methodCliques, bridge, ErrInvalidWeight)
		}
		heads := make([]string, count)
		for c := 0; c < count; c++ {
			ids, err := addVertices(g, cfg, methodCliques, c*size, size)
			if err != nil {
				return err
			}
			heads[c] = ids[0]
			for i := 0; i < size; i++ {
				for j := i + 1; j < size; j++ {
					if err = addEdge(g, methodCliques, ids[i], ids[j], cfg.weightFn(cfg.rng)); err != nil {
						return err
					}
				}
			}
		}
		if bridge == 0 {
			return nil
		}
		for c := 0; c+1 < count; c++ {
			if err := addEdge(g, methodCliques, heads[c], heads[c+1], bridge); err != nil {
				return err
			}
		}

		return nil
	}
}

// PlantedPartition returns a Constructor for a stochastic block model with
// count blocks of size vertices: a pair inside one block is joined with
// probability pIn, a pair across blocks with probability pOut. Vertex index
// c*size+i is member i of block c, so the planted clustering is known.
//
// Requires count ≥ 1, size ≥ 1, pIn and pOut in [0,1] and an RNG.
// Complexity: O((count·size)²).
func PlantedPartition(count, size int, pIn, pOut float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if count < 1 || size < 1 {
			return fmt.Errorf("%s: count=%d size=%d: %w", methodPlantedPartition, count, size, ErrTooFewVertices)
		}
		if pIn < 0 || pIn > 1 || pOut < 0 || pOut > 1 {
			return fmt.Errorf("%s: pIn=%g pOut=%g: %w", methodPlantedPartition, pIn, pOut, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodPlantedPartition, ErrNeedRandSource)
		}
		n := count * size
		ids, err := addVertices(g, cfg, methodPlantedPartition, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				p := pOut
				if i/size == j/size {
					p = pIn
				}
				if cfg.rng.Float64() >= p {
					continue
				}
				if err = addEdge(g, methodPlantedPartition, ids[i], ids[j], cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
