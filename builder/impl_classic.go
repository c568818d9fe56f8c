package builder

import (
	"fmt"

	"github.com/katalvlaran/watset/core"
)

const (
	methodComplete = "Complete"
	methodPath     = "Path"
	methodStar     = "Star"
	methodCycle    = "Cycle"
)

// Complete returns a Constructor that builds K_n: n vertices, every pair
// joined once in lexicographic index order. Requires n ≥ 1.
// Complexity: O(n²).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < 1: %w", methodComplete, n, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodComplete, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(g, methodComplete, ids[i], ids[j], cfg.weightFn(cfg.rng)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// Path returns a Constructor that builds P_n: 0–1–…–(n-1). Requires n ≥ 2.
// Complexity: O(n).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodPath, n, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodPath, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = addEdge(g, methodPath, ids[i], ids[i+1], cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star returns a Constructor with hub index 0 joined to leaves 1..n-1.
// Requires n ≥ 2.
// Complexity: O(n).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 2 {
			return fmt.Errorf("%s: n=%d < 2: %w", methodStar, n, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodStar, 0, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodStar, ids[0], ids[i], cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds C_n: a path closed by (n-1)–0.
// Requires n ≥ 3.
// Complexity: O(n).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 3 {
			return fmt.Errorf("%s: n=%d < 3: %w", methodCycle, n, ErrTooFewVertices)
		}
		ids, err := addVertices(g, cfg, methodCycle, 0, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n], cfg.weightFn(cfg.rng)); err != nil {
				return err
			}
		}

		return nil
	}
}
