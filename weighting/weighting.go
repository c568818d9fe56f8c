// Package weighting provides the neighbor weighting functions consumed by
// label-propagation clustering, and the registry that resolves a symbolic
// mode name into one of them.
//
// A Weighting scores how strongly neighbor pulls node towards its label.
// Every function here is pure: no state, safe for concurrent use.
//
//	label   — 1 for every adjacent neighbor (plain majority vote)
//	top     — the edge weight between node and neighbor
//	log     — edge weight / ln(1 + degree(neighbor))
//	linear  — edge weight / degree(neighbor)
//
// Mode names are matched case-insensitively; "lin" is an alias of "linear",
// and the legacy "nolog" is accepted with a warning.
package weighting

import (
	"fmt"
	"math"

	"github.com/katalvlaran/watset/clustering"
)

// Weighting computes the non-negative score of neighbor for node in g.
// node and neighbor must be adjacent; otherwise the graph's lookup error is
// returned.
type Weighting func(g clustering.Graph, node, neighbor string) (float64, error)

// Label scores every adjacent neighbor equally.
func Label() Weighting {
	return func(g clustering.Graph, node, neighbor string) (float64, error) {
		if _, err := g.Weight(node, neighbor); err != nil {
			return 0, err
		}

		return 1, nil
	}
}

// Top returns the edge weight between node and neighbor unmodified.
func Top() Weighting {
	return func(g clustering.Graph, node, neighbor string) (float64, error) {
		return g.Weight(node, neighbor)
	}
}

// Log divides the edge weight by the natural logarithm of one plus the
// neighbor's degree, damping the influence of hubs.
func Log() Weighting {
	return func(g clustering.Graph, node, neighbor string) (float64, error) {
		return byDegree(g, node, neighbor, func(deg float64) float64 { return math.Log1p(deg) })
	}
}

// Linear divides the edge weight by the neighbor's degree.
func Linear() Weighting {
	return func(g clustering.Graph, node, neighbor string) (float64, error) {
		return byDegree(g, node, neighbor, func(deg float64) float64 { return deg })
	}
}

// byDegree returns weight(node, neighbor) / norm(degree(neighbor)).
func byDegree(g clustering.Graph, node, neighbor string, norm func(float64) float64) (float64, error) {
	w, err := g.Weight(node, neighbor)
	if err != nil {
		return 0, err
	}
	deg, err := g.Degree(neighbor)
	if err != nil {
		return 0, err
	}
	d := norm(float64(deg))
	if d <= 0 {
		return 0, fmt.Errorf("weighting: neighbor %q has degree %d", neighbor, deg)
	}

	return w / d, nil
}
