package bfs

import (
	"fmt"
	"reflect"
)

// Reach runs a breadth-first traversal of g from start.
func Reach(g Graph, start string, opts ...Option) (*Tree, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	return walk(g, start, newOptions(opts), nil)
}

// Forest runs one traversal per vertex of roots that no earlier traversal
// reached, in the order given. Every reached vertex belongs to exactly one
// tree, so on a symmetric graph the trees are its connected components.
func Forest(g Graph, roots []string, opts ...Option) ([]*Tree, error) {
	if isNil(g) {
		return nil, ErrNilGraph
	}
	o := newOptions(opts)
	claimed := make(map[string]bool, len(roots))
	var trees []*Tree
	for _, r := range roots {
		if claimed[r] {
			continue
		}
		t, err := walk(g, r, o, claimed)
		if err != nil {
			return nil, err
		}
		for _, v := range t.Order {
			claimed[v] = true
		}
		trees = append(trees, t)
	}

	return trees, nil
}

// walk is the queue loop shared by Reach and Forest. Vertices in claimed
// are treated as already seen.
func walk(g Graph, start string, o options, claimed map[string]bool) (*Tree, error) {
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStart, start)
	}
	t := &Tree{
		Root:  start,
		Order: []string{start},
		Depth: map[string]int{start: 0},
	}

	// Order doubles as the queue: head indexes the next vertex to expand.
	for head := 0; head < len(t.Order); head++ {
		if err := o.ctx.Err(); err != nil {
			return nil, err
		}
		cur := t.Order[head]
		d := t.Depth[cur]
		if o.onVisit != nil {
			if err := o.onVisit(cur, d); err != nil {
				return nil, fmt.Errorf("bfs: visit %q: %w", cur, err)
			}
		}

		nbrs, err := g.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrNeighbors, cur, err)
		}
		for _, nb := range nbrs {
			if _, seen := t.Depth[nb]; seen || claimed[nb] {
				continue
			}
			t.Depth[nb] = d + 1
			t.Order = append(t.Order, nb)
		}
	}

	return t, nil
}

// isNil catches typed-nil pointers hidden in the interface.
func isNil(g Graph) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)

	return v.Kind() == reflect.Ptr && v.IsNil()
}
