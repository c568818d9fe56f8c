package clustering

import "reflect"

// Graph is the read-only graph capability every algorithm consumes.
//
// Implementations must enumerate vertices in a stable order; algorithms use
// that order to derive reproducible vertex indices. Weight returns the total
// weight between two adjacent vertices and an error when they are not
// adjacent. *core.Graph satisfies this interface.
type Graph interface {
	Vertices() []string
	HasVertex(id string) bool
	NeighborIDs(id string) ([]string, error)
	Weight(from, to string) (float64, error)
	Degree(id string) (int, error)
	Directed() bool
}

// RequireGraph returns ErrGraphNil when g is nil or a typed-nil pointer.
func RequireGraph(g Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	if v := reflect.ValueOf(g); v.Kind() == reflect.Ptr && v.IsNil() {
		return ErrGraphNil
	}

	return nil
}

// RequireUndirected returns ErrGraphNil for a nil graph and
// ErrDirectedGraph for a directed one.
func RequireUndirected(g Graph) error {
	if err := RequireGraph(g); err != nil {
		return err
	}
	if g.Directed() {
		return ErrDirectedGraph
	}

	return nil
}

// symmetricView exposes a directed graph's adjacency with every arc mirrored.
// Traversals over it discover weakly connected components.
type symmetricView struct {
	vertices map[string]struct{}
	adj      map[string][]string
}

// newSymmetricView snapshots g's adjacency, adding the reverse of every arc.
// Neighbor order follows g's vertex order.
func newSymmetricView(g Graph) (*symmetricView, error) {
	order := g.Vertices()
	index := make(map[string]int, len(order))
	for i, v := range order {
		index[v] = i
	}

	linked := make(map[string]map[string]struct{}, len(order))
	link := func(u, v string) {
		if linked[u] == nil {
			linked[u] = make(map[string]struct{})
		}
		linked[u][v] = struct{}{}
	}
	for _, u := range order {
		nbrs, err := g.NeighborIDs(u)
		if err != nil {
			return nil, err
		}
		for _, v := range nbrs {
			link(u, v)
			link(v, u)
		}
	}

	view := &symmetricView{
		vertices: make(map[string]struct{}, len(order)),
		adj:      make(map[string][]string, len(order)),
	}
	for _, u := range order {
		view.vertices[u] = struct{}{}
		nbrs := make([]string, 0, len(linked[u]))
		for v := range linked[u] {
			nbrs = append(nbrs, v)
		}
		sortByIndex(nbrs, index)
		view.adj[u] = nbrs
	}

	return view, nil
}

func (s *symmetricView) HasVertex(id string) bool {
	_, ok := s.vertices[id]
	return ok
}

func (s *symmetricView) NeighborIDs(id string) ([]string, error) {
	return s.adj[id], nil
}
