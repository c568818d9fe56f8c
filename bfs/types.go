package bfs

import (
	"context"
	"errors"
)

// Graph is the neighbor source a traversal walks.
type Graph interface {
	HasVertex(id string) bool
	NeighborIDs(id string) ([]string, error)
}

var (
	// ErrNilGraph is returned for a nil or typed-nil graph.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrUnknownStart is returned when a start vertex is absent from the graph.
	ErrUnknownStart = errors.New("bfs: start vertex not found")

	// ErrNeighbors wraps a failing NeighborIDs call.
	ErrNeighbors = errors.New("bfs: neighbor lookup failed")
)

// Option tunes a traversal.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit func(id string, depth int) error
}

func newOptions(opts []Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext aborts the traversal when ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit calls fn for every vertex as it leaves the queue. An error
// from fn aborts the traversal.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *options) { o.onVisit = fn }
}

// Tree is the breadth-first tree of one traversal.
type Tree struct {
	// Root is the start vertex.
	Root string
	// Order lists reached vertices in visit order, Root first.
	Order []string
	// Depth is the hop distance from Root.
	Depth map[string]int
}
