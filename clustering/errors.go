package clustering

import (
	"errors"
	"fmt"
)

// Error taxonomy roots.
var (
	// ErrConfiguration marks a failure detected while building an algorithm:
	// missing or malformed options, unknown names, incompatible graphs.
	ErrConfiguration = errors.New("clustering: configuration error")

	// ErrNumerical marks a failure of a numerical step during computation.
	ErrNumerical = errors.New("clustering: numerical error")
)

// Configuration errors.
var (
	// ErrGraphNil is returned when a nil graph is passed to a builder.
	ErrGraphNil = fmt.Errorf("%w: graph is nil", ErrConfiguration)

	// ErrDirectedGraph is returned by algorithms that require an undirected graph.
	ErrDirectedGraph = fmt.Errorf("%w: graph must be undirected", ErrConfiguration)

	// ErrMissingOption is returned when a required option was not supplied.
	ErrMissingOption = fmt.Errorf("%w: required option not supplied", ErrConfiguration)

	// ErrBadOption is returned when an option carries an invalid value.
	ErrBadOption = fmt.Errorf("%w: invalid option value", ErrConfiguration)
)

// ErrNotPartition is returned by CheckPartition when clusters overlap, miss a
// vertex, or mention a vertex outside the expected set.
var ErrNotPartition = errors.New("clustering: clusters do not partition the vertex set")
