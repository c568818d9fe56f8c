package provider

import (
	"fmt"

	"github.com/katalvlaran/watset/clustering"
)

// Sentinel errors. All wrap clustering.ErrConfiguration.
var (
	// ErrUnknownAlgorithm is returned for a name missing from the registry.
	ErrUnknownAlgorithm = fmt.Errorf("%w: unknown algorithm", clustering.ErrConfiguration)

	// ErrBadParameter is returned when a parameter value cannot be parsed or is out of range.
	ErrBadParameter = fmt.Errorf("%w: invalid parameter", clustering.ErrConfiguration)

	// ErrMissingParameter is returned when a required parameter is absent.
	ErrMissingParameter = fmt.Errorf("%w: required parameter missing", clustering.ErrMissingOption)

	// ErrDuplicateAlgorithm is returned when a name is registered twice.
	ErrDuplicateAlgorithm = fmt.Errorf("%w: algorithm already registered", clustering.ErrConfiguration)

	// ErrNoAlgorithm is returned when no algorithm name is given.
	ErrNoAlgorithm = fmt.Errorf("%w: algorithm name is empty", clustering.ErrConfiguration)
)
