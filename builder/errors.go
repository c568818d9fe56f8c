package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidWeight indicates a negative or non-finite weight parameter.
var ErrInvalidWeight = errors.New("builder: invalid weight")

// ErrConstructFailed indicates a construction failure not covered above
// (for example a nil constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
