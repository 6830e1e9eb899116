package builder

import "errors"

// ErrTooFewLocations indicates a size parameter below the constructor's minimum.
var ErrTooFewLocations = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic choice without WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the Target rejected a location or road.
var ErrConstructFailed = errors.New("builder: construction failed")
