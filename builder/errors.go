// SPDX-License-Identifier: MIT
// Package: ugraph/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with "%s: ...: %w" (method tag first).
//   • Constructors never panic; option constructors panic on meaningless input.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols) below the
// constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that cannot proceed (nil constructor,
// nil topology).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrDuplicateID indicates a document declares the same node identifier twice.
var ErrDuplicateID = errors.New("builder: duplicate node id")

// ErrUnknownNode indicates an edge endpoint that no node declares.
var ErrUnknownNode = errors.New("builder: edge references unknown node")

// ErrEmptyDocument indicates a graph document with no content.
var ErrEmptyDocument = errors.New("builder: empty document")
