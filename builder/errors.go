// SPDX-License-Identifier: MIT
// Package: phylopso/builder
//
// errors.go: sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewMutations indicates a non-positive mutation count.
var ErrTooFewMutations = errors.New("builder: mutation count must be positive")

// ErrMutationOutOfRange indicates a mutation id outside [0, mutations).
var ErrMutationOutOfRange = errors.New("builder: mutation id out of range")

// ErrParentNotFound indicates that no gain of the requested parent mutation
// exists in the tree under construction.
var ErrParentNotFound = errors.New("builder: parent mutation not found")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor, a names/mutations mismatch
// or a built tree that violates the tree invariants.
var ErrConstructFailed = errors.New("builder: construction failed")
