// SPDX-License-Identifier: MIT
// Package: phylopso/builder
//
// options.go: functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; constructors
// themselves never panic.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNames sets the mutation labels; the slice is copied.
func WithNames(names []string) BuilderOption {
	return func(c *builderConfig) {
		c.names = append([]string(nil), names...)
	}
}

// WithLossBudget sets k for the built tree. Panics on k < 0.
func WithLossBudget(k int) BuilderOption {
	if k < 0 {
		panic("builder: WithLossBudget(k<0)")
	}
	return func(c *builderConfig) {
		c.k = k
	}
}

// WithUIDScheme sets a deterministic uid generator, called with a running
// sequence number starting at 1. Panics on nil.
func WithUIDScheme(fn func(seq int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithUIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.uidFn = fn
	}
}
