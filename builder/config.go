// SPDX-License-Identifier: MIT
// Package: phylopso/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Defaults:
//   • rng    = nil        (RandomBinary fails with ErrNeedRandSource)
//   • names  = "1".."m"
//   • k      = 1
//   • uids   = uuid drawn from rng when set, otherwise "n1","n2",...

package builder

import (
	"math/rand"
	"strconv"

	"github.com/katalvlaran/phylopso/phylo"
)

const defaultLossBudget = 1

// builderConfig aggregates all knobs used by constructors.
type builderConfig struct {
	rng   *rand.Rand
	names []string
	k     int
	uidFn func(int) string

	// seq is shared by all constructors of one BuildTree call.
	seq *int
}

func newBuilderConfig(mutations int, opts ...BuilderOption) builderConfig {
	cfg := builderConfig{k: defaultLossBudget, seq: new(int)}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.names == nil {
		cfg.names = make([]string, mutations)
		for i := range cfg.names {
			cfg.names[i] = strconv.Itoa(i + 1)
		}
	}
	return cfg
}

// nextUID returns the uid of the next created node.
func (c builderConfig) nextUID() string {
	*c.seq++
	switch {
	case c.uidFn != nil:
		return c.uidFn(*c.seq)
	case c.rng != nil:
		return phylo.NewUID(c.rng)
	default:
		return "n" + strconv.Itoa(*c.seq)
	}
}

func (c builderConfig) gain(m int) *phylo.Node {
	return phylo.NewNode(phylo.Payload{UID: c.nextUID(), Name: c.names[m], MutationID: m})
}

func (c builderConfig) loss(m int) *phylo.Node {
	return phylo.NewNode(phylo.Payload{UID: c.nextUID(), Name: c.names[m], MutationID: m, Loss: true})
}
