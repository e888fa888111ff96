// SPDX-License-Identifier: MIT
// Package: dlcutils/walker
//
// options.go — functional options and deterministic RNG policy.
//
// Contract:
//   - Options are functional (type Option func(*config)).
//   - Option constructors panic on nil inputs; walk operations never panic.
//   - Seeding is explicit via WithSeed or WithRand; when unset, a fixed
//     default seed keeps unseeded walks reproducible.

package walker

import "math/rand/v2"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0
// or no seed at all. Arbitrary but stable.
const defaultRNGSeed uint64 = 1

// Option customizes graph construction by mutating the config before the
// node and edge tables are built.
type Option func(*config)

// config carries the construction knobs resolved from options.
type config struct {
	src rand.Source
}

// newConfig resolves deterministic defaults, then applies options in order.
// Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{src: srcFromSeed(0)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed derives a deterministic random source from the given seed;
// seed 0 selects the fixed default seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.src = srcFromSeed(seed)
	}
}

// WithRand provides an explicit random source. Panics on nil; prefer
// WithSeed for reproducible runs.
func WithRand(src rand.Source) Option {
	if src == nil {
		panic("walker: WithRand(nil)")
	}
	return func(c *config) {
		c.src = src
	}
}

// srcFromSeed returns a deterministic PCG source; seed==0 maps to the
// fixed default seed.
func srcFromSeed(seed int64) rand.Source {
	s := uint64(seed)
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.NewPCG(s, s)
}
