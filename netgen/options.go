// SPDX-License-Identifier: MIT
// Package: dlcutils/netgen
//
// options.go — functional options for the generators.
//
// Contract (strict):
//   - Options are functional (type Option func(*genConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs (nil
//     sources). Generators themselves MUST NOT panic; range violations on
//     recorded values surface as ErrInvalidParameter at construction time.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; everything flows through genConfig.

package netgen

import "math/rand/v2"

// Option customizes generator behavior by mutating a genConfig instance
// before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*genConfig)

// WithSeed derives a deterministic random source from the given seed.
// Use this in tests and experiments to lock outcomes; seed 0 selects the
// fixed default seed.
// Complexity: O(1).
func WithSeed(seed int64) Option {
	return func(c *genConfig) {
		c.src = srcFromSeed(seed)
	}
}

// WithRand provides an explicit random source. Panics on nil; prefer
// WithSeed for reproducible runs.
// Complexity: O(1).
func WithRand(src rand.Source) Option {
	if src == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("netgen: WithRand(nil)")
	}
	return func(c *genConfig) {
		c.src = src
	}
}

// EdgeProbability selects Bernoulli mode for Random: every unordered pair
// of distinct nodes is included independently with probability p. The
// range of p is validated by Random itself (ErrInvalidParameter), not
// here, so that construction never panics on runtime data.
// Complexity: O(1).
func EdgeProbability(p float64) Option {
	return func(c *genConfig) {
		c.modes = append(c.modes, randomMode{kind: modeEdgeProbability, p: p})
	}
}

// EdgeCount selects fixed-size mode for Random: exactly m distinct edges
// drawn uniformly from all unordered pairs. Exactly one of EdgeProbability
// and EdgeCount must be supplied; Random rejects zero or multiple modes
// with ErrInvalidParameter.
// Complexity: O(1).
func EdgeCount(m int) Option {
	return func(c *genConfig) {
		c.modes = append(c.modes, randomMode{kind: modeEdgeCount, m: m})
	}
}
