// SPDX-License-Identifier: MIT
// Package: dlcutils/netgen
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - genConfig is the single source of truth for all generator knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newGenConfig applies options in-order (later overrides earlier,
//     except Random modes which accumulate so that over-supplying them is
//     detectable).

package netgen

import "math/rand/v2"

// randomModeKind tags the validated variants of Random's configuration.
type randomModeKind int

const (
	// modeEdgeProbability marks per-pair Bernoulli inclusion with p.
	modeEdgeProbability randomModeKind = iota
	// modeEdgeCount marks a fixed count of m distinct edges.
	modeEdgeCount
)

// randomMode is the tagged configuration variant carried by EdgeProbability
// and EdgeCount. Only the field matching kind is meaningful.
type randomMode struct {
	kind randomModeKind
	p    float64
	m    int
}

// genConfig aggregates all knobs used by the generators.
// It is passed by VALUE to implementations (immutable to callers).
type genConfig struct {
	// Random source for stochastic choices; never nil after resolution.
	src rand.Source
	// Accumulated Random mode variants; Random requires exactly one.
	modes []randomMode
}

// newGenConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newGenConfig(opts ...Option) genConfig {
	cfg := genConfig{
		src: srcFromSeed(0), // fixed default seed; unseeded builds stay reproducible
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
