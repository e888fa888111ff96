// SPDX-License-Identifier: MIT
// Package: dlcutils/netgen
//
// impl_random.go — implementation of Random(n, mode) in two variants.
//
// Canonical model:
//   - EdgeProbability(p): Erdős–Rényi G(n,p). Each unordered pair {i,j}
//     with i<j is included independently with probability p; expected size
//     is p·C(n,2).
//   - EdgeCount(m): G(n,m). Exactly m DISTINCT edges drawn uniformly from
//     the C(n,2) possible pairs. The reference behavior drew pairs with
//     replacement and could silently emit duplicates; this implementation
//     deliberately de-duplicates (see DESIGN.md), which keeps the
//     degree-equals-endpoints invariant intact at the cost of bit
//     compatibility with the reference.
//
// Contract:
//   - n ≥ 1; exactly one mode variant supplied (else ErrInvalidParameter).
//   - p in [0,1]; m in [0, C(n,2)] (else ErrInvalidParameter).
//   - No self-loops; each recorded pair satisfies From < To.
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   - p-mode: O(n²) Bernoulli trials.
//   - m-mode: O(n²) pair enumeration + O(n²) shuffle + O(m log m) ordering.
//
// Determinism:
//   - Stable trial order (i asc, then j asc, j>i) in p-mode; stable pair
//     enumeration before the seeded shuffle in m-mode.

package netgen

import (
	"math/rand/v2"
	"sort"

	"github.com/cranndarach/dlcutils/core"
)

// Random builds a random graph over n nodes. The mode must be supplied by
// exactly one of the EdgeProbability and EdgeCount options; zero or
// multiple mode variants fail with ErrInvalidParameter.
func Random(n int, opts ...Option) (*Graph, error) {
	cfg := newGenConfig(opts...)

	if err := validateMin(MethodRandom, "n", n, MinRandomNodes); err != nil {
		return nil, err
	}
	if len(cfg.modes) != 1 {
		return nil, genErrorf(MethodRandom, ErrInvalidParameter,
			"exactly one of EdgeProbability and EdgeCount must be supplied, got %d modes", len(cfg.modes))
	}

	mode := cfg.modes[0]
	switch mode.kind {
	case modeEdgeProbability:
		return randomByProbability(n, mode.p, cfg)
	case modeEdgeCount:
		return randomByCount(n, mode.m, cfg)
	default:
		return nil, genErrorf(MethodRandom, ErrInvalidParameter, "unknown mode kind %d", mode.kind)
	}
}

// randomByProbability samples G(n,p): one Bernoulli trial per unordered
// pair of distinct nodes, in stable (i asc, j asc) order.
func randomByProbability(n int, p float64, cfg genConfig) (*Graph, error) {
	if err := validateProbability(MethodRandom, "p", p); err != nil {
		return nil, err
	}

	g := newGraph(n)
	r := rand.New(cfg.src)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			if r.Float64() < p {
				g.link(i, j)
			}
		}
	}

	return g, nil
}

// randomByCount samples G(n,m): a uniform m-subset of all unordered pairs.
// The chosen pairs are recorded in ascending (From, To) order so the edge
// list is stable for a fixed seed.
func randomByCount(n, m int, cfg genConfig) (*Graph, error) {
	maxEdges := n * (n - 1) / 2
	if m < 0 || m > maxEdges {
		return nil, genErrorf(MethodRandom, ErrInvalidParameter,
			"m must be in [0,%d] for n=%d, got %d", maxEdges, n, m)
	}

	// Enumerate every unordered pair once, in stable order.
	pairs := make([]core.Edge, 0, maxEdges)
	for i := 1; i <= n; i++ {
		for j := i + 1; j <= n; j++ {
			pairs = append(pairs, core.Edge{From: i, To: j, Weight: DefaultEdgeWeight})
		}
	}

	// Seeded Fisher–Yates shuffle, then keep the first m: a uniform
	// m-subset with no duplicates by construction.
	r := rand.New(cfg.src)
	r.Shuffle(len(pairs), func(a, b int) { pairs[a], pairs[b] = pairs[b], pairs[a] })
	chosen := pairs[:m]
	sort.Slice(chosen, func(a, b int) bool {
		if chosen[a].From != chosen[b].From {
			return chosen[a].From < chosen[b].From
		}
		return chosen[a].To < chosen[b].To
	})

	g := newGraph(n)
	for _, e := range chosen {
		g.link(e.From, e.To)
	}

	return g, nil
}
