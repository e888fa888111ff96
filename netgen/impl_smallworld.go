// SPDX-License-Identifier: MIT
// Package: dlcutils/netgen
//
// impl_smallworld.go — implementation of SmallWorld(n, k, b).
//
// Canonical model (Watts–Strogatz):
//   - Phase 1 (ring lattice): node i connects to its k nearest nodes on
//     the circle, k/2 on each side. Each undirected pair is recorded once
//     in the clockwise direction: (i, wrap(i+d)) for d = 1..k/2. Every
//     node has degree exactly k after this phase.
//   - Phase 2 (rewiring): visit the phase-1 edges in recording order, so
//     each undirected connection is considered exactly once. Per edge,
//     flip a coin with success probability b; on success replace the
//     clockwise endpoint with a node chosen uniformly among nodes neither
//     equal to nor already adjacent to the anchor endpoint.
//
// Rewiring fallback policy (documented decision, see DESIGN.md):
//   - If no eligible replacement exists (dense small rings), the rewiring
//     attempt is SKIPPED and the lattice edge stays. Candidates are
//     enumerated up front, so there is no retry loop and termination is
//     unconditional.
//
// Contract:
//   - k even, k ≥ 0, n > k, b in [0,1] (else ErrInvalidParameter).
//   - No self-loops, no duplicate connections, at any point.
//   - Total edge count n·k/2 is unchanged by rewiring; only endpoints move.
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Complexity:
//   - Phase 1: O(n·k). Phase 2: O(n) candidate scan per rewired edge →
//     O(n²·k/2) worst case at b=1.
//
// Determinism:
//   - Stable lattice order (i asc, d asc), stable edge visit order, and
//     sorted candidate enumeration ⇒ identical graphs for identical seeds.

package netgen

import "math/rand/v2"

// SmallWorld builds a ring lattice of even degree k over n nodes and then
// rewires each lattice edge independently with probability b.
func SmallWorld(n, k int, b float64, opts ...Option) (*Graph, error) {
	cfg := newGenConfig(opts...)

	// Parameter validation (fail fast; zero side-effects on invalid input).
	if err := validateMin(MethodSmallWorld, "k", k, MinLatticeDegree); err != nil {
		return nil, err
	}
	if err := validateEvenDegree(MethodSmallWorld, k); err != nil {
		return nil, err
	}
	if err := validateBelowOrder(MethodSmallWorld, "k", k, n); err != nil {
		return nil, err
	}
	if err := validateProbability(MethodSmallWorld, "b", b); err != nil {
		return nil, err
	}

	g := newGraph(n)

	// Phase 1: ring lattice. Recording (i, wrap(i+d)) for d=1..k/2 emits
	// each undirected pair exactly once because d < n/2 is guaranteed by
	// k < n with k even.
	half := k / 2
	for i := 1; i <= n; i++ {
		for d := 1; d <= half; d++ {
			g.link(i, ringNeighbor(i, d, n))
		}
	}

	// Phase 2: rewiring over the recorded lattice edges, in order.
	r := rand.New(cfg.src)
	for idx := range g.Edges {
		if r.Float64() >= b {
			continue
		}
		anchor := g.Edges[idx].From
		old := g.Edges[idx].To

		// Eligible replacements: neither the anchor itself nor any node
		// already adjacent to it. Enumerated in ascending order for a
		// deterministic uniform draw.
		candidates := make([]int, 0, n)
		for w := 1; w <= n; w++ {
			if w == anchor || g.Adj.HasEdge(anchor, w) {
				continue
			}
			candidates = append(candidates, w)
		}
		if len(candidates) == 0 {
			// No valid replacement: skip this rewiring attempt.
			continue
		}
		next := candidates[r.IntN(len(candidates))]

		// Move the clockwise endpoint: neighbor lists, degrees, edge list.
		g.Adj.Disconnect(anchor, old)
		g.Adj.Disconnect(old, anchor)
		g.Deg[old]--
		g.Adj.Connect(anchor, next, DefaultEdgeWeight)
		g.Adj.Connect(next, anchor, DefaultEdgeWeight)
		g.Deg[next]++
		g.Edges[idx].To = next
	}

	return g, nil
}

// ringNeighbor returns the node d steps clockwise from i on a circle of n
// nodes with identifiers 1..n.
func ringNeighbor(i, d, n int) int {
	return (i-1+d)%n + 1
}
