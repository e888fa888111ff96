// SPDX-License-Identifier: MIT
// Package: dlcutils/netgen
//
// impl_prefattach.go — implementation of PreferentialAttachment(n, k).
//
// Canonical model:
//   - Seed phase: nodes 1..k form the conceptual complete seed clique.
//     Seed edges are not recorded and recorded degrees start at zero, so
//     the degree sum always equals twice the recorded edge count.
//   - First attachment: node k+1 connects to all k seed nodes. This step
//     is special because the endpoint multiset is still empty, leaving no
//     distribution to sample from.
//   - Growth: each new node draws k DISTINCT targets without replacement
//     with probability proportional to current degree (the endpoint
//     multiset), then records edge (new, target) and bumps both degrees.
//
// Contract:
//   - 1 ≤ k < n (else ErrInvalidParameter).
//   - Node identifiers are assigned in strictly increasing creation order.
//   - Phase order is enforced: re-running the first attachment past the
//     seed state, or growing before it, returns ErrInvalidState.
//   - Returns only sentinel-wrapped errors; never panics at runtime.
//
// Post-conditions:
//   - Order n; size k*(n-k); degree sum 2*k*(n-k).
//
// Complexity:
//   - Time: O(n·k) draws over an O(n) weight vector per growth step →
//     O(n²·k) worst case (research scale; large-n tuning is out of scope).
//   - Space: O(n + k·(n-k)).
//
// Determinism:
//   - Fixed node order, fixed draw order; identical seeds ⇒ identical graphs.

package netgen

import (
	"gonum.org/v1/gonum/stat/sampleuv"
)

// paPhase tracks the construction state machine.
type paPhase int

const (
	// paSeeded: seed clique only; awaiting the first attachment.
	paSeeded paPhase = iota
	// paGrowing: first attachment done; ordinary growth is legal.
	paGrowing
)

// paBuilder drives the staged construction of a preferential-attachment
// graph. It is internal: PreferentialAttachment runs the phases in order,
// and the phase methods defend against out-of-sequence invocation.
type paBuilder struct {
	n     int   // target order
	k     int   // edges per attachment
	order int   // nodes materialized so far
	phase paPhase
	cfg   genConfig
	g     *Graph
}

// newPABuilder seeds the builder: nodes 1..k with zero recorded degrees
// and no recorded edges.
func newPABuilder(n, k int, cfg genConfig) *paBuilder {
	return &paBuilder{
		n:     n,
		k:     k,
		order: k,
		phase: paSeeded,
		cfg:   cfg,
		g:     newGraph(n),
	}
}

// firstAttach connects node k+1 to every seed node. Only legal in the
// seeded state.
func (b *paBuilder) firstAttach() error {
	if b.phase != paSeeded {
		return genErrorf(MethodPreferentialAttachment, ErrInvalidState,
			"first attachment re-run past seed state (order=%d)", b.order)
	}

	v := b.k + 1
	for t := 1; t <= b.k; t++ {
		b.g.link(v, t)
	}
	b.order = v
	b.phase = paGrowing

	return nil
}

// grow adds the next node and attaches it to k distinct targets sampled
// without replacement from the endpoint multiset (degree-proportional).
// Only legal after the first attachment.
func (b *paBuilder) grow() error {
	if b.phase != paGrowing {
		return genErrorf(MethodPreferentialAttachment, ErrInvalidState,
			"growth attempted before the first attachment")
	}

	// Weight vector over existing nodes 1..order; index i holds the
	// degree of node i+1. After the first attachment every existing node
	// carries at least one recorded endpoint, so at least order >= k+1
	// positive weights are always available to the k draws below.
	weights := make([]float64, b.order)
	for i := 0; i < b.order; i++ {
		weights[i] = float64(b.g.Deg[i+1])
	}

	v := b.order + 1
	sampler := sampleuv.NewWeighted(weights, b.cfg.src)
	for drawn := 0; drawn < b.k; drawn++ {
		idx, ok := sampler.Take()
		if !ok {
			// Fewer than k positive-weight targets remain; the seed and
			// first-attachment invariants make this unreachable for valid
			// parameters, so treat it as a sequencing violation.
			return genErrorf(MethodPreferentialAttachment, ErrInvalidState,
				"no attachment target left after %d of %d draws", drawn, b.k)
		}
		b.g.link(v, idx+1)
	}
	b.order = v

	return nil
}

// PreferentialAttachment builds a growth graph of order n where each of
// the n-k attachment nodes connects to k distinct existing nodes chosen
// with probability proportional to their current degree.
func PreferentialAttachment(n, k int, opts ...Option) (*Graph, error) {
	cfg := newGenConfig(opts...)

	// Parameter validation (fail fast; zero side-effects on invalid input).
	if err := validateMin(MethodPreferentialAttachment, "k", k, MinSeedNodes); err != nil {
		return nil, err
	}
	if err := validateBelowOrder(MethodPreferentialAttachment, "k", k, n); err != nil {
		return nil, err
	}

	b := newPABuilder(n, k, cfg)
	if err := b.firstAttach(); err != nil {
		return nil, err
	}
	for b.order < n {
		if err := b.grow(); err != nil {
			return nil, err
		}
	}

	return b.g, nil
}
