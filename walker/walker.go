// SPDX-License-Identifier: MIT
// Package: dlcutils/walker
//
// walker.go — construction and the focus-walk operations.
//
// Contract:
//   - New: n ≥ 1 (else ErrInvalidParameter); every node connects to every
//     node, itself included, with uniform initial weight 1/n.
//   - SetFocus / SetRandomFocus / SetFocusNext always clear the pending
//     next focus and the recorded focus edge.
//   - SelectFocusEdge is a multinomial draw over the focus node's
//     out-weights; it requires a focus (else ErrInvalidState).
//   - UpdateFocusWeights reinforces the recorded focus edge and keeps the
//     source node's out-weights normalized to 1.
//   - Step selects, then adopts the next focus while RETAINING the
//     traversed edge record, so a following UpdateFocusWeights reinforces
//     the edge just walked.
//
// Determinism:
//   - All draws come from the injected source; identical seeds reproduce
//     identical trajectories.

package walker

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/sampleuv"

	"github.com/cranndarach/dlcutils/core"
)

// File-local method tags for error context (no magic strings).
const (
	methodNew             = "New"
	methodSetFocus        = "SetFocus"
	methodSetFocusNext    = "SetFocusNext"
	methodSelectFocusEdge = "SelectFocusEdge"
	methodUpdateWeights   = "UpdateFocusWeights"
	methodStep            = "Step"
)

// minOrder is the smallest meaningful graph order; weights are 1/n.
const minOrder = 1

// New builds a fully connected weighted directed graph over nodes 1..n
// with uniform initial out-weights 1/n, self-loops included.
// Complexity: O(n²) time and space.
func New(n int, opts ...Option) (*Graph, error) {
	if n < minOrder {
		return nil, walkErrorf(methodNew, ErrInvalidParameter, "n must be >= %d, got %d", minOrder, n)
	}
	cfg := newConfig(opts...)

	g := &Graph{
		n:     n,
		nodes: core.NodeList(n),
		adj:   make(core.Adjacency, n),
		src:   cfg.src,
		rng:   rand.New(cfg.src),
	}
	uniform := 1 / float64(n)
	for _, u := range g.nodes {
		for _, v := range g.nodes {
			g.adj.Connect(u, v, uniform)
		}
	}

	return g, nil
}

// SetFocus makes node the focus. A node outside the node set fails with
// ErrInvalidParameter. Any pending next focus and focus edge are cleared.
func (g *Graph) SetFocus(node int) error {
	if !g.contains(node) {
		return walkErrorf(methodSetFocus, ErrInvalidParameter, "node %d is not in the network (order %d)", node, g.n)
	}
	g.focus = node
	g.clearWalkState()

	return nil
}

// SetRandomFocus draws the focus uniformly from the node list and returns
// it. Any pending next focus and focus edge are cleared.
func (g *Graph) SetRandomFocus() int {
	g.focus = g.nodes[g.rng.IntN(g.n)]
	g.clearWalkState()

	return g.focus
}

// SetFocusNext adopts the next focus computed by the latest selection.
// With no pending selection it fails with ErrInvalidState. The pending
// next focus and focus edge are cleared.
func (g *Graph) SetFocusNext() error {
	if g.next == 0 {
		return walkErrorf(methodSetFocusNext, ErrInvalidState, "no next focus has been selected")
	}
	g.focus = g.next
	g.clearWalkState()

	return nil
}

// SelectFocusEdge draws the next focus from the focus node's out-neighbors
// with probability proportional to the current edge weights and records
// the focus edge. Selecting with no focus set fails with ErrInvalidState.
func (g *Graph) SelectFocusEdge() (int, error) {
	if g.focus == 0 {
		return 0, walkErrorf(methodSelectFocusEdge, ErrInvalidState, "no focus node is set")
	}

	// Weight vector aligned with the ordered node list; the graph is fully
	// connected, so the out-neighborhood is the whole node set.
	weights := make([]float64, g.n)
	for i, v := range g.nodes {
		weights[i], _ = g.adj.Weight(g.focus, v)
	}

	// Single weighted draw — a multinomial selection, not a uniform one.
	sampler := sampleuv.NewWeighted(weights, g.src)
	idx, ok := sampler.Take()
	if !ok {
		// Out-weights always sum to 1, so an empty draw means the weight
		// table was corrupted externally.
		return 0, walkErrorf(methodSelectFocusEdge, ErrInvalidState, "focus node %d has no positive out-weight", g.focus)
	}

	g.next = g.nodes[idx]
	w, _ := g.adj.Weight(g.focus, g.next)
	g.focusEdge = core.Edge{From: g.focus, To: g.next, Weight: w}
	g.hasEdge = true

	return g.next, nil
}

// UpdateFocusWeights reinforces the recorded focus edge: its weight grows
// by 1/n, then every out-weight of the edge's source node is divided by
// the new total so the row sums to 1 again. Reinforcing with no focus
// edge recorded fails with ErrInvalidState.
func (g *Graph) UpdateFocusWeights() error {
	if !g.hasEdge {
		return walkErrorf(methodUpdateWeights, ErrInvalidState, "no focus edge has been selected")
	}

	src := g.focusEdge.From
	w, _ := g.adj.Weight(src, g.focusEdge.To)
	g.adj.Connect(src, g.focusEdge.To, w+1/float64(g.n))

	var total float64
	for _, v := range g.nodes {
		wv, _ := g.adj.Weight(src, v)
		total += wv
	}
	for _, v := range g.nodes {
		wv, _ := g.adj.Weight(src, v)
		g.adj.Connect(src, v, wv/total)
	}
	g.focusEdge.Weight, _ = g.adj.Weight(src, g.focusEdge.To)

	return nil
}

// Step selects a focus edge, moves the focus to the selected node, and
// returns it. The traversed edge stays recorded so that a following
// UpdateFocusWeights reinforces it; the pending next focus is consumed.
func (g *Graph) Step() (int, error) {
	next, err := g.SelectFocusEdge()
	if err != nil {
		return 0, err
	}
	g.focus = next
	g.next = 0

	return next, nil
}
