// SPDX-License-Identifier: MIT
// Package: dlcutils/walker
//
// types.go — the Graph type and its read-only accessors.
//
// A Graph is exclusively owned by its constructing context; there is no
// locking and no shared state between instances. All walk state lives in
// the focus fields and is reset whenever focus is explicitly re-set.

package walker

import (
	"math/rand/v2"

	"github.com/cranndarach/dlcutils/core"
)

// Graph is a fully connected weighted directed graph of order n carrying
// mutable walk state: the current focus node, the next focus computed by
// the latest selection, and the focus edge linking the two.
type Graph struct {
	n     int
	nodes []int
	adj   core.Adjacency

	src rand.Source
	rng *rand.Rand

	focus     int // 0 when unset; node ids start at 1
	next      int // 0 when unset
	focusEdge core.Edge
	hasEdge   bool
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return g.n }

// Nodes returns a copy of the ordered node list 1..n.
func (g *Graph) Nodes() []int {
	out := make([]int, len(g.nodes))
	copy(out, g.nodes)

	return out
}

// Edges returns the full n×n edge list with current weights, ordered by
// (From, To) ascending. Complexity: O(n²).
func (g *Graph) Edges() []core.Edge {
	out := make([]core.Edge, 0, g.n*g.n)
	for _, u := range g.nodes {
		for _, v := range g.nodes {
			w, _ := g.adj.Weight(u, v)
			out = append(out, core.Edge{From: u, To: v, Weight: w})
		}
	}

	return out
}

// OutWeights returns a copy of node u's neighbor→weight row.
func (g *Graph) OutWeights(u int) map[int]float64 {
	return g.adj.OutWeights(u)
}

// Weights returns a deep copy of the full adjacency, suitable for direct
// hand-off to weight analyses. Mutating the copy does not affect g.
func (g *Graph) Weights() core.Adjacency {
	out := make(core.Adjacency, g.n)
	for _, u := range g.nodes {
		for v, w := range g.adj[u] {
			out.Connect(u, v, w)
		}
	}

	return out
}

// Focus returns the current focus node; ok is false when no focus is set.
func (g *Graph) Focus() (node int, ok bool) {
	return g.focus, g.focus != 0
}

// NextFocus returns the next focus computed by the latest selection; ok is
// false when no selection is pending.
func (g *Graph) NextFocus() (node int, ok bool) {
	return g.next, g.next != 0
}

// FocusEdge returns the recorded focus edge; ok is false when none is
// recorded.
func (g *Graph) FocusEdge() (edge core.Edge, ok bool) {
	return g.focusEdge, g.hasEdge
}

// contains reports membership of node in the 1..n identifier range.
func (g *Graph) contains(node int) bool {
	return node >= 1 && node <= g.n
}

// clearWalkState drops any pending next focus and recorded focus edge.
func (g *Graph) clearWalkState() {
	g.next = 0
	g.focusEdge = core.Edge{}
	g.hasEdge = false
}
