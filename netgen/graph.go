// SPDX-License-Identifier: MIT
// Package: dlcutils/netgen
//
// graph.go — the shared construction result handed to downstream readers.
//
// A Graph is fully constructed in one synchronous build; the generators
// never return a partial graph. Downstream collaborators (statistics,
// plotting) read these structures and never mutate them.

package netgen

import "github.com/cranndarach/dlcutils/core"

// Graph is the in-memory handoff produced by every generator: an ordered
// node list, an edge list with each connection recorded once in a
// consistent direction, a symmetric adjacency structure, and incrementally
// maintained degrees.
type Graph struct {
	// Nodes is the ordered sequence of node identifiers 1..N.
	Nodes []int

	// Edges records each connection once; the generator documents its
	// recording direction.
	Edges []core.Edge

	// Adj stores every connection under both endpoints, so
	// Adj.Neighbors(v) is the full neighborhood of v.
	Adj core.Adjacency

	// Deg maps each node to its degree, consistent with Edges endpoints.
	Deg core.Degrees
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.Nodes) }

// Size returns the number of recorded edges.
func (g *Graph) Size() int { return len(g.Edges) }

// newGraph allocates an empty result sized for n nodes, with every degree
// explicitly zeroed so that degree bookkeeping covers isolated nodes too.
func newGraph(n int) *Graph {
	g := &Graph{
		Nodes: core.NodeList(n),
		Edges: make([]core.Edge, 0),
		Adj:   make(core.Adjacency, n),
		Deg:   make(core.Degrees, n),
	}
	for _, v := range g.Nodes {
		g.Deg[v] = 0
	}

	return g
}

// link records the undirected connection (u, v): one edge-list entry in
// the u→v direction, both adjacency arcs, and a degree bump on both ends.
func (g *Graph) link(u, v int) {
	g.Edges = append(g.Edges, core.Edge{From: u, To: v, Weight: DefaultEdgeWeight})
	g.Adj.Connect(u, v, DefaultEdgeWeight)
	g.Adj.Connect(v, u, DefaultEdgeWeight)
	g.Deg.Bump(u, v)
}
