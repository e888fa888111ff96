// SPDX-License-Identifier: MIT
// Package: dlcutils/core
//
// types.go — shared node/edge/adjacency/degree value types.
//
// Contract:
//   - All helpers are deterministic; slice-returning methods sort their output.
//   - Mutating helpers touch only the named entries (no hidden bookkeeping).
//   - No locking: a graph instance is exclusively owned by its constructor
//     for its whole lifetime.

package core

import "sort"

// Edge is an ordered (From, To) pair with an optional weight.
// Unweighted models record Weight = 1 as a presence marker.
type Edge struct {
	// From is the source node identifier.
	From int

	// To is the destination node identifier.
	To int

	// Weight is the edge weight; 1 for unweighted models.
	Weight float64
}

// Adjacency maps node → neighbor → weight. For directed models every
// recorded arc appears once; conceptually undirected models store each
// connection under both endpoints so that Neighbors is symmetric.
type Adjacency map[int]map[int]float64

// Degrees maps node → degree. Degrees are maintained incrementally as
// edges are recorded, never recomputed by scanning the edge list.
type Degrees map[int]int

// NodeList returns the ordered node identifiers 1..n.
// Complexity: O(n) time and space.
func NodeList(n int) []int {
	nodes := make([]int, n)
	for i := 1; i <= n; i++ {
		nodes[i-1] = i
	}

	return nodes
}

// Connect records the arc u→v with weight w, allocating the inner map on
// first use. Re-connecting an existing pair overwrites the weight.
// Complexity: O(1) amortized.
func (a Adjacency) Connect(u, v int, w float64) {
	row, ok := a[u]
	if !ok {
		row = make(map[int]float64)
		a[u] = row
	}
	row[v] = w
}

// Disconnect removes the arc u→v if present. Removing a missing arc is a
// no-op. Complexity: O(1).
func (a Adjacency) Disconnect(u, v int) {
	if row, ok := a[u]; ok {
		delete(row, v)
	}
}

// HasEdge reports whether the arc u→v is recorded.
// Complexity: O(1).
func (a Adjacency) HasEdge(u, v int) bool {
	_, ok := a[u][v]

	return ok
}

// Weight returns the weight of arc u→v and whether it is recorded.
// Complexity: O(1).
func (a Adjacency) Weight(u, v int) (float64, bool) {
	w, ok := a[u][v]

	return w, ok
}

// Neighbors returns the sorted neighbor identifiers of u.
// Complexity: O(d log d) where d = degree of u.
func (a Adjacency) Neighbors(u int) []int {
	row := a[u]
	nbrs := make([]int, 0, len(row))
	for v := range row {
		nbrs = append(nbrs, v)
	}
	sort.Ints(nbrs)

	return nbrs
}

// OutWeights returns a copy of u's neighbor→weight row. Callers may
// mutate the copy freely. Complexity: O(d).
func (a Adjacency) OutWeights(u int) map[int]float64 {
	row := a[u]
	out := make(map[int]float64, len(row))
	for v, w := range row {
		out[v] = w
	}

	return out
}

// Bump increments the degree of both endpoints of a newly recorded edge.
// Complexity: O(1).
func (d Degrees) Bump(u, v int) {
	d[u]++
	d[v]++
}

// Sum returns the total of all recorded degrees. For consistent degree
// bookkeeping this equals twice the recorded edge count.
// Complexity: O(n).
func (d Degrees) Sum() int {
	var total int
	for _, deg := range d {
		total += deg
	}

	return total
}

// EdgeEndpoints flattens edges into the multiset of node endpoints: each
// node appears once per edge endpoint it owns. A node's multiplicity in
// the result equals its degree under consistent bookkeeping.
// Complexity: O(m) time and space.
func EdgeEndpoints(edges []Edge) []int {
	ends := make([]int, 0, 2*len(edges))
	for _, e := range edges {
		ends = append(ends, e.From, e.To)
	}

	return ends
}
