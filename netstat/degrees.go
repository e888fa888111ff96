// SPDX-License-Identifier: MIT
// Package: dlcutils/netstat
//
// degrees.go — degree and weight distribution summaries.
//
// Exposed API:
//   - DegreeSummary(deg)   -> Summary        // min/max/mean/variance/std of degrees
//   - DegreeHistogram(deg) -> map[int]int    // degree → node count
//   - WeightSummary(adj)   -> Summary        // summary over all recorded arc weights
//   - MeanDegree(m, n)     -> float64        // 2m/n convenience
//
// Determinism:
//   - Fixed ascending-key gather order before accumulation.
//   - Empty inputs yield the zero Summary; no errors arise here.

package netstat

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/cranndarach/dlcutils/core"
)

// Summary aggregates a one-dimensional distribution.
type Summary struct {
	// Count is the number of observed values.
	Count int

	// Min and Max bound the observed values; zero for empty input.
	Min float64
	Max float64

	// Mean, Variance (sample, n-1) and StdDev; zero for empty input.
	Mean     float64
	Variance float64
	StdDev   float64
}

// summarize builds a Summary over xs. xs may be in any order; it is not
// mutated.
func summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}

	s := Summary{Count: len(xs), Min: xs[0], Max: xs[0]}
	for _, x := range xs {
		s.Min = math.Min(s.Min, x)
		s.Max = math.Max(s.Max, x)
	}
	s.Mean = stat.Mean(xs, nil)
	if len(xs) > 1 {
		s.Variance = stat.Variance(xs, nil)
	}
	s.StdDev = math.Sqrt(s.Variance)

	return s
}

// DegreeSummary summarizes a degree map. Nodes are visited in ascending
// identifier order. Complexity: O(n log n).
func DegreeSummary(deg core.Degrees) Summary {
	return summarize(degreeValues(deg))
}

// DegreeHistogram counts nodes per degree value.
// Complexity: O(n).
func DegreeHistogram(deg core.Degrees) map[int]int {
	hist := make(map[int]int)
	for _, d := range deg {
		hist[d]++
	}

	return hist
}

// WeightSummary summarizes every recorded arc weight in adj, gathered in
// ascending (node, neighbor) order. Complexity: O(E log E).
func WeightSummary(adj core.Adjacency) Summary {
	nodes := make([]int, 0, len(adj))
	for u := range adj {
		nodes = append(nodes, u)
	}
	sort.Ints(nodes)

	var weights []float64
	for _, u := range nodes {
		for _, v := range adj.Neighbors(u) {
			w, _ := adj.Weight(u, v)
			weights = append(weights, w)
		}
	}

	return summarize(weights)
}

// MeanDegree returns 2m/n, the mean degree of a graph with m recorded
// edges over n nodes; zero when n == 0.
func MeanDegree(m, n int) float64 {
	if n == 0 {
		return 0
	}

	return 2 * float64(m) / float64(n)
}

// degreeValues flattens deg into a float slice in ascending node order.
func degreeValues(deg core.Degrees) []float64 {
	nodes := make([]int, 0, len(deg))
	for u := range deg {
		nodes = append(nodes, u)
	}
	sort.Ints(nodes)

	xs := make([]float64, len(nodes))
	for i, u := range nodes {
		xs[i] = float64(deg[u])
	}

	return xs
}
