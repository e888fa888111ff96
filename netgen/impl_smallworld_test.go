package netgen_test

import (
	"errors"
	"testing"

	"github.com/cranndarach/dlcutils/core"
	"github.com/cranndarach/dlcutils/netgen"
)

// latticeEdges rebuilds the expected phase-1 ring-lattice edge list for
// comparison: (i, wrap(i+d)) for i asc, d = 1..k/2.
func latticeEdges(n, k int) []core.Edge {
	edges := make([]core.Edge, 0, n*k/2)
	for i := 1; i <= n; i++ {
		for d := 1; d <= k/2; d++ {
			edges = append(edges, core.Edge{From: i, To: (i-1+d)%n + 1, Weight: netgen.DefaultEdgeWeight})
		}
	}
	return edges
}

// TestSmallWorld_NoRewiring verifies b=0: the result is exactly the ring
// lattice and every node has degree k.
func TestSmallWorld_NoRewiring(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n, k int
	}{
		{"n=10,k=2", 10, 2},
		{"n=10,k=4", 10, 4},
		{"n=7,k=6", 7, 6},
		{"n=5,k=0", 5, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			g, err := netgen.SmallWorld(tc.n, tc.k, 0)
			if err != nil {
				t.Fatalf("SmallWorld: %v", err)
			}
			want := latticeEdges(tc.n, tc.k)
			if len(g.Edges) != len(want) {
				t.Fatalf("size = %d; want %d", len(g.Edges), len(want))
			}
			for i := range want {
				if g.Edges[i] != want[i] {
					t.Errorf("edge %d = %v; want %v", i, g.Edges[i], want[i])
				}
			}
			for _, v := range g.Nodes {
				if g.Deg[v] != tc.k {
					t.Errorf("degree of node %d = %d; want %d", v, g.Deg[v], tc.k)
				}
			}
		})
	}
}

// TestSmallWorld_FullRewiring verifies b=1: the edge count is unchanged
// and every lattice edge with an eligible replacement has moved.
func TestSmallWorld_FullRewiring(t *testing.T) {
	t.Parallel()

	const (
		n = 20
		k = 4
	)
	g, err := netgen.SmallWorld(n, k, 1, netgen.WithSeed(3))
	if err != nil {
		t.Fatalf("SmallWorld: %v", err)
	}
	if want := n * k / 2; g.Size() != want {
		t.Fatalf("size after rewiring = %d; want %d", g.Size(), want)
	}

	// At this density a replacement always exists, so no edge may keep its
	// lattice endpoint. The anchor endpoint never moves.
	lattice := latticeEdges(n, k)
	for i, e := range g.Edges {
		if e.From != lattice[i].From {
			t.Errorf("edge %d anchor moved: %v; lattice %v", i, e, lattice[i])
		}
		if e.To == lattice[i].To {
			t.Errorf("edge %d not rewired at b=1: %v", i, e)
		}
	}
}

// TestSmallWorld_Invariants checks structural invariants after partial
// rewiring: no self-loops, symmetric adjacency, degrees matching the
// endpoint multiset, edge count preserved.
func TestSmallWorld_Invariants(t *testing.T) {
	t.Parallel()

	const (
		n = 30
		k = 6
		b = 0.4
	)
	g, err := netgen.SmallWorld(n, k, b, netgen.WithSeed(17))
	if err != nil {
		t.Fatalf("SmallWorld: %v", err)
	}
	if want := n * k / 2; g.Size() != want {
		t.Fatalf("size = %d; want %d", g.Size(), want)
	}

	seen := make(map[[2]int]bool)
	for _, e := range g.Edges {
		if e.From == e.To {
			t.Fatalf("self-loop %v", e)
		}
		lo, hi := e.From, e.To
		if lo > hi {
			lo, hi = hi, lo
		}
		if seen[[2]int{lo, hi}] {
			t.Fatalf("duplicate connection %v", e)
		}
		seen[[2]int{lo, hi}] = true

		if !g.Adj.HasEdge(e.From, e.To) || !g.Adj.HasEdge(e.To, e.From) {
			t.Fatalf("adjacency not symmetric for %v", e)
		}
	}

	mult := make(map[int]int)
	for _, end := range core.EdgeEndpoints(g.Edges) {
		mult[end]++
	}
	for _, v := range g.Nodes {
		if g.Deg[v] != mult[v] {
			t.Errorf("degree of %d = %d; endpoint multiplicity %d", v, g.Deg[v], mult[v])
		}
	}
}

// TestSmallWorld_SkipWhenSaturated exercises the documented fallback: in a
// near-complete ring no replacement exists, so rewiring attempts are
// skipped and the lattice survives even at b=1.
func TestSmallWorld_SkipWhenSaturated(t *testing.T) {
	t.Parallel()

	// n=5, k=4: the ring lattice is K5; every node is adjacent to all
	// others, leaving no eligible replacement anywhere.
	g, err := netgen.SmallWorld(5, 4, 1, netgen.WithSeed(1))
	if err != nil {
		t.Fatalf("SmallWorld: %v", err)
	}
	want := latticeEdges(5, 4)
	if len(g.Edges) != len(want) {
		t.Fatalf("size = %d; want %d", len(g.Edges), len(want))
	}
	for i := range want {
		if g.Edges[i] != want[i] {
			t.Errorf("edge %d = %v; want lattice %v", i, g.Edges[i], want[i])
		}
	}
}

// TestSmallWorld_InvalidParameters covers the k/n/b domain.
func TestSmallWorld_InvalidParameters(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		n, k int
		b    float64
	}{
		{"OddK", 10, 3, 0.1},
		{"NegativeK", 10, -2, 0.1},
		{"KEqualsN", 4, 4, 0.1},
		{"KAboveN", 4, 6, 0.1},
		{"NegativeB", 10, 2, -0.01},
		{"BAboveOne", 10, 2, 1.01},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := netgen.SmallWorld(tc.n, tc.k, tc.b)
			if !errors.Is(err, netgen.ErrInvalidParameter) {
				t.Errorf("SmallWorld(%d,%d,%v) error = %v; want ErrInvalidParameter", tc.n, tc.k, tc.b, err)
			}
		})
	}
}

// TestSmallWorld_Deterministic confirms seed reproducibility.
func TestSmallWorld_Deterministic(t *testing.T) {
	t.Parallel()

	a, _ := netgen.SmallWorld(24, 4, 0.5, netgen.WithSeed(8))
	b, _ := netgen.SmallWorld(24, 4, 0.5, netgen.WithSeed(8))
	for i := range a.Edges {
		if a.Edges[i] != b.Edges[i] {
			t.Fatalf("edge %d differs: %v vs %v", i, a.Edges[i], b.Edges[i])
		}
	}
}
