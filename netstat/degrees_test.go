package netstat_test

import (
	"math"
	"testing"

	"github.com/cranndarach/dlcutils/core"
	"github.com/cranndarach/dlcutils/netgen"
	"github.com/cranndarach/dlcutils/netstat"
	"github.com/cranndarach/dlcutils/walker"
)

const tol = 1e-9

// TestDegreeSummary_Known verifies the summary on a hand-computed map.
func TestDegreeSummary_Known(t *testing.T) {
	t.Parallel()

	deg := core.Degrees{1: 2, 2: 4, 3: 6}
	s := netstat.DegreeSummary(deg)

	if s.Count != 3 {
		t.Fatalf("Count = %d; want 3", s.Count)
	}
	if s.Min != 2 || s.Max != 6 {
		t.Errorf("Min,Max = %v,%v; want 2,6", s.Min, s.Max)
	}
	if math.Abs(s.Mean-4) > tol {
		t.Errorf("Mean = %v; want 4", s.Mean)
	}
	// Sample variance of {2,4,6} is 4.
	if math.Abs(s.Variance-4) > tol {
		t.Errorf("Variance = %v; want 4", s.Variance)
	}
	if math.Abs(s.StdDev-2) > tol {
		t.Errorf("StdDev = %v; want 2", s.StdDev)
	}
}

// TestDegreeSummary_Empty yields the zero summary.
func TestDegreeSummary_Empty(t *testing.T) {
	t.Parallel()

	if s := netstat.DegreeSummary(core.Degrees{}); s != (netstat.Summary{}) {
		t.Errorf("empty summary = %+v; want zero value", s)
	}
}

// TestDegreeHistogram counts nodes per degree.
func TestDegreeHistogram(t *testing.T) {
	t.Parallel()

	deg := core.Degrees{1: 2, 2: 2, 3: 4, 4: 0}
	hist := netstat.DegreeHistogram(deg)
	if hist[2] != 2 || hist[4] != 1 || hist[0] != 1 {
		t.Errorf("histogram = %v", hist)
	}
}

// TestDegreeSummary_Lattice: a b=0 small-world ring is k-regular, so the
// degree distribution collapses to a point.
func TestDegreeSummary_Lattice(t *testing.T) {
	t.Parallel()

	g, err := netgen.SmallWorld(12, 4, 0)
	if err != nil {
		t.Fatalf("SmallWorld: %v", err)
	}
	s := netstat.DegreeSummary(g.Deg)
	if s.Count != 12 || s.Min != 4 || s.Max != 4 || s.Variance != 0 {
		t.Errorf("lattice summary = %+v; want all degrees 4", s)
	}
	if got, want := netstat.MeanDegree(g.Size(), g.Order()), 4.0; math.Abs(got-want) > tol {
		t.Errorf("MeanDegree = %v; want %v", got, want)
	}
}

// TestWeightSummary_Walker: a fresh walker graph has n² arcs of weight
// 1/n; the summary must see a point mass and a total mean of 1/n.
func TestWeightSummary_Walker(t *testing.T) {
	t.Parallel()

	const n = 4
	g, err := walker.New(n)
	if err != nil {
		t.Fatalf("walker.New: %v", err)
	}

	s := netstat.WeightSummary(g.Weights())
	if s.Count != n*n {
		t.Fatalf("Count = %d; want %d", s.Count, n*n)
	}
	if math.Abs(s.Mean-1.0/n) > tol || s.Variance > tol {
		t.Errorf("summary = %+v; want point mass at 1/%d", s, n)
	}
}

// TestMeanDegree_Empty guards the n=0 division.
func TestMeanDegree_Empty(t *testing.T) {
	t.Parallel()

	if got := netstat.MeanDegree(0, 0); got != 0 {
		t.Errorf("MeanDegree(0,0) = %v; want 0", got)
	}
}
