// Package netgen defines shared constants used by the generators, ensuring
// consistent defaults and validation across all topology constructors.
package netgen

//-----------------------------------------------------------------------------
// Generator Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPreferentialAttachment is the canonical name for the
	// PreferentialAttachment constructor.
	MethodPreferentialAttachment = "PreferentialAttachment"
	// MethodRandom is the canonical name for the Random constructor.
	MethodRandom = "Random"
	// MethodSmallWorld is the canonical name for the SmallWorld constructor.
	MethodSmallWorld = "SmallWorld"
)

//-----------------------------------------------------------------------------
// Minimum Node Counts
//-----------------------------------------------------------------------------

// MinRandomNodes is the smallest meaningful order for a random graph.
// A single node is a valid (empty) graph.
const MinRandomNodes = 1

// MinSeedNodes is the smallest seed clique for preferential attachment.
// With fewer than one seed node no attachment target can ever exist.
const MinSeedNodes = 1

// MinLatticeDegree is the smallest ring-lattice degree. k = 0 yields a
// valid edgeless ring.
const MinLatticeDegree = 0

//-----------------------------------------------------------------------------
// Default Weights and Probability Bounds
//-----------------------------------------------------------------------------

// DefaultEdgeWeight is the presence weight recorded for every edge of the
// unweighted generator models.
const DefaultEdgeWeight = 1.0

// MinProbability is the inclusive lower bound for probability parameters
// (Bernoulli inclusion p, rewiring probability b).
const MinProbability = 0.0

// MaxProbability is the inclusive upper bound for probability parameters.
const MaxProbability = 1.0
