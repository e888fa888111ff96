// Package netgen builds random network topologies: preferential-attachment
// growth graphs, Erdős–Rényi random graphs, and Watts–Strogatz small-world
// graphs. Each generator is independent; they share only the plain value
// conventions of dlcutils/core (node list, edge list, adjacency, degrees).
//
// The package offers the following key components:
//
//   - Generators (one function per model, implemented in impl_*.go):
//     – PreferentialAttachment(n, k): seed clique, first attachment, then
//     degree-proportional growth (Barabási–Albert style).
//     – Random(n, EdgeProbability(p)) / Random(n, EdgeCount(m)):
//     per-pair Bernoulli trials, or m distinct uniformly chosen edges.
//     – SmallWorld(n, k, b): ring lattice of even degree k with
//     probabilistic rewiring.
//   - Configuration primitives:
//     – Option:    a function that mutates genConfig before construction.
//     – genConfig: holds the random source and the Random mode variants.
//   - Randomness:
//     – WithSeed / WithRand inject a deterministic math/rand/v2 source;
//     identical seeds produce identical graphs. Unseeded construction
//     falls back to a fixed default seed (still deterministic).
//   - Validation helpers: validateMin, validateProbability, validateEvenDegree.
//
// Guarantees:
//
//   - No self-loops and no duplicate edges in any generated topology.
//   - A node's recorded degree always equals the number of edge endpoints
//     referencing it; degrees are maintained incrementally, never rescanned.
//   - Construction is all-or-nothing: on any parameter or state violation
//     the generator returns an error and no graph.
//   - Deterministic results for a fixed seed and fixed parameters.
//
// Errors:
//
//   - ErrInvalidParameter: malformed or mutually exclusive construction
//     arguments (odd k, b outside [0,1], n <= k, both or neither of
//     EdgeProbability and EdgeCount, ...).
//   - ErrInvalidState: a construction phase invoked out of sequence
//     (re-running the first attachment, growing before it has run).
//
// Branch on semantics with errors.Is; do not match error strings.
package netgen
