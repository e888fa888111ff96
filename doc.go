// Package dlcutils is a small research toolkit for network-science
// experiments: random-graph generation and a reinforcement-weighted
// random walk, with deterministic, seed-reproducible randomness
// throughout.
//
// What's inside?
//
//	core/    — shared value conventions: integer nodes, (from,to,weight)
//	           edges, map-of-maps adjacency, incremental degree maps
//	walker/  — fully connected weighted digraph with "focus node" walk
//	           mechanics and reinforcement of traversed edges
//	netgen/  — generative network models:
//	           • PreferentialAttachment(n, k) — degree-proportional growth
//	           • Random(n, EdgeProbability(p) | EdgeCount(m)) — Erdős–Rényi
//	           • SmallWorld(n, k, b) — ring lattice with rewiring
//	netstat/ — read-only degree/weight distribution summaries
//
// Why choose it?
//
//   - Deterministic by construction — every stochastic path flows through
//     an injectable math/rand/v2 source; identical seeds give identical
//     graphs and identical walk trajectories
//   - Strict invariants — normalized walk weights, consistent degree
//     bookkeeping, no self-loops or duplicate edges in generated models
//   - Sentinel errors only — branch with errors.Is on ErrInvalidParameter
//     and ErrInvalidState; construction is all-or-nothing
//
// The generators are independent of one another: they share the plain
// data conventions of core, not code and not a type hierarchy. Statistics
// and plotting collaborators consume the node list / edge list /
// adjacency handoff read-only.
//
// See examples/ for runnable walk-reinforcement and rewiring scenarios.
package dlcutils
