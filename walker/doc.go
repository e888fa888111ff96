// Package walker implements a fully connected, weighted, directed graph
// with a reinforcement-learning-style random walk over it.
//
// What:
//
//   - New(n) builds n nodes, each connected to every node (itself
//     included) with uniform initial out-weight 1/n.
//   - A "focus node" marks the walker's current position. SetFocus,
//     SetRandomFocus and SetFocusNext move it explicitly.
//   - SelectFocusEdge draws the next focus from the focus node's
//     out-neighbors with probability proportional to edge weight
//     (a multinomial draw, not a uniform one), and records the focus edge.
//   - UpdateFocusWeights reinforces the recorded focus edge: its weight
//     grows by 1/n and the source node's out-weights are renormalized to
//     sum to one again. Edges that are walked become more likely.
//   - Step composes selection and focus adoption and returns the new
//     focus. Reinforcement stays a separate, explicitly invoked operation,
//     so callers decide whether a step reinforces.
//   - Weights returns a deep copy of the full adjacency for hand-off to
//     analysis code (e.g. netstat.WeightSummary).
//
// Invariant:
//
//   - For every node, the out-weights sum to 1.0 within floating
//     tolerance, at construction and after any sequence of Step and
//     UpdateFocusWeights calls.
//
// Randomness:
//
//   - The random source is injectable via WithSeed / WithRand and owned
//     exclusively by the graph instance; identical seeds reproduce
//     identical walk trajectories.
//
// Errors:
//
//   - ErrInvalidParameter: non-positive order, or a focus node outside the
//     node set.
//   - ErrInvalidState: selecting a focus edge with no focus set, adopting
//     a next focus that was never computed, or reinforcing with no focus
//     edge recorded.
package walker
