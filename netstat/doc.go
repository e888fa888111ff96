// Package netstat computes read-only summary statistics over constructed
// networks: degree distributions for the generator models and out-weight
// distributions for the weighted walker graphs.
//
// These helpers are downstream collaborators in the sense of the toolkit's
// data handoff: they consume node lists, edge lists, adjacency structures
// and degree maps, and never mutate them.
//
// Determinism: values are gathered in ascending node order before any
// floating-point accumulation, so summaries are identical across runs.
package netstat
