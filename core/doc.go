// Package core defines the plain value conventions shared by every network
// model in dlcutils: integer node identifiers, (from, to, weight) edges,
// a map-of-maps adjacency structure, and incrementally maintained degree
// bookkeeping.
//
// What:
//
//   - Nodes are plain ints in 1..N; there is no node payload and no node type.
//   - Edge records one ordered (From, To) pair with an optional Weight.
//   - Adjacency maps node → neighbor → weight.
//   - Degrees maps node → degree, updated edge by edge, never by full scan.
//
// Why:
//
//   - The generators (netgen) and the weighted walker (walker) are
//     independent of one another by design; they share only these data
//     conventions, not code and not a base type.
//   - Downstream statistics collaborators (netstat) consume these
//     structures read-only.
//
// Errors: none. The helpers here cannot fail; parameter validation is the
// responsibility of the constructing packages.
package core
