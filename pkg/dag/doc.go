// Package dag provides a read-only adjacency view over a pattern snapshot.
//
// # Overview
//
// Patterns list their prerequisites by id. Layout code needs to walk that
// relationship in both directions: from a pattern to its prerequisites
// (parents) and from a prerequisite to everything that builds on it
// (children). [New] derives both adjacency lists once per snapshot.
//
// Edges point prerequisite → pattern. Prerequisites that are not part of the
// snapshot are dropped, so every edge returned by this package connects two
// known nodes. Duplicate prerequisite entries collapse into a single edge.
//
// # Ordering
//
// All accessors are deterministic: [Graph.Nodes] follows snapshot order and
// [Graph.Parents] / [Graph.Children] follow the order in which prerequisites
// were listed. Layout algorithms rely on this for reproducible output.
//
// # Cycles
//
// The graph is not required to be acyclic. A snapshot is data supplied by a
// user, so cycles are expected occasionally; pkg/analyze detects and reports
// them without rejecting the snapshot.
//
// # Concurrency
//
// A Graph is immutable after construction and safe for concurrent reads.
package dag
