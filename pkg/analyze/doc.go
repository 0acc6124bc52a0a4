// Package analyze computes depths and detects cycles in a pattern snapshot.
//
// # Depth
//
// The depth of a pattern is the length of its longest prerequisite chain:
//
//	depth(p) = 0                                   if p has no known prerequisites
//	depth(p) = 1 + max(depth(q) for q in prereqs)  otherwise
//
// Prerequisites that are not part of the snapshot are ignored. [ComputeDepths]
// memoizes each resolved depth within one call, so an acyclic snapshot is
// resolved in O(N+E). The memo table is local to the call; nothing is cached
// across calls.
//
// # Cycles
//
// Snapshots are user data and may contain cycles. Depth resolution guards
// every resolution path with a visited set: when an id is met again on the
// current path it counts as depth 0 for that path, and resolution continues.
// The resulting depths for cycle members are a heuristic, not a guarantee,
// and may change when the snapshot is reordered.
//
// [DetectCycles] reports cycles as a diagnostic value. It runs an independent
// depth-first walk from every pattern and never fails:
//
//	for _, c := range analyze.DetectCycles(patterns) {
//	    logger.Warn("prerequisite cycle", "ids", c)
//	}
//
// # Descendants
//
// [Descendants] lists every pattern that transitively builds on a given
// pattern. The network layout uses it to fan descendants out from their
// foundational ancestor.
package analyze
