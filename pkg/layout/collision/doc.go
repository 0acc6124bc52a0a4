// Package collision clears room for skip-level edges in the timeline layout.
//
// # Overview
//
// An edge whose endpoints share a swimlane but are more than one depth apart
// would be drawn straight through the nodes at the depths in between. [Apply]
// finds those nodes and pushes them down so the edge can travel through the
// space they left behind.
//
// # Algorithm
//
//  1. Collect skip-level edges: prerequisite links with toDepth-fromDepth > 1
//     whose endpoints are in the same lane.
//  2. For every such edge, find the same-lane nodes at intermediate depths
//     whose vertical extent (center +/- half node height) overlaps the span
//     between the endpoints. Each edge has slot max(0, 3-span); a node keeps
//     the largest slot of all edges crossing it.
//  3. A node with slot s requires a shift of (s+1) * EdgeSpacing.
//  4. Shifts propagate down each (depth, lane) stack: a node moves at least
//     as far as the node above it, so stack order and spacing survive.
//  5. Positions are updated in place and the largest shift per lane is
//     reported so the caller can grow the lane.
//  6. Each edge that displaced nodes gets a channel at the original top edge
//     of its topmost displaced node plus slot * EdgeSpacing. The channel runs
//     from the first to the last intermediate column, widened by ChannelInset
//     on both ends.
//
// Missing positions are skipped; Apply never fails.
package collision
