// Package path turns node coordinates into SVG path data for edges.
//
// # Standard Edges
//
// [For] connects two nodes with one cubic Bézier curve. Each endpoint leaves
// from the midpoint of the node side facing the other node: left or right
// when the horizontal distance dominates, top or bottom otherwise. Control
// points sit on the side normals, so the curve meets both boxes at a right
// angle. Their distance is 0.3 times the endpoint distance, clamped to
// [30, 100]. The arrival point is pulled ArrowClearance units away from the
// target so an arrowhead marker does not overlap the node.
//
// # Skip-Level Edges
//
// [SkipLevelRoute] draws an edge through a routing [Channel]: a curve from
// the start node into the channel, a straight run along it, and a curve from
// the channel into the end node. [SkipLevel] derives the channel's x bounds
// from the endpoints when only the channel height is known.
//
// Every path starts with a single move-to command:
//
//	M 220.0 65.0 C 250.0 65.0, 242.0 65.0, 272.0 65.0
package path
