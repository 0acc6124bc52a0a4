// Package network lays patterns out radially around their foundations.
//
// Foundational (depth 0) patterns are spread evenly over an ellipse centered
// on the canvas, one every 2π/n radians starting at the top. Every other
// pattern follows the direction of the foundation it descends from, placed
// depth * RingSpacing further out. Descendants sharing a depth fan out over
// a small angular spread (30° by default).
//
// A descendant reachable from several foundations is drawn next to the first
// one in snapshot order. Patterns not reachable from any foundation, such as
// members of a pure prerequisite cycle, sit on a small ring around the center.
//
// No collision avoidance is applied: overlapping fans are accepted.
//
//	res := network.Build(patterns, 1200, 900, network.WithRingSpacing(150))
//	for _, a := range res.Anchors {
//	    fmt.Println(a.ID, a.Angle)
//	}
package network
