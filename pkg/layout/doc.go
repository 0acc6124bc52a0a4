// Package layout holds the coordinate types shared by the pattern layouts.
//
// # Overview
//
// Two layouts turn a pattern snapshot into node coordinates:
//
//   - [timeline]: depth on the x axis, one horizontal swimlane per pattern
//     type on the y axis. Skip-level edges are cleared by the collision
//     planner in [collision].
//   - [network]: foundational patterns on an ellipse, descendants fanned out
//     radially along their ancestor's direction.
//
// Both produce [Positions], a map from pattern id to the node center. The
// origin is the top-left corner of the canvas and Y grows downward.
//
// # Geometry
//
// [Geometry] carries the node box and spacing constants used by the timeline
// layout and the collision planner. [DefaultGeometry] returns:
//
//	NodeWidth 160, NodeHeight 50
//	LeftMargin 140, HorizontalSpacing 220
//	LaneTopOffset 40, StackSpacing 70
//	EdgeSpacing 70, ChannelInset 20
//
// Override individual values with options:
//
//	res := timeline.Build(patterns, 1200, 800,
//	    layout.WithNodeSize(180, 60),
//	    layout.WithStackSpacing(80),
//	)
//
// # Skip-Level Edges
//
// A [SkipLevelEdge] describes an edge that jumps over at least one depth
// column inside a single swimlane. When the planner had to push nodes out of
// its way the edge also carries a routing channel: a horizontal corridor at
// ChannelY between ChannelStartX and ChannelEndX. Path generators in
// [render/path] draw such edges through the channel.
//
// [timeline]: github.com/matzehuels/patternmap/pkg/layout/timeline
// [network]: github.com/matzehuels/patternmap/pkg/layout/network
// [collision]: github.com/matzehuels/patternmap/pkg/layout/collision
// [render/path]: github.com/matzehuels/patternmap/pkg/render/path
package layout
