package graph

import (
	"github.com/matzehuels/patternmap/pkg/layout"
)

// =============================================================================
// Layout - Unified Visualization Format
// =============================================================================

// Layout is the unified serialization format for both visualizations.
//
// This is a discriminated union type - check VizType to determine which
// fields are populated:
//
//	Timeline ("timeline"):
//	  - Swimlanes: one band per pattern type, top to bottom
//	  - SkipLevelEdges: edges routed around intermediate nodes
//
//	Network ("network"):
//	  - Anchors: foundational patterns and their angles
//	  - CenterX/Y, RadiusX/Y: the ellipse
//
// Shared fields (both types):
//   - ID: unique layout id
//   - Width, Height: canvas dimensions
//   - NodeWidth, NodeHeight: node box used for paths
//   - Nodes: positioned patterns
//   - Edges: prerequisite links with path data
//   - Cycles: prerequisite cycles found in the snapshot (diagnostic)
type Layout struct {
	ID      string `json:"id,omitempty" bson:"id,omitempty"`
	VizType string `json:"viz_type" bson:"viz_type"`

	// Canvas
	Width      float64 `json:"width" bson:"width"`
	Height     float64 `json:"height" bson:"height"`
	NodeWidth  float64 `json:"node_width" bson:"node_width"`
	NodeHeight float64 `json:"node_height" bson:"node_height"`

	// Graph structure (shared)
	Nodes  []Node  `json:"nodes" bson:"nodes"`
	Edges  []Edge  `json:"edges" bson:"edges"`
	Cycles [][]int `json:"cycles,omitempty" bson:"cycles,omitempty"`

	// Timeline-specific
	Swimlanes      []Lane          `json:"swimlanes,omitempty" bson:"swimlanes,omitempty"`
	SkipLevelEdges []SkipLevelEdge `json:"skip_level_edges,omitempty" bson:"skip_level_edges,omitempty"`
	Crossings      int             `json:"crossings,omitempty" bson:"crossings,omitempty"`

	// Network-specific
	Anchors []Anchor `json:"anchors,omitempty" bson:"anchors,omitempty"`
	CenterX float64  `json:"center_x,omitempty" bson:"center_x,omitempty"`
	CenterY float64  `json:"center_y,omitempty" bson:"center_y,omitempty"`
	RadiusX float64  `json:"radius_x,omitempty" bson:"radius_x,omitempty"`
	RadiusY float64  `json:"radius_y,omitempty" bson:"radius_y,omitempty"`
}

// IsTimeline returns true if this is a timeline layout.
func (l *Layout) IsTimeline() bool { return l.VizType == VizTypeTimeline }

// IsNetwork returns true if this is a network layout.
func (l *Layout) IsNetwork() bool { return l.VizType == VizTypeNetwork }

// Box returns the node box.
func (l *Layout) Box() layout.Box { return layout.Box{Width: l.NodeWidth, Height: l.NodeHeight} }

// Node returns the node with the given id.
func (l *Layout) Node(id int) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Positions returns the node centers keyed by pattern id.
func (l *Layout) Positions() layout.Positions {
	pos := make(layout.Positions, len(l.Nodes))
	for _, n := range l.Nodes {
		pos[n.ID] = n.Point()
	}
	return pos
}

// InCycle reports whether id is part of a reported cycle.
func (l *Layout) InCycle(id int) bool {
	for _, c := range l.Cycles {
		for _, member := range c {
			if member == id {
				return true
			}
		}
	}
	return false
}
