package graph

import (
	"github.com/matzehuels/patternmap/pkg/layout"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Visualization types.
const (
	VizTypeTimeline = "timeline"
	VizTypeNetwork  = "network"
)

// VizTypes returns the supported visualization types.
func VizTypes() []string { return []string{VizTypeTimeline, VizTypeNetwork} }

// =============================================================================
// Node - Positioned Pattern
// =============================================================================

// Node is a pattern with its computed position. X and Y are the node center.
type Node struct {
	ID    int     `json:"id" bson:"id"`
	Name  string  `json:"name,omitempty" bson:"name,omitempty"`
	Type  string  `json:"type,omitempty" bson:"type,omitempty"`
	Level string  `json:"level,omitempty" bson:"level,omitempty"`
	Depth int     `json:"depth" bson:"depth"`
	X     float64 `json:"x" bson:"x"`
	Y     float64 `json:"y" bson:"y"`
}

// Point returns the node center.
func (n Node) Point() layout.Point { return layout.Point{X: n.X, Y: n.Y} }

// =============================================================================
// Edge - Prerequisite Link
// =============================================================================

// Edge is a prerequisite link, directed prerequisite → pattern, with the SVG
// path data to draw it.
type Edge struct {
	From      int    `json:"from" bson:"from"`
	To        int    `json:"to" bson:"to"`
	Path      string `json:"path,omitempty" bson:"path,omitempty"`
	SkipLevel bool   `json:"skip_level,omitempty" bson:"skip_level,omitempty"`
}

// =============================================================================
// Timeline Metadata
// =============================================================================

// Lane is a swimlane of a timeline layout.
type Lane struct {
	Type   string  `json:"type" bson:"type"`
	Y      float64 `json:"y" bson:"y"`
	Height float64 `json:"height" bson:"height"`
}

// SkipLevelEdge is the serialized form of [layout.SkipLevelEdge].
type SkipLevelEdge struct {
	From          int     `json:"from" bson:"from"`
	To            int     `json:"to" bson:"to"`
	FromDepth     int     `json:"from_depth" bson:"from_depth"`
	ToDepth       int     `json:"to_depth" bson:"to_depth"`
	Intermediates []int   `json:"intermediates,omitempty" bson:"intermediates,omitempty"`
	Slot          int     `json:"slot" bson:"slot"`
	ChannelY      float64 `json:"channel_y" bson:"channel_y"`
	ChannelStartX float64 `json:"channel_start_x" bson:"channel_start_x"`
	ChannelEndX   float64 `json:"channel_end_x" bson:"channel_end_x"`
}

// FromSkipLevelEdge converts an engine descriptor.
func FromSkipLevelEdge(e layout.SkipLevelEdge) SkipLevelEdge {
	return SkipLevelEdge{
		From:          e.From,
		To:            e.To,
		FromDepth:     e.FromDepth,
		ToDepth:       e.ToDepth,
		Intermediates: e.Intermediates,
		Slot:          e.Slot,
		ChannelY:      e.ChannelY,
		ChannelStartX: e.ChannelStartX,
		ChannelEndX:   e.ChannelEndX,
	}
}

// ToLayout converts back to the engine descriptor.
func (e SkipLevelEdge) ToLayout() layout.SkipLevelEdge {
	return layout.SkipLevelEdge{
		From:          e.From,
		To:            e.To,
		FromDepth:     e.FromDepth,
		ToDepth:       e.ToDepth,
		Intermediates: e.Intermediates,
		Slot:          e.Slot,
		ChannelY:      e.ChannelY,
		ChannelStartX: e.ChannelStartX,
		ChannelEndX:   e.ChannelEndX,
	}
}

// =============================================================================
// Network Metadata
// =============================================================================

// Anchor is a foundational pattern placed on the network ellipse.
type Anchor struct {
	ID    int     `json:"id" bson:"id"`
	Angle float64 `json:"angle" bson:"angle"`
}
