package layout

import (
	"maps"

	"github.com/matzehuels/patternmap/pkg/pattern"
)

// Point is a node center in canvas units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Positions maps pattern ids to node centers.
type Positions map[int]Point

// Clone returns an independent copy of p.
func (p Positions) Clone() Positions { return maps.Clone(p) }

// Box is the size of a rendered node.
type Box struct {
	Width, Height float64
}

// Top returns the y coordinate of the upper edge of a node centered at c.
func (b Box) Top(c Point) float64 { return c.Y - b.Height/2 }

// Bottom returns the y coordinate of the lower edge of a node centered at c.
func (b Box) Bottom(c Point) float64 { return c.Y + b.Height/2 }

// Left returns the x coordinate of the left edge of a node centered at c.
func (b Box) Left(c Point) float64 { return c.X - b.Width/2 }

// Right returns the x coordinate of the right edge of a node centered at c.
func (b Box) Right(c Point) float64 { return c.X + b.Width/2 }

// Swimlane is the horizontal band reserved for one pattern type.
type Swimlane struct {
	Type   pattern.Type `json:"type"`
	Y      float64      `json:"y"`
	Height float64      `json:"height"`
}

// Bottom returns the y coordinate where the next lane starts.
func (s Swimlane) Bottom() float64 { return s.Y + s.Height }

// SkipLevelEdge describes a same-lane edge spanning more than one depth.
type SkipLevelEdge struct {
	From      int `json:"from"`
	To        int `json:"to"`
	FromDepth int `json:"from_depth"`
	ToDepth   int `json:"to_depth"`

	// Intermediates lists the nodes displaced to make room for the edge.
	Intermediates []int `json:"intermediates,omitempty"`

	// Slot is max(0, 3-span); longer edges get lower slots.
	Slot int `json:"slot"`

	ChannelY      float64 `json:"channel_y"`
	ChannelStartX float64 `json:"channel_start_x"`
	ChannelEndX   float64 `json:"channel_end_x"`
}

// Span returns the depth difference between the endpoints.
func (e SkipLevelEdge) Span() int { return e.ToDepth - e.FromDepth }

// HasChannel reports whether the edge displaced nodes and should be routed
// through its channel.
func (e SkipLevelEdge) HasChannel() bool { return len(e.Intermediates) > 0 }
