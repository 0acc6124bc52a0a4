package layout

const (
	DefaultNodeWidth         = 160.0
	DefaultNodeHeight        = 50.0
	DefaultLeftMargin        = 140.0
	DefaultHorizontalSpacing = 220.0
	DefaultLaneTopOffset     = 40.0
	DefaultStackSpacing      = 70.0
	DefaultEdgeSpacing       = DefaultStackSpacing
	DefaultChannelInset      = 20.0
)

// Geometry holds the node size and spacing constants of the timeline layout.
type Geometry struct {
	NodeWidth         float64
	NodeHeight        float64
	LeftMargin        float64
	HorizontalSpacing float64
	LaneTopOffset     float64
	StackSpacing      float64
	EdgeSpacing       float64
	ChannelInset      float64
}

// DefaultGeometry returns the standard constants.
func DefaultGeometry() Geometry {
	return Geometry{
		NodeWidth:         DefaultNodeWidth,
		NodeHeight:        DefaultNodeHeight,
		LeftMargin:        DefaultLeftMargin,
		HorizontalSpacing: DefaultHorizontalSpacing,
		LaneTopOffset:     DefaultLaneTopOffset,
		StackSpacing:      DefaultStackSpacing,
		EdgeSpacing:       DefaultEdgeSpacing,
		ChannelInset:      DefaultChannelInset,
	}
}

// NewGeometry applies opts on top of [DefaultGeometry]. Non-positive sizes
// and spacings are reset to their defaults.
func NewGeometry(opts ...Option) Geometry {
	g := DefaultGeometry()
	for _, opt := range opts {
		opt(&g)
	}
	def := DefaultGeometry()
	fix := func(v *float64, d float64) {
		if *v <= 0 {
			*v = d
		}
	}
	fix(&g.NodeWidth, def.NodeWidth)
	fix(&g.NodeHeight, def.NodeHeight)
	fix(&g.HorizontalSpacing, def.HorizontalSpacing)
	fix(&g.StackSpacing, def.StackSpacing)
	fix(&g.EdgeSpacing, def.EdgeSpacing)
	if g.LeftMargin < 0 {
		g.LeftMargin = def.LeftMargin
	}
	if g.LaneTopOffset < 0 {
		g.LaneTopOffset = def.LaneTopOffset
	}
	if g.ChannelInset < 0 {
		g.ChannelInset = def.ChannelInset
	}
	return g
}

// Box returns the node box.
func (g Geometry) Box() Box { return Box{Width: g.NodeWidth, Height: g.NodeHeight} }

// ColumnX returns the x coordinate of the node centers at depth.
func (g Geometry) ColumnX(depth int) float64 {
	return g.LeftMargin + float64(depth)*g.HorizontalSpacing
}

// LaneHeight returns the height of a lane whose tallest stack holds n nodes.
// Empty lanes are as tall as a lane with a single node.
func (g Geometry) LaneHeight(n int) float64 {
	return g.LaneTopOffset + g.NodeHeight + float64(max(n, 1)-1)*g.StackSpacing
}

// Option adjusts a [Geometry].
type Option func(*Geometry)

// WithNodeSize sets the node box (default 160x50).
func WithNodeSize(width, height float64) Option {
	return func(g *Geometry) { g.NodeWidth, g.NodeHeight = width, height }
}

// WithLeftMargin sets the x offset of the depth-0 column (default 140).
func WithLeftMargin(m float64) Option { return func(g *Geometry) { g.LeftMargin = m } }

// WithHorizontalSpacing sets the distance between depth columns (default 220).
func WithHorizontalSpacing(s float64) Option {
	return func(g *Geometry) { g.HorizontalSpacing = s }
}

// WithLaneTopOffset sets the padding above the first node of a lane (default 40).
func WithLaneTopOffset(o float64) Option { return func(g *Geometry) { g.LaneTopOffset = o } }

// WithStackSpacing sets the vertical distance between stacked nodes
// (default 70).
func WithStackSpacing(s float64) Option { return func(g *Geometry) { g.StackSpacing = s } }

// WithEdgeSpacing sets the shift unit used to clear skip-level edges
// (default 70).
func WithEdgeSpacing(s float64) Option { return func(g *Geometry) { g.EdgeSpacing = s } }

// WithChannelInset sets how far channels extend past the outer intermediate
// columns, away from their centers (default 20).
func WithChannelInset(i float64) Option { return func(g *Geometry) { g.ChannelInset = i } }
