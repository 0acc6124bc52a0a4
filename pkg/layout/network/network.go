package network

import (
	"math"

	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/dag"
	"github.com/matzehuels/patternmap/pkg/layout"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

const (
	DefaultRadiusRatio = 0.3
	DefaultRingSpacing = 120.0
	DefaultFanSpread   = 30.0 // degrees
)

// startAngle puts the first foundation at the top of the ellipse.
const startAngle = -math.Pi / 2

// Anchor is a foundational pattern placed on the ellipse.
type Anchor struct {
	ID    int
	Angle float64 // radians
	Point layout.Point
}

// Result is a computed network layout.
type Result struct {
	Positions layout.Positions
	Depths    analyze.Depths
	Anchors   []Anchor
	Center    layout.Point
	RadiusX   float64
	RadiusY   float64
}

type config struct {
	radiusRatio float64
	ringSpacing float64
	fanSpread   float64
}

// Option configures [Build].
type Option func(*config)

// WithRadiusRatio sets the ellipse radii as a fraction of width and height
// (default 0.3).
func WithRadiusRatio(r float64) Option { return func(c *config) { c.radiusRatio = r } }

// WithRingSpacing sets the radial distance per depth level (default 120).
func WithRingSpacing(s float64) Option { return func(c *config) { c.ringSpacing = s } }

// WithFanSpread sets the angular spread, in degrees, of same-depth
// descendants (default 30).
func WithFanSpread(deg float64) Option { return func(c *config) { c.fanSpread = deg } }

// Build computes the network layout of patterns on a width x height canvas.
// The input is not modified.
func Build(patterns []pattern.Pattern, width, height float64, opts ...Option) Result {
	cfg := config{
		radiusRatio: DefaultRadiusRatio,
		ringSpacing: DefaultRingSpacing,
		fanSpread:   DefaultFanSpread,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.radiusRatio <= 0 {
		cfg.radiusRatio = DefaultRadiusRatio
	}
	if cfg.ringSpacing <= 0 {
		cfg.ringSpacing = DefaultRingSpacing
	}

	g := dag.New(patterns)
	res := Result{
		Positions: make(layout.Positions, g.NodeCount()),
		Depths:    analyze.DepthsOf(g),
		Center:    layout.Point{X: width / 2, Y: height / 2},
		RadiusX:   width * cfg.radiusRatio,
		RadiusY:   height * cfg.radiusRatio,
	}
	if g.NodeCount() == 0 {
		return res
	}

	roots := res.Depths.Foundational(patterns)
	step := 2 * math.Pi / float64(max(len(roots), 1))
	for i, id := range roots {
		angle := startAngle + float64(i)*step
		p := layout.Point{
			X: res.Center.X + res.RadiusX*math.Cos(angle),
			Y: res.Center.Y + res.RadiusY*math.Sin(angle),
		}
		res.Anchors = append(res.Anchors, Anchor{ID: id, Angle: angle, Point: p})
		res.Positions[id] = p
	}

	spread := cfg.fanSpread * math.Pi / 180
	for _, a := range res.Anchors {
		byDepth := make(map[int][]int)
		var depths []int
		for _, id := range analyze.Descendants(g, a.ID) {
			if _, placed := res.Positions[id]; placed {
				continue
			}
			d := res.Depths[id]
			if _, ok := byDepth[d]; !ok {
				depths = append(depths, d)
			}
			byDepth[d] = append(byDepth[d], id)
		}
		for _, d := range depths {
			fan(res.Positions, a, byDepth[d], float64(d)*cfg.ringSpacing, spread)
		}
	}

	var orphans []int
	for _, id := range g.Nodes() {
		if _, ok := res.Positions[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	ring(res.Positions, res.Center, min(res.RadiusX, res.RadiusY)/2, orphans)
	return res
}

// fan places ids at distance from the anchor, spread evenly over an arc
// centered on the anchor's direction.
func fan(pos layout.Positions, a Anchor, ids []int, distance, spread float64) {
	for i, id := range ids {
		angle := a.Angle
		if n := len(ids); n > 1 {
			angle += -spread/2 + float64(i)*spread/float64(n-1)
		}
		pos[id] = layout.Point{
			X: a.Point.X + distance*math.Cos(angle),
			Y: a.Point.Y + distance*math.Sin(angle),
		}
	}
}

// ring places ids evenly on a circle around center.
func ring(pos layout.Positions, center layout.Point, radius float64, ids []int) {
	if len(ids) == 0 {
		return
	}
	step := 2 * math.Pi / float64(len(ids))
	for i, id := range ids {
		angle := startAngle + float64(i)*step
		pos[id] = layout.Point{
			X: center.X + radius*math.Cos(angle),
			Y: center.Y + radius*math.Sin(angle),
		}
	}
}
