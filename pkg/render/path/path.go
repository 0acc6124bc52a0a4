package path

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/patternmap/pkg/layout"
)

const (
	// ArrowClearance is the gap left in front of the target node.
	ArrowClearance = 8.0

	minControl   = 30.0
	maxControl   = 100.0
	controlRatio = 0.3
)

// Side is a side of a node box.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

func (s Side) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// normal returns the outward unit vector of s.
func (s Side) normal() (float64, float64) {
	switch s {
	case Top:
		return 0, -1
	case Right:
		return 1, 0
	case Bottom:
		return 0, 1
	default:
		return -1, 0
	}
}

// Facing returns the side of a node at from that faces the point to.
func Facing(from, to layout.Point) Side {
	dx, dy := to.X-from.X, to.Y-from.Y
	if math.Abs(dx) > math.Abs(dy) {
		if dx > 0 {
			return Right
		}
		return Left
	}
	if dy > 0 {
		return Bottom
	}
	return Top
}

// Anchor returns the midpoint of side s of a box centered at c, moved
// outward by gap.
func Anchor(c layout.Point, box layout.Box, s Side, gap float64) layout.Point {
	nx, ny := s.normal()
	return layout.Point{
		X: c.X + nx*(box.Width/2+gap),
		Y: c.Y + ny*(box.Height/2+gap),
	}
}

// ControlOffset returns the control point distance for endpoints dist apart.
func ControlOffset(dist float64) float64 {
	return min(max(controlRatio*dist, minControl), maxControl)
}

// For returns the path data of an edge between the nodes centered at from
// and to.
func For(from, to layout.Point, box layout.Box) string {
	ss, es := Facing(from, to), Facing(to, from)
	start := Anchor(from, box, ss, 0)
	end := Anchor(to, box, es, ArrowClearance)
	off := ControlOffset(math.Hypot(end.X-start.X, end.Y-start.Y))

	var b strings.Builder
	moveTo(&b, start)
	curveTo(&b, along(start, ss, off), along(end, es, off), end)
	return b.String()
}

// Channel is the horizontal corridor a skip-level edge runs through.
type Channel struct {
	Y      float64
	StartX float64
	EndX   float64
}

// ChannelOf returns the channel of a routed skip-level edge.
func ChannelOf(e layout.SkipLevelEdge) Channel {
	return Channel{Y: e.ChannelY, StartX: e.ChannelStartX, EndX: e.ChannelEndX}
}

// SkipLevel returns the path data of a skip-level edge routed at channelY.
// The channel enters and leaves a quarter of the horizontal distance, at
// most maxControl, inside the endpoints.
func SkipLevel(from, to layout.Point, channelY float64, box layout.Box) string {
	probe := layout.Point{X: to.X, Y: channelY}
	start := Anchor(from, box, Facing(from, probe), 0)
	probe.X = from.X
	end := Anchor(to, box, Facing(to, probe), ArrowClearance)

	lead := min(math.Abs(end.X-start.X)/4, maxControl)
	dir := direction(start.X, end.X)
	return SkipLevelRoute(from, to, Channel{
		Y:      channelY,
		StartX: start.X + dir*lead,
		EndX:   end.X - dir*lead,
	}, box)
}

// SkipLevelRoute returns the path data of a skip-level edge through ch.
func SkipLevelRoute(from, to layout.Point, ch Channel, box layout.Box) string {
	enter := layout.Point{X: ch.StartX, Y: ch.Y}
	leave := layout.Point{X: ch.EndX, Y: ch.Y}

	ss := Facing(from, enter)
	es := Facing(to, leave)
	start := Anchor(from, box, ss, 0)
	end := Anchor(to, box, es, ArrowClearance)
	dir := direction(ch.StartX, ch.EndX)

	var b strings.Builder
	moveTo(&b, start)

	off := ControlOffset(math.Hypot(enter.X-start.X, enter.Y-start.Y))
	curveTo(&b, along(start, ss, off), layout.Point{X: enter.X - dir*off, Y: enter.Y}, enter)

	lineTo(&b, leave)

	off = ControlOffset(math.Hypot(end.X-leave.X, end.Y-leave.Y))
	curveTo(&b, layout.Point{X: leave.X + dir*off, Y: leave.Y}, along(end, es, off), end)
	return b.String()
}

func direction(fromX, toX float64) float64 {
	if toX < fromX {
		return -1
	}
	return 1
}

func along(p layout.Point, s Side, dist float64) layout.Point {
	nx, ny := s.normal()
	return layout.Point{X: p.X + nx*dist, Y: p.Y + ny*dist}
}

func moveTo(b *strings.Builder, p layout.Point) {
	fmt.Fprintf(b, "M %.1f %.1f", p.X, p.Y)
}

func lineTo(b *strings.Builder, p layout.Point) {
	fmt.Fprintf(b, " L %.1f %.1f", p.X, p.Y)
}

func curveTo(b *strings.Builder, c1, c2, p layout.Point) {
	fmt.Fprintf(b, " C %.1f %.1f, %.1f %.1f, %.1f %.1f", c1.X, c1.Y, c2.X, c2.Y, p.X, p.Y)
}
