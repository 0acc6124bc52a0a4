package collision

import (
	"cmp"
	"slices"

	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/layout"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

// slotLimit bounds the slot index: spans of this many depths or more share
// slot 0.
const slotLimit = 3

// Result is the outcome of [Apply].
type Result struct {
	// SkipLevelEdges lists every skip-level edge in snapshot order. Edges
	// that displaced nodes carry a routing channel.
	SkipLevelEdges []layout.SkipLevelEdge

	// MaxShift is the largest downward shift applied in each lane.
	MaxShift map[pattern.Type]float64

	// Shifts records the shift applied to each displaced node.
	Shifts map[int]float64
}

type member struct {
	id    int
	depth int
	lane  pattern.Type
	orig  layout.Point
}

// Apply detects skip-level edges and moves the nodes in their way. positions
// is modified in place; patterns and depths are only read.
func Apply(patterns []pattern.Pattern, depths analyze.Depths, positions layout.Positions, geom layout.Geometry) Result {
	res := Result{
		MaxShift: make(map[pattern.Type]float64),
		Shifts:   make(map[int]float64),
	}

	idx := pattern.NewIndex(patterns)
	lanes := make(map[int]pattern.Type, len(idx))
	byLane := make(map[pattern.Type][]member)
	for i, p := range patterns {
		if idx[p.ID] != i {
			continue
		}
		lane := pattern.LaneOf(p.Type)
		lanes[p.ID] = lane
		pos, ok := positions[p.ID]
		if !ok {
			continue
		}
		byLane[lane] = append(byLane[lane], member{id: p.ID, depth: depths[p.ID], lane: lane, orig: pos})
	}

	edges := skipLevelEdges(patterns, idx, lanes, depths, positions)
	if len(edges) == 0 {
		return res
	}

	box := geom.Box()
	slots := make(map[int]int)
	for i := range edges {
		e := &edges[i]
		from, to := positions[e.From], positions[e.To]
		lo, hi := min(from.Y, to.Y), max(from.Y, to.Y)
		for _, m := range byLane[lanes[e.From]] {
			if m.depth <= e.FromDepth || m.depth >= e.ToDepth {
				continue
			}
			if box.Top(m.orig) > hi || box.Bottom(m.orig) < lo {
				continue
			}
			e.Intermediates = append(e.Intermediates, m.id)
			if s, seen := slots[m.id]; !seen || e.Slot > s {
				slots[m.id] = e.Slot
			}
		}
	}

	for lane, members := range byLane {
		propagate(lane, members, slots, geom.EdgeSpacing, positions, &res)
	}

	orig := make(map[int]layout.Point)
	for _, members := range byLane {
		for _, m := range members {
			orig[m.id] = m.orig
		}
	}
	for i := range edges {
		if edges[i].HasChannel() {
			route(&edges[i], orig, positions, geom)
		}
	}

	res.SkipLevelEdges = edges
	return res
}

func skipLevelEdges(patterns []pattern.Pattern, idx pattern.Index, lanes map[int]pattern.Type, depths analyze.Depths, positions layout.Positions) []layout.SkipLevelEdge {
	var edges []layout.SkipLevelEdge
	for i, p := range patterns {
		if idx[p.ID] != i {
			continue
		}
		if _, ok := positions[p.ID]; !ok {
			continue
		}
		seen := make(map[int]bool, len(p.Prerequisites))
		for _, pre := range p.Prerequisites {
			if seen[pre] || !idx.Has(pre) {
				continue
			}
			seen[pre] = true
			if _, ok := positions[pre]; !ok {
				continue
			}
			fromDepth, toDepth := depths[pre], depths[p.ID]
			span := toDepth - fromDepth
			if span <= 1 || lanes[pre] != lanes[p.ID] {
				continue
			}
			edges = append(edges, layout.SkipLevelEdge{
				From:      pre,
				To:        p.ID,
				FromDepth: fromDepth,
				ToDepth:   toDepth,
				Slot:      max(0, slotLimit-span),
			})
		}
	}
	return edges
}

// propagate shifts every (depth, lane) stack of one lane. Nodes are visited
// top to bottom; each one moves by its own requirement or the shift of the
// node above, whichever is larger.
func propagate(lane pattern.Type, members []member, slots map[int]int, unit float64, positions layout.Positions, res *Result) {
	stacks := make(map[int][]member)
	for _, m := range members {
		stacks[m.depth] = append(stacks[m.depth], m)
	}
	for _, stack := range stacks {
		slices.SortFunc(stack, func(a, b member) int {
			if c := cmp.Compare(a.orig.Y, b.orig.Y); c != 0 {
				return c
			}
			return cmp.Compare(a.id, b.id)
		})
		running := 0.0
		for _, m := range stack {
			shift := running
			if s, ok := slots[m.id]; ok {
				shift = max(shift, float64(s+1)*unit)
			}
			running = shift
			if shift == 0 {
				continue
			}
			p := positions[m.id]
			p.Y = m.orig.Y + shift
			positions[m.id] = p
			res.Shifts[m.id] = shift
			res.MaxShift[lane] = max(res.MaxShift[lane], shift)
		}
	}
}

// route computes the channel of an edge that displaced nodes. Channel x
// bounds interpolate the endpoint columns so no column constants are needed,
// and reach ChannelInset past the outer intermediate columns so a span-2
// channel still has length and the connecting curves meet it before the
// displaced boxes.
func route(e *layout.SkipLevelEdge, orig map[int]layout.Point, positions layout.Positions, geom layout.Geometry) {
	top := orig[e.Intermediates[0]].Y
	for _, id := range e.Intermediates[1:] {
		top = min(top, orig[id].Y)
	}
	e.ChannelY = top - geom.NodeHeight/2 + float64(e.Slot)*geom.EdgeSpacing

	fromX, toX := positions[e.From].X, positions[e.To].X
	column := func(d int) float64 {
		return fromX + (toX-fromX)*float64(d-e.FromDepth)/float64(e.Span())
	}
	dir := 1.0
	if toX < fromX {
		dir = -1
	}
	e.ChannelStartX = column(e.FromDepth+1) - dir*geom.ChannelInset
	e.ChannelEndX = column(e.ToDepth-1) + dir*geom.ChannelInset
}
