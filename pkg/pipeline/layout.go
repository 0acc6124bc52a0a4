package pipeline

import (
	"cmp"
	"slices"

	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/dag"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/layout"
	"github.com/matzehuels/patternmap/pkg/layout/network"
	"github.com/matzehuels/patternmap/pkg/layout/timeline"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/render/path"
)

// =============================================================================
// Layout Generation
// =============================================================================

// ComputeLayout computes the serializable layout of a snapshot.
// This is the unified entry point for both visualization types; it never
// fails, whatever the shape of the prerequisite graph.
//
// Both layouts include:
//   - Nodes with depth and center position
//   - One edge per non-dangling prerequisite, with SVG path data
//   - Prerequisite cycles (diagnostic)
func ComputeLayout(patterns []pattern.Pattern, opts Options) graph.Layout {
	opts.SetLayoutDefaults()

	var l graph.Layout
	if opts.IsNetwork() {
		l = computeNetwork(patterns, opts)
	} else {
		l = computeTimeline(patterns, opts)
	}

	for _, c := range analyze.DetectCycles(patterns) {
		l.Cycles = append(l.Cycles, []int(c))
	}
	return l
}

// =============================================================================
// Timeline
// =============================================================================

func computeTimeline(patterns []pattern.Pattern, opts Options) graph.Layout {
	res := timeline.Build(patterns, opts.Width, opts.Height)
	box := res.Geometry.Box()

	l := graph.Layout{
		VizType:    graph.VizTypeTimeline,
		Width:      res.ActualWidth,
		Height:     res.MinHeight,
		NodeWidth:  box.Width,
		NodeHeight: box.Height,
		Nodes:      nodes(patterns, res.Positions, res.Depths),
	}
	for _, lane := range res.Swimlanes {
		l.Swimlanes = append(l.Swimlanes, graph.Lane{Type: string(lane.Type), Y: lane.Y, Height: lane.Height})
	}

	routed := make(map[pattern.Edge]layout.SkipLevelEdge, len(res.SkipLevelEdges))
	for _, e := range res.SkipLevelEdges {
		l.SkipLevelEdges = append(l.SkipLevelEdges, graph.FromSkipLevelEdge(e))
		if e.HasChannel() {
			routed[pattern.Edge{From: e.From, To: e.To}] = e
		}
	}

	g := dag.New(patterns)
	l.Edges = edges(g, res.Positions, func(e pattern.Edge, from, to layout.Point) graph.Edge {
		if sk, ok := routed[e]; ok {
			return graph.Edge{From: e.From, To: e.To, Path: path.SkipLevelRoute(from, to, path.ChannelOf(sk), box), SkipLevel: true}
		}
		return graph.Edge{From: e.From, To: e.To, Path: path.For(from, to, box)}
	})
	l.Crossings = dag.CountCrossings(g, columns(l.Nodes))
	return l
}

// columns groups timeline nodes by depth, each column ordered top to bottom.
func columns(nodes []graph.Node) map[int][]int {
	byDepth := make(map[int][]graph.Node)
	for _, n := range nodes {
		byDepth[n.Depth] = append(byDepth[n.Depth], n)
	}
	out := make(map[int][]int, len(byDepth))
	for d, col := range byDepth {
		slices.SortFunc(col, func(a, b graph.Node) int {
			if c := cmp.Compare(a.Y, b.Y); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		ids := make([]int, len(col))
		for i, n := range col {
			ids[i] = n.ID
		}
		out[d] = ids
	}
	return out
}

// =============================================================================
// Network
// =============================================================================

func computeNetwork(patterns []pattern.Pattern, opts Options) graph.Layout {
	res := network.Build(patterns, opts.Width, opts.Height)
	box := layout.DefaultGeometry().Box()

	l := graph.Layout{
		VizType:    graph.VizTypeNetwork,
		Width:      opts.Width,
		Height:     opts.Height,
		NodeWidth:  box.Width,
		NodeHeight: box.Height,
		Nodes:      nodes(patterns, res.Positions, res.Depths),
		CenterX:    res.Center.X,
		CenterY:    res.Center.Y,
		RadiusX:    res.RadiusX,
		RadiusY:    res.RadiusY,
	}
	for _, a := range res.Anchors {
		l.Anchors = append(l.Anchors, graph.Anchor{ID: a.ID, Angle: a.Angle})
	}

	l.Edges = edges(dag.New(patterns), res.Positions, func(e pattern.Edge, from, to layout.Point) graph.Edge {
		return graph.Edge{From: e.From, To: e.To, Path: path.For(from, to, box)}
	})
	return l
}

// =============================================================================
// Helpers
// =============================================================================

// nodes lists every positioned pattern in snapshot order. Repeated ids keep
// their first occurrence.
func nodes(patterns []pattern.Pattern, pos layout.Positions, depths analyze.Depths) []graph.Node {
	out := make([]graph.Node, 0, len(pos))
	seen := make(map[int]bool, len(pos))
	for _, p := range patterns {
		c, ok := pos[p.ID]
		if !ok || seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		out = append(out, graph.Node{
			ID:    p.ID,
			Name:  p.Name,
			Type:  string(p.Type),
			Level: string(p.Level),
			Depth: depths[p.ID],
			X:     c.X,
			Y:     c.Y,
		})
	}
	return out
}

// edges builds one edge per graph edge whose endpoints both have a position.
// Repeated pattern ids contribute only through their first occurrence.
func edges(g *dag.Graph, pos layout.Positions, build func(pattern.Edge, layout.Point, layout.Point) graph.Edge) []graph.Edge {
	out := []graph.Edge{}
	for _, e := range g.Edges() {
		from, okF := pos[e.From]
		to, okT := pos[e.To]
		if !okF || !okT || e.From == e.To {
			continue
		}
		out = append(out, build(e, from, to))
	}
	return out
}
