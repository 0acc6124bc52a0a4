package timeline

import (
	"cmp"
	"math"
	"slices"

	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/layout"
	"github.com/matzehuels/patternmap/pkg/layout/collision"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

// Result is a computed timeline layout.
type Result struct {
	Positions      layout.Positions
	Depths         analyze.Depths
	Swimlanes      []layout.Swimlane
	SkipLevelEdges []layout.SkipLevelEdge
	MinHeight      float64
	ActualWidth    float64
	Geometry       layout.Geometry
}

// Lane returns the swimlane of type t.
func (r Result) Lane(t pattern.Type) (layout.Swimlane, bool) {
	for _, l := range r.Swimlanes {
		if l.Type == t {
			return l, true
		}
	}
	return layout.Swimlane{}, false
}

// Build computes the timeline layout of patterns. The input is not modified.
func Build(patterns []pattern.Pattern, availableWidth, baseHeight float64, opts ...layout.Option) Result {
	geom := layout.NewGeometry(opts...)
	res := Result{
		Positions:   make(layout.Positions, len(patterns)),
		Depths:      analyze.ComputeDepths(patterns),
		MinHeight:   baseHeight,
		ActualWidth: availableWidth,
		Geometry:    geom,
	}
	if len(patterns) == 0 {
		return res
	}

	buckets := bucketize(patterns, res.Depths)

	lanes := make([]layout.Swimlane, 0, len(pattern.Types()))
	offset := 0.0
	for _, t := range pattern.Types() {
		tallest := 0
		for _, b := range buckets[t] {
			tallest = max(tallest, len(b))
		}
		lane := layout.Swimlane{Type: t, Y: offset, Height: geom.LaneHeight(tallest)}
		lanes = append(lanes, lane)
		offset = lane.Bottom()
	}

	laneOf := make(map[int]pattern.Type, len(res.Depths))
	for i, t := range pattern.Types() {
		top := lanes[i].Y + geom.LaneTopOffset + geom.NodeHeight/2
		for depth, bucket := range buckets[t] {
			for k, p := range bucket {
				res.Positions[p.ID] = layout.Point{
					X: geom.ColumnX(depth),
					Y: top + float64(k)*geom.StackSpacing,
				}
				laneOf[p.ID] = t
			}
		}
	}

	planned := collision.Apply(patterns, res.Depths, res.Positions, geom)

	delta := make(map[pattern.Type]float64, len(lanes))
	offset = 0
	for i := range lanes {
		l := &lanes[i]
		delta[l.Type] = offset - l.Y
		l.Y = offset
		l.Height += planned.MaxShift[l.Type]
		offset = l.Bottom()
	}
	for id, p := range res.Positions {
		p.Y += delta[laneOf[id]]
		res.Positions[id] = p
	}
	for i := range planned.SkipLevelEdges {
		e := &planned.SkipLevelEdges[i]
		if e.HasChannel() {
			e.ChannelY += delta[laneOf[e.From]]
		}
	}

	res.Swimlanes = lanes
	res.SkipLevelEdges = planned.SkipLevelEdges
	res.ActualWidth = max(availableWidth, geom.LeftMargin+(float64(res.Depths.Max())+0.5)*geom.HorizontalSpacing)
	res.MinHeight = max(baseHeight, offset)
	return res
}

// bucketize groups the first occurrence of every id by lane and depth, each
// bucket in stacking order.
func bucketize(patterns []pattern.Pattern, depths analyze.Depths) map[pattern.Type]map[int][]pattern.Pattern {
	idx := pattern.NewIndex(patterns)
	buckets := make(map[pattern.Type]map[int][]pattern.Pattern)
	for i, p := range patterns {
		if idx[p.ID] != i {
			continue
		}
		lane := pattern.LaneOf(p.Type)
		if buckets[lane] == nil {
			buckets[lane] = make(map[int][]pattern.Pattern)
		}
		d := depths[p.ID]
		buckets[lane][d] = append(buckets[lane][d], p)
	}

	for _, byDepth := range buckets {
		for _, bucket := range byDepth {
			slices.SortStableFunc(bucket, func(a, b pattern.Pattern) int {
				if c := cmp.Compare(smallestPrerequisite(a, idx), smallestPrerequisite(b, idx)); c != 0 {
					return c
				}
				return cmp.Compare(a.ID, b.ID)
			})
		}
	}
	return buckets
}

func smallestPrerequisite(p pattern.Pattern, idx pattern.Index) int {
	least := math.MaxInt
	for _, pre := range p.Prerequisites {
		if idx.Has(pre) {
			least = min(least, pre)
		}
	}
	return least
}
