package pipeline

import (
	"slices"
	"strings"
	"testing"

	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

func chain() []pattern.Pattern {
	return []pattern.Pattern{
		{ID: 1, Name: "Factory Method", Type: pattern.TypeCreational},
		{ID: 2, Name: "Abstract Factory", Type: pattern.TypeCreational, Prerequisites: []int{1}},
		{ID: 3, Name: "Observer", Type: pattern.TypeBehavioral, Prerequisites: []int{2, 42}},
	}
}

func TestComputeLayoutTimeline(t *testing.T) {
	l := ComputeLayout(chain(), Options{})

	if l.VizType != graph.VizTypeTimeline {
		t.Errorf("VizType = %q, want timeline", l.VizType)
	}
	if len(l.Nodes) != 3 {
		t.Fatalf("nodes = %d, want 3", len(l.Nodes))
	}
	for i, want := range []int{0, 1, 2} {
		if l.Nodes[i].Depth != want {
			t.Errorf("node %d depth = %d, want %d", l.Nodes[i].ID, l.Nodes[i].Depth, want)
		}
	}
	if len(l.Edges) != 2 {
		t.Fatalf("edges = %d, want 2 (dangling prerequisite dropped)", len(l.Edges))
	}
	for _, e := range l.Edges {
		if !strings.HasPrefix(e.Path, "M ") || strings.Count(e.Path, "M") != 1 {
			t.Errorf("edge %d->%d path %q is not a single move-to path", e.From, e.To, e.Path)
		}
	}
	if len(l.Swimlanes) != len(pattern.Types()) {
		t.Errorf("swimlanes = %d, want %d", len(l.Swimlanes), len(pattern.Types()))
	}
	if l.Width < DefaultWidth || l.Height < DefaultHeight {
		t.Errorf("canvas %vx%v smaller than requested", l.Width, l.Height)
	}
	if l.NodeWidth == 0 || l.NodeHeight == 0 {
		t.Error("node box should be recorded")
	}
	if len(l.Cycles) != 0 {
		t.Errorf("cycles = %v, want none", l.Cycles)
	}
}

func TestComputeLayoutSkipLevelRoute(t *testing.T) {
	c, s := pattern.TypeCreational, pattern.TypeStructural
	patterns := []pattern.Pattern{
		{ID: 1, Type: c},
		{ID: 2, Type: c, Prerequisites: []int{1}},
		{ID: 3, Type: c, Prerequisites: []int{2}},
		{ID: 4, Type: c, Prerequisites: []int{1, 12}},
		{ID: 10, Type: s},
		{ID: 11, Type: s, Prerequisites: []int{10}},
		{ID: 12, Type: s, Prerequisites: []int{11}},
	}

	l := ComputeLayout(patterns, Options{})

	if len(l.SkipLevelEdges) == 0 {
		t.Fatal("expected a skip-level edge")
	}
	var found bool
	for _, e := range l.Edges {
		if e.From == 1 && e.To == 4 {
			found = true
			if !e.SkipLevel {
				t.Error("edge 1->4 should be routed as skip-level")
			}
			if !strings.Contains(e.Path, " L ") {
				t.Errorf("skip-level path %q should run along its channel", e.Path)
			}
		}
	}
	if !found {
		t.Error("edge 1->4 missing")
	}
}

func TestComputeLayoutNetwork(t *testing.T) {
	l := ComputeLayout(chain(), Options{VizType: graph.VizTypeNetwork, Width: 600, Height: 400})

	if !l.IsNetwork() {
		t.Fatalf("VizType = %q, want network", l.VizType)
	}
	if l.Width != 600 || l.Height != 400 {
		t.Errorf("canvas = %vx%v, want 600x400", l.Width, l.Height)
	}
	if l.CenterX != 300 || l.CenterY != 200 {
		t.Errorf("center = (%v, %v), want (300, 200)", l.CenterX, l.CenterY)
	}
	if len(l.Anchors) != 1 || l.Anchors[0].ID != 1 {
		t.Errorf("anchors = %+v, want foundation 1", l.Anchors)
	}
	if len(l.Nodes) != 3 || len(l.Edges) != 2 {
		t.Errorf("nodes/edges = %d/%d, want 3/2", len(l.Nodes), len(l.Edges))
	}
	if len(l.Swimlanes) != 0 {
		t.Error("network layout has no swimlanes")
	}
}

func TestComputeLayoutCycles(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 2, Type: pattern.TypeBehavioral, Prerequisites: []int{1}},
		{ID: 1, Type: pattern.TypeBehavioral, Prerequisites: []int{2}},
	}

	l := ComputeLayout(patterns, Options{})

	if len(l.Nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(l.Nodes))
	}
	if len(l.Cycles) != 1 || l.Cycles[0][0] != 1 || l.Cycles[0][1] != 2 {
		t.Errorf("cycles = %v, want [[1 2]]", l.Cycles)
	}
}

func TestComputeLayoutEmpty(t *testing.T) {
	l := ComputeLayout(nil, Options{Width: 300, Height: 200})

	if len(l.Nodes) != 0 || len(l.Edges) != 0 {
		t.Errorf("empty snapshot produced %d nodes, %d edges", len(l.Nodes), len(l.Edges))
	}
	if l.Width != 300 || l.Height != 200 {
		t.Errorf("canvas = %vx%v, want caller size 300x200", l.Width, l.Height)
	}
	if len(l.Swimlanes) != 0 {
		t.Error("empty timeline should have no lanes")
	}
}

func TestColumnsOrderTopToBottom(t *testing.T) {
	got := columns([]graph.Node{
		{ID: 4, Depth: 1, Y: 300},
		{ID: 1, Depth: 0, Y: 100},
		{ID: 3, Depth: 1, Y: 120},
		{ID: 5, Depth: 1, Y: 120},
	})

	if !slices.Equal(got[0], []int{1}) {
		t.Errorf("column 0 = %v, want [1]", got[0])
	}
	if !slices.Equal(got[1], []int{3, 5, 4}) {
		t.Errorf("column 1 = %v, want [3 5 4]", got[1])
	}
}

func TestComputeLayoutChainHasNoCrossings(t *testing.T) {
	if l := ComputeLayout(chain(), Options{}); l.Crossings != 0 {
		t.Errorf("Crossings = %d, want 0", l.Crossings)
	}
}

func TestComputeLayoutRepeatedIDUsesFirstOccurrence(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 1, Type: pattern.TypeCreational},
		{ID: 2, Type: pattern.TypeCreational, Prerequisites: []int{1}},
		{ID: 3, Type: pattern.TypeCreational},
		{ID: 2, Type: pattern.TypeCreational, Prerequisites: []int{3}},
	}
	for _, viz := range []string{graph.VizTypeTimeline, graph.VizTypeNetwork} {
		l := ComputeLayout(patterns, Options{VizType: viz, Width: 800, Height: 600})
		if len(l.Edges) != 1 || l.Edges[0].From != 1 || l.Edges[0].To != 2 {
			t.Errorf("%s: edges = %+v, want only 1->2", viz, l.Edges)
		}
	}
}
