package network

import (
	"math"
	"testing"

	"github.com/matzehuels/patternmap/pkg/layout"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestBuildEmpty(t *testing.T) {
	res := Build(nil, 800, 600)
	if len(res.Positions) != 0 || len(res.Anchors) != 0 {
		t.Errorf("Build(nil) = %+v, want empty", res)
	}
	if res.Center != (layout.Point{X: 400, Y: 300}) {
		t.Errorf("Center = %+v", res.Center)
	}
}

func TestBuildRadialPlacement(t *testing.T) {
	for n := 1; n <= 7; n++ {
		patterns := make([]pattern.Pattern, n)
		for i := range patterns {
			patterns[i] = pattern.Pattern{ID: 100 - i}
		}
		res := Build(patterns, 1000, 800)

		if len(res.Anchors) != n {
			t.Fatalf("n=%d: got %d anchors", n, len(res.Anchors))
		}
		for i, a := range res.Anchors {
			if a.ID != patterns[i].ID {
				t.Errorf("n=%d: anchor %d is %d, want input order", n, i, a.ID)
			}
			p := res.Positions[a.ID]
			got := math.Atan2((p.Y-res.Center.Y)/res.RadiusY, (p.X-res.Center.X)/res.RadiusX)
			want := math.Remainder(-math.Pi/2+float64(i)*2*math.Pi/float64(n), 2*math.Pi)
			if math.Abs(math.Remainder(got-want, 2*math.Pi)) > 1e-6 {
				t.Errorf("n=%d: anchor %d at angle %v, want %v", n, i, got, want)
			}
			if i > 0 && !near(a.Angle-res.Anchors[i-1].Angle, 2*math.Pi/float64(n)) {
				t.Errorf("n=%d: separation %v, want 2π/n", n, a.Angle-res.Anchors[i-1].Angle)
			}
		}
	}
}

func TestBuildEllipseRadii(t *testing.T) {
	res := Build([]pattern.Pattern{{ID: 1}}, 1000, 600)
	if res.RadiusX != 300 || res.RadiusY != 180 {
		t.Errorf("radii = %v, %v, want 300, 180", res.RadiusX, res.RadiusY)
	}
	if p := res.Positions[1]; !near(p.X, 500) || !near(p.Y, 120) {
		t.Errorf("single foundation at %+v, want top of ellipse (500, 120)", p)
	}
}

func TestBuildDescendantsFollowAnchor(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 1},
		{ID: 2, Prerequisites: []int{1}},
		{ID: 3, Prerequisites: []int{2}},
	}
	res := Build(patterns, 1000, 1000)
	a := res.Positions[1]

	if p := res.Positions[2]; !near(p.X, a.X) || !near(p.Y, a.Y-DefaultRingSpacing) {
		t.Errorf("depth 1 descendant at %+v, want straight above anchor %+v", p, a)
	}
	if p := res.Positions[3]; !near(p.X, a.X) || !near(p.Y, a.Y-2*DefaultRingSpacing) {
		t.Errorf("depth 2 descendant at %+v", p)
	}
}

func TestBuildFanSpread(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 1},
		{ID: 2, Prerequisites: []int{1}},
		{ID: 3, Prerequisites: []int{1}},
		{ID: 4, Prerequisites: []int{1}},
	}
	res := Build(patterns, 1000, 1000)
	a := res.Positions[1]

	angle := func(id int) float64 {
		p := res.Positions[id]
		return math.Atan2(p.Y-a.Y, p.X-a.X)
	}
	half := DefaultFanSpread / 2 * math.Pi / 180
	if !near(angle(2), -math.Pi/2-half) {
		t.Errorf("first descendant angle %v, want %v", angle(2), -math.Pi/2-half)
	}
	if !near(angle(3), -math.Pi/2) {
		t.Errorf("middle descendant angle %v, want %v", angle(3), -math.Pi/2)
	}
	if !near(angle(4), -math.Pi/2+half) {
		t.Errorf("last descendant angle %v, want %v", angle(4), -math.Pi/2+half)
	}
}

func TestBuildFirstFoundationWins(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 1},
		{ID: 2},
		{ID: 3, Prerequisites: []int{2, 1}},
	}
	res := Build(patterns, 1000, 1000)
	a := res.Positions[1]
	p := res.Positions[3]
	if !near(p.X, a.X) || !near(p.Y, a.Y-DefaultRingSpacing) {
		t.Errorf("shared descendant at %+v, want next to first foundation %+v", p, a)
	}
}

func TestBuildEveryPatternPlacedOnce(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 1},
		{ID: 2, Prerequisites: []int{1, 77}},
		{ID: 3, Prerequisites: []int{4}},
		{ID: 4, Prerequisites: []int{3}},
		{ID: 5, Prerequisites: []int{4}},
		{ID: 1},
	}
	res := Build(patterns, 800, 800)
	if len(res.Positions) != 5 {
		t.Fatalf("got %d positions, want 5", len(res.Positions))
	}
	r := min(res.RadiusX, res.RadiusY) / 2
	for _, id := range []int{3, 4, 5} {
		p := res.Positions[id]
		if d := math.Hypot(p.X-res.Center.X, p.Y-res.Center.Y); !near(d, r) {
			t.Errorf("unreachable %d at distance %v from center, want %v", id, d, r)
		}
	}
}

func TestBuildOptions(t *testing.T) {
	patterns := []pattern.Pattern{{ID: 1}, {ID: 2, Prerequisites: []int{1}}}
	res := Build(patterns, 1000, 1000, WithRadiusRatio(0.1), WithRingSpacing(50))
	if res.RadiusX != 100 {
		t.Errorf("RadiusX = %v, want 100", res.RadiusX)
	}
	if d := res.Positions[1].Y - res.Positions[2].Y; !near(d, 50) {
		t.Errorf("ring spacing = %v, want 50", d)
	}
}
