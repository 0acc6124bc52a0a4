package path

import (
	"fmt"
	"strings"
	"testing"

	"github.com/matzehuels/patternmap/pkg/layout"
)

var box = layout.Box{Width: 160, Height: 50}

func TestFacing(t *testing.T) {
	c := layout.Point{X: 0, Y: 0}
	tests := []struct {
		to   layout.Point
		want Side
	}{
		{layout.Point{X: 100, Y: 10}, Right},
		{layout.Point{X: -100, Y: 10}, Left},
		{layout.Point{X: 10, Y: 100}, Bottom},
		{layout.Point{X: 10, Y: -100}, Top},
		{layout.Point{X: 50, Y: 50}, Bottom},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := Facing(c, tt.to); got != tt.want {
				t.Errorf("Facing(%v) = %v, want %v", tt.to, got, tt.want)
			}
		})
	}
}

func TestControlOffset(t *testing.T) {
	tests := []struct {
		dist, want float64
	}{
		{0, 30},
		{50, 30},
		{200, 60},
		{1000, 100},
	}
	for _, tt := range tests {
		if got := ControlOffset(tt.dist); got != tt.want {
			t.Errorf("ControlOffset(%v) = %v, want %v", tt.dist, got, tt.want)
		}
	}
}

func TestFor(t *testing.T) {
	got := For(layout.Point{X: 140, Y: 65}, layout.Point{X: 360, Y: 65}, box)
	want := "M 220.0 65.0 C 250.0 65.0, 242.0 65.0, 272.0 65.0"
	if got != want {
		t.Errorf("For() = %q, want %q", got, want)
	}

	got = For(layout.Point{X: 100, Y: 100}, layout.Point{X: 100, Y: 400}, box)
	want = "M 100.0 125.0 C 100.0 197.6, 100.0 294.4, 100.0 367.0"
	if got != want {
		t.Errorf("vertical For() = %q, want %q", got, want)
	}
}

func TestSkipLevelRoute(t *testing.T) {
	from := layout.Point{X: 140, Y: 65}
	to := layout.Point{X: 800, Y: 65}
	got := SkipLevelRoute(from, to, Channel{Y: 40, StartX: 340, EndX: 600}, box)

	if !strings.HasPrefix(got, "M 220.0 65.0 C ") {
		t.Errorf("route should leave the right side of the start node: %q", got)
	}
	if !strings.Contains(got, ", 340.0 40.0 L 600.0 40.0 C ") {
		t.Errorf("route should run along the channel: %q", got)
	}
	if !strings.HasSuffix(got, ", 712.0 65.0") {
		t.Errorf("route should stop in front of the end node: %q", got)
	}
	if n := strings.Count(got, " C "); n != 2 {
		t.Errorf("got %d curves, want 2", n)
	}
}

func TestSkipLevel(t *testing.T) {
	from := layout.Point{X: 140, Y: 65}
	to := layout.Point{X: 800, Y: 65}
	got := SkipLevel(from, to, 30, box)
	if !strings.Contains(got, " 30.0 L ") || !strings.Contains(got, " L ") {
		t.Errorf("SkipLevel() = %q, want a straight run at y=30", got)
	}
}

func TestWellFormed(t *testing.T) {
	points := []layout.Point{
		{X: 0, Y: 0},
		{X: 140, Y: 65},
		{X: -300, Y: 20},
		{X: 12.5, Y: -900},
		{X: 800, Y: 800},
		{X: 140, Y: 400},
	}
	for _, a := range points {
		for _, b := range points {
			if a == b {
				continue
			}
			for name, p := range map[string]string{
				"For":       For(a, b, box),
				"SkipLevel": SkipLevel(a, b, (a.Y+b.Y)/2-60, box),
				"Route":     SkipLevelRoute(a, b, Channel{Y: a.Y - 40, StartX: a.X + 50, EndX: b.X - 50}, box),
			} {
				if !strings.HasPrefix(p, "M ") {
					t.Errorf("%s(%v, %v) = %q does not start with a move-to", name, a, b, p)
				}
				if n := strings.Count(p, "M"); n != 1 {
					t.Errorf("%s(%v, %v) has %d move-to commands", name, a, b, n)
				}
				if strings.Contains(p, "NaN") || strings.Contains(p, "Inf") {
					t.Errorf("%s(%v, %v) = %q", name, a, b, p)
				}
			}
		}
	}
}

func TestChannelOf(t *testing.T) {
	e := layout.SkipLevelEdge{ChannelY: 1, ChannelStartX: 2, ChannelEndX: 3}
	if got := ChannelOf(e); got != (Channel{Y: 1, StartX: 2, EndX: 3}) {
		t.Errorf("ChannelOf() = %+v", got)
	}
}

func ExampleFor() {
	fmt.Println(For(layout.Point{X: 140, Y: 65}, layout.Point{X: 360, Y: 65}, layout.Box{Width: 160, Height: 50}))
	// Output: M 220.0 65.0 C 250.0 65.0, 242.0 65.0, 272.0 65.0
}
