package analyze

import (
	"maps"
	"slices"
	"testing"

	"github.com/matzehuels/patternmap/pkg/dag"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

func chain(ids ...int) []pattern.Pattern {
	out := make([]pattern.Pattern, len(ids))
	for i, id := range ids {
		out[i] = pattern.Pattern{ID: id}
		if i > 0 {
			out[i].Prerequisites = []int{ids[i-1]}
		}
	}
	return out
}

func TestComputeDepths(t *testing.T) {
	tests := []struct {
		name     string
		patterns []pattern.Pattern
		want     Depths
	}{
		{
			name:     "empty",
			patterns: nil,
			want:     Depths{},
		},
		{
			name:     "chain",
			patterns: chain(1, 2, 3),
			want:     Depths{1: 0, 2: 1, 3: 2},
		},
		{
			name: "longest chain wins",
			patterns: []pattern.Pattern{
				{ID: 1},
				{ID: 2, Prerequisites: []int{1}},
				{ID: 3, Prerequisites: []int{2}},
				{ID: 4, Prerequisites: []int{1, 3}},
			},
			want: Depths{1: 0, 2: 1, 3: 2, 4: 3},
		},
		{
			name: "dangling prerequisites ignored",
			patterns: []pattern.Pattern{
				{ID: 1, Prerequisites: []int{99}},
				{ID: 2, Prerequisites: []int{1, 100}},
			},
			want: Depths{1: 0, 2: 1},
		},
		{
			name: "input order does not matter",
			patterns: []pattern.Pattern{
				{ID: 3, Prerequisites: []int{2}},
				{ID: 2, Prerequisites: []int{1}},
				{ID: 1},
			},
			want: Depths{1: 0, 2: 1, 3: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDepths(tt.patterns)
			if !maps.Equal(got, tt.want) {
				t.Errorf("ComputeDepths() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeDepthsInvariant(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 1},
		{ID: 2},
		{ID: 3, Prerequisites: []int{1, 2}},
		{ID: 4, Prerequisites: []int{3}},
		{ID: 5, Prerequisites: []int{2, 4}},
		{ID: 6, Prerequisites: []int{1}},
	}
	depths := ComputeDepths(patterns)
	idx := pattern.NewIndex(patterns)

	for _, p := range patterns {
		want := 0
		for _, pre := range p.Prerequisites {
			if idx.Has(pre) {
				want = max(want, depths[pre]+1)
			}
		}
		if depths[p.ID] != want {
			t.Errorf("depth(%d) = %d, want %d", p.ID, depths[p.ID], want)
		}
	}
}

func TestComputeDepthsTerminatesOnCycle(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 1, Prerequisites: []int{2}},
		{ID: 2, Prerequisites: []int{1}},
		{ID: 3, Prerequisites: []int{3}},
	}
	depths := ComputeDepths(patterns)
	for _, id := range []int{1, 2, 3} {
		if _, ok := depths[id]; !ok {
			t.Errorf("missing depth for %d", id)
		}
	}
	if depths[1] != 2 || depths[2] != 1 {
		t.Errorf("depths = %v, want 1:2 2:1", depths)
	}
	if depths[3] != 1 {
		t.Errorf("self loop depth = %d, want 1", depths[3])
	}
}

func TestDepthsMaxAndFoundational(t *testing.T) {
	patterns := chain(5, 6, 7)
	patterns = append(patterns, pattern.Pattern{ID: 8})
	d := ComputeDepths(patterns)
	if d.Max() != 2 {
		t.Errorf("Max() = %d, want 2", d.Max())
	}
	if got := d.Foundational(patterns); !slices.Equal(got, []int{5, 8}) {
		t.Errorf("Foundational() = %v, want [5 8]", got)
	}
	if (Depths{}).Max() != 0 {
		t.Error("empty Max() should be 0")
	}
}

func TestDetectCycles(t *testing.T) {
	tests := []struct {
		name     string
		patterns []pattern.Pattern
		want     []Cycle
	}{
		{
			name:     "acyclic",
			patterns: chain(1, 2, 3),
			want:     nil,
		},
		{
			name: "two cycle",
			patterns: []pattern.Pattern{
				{ID: 1, Prerequisites: []int{2}},
				{ID: 2, Prerequisites: []int{1}},
			},
			want: []Cycle{{1, 2}},
		},
		{
			name: "self loop",
			patterns: []pattern.Pattern{
				{ID: 4, Prerequisites: []int{4}},
			},
			want: []Cycle{{4}},
		},
		{
			name: "triangle reported once",
			patterns: []pattern.Pattern{
				{ID: 3, Prerequisites: []int{1}},
				{ID: 1, Prerequisites: []int{2}},
				{ID: 2, Prerequisites: []int{3}},
			},
			want: []Cycle{{1, 2, 3}},
		},
		{
			name: "diamond is not a cycle",
			patterns: []pattern.Pattern{
				{ID: 1},
				{ID: 2, Prerequisites: []int{1}},
				{ID: 3, Prerequisites: []int{1}},
				{ID: 4, Prerequisites: []int{2, 3}},
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectCycles(tt.patterns)
			if len(got) != len(tt.want) {
				t.Fatalf("DetectCycles() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("cycle %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDetectCyclesContainsBothIDs(t *testing.T) {
	patterns := []pattern.Pattern{
		{ID: 10},
		{ID: 11, Prerequisites: []int{10, 12}},
		{ID: 12, Prerequisites: []int{11}},
	}
	cycles := DetectCycles(patterns)
	if len(cycles) == 0 {
		t.Fatal("expected a cycle")
	}
	if !slices.Contains(cycles[0], 11) || !slices.Contains(cycles[0], 12) {
		t.Errorf("cycle %v should contain 11 and 12", cycles[0])
	}
}

func TestCycleString(t *testing.T) {
	if got := (Cycle{1, 2}).String(); got != "1 → 2 → 1" {
		t.Errorf("String() = %q", got)
	}
	if (Cycle{}).String() != "" {
		t.Error("empty cycle should format as empty string")
	}
}

func TestDescendants(t *testing.T) {
	g := dag.New([]pattern.Pattern{
		{ID: 1},
		{ID: 2, Prerequisites: []int{1}},
		{ID: 3, Prerequisites: []int{2}},
		{ID: 4, Prerequisites: []int{1, 3}},
		{ID: 5},
	})
	if got := Descendants(g, 1); !slices.Equal(got, []int{2, 4, 3}) {
		t.Errorf("Descendants(1) = %v, want [2 4 3]", got)
	}
	if got := Descendants(g, 5); len(got) != 0 {
		t.Errorf("Descendants(5) = %v, want empty", got)
	}
}
