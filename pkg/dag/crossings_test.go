package dag

import (
	"testing"

	"github.com/matzehuels/patternmap/pkg/pattern"
)

func TestCountLayerCrossings(t *testing.T) {
	// 1 -> 3, 1 -> 4, 2 -> 3
	g := New([]pattern.Pattern{
		{ID: 1},
		{ID: 2},
		{ID: 3, Prerequisites: []int{1, 2}},
		{ID: 4, Prerequisites: []int{1}},
	})

	tests := []struct {
		name        string
		left, right []int
		want        int
	}{
		{"straight", []int{1, 2}, []int{4, 3}, 0},
		{"crossed", []int{1, 2}, []int{3, 4}, 1},
		{"shared target", []int{2, 1}, []int{3, 4}, 0},
		{"empty left", nil, []int{3, 4}, 0},
		{"empty right", []int{1, 2}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountLayerCrossings(g, tt.left, tt.right); got != tt.want {
				t.Errorf("CountLayerCrossings(%v, %v) = %d, want %d", tt.left, tt.right, got, tt.want)
			}
		})
	}
}

func TestCountCrossingsSkipsNonAdjacentColumns(t *testing.T) {
	//  1   2
	//   \ /
	//    X
	//   / \
	//  3   4      5 (depth 3, prerequisite 2)
	g := New([]pattern.Pattern{
		{ID: 1},
		{ID: 2},
		{ID: 3, Prerequisites: []int{2}},
		{ID: 4, Prerequisites: []int{1}},
		{ID: 5, Prerequisites: []int{2}},
	})

	columns := map[int][]int{
		0: {1, 2},
		1: {3, 4},
		3: {5},
	}
	if got := CountCrossings(g, columns); got != 1 {
		t.Errorf("CountCrossings() = %d, want 1", got)
	}
	if got := CountCrossings(g, nil); got != 0 {
		t.Errorf("CountCrossings(nil) = %d, want 0", got)
	}
}
