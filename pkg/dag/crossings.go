package dag

import (
	"maps"
	"slices"
)

// CountCrossings returns the total number of edge crossings between
// consecutive columns. columns maps a column index (a depth) to the pattern
// ids of that column in top-to-bottom order. Columns missing from the map are
// treated as empty, and only edges joining column c to column c+1 are counted.
//
// Example:
//
//	columns := map[int][]int{
//	    0: {1, 2},    // depth 0: pattern 1 above pattern 2
//	    1: {3, 4, 5}, // depth 1
//	}
//	crossings := dag.CountCrossings(g, columns)
//
// It runs in O(C × E log V) time where C is the number of columns, E the
// edges between a column pair and V the size of the right-hand column.
func CountCrossings(g *Graph, columns map[int][]int) int {
	keys := slices.Sorted(maps.Keys(columns))
	crossings := 0
	for _, c := range keys {
		if next, ok := columns[c+1]; ok {
			crossings += CountLayerCrossings(g, columns[c], next)
		}
	}
	return crossings
}

// CountLayerCrossings counts edge crossings between two adjacent columns
// using a Fenwick tree (binary indexed tree).
//
// Two edges (u1,v1) and (u2,v2) cross if and only if:
//
//	pos(u1) < pos(u2) AND pos(v1) > pos(v2)
//
// This is equivalent to counting inversions in the sequence of target
// positions when edges are sorted by source position. Edges sharing an
// endpoint never cross.
//
// Returns 0 if either column is empty.
func CountLayerCrossings(g *Graph, left, right []int) int {
	if len(left) == 0 || len(right) == 0 {
		return 0
	}

	rightPos := make(map[int]int, len(right))
	for i, id := range right {
		rightPos[id] = i
	}

	type edge struct{ left, right int }
	edges := make([]edge, 0, len(left)*2)
	for i, id := range left {
		for _, child := range g.Children(id) {
			if pos, ok := rightPos[child]; ok {
				edges = append(edges, edge{i, pos})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b edge) int {
		if a.left != b.left {
			return a.left - b.left
		}
		return a.right - b.right
	})

	fenwick := make([]int, len(right)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		// edges seen so far with target <= e.right
		lessOrEqual := 0
		for q := e.right + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.right + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
