package analyze

import (
	"github.com/matzehuels/patternmap/pkg/dag"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

// Depths maps pattern ids to their depth.
type Depths map[int]int

// Max returns the largest depth, or 0 for an empty map.
func (d Depths) Max() int {
	m := 0
	for _, v := range d {
		m = max(m, v)
	}
	return m
}

// Foundational returns the ids of depth-0 patterns in snapshot order.
func (d Depths) Foundational(patterns []pattern.Pattern) []int {
	var out []int
	seen := make(map[int]bool)
	for _, p := range patterns {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		if dep, ok := d[p.ID]; ok && dep == 0 {
			out = append(out, p.ID)
		}
	}
	return out
}

// ComputeDepths resolves the depth of every pattern in the snapshot.
// It never fails: ids revisited on the current resolution path count as
// depth 0 for that path.
func ComputeDepths(patterns []pattern.Pattern) Depths {
	return DepthsOf(dag.New(patterns))
}

// DepthsOf is [ComputeDepths] for an already built graph.
func DepthsOf(g *dag.Graph) Depths {
	r := resolver{
		g:      g,
		depths: make(Depths, g.NodeCount()),
		onPath: make(map[int]bool),
	}
	for _, id := range g.Nodes() {
		r.resolve(id)
	}
	return r.depths
}

type resolver struct {
	g      *dag.Graph
	depths Depths
	onPath map[int]bool
}

func (r *resolver) resolve(id int) int {
	if d, ok := r.depths[id]; ok {
		return d
	}
	if r.onPath[id] {
		return 0
	}

	parents := r.g.Parents(id)
	if len(parents) == 0 {
		r.depths[id] = 0
		return 0
	}

	r.onPath[id] = true
	deepest := 0
	for _, pre := range parents {
		deepest = max(deepest, r.resolve(pre))
	}
	delete(r.onPath, id)

	r.depths[id] = deepest + 1
	return deepest + 1
}
