package dag

import "github.com/matzehuels/patternmap/pkg/pattern"

// Graph is the adjacency view of one pattern snapshot.
//
// The zero value is an empty graph; use New to build one from patterns.
type Graph struct {
	ids      []int
	index    pattern.Index
	outgoing map[int][]int // prerequisite -> dependents
	incoming map[int][]int // pattern -> prerequisites in snapshot
	edges    int
}

// New builds a Graph from patterns. The input slice is not retained or
// modified. When an id appears more than once only the first pattern with
// that id contributes nodes and edges.
func New(patterns []pattern.Pattern) *Graph {
	g := &Graph{
		ids:      make([]int, 0, len(patterns)),
		index:    pattern.NewIndex(patterns),
		outgoing: make(map[int][]int),
		incoming: make(map[int][]int),
	}
	for i, p := range patterns {
		if g.index[p.ID] != i {
			continue
		}
		g.ids = append(g.ids, p.ID)
	}
	for i, p := range patterns {
		if g.index[p.ID] != i {
			continue
		}
		seen := make(map[int]bool, len(p.Prerequisites))
		for _, pre := range p.Prerequisites {
			if !g.index.Has(pre) || seen[pre] {
				continue
			}
			seen[pre] = true
			g.incoming[p.ID] = append(g.incoming[p.ID], pre)
			g.outgoing[pre] = append(g.outgoing[pre], p.ID)
			g.edges++
		}
	}
	return g
}

// Nodes returns all pattern ids in snapshot order.
func (g *Graph) Nodes() []int { return g.ids }

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id int) bool { return g.index.Has(id) }

// NodeCount returns the number of distinct pattern ids.
func (g *Graph) NodeCount() int { return len(g.ids) }

// EdgeCount returns the number of non-dangling, distinct prerequisite edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Parents returns the prerequisites of id that exist in the snapshot, in the
// order they were listed. The returned slice must not be modified.
func (g *Graph) Parents(id int) []int { return g.incoming[id] }

// Children returns the patterns that list id as a prerequisite, in snapshot
// order. The returned slice must not be modified.
func (g *Graph) Children(id int) []int { return g.outgoing[id] }

// InDegree returns the number of existing prerequisites of id.
func (g *Graph) InDegree(id int) int { return len(g.incoming[id]) }

// OutDegree returns the number of patterns depending directly on id.
func (g *Graph) OutDegree(id int) int { return len(g.outgoing[id]) }

// Sources returns the ids without any existing prerequisite, in snapshot
// order. These are the foundational patterns.
func (g *Graph) Sources() []int {
	var out []int
	for _, id := range g.ids {
		if len(g.incoming[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Sinks returns the ids nothing depends on, in snapshot order.
func (g *Graph) Sinks() []int {
	var out []int
	for _, id := range g.ids {
		if len(g.outgoing[id]) == 0 {
			out = append(out, id)
		}
	}
	return out
}

// Edges returns every edge, grouped by dependent in snapshot order.
func (g *Graph) Edges() []pattern.Edge {
	out := make([]pattern.Edge, 0, g.edges)
	for _, id := range g.ids {
		for _, pre := range g.incoming[id] {
			out = append(out, pattern.Edge{From: pre, To: id})
		}
	}
	return out
}
