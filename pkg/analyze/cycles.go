package analyze

import (
	"slices"
	"strconv"
	"strings"

	"github.com/matzehuels/patternmap/pkg/dag"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

// Cycle is a sequence of pattern ids where each id lists the next one as a
// prerequisite and the last lists the first.
type Cycle []int

// String formats the cycle as "1 → 2 → 1".
func (c Cycle) String() string {
	if len(c) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c)+1)
	for _, id := range c {
		parts = append(parts, strconv.Itoa(id))
	}
	parts = append(parts, strconv.Itoa(c[0]))
	return strings.Join(parts, " → ")
}

// DetectCycles walks the prerequisite links depth-first from every pattern.
// Each walk keeps its own state; whenever an id already on the current path
// is reached, the path suffix starting at that id is reported as a cycle.
//
// Rotations of the same cycle are reported once, rotated so that the
// smallest id comes first. Cycles are returned in discovery order.
func DetectCycles(patterns []pattern.Pattern) []Cycle {
	return CyclesOf(dag.New(patterns))
}

// CyclesOf is [DetectCycles] for an already built graph.
func CyclesOf(g *dag.Graph) []Cycle {
	var cycles []Cycle
	seen := make(map[string]bool)

	for _, start := range g.Nodes() {
		for _, c := range walkFrom(g, start) {
			c = canonical(c)
			key := c.String()
			if seen[key] {
				continue
			}
			seen[key] = true
			cycles = append(cycles, c)
		}
	}
	return cycles
}

func walkFrom(g *dag.Graph, start int) []Cycle {
	const (
		white = iota
		gray
		black
	)

	color := make(map[int]int)
	var path []int
	var found []Cycle

	var dfs func(id int)
	dfs = func(id int) {
		color[id] = gray
		path = append(path, id)
		for _, pre := range g.Parents(id) {
			switch color[pre] {
			case white:
				dfs(pre)
			case gray:
				at := slices.Index(path, pre)
				found = append(found, slices.Clone(path[at:]))
			}
		}
		path = path[:len(path)-1]
		color[id] = black
	}

	dfs(start)
	return found
}

func canonical(c Cycle) Cycle {
	if len(c) == 0 {
		return c
	}
	at := 0
	for i, id := range c {
		if id < c[at] {
			at = i
		}
	}
	out := make(Cycle, 0, len(c))
	out = append(out, c[at:]...)
	return append(out, c[:at]...)
}
