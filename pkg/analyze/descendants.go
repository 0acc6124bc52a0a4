package analyze

import "github.com/matzehuels/patternmap/pkg/dag"

// Descendants returns every pattern that lists id as a prerequisite,
// directly or transitively, in breadth-first order. The id itself is never
// included, even when it sits on a cycle.
func Descendants(g *dag.Graph, id int) []int {
	visited := map[int]bool{id: true}
	queue := []int{id}
	var out []int
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, child := range g.Children(cur) {
			if visited[child] {
				continue
			}
			visited[child] = true
			out = append(out, child)
			queue = append(queue, child)
		}
	}
	return out
}
