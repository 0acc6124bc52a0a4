package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes type, level and depth in node labels.
	// When false, only the display name is shown.
	Detailed bool

	// MarkCycles draws edges that belong to a prerequisite cycle in red.
	MarkCycles bool
}

// laneColors fills nodes by their swimlane type.
var laneColors = map[pattern.Type]string{
	pattern.TypeCreational:  "#dbeafe",
	pattern.TypeStructural:  "#dcfce7",
	pattern.TypeBehavioral:  "#fef3c7",
	pattern.TypeConcurrency: "#fce7f3",
}

// ToDOT converts a pattern snapshot to Graphviz DOT format. Edges point from
// prerequisite to pattern and dangling prerequisites are dropped.
// The resulting DOT string can be rendered using [RenderSVG].
func ToDOT(patterns []pattern.Pattern, opts Options) string {
	var depths analyze.Depths
	if opts.Detailed {
		depths = analyze.ComputeDepths(patterns)
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=16, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, p := range patterns {
		label := fmtLabel(p, depths, opts.Detailed)
		fmt.Fprintf(&buf, "  %d [%s];\n", p.ID, strings.Join(fmtAttrs(p, label), ", "))
	}

	var inCycle map[pattern.Edge]bool
	if opts.MarkCycles {
		inCycle = cycleEdges(analyze.DetectCycles(patterns))
	}

	buf.WriteString("\n")
	for _, e := range pattern.Edges(patterns) {
		if inCycle[e] {
			fmt.Fprintf(&buf, "  %d -> %d [color=red, penwidth=2];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %d -> %d;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(p pattern.Pattern, depths analyze.Depths, detailed bool) string {
	if !detailed {
		return p.DisplayName()
	}

	parts := []string{
		"type: " + string(pattern.LaneOf(p.Type)),
		"depth: " + strconv.Itoa(depths[p.ID]),
	}
	if p.Level != pattern.LevelNone {
		parts = append(parts, "level: "+string(p.Level))
	}
	return p.DisplayName() + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(p pattern.Pattern, label string) []string {
	return []string{
		fmt.Sprintf("label=%q", label),
		fmt.Sprintf("fillcolor=%q", laneColors[pattern.LaneOf(p.Type)]),
	}
}

// cycleEdges returns the prerequisite edges that close each cycle. A cycle
// lists ids where each one has the next as a prerequisite.
func cycleEdges(cycles []analyze.Cycle) map[pattern.Edge]bool {
	edges := make(map[pattern.Edge]bool)
	for _, c := range cycles {
		for i, id := range c {
			next := c[(i+1)%len(c)]
			edges[pattern.Edge{From: next, To: id}] = true
		}
	}
	return edges
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	return RenderSVGContext(context.Background(), dot)
}

// RenderSVGContext is [RenderSVG] with a caller supplied context.
func RenderSVGContext(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the root element so the diagram scales from the
// origin; Graphviz emits a pt-based size and a translated viewBox.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(root))
}
