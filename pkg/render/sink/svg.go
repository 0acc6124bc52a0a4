package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pattern"
)

const edgeCSS = `
    .edge { fill: none; stroke: #64748b; stroke-width: 1.5; }
    .edge.skip-level { stroke-dasharray: 6 4; }
    .edge.cycle { stroke: #dc2626; stroke-width: 2.5; }
    .node { stroke: #334155; stroke-width: 1.5; }
    .node.cycle { stroke: #dc2626; stroke-width: 3; }
    .label { font-family: sans-serif; font-size: 13px; fill: #0f172a; }
    .lane-label { font-family: sans-serif; font-size: 12px; fill: #64748b; text-transform: uppercase; }`

// fills maps swimlane types to node and lane colors.
var fills = map[string]struct{ node, lane string }{
	string(pattern.TypeCreational):  {"#dbeafe", "#f8fafc"},
	string(pattern.TypeStructural):  {"#dcfce7", "#f1f5f9"},
	string(pattern.TypeBehavioral):  {"#fef3c7", "#f8fafc"},
	string(pattern.TypeConcurrency): {"#fce7f3", "#f1f5f9"},
}

const (
	cornerRadius  = 8.0
	labelCharW    = 7.0
	labelPadding  = 12.0
	laneLabelX    = 12.0
	laneLabelY    = 18.0
	minLabelChars = 4
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	lanes  bool
	labels bool
	cycles bool
}

func WithLanes() SVGOption  { return func(r *svgRenderer) { r.lanes = true } }
func WithLabels() SVGOption { return func(r *svgRenderer) { r.labels = true } }
func WithCycles() SVGOption { return func(r *svgRenderer) { r.cycles = true } }

// RenderSVG draws the layout. Nodes are drawn after edges so arrowheads end
// at the box boundary without being covered.
func RenderSVG(l graph.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		l.Width, l.Height, l.Width, l.Height)

	renderDefs(&buf)
	if r.lanes {
		renderBackground(&buf, l)
	}
	r.renderEdges(&buf, l)
	r.renderNodes(&buf, l)

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderDefs(buf *bytes.Buffer) {
	buf.WriteString("  <defs>\n")
	buf.WriteString(`    <marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="8" markerHeight="8" orient="auto-start-reverse">` + "\n")
	buf.WriteString(`      <path d="M 0 0 L 10 5 L 0 10 z" fill="#64748b"/>` + "\n")
	buf.WriteString("    </marker>\n")
	buf.WriteString("  </defs>\n")
	fmt.Fprintf(buf, "  <style>%s\n  </style>\n", edgeCSS)
}

func renderBackground(buf *bytes.Buffer, l graph.Layout) {
	if l.IsNetwork() {
		if l.RadiusX > 0 && l.RadiusY > 0 {
			fmt.Fprintf(buf, `  <ellipse cx="%.1f" cy="%.1f" rx="%.1f" ry="%.1f" fill="none" stroke="#cbd5e1" stroke-dasharray="4 4"/>`+"\n",
				l.CenterX, l.CenterY, l.RadiusX, l.RadiusY)
		}
		return
	}
	for _, lane := range l.Swimlanes {
		fmt.Fprintf(buf, `  <rect class="lane" x="0" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
			lane.Y, l.Width, lane.Height, fills[lane.Type].lane)
		fmt.Fprintf(buf, `  <text class="lane-label" x="%.1f" y="%.1f">%s</text>`+"\n",
			laneLabelX, lane.Y+laneLabelY, escapeXML(lane.Type))
	}
}

func (r svgRenderer) renderEdges(buf *bytes.Buffer, l graph.Layout) {
	for _, e := range l.Edges {
		if e.Path == "" || !graph.ValidPath(e.Path) {
			continue
		}
		class := "edge"
		if e.SkipLevel {
			class += " skip-level"
		}
		if r.cycles && l.InCycle(e.From) && l.InCycle(e.To) {
			class += " cycle"
		}
		fmt.Fprintf(buf, `  <path class="%s" data-from="%d" data-to="%d" d="%s" marker-end="url(#arrow)"/>`+"\n",
			class, e.From, e.To, escapeXML(e.Path))
	}
}

func (r svgRenderer) renderNodes(buf *bytes.Buffer, l graph.Layout) {
	w, h := l.NodeWidth, l.NodeHeight
	for _, n := range l.Nodes {
		class := "node"
		if r.cycles && l.InCycle(n.ID) {
			class += " cycle"
		}
		fill := fills[string(pattern.LaneOf(pattern.Type(n.Type)))].node
		fmt.Fprintf(buf, `  <rect class="%s" id="pattern-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>`+"\n",
			class, n.ID, n.X-w/2, n.Y-h/2, w, h, cornerRadius, fill)
		if r.labels {
			fmt.Fprintf(buf, `  <text class="label" x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle">%s</text>`+"\n",
				n.X, n.Y, escapeXML(truncate(label(n), w)))
		}
	}
}

func label(n graph.Node) string {
	if n.Name != "" {
		return n.Name
	}
	return fmt.Sprintf("#%d", n.ID)
}

// truncate shortens s to what fits in a box of the given width.
func truncate(s string, width float64) string {
	maxChars := max(minLabelChars, int((width-labelPadding)/labelCharW))
	r := []rune(s)
	if len(r) <= maxChars {
		return s
	}
	return string(r[:maxChars-2]) + ".."
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
