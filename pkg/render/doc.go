// Package render provides visualization rendering for pattern layouts.
//
// # Overview
//
// This package contains the rendering side of patternmap. The layout engine
// (packages under pkg/layout) produces coordinates; the packages here turn
// those coordinates into pictures:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - Connector path data (in [path] subpackage)
//   - Timeline and network SVG output (in [sink] subpackage)
//   - Graphviz node-link diagrams (in [nodelink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg). They are shared by the sink
// and node-link renderers.
//
//	svg := sink.RenderSVG(l, sink.WithLanes())
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// # Paths
//
// The [path] subpackage generates SVG path data between two node centers,
// choosing the facing sides of each node and bending the curve so it leaves
// and enters perpendicular to the node boundary. Skip-level edges of the
// timeline are routed through the channel computed by collision avoidance.
//
// # Node-Link Diagrams
//
// The [nodelink] subpackage renders the raw prerequisite graph using Graphviz,
// independent of the timeline and network coordinates.
//
//	dot := nodelink.ToDOT(patterns, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [path]: github.com/matzehuels/patternmap/pkg/render/path
// [sink]: github.com/matzehuels/patternmap/pkg/render/sink
// [nodelink]: github.com/matzehuels/patternmap/pkg/render/nodelink
package render
