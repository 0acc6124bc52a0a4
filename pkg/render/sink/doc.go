// Package sink provides output format renderers for pattern layouts.
//
// # Overview
//
// A "sink" transforms a computed [graph.Layout] into a final output format.
// This package provides the SVG renderer:
//
//   - SVG: lanes, connector paths with arrowheads, and pattern boxes
//
// JSON output is the layout itself, see [graph.MarshalLayout].
//
// # SVG Output
//
// [RenderSVG] draws whatever the layout carries. Edge paths are taken from
// the layout as-is, so the renderer never recomputes geometry:
//
//	svg := sink.RenderSVG(l,
//	    sink.WithLanes(),
//	    sink.WithLabels(),
//	    sink.WithCycles(),
//	)
//
// # SVG Options
//
//   - [WithLanes]: Shade timeline swimlanes and the network ellipse
//   - [WithLabels]: Write pattern names inside the boxes
//   - [WithCycles]: Highlight patterns and edges on a prerequisite cycle
//
// # PDF and PNG Output
//
// PDF and PNG are produced from the SVG by [render.ConvertContext], which
// requires librsvg (rsvg-convert) on PATH.
//
// [graph.Layout]: github.com/matzehuels/patternmap/pkg/graph.Layout
// [graph.MarshalLayout]: github.com/matzehuels/patternmap/pkg/graph.MarshalLayout
// [render.ConvertContext]: github.com/matzehuels/patternmap/pkg/render.ConvertContext
package sink
