// Package nodelink renders pattern prerequisite graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz, where
// patterns appear as boxes connected by arrows from prerequisite to
// dependent. Unlike the timeline and network layouts, Graphviz chooses the
// coordinates, so the diagram is a quick structural overview of a snapshot.
//
// # Usage
//
// Convert a snapshot to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(patterns, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, pass the SVG through the render package:
//
//	pdf, err := render.ToPDF(svg)
//
// # Options
//
//   - Detailed: node labels include type, depth and level
//   - MarkCycles: edges on a prerequisite cycle are drawn in red
//
// Nodes are filled by swimlane type so the diagram reads like the timeline.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. The pipeline exposes it as the "dot.svg" format.
package nodelink
