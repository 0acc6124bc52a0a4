// Package graph provides the serialization types for computed pattern layouts.
//
// This package defines the canonical wire format for patternmap's layout
// data, used for JSON files, API responses and caching.
//
// # Architecture
//
// The package sits at the serialization boundary between the layout engine
// and external consumers:
//
//   - [Layout]: Serialization type (this package)
//   - pkg/layout/timeline.Result: Internal swimlane layout
//   - pkg/layout/network.Result: Internal radial layout
//
// The pipeline converts engine results into a [Layout], attaching one path
// string per edge, so renderers and API clients never need the engine.
//
// # Constants
//
// This package is the single source of truth for visualization types:
//
//	graph.VizTypeTimeline   // "timeline"
//	graph.VizTypeNetwork    // "network"
//
// # Layout Serialization
//
// Layouts are discriminated by VizType:
//
//	l, _ := graph.UnmarshalLayout(data)
//	if l.IsTimeline() {
//	    // l.Swimlanes and l.SkipLevelEdges are populated
//	} else {
//	    // l.Anchors, l.CenterX/Y and l.RadiusX/Y are populated
//	}
//
// Common operations:
//
//	data, _ := graph.MarshalLayout(l)           // Layout → []byte
//	graph.WriteLayoutFile(l, "layout.json")     // Layout → File
//	l, _ := graph.ReadLayoutFile("layout.json") // File → Layout
//
// # Concurrency
//
// All functions are safe for concurrent reads but not concurrent writes.
package graph
