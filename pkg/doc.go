// Package pkg provides the core libraries for patternmap, a layout engine for
// design pattern prerequisite graphs.
//
// # Overview
//
// A snapshot is a list of patterns, each naming the patterns it builds on.
// patternmap turns that prerequisite graph into one of two layouts, a
// swimlane timeline or a radial network, and renders it as SVG, PNG, PDF,
// JSON or Graphviz DOT. The pkg directory is organized into four areas:
//
//  1. Domain: [pattern], [dag], [analyze]
//  2. Layout: [layout], [layout/timeline], [layout/network], [layout/collision],
//     [render/path]
//  3. Output: [graph], [render], [render/sink], [render/nodelink], [io]
//  4. Orchestration: [pipeline], [source], [cache], [errors], [observability]
//
// # Architecture
//
// The typical data flow through patternmap:
//
//	Snapshot file / MongoDB collection / inline request
//	         ↓
//	    [source] package (load patterns)
//	         ↓
//	    [analyze] package (depths + cycles)
//	         ↓
//	    [layout/timeline] or [layout/network] (positions)
//	         ↓
//	    [layout/collision] + [render/path] (edge routing + SVG path data)
//	         ↓
//	    SVG/PDF/PNG/JSON/DOT output
//
// # Quick Start
//
// Load a snapshot and render a timeline:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/patternmap/pkg/cache"
//	    "github.com/matzehuels/patternmap/pkg/pipeline"
//	    "github.com/matzehuels/patternmap/pkg/source"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Source:  source.File("patterns.yaml"),
//	    VizType: "timeline",
//	    Formats: []string{"svg"},
//	    Lanes:   true,
//	    Labels:  true,
//	})
//	svg := result.Artifacts["svg"]
//
// Or use the layout packages directly:
//
//	res := timeline.Build(patterns, 1200, 600)
//	for id, p := range res.Positions {
//	    fmt.Println(id, p.X, p.Y)
//	}
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                # All tests
//	go test ./pkg/layout/...         # Layout packages
//	go test -run Example ./pkg/...   # Examples only
//
// [pattern]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/pattern
// [dag]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/dag
// [analyze]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/analyze
// [layout]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/layout
// [layout/timeline]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/layout/timeline
// [layout/network]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/layout/network
// [layout/collision]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/layout/collision
// [render/path]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/render/path
// [graph]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/graph
// [render]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/render
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/render/sink
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/render/nodelink
// [io]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/io
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/pipeline
// [source]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/source
// [cache]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/patternmap/pkg/observability
package pkg
