// Package cli implements the patternmap command-line interface.
//
// This package provides commands for computing pattern layouts, rendering
// them, inspecting prerequisite cycles, browsing a catalog interactively and
// serving the layout API over HTTP. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - layout: Compute a timeline or network layout as JSON
//   - render: Generate SVG, PNG, PDF, JSON or DOT output from a pattern file
//   - visualize: Render a previously computed layout file
//   - cycles: List prerequisite cycles
//   - browse: Explore depths, lanes and connectors in the terminal
//   - serve: Run the HTTP layout API
//   - cache: Manage the layout cache
//
// Pattern files may be JSON, TOML or YAML. Without a file argument, commands
// read the MongoDB store configured in patternmap.toml.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 artifacts (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
