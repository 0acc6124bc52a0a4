package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patternmap/internal/config"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pipeline"
)

// layoutCommand creates the layout command for computing visualization layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [patterns.json|toml|yaml]",
		Short: "Compute a timeline or network layout from a pattern catalog",
		Long: `Compute a timeline or network layout from a pattern catalog.

The layout command reads a pattern file (JSON, TOML or YAML) and computes
node positions, swimlanes, skip-level channels and connector paths. The
output is a layout.json file (same format as 'render -f json') that can be
rendered to SVG/PNG/PDF using the 'visualize' command.

Without a file argument the snapshot is read from the MongoDB store
configured in patternmap.toml.

Results are cached locally for faster subsequent runs.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completePatternFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg)
			opts.Refresh = refresh
			return c.runLayout(cmd.Context(), cfg, args, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "reload the pattern store instead of using a cached snapshot")
	flags.register(cmd, false)

	return cmd
}

// runLayout loads the snapshot, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, cfg config.Config, args []string, opts pipeline.Options, output string, noCache bool) error {
	src, closeSource, err := c.openSource(ctx, cfg, args)
	if err != nil {
		return err
	}
	defer closeSource()

	runner, err := c.newRunner(ctx, cfg, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts.Source = src
	opts.Logger = c.Logger

	patterns, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load patterns: %w", err)
	}

	spin := newSpinner(ctx, fmt.Sprintf("Computing %s layout...", layoutName(opts.VizType)))
	spin.Start()

	l, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, patterns, opts)
	if err != nil {
		spin.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spin.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = outputBase("", args) + ".layout.json"
	}

	if err := graph.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Nodes), len(l.Edges), len(l.SkipLevelEdges), cacheHit)
	if len(l.Cycles) > 0 {
		printWarning("%d prerequisite cycle(s); run 'patternmap cycles' for details", len(l.Cycles))
	}
	printNewline()
	printNextStep("Render", "patternmap visualize "+filepath.ToSlash(outputPath))

	return nil
}

// layoutName returns the display name of a viz type, defaulting to timeline.
func layoutName(vizType string) string {
	if vizType == "" {
		return graph.VizTypeTimeline
	}
	return vizType
}
