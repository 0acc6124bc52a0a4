package cli

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pipeline"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render visualization from a computed layout",
		Long: `Render visualization from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it to SVG, PNG, or PDF format. The layout contains all positioning
and path information, so this step is purely about drawing.

DOT output needs the pattern catalog and is only available from 'render'.

Use 'render' as a shortcut to go directly from a pattern file to visual output.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLayoutFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			for _, f := range []string{pipeline.FormatDOT, pipeline.FormatDOTSVG} {
				if slices.Contains(opts.Formats, f) {
					return fmt.Errorf("%s output needs the pattern catalog; use 'patternmap render -f %s'", f, f)
				}
			}

			l, err := graph.ReadLayoutFile(args[0])
			if err != nil {
				return fmt.Errorf("load layout %s: %w", args[0], err)
			}
			opts.VizType = l.VizType

			runner, err := c.newRunner(cmd.Context(), cfg, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()
			return c.runVisualize(cmd.Context(), runner, l, args[0], opts, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.register(cmd, true)
	cmd.Flags().MarkHidden("type")
	cmd.Flags().MarkHidden("width")
	cmd.Flags().MarkHidden("height")

	return cmd
}

// runVisualize renders the layout and writes the artifacts.
func (c *CLI) runVisualize(ctx context.Context, runner *pipeline.Runner, l graph.Layout, input string, opts pipeline.Options, output string) error {
	opts.Logger = c.Logger
	prog := newProgress(c.Logger)

	spin := newSpinner(ctx, fmt.Sprintf("Rendering %s...", layoutName(l.VizType)))
	spin.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, nil, opts)
	if err != nil {
		spin.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spin.Stop()
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.Formats, ", ")))

	base := outputBase(output, []string{strings.TrimSuffix(input, ".layout.json")})
	return writeArtifacts(artifactWriteParams{
		artifacts: artifacts,
		formats:   opts.Formats,
		base:      base,
		output:    output,
		cacheHit:  cacheHit,
	})
}
