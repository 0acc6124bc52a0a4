package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/patternmap/internal/config"
	"github.com/matzehuels/patternmap/pkg/pipeline"
)

// renderCommand creates the render command, a shortcut for layout + visualize.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		refresh bool
		flags   layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "render [patterns.json|toml|yaml]",
		Short: "Render a pattern catalog to SVG, PNG, PDF, JSON or DOT",
		Long: `Render a pattern catalog to SVG, PNG, PDF, JSON or DOT.

Runs the whole pipeline: load the snapshot, compute the layout and draw it.
Several formats can be requested at once (-f svg,json); each is written to
<base>.<format>. PNG and PDF output requires rsvg-convert (librsvg).

Without a file argument the snapshot is read from the MongoDB store
configured in patternmap.toml.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completePatternFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			opts := flags.options(cmd, cfg)
			opts.Refresh = refresh
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cfg, args, opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "reload the pattern store instead of using a cached snapshot")
	flags.register(cmd, true)

	return cmd
}

// runRender executes the full pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, cfg config.Config, args []string, opts pipeline.Options, output string, noCache bool) error {
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

	spin := newSpinner(ctx, fmt.Sprintf("Rendering %s...", layoutName(opts.VizType)))
	spin.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spin.StopWithError("Render failed")
		return err
	}
	spin.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err := writeArtifacts(artifactWriteParams{
		artifacts: result.Artifacts,
		formats:   opts.Formats,
		base:      outputBase(output, args),
		output:    output,
		cacheHit:  result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
	}); err != nil {
		return err
	}
	printStats(result.Stats.PatternCount, result.Stats.EdgeCount, result.Stats.SkipLevelCount, result.CacheInfo.RenderHit)
	if result.Stats.CycleCount > 0 {
		printWarning("%d prerequisite cycle(s); run 'patternmap cycles' for details", result.Stats.CycleCount)
	}
	return nil
}

// artifactWriteParams describes rendered output to write to disk.
type artifactWriteParams struct {
	artifacts map[string][]byte
	formats   []string
	base      string // path without extension
	output    string // exact path when a single format is written
	cacheHit  bool
}

// writeArtifacts writes each artifact to base.format, or to output when
// exactly one format was requested.
func writeArtifacts(p artifactWriteParams) error {
	formats := slices.Clone(p.formats)
	slices.Sort(formats)

	status := "Rendered"
	if p.cacheHit {
		status = "Rendered (cached)"
	}
	printSuccess("%s %d artifact(s)", status, len(formats))

	for _, format := range formats {
		data, ok := p.artifacts[format]
		if !ok {
			return fmt.Errorf("missing %s artifact", format)
		}
		path := p.base + "." + format
		if len(formats) == 1 && p.output != "" {
			path = p.output
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	return nil
}
