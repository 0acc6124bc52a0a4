// Package cli implements the patternmap command-line interface.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/patternmap/internal/config"
	"github.com/matzehuels/patternmap/pkg/buildinfo"
	"github.com/matzehuels/patternmap/pkg/cache"
	"github.com/matzehuels/patternmap/pkg/pipeline"
	"github.com/matzehuels/patternmap/pkg/source"
	"github.com/matzehuels/patternmap/pkg/source/mongo"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "patternmap"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is set by the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Patternmap lays out pattern prerequisite graphs",
		Long:         `Patternmap computes timeline and network layouts for a catalog of patterns and their prerequisites, routing connectors around the patterns they would otherwise cross.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "settings file (default: ~/.config/patternmap/patternmap.toml)")

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.cyclesCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Configuration
// =============================================================================

// loadConfig reads the settings file named by --config, or the default one.
func (c *CLI) loadConfig() (config.Config, error) {
	cfg, err := config.LoadOrDefault(c.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, cfg config.Config, noCache bool) (*pipeline.Runner, error) {
	cc, err := newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cc, nil, c.Logger), nil
}

func newCache(ctx context.Context, cfg config.Config, noCache bool) (cache.Cache, error) {
	if noCache || cfg.Cache.Backend == cache.BackendNone {
		return cache.NewNullCache(), nil
	}
	dir, _ := cacheDir()
	cc := cfg.CacheConfig(dir)
	if cc.Dir == "" && cc.Backend != cache.BackendRedis {
		return cache.NewNullCache(), nil
	}
	return cache.Open(ctx, cc)
}

// =============================================================================
// Sources
// =============================================================================

// openSource returns a file source for a positional argument, or the
// configured pattern store when no file is given. The returned close
// function is never nil.
func (c *CLI) openSource(ctx context.Context, cfg config.Config, args []string) (source.Source, func(), error) {
	if len(args) > 0 {
		return source.File(args[0]), func() {}, nil
	}
	mc, ok := cfg.MongoConfig()
	if !ok {
		return nil, nil, fmt.Errorf("no pattern file given and no [mongo] store configured")
	}
	store, err := mongo.New(ctx, mc)
	if err != nil {
		return nil, nil, err
	}
	c.Logger.Debug("connected to pattern store", "source", store.Name())
	return store, func() {
		if err := store.Close(context.Background()); err != nil {
			c.Logger.Debug("close pattern store", "error", err)
		}
	}, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/patternmap/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// outputBase derives the base output path. Without an input file (pattern
// store) the base is "patterns".
func outputBase(output string, args []string) string {
	if output != "" {
		ext := filepath.Ext(output)
		if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
			return strings.TrimSuffix(output, ext)
		}
		return output
	}
	if len(args) == 0 {
		return "patterns"
	}
	return strings.TrimSuffix(args[0], filepath.Ext(args[0]))
}

// =============================================================================
// Options Helpers
// =============================================================================

// layoutFlags are the layout and render flags shared by several commands.
type layoutFlags struct {
	vizType string
	width   float64
	height  float64
	formats string
	lanes   bool
	labels  bool
	cycles  bool
}

func (f *layoutFlags) register(cmd *cobra.Command, render bool) {
	cmd.Flags().StringVarP(&f.vizType, "type", "t", "", "visualization type: timeline (default), network")
	cmd.Flags().Float64Var(&f.width, "width", 0, "frame width (default 1200)")
	cmd.Flags().Float64Var(&f.height, "height", 0, "frame height (default 800)")
	if !render {
		return
	}
	cmd.Flags().StringVarP(&f.formats, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot, dot.svg (comma-separated)")
	cmd.Flags().BoolVar(&f.lanes, "lanes", true, "draw swimlanes (timeline) or the anchor ellipse (network)")
	cmd.Flags().BoolVar(&f.labels, "labels", true, "draw pattern names")
	cmd.Flags().BoolVar(&f.cycles, "cycles", false, "highlight prerequisite cycles")
}

// options merges flags over the settings file. Flags the user passed win.
func (f *layoutFlags) options(cmd *cobra.Command, cfg config.Config) pipeline.Options {
	opts := pipeline.Options{
		VizType:    f.vizType,
		Width:      f.width,
		Height:     f.height,
		Lanes:      f.lanes,
		Labels:     f.labels,
		ShowCycles: f.cycles,
	}
	if f.formats != "" {
		opts.Formats = parseFormats(f.formats)
	}
	cfg.ApplyDefaults(&opts)
	if cmd.Flags().Changed("lanes") {
		opts.Lanes = f.lanes
	}
	if cmd.Flags().Changed("labels") {
		opts.Labels = f.labels
	}
	return opts
}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
