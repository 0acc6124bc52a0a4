package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/patternmap/internal/config"
	"github.com/matzehuels/patternmap/pkg/analyze"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/pipeline"
)

// errCyclesFound is returned by `cycles --strict` when the catalog has cycles.
var errCyclesFound = errors.New("prerequisite cycles found")

// cyclesCommand creates the cycles command for listing prerequisite cycles.
func (c *CLI) cyclesCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "cycles [patterns.json|toml|yaml]",
		Short: "List prerequisite cycles in a pattern catalog",
		Long: `List prerequisite cycles in a pattern catalog.

Layouts never fail on cycles: the depth of a pattern on a cycle is resolved
heuristically. This command shows which patterns are involved so the
catalog can be fixed. With --strict it exits non-zero when any cycle exists.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completePatternFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runCycles(cmd.Context(), cfg, args, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when cycles are found")

	return cmd
}

// runCycles loads the snapshot and prints its cycles.
func (c *CLI) runCycles(ctx context.Context, cfg config.Config, args []string, strict bool) error {
	src, closeSource, err := c.openSource(ctx, cfg, args)
	if err != nil {
		return err
	}
	defer closeSource()

	runner, err := c.newRunner(ctx, cfg, false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	patterns, err := runner.Load(ctx, pipeline.Options{Source: src, Logger: c.Logger})
	if err != nil {
		return fmt.Errorf("load patterns: %w", err)
	}

	cycles := analyze.DetectCycles(patterns)
	if len(cycles) == 0 {
		printSuccess("No prerequisite cycles in %d patterns", len(patterns))
		return nil
	}

	printWarning("%d prerequisite cycle(s)", len(cycles))
	fmt.Println(cyclesTable(cycles, patterns))

	if strict {
		return fmt.Errorf("%w: %d", errCyclesFound, len(cycles))
	}
	return nil
}

// cyclesTable renders cycles as a table of ids and pattern names.
func cyclesTable(cycles []analyze.Cycle, patterns []pattern.Pattern) string {
	names := make(map[int]string, len(patterns))
	for _, p := range patterns {
		names[p.ID] = p.DisplayName()
	}

	rows := make([][]string, len(cycles))
	for i, cyc := range cycles {
		labels := make([]string, len(cyc))
		for j, id := range cyc {
			labels[j] = names[id]
		}
		rows[i] = []string{strconv.Itoa(i + 1), cyc.String(), strings.Join(labels, " → ")}
	}

	return newTable([]string{"#", "Cycle", "Patterns"}, rows, func(_, col int) lipgloss.Style {
		if col == 1 {
			return StyleWarning
		}
		return lipgloss.NewStyle()
	}).Render()
}
