package cli

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/patternmap/internal/config"
	"github.com/matzehuels/patternmap/pkg/graph"
	"github.com/matzehuels/patternmap/pkg/pattern"
	"github.com/matzehuels/patternmap/pkg/pipeline"
)

// List styles
var (
	listDimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	listDetailStyle = lipgloss.NewStyle().Foreground(colorGray)
)

// browseCommand creates the browse command for exploring a layout interactively.
func (c *CLI) browseCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "browse [patterns.json|toml|yaml]",
		Short: "Explore depths, lanes and connectors in the terminal",
		Long: `Explore depths, lanes and connectors in the terminal.

Lists every pattern with its depth, swimlane and prerequisites. The
selected pattern's incoming connectors are shown with their path data;
connectors rerouted around intermediate patterns are marked as skip-level.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: completePatternFiles,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			return c.runBrowse(cmd.Context(), cfg, args, flags.options(cmd, cfg))
		},
	}

	flags.register(cmd, false)

	return cmd
}

// runBrowse computes the layout and starts the interactive list.
func (c *CLI) runBrowse(ctx context.Context, cfg config.Config, args []string, opts pipeline.Options) error {
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

	opts.Source = src
	opts.Logger = c.Logger
	patterns, err := runner.Load(ctx, opts)
	if err != nil {
		return fmt.Errorf("load patterns: %w", err)
	}
	l, err := runner.GenerateLayout(ctx, patterns, opts)
	if err != nil {
		return fmt.Errorf("compute layout: %w", err)
	}
	if len(patterns) == 0 {
		printInfo("No patterns to browse")
		return nil
	}

	_, err = tea.NewProgram(newBrowseModel(patterns, l), tea.WithContext(ctx), tea.WithAltScreen()).Run()
	return err
}

// =============================================================================
// BrowseModel - Interactive pattern list
// =============================================================================

// browseRow is one pattern in the list.
type browseRow struct {
	ID      int
	Name    string
	Lane    pattern.Type
	Depth   int
	Prereqs []int
	InCycle bool
}

// BrowseModel is the bubbletea model for the pattern browser.
type BrowseModel struct {
	Rows   []browseRow
	Layout graph.Layout
	Cursor int
	Height int
	Offset int
}

// newBrowseModel orders patterns by depth, then lane, then id.
func newBrowseModel(patterns []pattern.Pattern, l graph.Layout) BrowseModel {
	laneOrder := make(map[pattern.Type]int)
	for i, t := range pattern.Types() {
		laneOrder[t] = i
	}

	seen := make(map[int]bool, len(patterns))
	rows := make([]browseRow, 0, len(patterns))
	for _, p := range patterns {
		if seen[p.ID] {
			continue
		}
		seen[p.ID] = true
		row := browseRow{
			ID:      p.ID,
			Name:    p.DisplayName(),
			Lane:    pattern.LaneOf(p.Type),
			Prereqs: p.Prerequisites,
			InCycle: l.InCycle(p.ID),
		}
		if n, ok := l.Node(p.ID); ok {
			row.Depth = n.Depth
		}
		rows = append(rows, row)
	}
	slices.SortStableFunc(rows, func(a, b browseRow) int {
		if a.Depth != b.Depth {
			return a.Depth - b.Depth
		}
		if la, lb := laneOrder[a.Lane], laneOrder[b.Lane]; la != lb {
			return la - lb
		}
		return a.ID - b.ID
	})

	return BrowseModel{Rows: rows, Layout: l, Height: 15}
}

func (m BrowseModel) Init() tea.Cmd {
	return nil
}

func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Rows)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "home", "g":
			m.Cursor, m.Offset = 0, 0
		case "end", "G":
			m.Cursor = len(m.Rows) - 1
			m.Offset = max(0, m.Cursor-m.Height+1)
		}
	case tea.WindowSizeMsg:
		m.Height = max(5, msg.Height-14)
		if m.Cursor >= m.Offset+m.Height {
			m.Offset = m.Cursor - m.Height + 1
		}
	}
	return m, nil
}

func (m BrowseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(fmt.Sprintf("Patterns (%s layout)", layoutName(m.Layout.VizType))))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  g/G first/last  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Rows))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		r := m.Rows[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		name := r.Name
		if r.InCycle {
			name += " ↻"
		}
		rows = append(rows, []string{cursor, strconv.Itoa(r.ID), name, string(r.Lane), strconv.Itoa(r.Depth), joinIDs(r.Prereqs)})
	}

	headers := []string{"", "ID", "Pattern", "Lane", "Depth", "Prerequisites"}
	t := newTable(headers, rows, func(row, col int) lipgloss.Style {
		idx := m.Offset + row
		if idx >= len(m.Rows) {
			return lipgloss.NewStyle()
		}
		r := m.Rows[idx]
		switch {
		case idx == m.Cursor:
			return StyleHighlight.Bold(true)
		case r.InCycle:
			return StyleWarning
		case col == 3:
			return laneStyle(r.Lane)
		}
		return lipgloss.NewStyle()
	})

	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Rows))))
	b.WriteString("\n\n")
	b.WriteString(m.detail())

	return b.String()
}

// detail describes the incoming connectors of the selected pattern.
func (m BrowseModel) detail() string {
	if len(m.Rows) == 0 {
		return ""
	}
	r := m.Rows[m.Cursor]

	var b strings.Builder
	if n, ok := m.Layout.Node(r.ID); ok {
		b.WriteString(StyleHighlight.Render(r.Name))
		b.WriteString(listDetailStyle.Render(fmt.Sprintf("  at (%.1f, %.1f)", n.X, n.Y)))
		b.WriteString("\n")
	}

	incoming := 0
	for _, e := range m.Layout.Edges {
		if e.To != r.ID {
			continue
		}
		incoming++
		kind := "direct"
		if e.SkipLevel {
			kind = StyleWarning.Render("skip-level")
		}
		b.WriteString(fmt.Sprintf("  %s %d → %d %s\n", StyleDim.Render(iconArrow), e.From, e.To, kind))
		b.WriteString(listDetailStyle.Render("    "+e.Path) + "\n")
	}
	if incoming == 0 {
		b.WriteString(listDimStyle.Render("  foundational: no prerequisites in this catalog") + "\n")
	}
	return b.String()
}

// joinIDs formats ids as "1, 2, 3", or "—" when empty.
func joinIDs(ids []int) string {
	if len(ids) == 0 {
		return "—"
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ", ")
}
