package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/patternmap/pkg/pattern"
)

// =============================================================================
// Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // primary
	colorGreen  = lipgloss.Color("35")  // success, cached
	colorYellow = lipgloss.Color("220") // warnings, cycles
	colorRed    = lipgloss.Color("167") // errors
	colorBlue   = lipgloss.Color("75")  // commands
	colorWhite  = lipgloss.Color("255") // values
	colorGray   = lipgloss.Color("245") // secondary text
	colorDim    = lipgloss.Color("240") // muted text
)

// laneColors mirror the swimlane fills of the SVG output.
var laneColors = map[pattern.Type]lipgloss.Color{
	pattern.TypeCreational:  lipgloss.Color("111"),
	pattern.TypeStructural:  lipgloss.Color("114"),
	pattern.TypeBehavioral:  lipgloss.Color("179"),
	pattern.TypeConcurrency: lipgloss.Color("175"),
}

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleHighlight for emphasized values.
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warnings and cycle markers.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader      = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
)

// laneStyle colors text by the swimlane of t.
func laneStyle(t pattern.Type) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(laneColors[pattern.LaneOf(t)])
}

// =============================================================================
// Status Lines
// =============================================================================

const iconArrow = "→"

type statusKind int

const (
	statusSuccess statusKind = iota
	statusError
	statusWarning
	statusInfo
)

var statusIcons = map[statusKind]struct {
	icon  string
	color lipgloss.Color
}{
	statusSuccess: {"✓", colorGreen},
	statusError:   {"✗", colorRed},
	statusWarning: {"!", colorYellow},
	statusInfo:    {"›", colorGray},
}

func printStatus(kind statusKind, format string, args ...any) {
	s := statusIcons[kind]
	msg := fmt.Sprintf(format, args...)
	if kind == statusWarning {
		msg = StyleWarning.Render(msg)
	}
	fmt.Println(lipgloss.NewStyle().Foreground(s.color).Render(s.icon) + " " + msg)
}

func printSuccess(format string, args ...any) { printStatus(statusSuccess, format, args...) }
func printError(format string, args ...any)   { printStatus(statusError, format, args...) }
func printWarning(format string, args ...any) { printStatus(statusWarning, format, args...) }
func printInfo(format string, args ...any)    { printStatus(statusInfo, format, args...) }

// printDetail prints an indented, muted line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints a written output path.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() { fmt.Println() }

// =============================================================================
// Stats
// =============================================================================

// printStats prints layout statistics on a single line.
func printStats(patternCount, edgeCount, skipLevelCount int, cached bool) {
	fmt.Println(statsLine(patternCount, edgeCount, skipLevelCount, cached))
}

// statsLine formats layout statistics, e.g. "12 patterns · 15 edges · 2 skip-level · fresh".
func statsLine(patternCount, edgeCount, skipLevelCount int, cached bool) string {
	var parts []string
	for _, c := range []struct {
		n    int
		unit string
	}{
		{patternCount, "patterns"},
		{edgeCount, "edges"},
		{skipLevelCount, "skip-level"},
	} {
		if c.n > 0 {
			parts = append(parts, StyleDim.Render(fmt.Sprintf("%d %s", c.n, c.unit)))
		}
	}

	if cached {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGreen).Render("cached"))
	} else {
		parts = append(parts, lipgloss.NewStyle().Foreground(colorGray).Render("fresh"))
	}
	return "  " + strings.Join(parts, StyleDim.Render(" · "))
}

// =============================================================================
// Tables
// =============================================================================

// newTable returns a bordered table whose body cells are styled by cell.
func newTable(headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			return cell(row, col)
		})
}
