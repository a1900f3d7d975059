package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	colorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	colorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	colorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	colorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	colorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}

	styleSuccess     = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	styleError       = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	styleInfo        = lipgloss.NewStyle().Foreground(colorInfo)
	styleMuted       = lipgloss.NewStyle().Foreground(colorMuted)
	styleWarning     = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	styleAccent      = lipgloss.NewStyle().Foreground(colorAccent)
	styleTitle       = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true).Underline(true)
	styleBold        = lipgloss.NewStyle().Bold(true)
	styleTableHeader = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
	styleTableBorder = lipgloss.NewStyle().Foreground(colorMuted)
	styleCard        = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorAccent).
				Padding(0, 1)
)

func formatSuccess(msg string) string { return styleSuccess.Render("✔ " + msg) }
func formatError(msg string) string   { return styleError.Render("✘ " + msg) }
func formatInfo(msg string) string    { return styleInfo.Render("ℹ " + msg) }
func formatWarning(msg string) string { return styleWarning.Render("⚠ " + msg) }
func formatTitle(s string) string     { return styleTitle.Render(s) }
func formatMuted(s string) string     { return styleMuted.Render(s) }

type column struct {
	header string
	width  int
}

// table renders fixed columns padded to the widest cell
type table struct {
	columns []column
	rows    [][]string
}

func newTable(columns ...column) *table {
	return &table{columns: columns}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

func (t *table) render() string {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = max(col.width, lipgloss.Width(col.header))
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	var b strings.Builder
	header := make([]string, len(t.columns))
	rule := make([]string, len(t.columns))
	for i, col := range t.columns {
		header[i] = pad(col.header, widths[i])
		rule[i] = strings.Repeat("─", widths[i])
	}
	b.WriteString(styleTableHeader.Render(strings.Join(header, "  ")))
	b.WriteString("\n")
	b.WriteString(styleTableBorder.Render(strings.Join(rule, "  ")))
	b.WriteString("\n")

	for _, row := range t.rows {
		cells := make([]string, len(t.columns))
		for i := range t.columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
