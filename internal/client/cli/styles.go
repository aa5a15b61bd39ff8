package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title  lipgloss.Style
	muted  lipgloss.Style
	err    lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
}

// newStyles binds the styles to w so colour is only emitted when w is a
// terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#8BC34A")),
		muted:  r.NewStyle().Faint(true),
		err:    r.NewStyle().Foreground(lipgloss.Color("#e53935")),
		header: r.NewStyle().Bold(true).Padding(0, 1),
		cell:   r.NewStyle().Padding(0, 1),
	}
}

// table renders rows under headers with columns sized to the widest cell.
func (s styles) table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}
	// padding is counted in the style width
	for i := range widths {
		widths[i] += 2
	}

	var sb strings.Builder
	line := func(style lipgloss.Style, cells []string) {
		parts := make([]string, 0, len(widths))
		for i := range widths {
			c := ""
			if i < len(cells) {
				c = cells[i]
			}
			parts = append(parts, style.Width(widths[i]).Render(c))
		}
		sb.WriteString(strings.TrimRight(strings.Join(parts, s.muted.Render("|")), " "))
		sb.WriteString("\n")
	}

	line(s.header, headers)
	total := len(widths) - 1
	for _, w := range widths {
		total += w
	}
	sb.WriteString(s.muted.Render(strings.Repeat("-", total)))
	sb.WriteString("\n")
	for _, row := range rows {
		line(s.cell, row)
	}
	return sb.String()
}
