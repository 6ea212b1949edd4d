package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Panel draws a framed box using the current theme.
func Panel(lines []string) string {
	t := Current()
	border := lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1)
	return border.Render(strings.Join(lines, "\n"))
}

// Buttons renders one button per label; active is highlighted unless disabled.
func Buttons(labels []string, active int, disabled bool) string {
	t := Current()
	out := make([]string, 0, len(labels))
	for i, l := range labels {
		style := t.Button
		switch {
		case disabled:
			style = t.ButtonDisabled
		case i == active:
			style = t.ButtonActive
		}
		out = append(out, style.Render(l))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, out...)
}
