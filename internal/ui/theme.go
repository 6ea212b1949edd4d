package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + status symbols + panel border.
// All UI helpers pull from `current`.
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Button, ButtonActive, ButtonDisabled          lipgloss.Style

	Border      lipgloss.Border
	BorderColor lipgloss.Color

	SymSuccess, SymError, SymPending string
}

var current = classic()

var asciiBorder = lipgloss.Border{
	Top: "-", Bottom: "-", Left: "|", Right: "|",
	TopLeft: "+", TopRight: "+", BottomLeft: "+", BottomRight: "+",
}

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Name:           "neon",
			Title:          lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:          lipgloss.NewStyle().Faint(true),
			Accent:         lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:        lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
			Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:        lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Button:         lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("14")),
			ButtonActive:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true).Foreground(lipgloss.Color("13")),
			ButtonDisabled: lipgloss.NewStyle().Padding(0, 1).Faint(true),
			Border:         lipgloss.RoundedBorder(),
			BorderColor:    lipgloss.Color("13"),
			SymSuccess:     "✔", SymError: "✖", SymPending: "●",
		}
	case "mono":
		disableColor = true
		applyColorProfile()
		plain := lipgloss.NewStyle()
		current = Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Button:         plain.Padding(0, 1),
			ButtonActive:   plain.Padding(0, 1).Underline(true),
			ButtonDisabled: plain.Padding(0, 1),
			Border:         asciiBorder,
			SymSuccess:     "+", SymError: "x", SymPending: "*",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Name:           "classic",
		Title:          lipgloss.NewStyle().Bold(true),
		Muted:          lipgloss.NewStyle().Faint(true),
		Accent:         lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:        lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Error:          lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Pending:        lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Button:         lipgloss.NewStyle().Padding(0, 1),
		ButtonActive:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
		ButtonDisabled: lipgloss.NewStyle().Padding(0, 1).Faint(true).Strikethrough(true),
		Border:         lipgloss.RoundedBorder(),
		BorderColor:    lipgloss.Color("8"),
		SymSuccess:     "✔", SymError: "✖", SymPending: "●",
	}
}

// Expose what renderers need
func Current() Theme { return current }
