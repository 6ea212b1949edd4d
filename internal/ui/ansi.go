package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides lipgloss' terminal detection.
// disable wins when both are set.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
	applyColorProfile()
}

func applyColorProfile() {
	switch {
	case disableColor:
		lipgloss.SetColorProfile(termenv.Ascii)
	case forceColor:
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

func OK(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymSuccess+" "+msg))
}

func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymError+" "+msg))
}
