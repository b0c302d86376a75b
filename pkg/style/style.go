// Package style renders the reconciliation report and the diagnosis table
// for the terminal.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

var (
	// TitleStyle heads each report section.
	TitleStyle = pterm.NewStyle(pterm.FgLightCyan, pterm.Bold)
	// MutedStyle is for secondary detail lines.
	MutedStyle = pterm.NewStyle(pterm.FgGray)

	keptStyle    = pterm.NewStyle(pterm.FgGreen)
	removedStyle = pterm.NewStyle(pterm.FgRed)
	movedStyle   = pterm.NewStyle(pterm.FgYellow)
	addedStyle   = pterm.NewStyle(pterm.FgCyan)

	entryStyle  = lipgloss.NewStyle().Bold(true)
	reasonStyle = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// SetupColor applies the configured color mode: "always", "never" or
// "auto". Auto disables color when stdout is not a terminal or the
// environment asks for no color.
func SetupColor(mode string) {
	switch mode {
	case "always":
		pterm.EnableColor()
	case "never":
		disableColor()
	default:
		if termenv.EnvNoColor() || !isatty.IsTerminal(os.Stdout.Fd()) {
			disableColor()
		}
	}
}

func disableColor() {
	pterm.DisableColor()
	lipgloss.SetColorProfile(termenv.Ascii)
}
