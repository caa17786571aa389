// Package tui renders dosecalc results for the terminal and runs the
// interactive calculator form.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette (ANSI 256).
const (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorWarning   = lipgloss.Color("214")
	ColorError     = lipgloss.Color("196")
	ColorOK        = lipgloss.Color("42")
	ColorHighlight = lipgloss.Color("212")
	ColorBorder    = lipgloss.Color("63")
)

//nolint:gochecknoglobals // shared styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHeader).
			Border(lipgloss.NormalBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	HeaderStyle    = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	LabelStyle     = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle     = lipgloss.NewStyle().Foreground(ColorValue).Bold(true)
	MutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	WarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError).Bold(true)
	HighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)
	PanelStyle     = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
	ActiveTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight).Underline(true).Padding(0, 1)
	InactiveTabStyle = lipgloss.NewStyle().Foreground(ColorMuted).Padding(0, 1)
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// IsInteractive reports whether both stdin and stdout are terminals.
func IsInteractive() bool {
	return IsTTY() && term.IsTerminal(int(os.Stdin.Fd()))
}
