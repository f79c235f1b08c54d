// Package tui holds the terminal theme and styles for command output.
package tui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Theme holds the color values used for command output.
type Theme struct {
	Name string

	Accent  lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Primary lipgloss.Color
	Dim     lipgloss.Color
}

// Dark is the default theme.
var Dark = Theme{
	Name:    "dark",
	Accent:  lipgloss.Color("#38bdf8"),
	Success: lipgloss.Color("#4ade80"),
	Warning: lipgloss.Color("#facc15"),
	Error:   lipgloss.Color("#f87171"),
	Primary: lipgloss.Color("#e2e8f0"),
	Dim:     lipgloss.Color("#64748b"),
}

// Light is the theme for light terminal backgrounds.
var Light = Theme{
	Name:    "light",
	Accent:  lipgloss.Color("#0369a1"),
	Success: lipgloss.Color("#15803d"),
	Warning: lipgloss.Color("#a16207"),
	Error:   lipgloss.Color("#b91c1c"),
	Primary: lipgloss.Color("#0f172a"),
	Dim:     lipgloss.Color("#64748b"),
}

// Detect picks a theme from the --theme flag, the REACTRUST_THEME env var,
// or the COLORFGBG background heuristic, in that order.
func Detect(flagVal string) Theme {
	switch strings.ToLower(flagVal) {
	case "dark":
		return Dark
	case "light":
		return Light
	}

	switch strings.ToLower(os.Getenv("REACTRUST_THEME")) {
	case "dark":
		return Dark
	case "light":
		return Light
	}

	// COLORFGBG is "fg;bg"; bg 7 and 15 are the common light backgrounds.
	if fgbg := os.Getenv("COLORFGBG"); fgbg != "" {
		parts := strings.Split(fgbg, ";")
		bg := parts[len(parts)-1]
		if bg == "7" || bg == "15" {
			return Light
		}
	}

	return Dark
}

// Styles are the pre-computed lipgloss styles for a theme.
type Styles struct {
	Theme Theme

	Accent  lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles derives the output styles from t.
func NewStyles(t Theme) Styles {
	return Styles{
		Theme:   t,
		Accent:  lipgloss.NewStyle().Foreground(t.Accent),
		Success: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
		Error:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(t.Dim),
	}
}

// Interactive reports whether stdout is a terminal. The init wizard only
// runs interactively.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
