// Package ui centralizes terminal colors for the CLI and the TUI
// inspector.
package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for CLI output. Each field contains an
// ANSI escape code for the corresponding category.
type Theme struct {
	// Name is the identifier of the theme.
	Name string
	// Primary is the main accent color for important elements.
	Primary string
	// Secondary is used for less prominent elements.
	Secondary string
	// Success indicates positive outcomes.
	Success string
	// Error indicates failures.
	Error string
	// Bold is the escape code for bold text.
	Bold string
	// Reset clears all formatting.
	Reset string
}

var (
	// DarkTheme is optimized for dark terminal backgrounds.
	DarkTheme = Theme{
		Name:      "dark",
		Primary:   "\033[38;5;39m",  // Bright blue
		Secondary: "\033[38;5;245m", // Grey
		Success:   "\033[38;5;82m",  // Bright green
		Error:     "\033[38;5;196m", // Red
		Bold:      "\033[1m",
		Reset:     "\033[0m",
	}

	// NoColorTheme disables all color output. Used when NO_COLOR is
	// set.
	NoColorTheme = Theme{Name: "none"}

	currentTheme = DarkTheme
	themeMutex   sync.RWMutex
)

// InitTheme selects the active theme from the environment: NO_COLOR
// disables colors, anything else keeps the dark default.
func InitTheme() {
	if os.Getenv("NO_COLOR") != "" {
		SetTheme(NoColorTheme)
	}
}

// SetTheme replaces the active theme.
func SetTheme(t Theme) {
	themeMutex.Lock()
	defer themeMutex.Unlock()
	currentTheme = t
}

// Current returns the active theme.
func Current() Theme {
	themeMutex.RLock()
	defer themeMutex.RUnlock()
	return currentTheme
}

// TUITheme defines lipgloss-compatible colors for the TUI inspector,
// suitable for lipgloss.Style.Foreground() and Background().
type TUITheme struct {
	Text    lipgloss.TerminalColor
	Border  lipgloss.TerminalColor
	Accent  lipgloss.TerminalColor
	Success lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Dim     lipgloss.TerminalColor
}

// DarkTUITheme is the default TUI palette.
var DarkTUITheme = TUITheme{
	Text:    lipgloss.Color("#D0D0D0"),
	Border:  lipgloss.Color("#5F87FF"),
	Accent:  lipgloss.Color("#5FD7FF"),
	Success: lipgloss.Color("#5FFF5F"),
	Error:   lipgloss.Color("#FF5F5F"),
	Dim:     lipgloss.Color("#808080"),
}
