// Package ui renders p2h's terminal output: the welcome banner, the
// generation progress bar, and the summary card. Every component has a
// plain-text fallback used when no TTY is attached or colors are disabled.
package ui

import "github.com/charmbracelet/lipgloss"

// Colors holds the hex palette of a Theme.
type Colors struct {
	Primary   string
	Secondary string
	Success   string
	Error     string
	Muted     string
	Border    string
}

// Theme carries the palette and the no-color switch shared by all components.
type Theme struct {
	Colors  Colors
	NoColor bool
}

// NewTheme returns the Pixel2HTML theme.
func NewTheme(noColor bool) *Theme {
	return &Theme{
		Colors: Colors{
			Primary:   "#E8543A",
			Secondary: "#7C5CFC",
			Success:   "#10B981",
			Error:     "#EF4444",
			Muted:     "#6B7280",
			Border:    "#4B5563",
		},
		NoColor: noColor,
	}
}

func (t *Theme) fg(hex string) lipgloss.Style {
	if t.NoColor {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex))
}

// Title styles headings.
func (t *Theme) Title() lipgloss.Style {
	return t.fg(t.Colors.Primary).Bold(true)
}

// Success styles confirmations.
func (t *Theme) Success() lipgloss.Style {
	return t.fg(t.Colors.Success)
}

// Error styles failures.
func (t *Theme) Error() lipgloss.Style {
	return t.fg(t.Colors.Error).Bold(true)
}

// Muted styles secondary text.
func (t *Theme) Muted() lipgloss.Style {
	return t.fg(t.Colors.Muted)
}

// Card returns a rounded-border box style.
func (t *Theme) Card() lipgloss.Style {
	s := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if !t.NoColor {
		s = s.BorderForeground(lipgloss.Color(t.Colors.Border))
	}
	return s
}
