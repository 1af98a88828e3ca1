package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds all the lipgloss styles for the game screen.
type Styles struct {
	// Labels
	Title  lipgloss.Style
	Label  lipgloss.Style
	Prompt lipgloss.Style

	// Scene
	Gallows lipgloss.Style

	// Word line
	Revealed lipgloss.Style
	Hidden   lipgloss.Style

	// Misc
	Help lipgloss.Style
}

// DefaultStyles returns the default style configuration.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("230")),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")),
		Prompt: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")),

		Gallows: lipgloss.NewStyle().
			Foreground(lipgloss.Color("137")), // Wood

		Revealed: lipgloss.NewStyle().
			Foreground(lipgloss.Color("71")). // Muted green
			Bold(true),
		Hidden: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),

		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
	}
}

// Plain returns styles that render text unchanged. Used by tests and by
// terminals without color support.
func Plain() Styles {
	p := lipgloss.NewStyle()
	return Styles{
		Title: p, Label: p, Prompt: p,
		Gallows: p,
		Revealed: p, Hidden: p,
		Help: p,
	}
}
