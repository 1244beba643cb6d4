package tui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles of the picker.
type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
}

func DefaultTheme() Theme {
	return NewTheme(lipgloss.Color("63"), lipgloss.Color("203"))
}

// NewTheme colors titles and card borders with accent and errors with alert.
func NewTheme(accent, alert lipgloss.Color) Theme {
	faint := lipgloss.NewStyle().Faint(true)
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Subtitle: faint,
		Help:     faint,
		Error:    lipgloss.NewStyle().Bold(true).Foreground(alert),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accent),
	}
}
