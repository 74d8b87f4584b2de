// Package header provides the search bar and status line component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	SearchBar string
	Focused   bool
	Status    string
	Accent    lipgloss.Color
	Width     int
}

// Render renders the header component.
func Render(p Props) string {
	promptStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if p.Focused {
		promptStyle = promptStyle.Foreground(p.Accent).Bold(true)
	}
	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	if p.Width > 0 {
		statusStyle = statusStyle.MaxWidth(p.Width)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		promptStyle.Render("🔎 ")+p.SearchBar,
		statusStyle.Render(p.Status),
	)
}
