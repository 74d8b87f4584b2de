// Package layout provides the main layout component.
package layout

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the layout component.
type Props struct {
	Toasts string
	Header string
	Main   string
	Footer string
}

// Render renders the layout component.
func Render(p Props) string {
	parts := make([]string, 0, 4)
	if p.Toasts != "" {
		parts = append(parts, p.Toasts)
	}
	parts = append(parts, p.Header, p.Main, p.Footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
