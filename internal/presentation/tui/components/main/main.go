// Package mainview provides the gallery content area component.
package mainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width    int
	Height   int
	Body     string
	Loader   string
	LoadMore string
	Accent   lipgloss.Color
}

// Render renders the main view component.
func Render(p Props) string {
	mainStyle := lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1)

	parts := make([]string, 0, 3)
	if p.Body != "" {
		parts = append(parts, p.Body)
	}
	if p.Loader != "" {
		parts = append(parts, p.Loader)
	}
	if p.LoadMore != "" {
		button := lipgloss.NewStyle().
			Foreground(p.Accent).
			Bold(true).
			Render("[ " + p.LoadMore + " ]")
		parts = append(parts, button)
	}
	return mainStyle.Render(strings.Join(parts, "\n"))
}
