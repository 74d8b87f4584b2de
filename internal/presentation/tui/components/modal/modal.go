// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Image shows the enlarged image dialog.
	Image
	// Help shows the help dialog.
	Help
	// Quit shows the quit confirmation.
	Quit
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
	Accent  lipgloss.Color
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	borderColor := lipgloss.Color("63")
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	body := p.Body
	switch p.Kind {
	case Image:
		borderColor = p.Accent
		style = style.Width(dialogWidth(p.Width))
		if p.Title != "" {
			title := lipgloss.NewStyle().Bold(true).Foreground(p.Accent).Render(p.Title)
			body = title + "\n\n" + body
		}
	case Quit:
		borderColor = lipgloss.Color("205")
	}

	content := style.BorderForeground(borderColor).Render(body)
	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, content)
}

func dialogWidth(screen int) int {
	const (
		preferred = 72
		minimum   = 24
		margin    = 6
	)
	width := preferred
	if screen > 0 && screen-margin < width {
		width = screen - margin
	}
	if width < minimum {
		width = minimum
	}
	return width
}
