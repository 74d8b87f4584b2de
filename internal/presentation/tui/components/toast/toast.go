// Package toast renders transient notifications at the top center of the screen.
package toast

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Level selects the toast color.
type Level int

const (
	Info Level = iota
	Warning
	Error
)

// Message is one toast line.
type Message struct {
	Level Level
	Text  string
}

// Props defines the properties for the toast component.
type Props struct {
	Messages []Message
	Width    int
}

// Render renders the toasts stacked and centered, or "" when there are none.
func Render(p Props) string {
	if len(p.Messages) == 0 {
		return ""
	}
	lines := make([]string, 0, len(p.Messages))
	for _, msg := range p.Messages {
		text := strings.TrimSpace(msg.Text)
		if text == "" {
			continue
		}
		line := levelStyle(msg.Level).Render(text)
		if p.Width > 0 {
			line = lipgloss.PlaceHorizontal(p.Width, lipgloss.Center, line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func levelStyle(level Level) lipgloss.Style {
	style := lipgloss.NewStyle().Padding(0, 1).Bold(true)
	switch level {
	case Error:
		return style.Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160"))
	case Warning:
		return style.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("214"))
	default:
		return style.Foreground(lipgloss.Color("16")).Background(lipgloss.Color("111"))
	}
}
