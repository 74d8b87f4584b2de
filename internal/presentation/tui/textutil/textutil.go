// Package textutil formats Pixabay image text for the terminal.
package textutil

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Ellipsis marks truncated text.
const Ellipsis = "..."

// SingleLine collapses whitespace into single spaces.
func SingleLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Tags normalizes a Pixabay comma separated tag list. Blank and repeated
// tags are dropped, comparing case-insensitively and keeping the first
// spelling.
func Tags(raw string) string {
	parts := strings.Split(raw, ",")
	seen := make(map[string]struct{}, len(parts))
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		tag := SingleLine(part)
		if tag == "" {
			continue
		}
		key := strings.ToLower(tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return strings.Join(out, ", ")
}

// Truncate fits text into width terminal cells, ending in Ellipsis when cut.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(text, width, Ellipsis)
}
