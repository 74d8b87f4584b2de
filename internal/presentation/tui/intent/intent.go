// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/imgsearch/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Search
	Open
	Back
	LoadMore
	Retry
	Save
	Browser
	Dismiss
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Search):
		return Intent{Type: Search}
	case key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.LoadMore):
		return Intent{Type: LoadMore}
	case key.Matches(msg, keys.Retry):
		return Intent{Type: Retry}
	case key.Matches(msg, keys.Save):
		return Intent{Type: Save}
	case key.Matches(msg, keys.Browser):
		return Intent{Type: Browser}
	case key.Matches(msg, keys.Dismiss):
		return Intent{Type: Dismiss}
	default:
		return Intent{Type: None}
	}
}
