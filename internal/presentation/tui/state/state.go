// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/imgsearch/internal/application/settings"
)

// Session represents the current view state.
type Session int

const (
	SearchView Session = iota
	GalleryView
	ModalView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	UpPage   key.Binding
	DownPage key.Binding
	Search   key.Binding
	Open     key.Binding
	Back     key.Binding
	LoadMore key.Binding
	Retry    key.Binding
	Save     key.Binding
	Browser  key.Binding
	Dismiss  key.Binding
	Quit     key.Binding
	Help     key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Open, k.LoadMore, k.Help, k.Quit}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.UpPage, k.DownPage},
		{k.Search, k.Open, k.Back},
		{k.LoadMore, k.Retry, k.Dismiss},
		{k.Save, k.Browser, k.Help, k.Quit},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:       binding(cfg.Up, "up"),
		Down:     binding(cfg.Down, "down"),
		UpPage:   binding(cfg.UpPage, "pgup"),
		DownPage: binding(cfg.DownPage, "pgdn"),
		Search:   binding(cfg.Search, "search"),
		Open:     binding(cfg.Open, "enlarge"),
		Back:     binding(cfg.Back, "back/close"),
		LoadMore: binding(cfg.LoadMore, "load more"),
		Retry:    binding(cfg.Retry, "retry"),
		Save:     binding(cfg.Save, "save image"),
		Browser:  binding(cfg.Browser, "open in browser"),
		Dismiss:  binding(cfg.Dismiss, "dismiss notices"),
		Quit:     binding(cfg.Quit, "quit"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(helpLabel(keys), desc),
	)
}

func helpLabel(keys string) string {
	for _, part := range strings.Split(keys, ",") {
		if label := strings.TrimSpace(part); label != "" {
			return label
		}
	}
	return ""
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
