package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/tesso57/imgsearch/internal/application/usecase"
	"github.com/tesso57/imgsearch/internal/domain/gallery"
)

// MaxToasts caps how many notifications are stacked at once.
const MaxToasts = 3

// Toast is a transient on-screen notification.
type Toast struct {
	ID      int
	Kind    usecase.NotificationKind
	Message string
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	SearchInput   textinput.Model
	Gallery       list.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	Modal         gallery.Modal
	Toasts        []Toast
	NextToastID   int
	Saved         map[int]bool
	StatusMessage string
}

// PushToast appends a toast and returns its id, evicting the oldest beyond MaxToasts.
func (s *ModelState) PushToast(kind usecase.NotificationKind, message string) int {
	s.NextToastID++
	s.Toasts = append(s.Toasts, Toast{ID: s.NextToastID, Kind: kind, Message: message})
	if len(s.Toasts) > MaxToasts {
		s.Toasts = append([]Toast(nil), s.Toasts[len(s.Toasts)-MaxToasts:]...)
	}
	return s.NextToastID
}

// DismissToast removes the toast with id, if still shown.
func (s *ModelState) DismissToast(id int) {
	for i, t := range s.Toasts {
		if t.ID == id {
			s.Toasts = append(s.Toasts[:i], s.Toasts[i+1:]...)
			return
		}
	}
}

// ClearToasts removes every toast.
func (s *ModelState) ClearToasts() {
	s.Toasts = nil
}
