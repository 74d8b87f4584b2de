// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/imgsearch/internal/application/usecase"
	"github.com/tesso57/imgsearch/internal/domain/gallery"
	"github.com/tesso57/imgsearch/internal/presentation/tui/intent"
	"github.com/tesso57/imgsearch/internal/presentation/tui/presenter"
	"github.com/tesso57/imgsearch/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Search        *usecase.SearchService
	Notifications *usecase.NotificationQueue
	Saved         usecase.SavedService
	OpenBrowser   func(string) error
	ToastDuration time.Duration
}

// PageFetchedMsg is emitted after the provider answers a page request.
type PageFetchedMsg struct {
	Request usecase.FetchRequest
	Page    gallery.Page
	Err     error
}

// ToastExpiredMsg is emitted when a toast's display time has elapsed.
type ToastExpiredMsg struct {
	ID int
}

// FetchPageCmd creates a command that runs req against the search provider.
func FetchPageCmd(searchSvc *usecase.SearchService, req usecase.FetchRequest) tea.Cmd {
	return func() tea.Msg {
		page, err := searchSvc.Fetch(context.Background(), req)
		return PageFetchedMsg{Request: req, Page: page, Err: err}
	}
}

// ExpireToastCmd schedules removal of the toast with id.
func ExpireToastCmd(id int, after time.Duration) tea.Cmd {
	if after <= 0 {
		return nil
	}
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// SubmitQuery starts a new search for text. An empty query only sets a status message.
func SubmitQuery(s *state.ModelState, text string, deps Deps) tea.Cmd {
	req, err := deps.Search.SubmitQuery(text)
	if errors.Is(err, usecase.ErrEmptyQuery) {
		s.StatusMessage = "Enter a search query"
		return nil
	}
	if err != nil {
		s.StatusMessage = err.Error()
		return nil
	}

	s.StatusMessage = ""
	s.Modal.Close()
	s.SearchInput.SetValue(req.Query)
	s.SearchInput.Blur()
	s.Session = state.GalleryView
	SyncGallery(s, deps)
	s.Gallery.ResetSelected()
	return tea.Batch(s.Spinner.Tick, FetchPageCmd(deps.Search, req))
}

// HandleKeyMsg processes key input based on the current session.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit, true
	}
	if s.Session == state.QuitView {
		return handleQuitView(s, msg)
	}
	if s.Session == state.SearchView {
		return handleSearchView(s, msg, deps)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	if s.Help.ShowAll {
		switch parsed.Type {
		case intent.ToggleHelp, intent.Back, intent.Quit:
			s.Help.ShowAll = false
		}
		return nil, true
	}
	if parsed.Type == intent.Quit {
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	}

	switch s.Session {
	case state.GalleryView:
		return handleGalleryViewIntent(s, parsed, deps)
	case state.ModalView:
		return handleModalViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

func handleSearchView(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch msg.Type {
	case tea.KeyEnter:
		return SubmitQuery(s, s.SearchInput.Value(), deps), true
	case tea.KeyEsc:
		s.SearchInput.Blur()
		s.Session = state.GalleryView
		return nil, true
	}

	var cmd tea.Cmd
	s.SearchInput, cmd = s.SearchInput.Update(msg)
	return cmd, true
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleGalleryViewIntent(s *state.ModelState, parsed intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch parsed.Type {
	case intent.Search:
		s.Session = state.SearchView
		s.StatusMessage = ""
		return tea.Batch(s.SearchInput.Focus(), textinput.Blink), true
	case intent.Open:
		if item, ok := presenter.SelectedImage(s.Gallery); ok {
			s.Modal.Open(item.Selection())
			s.Session = state.ModalView
		}
		return nil, true
	case intent.LoadMore:
		req, ok := deps.Search.RequestMore()
		if !ok {
			return nil, true
		}
		return tea.Batch(s.Spinner.Tick, FetchPageCmd(deps.Search, req)), true
	case intent.Retry:
		req, ok := deps.Search.Retry()
		if !ok {
			return nil, true
		}
		return tea.Batch(s.Spinner.Tick, FetchPageCmd(deps.Search, req)), true
	case intent.Save:
		if item, ok := presenter.SelectedImage(s.Gallery); ok {
			toggleSaved(s, item.Image, deps)
		}
		return nil, true
	case intent.Browser:
		if item, ok := presenter.SelectedImage(s.Gallery); ok {
			openInBrowser(s, item.Selection(), deps)
		}
		return nil, true
	case intent.Dismiss:
		s.ClearToasts()
		UpdateListSizes(s)
		return nil, true
	case intent.Back:
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	}
	return nil, false
}

func handleModalViewIntent(s *state.ModelState, parsed intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch parsed.Type {
	case intent.Back, intent.Open:
		s.Modal.Close()
		s.Session = state.GalleryView
	case intent.Save:
		sel := s.Modal.Selection()
		if sel == nil {
			break
		}
		if img, ok := findImage(deps.Search.Snapshot().Images, sel.ImageID); ok {
			toggleSaved(s, img, deps)
		}
	case intent.Browser:
		if sel := s.Modal.Selection(); sel != nil {
			openInBrowser(s, *sel, deps)
		}
	case intent.Dismiss:
		s.ClearToasts()
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
	}
	return nil, true
}

func toggleSaved(s *state.ModelState, img gallery.Image, deps Deps) {
	if deps.Saved.Repo == nil {
		s.StatusMessage = "Saving is disabled"
		return
	}
	saved, err := deps.Saved.Toggle(img)
	if err != nil {
		s.StatusMessage = fmt.Sprintf("Save failed: %v", err)
		return
	}
	if s.Saved == nil {
		s.Saved = make(map[int]bool)
	}
	if saved {
		s.Saved[img.ID] = true
		s.StatusMessage = fmt.Sprintf("Saved image #%d", img.ID)
	} else {
		delete(s.Saved, img.ID)
		s.StatusMessage = fmt.Sprintf("Removed image #%d from saved", img.ID)
	}
	SyncGallery(s, deps)
}

func openInBrowser(s *state.ModelState, sel gallery.Selection, deps Deps) {
	url := sel.PageURL
	if url == "" {
		url = sel.LargeURL
	}
	if url == "" || deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(url); err != nil {
		s.StatusMessage = fmt.Sprintf("Open failed: %v", err)
		return
	}
	s.StatusMessage = "Opened in browser"
}

func findImage(images []gallery.Image, id int) (gallery.Image, bool) {
	for _, img := range images {
		if img.ID == id {
			return img, true
		}
	}
	return gallery.Image{}, false
}

// HandleWindowSize updates layout sizing based on terminal size.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
}

// HandlePageFetchedMsg applies a provider outcome and surfaces its notifications.
func HandlePageFetchedMsg(s *state.ModelState, msg PageFetchedMsg, deps Deps) tea.Cmd {
	if !deps.Search.Resolve(msg.Request, msg.Page, msg.Err) {
		return nil
	}
	SyncGallery(s, deps)
	return DrainNotifications(s, deps)
}

// HandleToastExpiredMsg removes an expired toast.
func HandleToastExpiredMsg(s *state.ModelState, msg ToastExpiredMsg) {
	s.DismissToast(msg.ID)
	UpdateListSizes(s)
}

// DrainNotifications moves queued notifications into toasts and schedules their expiry.
func DrainNotifications(s *state.ModelState, deps Deps) tea.Cmd {
	if deps.Notifications == nil {
		return nil
	}
	pending := deps.Notifications.Drain()
	if len(pending) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(pending))
	for _, n := range pending {
		id := s.PushToast(n.Kind, n.Message)
		cmds = append(cmds, ExpireToastCmd(id, deps.ToastDuration))
	}
	UpdateListSizes(s)
	return tea.Batch(cmds...)
}

// SyncGallery rebuilds the gallery list from the search results.
func SyncGallery(s *state.ModelState, deps Deps) {
	snap := deps.Search.Snapshot()
	presenter.ApplyGallery(&s.Gallery, snap.Images, s.Saved)
	UpdateListSizes(s)
}
