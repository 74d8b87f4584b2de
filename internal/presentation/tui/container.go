// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/imgsearch/internal/application/usecase"
	"github.com/tesso57/imgsearch/internal/domain/gallery"
	"github.com/tesso57/imgsearch/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/imgsearch/internal/presentation/tui/components/main"
	"github.com/tesso57/imgsearch/internal/presentation/tui/components/modal"
	"github.com/tesso57/imgsearch/internal/presentation/tui/components/toast"
	"github.com/tesso57/imgsearch/internal/presentation/tui/metrics"
	"github.com/tesso57/imgsearch/internal/presentation/tui/presenter"
	"github.com/tesso57/imgsearch/internal/presentation/tui/state"
	"github.com/tesso57/imgsearch/internal/presentation/tui/textutil"
	"github.com/tesso57/imgsearch/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	snap := m.search.Snapshot()
	vs := usecase.DeriveViewState(snap, m.state.Modal.Selection())
	return view.Props{
		Toast:  m.buildToastProps(),
		Header: m.buildHeaderProps(snap),
		Main:   m.buildMainProps(snap, vs),
		Modal:  m.buildModalProps(vs),
		Footer: m.buildFooterProps(),
	}
}

func (m *Model) buildToastProps() toast.Props {
	messages := make([]toast.Message, 0, len(m.state.Toasts))
	for _, t := range m.state.Toasts {
		messages = append(messages, toast.Message{
			Level: toastLevel(t.Kind),
			Text:  t.Message,
		})
	}
	return toast.Props{Messages: messages, Width: m.state.Width}
}

func (m *Model) buildHeaderProps(snap usecase.Snapshot) header.Props {
	return header.Props{
		SearchBar: m.state.SearchInput.View(),
		Focused:   m.state.Session == state.SearchView,
		Status:    statusLine(snap, m.state.Session, m.state.Keys),
		Accent:    lipgloss.Color(m.settings.Theme.Accent),
		Width:     m.state.Width,
	}
}

func (m *Model) buildMainProps(snap usecase.Snapshot, vs usecase.ViewState) mainview.Props {
	body := m.state.Gallery.View()
	if len(snap.Images) == 0 {
		body = emptyGalleryText(snap)
	}

	var loader string
	if vs.ShowLoader {
		loader = fmt.Sprintf("%s Loading images...", m.state.Spinner.View())
	}
	var loadMore string
	if vs.ShowLoadMore {
		loadMore = fmt.Sprintf("%s Load more", m.state.Keys.LoadMore.Help().Key)
	}

	width := m.state.Gallery.Width()
	if width > 0 {
		width += metrics.MainLeftPadding
	}

	return mainview.Props{
		Width:    width,
		Height:   m.state.Gallery.Height() + metrics.LoaderLines + metrics.LoadMoreLines,
		Body:     body,
		Loader:   loader,
		LoadMore: loadMore,
		Accent:   lipgloss.Color(m.settings.Theme.Accent),
	}
}

func (m *Model) buildModalProps(vs usecase.ViewState) modal.Props {
	accent := lipgloss.Color(m.settings.Theme.Accent)
	if m.state.Session == state.QuitView {
		return modal.Props{
			Visible: true,
			Kind:    modal.Quit,
			Body:    "Are you sure you want to quit?\n\n(y/n)",
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if m.state.Help.ShowAll {
		return modal.Props{
			Visible: true,
			Kind:    modal.Help,
			Body:    m.state.Help.View(&m.state.Keys),
			Width:   m.state.Width,
			Height:  m.state.Height,
		}
	}
	if vs.ShowModal && vs.Enlarged != nil {
		return modal.Props{
			Visible: true,
			Kind:    modal.Image,
			Title:   modalTitle(*vs.Enlarged),
			Body:    m.enlargedBody(*vs.Enlarged),
			Width:   m.state.Width,
			Height:  m.state.Height,
			Accent:  accent,
		}
	}
	return modal.Props{Visible: false}
}

func (m *Model) buildFooterProps() string {
	helpText := m.state.Help.View(&m.state.Keys)
	return state.FooterText(m.state.Session, m.state.StatusMessage, helpText)
}

func (m *Model) enlargedBody(sel gallery.Selection) string {
	lines := []string{sel.LargeURL}
	if sel.PageURL != "" {
		lines = append(lines, "", "Page: "+sel.PageURL)
	}
	if m.state.Saved[sel.ImageID] {
		lines = append(lines, "", presenter.SavedMarker+" saved")
	}
	keys := m.state.Keys
	lines = append(lines, "", fmt.Sprintf("%s close · %s save · %s open in browser",
		keys.Back.Help().Key, keys.Save.Help().Key, keys.Browser.Help().Key))
	return strings.Join(lines, "\n")
}

func modalTitle(sel gallery.Selection) string {
	title := textutil.Tags(sel.Tags)
	if title == "" {
		return "Image"
	}
	return textutil.Truncate(title, 64)
}

func statusLine(snap usecase.Snapshot, session state.Session, keys state.KeyMap) string {
	if snap.Query == "" {
		if session == state.SearchView {
			return "Type a query and press enter"
		}
		return fmt.Sprintf("Press %s to search", keys.Search.Help().Key)
	}

	total := "?"
	if snap.TotalPages > 0 {
		total = fmt.Sprintf("%d", snap.TotalPages)
	}
	line := fmt.Sprintf("%s · page %d/%s · %d images", snap.Query, snap.Page, total, len(snap.Images))
	if snap.Status == usecase.StatusError {
		line += fmt.Sprintf(" · failed, press %s to retry", keys.Retry.Help().Key)
	}
	return line
}

func emptyGalleryText(snap usecase.Snapshot) string {
	switch {
	case snap.Query == "":
		return ""
	case snap.Status == usecase.StatusIdle:
		return fmt.Sprintf("No images for %q.", snap.Query)
	default:
		return ""
	}
}

func toastLevel(kind usecase.NotificationKind) toast.Level {
	switch kind {
	case usecase.NotifyError:
		return toast.Error
	case usecase.NotifyNoResults:
		return toast.Warning
	default:
		return toast.Info
	}
}
