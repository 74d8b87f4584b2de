package update

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tesso57/imgsearch/internal/application/usecase"
	"github.com/tesso57/imgsearch/internal/domain/gallery"
	"github.com/tesso57/imgsearch/internal/presentation/tui/state"
)

type stubProvider struct {
	pages map[int]gallery.Page
	err   error
}

func (p *stubProvider) FetchPage(_ context.Context, _ string, page int) (gallery.Page, error) {
	if p.err != nil {
		return gallery.Page{}, p.err
	}
	return p.pages[page], nil
}

type memorySaved struct {
	items map[int]gallery.SavedImage
	err   error
}

func (m *memorySaved) List() ([]gallery.SavedImage, error) {
	out := make([]gallery.SavedImage, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, m.err
}

func (m *memorySaved) Contains(id int) (bool, error) {
	_, ok := m.items[id]
	return ok, m.err
}

func (m *memorySaved) Save(img gallery.SavedImage) error {
	if m.err != nil {
		return m.err
	}
	m.items[img.ID] = img
	return nil
}

func (m *memorySaved) Delete(id int) error {
	delete(m.items, id)
	return m.err
}

func images(from, n int) []gallery.Image {
	out := make([]gallery.Image, n)
	for i := range out {
		id := from + i
		out[i] = gallery.Image{ID: id, Tags: "cat", LargeURL: "https://cdn.example/large.jpg", PageURL: "https://pixabay.com/photos/cat"}
	}
	return out
}

func newTestDeps(provider usecase.SearchProvider) (Deps, *memorySaved) {
	queue := &usecase.NotificationQueue{}
	repo := &memorySaved{items: map[int]gallery.SavedImage{}}
	return Deps{
		Search:        usecase.NewSearchService(provider, queue, nil),
		Notifications: queue,
		Saved:         usecase.NewSavedService(repo, time.Now),
		OpenBrowser:   func(string) error { return nil },
		ToastDuration: time.Second,
	}, repo
}

func runes(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestSubmitQuery_StartsFetch(t *testing.T) {
	provider := &stubProvider{pages: map[int]gallery.Page{1: {Items: images(1, 12), TotalHits: 25}}}
	deps, _ := newTestDeps(provider)
	s := newLayoutTestState()
	s.Session = state.SearchView
	s.SearchInput.SetValue("  cats ")

	cmd, handled := HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEnter}, deps)
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, state.GalleryView, s.Session)
	assert.Equal(t, "cats", s.SearchInput.Value())

	snap := deps.Search.Snapshot()
	assert.Equal(t, "cats", snap.Query)
	assert.Equal(t, usecase.StatusPending, snap.Status)

	req := usecase.FetchRequest{Query: "cats", Page: 1, Generation: 1}
	msg, ok := FetchPageCmd(deps.Search, req)().(PageFetchedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)

	cmd = HandlePageFetchedMsg(s, msg, deps)
	assert.Nil(t, cmd, "a first page with more to come raises no notification")
	assert.Len(t, s.Gallery.Items(), 12)
	assert.Equal(t, 3, deps.Search.Snapshot().TotalPages)
}

func TestSubmitQuery_EmptyQuery(t *testing.T) {
	deps, _ := newTestDeps(&stubProvider{})
	s := newLayoutTestState()
	s.Session = state.SearchView
	s.SearchInput.SetValue("   ")

	cmd, handled := HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEnter}, deps)
	assert.True(t, handled)
	assert.Nil(t, cmd)
	assert.Equal(t, state.SearchView, s.Session)
	assert.Equal(t, "Enter a search query", s.StatusMessage)
	assert.Equal(t, usecase.StatusIdle, deps.Search.Snapshot().Status)
}

func TestSearchView_TypesIntoInput(t *testing.T) {
	deps, _ := newTestDeps(&stubProvider{})
	s := newLayoutTestState()
	s.Session = state.SearchView
	s.SearchInput.Focus()

	_, handled := HandleKeyMsg(s, runes('q'), deps)
	assert.True(t, handled)
	assert.Equal(t, state.SearchView, s.Session, "q types rather than quits while searching")
	assert.Equal(t, "q", s.SearchInput.Value())

	_, _ = HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEsc}, deps)
	assert.Equal(t, state.GalleryView, s.Session)
}

func TestLoadMore(t *testing.T) {
	provider := &stubProvider{pages: map[int]gallery.Page{
		1: {Items: images(1, 12), TotalHits: 13},
		2: {Items: images(13, 1), TotalHits: 13},
	}}
	deps, _ := newTestDeps(provider)
	s := newLayoutTestState()

	cmd, _ := HandleKeyMsg(s, runes('m'), deps)
	assert.Nil(t, cmd, "load more before any search is a no-op")

	req, err := deps.Search.SubmitQuery("cats")
	require.NoError(t, err)
	HandlePageFetchedMsg(s, FetchPageCmd(deps.Search, req)().(PageFetchedMsg), deps)

	cmd, handled := HandleKeyMsg(s, runes('m'), deps)
	require.True(t, handled)
	require.NotNil(t, cmd)
	snap := deps.Search.Snapshot()
	assert.Equal(t, 2, snap.Page)
	assert.Equal(t, usecase.StatusPending, snap.Status)

	cmd, _ = HandleKeyMsg(s, runes('m'), deps)
	assert.Nil(t, cmd, "second load more while pending is ignored")

	more := usecase.FetchRequest{Query: "cats", Page: 2, Generation: 2}
	cmd = HandlePageFetchedMsg(s, FetchPageCmd(deps.Search, more)().(PageFetchedMsg), deps)
	assert.NotNil(t, cmd, "toast expiry is scheduled")
	assert.Len(t, s.Gallery.Items(), 13)
	require.Len(t, s.Toasts, 1)
	assert.Equal(t, usecase.NotifyNoMoreResults, s.Toasts[0].Kind)

	HandleToastExpiredMsg(s, ToastExpiredMsg{ID: s.Toasts[0].ID})
	assert.Empty(t, s.Toasts)
}

func TestHandlePageFetchedMsg_Error(t *testing.T) {
	provider := &stubProvider{err: errors.New("pixabay: status 500: boom")}
	deps, _ := newTestDeps(provider)
	s := newLayoutTestState()

	req, err := deps.Search.SubmitQuery("cats")
	require.NoError(t, err)
	HandlePageFetchedMsg(s, FetchPageCmd(deps.Search, req)().(PageFetchedMsg), deps)

	require.Len(t, s.Toasts, 1)
	assert.Equal(t, usecase.NotifyError, s.Toasts[0].Kind)
	assert.Equal(t, "Something went wrong! pixabay: status 500: boom", s.Toasts[0].Message)

	provider.err = nil
	provider.pages = map[int]gallery.Page{1: {Items: images(1, 3), TotalHits: 3}}
	cmd, handled := HandleKeyMsg(s, runes('r'), deps)
	require.True(t, handled)
	require.NotNil(t, cmd)
	assert.Equal(t, usecase.StatusPending, deps.Search.Snapshot().Status)

	s.ClearToasts()
	retry := usecase.FetchRequest{Query: "cats", Page: 1, Generation: 2}
	HandlePageFetchedMsg(s, FetchPageCmd(deps.Search, retry)().(PageFetchedMsg), deps)
	assert.Len(t, s.Gallery.Items(), 3)
	assert.Equal(t, usecase.StatusSuccess, deps.Search.Snapshot().Status)
}

func TestHandlePageFetchedMsg_StaleIgnored(t *testing.T) {
	provider := &stubProvider{pages: map[int]gallery.Page{1: {Items: images(1, 12), TotalHits: 12}}}
	deps, _ := newTestDeps(provider)
	s := newLayoutTestState()

	stale, err := deps.Search.SubmitQuery("cats")
	require.NoError(t, err)
	_, err = deps.Search.SubmitQuery("dogs")
	require.NoError(t, err)

	cmd := HandlePageFetchedMsg(s, FetchPageCmd(deps.Search, stale)().(PageFetchedMsg), deps)
	assert.Nil(t, cmd)
	assert.Empty(t, s.Gallery.Items())
	assert.Empty(t, s.Toasts)
	assert.Equal(t, usecase.StatusPending, deps.Search.Snapshot().Status)
}

func TestModalFlow(t *testing.T) {
	provider := &stubProvider{pages: map[int]gallery.Page{1: {Items: images(1, 2), TotalHits: 2}}}
	deps, repo := newTestDeps(provider)
	var opened string
	deps.OpenBrowser = func(url string) error {
		opened = url
		return nil
	}
	s := newLayoutTestState()

	req, err := deps.Search.SubmitQuery("cats")
	require.NoError(t, err)
	HandlePageFetchedMsg(s, FetchPageCmd(deps.Search, req)().(PageFetchedMsg), deps)
	before := deps.Search.Snapshot()

	_, handled := HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEnter}, deps)
	require.True(t, handled)
	assert.Equal(t, state.ModalView, s.Session)
	require.True(t, s.Modal.IsOpen())
	assert.Equal(t, "https://cdn.example/large.jpg", s.Modal.Selection().LargeURL)

	_, _ = HandleKeyMsg(s, runes('b'), deps)
	assert.Contains(t, repo.items, 1)
	assert.True(t, s.Saved[1])
	assert.Equal(t, "Saved image #1", s.StatusMessage)

	_, _ = HandleKeyMsg(s, runes('o'), deps)
	assert.Equal(t, "https://pixabay.com/photos/cat", opened)

	_, _ = HandleKeyMsg(s, runes('m'), deps)
	assert.Equal(t, state.ModalView, s.Session, "gallery keys are inert inside the modal")

	_, _ = HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEsc}, deps)
	assert.Equal(t, state.GalleryView, s.Session)
	assert.False(t, s.Modal.IsOpen())
	assert.Equal(t, before, deps.Search.Snapshot(), "modal never touches the search state")
}

func TestToggleSaved_Error(t *testing.T) {
	deps, repo := newTestDeps(&stubProvider{})
	repo.err = errors.New("disk full")
	s := newLayoutTestState()

	toggleSaved(s, gallery.Image{ID: 7}, deps)
	assert.Equal(t, "Save failed: disk full", s.StatusMessage)
	assert.False(t, s.Saved[7])
}

func TestOpenInBrowser_FallsBackToLargeURL(t *testing.T) {
	deps, _ := newTestDeps(&stubProvider{})
	deps.OpenBrowser = func(string) error { return errors.New("no browser") }
	s := newLayoutTestState()

	openInBrowser(s, gallery.Selection{LargeURL: "https://cdn.example/large.jpg"}, deps)
	assert.Equal(t, "Open failed: no browser", s.StatusMessage)
}

func TestQuitAndHelp(t *testing.T) {
	deps, _ := newTestDeps(&stubProvider{})
	s := newLayoutTestState()

	_, _ = HandleKeyMsg(s, runes('?'), deps)
	assert.True(t, s.Help.ShowAll)
	_, _ = HandleKeyMsg(s, runes('m'), deps)
	assert.True(t, s.Help.ShowAll, "other keys keep help open")
	_, _ = HandleKeyMsg(s, tea.KeyMsg{Type: tea.KeyEsc}, deps)
	assert.False(t, s.Help.ShowAll)

	cmd, _ := HandleKeyMsg(s, runes('q'), deps)
	assert.Nil(t, cmd)
	assert.Equal(t, state.QuitView, s.Session)

	_, _ = HandleKeyMsg(s, runes('n'), deps)
	assert.Equal(t, state.GalleryView, s.Session)

	_, _ = HandleKeyMsg(s, runes('q'), deps)
	cmd, _ = HandleKeyMsg(s, runes('y'), deps)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestDismissClearsToasts(t *testing.T) {
	deps, _ := newTestDeps(&stubProvider{})
	s := newLayoutTestState()
	s.PushToast(usecase.NotifyError, "Something went wrong! boom")

	_, handled := HandleKeyMsg(s, runes('x'), deps)
	assert.True(t, handled)
	assert.Empty(t, s.Toasts)
}

func TestExpireToastCmd(t *testing.T) {
	assert.Nil(t, ExpireToastCmd(1, 0))
	assert.NotNil(t, ExpireToastCmd(1, time.Millisecond))
}
