package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/imgsearch/internal/application/settings"
	"github.com/tesso57/imgsearch/internal/application/usecase"
	"github.com/tesso57/imgsearch/internal/domain/gallery"
)

type stubProvider struct {
	mock.Mock
}

func (s *stubProvider) FetchPage(ctx context.Context, query string, page int) (gallery.Page, error) {
	args := s.Called(ctx, query, page)
	result, _ := args.Get(0).(gallery.Page)
	return result, args.Error(1)
}

type stubSavedRepo struct {
	items map[int]gallery.SavedImage
}

func (s *stubSavedRepo) List() ([]gallery.SavedImage, error) {
	out := make([]gallery.SavedImage, 0, len(s.items))
	for _, item := range s.items {
		out = append(out, item)
	}
	return out, nil
}

func (s *stubSavedRepo) Contains(id int) (bool, error) {
	_, ok := s.items[id]
	return ok, nil
}

func (s *stubSavedRepo) Save(img gallery.SavedImage) error {
	s.items[img.ID] = img
	return nil
}

func (s *stubSavedRepo) Delete(id int) error {
	delete(s.items, id)
	return nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up:       "k,up",
			Down:     "j,down",
			UpPage:   "pgup",
			DownPage: "pgdown",
			Search:   "/",
			Open:     "enter",
			Back:     "esc",
			LoadMore: "m",
			Retry:    "r",
			Save:     "b",
			Browser:  "o",
			Dismiss:  "x",
			Quit:     "q",
		},
		Theme: settings.ThemeConfig{
			Accent: "205",
			Tags:   "244",
		},
		ToastMillis: 1500,
	}
}

func testImages(from, n int) []gallery.Image {
	out := make([]gallery.Image, n)
	for i := range out {
		id := from + i
		out[i] = gallery.Image{
			ID:         id,
			Tags:       fmt.Sprintf("cat %d", id),
			PreviewURL: fmt.Sprintf("https://cdn.example/%d_640.jpg", id),
			LargeURL:   fmt.Sprintf("https://cdn.example/%d_1280.jpg", id),
			PageURL:    fmt.Sprintf("https://pixabay.com/photos/%d", id),
		}
	}
	return out
}

func newTestModel(provider usecase.SearchProvider, repo usecase.SavedRepository, opts ...func(*Options)) *Model {
	opt := Options{
		Provider:    provider,
		Saved:       usecase.NewSavedService(repo, func() time.Time { return time.Unix(1700000000, 0) }),
		OpenBrowser: func(string) error { return nil },
	}
	for _, apply := range opts {
		apply(&opt)
	}
	return NewModel(testSettings(), opt)
}

func containsAll(s string, parts ...string) bool {
	for _, part := range parts {
		if !strings.Contains(s, part) {
			return false
		}
	}
	return true
}
