package update

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/imgsearch/internal/presentation/tui/metrics"
	"github.com/tesso57/imgsearch/internal/presentation/tui/state"
)

type layoutMetrics struct {
	galleryWidth  int
	galleryHeight int
	inputWidth    int
}

// UpdateListSizes fits the gallery and search bar to the terminal.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.Gallery.SetSize(layout.galleryWidth, layout.galleryHeight)
	s.SearchInput.Width = layout.inputWidth
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	reserved := footerHeight(s) +
		toastHeight(s) +
		metrics.HeaderLines +
		metrics.LoaderLines +
		metrics.LoadMoreLines
	galleryHeight := clampMin(s.Height-reserved, 1)
	galleryHeight = reservePaginationSpace(s.Gallery, galleryHeight)

	return layoutMetrics{
		galleryWidth:  clampMin(s.Width-metrics.MainLeftPadding, 1),
		galleryHeight: galleryHeight,
		inputWidth:    clampMin(s.Width-metrics.SearchPromptSize-1, 1),
	}
}

func footerHeight(s *state.ModelState) int {
	s.Help.Width = s.Width
	return lipgloss.Height(state.FooterText(s.Session, s.StatusMessage, s.Help.View(&s.Keys)))
}

func toastHeight(s *state.ModelState) int {
	return len(s.Toasts) * metrics.ToastLines
}

func reservePaginationSpace(m list.Model, height int) int {
	if height <= 1 || !m.ShowPagination() {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
