package usecase

import "github.com/tesso57/imgsearch/internal/domain/gallery"

// ViewState holds flags derived for rendering.
type ViewState struct {
	ShowLoader   bool
	ShowLoadMore bool
	ShowModal    bool
	Enlarged     *gallery.Selection
}

// DeriveViewState computes rendering flags from a snapshot and the modal selection.
func DeriveViewState(snap Snapshot, sel *gallery.Selection) ViewState {
	return ViewState{
		ShowLoader:   snap.Status == StatusPending,
		ShowLoadMore: snap.Status == StatusSuccess && snap.Page != snap.TotalPages,
		ShowModal:    sel != nil,
		Enlarged:     sel,
	}
}
