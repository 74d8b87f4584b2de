package usecase

import (
	"time"

	"github.com/tesso57/imgsearch/internal/domain/gallery"
)

// SavedRepository abstracts saved-image persistence.
type SavedRepository interface {
	List() ([]gallery.SavedImage, error)
	Contains(id int) (bool, error)
	Save(img gallery.SavedImage) error
	Delete(id int) error
}

// SavedService manages images the user saved from the modal.
type SavedService struct {
	Repo SavedRepository
	Now  func() time.Time
}

// NewSavedService constructs a SavedService.
func NewSavedService(repo SavedRepository, now func() time.Time) SavedService {
	return SavedService{
		Repo: repo,
		Now:  now,
	}
}

// Toggle saves img if absent, otherwise removes it. It reports the new state.
func (s SavedService) Toggle(img gallery.Image) (bool, error) {
	if s.Repo == nil {
		return false, nil
	}
	saved, err := s.Repo.Contains(img.ID)
	if err != nil {
		return false, err
	}
	if saved {
		return false, s.Repo.Delete(img.ID)
	}
	return true, s.Repo.Save(gallery.SavedImage{Image: img, SavedAt: s.now()})
}

// List returns saved images, newest first.
func (s SavedService) List() ([]gallery.SavedImage, error) {
	if s.Repo == nil {
		return nil, nil
	}
	return s.Repo.List()
}

// IDs returns the set of saved image IDs.
func (s SavedService) IDs() (map[int]bool, error) {
	items, err := s.List()
	if err != nil {
		return nil, err
	}
	ids := make(map[int]bool, len(items))
	for _, item := range items {
		ids[item.ID] = true
	}
	return ids, nil
}

func (s SavedService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
