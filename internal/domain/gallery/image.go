// Package gallery defines core image-search models.
package gallery

import "time"

// PageSize is the fixed number of images requested per result page.
const PageSize = 12

// Image represents a single search hit.
type Image struct {
	ID         int
	Tags       string
	PreviewURL string
	LargeURL   string
	PageURL    string
	User       string
	Width      int
	Height     int
}

// Page is one page of provider results.
type Page struct {
	Items     []Image
	TotalHits int
}

// SavedImage is an image the user chose to keep.
type SavedImage struct {
	Image
	SavedAt time.Time
}

// TotalPages returns ceil(totalHits / PageSize). Zero means unknown or empty.
func TotalPages(totalHits int) int {
	if totalHits <= 0 {
		return 0
	}
	return (totalHits + PageSize - 1) / PageSize
}
