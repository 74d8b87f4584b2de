// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/tesso57/imgsearch/internal/domain/gallery"
	"github.com/tesso57/imgsearch/internal/presentation/tui/textutil"
)

// SavedMarker is appended to titles of saved images.
const SavedMarker = "★"

// Item is a view model for gallery list items.
type Item struct {
	Index int
	Image gallery.Image
	Saved bool
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.Image.Tags }

// Title returns the item title.
func (i *Item) Title() string {
	tags := textutil.Tags(i.Image.Tags)
	if tags == "" {
		tags = "(untagged)"
	}
	title := fmt.Sprintf("%d. %s", i.Index, tags)
	if i.Saved {
		title += " " + SavedMarker
	}
	return title
}

// Description returns a formatted description for list display.
func (i *Item) Description() string {
	parts := make([]string, 0, 3)
	if i.Image.PreviewURL != "" {
		parts = append(parts, i.Image.PreviewURL)
	}
	if i.Image.Width > 0 && i.Image.Height > 0 {
		parts = append(parts, fmt.Sprintf("%dx%d", i.Image.Width, i.Image.Height))
	}
	if i.Image.User != "" {
		parts = append(parts, "by "+i.Image.User)
	}
	return strings.Join(parts, " · ")
}

// Selection returns the modal selection for this item.
func (i *Item) Selection() gallery.Selection {
	return gallery.Selection{
		ImageID:  i.Image.ID,
		LargeURL: i.Image.LargeURL,
		PageURL:  i.Image.PageURL,
		Tags:     i.Image.Tags,
	}
}

// BuildGalleryItems builds list items for the accumulated results.
func BuildGalleryItems(images []gallery.Image, saved map[int]bool) []list.Item {
	items := make([]list.Item, len(images))
	for idx, img := range images {
		items[idx] = &Item{
			Index: idx + 1,
			Image: img,
			Saved: saved[img.ID],
		}
	}
	return items
}

// ApplyGallery updates the list model with gallery items, keeping the cursor when possible.
func ApplyGallery(model *list.Model, images []gallery.Image, saved map[int]bool) {
	cursor := model.Index()
	model.SetItems(BuildGalleryItems(images, saved))
	switch {
	case len(images) == 0:
		model.ResetSelected()
	case cursor < len(images):
		model.Select(cursor)
	}
}

// SelectedImage returns the image under the cursor.
func SelectedImage(model list.Model) (*Item, bool) {
	item, ok := model.SelectedItem().(*Item)
	if !ok || item == nil {
		return nil, false
	}
	return item, true
}
