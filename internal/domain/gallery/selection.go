package gallery

// Selection identifies the enlarged image shown in the modal.
type Selection struct {
	LargeURL string
	PageURL  string
	Tags     string
	ImageID  int
}

// Modal tracks the optional enlarged-image selection.
type Modal struct {
	selection *Selection
}

// Open shows the given image enlarged, replacing any current selection.
func (m *Modal) Open(sel Selection) {
	m.selection = &sel
}

// Close hides the modal.
func (m *Modal) Close() {
	m.selection = nil
}

// Selection returns the current selection or nil when the modal is closed.
func (m *Modal) Selection() *Selection {
	if m.selection == nil {
		return nil
	}
	sel := *m.selection
	return &sel
}

// IsOpen reports whether an image is enlarged.
func (m *Modal) IsOpen() bool {
	return m.selection != nil
}
