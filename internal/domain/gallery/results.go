package gallery

// Results holds the ordered images fetched for the current query.
type Results struct {
	items []Image
}

// Append adds images to the end, keeping their relative order.
// Duplicates are preserved as-is.
func (r *Results) Append(items ...Image) {
	r.items = append(r.items, items...)
}

// Clear empties the sequence.
func (r *Results) Clear() {
	r.items = nil
}

// Len returns the number of accumulated images.
func (r *Results) Len() int {
	return len(r.items)
}

// Items returns a copy of the accumulated images.
func (r *Results) Items() []Image {
	if len(r.items) == 0 {
		return nil
	}
	out := make([]Image, len(r.items))
	copy(out, r.items)
	return out
}
