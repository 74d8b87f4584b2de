// Package listview provides list item delegates for the view layer.
package listview

import (
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ImageItem interface for items that can be rendered by ImageDelegate.
type ImageItem interface {
	list.Item
	Title() string
	Description() string
}

// ImageDelegate renders a gallery entry as a title line plus a detail line.
type ImageDelegate struct {
	Styles list.DefaultItemStyles
	Detail lipgloss.Style
}

// NewImageDelegate creates a new ImageDelegate.
func NewImageDelegate(accent, detail lipgloss.Color) *ImageDelegate {
	styles := withItemPadding(list.NewDefaultItemStyles())
	styles.SelectedTitle = styles.SelectedTitle.
		Foreground(accent).
		BorderForeground(accent)
	styles.SelectedDesc = styles.SelectedDesc.
		Foreground(accent).
		BorderForeground(accent)
	return &ImageDelegate{
		Styles: styles,
		Detail: lipgloss.NewStyle().Foreground(detail),
	}
}

// Height returns the height of the item.
func (d *ImageDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d *ImageDelegate) Spacing() int {
	return 1
}

// Update handles messages for the delegate.
func (d *ImageDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *ImageDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(ImageItem)
	if !ok {
		return
	}

	titleStyle, descStyle := rowStyles(d.Styles, d.Detail, m, index)
	renderLines(w,
		styledLine{style: titleStyle, text: fitLine(m, titleStyle, i.Title())},
		styledLine{style: descStyle, text: fitLine(m, descStyle, i.Description())},
	)
}
