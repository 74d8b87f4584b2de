package listview

import (
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/imgsearch/internal/presentation/tui/metrics"
	"github.com/tesso57/imgsearch/internal/presentation/tui/textutil"
)

func withItemPadding(styles list.DefaultItemStyles) list.DefaultItemStyles {
	pad := func(s lipgloss.Style) lipgloss.Style { return s.PaddingRight(metrics.ItemRightPadding) }
	styles.NormalTitle = pad(styles.NormalTitle)
	styles.SelectedTitle = pad(styles.SelectedTitle)
	styles.DimmedTitle = pad(styles.DimmedTitle)
	styles.NormalDesc = pad(styles.NormalDesc)
	styles.SelectedDesc = pad(styles.SelectedDesc)
	styles.DimmedDesc = pad(styles.DimmedDesc)
	return styles
}

// rowStyles picks the tag line and detail line styles for the row at index.
// Unselected detail lines take the delegate's muted colour.
func rowStyles(styles list.DefaultItemStyles, detail lipgloss.Style, m list.Model, index int) (lipgloss.Style, lipgloss.Style) {
	if index == m.Index() {
		return styles.SelectedTitle, styles.SelectedDesc
	}
	return styles.NormalTitle, styles.NormalDesc.Inherit(detail)
}

// fitLine flattens text to one line and truncates it to the list width.
// Pixabay tags and user names may carry newlines.
func fitLine(m list.Model, style lipgloss.Style, text string) string {
	maxWidth := m.Width() - style.GetHorizontalFrameSize() - metrics.ItemSafetyPadding
	return textutil.Truncate(textutil.SingleLine(text), maxWidth)
}

type styledLine struct {
	style lipgloss.Style
	text  string
}

func renderLines(w io.Writer, lines ...styledLine) {
	rendered := make([]string, len(lines))
	for i, line := range lines {
		rendered[i] = line.style.Render(line.text)
	}
	_, _ = io.WriteString(w, strings.Join(rendered, "\n"))
}
