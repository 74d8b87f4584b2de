package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/imgsearch/internal/presentation/tui/state"
)

func TestQuitDialog(t *testing.T) {
	m := newTestModel(&stubProvider{}, nil)
	m.state.Session = state.GalleryView

	// q opens the confirmation instead of quitting.
	tm, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	if m.state.Session != state.QuitView {
		t.Error("Should switch to quitView on 'q'")
	}
	if cmd != nil {
		t.Error("Should not return tea.Quit command yet")
	}

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = tm.(*Model)
	if m.state.Session != state.GalleryView {
		t.Error("Should return to galleryView on 'n'")
	}

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = tm.(*Model)
	if m.state.Session != state.GalleryView {
		t.Error("Should return to galleryView on 'esc'")
	}

	// From the modal the dialog returns to the modal.
	m.state.Session = state.ModalView
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	if m.state.Session != state.QuitView {
		t.Error("Should switch to quitView from modalView")
	}
	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}})
	m = tm.(*Model)
	if m.state.Session != state.ModalView {
		t.Error("Should return to modalView")
	}

	tm, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = tm.(*Model)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatal("Should return tea.Quit on 'y'")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

func TestQuitDialog_View(t *testing.T) {
	m := newTestModel(&stubProvider{}, nil)
	m.state.Session = state.QuitView
	m.state.Width, m.state.Height = 80, 20

	if got := m.View(); !containsAll(got, "Are you sure you want to quit?", "(y/n)") {
		t.Errorf("View() = %q, want quit prompt", got)
	}
}

func TestCtrlCQuitsWhileTyping(t *testing.T) {
	m := newTestModel(&stubProvider{}, nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit from the search bar")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}
