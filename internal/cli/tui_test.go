package cli

import (
	"reflect"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nilavan/kanadeck/pkg/deck"
)

func key(t tea.KeyType) tea.Msg {
	return tea.KeyMsg{Type: t}
}

func TestSectionPickerDefaults(t *testing.T) {
	m := NewSectionPickerModel(deck.Sections)
	if got := m.Selected(); !reflect.DeepEqual(got, deck.Sections) {
		t.Errorf("Selected = %v, want all sections %v", got, deck.Sections)
	}
}

func TestSectionPickerToggle(t *testing.T) {
	m := NewSectionPickerModel(deck.Sections)

	// Untick the first section.
	next, _ := m.Update(key(tea.KeySpace))
	m = next.(SectionPickerModel)

	want := deck.Sections[1:]
	if got := m.Selected(); !reflect.DeepEqual(got, want) {
		t.Errorf("Selected after toggle = %v, want %v", got, want)
	}

	// Toggle it back.
	next, _ = m.Update(key(tea.KeySpace))
	m = next.(SectionPickerModel)
	if got := m.Selected(); !reflect.DeepEqual(got, deck.Sections) {
		t.Errorf("Selected after re-toggle = %v, want %v", got, deck.Sections)
	}
}

func TestSectionPickerConfirm(t *testing.T) {
	m := NewSectionPickerModel(deck.Sections)

	next, cmd := m.Update(key(tea.KeyEnter))
	m = next.(SectionPickerModel)
	if !m.Confirmed {
		t.Error("enter should confirm the selection")
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestSectionPickerRejectsEmptySelection(t *testing.T) {
	m := NewSectionPickerModel(deck.Sections)

	// Untick everything.
	for range deck.Sections {
		next, _ := m.Update(key(tea.KeySpace))
		m = next.(SectionPickerModel)
		next, _ = m.Update(key(tea.KeyDown))
		m = next.(SectionPickerModel)
	}
	if got := m.Selected(); len(got) != 0 {
		t.Fatalf("Selected = %v, want empty", got)
	}

	next, _ := m.Update(key(tea.KeyEnter))
	m = next.(SectionPickerModel)
	if m.Confirmed {
		t.Error("enter must not confirm an empty selection")
	}
	if !strings.Contains(m.View(), "at least one section") {
		t.Error("view should warn about the empty selection")
	}
}

func TestSectionPickerCursorBounds(t *testing.T) {
	m := NewSectionPickerModel(deck.Sections)

	next, _ := m.Update(key(tea.KeyUp))
	m = next.(SectionPickerModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 at top", m.Cursor)
	}

	for i := 0; i < len(deck.Sections)+2; i++ {
		next, _ = m.Update(key(tea.KeyDown))
		m = next.(SectionPickerModel)
	}
	if m.Cursor != len(deck.Sections)-1 {
		t.Errorf("Cursor = %d, want %d at bottom", m.Cursor, len(deck.Sections)-1)
	}
}
