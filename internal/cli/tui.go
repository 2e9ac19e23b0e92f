package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nilavan/kanadeck/pkg/deck"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// sectionDescriptions maps each section to a one-line summary shown in the picker.
var sectionDescriptions = map[string]string{
	deck.SectionOverview: "hiragana and katakana overview tables",
	deck.SectionDakuten:  "dakuten/handakuten tables",
	deck.SectionFocus:    "per-series focus slides with large glyphs",
}

// =============================================================================
// SectionPickerModel - Interactive section selection
// =============================================================================

// SectionPickerModel is the bubbletea model for picking deck sections.
// Space toggles the section under the cursor, enter confirms.
type SectionPickerModel struct {
	Sections  []string
	Checked   map[int]bool
	Cursor    int
	Confirmed bool
}

// NewSectionPickerModel creates a picker with all sections checked.
func NewSectionPickerModel(sections []string) SectionPickerModel {
	checked := make(map[int]bool, len(sections))
	for i := range sections {
		checked[i] = true
	}
	return SectionPickerModel{
		Sections: sections,
		Checked:  checked,
	}
}

func (m SectionPickerModel) Init() tea.Cmd {
	return nil
}

func (m SectionPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Sections)-1 {
				m.Cursor++
			}
		case " ":
			m.Checked[m.Cursor] = !m.Checked[m.Cursor]
		case "enter":
			if len(m.Selected()) == 0 {
				return m, nil
			}
			m.Confirmed = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SectionPickerModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Sections"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  ⏎ confirm  q quit"))
	b.WriteString("\n\n")

	for i, name := range m.Sections {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		check := "[ ]"
		if m.Checked[i] {
			check = "[x]"
		}

		style := listNormalStyle
		if i == m.Cursor {
			style = listSelectedStyle
		}

		b.WriteString(cursor + style.Render(check+" "+name))
		if desc := sectionDescriptions[name]; desc != "" {
			b.WriteString("  " + listDimStyle.Render(desc))
		}
		b.WriteString("\n")
	}

	if len(m.Selected()) == 0 {
		b.WriteString("\n" + StyleWarning.Render("select at least one section"))
	}

	return b.String()
}

// Selected returns the checked sections in deck order.
func (m SectionPickerModel) Selected() []string {
	var out []string
	for i, name := range m.Sections {
		if m.Checked[i] {
			out = append(out, name)
		}
	}
	return out
}

// pickSections runs the interactive section picker and returns the chosen
// sections. A nil slice with nil error means the user cancelled.
func pickSections() ([]string, error) {
	p := tea.NewProgram(NewSectionPickerModel(deck.Sections))
	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	m, ok := final.(SectionPickerModel)
	if !ok || !m.Confirmed {
		return nil, nil
	}
	return m.Selected(), nil
}
