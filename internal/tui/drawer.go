package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/classdeck/classdeck/internal/deck"
)

// sectionChosenMsg reports a drawer selection to the board.
type sectionChosenMsg struct{ index int }

// DrawerModel is the collapsible navigation drawer listing deck sections.
// It shares no state with pagination; choosing a section only tells the
// board to swap the active page list.
type DrawerModel struct {
	sections []deck.Section
	open     bool
	cursor   int
	styles   *Styles
}

// NewDrawerModel builds a closed drawer over the given sections.
func NewDrawerModel(sections []deck.Section, styles *Styles) *DrawerModel {
	return &DrawerModel{sections: sections, styles: styles}
}

// SetStyles swaps the style set after a theme change.
func (m *DrawerModel) SetStyles(styles *Styles) {
	m.styles = styles
}

// Open reports whether the drawer is expanded.
func (m *DrawerModel) Open() bool {
	return m.open
}

// Toggle flips the drawer open or closed.
func (m *DrawerModel) Toggle() {
	m.open = !m.open
}

// Update handles navigation while the drawer is open.
func (m *DrawerModel) Update(msg tea.Msg) (*DrawerModel, tea.Cmd) {
	if !m.open {
		return m, nil
	}
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, boardKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, boardKeys.Down):
		if m.cursor < len(m.sections)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, boardKeys.Select):
		m.open = false
		chosen := m.cursor
		return m, func() tea.Msg { return sectionChosenMsg{index: chosen} }
	}
	return m, nil
}

// View renders the section list when open, or a compact menu hint.
func (m *DrawerModel) View() string {
	if !m.open {
		return m.styles.Status.Render("≡ menu (tab)")
	}

	var b strings.Builder
	for i, s := range m.sections {
		line := "  " + s.DisplayTitle()
		style := m.styles.DrawerItem
		if i == m.cursor {
			line = "> " + s.DisplayTitle()
			style = m.styles.DrawerSelected
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return m.styles.Drawer.Render(strings.TrimRight(b.String(), "\n"))
}
