package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/classdeck/classdeck/internal/deck"
	"github.com/classdeck/classdeck/internal/paginate"
)

// Controls strip labels. The buttons render identically at the boundaries:
// navigation past the edge is simply a no-op, the control is never disabled.
const (
	prevLabel = "‹ Prev"
	nextLabel = "Next ›"
)

// PageListModel presents one deck section. It is the paginate.Surface for
// its own items: the Paginator decides visibility, the model only draws.
type PageListModel struct {
	title   string
	items   []deck.Item
	visible []bool

	indicator string
	pager     *paginate.Paginator

	styles *Styles
}

// NewPageListModel builds the model for a section and attaches pagination.
// Sections that fit on one page get no paginator and no controls strip;
// every item starts, and stays, visible.
func NewPageListModel(section deck.Section, styles *Styles) *PageListModel {
	m := &PageListModel{
		title:   section.DisplayTitle(),
		items:   section.Items,
		visible: make([]bool, len(section.Items)),
		styles:  styles,
	}
	for i := range m.visible {
		m.visible[i] = true
	}
	m.pager = paginate.Attach(m, len(m.items), section.PageSize)
	return m
}

// SetItemVisible implements paginate.Surface.
func (m *PageListModel) SetItemVisible(index int, visible bool) {
	if index < 0 || index >= len(m.visible) {
		return
	}
	m.visible[index] = visible
}

// SetIndicator implements paginate.Surface.
func (m *PageListModel) SetIndicator(text string) {
	m.indicator = text
}

// SetStyles swaps the style set after a theme change.
func (m *PageListModel) SetStyles(styles *Styles) {
	m.styles = styles
}

// Paginated reports whether this section has pagination controls.
func (m *PageListModel) Paginated() bool {
	return m.pager != nil
}

// State returns the pagination snapshot, or a zero State for single-page
// sections.
func (m *PageListModel) State() paginate.State {
	if m.pager == nil {
		return paginate.State{}
	}
	return m.pager.State()
}

// Update handles page navigation keys.
func (m *PageListModel) Update(msg tea.Msg) (*PageListModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, boardKeys.PrevPage):
		if m.pager != nil {
			m.pager.GoToPrevious()
		}
	case key.Matches(keyMsg, boardKeys.NextPage):
		if m.pager != nil {
			m.pager.GoToNext()
		}
	}
	return m, nil
}

// View renders the section title, the visible items, and the controls strip
// when pagination is active.
func (m *PageListModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	for i, item := range m.items {
		if !m.visible[i] {
			continue
		}
		b.WriteString(m.styles.Item.Render("• " + item.Text))
		if item.Note != "" {
			b.WriteString(" ")
			b.WriteString(m.styles.ItemNote.Render("(" + item.Note + ")"))
		}
		b.WriteString("\n")
	}

	if m.pager != nil {
		strip := lipgloss.JoinHorizontal(lipgloss.Center,
			m.styles.Button.Render(prevLabel),
			m.styles.Indicator.Render("  "+m.indicator+"  "),
			m.styles.Button.Render(nextLabel),
		)
		b.WriteString(m.styles.Controls.Render(strip))
		b.WriteString("\n")
	}
	return b.String()
}
