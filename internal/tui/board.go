package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/classdeck/classdeck/internal/deck"
	"github.com/classdeck/classdeck/internal/theme"
)

// BoardModel is the root model: navigation drawer, the active section's
// page list, the toast stack, and a status bar with the theme toggle's
// pressed-state indicator and announcements.
type BoardModel struct {
	title    string
	sections []deck.Section
	active   int

	list   *PageListModel
	drawer *DrawerModel
	toasts *ToastModel

	themeCtl *theme.Controller
	styles   *Styles

	// announce mirrors what a screen reader would be told after a theme
	// toggle; it is shown in the status bar.
	announce string

	width  int
	height int
	logger zerolog.Logger
}

// NewBoardModel assembles the board for the given sections. The theme
// controller must already hold the resolved theme.
func NewBoardModel(title string, sections []deck.Section, themeCtl *theme.Controller, logger zerolog.Logger) *BoardModel {
	styles := NewStyles(themeCtl.Current())
	m := &BoardModel{
		title:    title,
		sections: sections,
		list:     NewPageListModel(sections[0], styles),
		drawer:   NewDrawerModel(sections, styles),
		toasts:   NewToastModel(styles),
		themeCtl: themeCtl,
		styles:   styles,
		logger:   logger,
	}
	return m
}

// Init pushes the welcome notice.
func (m *BoardModel) Init() tea.Cmd {
	return m.toasts.Push("Loaded "+m.title, false)
}

// Update routes messages to the drawer, page list, and toast stack.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case sectionChosenMsg:
		return m, m.showSection(msg.index)

	case toastSettledMsg, toastDismissMsg, toastDropMsg:
		var cmd tea.Cmd
		m.toasts, cmd = m.toasts.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *BoardModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, boardKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, boardKeys.ToggleTheme):
		res := m.themeCtl.Toggle()
		m.applyStyles(NewStyles(res.Theme))
		m.announce = res.Announcement
		m.logger.Debug().Str("theme", string(res.Theme)).Msg("theme toggled")
		return m, nil

	case key.Matches(msg, boardKeys.ToggleDrawer):
		m.drawer.Toggle()
		return m, nil

	case key.Matches(msg, boardKeys.DismissToast):
		return m, m.toasts.DismissOldest()
	}

	// An open drawer captures navigation keys; otherwise they page the list.
	if m.drawer.Open() {
		var cmd tea.Cmd
		m.drawer, cmd = m.drawer.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// showSection swaps the active page list. The outgoing section's paginator
// is dropped with it; each section owns its pagination state exclusively.
func (m *BoardModel) showSection(index int) tea.Cmd {
	if index < 0 || index >= len(m.sections) {
		return nil
	}
	m.active = index
	m.list = NewPageListModel(m.sections[index], m.styles)
	return m.toasts.Push("Viewing "+m.sections[index].DisplayTitle(), false)
}

// applyStyles hands the new style set to every child.
func (m *BoardModel) applyStyles(styles *Styles) {
	m.styles = styles
	m.list.SetStyles(styles)
	m.drawer.SetStyles(styles)
	m.toasts.SetStyles(styles)
}

// View composes toasts, drawer, content, and the status bar.
func (m *BoardModel) View() string {
	var b strings.Builder

	if toasts := m.toasts.View(); toasts != "" {
		b.WriteString(toasts)
	}
	b.WriteString(m.drawer.View())
	b.WriteString("\n\n")
	b.WriteString(m.list.View())
	b.WriteString("\n")
	b.WriteString(m.statusBar())
	return b.String()
}

// statusBar shows the theme toggle's pressed state, the latest
// announcement, and the key help line.
func (m *BoardModel) statusBar() string {
	pressed := "[ ]"
	if m.styles.Theme == theme.Dark {
		pressed = "[x]"
	}
	parts := []string{
		m.styles.Status.Render("theme: " + string(m.styles.Theme) + " " + pressed),
	}
	if m.announce != "" {
		parts = append(parts, m.styles.Announce.Render(m.announce))
	}
	parts = append(parts, m.styles.Status.Render("←/→ page · t theme · tab menu · x dismiss · q quit"))
	return strings.Join(parts, "  ")
}
