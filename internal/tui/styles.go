package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/classdeck/classdeck/internal/theme"
)

// Palette colors per theme.
const (
	darkAccent    = "#7D56F4"
	darkText      = "#FAFAFA"
	darkDimText   = "#6C6C6C"
	darkSurface   = "#1C1C2E"
	lightAccent   = "#5A32C8"
	lightText     = "#1A1A1A"
	lightDimText  = "#8A8A8A"
	lightSurface  = "#EFEFF4"
	toastDarkBg   = "#2E2E48"
	toastLightBg  = "#E2E2F0"
	drawerPadding = 1
)

// Styles is the full style set for one theme. A new set is built whenever
// the theme flips; nothing else carries theme state.
type Styles struct {
	Theme theme.Theme

	Title     lipgloss.Style
	Item      lipgloss.Style
	ItemNote  lipgloss.Style
	Controls  lipgloss.Style
	Button    lipgloss.Style
	Indicator lipgloss.Style

	ToastEntering lipgloss.Style
	ToastVisible  lipgloss.Style
	ToastLeaving  lipgloss.Style

	Drawer         lipgloss.Style
	DrawerItem     lipgloss.Style
	DrawerSelected lipgloss.Style

	Status   lipgloss.Style
	Announce lipgloss.Style
}

// NewStyles builds the style set for t.
func NewStyles(t theme.Theme) *Styles {
	accent, text, dim, surface, toastBg := darkAccent, darkText, darkDimText, darkSurface, toastDarkBg
	if t == theme.Light {
		accent, text, dim, surface, toastBg = lightAccent, lightText, lightDimText, lightSurface, toastLightBg
	}

	s := &Styles{Theme: t}
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accent))
	s.Item = lipgloss.NewStyle().Foreground(lipgloss.Color(text))
	s.ItemNote = lipgloss.NewStyle().Foreground(lipgloss.Color(dim)).Italic(true)
	s.Controls = lipgloss.NewStyle().Foreground(lipgloss.Color(dim))
	s.Button = lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)
	s.Indicator = lipgloss.NewStyle().Foreground(lipgloss.Color(text))

	s.ToastEntering = lipgloss.NewStyle().Foreground(lipgloss.Color(dim)).Background(lipgloss.Color(toastBg))
	s.ToastVisible = lipgloss.NewStyle().Foreground(lipgloss.Color(text)).Background(lipgloss.Color(toastBg)).Padding(0, 1)
	s.ToastLeaving = lipgloss.NewStyle().Foreground(lipgloss.Color(dim)).Faint(true)

	s.Drawer = lipgloss.NewStyle().Background(lipgloss.Color(surface)).Padding(0, drawerPadding)
	s.DrawerItem = lipgloss.NewStyle().Foreground(lipgloss.Color(text))
	s.DrawerSelected = lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Bold(true)

	s.Status = lipgloss.NewStyle().Foreground(lipgloss.Color(dim))
	s.Announce = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
	return s
}
