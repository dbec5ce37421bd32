package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/oklog/ulid/v2"

	"github.com/classdeck/classdeck/internal/notify"
)

// toastEnterDuration is the entry transition length before a notice settles
// into its steady state.
const toastEnterDuration = 150 * time.Millisecond

// Toast lifecycle messages, each carrying the notice they apply to. A stale
// message for an already-removed notice is harmlessly ignored by the queue.
type (
	toastSettledMsg struct{ id ulid.ULID }
	toastDismissMsg struct{ id ulid.ULID }
	toastDropMsg    struct{ id ulid.ULID }
)

// ToastModel renders the notice queue and drives its timers. It occupies
// its own screen region; paginated item visibility is never touched here.
type ToastModel struct {
	queue  *notify.Queue
	styles *Styles
}

// NewToastModel returns an empty toast area.
func NewToastModel(styles *Styles) *ToastModel {
	return &ToastModel{queue: notify.NewQueue(), styles: styles}
}

// SetStyles swaps the style set after a theme change.
func (m *ToastModel) SetStyles(styles *Styles) {
	m.styles = styles
}

// Push adds a notice and returns the commands driving its lifecycle: the
// settle tick for the entry transition and, for non-persistent notices,
// the auto-dismiss tick.
func (m *ToastModel) Push(text string, persist bool) tea.Cmd {
	n := m.queue.Push(text, persist)

	cmds := []tea.Cmd{
		tea.Tick(toastEnterDuration, func(time.Time) tea.Msg {
			return toastSettledMsg{id: n.ID}
		}),
	}
	if !persist {
		cmds = append(cmds, tea.Tick(notify.DismissAfter, func(time.Time) tea.Msg {
			return toastDismissMsg{id: n.ID}
		}))
	}
	return tea.Batch(cmds...)
}

// DismissOldest explicitly dismisses the oldest visible notice, persistent
// or not, and returns the drop command for its exit transition.
func (m *ToastModel) DismissOldest() tea.Cmd {
	for _, n := range m.queue.Active() {
		if n.Phase == notify.PhaseVisible {
			m.queue.Dismiss(n.ID)
			return m.dropCmd(n.ID)
		}
	}
	return nil
}

// Update advances notice lifecycles from their tick messages.
func (m *ToastModel) Update(msg tea.Msg) (*ToastModel, tea.Cmd) {
	switch msg := msg.(type) {
	case toastSettledMsg:
		m.queue.Settle(msg.id)
		return m, nil
	case toastDismissMsg:
		m.queue.AutoDismiss(msg.id)
		return m, m.dropCmd(msg.id)
	case toastDropMsg:
		m.queue.Drop(msg.id)
		return m, nil
	}
	return m, nil
}

// Len returns the number of live notices.
func (m *ToastModel) Len() int {
	return m.queue.Len()
}

// View stacks the live notices, newest last, styled by phase.
func (m *ToastModel) View() string {
	active := m.queue.Active()
	if len(active) == 0 {
		return ""
	}

	var b strings.Builder
	for _, n := range active {
		var style = m.styles.ToastVisible
		switch n.Phase {
		case notify.PhaseEntering:
			style = m.styles.ToastEntering
		case notify.PhaseLeaving:
			style = m.styles.ToastLeaving
		case notify.PhaseVisible:
		}
		b.WriteString(style.Render(n.Text))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *ToastModel) dropCmd(id ulid.ULID) tea.Cmd {
	return tea.Tick(notify.LeaveDuration, func(time.Time) tea.Msg {
		return toastDropMsg{id: id}
	})
}
