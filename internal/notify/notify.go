// Package notify holds the lifecycle state machine for transient notices.
//
// Phase transitions are pure state changes; the timing that drives them
// (the dismiss delay and the exit transition) is owned by whatever renders
// the notices. Notices occupy their own screen region and never touch the
// visibility of paginated items.
package notify

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/lo"
)

// Timing contract for auto-dismissal.
const (
	// DismissAfter is how long a notice stays visible before it starts
	// leaving, unless it is flagged persistent.
	DismissAfter = 4000 * time.Millisecond

	// LeaveDuration is the length of the exit transition between Dismiss
	// and removal.
	LeaveDuration = 300 * time.Millisecond
)

// Phase is a notice's position in its lifecycle.
type Phase int

const (
	// PhaseEntering is applied immediately on Push, for the entry transition.
	PhaseEntering Phase = iota
	// PhaseVisible is the steady state after the entry transition.
	PhaseVisible
	// PhaseLeaving is the exit transition preceding removal.
	PhaseLeaving
)

// String returns the phase name used in logs and transition class names.
func (p Phase) String() string {
	switch p {
	case PhaseEntering:
		return "entering"
	case PhaseVisible:
		return "visible"
	case PhaseLeaving:
		return "leaving"
	default:
		return "unknown"
	}
}

// Notice is a single transient message.
type Notice struct {
	ID      ulid.ULID
	Text    string
	Persist bool
	Phase   Phase
}

// Queue holds live notices in arrival order.
type Queue struct {
	notices []Notice
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push adds a notice in PhaseEntering and returns it. Persistent notices
// never auto-dismiss; they leave only through an explicit Dismiss.
func (q *Queue) Push(text string, persist bool) Notice {
	n := Notice{
		ID:      ulid.Make(),
		Text:    text,
		Persist: persist,
		Phase:   PhaseEntering,
	}
	q.notices = append(q.notices, n)
	return n
}

// Settle completes the entry transition, moving an Entering notice to
// Visible. Unknown IDs and other phases are ignored.
func (q *Queue) Settle(id ulid.ULID) {
	q.transition(id, PhaseEntering, PhaseVisible)
}

// Dismiss starts the exit transition for a Visible notice. The persist
// flag only guards the scheduled auto-dismiss; an explicit Dismiss always
// applies.
func (q *Queue) Dismiss(id ulid.ULID) {
	q.transition(id, PhaseVisible, PhaseLeaving)
}

// AutoDismiss is the scheduled dismissal: like Dismiss, but a no-op for
// persistent notices.
func (q *Queue) AutoDismiss(id ulid.ULID) {
	for i := range q.notices {
		if q.notices[i].ID == id && !q.notices[i].Persist {
			q.transition(id, PhaseVisible, PhaseLeaving)
			return
		}
	}
}

// Drop removes a Leaving notice from the queue entirely.
func (q *Queue) Drop(id ulid.ULID) {
	q.notices = lo.Reject(q.notices, func(n Notice, _ int) bool {
		return n.ID == id && n.Phase == PhaseLeaving
	})
}

// Active returns the live notices in arrival order.
func (q *Queue) Active() []Notice {
	out := make([]Notice, len(q.notices))
	copy(out, q.notices)
	return out
}

// Len returns the number of live notices.
func (q *Queue) Len() int {
	return len(q.notices)
}

func (q *Queue) transition(id ulid.ULID, from, to Phase) {
	for i := range q.notices {
		if q.notices[i].ID == id && q.notices[i].Phase == from {
			q.notices[i].Phase = to
			return
		}
	}
}
