package notify

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_PushStartsEntering(t *testing.T) {
	q := NewQueue()
	n := q.Push("saved", false)

	assert.Equal(t, PhaseEntering, n.Phase)
	assert.Equal(t, "saved", n.Text)
	assert.False(t, n.Persist)
	assert.Equal(t, 1, q.Len())
}

func TestQueue_Lifecycle(t *testing.T) {
	q := NewQueue()
	n := q.Push("room created", false)

	q.Settle(n.ID)
	require.Equal(t, PhaseVisible, q.Active()[0].Phase)

	q.AutoDismiss(n.ID)
	require.Equal(t, PhaseLeaving, q.Active()[0].Phase)

	q.Drop(n.ID)
	assert.Zero(t, q.Len())
}

func TestQueue_PersistentSkipsAutoDismiss(t *testing.T) {
	q := NewQueue()
	n := q.Push("quiz in progress", true)
	q.Settle(n.ID)

	q.AutoDismiss(n.ID)
	assert.Equal(t, PhaseVisible, q.Active()[0].Phase,
		"persistent notices ignore the scheduled dismissal")

	q.Dismiss(n.ID)
	assert.Equal(t, PhaseLeaving, q.Active()[0].Phase,
		"explicit dismissal still applies")
}

func TestQueue_InvalidTransitionsIgnored(t *testing.T) {
	q := NewQueue()
	n := q.Push("x", false)

	// Dismiss before Settle: still entering.
	q.Dismiss(n.ID)
	assert.Equal(t, PhaseEntering, q.Active()[0].Phase)

	// Drop before Leaving: still present.
	q.Drop(n.ID)
	assert.Equal(t, 1, q.Len())

	// Unknown ID: no effect, no panic.
	q.Settle(ulid.Make())
	assert.Equal(t, 1, q.Len())
}

func TestQueue_ArrivalOrderPreserved(t *testing.T) {
	q := NewQueue()
	first := q.Push("one", false)
	second := q.Push("two", false)
	third := q.Push("three", false)

	q.Settle(second.ID)
	q.AutoDismiss(second.ID)
	q.Drop(second.ID)

	active := q.Active()
	require.Len(t, active, 2)
	assert.Equal(t, first.ID, active[0].ID)
	assert.Equal(t, third.ID, active[1].ID)
}

func TestTimingContract(t *testing.T) {
	assert.Equal(t, 4*time.Second, DismissAfter)
	assert.Equal(t, 300*time.Millisecond, LeaveDuration)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "entering", PhaseEntering.String())
	assert.Equal(t, "visible", PhaseVisible.String())
	assert.Equal(t, "leaving", PhaseLeaving.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
