package game

import (
	"time"

	"github.com/quietfall/tui-pursuit/internal/core"
)

// TickTask is a fixed-period logical scheduler driven by an external clock.
// The session advances it with explicit timestamps; there are no goroutines
// or timers, so event order is deterministic and tests control time.
//
// Reschedule has cancel-and-restart semantics: an in-flight wait is
// discarded and a full new period is armed from the given instant.
type TickTask struct {
	period time.Duration
	last   time.Time // Last logical fire, interpolation anchor
	next   time.Time
	active bool
}

// Start arms the task: first fire one full period after now.
func (t *TickTask) Start(now time.Time, period time.Duration) {
	t.period = period
	t.last = now
	t.next = now.Add(period)
	t.active = true
}

// Stop cancels the task. A stopped task never becomes due.
func (t *TickTask) Stop() {
	t.active = false
}

// Active reports whether the task is armed.
func (t *TickTask) Active() bool {
	return t.active
}

// Period returns the current fire period.
func (t *TickTask) Period() time.Duration {
	return t.period
}

// Reschedule cancels the pending fire and arms a full new period from now.
func (t *TickTask) Reschedule(now time.Time, period time.Duration) {
	t.Start(now, period)
}

// Next returns the pending fire deadline. ok is false for a stopped task.
func (t *TickTask) Next() (time.Time, bool) {
	if !t.active {
		return time.Time{}, false
	}
	return t.next, true
}

// Fire consumes the pending deadline and arms the following one.
// Returns the instant the fire was scheduled for.
func (t *TickTask) Fire() time.Time {
	at := t.next
	t.last = at
	t.next = at.Add(t.period)
	return at
}

// InterpFactor returns the elapsed fraction of the current period in [0, 1],
// used to blend previous and current positions for smooth rendering.
func (t *TickTask) InterpFactor(now time.Time) float64 {
	if !t.active || t.period <= 0 {
		return 1
	}
	return core.ClampF(float64(now.Sub(t.last))/float64(t.period), 0, 1)
}
