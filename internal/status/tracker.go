// internal/status/tracker.go
package status

import (
	"sync"
	"time"
)

// Tracker records session events for readers on other goroutines.
// A nil *Tracker discards everything, so callers never need to check.
type Tracker struct {
	mu   sync.Mutex
	snap Snapshot
	now  func() time.Time
}

// NewTracker creates a tracker in the given initial state.
func NewTracker(state string) *Tracker {
	t := &Tracker{now: time.Now}
	t.snap.State = state
	t.snap.Since = t.now()
	return t
}

// SetState records a lifecycle transition.
func (t *Tracker) SetState(state string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.snap.State == state {
		return
	}
	t.snap.State = state
	t.snap.Since = t.now()
}

// Connected records a successful connection to peer.
func (t *Tracker) Connected(peer string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snap.Peer = peer
	t.snap.Connects++
}

// Lost records a link loss reported by the transport.
func (t *Tracker) Lost() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snap.Losses++
}

// Disconnected clears the current peer.
func (t *Tracker) Disconnected() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snap.Peer = ""
}

// FrameSent records a transmitted frame.
func (t *Tracker) FrameSent(frame string) {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snap.FramesSent++
	t.snap.LastFrame = frame
}

// FrameSuppressed records a tick whose frame was not transmitted.
func (t *Tracker) FrameSuppressed() {
	if t == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snap.FramesSuppressed++
}

// Error records the most recent recoverable error.
func (t *Tracker) Error(err error) {
	if t == nil || err == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	t.snap.LastError = err.Error()
}

// Snapshot returns a copy of the current view.
func (t *Tracker) Snapshot() Snapshot {
	if t == nil {
		return Snapshot{}
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.snap
}
