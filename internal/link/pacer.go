// internal/link/pacer.go
package link

import "github.com/tamzrod/droid-bridge/internal/control"

// Pacer decides, tick by tick, whether a frame must go on air.
// A frame is sent when it differs from the last sent frame, or when
// threshold ticks have passed since the last send (keepalive).
// No IO. Reset by building a new Pacer per connection.
type Pacer struct {
	threshold int

	last      control.Frame
	hasLast   bool
	sinceSend int
}

// NewPacer creates a pacer with no previous frame.
// A threshold below 1 degrades to sending every tick.
func NewPacer(threshold int) *Pacer {
	if threshold < 1 {
		threshold = 1
	}
	return &Pacer{threshold: threshold}
}

// Offer counts one tick and reports whether f should be transmitted.
func (p *Pacer) Offer(f control.Frame) bool {
	p.sinceSend++

	if !p.hasLast || f != p.last {
		return true
	}
	return p.sinceSend >= p.threshold
}

// Sent records a successful transmission of f.
// A failed send must not be recorded, so the next tick retries.
func (p *Pacer) Sent(f control.Frame) {
	p.last = f
	p.hasLast = true
	p.sinceSend = 0
}

// SinceSend returns ticks counted since the last recorded send.
func (p *Pacer) SinceSend() int {
	return p.sinceSend
}
