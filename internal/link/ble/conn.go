// internal/link/ble/conn.go
package ble

import (
	"sync"

	"github.com/pkg/errors"
	"tinygo.org/x/bluetooth"

	"github.com/tamzrod/droid-bridge/internal/link"
)

// Connection is one GATT link to the droid.
type Connection struct {
	mu     sync.Mutex
	device bluetooth.Device
	char   bluetooth.DeviceCharacteristic
	closed bool

	lost     chan struct{}
	lostOnce sync.Once
}

// ErrAckUnsupported is returned by Send when a write with response is
// requested. The adapter only offers write-without-response on every host.
var ErrAckUnsupported = errors.New("ble: write with response is not supported")

// Send writes one frame to the command characteristic, fire-and-forget.
func (c *Connection) Send(frame []byte, needsAck bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return link.ErrNotConnected
	}
	if needsAck {
		return ErrAckUnsupported
	}

	_, err := c.char.WriteWithoutResponse(frame)
	return errors.Wrap(err, "ble: write")
}

// Disconnect closes the GATT link. Calling it twice is a no-op.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	return errors.Wrap(c.device.Disconnect(), "ble: disconnect")
}

// Lost is closed by the adapter's disconnect notification.
func (c *Connection) Lost() <-chan struct{} { return c.lost }

func (c *Connection) markLost() {
	c.lostOnce.Do(func() { close(c.lost) })
}
