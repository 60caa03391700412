// internal/link/serial/serial.go
package serial

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	tarm "github.com/tarm/serial"

	"github.com/tamzrod/droid-bridge/internal/link"
)

// watchInterval is how often an open port is checked for removal.
const watchInterval = 500 * time.Millisecond

// Config is minimal transport config.
type Config struct {
	Port string
	Baud int
}

// opener is swapped in tests.
type opener func(c *tarm.Config) (io.ReadWriteCloser, error)

func openPort(c *tarm.Config) (io.ReadWriteCloser, error) {
	return tarm.OpenPort(c)
}

// Transport implements link.Transport over a BLE-UART bridge dongle
// that exposes the droid as a serial port. Discovery waits for the port
// device node to exist.
type Transport struct {
	cfg  Config
	open opener
	stat func(name string) (os.FileInfo, error)
}

// New creates a serial transport. It performs no IO.
func New(cfg Config) (*Transport, error) {
	if cfg.Port == "" {
		return nil, errors.New("serial: port required")
	}
	if cfg.Baud <= 0 {
		cfg.Baud = 9600
	}
	return &Transport{cfg: cfg, open: openPort, stat: os.Stat}, nil
}

// Discover polls for the port until it exists or timeout elapses.
// The peer name cannot be checked on a serial bridge; it is only logged.
func (t *Transport) Discover(ctx context.Context, name string, timeout time.Duration) (link.Address, bool, error) {
	deadline := time.Now().Add(timeout)
	poll := time.NewTicker(100 * time.Millisecond)
	defer poll.Stop()

	for {
		if _, err := t.stat(t.cfg.Port); err == nil {
			log.WithField("port", t.cfg.Port).Debugf("Serial bridge for %s present", name)
			return link.Address(t.cfg.Port), true, nil
		}
		if !time.Now().Before(deadline) {
			return "", false, nil
		}

		select {
		case <-ctx.Done():
			return "", false, ctx.Err()
		case <-poll.C:
		}
	}
}

// Connect opens the port and starts watching it for removal.
func (t *Transport) Connect(ctx context.Context, addr link.Address) (link.Connection, error) {
	port, err := t.open(&tarm.Config{Name: string(addr), Baud: t.cfg.Baud})
	if err != nil {
		return nil, errors.Wrapf(err, "serial: open %s", addr)
	}

	c := &Connection{
		port: port,
		lost: make(chan struct{}),
		done: make(chan struct{}),
	}
	go c.watch(string(addr), t.stat)

	return c, nil
}

// Connection is one open serial port.
type Connection struct {
	mu     sync.Mutex
	port   io.ReadWriteCloser
	closed bool

	lost     chan struct{}
	lostOnce sync.Once
	done     chan struct{}
}

// Send writes one frame. needsAck is not available on a raw serial
// bridge and is ignored.
func (c *Connection) Send(frame []byte, needsAck bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return link.ErrNotConnected
	}

	n, err := c.port.Write(frame)
	if err != nil {
		c.markLost()
		return errors.Wrap(err, "serial: write")
	}
	if n != len(frame) {
		return errors.Errorf("serial: short write %d/%d", n, len(frame))
	}
	return nil
}

// Disconnect closes the port. Calling it twice is a no-op.
func (c *Connection) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	close(c.done)
	return errors.Wrap(c.port.Close(), "serial: close")
}

// Lost is closed when the port disappears or a write fails.
func (c *Connection) Lost() <-chan struct{} { return c.lost }

func (c *Connection) markLost() {
	c.lostOnce.Do(func() { close(c.lost) })
}

func (c *Connection) watch(name string, stat func(string) (os.FileInfo, error)) {
	t := time.NewTicker(watchInterval)
	defer t.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			if _, err := stat(name); err != nil {
				log.WithField("port", name).Debugf("Serial port gone: %v", err)
				c.markLost()
				return
			}
		}
	}
}
