// internal/link/session.go
package link

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/tamzrod/droid-bridge/internal/control"
	"github.com/tamzrod/droid-bridge/internal/status"
)

// FrameSource produces the frame for the current tick.
type FrameSource interface {
	Next() (control.Frame, error)
}

// Config is the immutable tuning of a Session.
type Config struct {
	PeerName    string
	ScanTimeout time.Duration

	Period         time.Duration // send loop tick
	KeepaliveTicks int           // max ticks between transmissions

	RetryDelay        time.Duration // after a failed scan or connect
	ReconnectDelay    time.Duration // after a connection ends
	DisconnectTimeout time.Duration // bound on best-effort teardown

	NeedsAck bool

	// OnTransition, if set, is called from the Run goroutine on every
	// state change. It must not block.
	OnTransition func(from, to State)
}

// Session owns the connection lifecycle: discover, connect, stream, retry.
// Run is the only goroutine that touches the connection and the pacer.
type Session struct {
	cfg    Config
	tr     Transport
	src    FrameSource
	status *status.Tracker
	log    *log.Entry

	state atomic.Uint32
}

// NewSession validates cfg and builds an idle session.
// tracker may be nil.
func NewSession(cfg Config, tr Transport, src FrameSource, tracker *status.Tracker) (*Session, error) {
	if tr == nil {
		return nil, errors.New("link: transport required")
	}
	if src == nil {
		return nil, errors.New("link: frame source required")
	}
	if cfg.PeerName == "" {
		return nil, errors.New("link: peer name required")
	}
	if cfg.ScanTimeout <= 0 {
		return nil, errors.New("link: scan timeout must be > 0")
	}
	if cfg.Period <= 0 {
		return nil, errors.New("link: period must be > 0")
	}
	if cfg.KeepaliveTicks < 1 {
		return nil, errors.New("link: keepalive ticks must be >= 1")
	}
	if cfg.DisconnectTimeout <= 0 {
		cfg.DisconnectTimeout = 2 * time.Second
	}

	return &Session{
		cfg:    cfg,
		tr:     tr,
		src:    src,
		status: tracker,
		log:    log.WithField("peer", cfg.PeerName),
	}, nil
}

// State returns the current lifecycle state. Safe from any goroutine.
func (s *Session) State() State {
	return State(s.state.Load())
}

// Run drives the state machine until ctx is cancelled.
// Every failure is recoverable here; Run returns nil on cancellation.
func (s *Session) Run(ctx context.Context) error {
	defer s.setState(Idle)

	for {
		if ctx.Err() != nil {
			return nil
		}

		// ---- discovery ----
		addr, err := s.scan(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.Infof("Discovery failed: %v", err)
			s.status.Error(err)
			s.backoff(ctx, s.cfg.RetryDelay)
			continue
		}

		// ---- connect ----
		conn, err := s.connect(ctx, addr)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			s.log.WithField("addr", addr).Infof("Connect failed: %v", err)
			s.status.Error(err)
			s.backoff(ctx, s.cfg.RetryDelay)
			continue
		}

		// ---- stream ----
		s.log.WithField("addr", addr).Info("Connected")
		s.status.Connected(string(addr))

		err = s.stream(ctx, conn)
		switch {
		case err == nil:
			// cancelled
		case errors.Is(err, ErrLinkLost):
			s.log.Info("Link lost, rescanning")
			s.status.Lost()
			s.status.Error(err)
		default:
			s.log.Errorf("Send loop failed (%T): %v", err, err)
			s.status.Error(err)
		}

		s.teardown(conn)

		if ctx.Err() != nil {
			return nil
		}
		s.backoff(ctx, s.cfg.ReconnectDelay)
	}
}

func (s *Session) scan(ctx context.Context) (Address, error) {
	s.setState(Scanning)
	s.log.Debugf("Scanning for %v", s.cfg.ScanTimeout)

	addr, ok, err := s.tr.Discover(ctx, s.cfg.PeerName, s.cfg.ScanTimeout)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("%w: %q within %v", ErrNotFound, s.cfg.PeerName, s.cfg.ScanTimeout)
	}
	return addr, nil
}

func (s *Session) connect(ctx context.Context, addr Address) (Connection, error) {
	s.setState(Connecting)

	conn, err := s.tr.Connect(ctx, addr)
	if err != nil {
		return nil, err
	}
	if conn == nil {
		return nil, ErrNotConnected
	}
	return conn, nil
}

// stream runs the paced send loop on conn. It returns nil on cancellation,
// ErrLinkLost when the transport reports a drop, and any other error for
// runtime failures (including a recovered panic).
func (s *Session) stream(ctx context.Context, conn Connection) (err error) {
	s.setState(Connected)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("link: panic in send loop: %v", r)
		}
	}()

	pacer := NewPacer(s.cfg.KeepaliveTicks)
	lost := conn.Lost()

	for {
		// Cancellation and link loss are observed at tick boundaries only.
		select {
		case <-ctx.Done():
			return nil
		case <-lost:
			return ErrLinkLost
		default:
		}

		if err := s.tick(conn, pacer); err != nil {
			return err
		}

		if !sleep(ctx, s.cfg.Period) {
			return nil
		}
	}
}

func (s *Session) tick(conn Connection, pacer *Pacer) error {
	f, err := s.src.Next()
	if err != nil {
		return err
	}

	if !pacer.Offer(f) {
		s.status.FrameSuppressed()
		return nil
	}

	if err := conn.Send(f.Bytes(), s.cfg.NeedsAck); err != nil {
		return fmt.Errorf("link: send failed: %w", err)
	}

	pacer.Sent(f)
	s.status.FrameSent(f.String())
	s.log.Debugf("Sent [%v]", f)
	return nil
}

// teardown disconnects best-effort. Errors are swallowed and a stuck
// transport is abandoned after DisconnectTimeout.
func (s *Session) teardown(conn Connection) {
	s.setState(Disconnecting)

	done := make(chan error, 1)
	go func() { done <- conn.Disconnect() }()

	select {
	case err := <-done:
		if err != nil {
			s.log.Debugf("Disconnect failed (ignored): %v", err)
		}
	case <-time.After(s.cfg.DisconnectTimeout):
		s.log.Debugf("Disconnect timed out after %v (ignored)", s.cfg.DisconnectTimeout)
	}

	s.status.Disconnected()
}

func (s *Session) backoff(ctx context.Context, d time.Duration) {
	s.setState(Backoff)
	sleep(ctx, d)
}

func (s *Session) setState(next State) {
	prev := State(s.state.Swap(uint32(next)))
	if prev == next {
		return
	}

	s.log.Debugf("State changed: %v --> %v", prev, next)
	s.status.SetState(next.String())

	if s.cfg.OnTransition != nil {
		s.cfg.OnTransition(prev, next)
	}
}

// sleep waits for d or until ctx is done. It reports false on cancellation.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
