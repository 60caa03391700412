// internal/link/transport.go
package link

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound means discovery finished without seeing the peer.
	ErrNotFound = errors.New("link: peer not found")

	// ErrLinkLost means the transport reported the connection dropped.
	ErrLinkLost = errors.New("link: connection lost")

	// ErrNotConnected is returned by connections used after teardown.
	ErrNotConnected = errors.New("link: not connected")
)

// Address identifies a discovered peer. Its format is transport-defined.
type Address string

// Transport abstracts the wireless primitive the session needs.
// Each call is ONE bounded attempt; retries belong to the session.
type Transport interface {
	// Discover looks for a peer advertising name for at most timeout.
	// ok is false when the peer was not seen.
	Discover(ctx context.Context, name string, timeout time.Duration) (addr Address, ok bool, err error)

	// Connect opens a connection. A peer that is unreachable or reports
	// not-connected is an error.
	Connect(ctx context.Context, addr Address) (Connection, error)
}

// Connection is one open link to the peer.
type Connection interface {
	// Send writes one frame. needsAck requests link-level acknowledgement.
	Send(frame []byte, needsAck bool) error

	// Disconnect closes the link. Safe to call more than once.
	Disconnect() error

	// Lost is closed when the transport notices the link dropped.
	Lost() <-chan struct{}
}
