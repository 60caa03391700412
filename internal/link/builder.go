// internal/link/builder.go
package link

import (
	"time"

	cfg "github.com/tamzrod/droid-bridge/internal/config"
)

// SessionConfig translates a normalized configuration into session tuning.
// No validation here; NewSession owns that.
func SessionConfig(c *cfg.Config) Config {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	return Config{
		PeerName:          c.Peer.Name,
		ScanTimeout:       ms(c.Peer.ScanTimeoutMs),
		Period:            ms(c.Session.PeriodMs),
		KeepaliveTicks:    c.Session.KeepaliveTicks,
		RetryDelay:        ms(c.Session.RetryDelayMs),
		ReconnectDelay:    ms(c.Session.ReconnectDelayMs),
		DisconnectTimeout: ms(c.Session.DisconnectTimeoutMs),
		NeedsAck:          c.Transport.WriteWithResponse,
	}
}
