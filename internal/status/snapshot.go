// internal/status/snapshot.go
package status

import "time"

// Snapshot is a point-in-time view of the link session.
// It contains no logic.
type Snapshot struct {
	State            string    `json:"state"`
	Peer             string    `json:"peer,omitempty"`
	Since            time.Time `json:"since"`
	Connects         uint64    `json:"connects"`
	Losses           uint64    `json:"losses"`
	FramesSent       uint64    `json:"frames_sent"`
	FramesSuppressed uint64    `json:"frames_suppressed"`
	LastError        string    `json:"last_error,omitempty"`
	LastFrame        string    `json:"last_frame,omitempty"`
}
