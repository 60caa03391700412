// internal/link/state.go
package link

// State is a lifecycle state of the Session state machine.
type State uint32

const (
	Idle          State = iota // not started, or stopped
	Scanning                   // bounded discovery attempt
	Connecting                 // one connect attempt
	Connected                  // paced send loop running
	Disconnecting              // best-effort teardown
	Backoff                    // fixed delay before the next scan
)

var stateNames = [...]string{
	Idle:          "idle",
	Scanning:      "scanning",
	Connecting:    "connecting",
	Connected:     "connected",
	Disconnecting: "disconnecting",
	Backoff:       "backoff",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}
