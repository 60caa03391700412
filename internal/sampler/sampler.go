// internal/sampler/sampler.go
package sampler

import (
	"errors"
	"fmt"

	"github.com/tamzrod/droid-bridge/internal/control"
	"github.com/tamzrod/droid-bridge/internal/input"
)

// Poller abstracts the input device operation the sampler needs.
// One call per tick; cached reads are a caller bug.
type Poller interface {
	Sample() (input.Snapshot, error)
}

// Sampler is a dumb, tick-driven input reader.
// It owns the one persistent control state of the process.
type Sampler struct {
	poller Poller
	mapper *control.Mapper
	state  control.State
}

// New creates a sampler starting from the power-on state.
func New(p Poller, m *control.Mapper) (*Sampler, error) {
	if p == nil {
		return nil, errors.New("sampler: poller required")
	}
	if m == nil {
		return nil, errors.New("sampler: mapper required")
	}
	return &Sampler{
		poller: p,
		mapper: m,
		state:  control.NewState(),
	}, nil
}

// Next performs exactly one tick: poll, map, encode.
// A polling failure leaves the state untouched.
func (s *Sampler) Next() (control.Frame, error) {
	snap, err := s.poller.Sample()
	if err != nil {
		return control.Frame{}, fmt.Errorf("sampler: poll failed: %w", err)
	}

	s.mapper.Apply(snap, &s.state)
	return control.Encode(s.state), nil
}

// State returns a copy of the current control state.
func (s *Sampler) State() control.State {
	return s.state
}
