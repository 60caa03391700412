// internal/input/input.go
package input

import (
	"errors"
	"fmt"
)

// ErrInputUnavailable means no usable input device exists.
// It is fatal at startup and never retried.
var ErrInputUnavailable = errors.New("input: no usable input device")

// Source is one polled view of a gamepad.
// Axis values are in [-1, 1]. Out-of-range indices read as 0 / false.
type Source interface {
	AxisCount() int
	ButtonCount() int
	Axis(i int) float64
	Button(i int) bool
}

// Device is a physical input that must be polled once per tick.
type Device interface {
	Name() string
	Sample() (Snapshot, error)
	Close() error
}

// Snapshot is a frozen copy of the axis and button values of one poll.
type Snapshot struct {
	Axes    []float64
	Buttons []bool
}

func (s Snapshot) AxisCount() int   { return len(s.Axes) }
func (s Snapshot) ButtonCount() int { return len(s.Buttons) }

func (s Snapshot) Axis(i int) float64 {
	if i < 0 || i >= len(s.Axes) {
		return 0
	}
	return s.Axes[i]
}

func (s Snapshot) Button(i int) bool {
	if i < 0 || i >= len(s.Buttons) {
		return false
	}
	return s.Buttons[i]
}

// Require reports ErrInputUnavailable if src has fewer axes than minAxes.
// Buttons are optional: a missing one simply never reads as pressed.
func Require(src Source, minAxes int) error {
	if src == nil {
		return ErrInputUnavailable
	}
	if n := src.AxisCount(); n < minAxes {
		return fmt.Errorf("%w: %d axes, need %d", ErrInputUnavailable, n, minAxes)
	}
	return nil
}
