// internal/input/joystick/joystick.go
package joystick

import (
	"github.com/0xcafed00d/joystick"
	"github.com/pkg/errors"

	"github.com/tamzrod/droid-bridge/internal/input"
)

// axisScale maps raw driver values onto [-1, 1].
const axisScale = 32767.0

// maxButtons is the width of the driver's button bitmask.
const maxButtons = 32

// Device implements input.Device over the OS joystick driver.
type Device struct {
	js joystick.Joystick
}

// Open opens joystick id. Failure is input-unavailable.
func Open(id int) (*Device, error) {
	js, err := joystick.Open(id)
	if err != nil {
		return nil, errors.Wrapf(input.ErrInputUnavailable, "joystick %d: %v", id, err)
	}
	return newDevice(js), nil
}

func newDevice(js joystick.Joystick) *Device {
	return &Device{js: js}
}

func (d *Device) Name() string { return d.js.Name() }

// Sample reads the current state once and freezes it.
func (d *Device) Sample() (input.Snapshot, error) {
	st, err := d.js.Read()
	if err != nil {
		return input.Snapshot{}, errors.Wrap(err, "joystick: read")
	}

	axes := make([]float64, d.js.AxisCount())
	for i := range axes {
		if i < len(st.AxisData) {
			axes[i] = normalize(st.AxisData[i])
		}
	}

	n := d.js.ButtonCount()
	if n > maxButtons {
		n = maxButtons
	}
	buttons := make([]bool, n)
	for i := range buttons {
		buttons[i] = st.Buttons&(1<<uint(i)) != 0
	}

	return input.Snapshot{Axes: axes, Buttons: buttons}, nil
}

func (d *Device) Close() error {
	d.js.Close()
	return nil
}

func normalize(v int) float64 {
	f := float64(v) / axisScale
	if f > 1 {
		return 1
	}
	if f < -1 {
		return -1
	}
	return f
}
