// internal/sampler/builder.go
package sampler

import (
	cfg "github.com/tamzrod/droid-bridge/internal/config"
	"github.com/tamzrod/droid-bridge/internal/control"
	"github.com/tamzrod/droid-bridge/internal/input"
	"github.com/tamzrod/droid-bridge/internal/input/joystick"
)

// MapperConfig translates a normalized input section into mapper tuning.
func MapperConfig(in cfg.InputConfig) control.MapperConfig {
	mc := control.DefaultMapperConfig()

	if in.AxisThreshold != 0 {
		mc.Threshold = in.AxisThreshold
	}

	l := &mc.Layout
	pick(&l.AxisX, in.AxisX)
	pick(&l.AxisY, in.AxisY)
	pick(&l.HeadAxis, in.HeadAxis)
	pick(&l.HeadLeft, in.Buttons.HeadLeft)
	pick(&l.HeadRight, in.Buttons.HeadRight)
	pick(&l.LEDBlue, in.Buttons.LEDBlue)
	pick(&l.LEDRed, in.Buttons.LEDRed)

	if len(in.Buttons.Sounds) > 0 {
		l.Sounds = make([]control.SoundButton, 0, len(in.Buttons.Sounds))
		for _, s := range in.Buttons.Sounds {
			l.Sounds = append(l.Sounds, control.SoundButton{Button: s.Button, Code: s.Code})
		}
	}

	if in.LEDMode == cfg.LEDModeCycle {
		mc.LEDMode = control.LEDCycle
	}

	hc := in.HeadCurve
	if hc.Deadzone != nil {
		mc.Head.Deadzone = *hc.Deadzone
	}
	if hc.Gamma != nil {
		mc.Head.Gamma = *hc.Gamma
	}
	if hc.LeftMin != nil {
		mc.Head.LeftMin = *hc.LeftMin
	}
	if hc.Center != nil {
		mc.Head.Center = *hc.Center
	}
	if hc.RightMax != nil {
		mc.Head.RightMax = *hc.RightMax
	}

	return mc
}

// Build opens the configured gamepad and wires a sampler on top of it.
// The device must expose both drive axes at startup (fail fast).
// The returned closer releases the device.
func Build(in cfg.InputConfig) (*Sampler, func() error, error) {
	m, err := control.NewMapper(MapperConfig(in))
	if err != nil {
		return nil, nil, err
	}

	dev, err := joystick.Open(in.Device)
	if err != nil {
		return nil, nil, err
	}

	snap, err := dev.Sample()
	if err == nil {
		err = input.Require(snap, 2)
	}
	if err != nil {
		_ = dev.Close()
		return nil, nil, err
	}

	s, err := New(dev, m)
	if err != nil {
		_ = dev.Close()
		return nil, nil, err
	}
	return s, dev.Close, nil
}

func pick(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
