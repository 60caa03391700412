// internal/control/mapper.go
package control

import (
	"errors"

	"github.com/tamzrod/droid-bridge/internal/input"
)

// Unwired marks a button or axis that is not mapped to anything.
const Unwired = -1

// LEDMode selects how an LED button advances its LED.
type LEDMode int

const (
	LEDToggle LEDMode = iota // 0 <-> 1
	LEDCycle                 // 0 -> 1 -> 2 -> 3 -> 0
)

// SoundButton binds one button to one sound code.
type SoundButton struct {
	Button int
	Code   uint8
}

// Layout is the physical button/axis assignment.
type Layout struct {
	AxisX     int
	AxisY     int
	HeadAxis  int // Unwired selects the discrete head strategy only
	Sounds    []SoundButton
	HeadLeft  int
	HeadRight int
	LEDBlue   int
	LEDRed    int
}

// DefaultLayout matches a common 8-button pad.
func DefaultLayout() Layout {
	return Layout{
		AxisX:    0,
		AxisY:    1,
		HeadAxis: Unwired,
		Sounds: []SoundButton{
			{Button: 0, Code: 0x0A},
			{Button: 1, Code: 0x08},
			{Button: 2, Code: 0x09},
			{Button: 3, Code: 0x05},
		},
		HeadLeft:  4,
		HeadRight: 5,
		LEDBlue:   6,
		LEDRed:    7,
	}
}

// MapperConfig is the immutable tuning of a Mapper.
type MapperConfig struct {
	Threshold float64
	Layout    Layout
	LEDMode   LEDMode
	Head      HeadCurve
}

// DefaultMapperConfig returns the tuning used when nothing is configured.
func DefaultMapperConfig() MapperConfig {
	return MapperConfig{
		Threshold: 0.7,
		Layout:    DefaultLayout(),
		LEDMode:   LEDToggle,
		Head:      DefaultHeadCurve(),
	}
}

// rule is one (predicate, effect) pair.
type rule struct {
	when func(src input.Source) bool
	then func(s *State)
}

// Mapper turns an input snapshot into a State.
// It holds no state of its own; LED memory lives in the State.
type Mapper struct {
	cfg MapperConfig

	// drive rules: first match wins
	drive []rule

	// overrides: all matching rules apply in order, last write wins
	overrides []rule

	leds []rule
}

// NewMapper builds the rule tables for cfg.
func NewMapper(cfg MapperConfig) (*Mapper, error) {
	if cfg.Threshold <= 0 || cfg.Threshold >= 1 {
		return nil, errors.New("mapper: threshold must be in (0,1)")
	}
	if cfg.Head.LeftMin > cfg.Head.Center || cfg.Head.Center > cfg.Head.RightMax {
		return nil, errors.New("mapper: head curve must satisfy left_min <= center <= right_max")
	}

	m := &Mapper{cfg: cfg}
	l := cfg.Layout
	t := cfg.Threshold

	// ---- drive (priority order) ----
	m.drive = []rule{
		{
			when: func(src input.Source) bool { return src.Axis(l.AxisY) < -t },
			then: func(s *State) { s.SetDrive(MotorForward, MotorForward) },
		},
		{
			when: func(src input.Source) bool { return src.Axis(l.AxisY) > t },
			then: func(s *State) { s.SetDrive(MotorReverse, MotorReverse) },
		},
		{
			when: func(src input.Source) bool { return src.Axis(l.AxisX) < -t },
			then: func(s *State) { s.SetDrive(MotorReverse, MotorForward) },
		},
		{
			when: func(src input.Source) bool { return src.Axis(l.AxisX) > t },
			then: func(s *State) { s.SetDrive(MotorForward, MotorReverse) },
		},
	}

	// ---- overrides (evaluation order is priority, lowest first) ----
	for _, sb := range l.Sounds {
		sb := sb
		m.overrides = append(m.overrides, rule{
			when: pressed(sb.Button),
			then: func(s *State) { s.Sound = sb.Code },
		})
	}

	// head-left is evaluated last so it wins over head-right
	m.overrides = append(m.overrides,
		rule{
			when: pressed(l.HeadRight),
			then: func(s *State) { s.Head = HeadRight },
		},
		rule{
			when: pressed(l.HeadLeft),
			then: func(s *State) { s.Head = HeadLeft },
		},
	)

	// ---- LEDs (level-triggered: advance every tick the button is down) ----
	blue, red := (*State).ToggleBlue, (*State).ToggleRed
	if cfg.LEDMode == LEDCycle {
		blue, red = (*State).CycleBlue, (*State).CycleRed
	}
	m.leds = []rule{
		{when: pressed(l.LEDBlue), then: blue},
		{when: pressed(l.LEDRed), then: red},
	}

	return m, nil
}

// Apply re-derives s from src. LED fields advance from their previous value;
// everything else starts from idle, with the head at the configured center.
func (m *Mapper) Apply(src input.Source, s *State) {
	s.ResetTransient()
	s.Head = m.cfg.Head.Center

	if src.AxisCount() >= 2 {
		for _, r := range m.drive {
			if r.when(src) {
				r.then(s)
				break
			}
		}
	}

	if ax := m.cfg.Layout.HeadAxis; ax >= 0 && ax < src.AxisCount() {
		s.Head = m.cfg.Head.Map(src.Axis(ax))
	}

	for _, r := range m.overrides {
		if r.when(src) {
			r.then(s)
		}
	}

	for _, r := range m.leds {
		if r.when(src) {
			r.then(s)
		}
	}
}

// pressed returns a predicate that is true when button i exists and is down.
func pressed(i int) func(src input.Source) bool {
	return func(src input.Source) bool {
		return i >= 0 && i < src.ButtonCount() && src.Button(i)
	}
}
