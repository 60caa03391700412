// internal/control/head.go
package control

import "math"

// HeadCurve shapes a continuous head axis into a position code.
type HeadCurve struct {
	Deadzone float64
	Gamma    float64
	LeftMin  uint8
	Center   uint8
	RightMax uint8
}

// DefaultHeadCurve spans the same range as the discrete head buttons.
func DefaultHeadCurve() HeadCurve {
	return HeadCurve{
		Deadzone: 0.05,
		Gamma:    2.0,
		LeftMin:  HeadLeft,
		Center:   HeadCenter,
		RightMax: HeadRight,
	}
}

// Map converts an axis value in [-1, 1] into a code in [LeftMin, RightMax].
// Values inside the deadzone map exactly to Center.
func (c HeadCurve) Map(v float64) uint8 {
	if math.IsNaN(v) || math.Abs(v) < c.Deadzone {
		return c.Center
	}
	v = math.Max(-1, math.Min(1, v))

	shaped := math.Copysign(math.Pow(math.Abs(v), c.Gamma), v)

	center := float64(c.Center)
	var pos float64
	if shaped < 0 {
		pos = center + shaped*(center-float64(c.LeftMin))
	} else {
		pos = center + shaped*(float64(c.RightMax)-center)
	}
	return uint8(math.Round(pos))
}
