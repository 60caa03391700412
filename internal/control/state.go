// internal/control/state.go
package control

// Motor direction codes.
const (
	MotorStop    uint8 = 0x00
	MotorForward uint8 = 0x01
	MotorReverse uint8 = 0x02
)

// SpeedCruise is the only speed the droid is ever driven at.
// The peer ignores speed while the motor code is MotorStop.
const SpeedCruise uint8 = 0x03

// Head position codes for the discrete (button) strategy.
const (
	HeadLeft   uint8 = 0x04
	HeadCenter uint8 = 0x14
	HeadRight  uint8 = 0x24
)

// SoundNone means no sound is triggered this tick.
const SoundNone uint8 = 0x00

// ledCycle is the fixed sequence walked by cycling LEDs.
var ledCycle = [...]uint8{0, 1, 2, 3}

// State is the desired droid state for the current tick.
// It is owned by exactly one driving loop.
type State struct {
	Sound  uint8
	Motor1 uint8
	Speed1 uint8
	Motor2 uint8
	Speed2 uint8
	Head   uint8

	// LED fields persist across ResetTransient.
	LEDBlue uint8
	LEDRed  uint8
}

// NewState returns the power-on state: everything idle, head centered.
func NewState() State {
	return State{Head: HeadCenter}
}

// ResetTransient re-derives every per-tick field to its idle default.
// LED fields are not touched.
func (s *State) ResetTransient() {
	s.Motor1, s.Motor2 = MotorStop, MotorStop
	s.Speed1, s.Speed2 = SpeedCruise, SpeedCruise
	s.Head = HeadCenter
	s.Sound = SoundNone
}

// SetDrive sets both track directions.
func (s *State) SetDrive(motor1, motor2 uint8) {
	s.Motor1 = motor1
	s.Motor2 = motor2
}

// ToggleBlue flips the blue LED between 0 and 1.
func (s *State) ToggleBlue() { s.LEDBlue ^= 0x01 }

// ToggleRed flips the red LED between 0 and 1.
func (s *State) ToggleRed() { s.LEDRed ^= 0x01 }

// CycleBlue advances the blue LED one step through the cycle.
func (s *State) CycleBlue() { s.LEDBlue = nextInCycle(s.LEDBlue) }

// CycleRed advances the red LED one step through the cycle.
func (s *State) CycleRed() { s.LEDRed = nextInCycle(s.LEDRed) }

// nextInCycle returns the successor of v in ledCycle.
// A value outside the cycle restarts it.
func nextInCycle(v uint8) uint8 {
	for i, c := range ledCycle {
		if c == v {
			return ledCycle[(i+1)%len(ledCycle)]
		}
	}
	return ledCycle[0]
}
