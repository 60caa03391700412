// internal/control/mapper_test.go
package control

import (
	"testing"

	"github.com/tamzrod/droid-bridge/internal/input"
)

// ---- helpers ----

func newMapper(t *testing.T, mutate func(c *MapperConfig)) *Mapper {
	t.Helper()

	cfg := DefaultMapperConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	m, err := NewMapper(cfg)
	if err != nil {
		t.Fatalf("NewMapper() err=%v", err)
	}
	return m
}

func pad(x, y float64, down ...int) input.Snapshot {
	s := input.Snapshot{
		Axes:    []float64{x, y},
		Buttons: make([]bool, 8),
	}
	for _, b := range down {
		s.Buttons[b] = true
	}
	return s
}

// ---- tests ----

func TestApply_DrivePriority(t *testing.T) {
	m := newMapper(t, nil)

	cases := []struct {
		name   string
		x, y   float64
		m1, m2 uint8
	}{
		{"forward beats pivot", 0.9, -0.9, MotorForward, MotorForward},
		{"reverse", 0, 0.9, MotorReverse, MotorReverse},
		{"pivot left", -0.9, 0, MotorReverse, MotorForward},
		{"pivot right", 0.9, 0, MotorForward, MotorReverse},
		{"inside threshold", 0.6, -0.6, MotorStop, MotorStop},
	}

	for _, tc := range cases {
		s := NewState()
		m.Apply(pad(tc.x, tc.y), &s)

		if s.Motor1 != tc.m1 || s.Motor2 != tc.m2 {
			t.Fatalf("%s: got motors=(%d,%d) want=(%d,%d)", tc.name, s.Motor1, s.Motor2, tc.m1, tc.m2)
		}
		if s.Speed1 != SpeedCruise || s.Speed2 != SpeedCruise {
			t.Fatalf("%s: speeds must be cruise, got (%d,%d)", tc.name, s.Speed1, s.Speed2)
		}
	}
}

func TestApply_NoDriveWithOneAxis(t *testing.T) {
	m := newMapper(t, nil)

	s := NewState()
	m.Apply(input.Snapshot{Axes: []float64{0.9}}, &s)

	if s.Motor1 != MotorStop || s.Motor2 != MotorStop {
		t.Fatalf("expected idle motors with one axis, got %+v", s)
	}
}

func TestApply_StatelessAcrossTicks(t *testing.T) {
	m := newMapper(t, nil)

	s := NewState()
	m.Apply(pad(0, -1, 0, 4), &s)
	m.Apply(pad(0, 0), &s)

	if s.Motor1 != MotorStop || s.Sound != SoundNone || s.Head != HeadCenter {
		t.Fatalf("stale command survived a tick: %+v", s)
	}
}

func TestApply_SoundLaterButtonWins(t *testing.T) {
	m := newMapper(t, nil)

	s := NewState()
	m.Apply(pad(0, 0, 0, 2), &s)
	if s.Sound != 0x09 {
		t.Fatalf("got sound=%#x want=0x09", s.Sound)
	}

	m.Apply(pad(0, 0, 0, 1, 2, 3), &s)
	if s.Sound != 0x05 {
		t.Fatalf("got sound=%#x want=0x05", s.Sound)
	}

	m.Apply(pad(0, 0, 0), &s)
	if s.Sound != 0x0A {
		t.Fatalf("got sound=%#x want=0x0a", s.Sound)
	}
}

func TestApply_HeadDiscrete(t *testing.T) {
	m := newMapper(t, nil)

	s := NewState()
	m.Apply(pad(0, 0, 4), &s)
	if s.Head != HeadLeft {
		t.Fatalf("left: got=%#x", s.Head)
	}

	m.Apply(pad(0, 0, 5), &s)
	if s.Head != HeadRight {
		t.Fatalf("right: got=%#x", s.Head)
	}

	m.Apply(pad(0, 0, 4, 5), &s)
	if s.Head != HeadLeft {
		t.Fatalf("both pressed: left must win, got=%#x", s.Head)
	}
}

func TestApply_HeadContinuousWithButtonOverride(t *testing.T) {
	m := newMapper(t, func(c *MapperConfig) { c.Layout.HeadAxis = 2 })

	snap := input.Snapshot{
		Axes:    []float64{0, 0, 1.0},
		Buttons: make([]bool, 8),
	}

	s := NewState()
	m.Apply(snap, &s)
	if s.Head != HeadRight {
		t.Fatalf("axis full right: got=%#x want=%#x", s.Head, HeadRight)
	}

	snap.Buttons[4] = true
	m.Apply(snap, &s)
	if s.Head != HeadLeft {
		t.Fatalf("button must override axis: got=%#x want=%#x", s.Head, HeadLeft)
	}
}

func TestApply_LEDToggleLevelTriggered(t *testing.T) {
	m := newMapper(t, nil)

	s := NewState()
	m.Apply(pad(0, 0, 6), &s)
	if s.LEDBlue != 1 {
		t.Fatalf("first held tick: got=%d want=1", s.LEDBlue)
	}
	m.Apply(pad(0, 0, 6), &s)
	if s.LEDBlue != 0 {
		t.Fatalf("second held tick: got=%d want=0", s.LEDBlue)
	}
	m.Apply(pad(0, 0), &s)
	if s.LEDBlue != 0 {
		t.Fatalf("released: got=%d want=0", s.LEDBlue)
	}
}

func TestApply_LEDCycleWrap(t *testing.T) {
	m := newMapper(t, func(c *MapperConfig) { c.LEDMode = LEDCycle })

	s := NewState()
	for i := 1; i <= 4; i++ {
		m.Apply(pad(0, 0, 7), &s)
		if want := uint8(i % 4); s.LEDRed != want {
			t.Fatalf("tick %d: got=%d want=%d", i, s.LEDRed, want)
		}
	}
	if s.LEDBlue != 0 {
		t.Fatalf("blue LED moved without its button: %d", s.LEDBlue)
	}
}

func TestApply_MissingButtonsAreAbsent(t *testing.T) {
	m := newMapper(t, nil)

	s := NewState()
	m.Apply(input.Snapshot{Axes: []float64{0, 0}, Buttons: []bool{false, true}}, &s)

	if s.Sound != 0x08 {
		t.Fatalf("got sound=%#x want=0x08", s.Sound)
	}
	if s.Head != HeadCenter || s.LEDBlue != 0 || s.LEDRed != 0 {
		t.Fatalf("absent buttons must not act: %+v", s)
	}
}

func TestApply_IdleHeadFollowsConfiguredCenter(t *testing.T) {
	m := newMapper(t, func(c *MapperConfig) { c.Head.Center = 0x10 })

	s := NewState()
	m.Apply(pad(0, 0), &s)
	if s.Head != 0x10 {
		t.Fatalf("idle head: got=%#x want=0x10", s.Head)
	}

	// discrete buttons still drive the fixed end codes
	m.Apply(pad(0, 0, 5), &s)
	if s.Head != HeadRight {
		t.Fatalf("right: got=%#x want=%#x", s.Head, HeadRight)
	}
	m.Apply(pad(0, 0), &s)
	if s.Head != 0x10 {
		t.Fatalf("back to idle: got=%#x want=0x10", s.Head)
	}
}

func TestNewMapper_RejectsBadThreshold(t *testing.T) {
	cfg := DefaultMapperConfig()
	cfg.Threshold = 1.5

	if _, err := NewMapper(cfg); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
