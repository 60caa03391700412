// internal/sampler/sampler_test.go
package sampler

import (
	"errors"
	"testing"

	"github.com/tamzrod/droid-bridge/internal/control"
	"github.com/tamzrod/droid-bridge/internal/input"
)

type fakePoller struct {
	snaps []input.Snapshot
	fail  bool
	calls int
}

func (f *fakePoller) Sample() (input.Snapshot, error) {
	f.calls++
	if f.fail {
		return input.Snapshot{}, errors.New("unplugged")
	}
	if len(f.snaps) == 0 {
		return input.Snapshot{}, nil
	}
	s := f.snaps[0]
	if len(f.snaps) > 1 {
		f.snaps = f.snaps[1:]
	}
	return s, nil
}

func newMapper(t *testing.T) *control.Mapper {
	t.Helper()
	m, err := control.NewMapper(control.DefaultMapperConfig())
	if err != nil {
		t.Fatalf("NewMapper() err=%v", err)
	}
	return m
}

func TestNext_EncodesMappedState(t *testing.T) {
	p := &fakePoller{snaps: []input.Snapshot{
		{Axes: []float64{0, -1}, Buttons: make([]bool, 8)},
	}}

	s, err := New(p, newMapper(t))
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	f, err := s.Next()
	if err != nil {
		t.Fatalf("Next() err=%v", err)
	}
	if f[control.OffsetMotor1] != control.MotorForward || f[control.OffsetMotor2] != control.MotorForward {
		t.Fatalf("expected forward in frame, got %v", f)
	}
	if p.calls != 1 {
		t.Fatalf("expected exactly one poll, got %d", p.calls)
	}
}

func TestNext_LEDPersistsAcrossTicks(t *testing.T) {
	held := input.Snapshot{Axes: []float64{0, 0}, Buttons: make([]bool, 8)}
	held.Buttons[6] = true
	released := input.Snapshot{Axes: []float64{0, 0}, Buttons: make([]bool, 8)}

	p := &fakePoller{snaps: []input.Snapshot{held, released}}

	s, err := New(p, newMapper(t))
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if _, err := s.Next(); err != nil {
		t.Fatalf("Next() err=%v", err)
	}
	f, err := s.Next()
	if err != nil {
		t.Fatalf("Next() err=%v", err)
	}
	if f[control.OffsetLEDBlue] != 1 {
		t.Fatalf("blue LED lost across ticks: got=%d", f[control.OffsetLEDBlue])
	}
}

func TestNext_PollFailure(t *testing.T) {
	s, err := New(&fakePoller{fail: true}, newMapper(t))
	if err != nil {
		t.Fatalf("New() err=%v", err)
	}

	if _, err := s.Next(); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if s.State() != control.NewState() {
		t.Fatalf("state changed on failed poll: %+v", s.State())
	}
}

func TestNew_RequiresCollaborators(t *testing.T) {
	if _, err := New(nil, newMapper(t)); err == nil {
		t.Fatalf("expected error for nil poller")
	}
	if _, err := New(&fakePoller{}, nil); err == nil {
		t.Fatalf("expected error for nil mapper")
	}
}
