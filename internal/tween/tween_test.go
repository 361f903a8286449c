package tween

import (
	"math"
	"testing"
	"time"

	"github.com/tanema/gween/ease"
)

const frame = time.Second / 60

// gween works in float32, so compare loosely.
func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-4
}

func TestTweenRunsToEnd(t *testing.T) {
	var alpha float64
	tw := &Tween{Target: &alpha, From: 0, To: 1, Duration: 250 * time.Millisecond, Ease: ease.InOutSine}
	s := NewScheduler()
	s.Play(tw)

	if !tw.Playing() {
		t.Fatal("Expected tween to be playing after Play")
	}
	if s.Active() != 1 {
		t.Fatalf("Expected 1 active tween, got %d", s.Active())
	}

	s.Update(125 * time.Millisecond)
	if !approx(alpha, 0.5) {
		t.Errorf("Expected alpha 0.5 halfway through, got %v", alpha)
	}

	s.Update(200 * time.Millisecond)
	if alpha != 1 {
		t.Errorf("Expected alpha 1 at the end, got %v", alpha)
	}
	if tw.Playing() || s.Active() != 0 {
		t.Errorf("Expected tween retired, playing=%v active=%d", tw.Playing(), s.Active())
	}
}

func TestSineEaseStartsSlow(t *testing.T) {
	var eased, linear float64
	s := NewScheduler()
	s.Play(&Tween{Target: &eased, From: 0, To: 1, Duration: time.Second, Ease: ease.InOutSine})
	s.Play(&Tween{Target: &linear, From: 0, To: 1, Duration: time.Second})

	s.Update(250 * time.Millisecond)
	if !approx(linear, 0.25) {
		t.Errorf("Expected linear default at 0.25, got %v", linear)
	}
	if eased >= linear {
		t.Errorf("Expected sine ease below linear at a quarter, got %v >= %v", eased, linear)
	}
}

func TestTweenFromCurrent(t *testing.T) {
	x := 300.0
	tw := &Tween{Target: &x, To: 100, FromCurrent: true, Duration: 100 * time.Millisecond}
	s := NewScheduler()
	s.Play(tw)

	if x != 300 {
		t.Fatalf("Expected FromCurrent to keep x at 300, got %v", x)
	}
	s.Update(50 * time.Millisecond)
	if !approx(x, 200) {
		t.Errorf("Expected linear midpoint 200, got %v", x)
	}

	// A new destination rebuilds the path from wherever x is now.
	tw.To = 600
	s.Play(tw)
	s.Finish()
	if x != 600 {
		t.Errorf("Expected x at the new destination 600, got %v", x)
	}
}

func TestReplayRestartsInPlace(t *testing.T) {
	var alpha float64
	completed := 0
	tw := &Tween{Target: &alpha, From: 0, To: 1, Duration: 100 * time.Millisecond, OnComplete: func() { completed++ }}
	s := NewScheduler()

	s.Play(tw)
	s.Update(80 * time.Millisecond)
	s.Play(tw)

	if s.Active() != 1 {
		t.Fatalf("Expected replay not to duplicate the tween, got %d active", s.Active())
	}
	if alpha != 0 {
		t.Errorf("Expected replay to reset alpha to 0, got %v", alpha)
	}

	s.Update(80 * time.Millisecond)
	if completed != 0 {
		t.Errorf("Expected restarted tween to still be running, completed=%d", completed)
	}
	s.Update(80 * time.Millisecond)
	if completed != 1 {
		t.Errorf("Expected exactly one completion, got %d", completed)
	}
}

func TestLastPlayedOwnsTarget(t *testing.T) {
	var alpha float64
	in := &Tween{Target: &alpha, From: 0, To: 1, Duration: 250 * time.Millisecond}
	out := &Tween{Target: &alpha, From: 1, To: 0, Duration: 250 * time.Millisecond}
	outDone := 0
	out.OnComplete = func() { outDone++ }
	s := NewScheduler()

	s.Play(in)
	s.Play(out)
	s.Play(in)

	if s.Active() != 1 || out.Playing() {
		t.Fatalf("Expected only the fade-in running, active=%d out=%v", s.Active(), out.Playing())
	}
	s.Finish()
	if alpha != 1 {
		t.Errorf("Expected alpha 1 after Finish, got %v", alpha)
	}
	if outDone != 0 {
		t.Errorf("Expected the dropped tween not to complete, got %d", outDone)
	}

	s.Play(out)
	s.Play(in)
	for i := 0; i < 60; i++ {
		s.Update(frame)
	}
	if alpha != 1 {
		t.Errorf("Expected alpha 1 after a second of ticks, got %v", alpha)
	}
}

func TestFinishJumpsToEnd(t *testing.T) {
	var a, b float64
	s := NewScheduler()
	s.Play(&Tween{Target: &a, From: 0, To: 1, Duration: time.Second})
	s.Play(&Tween{Target: &b, From: 10, To: 640, Duration: time.Second})

	s.Update(frame)
	s.Finish()

	if a != 1 || b != 640 {
		t.Errorf("Expected tweens at end values, got a=%v b=%v", a, b)
	}
	if s.Active() != 0 {
		t.Errorf("Expected no active tweens after Finish, got %d", s.Active())
	}
}

func TestZeroDurationCompletesOnNextUpdate(t *testing.T) {
	var v float64
	tw := &Tween{Target: &v, From: 5, To: 9}
	s := NewScheduler()
	s.Play(tw)
	if v != 5 {
		t.Fatalf("Expected start value 5, got %v", v)
	}
	s.Update(frame)
	if v != 9 || tw.Playing() {
		t.Errorf("Expected zero-length tween finished at 9, got %v playing=%v", v, tw.Playing())
	}
}
