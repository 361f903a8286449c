package tween

import "time"

// Scheduler runs every active tween once per tick.
// It is not safe for concurrent use; it belongs to the game loop.
type Scheduler struct {
	active []*Tween
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Play starts t from the beginning. A tween that is already running is
// restarted rather than queued twice, and any other running tween on the
// same Target is dropped without completing: the last one played owns it.
func (s *Scheduler) Play(t *Tween) {
	kept := s.active[:0]
	for _, a := range s.active {
		if a == t || a.Target == t.Target {
			a.playing = false
			continue
		}
		kept = append(kept, a)
	}
	clear(s.active[len(kept):])
	s.active = append(kept, t)
	t.restart()
}

// Update advances all running tweens by dt and retires finished ones.
func (s *Scheduler) Update(dt time.Duration) {
	var done []*Tween
	kept := s.active[:0]
	for _, t := range s.active {
		if t.step(dt) {
			done = append(done, t)
			continue
		}
		kept = append(kept, t)
	}
	clear(s.active[len(kept):])
	s.active = kept

	for _, t := range done {
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// Finish jumps every running tween to its end value.
func (s *Scheduler) Finish() {
	done := s.active
	s.active = nil
	for _, t := range done {
		t.finish()
	}
	for _, t := range done {
		if t.OnComplete != nil {
			t.OnComplete()
		}
	}
}

// Active returns the number of running tweens.
func (s *Scheduler) Active() int {
	return len(s.active)
}
