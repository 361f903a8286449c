// Package tween animates float properties over time on top of gween.
// Tweens are persistent: they are built once, then played as many times as
// needed. Playing a tween that is already running restarts it in place.
package tween

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Tween drives *Target from a start value to To over Duration.
type Tween struct {
	Target *float64
	From   float64
	To     float64
	// FromCurrent starts from whatever *Target holds when the tween is
	// played instead of From.
	FromCurrent bool
	Duration    time.Duration
	// Ease defaults to ease.Linear.
	Ease ease.TweenFunc
	// OnComplete runs once each time the tween reaches its end.
	OnComplete func()

	g          *gween.Tween
	start, end float64
	playing    bool
}

// Playing reports whether the tween is currently running.
func (t *Tween) Playing() bool {
	return t.playing
}

// restart rewinds the tween. The underlying gween tween is reused while its
// endpoints are unchanged and rebuilt otherwise.
func (t *Tween) restart() {
	start := t.From
	if t.FromCurrent {
		start = *t.Target
	}
	if t.g == nil || start != t.start || t.To != t.end {
		fn := t.Ease
		if fn == nil {
			fn = ease.Linear
		}
		t.g = gween.New(float32(start), float32(t.To), float32(t.Duration.Seconds()), fn)
		t.start, t.end = start, t.To
	} else {
		t.g.Reset()
	}
	t.playing = true
	*t.Target = start
}

// step advances the tween by dt and reports whether it has finished.
func (t *Tween) step(dt time.Duration) bool {
	if !t.playing {
		return true
	}
	if t.Duration <= 0 {
		t.finish()
		return true
	}
	v, done := t.g.Update(float32(dt.Seconds()))
	if done {
		t.finish()
		return true
	}
	*t.Target = float64(v)
	return false
}

func (t *Tween) finish() {
	if t.g != nil {
		t.g.Set(float32(t.Duration.Seconds()))
	}
	t.playing = false
	*t.Target = t.end
}
