package animation

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type timingAnimation struct {
	tween *gween.Tween
	value float64
	vel   float64
	to    float64
	done  bool
}

func newTiming(cfg TimingConfig, from, to float64) *timingAnimation {
	easing := cfg.Easing
	if easing == nil {
		easing = ease.Linear
	}

	a := &timingAnimation{value: from, to: to}
	if cfg.Duration <= 0 || from == to {
		// Nothing to tween; the first Step lands on the target.
		return a
	}
	a.tween = gween.New(float32(from), float32(to), float32(cfg.Duration.Seconds()), easing)
	return a
}

func (a *timingAnimation) Step(dt time.Duration) (float64, bool) {
	if a.done {
		return a.value, true
	}
	if a.tween == nil {
		a.value = a.to
		a.vel = 0
		a.done = true
		return a.value, true
	}

	current, finished := a.tween.Update(float32(dt.Seconds()))
	prev := a.value
	a.value = float64(current)
	if dt > 0 {
		a.vel = (a.value - prev) / dt.Seconds()
	}
	if finished {
		a.value = a.to
		a.vel = 0
		a.done = true
	}
	return a.value, a.done
}

func (a *timingAnimation) Value() float64    { return a.value }
func (a *timingAnimation) Velocity() float64 { return a.vel }
func (a *timingAnimation) Target() float64   { return a.to }
func (a *timingAnimation) Done() bool        { return a.done }
