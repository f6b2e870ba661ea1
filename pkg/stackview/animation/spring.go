package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

// FrameStep is the fixed integration step of spring animations.
const FrameStep = time.Second / 60

type springAnimation struct {
	cfg    SpringConfig
	spring harmonica.Spring
	pos    float64
	vel    float64
	to     float64
	carry  time.Duration
	done   bool
}

func newSpring(cfg SpringConfig, from, to, velocity float64) *springAnimation {
	omega := math.Sqrt(cfg.Stiffness / cfg.Mass)
	zeta := cfg.Damping / (2 * math.Sqrt(cfg.Stiffness*cfg.Mass))

	return &springAnimation{
		cfg:    cfg,
		spring: harmonica.NewSpring(harmonica.FPS(60), omega, zeta),
		pos:    from,
		vel:    velocity,
		to:     to,
	}
}

func (a *springAnimation) Step(dt time.Duration) (float64, bool) {
	if a.done {
		return a.pos, true
	}
	if a.atRest() {
		a.finish()
		return a.pos, true
	}

	a.carry += dt
	for a.carry >= FrameStep {
		a.carry -= FrameStep

		prev := a.pos
		a.pos, a.vel = a.spring.Update(a.pos, a.vel, a.to)

		if a.cfg.OvershootClamping && crossed(prev, a.pos, a.to) {
			a.finish()
			break
		}
		if a.atRest() {
			a.finish()
			break
		}
	}

	return a.pos, a.done
}

func (a *springAnimation) atRest() bool {
	return math.Abs(a.vel) <= a.cfg.RestSpeedThreshold &&
		math.Abs(a.to-a.pos) <= a.cfg.RestDisplacementThreshold
}

func (a *springAnimation) finish() {
	a.pos = a.to
	a.vel = 0
	a.carry = 0
	a.done = true
}

func crossed(prev, next, target float64) bool {
	return (prev < target && next >= target) || (prev > target && next <= target)
}

func (a *springAnimation) Value() float64    { return a.pos }
func (a *springAnimation) Velocity() float64 { return a.vel }
func (a *springAnimation) Target() float64   { return a.to }
func (a *springAnimation) Done() bool        { return a.done }
