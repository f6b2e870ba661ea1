// Package animation is the value engine behind card transitions.
//
// A Spec describes how a progress value travels toward a target, either as a
// damped spring or as an eased timing curve. Start turns a Spec into a running
// Animation seeded with the value (and velocity) the caller currently holds,
// so retargeting an in-flight transition never jumps.
//
// Animations are advanced explicitly, one frame at a time, by whoever owns the
// render loop:
//
//	anim := spec.Start(progress, 1, 0)
//	for !anim.Done() {
//	    value, _ := anim.Step(frameTime)
//	    draw(value)
//	}
package animation

import (
	"errors"
	"fmt"
	"time"

	"github.com/tanema/gween/ease"
)

// Kind selects the animation driver of a Spec.
type Kind int

const (
	KindSpring Kind = iota // Damped harmonic oscillator
	KindTiming             // Fixed duration with an easing curve
)

func (k Kind) String() string {
	switch k {
	case KindSpring:
		return "spring"
	case KindTiming:
		return "timing"
	default:
		return "unknown"
	}
}

// SpringConfig holds physical spring parameters.
type SpringConfig struct {
	Damping                   float64 // Friction coefficient
	Mass                      float64 // Mass attached to the spring
	Stiffness                 float64 // Spring constant
	RestSpeedThreshold        float64 // Below this speed (progress/s) the spring may rest
	RestDisplacementThreshold float64 // Below this distance from the target the spring may rest
	OvershootClamping         bool    // Stop as soon as the target is crossed
}

// TimingConfig holds the parameters of an eased timing curve.
type TimingConfig struct {
	Duration time.Duration
	Easing   ease.TweenFunc // nil means linear
}

// Spec is a declarative animation description.
type Spec struct {
	Kind   Kind
	Spring SpringConfig
	Timing TimingConfig
}

// Spring creates a spring Spec.
func Spring(cfg SpringConfig) Spec {
	return Spec{Kind: KindSpring, Spring: cfg}
}

// Timing creates a timing Spec.
func Timing(cfg TimingConfig) Spec {
	return Spec{Kind: KindTiming, Timing: cfg}
}

var (
	ErrInvalidSpring = errors.New("invalid spring config")
	ErrInvalidTiming = errors.New("invalid timing config")
)

// Validate reports whether the Spec can be started.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindSpring:
		if s.Spring.Mass <= 0 || s.Spring.Stiffness <= 0 {
			return fmt.Errorf("%w: mass and stiffness must be positive", ErrInvalidSpring)
		}
		if s.Spring.Damping < 0 {
			return fmt.Errorf("%w: damping must not be negative", ErrInvalidSpring)
		}
		if s.Spring.RestSpeedThreshold < 0 || s.Spring.RestDisplacementThreshold < 0 {
			return fmt.Errorf("%w: rest thresholds must not be negative", ErrInvalidSpring)
		}
		return nil
	case KindTiming:
		if s.Timing.Duration < 0 {
			return fmt.Errorf("%w: duration must not be negative", ErrInvalidTiming)
		}
		return nil
	default:
		return fmt.Errorf("unknown animation kind %d", s.Kind)
	}
}

// IsZero reports whether the Spec was never configured.
func (s Spec) IsZero() bool {
	return s.Kind == KindSpring && s.Spring == (SpringConfig{}) &&
		s.Timing.Duration == 0 && s.Timing.Easing == nil
}

// Start begins an animation from the given value and velocity (progress units
// per second) toward the target. The returned Animation reports from as its
// value until the first Step.
func (s Spec) Start(from, to, velocity float64) Animation {
	switch s.Kind {
	case KindTiming:
		return newTiming(s.Timing, from, to)
	default:
		return newSpring(s.Spring, from, to, velocity)
	}
}

// Animation is a running transition of a single value.
type Animation interface {
	// Step advances the animation by dt and returns the new value.
	Step(dt time.Duration) (value float64, done bool)
	Value() float64
	// Velocity is the current rate of change in units per second.
	Velocity() float64
	Target() float64
	Done() bool
}
