// Package gesture turns raw pointer events into drags on a card stack.
package gesture

import (
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
)

type sample struct {
	x, y float64
	at   time.Time
}

// Tracker estimates pointer velocity from the samples of a recent window.
type Tracker struct {
	window  time.Duration
	samples []sample
}

// NewTracker creates a Tracker averaging over window. A non-positive window
// uses the default of 100ms.
func NewTracker(window time.Duration) *Tracker {
	if window <= 0 {
		window = constants.GestureVelocityWindow
	}
	return &Tracker{window: window}
}

// Add records a pointer position and drops samples older than the window.
func (t *Tracker) Add(x, y float64, at time.Time) {
	t.samples = append(t.samples, sample{x: x, y: y, at: at})

	cutoff := at.Add(-t.window)
	drop := 0
	for drop < len(t.samples)-1 && t.samples[drop].at.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		t.samples = append(t.samples[:0], t.samples[drop:]...)
	}
}

// Velocity returns the average velocity in pixels per second across the
// window. It is zero until two samples at different times were added.
func (t *Tracker) Velocity() (vx, vy float64) {
	if len(t.samples) < 2 {
		return 0, 0
	}
	first, last := t.samples[0], t.samples[len(t.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0, 0
	}
	return (last.x - first.x) / dt, (last.y - first.y) / dt
}

// Reset forgets all samples.
func (t *Tracker) Reset() {
	t.samples = t.samples[:0]
}
