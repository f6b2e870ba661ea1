package gesture

import "time"

// Kind identifies a pointer event.
type Kind int

const (
	KindDown Kind = iota
	KindMove
	KindUp
	KindCancel
)

func (k Kind) String() string {
	switch k {
	case KindDown:
		return "down"
	case KindMove:
		return "move"
	case KindUp:
		return "up"
	case KindCancel:
		return "cancel"
	default:
		return ""
	}
}

// Event is a single pointer sample in window coordinates.
type Event struct {
	Kind Kind
	X, Y float64
	At   time.Time
}

// Target receives drags. *stackview.Coordinator implements it.
type Target interface {
	BeginGesture(x, y float64) bool
	UpdateGesture(dx, dy float64)
	EndGesture(vx, vy float64) bool
	CancelGesture()
}

// Driver feeds pointer events to a Target, tracking translation from the
// point the drag began and release velocity.
type Driver struct {
	target  Target
	tracker *Tracker
	active  bool
	startX  float64
	startY  float64
}

// NewDriver creates a Driver for target. window is the velocity window; zero
// uses the default.
func NewDriver(target Target, window time.Duration) *Driver {
	return &Driver{
		target:  target,
		tracker: NewTracker(window),
	}
}

// Active reports whether a drag is in progress.
func (d *Driver) Active() bool {
	return d.active
}

// Handle applies one event. It reports whether the event belonged to a drag
// so callers can skip their own pointer handling.
func (d *Driver) Handle(ev Event) bool {
	switch ev.Kind {
	case KindDown:
		if d.active {
			return true
		}
		if !d.target.BeginGesture(ev.X, ev.Y) {
			return false
		}
		d.active = true
		d.startX, d.startY = ev.X, ev.Y
		d.tracker.Reset()
		d.tracker.Add(ev.X, ev.Y, ev.At)
		return true

	case KindMove:
		if !d.active {
			return false
		}
		d.tracker.Add(ev.X, ev.Y, ev.At)
		d.target.UpdateGesture(ev.X-d.startX, ev.Y-d.startY)
		return true

	case KindUp:
		if !d.active {
			return false
		}
		d.tracker.Add(ev.X, ev.Y, ev.At)
		d.target.UpdateGesture(ev.X-d.startX, ev.Y-d.startY)
		vx, vy := d.tracker.Velocity()
		d.active = false
		d.target.EndGesture(vx, vy)
		return true

	case KindCancel:
		if !d.active {
			return false
		}
		d.active = false
		d.target.CancelGesture()
		return true
	}
	return false
}

// Drain handles every event waiting on events without blocking.
func (d *Driver) Drain(events <-chan Event) {
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return
			}
			d.Handle(ev)
		default:
			return
		}
	}
}
