// Package touch reads a Linux touchscreen through evdev and turns its reports
// into gesture events, for devices where SDL does not see the panel.
package touch

import (
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview/gesture"
	"github.com/holoplot/go-evdev"
)

// Axis is the raw range of one absolute axis.
type Axis struct {
	Min int32
	Max int32
}

func (a Axis) scale(raw int32, size float64) float64 {
	span := a.Max - a.Min
	if span <= 0 {
		return float64(raw)
	}
	return float64(raw-a.Min) / float64(span) * size
}

// Decoder folds evdev events into one pointer. It follows the first contact
// only and emits at most one gesture event per SYN_REPORT.
type Decoder struct {
	x, y          Axis
	width, height float64

	rawX, rawY int32
	touching   bool
	reported   bool
	moved      bool
}

// NewDecoder creates a Decoder mapping the x and y axes onto a surface of
// width by height pixels.
func NewDecoder(x, y Axis, width, height float64) *Decoder {
	return &Decoder{x: x, y: y, width: width, height: height}
}

// Feed applies one event. It returns a gesture event when a report completes
// a touch down, a move or a lift.
func (d *Decoder) Feed(ev evdev.InputEvent, at time.Time) (gesture.Event, bool) {
	switch ev.Type {
	case evdev.EV_ABS:
		switch ev.Code {
		case evdev.ABS_MT_POSITION_X, evdev.ABS_X:
			if ev.Value != d.rawX {
				d.rawX = ev.Value
				d.moved = true
			}
		case evdev.ABS_MT_POSITION_Y, evdev.ABS_Y:
			if ev.Value != d.rawY {
				d.rawY = ev.Value
				d.moved = true
			}
		case evdev.ABS_MT_TRACKING_ID:
			d.touching = ev.Value >= 0
		}

	case evdev.EV_KEY:
		if ev.Code == evdev.BTN_TOUCH {
			d.touching = ev.Value != 0
		}

	case evdev.EV_SYN:
		if ev.Code == evdev.SYN_REPORT {
			return d.report(at)
		}
	}
	return gesture.Event{}, false
}

func (d *Decoder) report(at time.Time) (gesture.Event, bool) {
	ev := gesture.Event{
		X:  d.x.scale(d.rawX, d.width),
		Y:  d.y.scale(d.rawY, d.height),
		At: at,
	}
	moved := d.moved
	d.moved = false

	switch {
	case d.touching && !d.reported:
		d.reported = true
		ev.Kind = gesture.KindDown
	case d.touching && moved:
		ev.Kind = gesture.KindMove
	case !d.touching && d.reported:
		d.reported = false
		ev.Kind = gesture.KindUp
	default:
		return gesture.Event{}, false
	}
	return ev, true
}
