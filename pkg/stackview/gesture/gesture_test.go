package gesture

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return epoch.Add(time.Duration(ms) * time.Millisecond)
}

type fakeTarget struct {
	accept   bool
	began    [][2]float64
	updates  [][2]float64
	ended    [][2]float64
	canceled int
}

func (f *fakeTarget) BeginGesture(x, y float64) bool {
	f.began = append(f.began, [2]float64{x, y})
	return f.accept
}

func (f *fakeTarget) UpdateGesture(dx, dy float64) {
	f.updates = append(f.updates, [2]float64{dx, dy})
}

func (f *fakeTarget) EndGesture(vx, vy float64) bool {
	f.ended = append(f.ended, [2]float64{vx, vy})
	return true
}

func (f *fakeTarget) CancelGesture() { f.canceled++ }

func TestTracker_Velocity(t *testing.T) {
	tr := NewTracker(100 * time.Millisecond)
	vx, vy := tr.Velocity()
	assert.Zero(t, vx)
	assert.Zero(t, vy)

	tr.Add(0, 0, at(0))
	tr.Add(10, 5, at(20))
	tr.Add(20, 10, at(40))

	vx, vy = tr.Velocity()
	assert.InDelta(t, 500, vx, 1e-6)
	assert.InDelta(t, 250, vy, 1e-6)
}

func TestTracker_DropsOldSamples(t *testing.T) {
	tr := NewTracker(100 * time.Millisecond)
	tr.Add(0, 0, at(0))
	tr.Add(200, 0, at(50))
	tr.Add(200, 0, at(300))
	tr.Add(210, 0, at(350))

	vx, _ := tr.Velocity()
	assert.InDelta(t, 200, vx, 1e-6, "only the last 100ms count")
}

func TestTracker_SameInstant(t *testing.T) {
	tr := NewTracker(0)
	tr.Add(0, 0, at(10))
	tr.Add(50, 0, at(10))

	vx, _ := tr.Velocity()
	assert.Zero(t, vx)
}

func TestDriver_FullDrag(t *testing.T) {
	target := &fakeTarget{accept: true}
	d := NewDriver(target, 100*time.Millisecond)

	assert.True(t, d.Handle(Event{Kind: KindDown, X: 10, Y: 300, At: at(0)}))
	assert.True(t, d.Active())
	assert.True(t, d.Handle(Event{Kind: KindMove, X: 60, Y: 302, At: at(50)}))
	assert.True(t, d.Handle(Event{Kind: KindUp, X: 110, Y: 304, At: at(100)}))
	assert.False(t, d.Active())

	assert.Equal(t, [][2]float64{{10, 300}}, target.began)
	assert.Equal(t, [][2]float64{{50, 2}, {100, 4}}, target.updates)
	require.Len(t, target.ended, 1)
	assert.InDelta(t, 1000, target.ended[0][0], 1e-6)
	assert.InDelta(t, 40, target.ended[0][1], 1e-6)
}

func TestDriver_RejectedDown(t *testing.T) {
	target := &fakeTarget{accept: false}
	d := NewDriver(target, 0)

	assert.False(t, d.Handle(Event{Kind: KindDown, X: 200, Y: 200, At: at(0)}))
	assert.False(t, d.Handle(Event{Kind: KindMove, X: 250, Y: 200, At: at(10)}))
	assert.False(t, d.Handle(Event{Kind: KindUp, X: 250, Y: 200, At: at(20)}))

	assert.Empty(t, target.updates)
	assert.Empty(t, target.ended)
}

func TestDriver_Cancel(t *testing.T) {
	target := &fakeTarget{accept: true}
	d := NewDriver(target, 0)

	d.Handle(Event{Kind: KindDown, X: 5, Y: 5, At: at(0)})
	assert.True(t, d.Handle(Event{Kind: KindCancel, At: at(10)}))
	assert.False(t, d.Handle(Event{Kind: KindCancel, At: at(20)}))
	assert.Equal(t, 1, target.canceled)
	assert.Empty(t, target.ended)
}

func TestDriver_Drain(t *testing.T) {
	target := &fakeTarget{accept: true}
	d := NewDriver(target, 0)

	events := make(chan Event, 4)
	events <- Event{Kind: KindDown, X: 1, Y: 1, At: at(0)}
	events <- Event{Kind: KindMove, X: 11, Y: 1, At: at(16)}
	d.Drain(events)

	assert.True(t, d.Active())
	assert.Len(t, target.updates, 1)

	close(events)
	assert.NotPanics(t, func() { d.Drain(events) })
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "down", KindDown.String())
	assert.Equal(t, "cancel", KindCancel.String())
	assert.Equal(t, "", Kind(9).String())
}
