package metrics

import (
	"testing"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/animation"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserver_TransitionLifecycle(t *testing.T) {
	o := New(prometheus.NewRegistry())
	clock := time.Unix(0, 0)
	o.now = func() time.Time { return clock }

	route := stackview.Route{Key: "b"}
	o.TransitionStarted(route, false, false)
	o.TransitionStarted(route, true, true)
	assert.Equal(t, 1.0, testutil.ToFloat64(o.inProgress))

	clock = clock.Add(300 * time.Millisecond)
	o.TransitionCompleted(route, true)

	assert.Equal(t, 1.0, testutil.ToFloat64(o.started.WithLabelValues("open", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.started.WithLabelValues("close", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.completed.WithLabelValues("close")))
	assert.Equal(t, 0.0, testutil.ToFloat64(o.inProgress))
	assert.Equal(t, 1, testutil.CollectAndCount(o.duration))
}

func TestObserver_GesturesAndActions(t *testing.T) {
	o := New(prometheus.NewRegistry())

	o.GestureFinished(stackview.Route{Key: "b"}, true)
	o.GestureFinished(stackview.Route{Key: "b"}, false)
	o.GestureFinished(stackview.Route{Key: "c"}, false)

	o.ActionDispatched(stackview.PopAction{Key: "b"}, nil)
	o.ActionDispatched(stackview.PopAction{Key: "a"}, stackview.ErrPopDenied)
	o.ActionDispatched(stackview.PopAction{Key: "b", Immediate: true}, nil)
	o.ActionDispatched(stackview.CompleteTransitionAction{Key: "b"}, nil)

	assert.Equal(t, 1.0, testutil.ToFloat64(o.gestures.WithLabelValues("dismissed")))
	assert.Equal(t, 2.0, testutil.ToFloat64(o.gestures.WithLabelValues("canceled")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.actions.WithLabelValues("pop", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.actions.WithLabelValues("pop", "refused")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.actions.WithLabelValues("pop_immediate", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.actions.WithLabelValues("complete_transition", "ok")))
}

func TestObserver_WithCoordinator(t *testing.T) {
	reg := prometheus.NewRegistry()
	o := New(reg)

	c, err := stackview.NewCoordinator(stackview.Config{
		Dispatcher: stackview.DispatcherFunc(func(stackview.Action) error { return nil }),
		Observer:   o,
	})
	require.NoError(t, err)

	c.Update(stackview.NavigationState{Index: 0, Routes: []stackview.Route{{Key: "a"}}}, nil)
	c.Update(stackview.NavigationState{
		Index:       1,
		Routes:      []stackview.Route{{Key: "a"}, {Key: "b"}},
		Transitions: stackview.Transitions{Pushing: []string{"b"}},
	}, nil)
	for i := 0; i < 600; i++ {
		c.Step(animation.FrameStep)
	}

	assert.Equal(t, 1.0, testutil.ToFloat64(o.completed.WithLabelValues("open")))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.actions.WithLabelValues("complete_transition", "ok")))

	count, err := testutil.GatherAndCount(reg, "stackview_transition_completed_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNew_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	New(reg)
	assert.Panics(t, func() { New(reg) })
}
