// Package metrics exports stack transition activity to Prometheus.
package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "stackview"

// Observer records coordinator lifecycle events. It implements
// stackview.Observer.
type Observer struct {
	started    *prometheus.CounterVec
	completed  *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	gestures   *prometheus.CounterVec
	actions    *prometheus.CounterVec
	inProgress prometheus.Gauge

	now func() time.Time

	mu     sync.Mutex
	starts map[string]time.Time
}

var _ stackview.Observer = (*Observer)(nil)

// New registers the stack metrics with reg. A nil reg uses the default
// registerer.
func New(reg prometheus.Registerer) *Observer {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Observer{
		// Labels: direction (open, close), interrupted (true, false)
		started: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transition",
			Name:      "started_total",
			Help:      "Card transitions started, including retargets",
		}, []string{"direction", "interrupted"}),

		// Labels: direction
		completed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "transition",
			Name:      "completed_total",
			Help:      "Card transitions that reached their target",
		}, []string{"direction"}),

		// Labels: direction
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "transition",
			Name:      "duration_seconds",
			Help:      "Time from the first start of a transition to its completion",
			Buckets:   []float64{0.05, 0.1, 0.2, 0.3, 0.5, 0.75, 1, 2, 5},
		}, []string{"direction"}),

		// Labels: outcome (dismissed, canceled)
		gestures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "gesture",
			Name:      "released_total",
			Help:      "Released drags by outcome",
		}, []string{"outcome"}),

		// Labels: action (pop, pop_immediate, complete_transition), result (ok, refused)
		actions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dispatch",
			Name:      "actions_total",
			Help:      "Actions sent to the navigation owner",
		}, []string{"action", "result"}),

		inProgress: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "transition",
			Name:      "in_progress",
			Help:      "Routes currently animating",
		}),

		now:    time.Now,
		starts: make(map[string]time.Time),
	}
}

func direction(closing bool) string {
	if closing {
		return "close"
	}
	return "open"
}

func (o *Observer) TransitionStarted(route stackview.Route, closing, interrupted bool) {
	o.started.WithLabelValues(direction(closing), strconv.FormatBool(interrupted)).Inc()

	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.starts[route.Key]; !ok {
		o.starts[route.Key] = o.now()
		o.inProgress.Inc()
	}
}

func (o *Observer) TransitionCompleted(route stackview.Route, closing bool) {
	o.completed.WithLabelValues(direction(closing)).Inc()

	o.mu.Lock()
	defer o.mu.Unlock()
	if start, ok := o.starts[route.Key]; ok {
		o.duration.WithLabelValues(direction(closing)).Observe(o.now().Sub(start).Seconds())
		delete(o.starts, route.Key)
		o.inProgress.Dec()
	}
}

func (o *Observer) GestureFinished(_ stackview.Route, dismissed bool) {
	outcome := "canceled"
	if dismissed {
		outcome = "dismissed"
	}
	o.gestures.WithLabelValues(outcome).Inc()
}

func (o *Observer) ActionDispatched(action stackview.Action, err error) {
	result := "ok"
	if err != nil {
		result = "refused"
	}
	o.actions.WithLabelValues(actionName(action), result).Inc()
}

func actionName(action stackview.Action) string {
	switch a := action.(type) {
	case stackview.PopAction:
		if a.Immediate {
			return "pop_immediate"
		}
		return "pop"
	case stackview.CompleteTransitionAction:
		return "complete_transition"
	default:
		return "other"
	}
}
