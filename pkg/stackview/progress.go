package stackview

import "go.uber.org/atomic"

// ProgressValue is the animated open state of one route: 0 is fully hidden,
// 1 is fully open. Its identity is stable for as long as the route stays in
// the render list. Only the route's card controller writes it.
type ProgressValue struct {
	v atomic.Float64
}

func newProgressValue() *ProgressValue {
	return &ProgressValue{}
}

// Value returns the current progress. A nil ProgressValue reads as settled (1)
// so that observers of a route removed mid-frame draw a stable state.
func (p *ProgressValue) Value() float64 {
	if p == nil {
		return 1
	}
	return p.v.Load()
}

func (p *ProgressValue) set(value float64) {
	p.v.Store(clamp01(value))
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// MergeProgress builds a new key → ProgressValue mapping for routes. Keys that
// existed in prev keep their instance untouched; new keys get a fresh value
// at 0; keys no longer present are dropped. prev is not modified.
func MergeProgress(prev map[string]*ProgressValue, routes []Route) map[string]*ProgressValue {
	next := make(map[string]*ProgressValue, len(routes))
	for _, r := range routes {
		if p, ok := prev[r.Key]; ok {
			next[r.Key] = p
			continue
		}
		next[r.Key] = newProgressValue()
	}
	return next
}

// ProgressStore keeps the progress values of the render list across
// reconciliation cycles.
type ProgressStore struct {
	routes  []Route
	values  map[string]*ProgressValue
	created int
}

// NewProgressStore creates an empty store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{}
}

// Sync merges the store with routes and returns the mapping. When routes is
// the same list reference as the previous call nothing is recomputed.
func (s *ProgressStore) Sync(routes []Route) map[string]*ProgressValue {
	if s.values != nil && identical(routes, s.routes) {
		return s.values
	}

	next := MergeProgress(s.values, routes)
	for key := range next {
		if _, ok := s.values[key]; !ok {
			s.created++
		}
	}
	s.values = next
	s.routes = routes
	return next
}

// Get returns the progress of key, or nil if the key is not tracked.
func (s *ProgressStore) Get(key string) *ProgressValue {
	return s.values[key]
}

// Len returns the number of tracked routes.
func (s *ProgressStore) Len() int {
	return len(s.values)
}

// Allocations returns how many ProgressValues the store has created.
func (s *ProgressStore) Allocations() int {
	return s.created
}
