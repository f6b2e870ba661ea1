package router

import "github.com/BrandonKowalski/stackview/pkg/stackview"

// StackEntry is a single route on the stack together with the parameters it
// was pushed with.
type StackEntry struct {
	Route   stackview.Route
	Params  any
	Options stackview.Options
}

// Stack holds the ordered routes and the keys currently entering or leaving.
type Stack struct {
	entries []StackEntry
	pushing []string
	popping []string
}

// NewStack creates a new empty stack.
func NewStack() *Stack {
	return &Stack{
		entries: make([]StackEntry, 0),
	}
}

// Push appends an entry and marks it as pushing.
func (s *Stack) Push(entry StackEntry) {
	s.entries = append(s.entries, entry)
	s.pushing = appendKey(s.pushing, entry.Route.Key)
}

// Pop removes the entry with key and marks it as popping.
// Returns nil if key is not on the stack.
func (s *Stack) Pop(key string) *StackEntry {
	entry := s.Remove(key)
	if entry == nil {
		return nil
	}
	s.pushing = removeKey(s.pushing, key)
	s.popping = appendKey(s.popping, key)
	return entry
}

// Remove drops the entry with key without touching the transition sets.
// Returns nil if key is not on the stack.
func (s *Stack) Remove(key string) *StackEntry {
	i := s.IndexOf(key)
	if i < 0 {
		return nil
	}
	entry := s.entries[i]
	s.entries = append(s.entries[:i:i], s.entries[i+1:]...)
	return &entry
}

// Complete clears key from both transition sets. It reports whether anything
// changed.
func (s *Stack) Complete(key string) bool {
	before := len(s.pushing) + len(s.popping)
	s.pushing = removeKey(s.pushing, key)
	s.popping = removeKey(s.popping, key)
	return len(s.pushing)+len(s.popping) != before
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return &s.entries[len(s.entries)-1]
}

// Get returns the entry with key, or nil.
func (s *Stack) Get(key string) *StackEntry {
	if i := s.IndexOf(key); i >= 0 {
		return &s.entries[i]
	}
	return nil
}

// IndexOf returns the position of key, or -1.
func (s *Stack) IndexOf(key string) int {
	for i := range s.entries {
		if s.entries[i].Route.Key == key {
			return i
		}
	}
	return -1
}

// IsPopping reports whether key is waiting for its close to complete.
func (s *Stack) IsPopping(key string) bool {
	for _, k := range s.popping {
		if k == key {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the stack has no entries.
func (s *Stack) IsEmpty() bool {
	return len(s.entries) == 0
}

// Len returns the number of entries in the stack.
func (s *Stack) Len() int {
	return len(s.entries)
}

// Clear removes all entries and transitions.
func (s *Stack) Clear() {
	s.entries = s.entries[:0]
	s.pushing = nil
	s.popping = nil
}

// State snapshots the stack. The returned slices are copies.
func (s *Stack) State() stackview.NavigationState {
	routes := make([]stackview.Route, len(s.entries))
	for i, e := range s.entries {
		routes[i] = e.Route
	}
	return stackview.NavigationState{
		Index:  len(routes) - 1,
		Routes: routes,
		Transitions: stackview.Transitions{
			Pushing: append([]string(nil), s.pushing...),
			Popping: append([]string(nil), s.popping...),
		},
	}
}

func appendKey(keys []string, key string) []string {
	for _, k := range keys {
		if k == key {
			return keys
		}
	}
	return append(keys, key)
}

func removeKey(keys []string, key string) []string {
	out := keys[:0]
	for _, k := range keys {
		if k != key {
			out = append(out, k)
		}
	}
	return out
}
