package router

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
	"github.com/google/uuid"
)

// ErrScreenNotRegistered indicates a push or reset of a name that was never
// registered.
var ErrScreenNotRegistered = errors.New("screen not registered")

// ScreenFunc builds the content of a screen from the params it was pushed
// with. It is called every time a frame is built.
type ScreenFunc func(params any) any

// Listener receives every new navigation state together with the descriptors
// of the routes on the stack. Its signature matches Coordinator.Update.
type Listener func(state stackview.NavigationState, descriptors map[string]stackview.Descriptor)

type screen struct {
	build   ScreenFunc
	options stackview.Options
}

// Router owns the navigation state and applies actions to it.
// Listeners are called synchronously after every change, outside of the
// router's lock, so they may dispatch again.
type Router struct {
	mu        sync.Mutex
	screens   map[string]screen
	stack     *Stack
	listeners map[int]Listener
	nextID    int
	logger    *slog.Logger
}

// New creates a new Router.
func New() *Router {
	return &Router{
		screens:   make(map[string]screen),
		stack:     NewStack(),
		listeners: make(map[int]Listener),
		logger:    internal.LibraryLogger().With("component", "router"),
	}
}

// Register adds a screen to the router. options are the defaults of every
// route pushed with this name.
func (r *Router) Register(name string, fn ScreenFunc, options stackview.Options) *Router {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.screens[name] = screen{build: fn, options: options}
	return r
}

// Subscribe adds a listener and immediately sends it the current state.
// The returned function removes the listener.
func (r *Router) Subscribe(fn Listener) func() {
	r.mu.Lock()
	id := r.nextID
	r.nextID++
	r.listeners[id] = fn
	state, descriptors := r.snapshot()
	r.mu.Unlock()

	fn(state, descriptors)

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

// Reset replaces the whole stack with a single settled route.
func (r *Router) Reset(name string, params any) (string, error) {
	r.mu.Lock()
	entry, err := r.newEntry(name, params)
	if err != nil {
		r.mu.Unlock()
		return "", err
	}
	r.stack.Clear()
	r.stack.entries = append(r.stack.entries, entry)
	r.logger.Debug("stack reset", "route", name, "key", entry.Route.Key)
	r.mu.Unlock()

	r.notify()
	return entry.Route.Key, nil
}

// Push adds a route on top of the stack and returns its key.
func (r *Router) Push(name string, params any) (string, error) {
	r.mu.Lock()
	entry, err := r.newEntry(name, params)
	if err != nil {
		r.mu.Unlock()
		return "", err
	}
	r.stack.Push(entry)
	r.logger.Debug("route pushed", "route", name, "key", entry.Route.Key)
	r.mu.Unlock()

	r.notify()
	return entry.Route.Key, nil
}

// Back soft-pops the top route.
func (r *Router) Back() error {
	r.mu.Lock()
	top := r.stack.Peek()
	r.mu.Unlock()

	if top == nil {
		return stackview.ErrPopDenied
	}
	return r.Dispatch(stackview.PopAction{Key: top.Route.Key})
}

// SetOptions updates the options of a route on the stack, e.g. to change its
// title after it loaded.
func (r *Router) SetOptions(key string, update func(*stackview.Options)) error {
	r.mu.Lock()
	entry := r.stack.Get(key)
	if entry == nil {
		r.mu.Unlock()
		return fmt.Errorf("router: set options %q: %w", key, stackview.ErrUnknownRoute)
	}
	update(&entry.Options)
	r.mu.Unlock()

	r.notify()
	return nil
}

// Dispatch applies an action from a coordinator. It implements
// stackview.Dispatcher.
func (r *Router) Dispatch(action stackview.Action) error {
	r.mu.Lock()
	changed, err := r.reduce(action)
	r.mu.Unlock()

	if err != nil {
		r.logger.Debug("action refused", "action", action.String(), "error", err)
		return err
	}
	if changed {
		r.notify()
	}
	return nil
}

func (r *Router) reduce(action stackview.Action) (bool, error) {
	switch a := action.(type) {
	case stackview.PopAction:
		if a.Immediate {
			return r.stack.Remove(a.Key) != nil, nil
		}

		i := r.stack.IndexOf(a.Key)
		switch {
		case i < 0 && r.stack.IsPopping(a.Key):
			return false, nil
		case i < 0:
			return false, fmt.Errorf("router: pop %q: %w", a.Key, stackview.ErrUnknownRoute)
		case i == 0:
			return false, fmt.Errorf("router: pop %q: %w", a.Key, stackview.ErrPopDenied)
		}
		r.stack.Pop(a.Key)
		return true, nil

	case stackview.CompleteTransitionAction:
		return r.stack.Complete(a.Key), nil

	default:
		return false, fmt.Errorf("router: unsupported action %s", action)
	}
}

func (r *Router) newEntry(name string, params any) (StackEntry, error) {
	s, ok := r.screens[name]
	if !ok {
		return StackEntry{}, fmt.Errorf("router: %q: %w", name, ErrScreenNotRegistered)
	}
	return StackEntry{
		Route:   stackview.Route{Key: name + "-" + uuid.NewString(), RouteName: name},
		Params:  params,
		Options: s.options,
	}, nil
}

// State returns the current navigation state.
func (r *Router) State() stackview.NavigationState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack.State()
}

// Descriptors returns a descriptor for every route on the stack.
func (r *Router) Descriptors() map[string]stackview.Descriptor {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, descriptors := r.snapshot()
	return descriptors
}

// Len returns the number of routes on the stack.
func (r *Router) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.stack.Len()
}

func (r *Router) snapshot() (stackview.NavigationState, map[string]stackview.Descriptor) {
	descriptors := make(map[string]stackview.Descriptor, r.stack.Len())
	for _, e := range r.stack.entries {
		build := r.screens[e.Route.RouteName].build
		params := e.Params
		descriptors[e.Route.Key] = stackview.Descriptor{
			Key:        e.Route.Key,
			Options:    e.Options,
			Navigation: r,
			GetComponent: func() any {
				if build == nil {
					return nil
				}
				return build(params)
			},
		}
	}
	return r.stack.State(), descriptors
}

func (r *Router) notify() {
	r.mu.Lock()
	state, descriptors := r.snapshot()
	listeners := make([]Listener, 0, len(r.listeners))
	for id := 0; id < r.nextID; id++ {
		if fn, ok := r.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	r.mu.Unlock()

	for _, fn := range listeners {
		fn(state, descriptors)
	}
}
