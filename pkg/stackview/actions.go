package stackview

import "fmt"

// Action is an intent sent from the coordinator to the navigation state owner.
// The coordinator never mutates navigation state itself.
type Action interface {
	// RouteKey is the key the action refers to.
	RouteKey() string
	String() string
}

// PopAction asks the owner to remove a route. A soft pop (Immediate false)
// may be denied and normally starts a close transition; an immediate pop is
// sent right before a finished close is reported and removes the route from
// canonical state.
type PopAction struct {
	Key       string
	Immediate bool
}

func (a PopAction) RouteKey() string { return a.Key }

func (a PopAction) String() string {
	if a.Immediate {
		return fmt.Sprintf("pop(%s, immediate)", a.Key)
	}
	return fmt.Sprintf("pop(%s)", a.Key)
}

// CompleteTransitionAction clears the key from the pushing and popping sets.
type CompleteTransitionAction struct {
	Key string
}

func (a CompleteTransitionAction) RouteKey() string { return a.Key }

func (a CompleteTransitionAction) String() string {
	return fmt.Sprintf("completeTransition(%s)", a.Key)
}

// Dispatcher delivers actions to the navigation state owner. An error means
// the owner refused the action; the coordinator logs it and carries on.
type Dispatcher interface {
	Dispatch(action Action) error
}

// DispatcherFunc adapts a function to the Dispatcher interface.
type DispatcherFunc func(action Action) error

func (f DispatcherFunc) Dispatch(action Action) error {
	return f(action)
}
