package stackview

// Observer receives lifecycle notifications from a Coordinator. It is meant
// for instrumentation; implementations must not call back into the
// coordinator.
type Observer interface {
	TransitionStarted(route Route, closing bool, interrupted bool)
	TransitionCompleted(route Route, closing bool)
	GestureFinished(route Route, dismissed bool)
	ActionDispatched(action Action, err error)
}

type noopObserver struct{}

func (noopObserver) TransitionStarted(Route, bool, bool) {}
func (noopObserver) TransitionCompleted(Route, bool)     {}
func (noopObserver) GestureFinished(Route, bool)         {}
func (noopObserver) ActionDispatched(Action, error)      {}
