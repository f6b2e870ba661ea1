package stackview

import (
	"math"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview/animation"
)

// CardState is the lifecycle state of a rendered route.
type CardState int

const (
	CardIdle     CardState = iota // Settled; at 1 once mounted
	CardOpening                   // Animating toward 1
	CardDragging                  // Progress follows a live gesture
	CardClosing                   // Animating toward 0
	CardRemoved                   // Close finished; waiting to leave the render list
)

func (s CardState) String() string {
	switch s {
	case CardIdle:
		return "idle"
	case CardOpening:
		return "opening"
	case CardDragging:
		return "dragging"
	case CardClosing:
		return "closing"
	case CardRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

type cardHooks struct {
	opened          func(c *CardTransitionController)
	closed          func(c *CardTransitionController)
	transitionStart func(c *CardTransitionController, closing, interrupted bool)
	gestureBegan    func(c *CardTransitionController)
	gestureEnded    func(c *CardTransitionController, dismissed bool)

	// dismiss asks the owner to pop a card released past the threshold.
	// An error keeps the card on the stack.
	dismiss func(c *CardTransitionController) error
}

type gestureTrack struct {
	start    float64 // Progress when the drag began
	sign     float64 // +1 when a positive translation closes the card
	distance float64 // Translation that spans the full progress range
}

// CardTransitionController drives the progress of one rendered route. It is
// the only writer of that route's ProgressValue.
type CardTransitionController struct {
	route    Route
	progress *ProgressValue
	spec     TransitionSpec
	hooks    *cardHooks

	state           CardState
	anim            animation.Animation
	gesture         gestureTrack
	gesturesEnabled bool

	// pendingOpen is set while the owner waits for this route's open
	// completion; openSignaled makes that signal fire at most once.
	pendingOpen  bool
	openSignaled bool

	// closeByIntent distinguishes closes requested through the popping set
	// from closes committed locally by a gesture.
	closeByIntent bool
}

func newCardController(route Route, progress *ProgressValue, spec TransitionSpec, hooks *cardHooks) *CardTransitionController {
	return &CardTransitionController{
		route:    route,
		progress: progress,
		spec:     spec,
		hooks:    hooks,
		state:    CardIdle,
	}
}

func (c *CardTransitionController) Route() Route { return c.route }

func (c *CardTransitionController) State() CardState { return c.state }

func (c *CardTransitionController) Progress() float64 { return c.progress.Value() }

func (c *CardTransitionController) GesturesEnabled() bool { return c.gesturesEnabled }

// Closing reports whether the card is animating out or already gone.
func (c *CardTransitionController) Closing() bool {
	return c.state == CardClosing || c.state == CardRemoved
}

// InTransition reports whether progress is moving, by animation or by drag.
func (c *CardTransitionController) InTransition() bool {
	switch c.state {
	case CardOpening, CardClosing, CardDragging:
		return true
	}
	return false
}

// mount establishes the first state of a freshly rendered route.
func (c *CardTransitionController) mount(opening, closing bool) {
	switch {
	case closing:
		c.closeByIntent = true
		c.startClose()
	case opening:
		c.pendingOpen = true
		c.startOpen()
	default:
		c.progress.set(1)
		c.state = CardIdle
	}
}

// apply reconciles the controller with the intent of a new navigation snapshot.
func (c *CardTransitionController) apply(opening, closing bool) {
	if c.state == CardRemoved {
		return
	}

	if closing {
		c.closeByIntent = true
		if c.state != CardClosing {
			c.startClose()
		}
		return
	}

	if c.state == CardClosing && c.closeByIntent {
		// The owner withdrew the pop before it finished.
		c.closeByIntent = false
		c.startOpen()
	}

	if opening && !c.openSignaled {
		c.pendingOpen = true
		if c.state == CardIdle {
			c.startOpen()
		}
	}
}

func (c *CardTransitionController) startOpen() {
	c.retarget(1, c.spec.Open, CardOpening)
}

func (c *CardTransitionController) startClose() {
	c.retarget(0, c.spec.Close, CardClosing)
}

// retarget replaces any running animation with one toward target, seeded with
// the current value and velocity.
func (c *CardTransitionController) retarget(target float64, spec animation.Spec, state CardState) {
	velocity := 0.0
	interrupted := c.state == CardDragging
	if c.anim != nil && !c.anim.Done() {
		velocity = c.anim.Velocity()
		interrupted = true
	}
	c.startAnimation(spec.Start(c.progress.Value(), target, velocity), state, interrupted)
}

func (c *CardTransitionController) startAnimation(anim animation.Animation, state CardState, interrupted bool) {
	c.anim = anim
	c.state = state
	if c.hooks != nil && c.hooks.transitionStart != nil {
		c.hooks.transitionStart(c, state == CardClosing, interrupted)
	}
}

// step advances the running animation by one frame.
func (c *CardTransitionController) step(dt time.Duration) {
	if c.anim == nil || (c.state != CardOpening && c.state != CardClosing) {
		return
	}

	value, done := c.anim.Step(dt)
	c.progress.set(value)
	if done {
		c.finish()
	}
}

// finish settles the current transition. Calling it outside of an opening or
// closing transition does nothing, which makes completion signals idempotent.
func (c *CardTransitionController) finish() {
	switch c.state {
	case CardOpening:
		c.progress.set(1)
		c.anim = nil
		c.state = CardIdle
		if c.pendingOpen && !c.openSignaled {
			c.pendingOpen = false
			c.openSignaled = true
			if c.hooks != nil && c.hooks.opened != nil {
				c.hooks.opened(c)
			}
		}
	case CardClosing:
		c.progress.set(0)
		c.anim = nil
		c.state = CardRemoved
		if c.hooks != nil && c.hooks.closed != nil {
			c.hooks.closed(c)
		}
	}
}

func (c *CardTransitionController) completeOpen() {
	if c.state == CardOpening {
		c.finish()
	}
}

func (c *CardTransitionController) completeClose() {
	if c.state == CardClosing {
		c.finish()
	}
}

// beginGesture hands progress to a live drag. distance is the translation
// that maps to the full 0..1 range; sign is +1 when a positive translation
// closes the card.
func (c *CardTransitionController) beginGesture(distance, sign float64) bool {
	if !c.gesturesEnabled || distance <= 0 {
		return false
	}
	if c.state != CardIdle && c.state != CardOpening {
		return false
	}

	c.anim = nil
	c.state = CardDragging
	c.gesture = gestureTrack{start: c.progress.Value(), sign: sign, distance: distance}
	if c.hooks != nil && c.hooks.gestureBegan != nil {
		c.hooks.gestureBegan(c)
	}
	return true
}

// updateGesture maps the total translation since the drag began to progress.
func (c *CardTransitionController) updateGesture(translation float64) {
	if c.state != CardDragging {
		return
	}
	c.progress.set(c.gesture.start - c.gesture.sign*translation/c.gesture.distance)
}

// endGesture settles a drag. velocity is in pixels per second along the
// gesture axis. It reports whether the card was dismissed.
func (c *CardTransitionController) endGesture(velocity, threshold float64) bool {
	if c.state != CardDragging {
		return false
	}

	closingVelocity := c.gesture.sign * velocity
	current := c.progress.Value()
	progressVelocity := -closingVelocity / c.gesture.distance
	dismissed := shouldDismiss(current, closingVelocity, threshold)

	if dismissed {
		c.closeByIntent = false
		c.startAnimation(c.spec.Close.Start(current, 0, progressVelocity), CardClosing, true)
		if c.hooks != nil && c.hooks.dismiss != nil && c.hooks.dismiss(c) != nil && c.state == CardClosing {
			// Refused: the route stays, so settle back open from the release point.
			dismissed = false
			c.startAnimation(c.spec.Open.Start(current, 1, progressVelocity), CardOpening, true)
		}
	} else {
		c.startAnimation(c.spec.Open.Start(current, 1, progressVelocity), CardOpening, true)
	}

	if c.hooks != nil && c.hooks.gestureEnded != nil {
		c.hooks.gestureEnded(c, dismissed)
	}
	return dismissed
}

// cancelGesture abandons a drag without a release, snapping back open.
func (c *CardTransitionController) cancelGesture() {
	if c.state != CardDragging {
		return
	}
	c.startAnimation(c.spec.Open.Start(c.progress.Value(), 1, 0), CardOpening, true)
	if c.hooks != nil && c.hooks.gestureEnded != nil {
		c.hooks.gestureEnded(c, false)
	}
}

// shouldDismiss decides a released drag. A fast release follows its
// direction; a slow one closes only past the halfway point.
func shouldDismiss(progress, closingVelocity, threshold float64) bool {
	if math.Abs(closingVelocity) > threshold {
		return closingVelocity > 0
	}
	return progress < 0.5
}
