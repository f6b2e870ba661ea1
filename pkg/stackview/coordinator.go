package stackview

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
)

// Config configures a Coordinator.
type Config struct {
	Preset     *Preset    // nil selects the default preset of Mode
	Mode       Mode       // Defaults to ModeCard
	HeaderMode HeaderMode // Overrides the preset's header mode when set

	Dispatcher Dispatcher // Required
	Observer   Observer
	Logger     *slog.Logger

	// DefaultBackTitle is shown when a back title does not fit.
	DefaultBackTitle string

	// GestureVelocityThreshold is the release speed (px/s) above which a
	// drag follows its direction rather than its distance.
	GestureVelocityThreshold float64

	OnTransitionStart func(route Route, closing bool)
	OnGestureBegin    func(route Route)
	OnGestureCanceled func(route Route) // Drag released and snapped back open
	OnGestureEnd      func(route Route) // Drag released and dismissed the card
}

type intent struct {
	opening bool
	closing bool
}

// Coordinator reconciles navigation snapshots against the persistent set of
// card transitions. It owns the render list, including routes that are still
// animating out after the owner removed them, and reports finished
// transitions back to the owner through the Dispatcher.
//
// A Coordinator is not safe for concurrent use; drive it from the render loop.
type Coordinator struct {
	preset            Preset
	mode              Mode
	headerMode        HeaderMode
	dispatcher        Dispatcher
	observer          Observer
	logger            *slog.Logger
	velocityThreshold float64
	cfg               Config

	layout      Layout
	routes      []Route
	visible     int
	intents     map[string]intent
	descriptors map[string]Descriptor

	store  *ProgressStore
	cards  map[string]*CardTransitionController
	header *HeaderSyncController
	hooks  cardHooks

	gestureKey string
}

// NewCoordinator validates cfg and creates a Coordinator with an empty stack.
func NewCoordinator(cfg Config) (*Coordinator, error) {
	if cfg.Dispatcher == nil {
		return nil, NewConfigError("Dispatcher", ErrNoDispatcher)
	}

	mode := cfg.Mode
	if mode == "" {
		mode = ModeCard
	}
	if !mode.Valid() {
		return nil, NewConfigError("Mode", ErrInvalidMode)
	}

	preset := PresetForMode(mode)
	if cfg.Preset != nil {
		preset = *cfg.Preset
	}
	if cfg.HeaderMode != "" {
		preset.HeaderMode = cfg.HeaderMode
	}
	if err := preset.Validate(); err != nil {
		return nil, err
	}

	header, err := NewHeaderSyncController(preset.HeaderStyleInterpolator, cfg.DefaultBackTitle)
	if err != nil {
		return nil, err
	}

	c := &Coordinator{
		preset:            preset,
		mode:              mode,
		headerMode:        preset.HeaderMode,
		dispatcher:        cfg.Dispatcher,
		observer:          cfg.Observer,
		logger:            cfg.Logger,
		velocityThreshold: cfg.GestureVelocityThreshold,
		cfg:               cfg,
		intents:           make(map[string]intent),
		descriptors:       make(map[string]Descriptor),
		store:             NewProgressStore(),
		cards:             make(map[string]*CardTransitionController),
		header:            header,
	}
	if c.observer == nil {
		c.observer = noopObserver{}
	}
	if c.logger == nil {
		c.logger = internal.LibraryLogger()
	}
	if c.velocityThreshold <= 0 {
		c.velocityThreshold = constants.DefaultGestureVelocityThreshold
	}

	c.hooks = cardHooks{
		opened:          c.handleOpened,
		closed:          c.handleClosed,
		transitionStart: c.handleTransitionStart,
		gestureBegan:    c.handleGestureBegan,
		gestureEnded:    c.handleGestureEnded,
		dismiss:         c.handleDismiss,
	}

	return c, nil
}

// Preset returns the effective preset.
func (c *Coordinator) Preset() Preset { return c.preset }

// HeaderMode returns the effective header mode.
func (c *Coordinator) HeaderMode() HeaderMode { return c.headerMode }

// Update reconciles the render list with a new navigation snapshot.
// descriptors are merged into the ones already known; a descriptor is kept
// until its route leaves the render list so that closing routes still render.
//
// Update never dispatches actions; those only follow finished transitions,
// gestures and GoBack.
func (c *Coordinator) Update(state NavigationState, descriptors map[string]Descriptor) {
	pushing := keySet(state.Transitions.Pushing)
	popping := keySet(state.Transitions.Popping)

	visible := state.Visible()
	seen := make(map[string]struct{}, len(visible)+len(popping))
	next := make([]Route, 0, len(visible)+len(popping))
	for _, r := range visible {
		if _, dup := seen[r.Key]; dup {
			continue
		}
		seen[r.Key] = struct{}{}
		next = append(next, r)
	}
	visibleCount := len(next)

	// Routes mid-close stay rendered after the owner dropped them. They are
	// appended after the live stack, so they draw on top in insertion order.
	for _, r := range c.routes {
		if _, ok := popping[r.Key]; !ok {
			continue
		}
		if _, dup := seen[r.Key]; dup {
			continue
		}
		seen[r.Key] = struct{}{}
		next = append(next, r)
	}

	if sameRoutes(next, c.routes) {
		next = c.routes
	}
	c.routes = next
	c.visible = visibleCount

	for key, d := range descriptors {
		c.descriptors[key] = d
	}

	progress := c.store.Sync(c.routes)

	intents := make(map[string]intent, len(c.routes))
	for i, r := range c.routes {
		_, opening := pushing[r.Key]
		_, closing := popping[r.Key]
		if opening && closing {
			c.logger.Debug("route both pushing and popping; treating as closing", "key", r.Key)
			opening = false
		}
		intents[r.Key] = intent{opening: opening, closing: closing}

		card, ok := c.cards[r.Key]
		if !ok {
			card = newCardController(r, progress[r.Key], c.preset.TransitionSpec, &c.hooks)
			card.gesturesEnabled = c.gesturesEnabled(i, r.Key)
			c.cards[r.Key] = card
			card.mount(opening, closing)
			continue
		}
		card.gesturesEnabled = c.gesturesEnabled(i, r.Key)
		card.apply(opening, closing)
	}
	c.intents = intents

	c.collect(seen)

	c.logger.Debug("stack reconciled",
		"index", state.Index,
		"render", len(c.routes),
		"visible", c.visible,
		"pushing", len(pushing),
		"popping", len(popping))
}

// collect drops controllers, descriptors and measurements of routes that are
// no longer rendered.
func (c *Coordinator) collect(rendered map[string]struct{}) {
	for key := range c.cards {
		if _, ok := rendered[key]; ok {
			continue
		}
		delete(c.cards, key)
		c.header.Forget(key)
		if c.gestureKey == key {
			c.gestureKey = ""
		}
	}
	for key := range c.descriptors {
		if _, ok := rendered[key]; !ok {
			delete(c.descriptors, key)
		}
	}
}

func (c *Coordinator) gesturesEnabled(index int, key string) bool {
	if index == 0 {
		return false
	}
	return c.options(key).gesturesEnabled()
}

func (c *Coordinator) options(key string) Options {
	return c.descriptors[key].Options
}

// Step advances every running transition by dt. Finished transitions dispatch
// their completion actions from here.
func (c *Coordinator) Step(dt time.Duration) {
	routes := make([]Route, len(c.routes))
	copy(routes, c.routes)

	for _, r := range routes {
		if card, ok := c.cards[r.Key]; ok {
			card.step(dt)
		}
	}
}

// CompleteOpen signals that the open transition of key finished. Repeated or
// late signals are ignored.
func (c *Coordinator) CompleteOpen(key string) {
	card, ok := c.cards[key]
	if !ok {
		c.logger.Debug("open completion for unknown route ignored", "key", key)
		return
	}
	card.completeOpen()
}

// CompleteClose signals that the close transition of key finished. Repeated or
// late signals are ignored.
func (c *Coordinator) CompleteClose(key string) {
	card, ok := c.cards[key]
	if !ok {
		c.logger.Debug("close completion for unknown route ignored", "key", key)
		return
	}
	card.completeClose()
}

// FinishTransitions ends everything in flight at once: an active drag is
// canceled, then every moving card jumps to its target and sends the
// completion actions it would have sent on its own. Call it before dropping a
// coordinator whose owner still lists routes as pushing or popping.
func (c *Coordinator) FinishTransitions() {
	if c.Dragging() {
		c.CancelGesture()
	}

	routes := make([]Route, len(c.routes))
	copy(routes, c.routes)

	for _, r := range routes {
		card, ok := c.cards[r.Key]
		if !ok || !card.InTransition() {
			continue
		}
		if card.Closing() {
			card.completeClose()
		} else {
			card.completeOpen()
		}
	}
}

// GoBack forwards a back request for key (the focused route when empty) to
// the owner. Whether the pop happens is the owner's decision.
func (c *Coordinator) GoBack(key string) error {
	if key == "" {
		focused, ok := c.Focused()
		if !ok {
			return nil
		}
		key = focused.Key
	}
	return c.dispatch(PopAction{Key: key})
}

// Focused returns the top route of the live stack.
func (c *Coordinator) Focused() (Route, bool) {
	if c.visible == 0 {
		return Route{}, false
	}
	return c.routes[c.visible-1], true
}

// SetLayout records the size of the stack container.
func (c *Coordinator) SetLayout(layout Layout) {
	c.layout = layout
}

// Layout returns the last recorded container size.
func (c *Coordinator) Layout() Layout { return c.layout }

// SetTitleLayout records the measured header text sizes of key.
func (c *Coordinator) SetTitleLayout(key string, layouts TitleLayouts) {
	if _, ok := c.cards[key]; !ok {
		return
	}
	c.header.SetTitleLayout(key, layouts)
}

// Routes returns the render list: the live stack followed by closing routes.
// The slice must not be modified.
func (c *Coordinator) Routes() []Route { return c.routes }

// Card returns the transition controller of key.
func (c *Coordinator) Card(key string) (*CardTransitionController, bool) {
	card, ok := c.cards[key]
	return card, ok
}

// Progress returns the progress value of key, or nil when key is not rendered.
func (c *Coordinator) Progress(key string) *ProgressValue {
	return c.store.Get(key)
}

// ProgressAllocations returns how many progress values were ever created.
func (c *Coordinator) ProgressAllocations() int {
	return c.store.Allocations()
}

// Descriptor returns the merged descriptor of key.
func (c *Coordinator) Descriptor(key string) (Descriptor, bool) {
	d, ok := c.descriptors[key]
	return d, ok
}

// Title returns the header title of key: HeaderTitle, then Title, then empty.
func (c *Coordinator) Title(key string) string {
	return c.options(key).ResolvedTitle()
}

func (c *Coordinator) dispatch(action Action) error {
	err := c.dispatcher.Dispatch(action)
	c.observer.ActionDispatched(action, err)
	if err != nil {
		c.logger.Warn("navigation action refused", "action", action.String(), "error", err)
		return err
	}
	c.logger.Debug("navigation action dispatched", "action", action.String())
	return nil
}

// removeRoute drops a fully closed route from the render list right away.
// The owner confirms the removal on its next snapshot.
func (c *Coordinator) removeRoute(key string) {
	next := make([]Route, 0, len(c.routes))
	for i, r := range c.routes {
		if r.Key == key {
			if i < c.visible {
				c.visible--
			}
			continue
		}
		next = append(next, r)
	}
	c.routes = next
	c.store.Sync(c.routes)

	delete(c.cards, key)
	delete(c.intents, key)
	delete(c.descriptors, key)
	c.header.Forget(key)
	if c.gestureKey == key {
		c.gestureKey = ""
	}
}

func (c *Coordinator) handleOpened(card *CardTransitionController) {
	c.observer.TransitionCompleted(card.route, false)
	c.logger.Debug("open transition finished", "key", card.route.Key)
	c.dispatch(CompleteTransitionAction{Key: card.route.Key})
}

func (c *Coordinator) handleClosed(card *CardTransitionController) {
	key := card.route.Key
	c.removeRoute(key)
	c.observer.TransitionCompleted(card.route, true)
	c.logger.Debug("close transition finished", "key", key)

	c.dispatch(PopAction{Key: key, Immediate: true})
	c.dispatch(CompleteTransitionAction{Key: key})
}

func (c *Coordinator) handleTransitionStart(card *CardTransitionController, closing, interrupted bool) {
	c.observer.TransitionStarted(card.route, closing, interrupted)
	c.logger.Debug("transition started",
		"key", card.route.Key,
		"closing", closing,
		"interrupted", interrupted,
		"from", card.progress.Value())
	if c.cfg.OnTransitionStart != nil {
		c.cfg.OnTransitionStart(card.route, closing)
	}
}

func (c *Coordinator) handleGestureBegan(card *CardTransitionController) {
	if c.cfg.OnGestureBegin != nil {
		c.cfg.OnGestureBegin(card.route)
	}
}

func (c *Coordinator) handleGestureEnded(card *CardTransitionController, dismissed bool) {
	c.observer.GestureFinished(card.route, dismissed)
	c.logger.Debug("gesture finished", "key", card.route.Key, "dismissed", dismissed)

	if !dismissed {
		if c.cfg.OnGestureCanceled != nil {
			c.cfg.OnGestureCanceled(card.route)
		}
		return
	}

	if c.cfg.OnGestureEnd != nil {
		c.cfg.OnGestureEnd(card.route)
	}
}

// handleDismiss sends the soft pop for a released drag. The card has already
// committed to closing, so an owner that accepts and notifies synchronously
// finds it in the closing state.
func (c *Coordinator) handleDismiss(card *CardTransitionController) error {
	return c.dispatch(PopAction{Key: card.route.Key})
}
