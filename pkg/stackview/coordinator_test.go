package stackview

import (
	"math"
	"testing"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview/animation"
	"github.com/BrandonKowalski/stackview/pkg/stackview/interpolator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	actions []Action
	deny    map[string]bool
}

func (r *recorder) Dispatch(a Action) error {
	r.actions = append(r.actions, a)
	if p, ok := a.(PopAction); ok && !p.Immediate && r.deny[p.Key] {
		return ErrPopDenied
	}
	return nil
}

func (r *recorder) reset() { r.actions = nil }

type countingObserver struct {
	started   int
	completed int
	gestures  []bool
	dispatch  int
}

func (o *countingObserver) TransitionStarted(Route, bool, bool) { o.started++ }
func (o *countingObserver) TransitionCompleted(Route, bool)     { o.completed++ }
func (o *countingObserver) GestureFinished(_ Route, d bool)     { o.gestures = append(o.gestures, d) }
func (o *countingObserver) ActionDispatched(Action, error)      { o.dispatch++ }

var testLayout = Layout{Width: 400, Height: 800}

func newTestCoordinator(t *testing.T, cfg Config) (*Coordinator, *recorder) {
	t.Helper()
	rec := &recorder{deny: map[string]bool{}}
	cfg.Dispatcher = rec
	c, err := NewCoordinator(cfg)
	require.NoError(t, err)
	c.SetLayout(testLayout)
	return c, rec
}

func navState(index int, keys []string, pushing, popping []string) NavigationState {
	return NavigationState{
		Index:       index,
		Routes:      routesOf(keys...),
		Transitions: Transitions{Pushing: pushing, Popping: popping},
	}
}

func keys(routes []Route) []string {
	out := make([]string, len(routes))
	for i, r := range routes {
		out[i] = r.Key
	}
	return out
}

func settle(c *Coordinator) {
	for i := 0; i < 600; i++ {
		c.Step(animation.FrameStep)
	}
}

func steps(c *Coordinator, n int) {
	for i := 0; i < n; i++ {
		c.Step(animation.FrameStep)
	}
}

func TestNewCoordinator_RequiresDispatcher(t *testing.T) {
	_, err := NewCoordinator(Config{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoDispatcher)
	assert.True(t, IsConfigError(err))
}

func TestNewCoordinator_MissingInterpolator(t *testing.T) {
	dispatcher := DispatcherFunc(func(Action) error { return nil })

	noCard := SlideFromRightIOS
	noCard.CardStyleInterpolator = nil
	_, err := NewCoordinator(Config{Preset: &noCard, Dispatcher: dispatcher})
	assert.ErrorIs(t, err, ErrMissingInterpolator)

	noHeader := SlideFromRightIOS
	noHeader.HeaderStyleInterpolator = nil
	_, err = NewCoordinator(Config{Preset: &noHeader, Dispatcher: dispatcher})
	assert.ErrorIs(t, err, ErrMissingInterpolator)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "Preset.HeaderStyleInterpolator", cfgErr.Field)
}

func TestNewCoordinator_MissingTransitionSpec(t *testing.T) {
	p := SlideFromRightIOS
	p.TransitionSpec.Close = animation.Spec{}

	_, err := NewCoordinator(Config{Preset: &p, Dispatcher: &recorder{}})
	assert.ErrorIs(t, err, ErrMissingTransitionSpec)
}

func TestNewCoordinator_InvalidModes(t *testing.T) {
	_, err := NewCoordinator(Config{Mode: "sideways", Dispatcher: &recorder{}})
	assert.ErrorIs(t, err, ErrInvalidMode)

	_, err = NewCoordinator(Config{HeaderMode: "floating", Dispatcher: &recorder{}})
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestNewCoordinator_PresetSelection(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	assert.Equal(t, "SlideFromRightIOS", c.Preset().Name)
	assert.Equal(t, HeaderModeFloat, c.HeaderMode())

	c, _ = newTestCoordinator(t, Config{Mode: ModeModal})
	assert.Equal(t, "ModalSlideFromBottomIOS", c.Preset().Name)
	assert.Equal(t, HeaderModeScreen, c.HeaderMode())

	c, _ = newTestCoordinator(t, Config{Mode: ModeModal, HeaderMode: HeaderModeNone})
	assert.Equal(t, HeaderModeNone, c.HeaderMode())

	c, _ = newTestCoordinator(t, Config{Preset: &FadeFromBottomAndroid})
	assert.Equal(t, "FadeFromBottomAndroid", c.Preset().Name)
}

func TestUpdate_InitialRoutesAreSettled(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	assert.Equal(t, 1.0, c.Progress("a").Value())
	assert.Equal(t, 1.0, c.Progress("b").Value())
	assert.Empty(t, rec.actions)
}

func TestUpdate_PushOpensAndCompletesOnce(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(0, []string{"a"}, nil, nil), nil)
	c.Update(navState(1, []string{"a", "b"}, []string{"b"}, nil), nil)

	card, ok := c.Card("b")
	require.True(t, ok)
	assert.Equal(t, CardOpening, card.State())
	assert.Equal(t, 0.0, c.Progress("b").Value())

	settle(c)
	assert.Equal(t, 1.0, c.Progress("b").Value())
	assert.Equal(t, []Action{CompleteTransitionAction{Key: "b"}}, rec.actions)

	// A late explicit completion and a repeated snapshot change nothing.
	c.CompleteOpen("b")
	c.Update(navState(1, []string{"a", "b"}, []string{"b"}, nil), nil)
	settle(c)
	assert.Len(t, rec.actions, 1)
}

func TestUpdate_ProgressPersistsAcrossUpdates(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)
	a, b := c.Progress("a"), c.Progress("b")

	c.Update(navState(2, []string{"a", "b", "c"}, []string{"c"}, nil), nil)
	steps(c, 5)
	c.Update(navState(2, []string{"a", "b", "c"}, nil, nil), nil)

	assert.Same(t, a, c.Progress("a"))
	assert.Same(t, b, c.Progress("b"))
	assert.Equal(t, 3, c.ProgressAllocations())
}

func TestUpdate_ClosingRouteStaysRendered(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(2, []string{"a", "b", "c"}, nil, nil), nil)
	assert.Equal(t, []string{"a", "b", "c"}, keys(c.Routes()))

	c.Update(navState(1, []string{"a", "c"}, nil, []string{"b"}), nil)
	assert.Equal(t, []string{"a", "c", "b"}, keys(c.Routes()))

	rendered := c.RenderRoutes()
	require.Len(t, rendered, 3)
	assert.True(t, rendered[2].IsClosing)
	assert.False(t, rendered[1].IsClosing)
	assert.Nil(t, rendered[2].NextProgress)

	focused, ok := c.Focused()
	require.True(t, ok)
	assert.Equal(t, "c", focused.Key)

	settle(c)
	assert.Equal(t, []string{"a", "c"}, keys(c.Routes()))
	assert.Equal(t, []Action{
		PopAction{Key: "b", Immediate: true},
		CompleteTransitionAction{Key: "b"},
	}, rec.actions)

	// The owner confirms; nothing further happens.
	c.Update(navState(1, []string{"a", "c"}, nil, nil), nil)
	assert.Equal(t, []string{"a", "c"}, keys(c.Routes()))
	assert.Len(t, rec.actions, 2)
}

func TestCompleteClose_IsIdempotent(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)
	c.Update(navState(0, []string{"a"}, nil, []string{"b"}), nil)
	steps(c, 3)

	c.CompleteClose("b")
	c.CompleteClose("b")
	settle(c)
	c.CompleteClose("b")

	assert.Equal(t, []Action{
		PopAction{Key: "b", Immediate: true},
		CompleteTransitionAction{Key: "b"},
	}, rec.actions)
	_, ok := c.Card("b")
	assert.False(t, ok)
	assert.Nil(t, c.Progress("b"))
}

func TestFinishTransitions_CompletesEverythingInFlight(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(2, []string{"a", "b", "c"}, nil, nil), nil)
	c.Update(navState(2, []string{"a", "b", "d"}, []string{"d"}, []string{"c"}), nil)
	steps(c, 3)
	require.Equal(t, []string{"a", "b", "d", "c"}, keys(c.Routes()))

	c.FinishTransitions()

	assert.Equal(t, []Action{
		CompleteTransitionAction{Key: "d"},
		PopAction{Key: "c", Immediate: true},
		CompleteTransitionAction{Key: "c"},
	}, rec.actions)
	assert.Equal(t, []string{"a", "b", "d"}, keys(c.Routes()))
	assert.Equal(t, 1.0, c.Progress("d").Value())

	rec.reset()
	c.FinishTransitions()
	settle(c)
	assert.Empty(t, rec.actions, "nothing is left to complete")
}

func TestFinishTransitions_CancelsDrag(t *testing.T) {
	var canceled int
	c, rec := newTestCoordinator(t, Config{OnGestureCanceled: func(Route) { canceled++ }})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)
	require.True(t, c.BeginGesture(10, 400))
	c.UpdateGesture(300, 0)

	c.FinishTransitions()

	assert.False(t, c.Dragging())
	assert.Equal(t, 1, canceled)
	assert.Equal(t, 1.0, c.Progress("b").Value())
	assert.Empty(t, rec.actions)
	card, ok := c.Card("b")
	require.True(t, ok)
	assert.Equal(t, CardIdle, card.State())
}

func TestUpdate_ReversalIsContinuous(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(0, []string{"a"}, nil, nil), nil)
	c.Update(navState(1, []string{"a", "b"}, []string{"b"}, nil), nil)
	steps(c, 10)

	before := c.Progress("b").Value()
	require.Greater(t, before, 0.0)
	require.Less(t, before, 1.0)

	c.Update(navState(0, []string{"a"}, []string{"b"}, []string{"b"}), nil)
	card, _ := c.Card("b")
	assert.Equal(t, CardClosing, card.State(), "closing wins over opening")
	assert.Equal(t, before, c.Progress("b").Value())

	steps(c, 1)
	assert.InDelta(t, before, c.Progress("b").Value(), 0.1)

	settle(c)
	assert.Equal(t, []Action{
		PopAction{Key: "b", Immediate: true},
		CompleteTransitionAction{Key: "b"},
	}, rec.actions)
}

func TestUpdate_WithdrawnPopReopens(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)
	c.Update(navState(0, []string{"a"}, nil, []string{"b"}), nil)
	steps(c, 5)
	require.Less(t, c.Progress("b").Value(), 1.0)

	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)
	card, _ := c.Card("b")
	assert.Equal(t, CardOpening, card.State())

	settle(c)
	assert.Equal(t, 1.0, c.Progress("b").Value())
	assert.Equal(t, []string{"a", "b"}, keys(c.Routes()))
	assert.Empty(t, rec.actions)
}

func TestUpdate_NoOpFastPath(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	state := navState(1, []string{"a", "b"}, nil, nil)
	c.Update(state, nil)

	routes := c.Routes()
	allocations := c.ProgressAllocations()
	progress := c.Progress("b")

	c.Update(state, nil)
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	assert.True(t, identical(routes, c.Routes()), "render list must keep its identity")
	assert.Equal(t, allocations, c.ProgressAllocations())
	assert.Same(t, progress, c.Progress("b"))
	assert.Empty(t, rec.actions)
}

func TestUpdate_IndexLimitsVisibleRoutes(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(0, []string{"a", "b"}, nil, nil), nil)

	assert.Equal(t, []string{"a"}, keys(c.Routes()))
	assert.Nil(t, c.Progress("b"))
}

func TestUpdate_DescriptorsMerge(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	state := navState(1, []string{"a", "b"}, nil, nil)

	c.Update(state, map[string]Descriptor{"a": {Key: "a", Options: Options{Title: "A"}}})
	c.Update(state, map[string]Descriptor{"b": {Key: "b", Options: Options{HeaderTitle: "B"}}})

	assert.Equal(t, "A", c.Title("a"))
	assert.Equal(t, "B", c.Title("b"))

	c.Update(navState(0, []string{"a"}, nil, nil), nil)
	_, ok := c.Descriptor("b")
	assert.False(t, ok, "descriptors of unrendered routes are dropped")
}

func TestGesture_RootIsNeverDraggable(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(0, []string{"a"}, nil, nil), nil)

	assert.False(t, c.BeginGesture(5, 400))
	assert.False(t, c.Frame().Cards[0].GesturesEnabled)
}

func TestGesture_DisabledByOptions(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	off := false
	c.Update(navState(1, []string{"a", "b"}, nil, nil), map[string]Descriptor{
		"b": {Key: "b", Options: Options{GesturesEnabled: &off}},
	})

	assert.False(t, c.BeginGesture(5, 400))
}

func TestGesture_ResponseDistance(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	assert.False(t, c.BeginGesture(100, 400), "outside the edge region")
	assert.True(t, c.BeginGesture(20, 400))
	assert.False(t, c.BeginGesture(20, 400), "one drag at a time")
}

func TestGesture_RequiresLayout(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.SetLayout(Layout{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	assert.False(t, c.BeginGesture(5, 400))
	assert.False(t, c.Frame().Interactive)
}

func TestGesture_DismissDispatchesPopThenCompletes(t *testing.T) {
	obs := &countingObserver{}
	var ended, canceled int
	c, rec := newTestCoordinator(t, Config{
		Observer:          obs,
		OnGestureEnd:      func(Route) { ended++ },
		OnGestureCanceled: func(Route) { canceled++ },
	})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	require.True(t, c.BeginGesture(10, 400))
	c.UpdateGesture(300, 12)
	assert.InDelta(t, 0.25, c.Progress("b").Value(), 1e-9)

	assert.True(t, c.EndGesture(0, 0))
	assert.Equal(t, []Action{PopAction{Key: "b"}}, rec.actions)
	assert.Equal(t, 1, ended)
	assert.Zero(t, canceled)
	assert.Equal(t, []bool{true}, obs.gestures)

	// The owner accepts the soft pop.
	c.Update(navState(0, []string{"a"}, nil, []string{"b"}), nil)
	assert.Equal(t, []string{"a", "b"}, keys(c.Routes()))

	settle(c)
	assert.Equal(t, []string{"a"}, keys(c.Routes()))
	assert.Equal(t, []Action{
		PopAction{Key: "b"},
		PopAction{Key: "b", Immediate: true},
		CompleteTransitionAction{Key: "b"},
	}, rec.actions)
}

func TestGesture_DeniedPopSnapsBack(t *testing.T) {
	obs := &countingObserver{}
	var ended, canceled int
	c, rec := newTestCoordinator(t, Config{
		Observer:          obs,
		OnGestureEnd:      func(Route) { ended++ },
		OnGestureCanceled: func(Route) { canceled++ },
	})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)
	allocs := c.ProgressAllocations()
	progress := c.Progress("b")

	rec.deny["b"] = true
	require.True(t, c.BeginGesture(10, 400))
	c.UpdateGesture(300, 12)
	require.InDelta(t, 0.25, progress.Value(), 1e-9)

	assert.False(t, c.EndGesture(0, 0), "a refused pop is not a dismissal")
	assert.Zero(t, ended)
	assert.Equal(t, 1, canceled)
	assert.Equal(t, []bool{false}, obs.gestures)

	prev := progress.Value()
	for i := 0; i < 600; i++ {
		c.Step(animation.FrameStep)
		v := progress.Value()
		assert.Less(t, math.Abs(v-prev), 0.2, "frame %d jumped from %v to %v", i, prev, v)
		prev = v
	}
	assert.Equal(t, 1.0, progress.Value())

	// The owner still lists the route.
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)
	assert.Equal(t, []string{"a", "b"}, keys(c.Routes()))
	assert.Same(t, progress, c.Progress("b"))
	assert.Equal(t, allocs, c.ProgressAllocations())
	assert.Equal(t, []Action{PopAction{Key: "b"}}, rec.actions, "no immediate pop or completion follows a refusal")
}

func TestGesture_ShortDragSnapsBack(t *testing.T) {
	var canceled int
	c, rec := newTestCoordinator(t, Config{OnGestureCanceled: func(Route) { canceled++ }})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	require.True(t, c.BeginGesture(10, 400))
	c.UpdateGesture(100, 0)
	assert.False(t, c.EndGesture(100, 0))
	assert.Equal(t, 1, canceled)

	settle(c)
	assert.Equal(t, 1.0, c.Progress("b").Value())
	assert.Empty(t, rec.actions)
	assert.False(t, c.Dragging())
}

func TestGesture_VelocityOverridesDistance(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	require.True(t, c.BeginGesture(10, 400))
	c.UpdateGesture(40, 0)
	assert.True(t, c.EndGesture(800, 0), "fast fling dismisses a short drag")

	c2, _ := newTestCoordinator(t, Config{})
	c2.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	require.True(t, c2.BeginGesture(10, 400))
	c2.UpdateGesture(300, 0)
	assert.False(t, c2.EndGesture(-800, 0), "fast fling back keeps a long drag open")
}

func TestGesture_InvertedSign(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), map[string]Descriptor{
		"b": {Key: "b", Options: Options{GestureDirection: GestureInverted}},
	})

	assert.False(t, c.BeginGesture(10, 400), "inverted drags start at the far edge")
	require.True(t, c.BeginGesture(390, 400))

	c.UpdateGesture(-100, 0)
	assert.InDelta(t, 0.75, c.Progress("b").Value(), 1e-9)

	c.UpdateGesture(100, 0)
	assert.Equal(t, 1.0, c.Progress("b").Value())
}

func TestGesture_NormalSignOpposesInverted(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	require.True(t, c.BeginGesture(10, 400))
	c.UpdateGesture(-100, 0)
	assert.Equal(t, 1.0, c.Progress("b").Value())

	c.UpdateGesture(100, 0)
	assert.InDelta(t, 0.75, c.Progress("b").Value(), 1e-9)
}

func TestGesture_VerticalUsesHeight(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{Mode: ModeModal})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	assert.False(t, c.BeginGesture(200, 300), "below the vertical response distance")
	require.True(t, c.BeginGesture(200, 100))

	c.UpdateGesture(0, 200)
	assert.InDelta(t, 0.75, c.Progress("b").Value(), 1e-9)
	c.CancelGesture()
	assert.False(t, c.Dragging())
}

func TestGoBack(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	c.Update(navState(1, []string{"a", "b"}, nil, nil), nil)

	require.NoError(t, c.GoBack(""))
	require.NoError(t, c.GoBack("a"))
	assert.Equal(t, []Action{PopAction{Key: "b"}, PopAction{Key: "a"}}, rec.actions)

	rec.deny["b"] = true
	err := c.GoBack("b")
	assert.ErrorIs(t, err, ErrPopDenied)
	assert.Equal(t, 1.0, c.Progress("b").Value(), "a refused pop changes nothing")
}

func TestGoBack_EmptyStack(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	assert.NoError(t, c.GoBack(""))
	assert.Empty(t, rec.actions)
}

func TestFrame_FloatHeaderFollowsCards(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.Update(navState(0, []string{"a"}, nil, nil), nil)
	c.Update(navState(1, []string{"a", "b"}, []string{"b"}, nil), nil)
	steps(c, 6)

	frame := c.Frame()
	require.NotNil(t, frame.Header)
	require.Len(t, frame.Cards, 2)
	require.Len(t, frame.Header.Segments, 2)

	assert.Equal(t, frame.Cards[0].Progress, frame.Header.Segments[0].Current)
	assert.Equal(t, frame.Cards[1].Progress, frame.Header.Segments[0].Next)
	assert.Equal(t, frame.Cards[1].Progress, frame.Header.Segments[1].Current)
	assert.Equal(t, 1, frame.Header.Focused)
	assert.True(t, frame.Header.Segments[0].NextTransitioning)

	assert.True(t, frame.Cards[0].HasNext)
	assert.Equal(t, frame.Cards[1].Progress, frame.Cards[0].NextProgress)
	assert.True(t, frame.Cards[1].Focused)
	assert.True(t, frame.Cards[1].Opening)
	assert.Nil(t, frame.Cards[1].Header)

	want := interpolator.ForHorizontalIOS(interpolator.CardInterpolationProps{
		Current: frame.Cards[1].Progress,
		Layout:  testLayout,
	})
	assert.Equal(t, want, frame.Cards[1].Style)

	settle(c)
	settled := c.Frame().Header.Segments[0]
	assert.True(t, settled.HasNext, "a covered segment still folds against the scene above")
	assert.False(t, settled.NextTransitioning)
}

func TestFrame_ScreenHeaders(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{Mode: ModeModal})

	calls := 0
	c.Update(navState(1, []string{"a", "b"}, nil, nil), map[string]Descriptor{
		"a": {Key: "a", Options: Options{Title: "List"}, GetComponent: func() any { calls++; return "list" }},
		"b": {Key: "b", Options: Options{HeaderHidden: true}},
	})

	frame := c.Frame()
	c.Frame()

	assert.Nil(t, frame.Header)
	require.NotNil(t, frame.Cards[0].Header)
	assert.Equal(t, "List", frame.Cards[0].Header.Title)
	assert.False(t, frame.Cards[0].Header.ShowBack)
	assert.Nil(t, frame.Cards[1].Header)
	assert.Equal(t, "list", frame.Cards[0].Component)
	assert.Equal(t, 2, calls, "components are fetched on every frame")
}

func TestFrame_HeaderModeNone(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{HeaderMode: HeaderModeNone})
	c.Update(navState(0, []string{"a"}, nil, nil), nil)

	frame := c.Frame()
	assert.Nil(t, frame.Header)
	assert.Nil(t, frame.Cards[0].Header)
}

func TestObserverAndHooks(t *testing.T) {
	obs := &countingObserver{}
	var starts []bool
	c, _ := newTestCoordinator(t, Config{
		Observer:          obs,
		OnTransitionStart: func(_ Route, closing bool) { starts = append(starts, closing) },
	})

	c.Update(navState(0, []string{"a"}, nil, nil), nil)
	c.Update(navState(1, []string{"a", "b"}, []string{"b"}, nil), nil)
	settle(c)
	c.Update(navState(0, []string{"a"}, nil, []string{"b"}), nil)
	settle(c)

	assert.Equal(t, []bool{false, true}, starts)
	assert.Equal(t, 2, obs.started)
	assert.Equal(t, 2, obs.completed)
	assert.Equal(t, 3, obs.dispatch)
}

func TestSetTitleLayout_UnknownRouteIgnored(t *testing.T) {
	c, _ := newTestCoordinator(t, Config{})
	c.SetTitleLayout("ghost", TitleLayouts{Title: Layout{Width: 10}})
	assert.Empty(t, c.header.layouts)
}

func TestStep_WithoutRoutes(t *testing.T) {
	c, rec := newTestCoordinator(t, Config{})
	assert.NotPanics(t, func() { c.Step(time.Second) })
	assert.Empty(t, c.Frame().Cards)
	assert.Empty(t, rec.actions)
}
