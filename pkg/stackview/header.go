package stackview

import (
	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
	"github.com/BrandonKowalski/stackview/pkg/stackview/interpolator"
)

// Scene is a route paired with the same progress value its card uses.
type Scene struct {
	Route         Route
	Progress      *ProgressValue // nil reads as settled
	Options       Options
	Transitioning bool // Progress is animating or dragged
}

// TitleLayouts are the measured sizes of a scene's header texts.
type TitleLayouts struct {
	Title     Layout
	BackTitle Layout
}

// HeaderSegment is the header state of one scene for one frame.
type HeaderSegment struct {
	Route              Route
	Index              int
	Title              string
	BackTitle          string
	TruncatedBackTitle string
	ShowBack           bool // False for the root scene
	Hidden             bool
	Current            float64
	Next               float64
	HasNext            bool // A scene is stacked above, moving or not
	NextTransitioning  bool
	Style              interpolator.HeaderStyle
}

// HeaderFrame is the floating header for one frame.
type HeaderFrame struct {
	Segments []HeaderSegment
	Focused  int // Index of the focused segment, -1 when empty
}

// HeaderSyncController derives header state from card progress values. It has
// no timeline of its own; every value it reports was read from a card.
type HeaderSyncController struct {
	interpolator     interpolator.HeaderStyleInterpolator
	defaultBackTitle string
	layouts          map[string]TitleLayouts
}

// NewHeaderSyncController creates a controller using interp for styles.
// defaultBackTitle is shown when a back title does not fit; empty means "Back".
func NewHeaderSyncController(interp interpolator.HeaderStyleInterpolator, defaultBackTitle string) (*HeaderSyncController, error) {
	if interp == nil {
		return nil, NewConfigError("HeaderStyleInterpolator", ErrMissingInterpolator)
	}
	if defaultBackTitle == "" {
		defaultBackTitle = constants.DefaultBackTitle
	}
	return &HeaderSyncController{
		interpolator:     interp,
		defaultBackTitle: defaultBackTitle,
		layouts:          make(map[string]TitleLayouts),
	}, nil
}

// SetTitleLayout records the measured title sizes of a scene.
func (h *HeaderSyncController) SetTitleLayout(key string, layouts TitleLayouts) {
	h.layouts[key] = layouts
}

// Forget drops measurements of a scene that left the stack.
func (h *HeaderSyncController) Forget(key string) {
	delete(h.layouts, key)
}

// Float builds the shared header: every scene gets a segment interpolated
// from its own progress and the progress of the scene above it.
func (h *HeaderSyncController) Float(scenes []Scene, screen Layout) HeaderFrame {
	frame := HeaderFrame{Segments: make([]HeaderSegment, 0, len(scenes)), Focused: len(scenes) - 1}
	for i := range scenes {
		frame.Segments = append(frame.Segments, h.segment(scenes, i, screen, true))
	}
	return frame
}

// Screen builds the header a card renders for itself; it follows only that
// card's progress.
func (h *HeaderSyncController) Screen(scenes []Scene, index int, screen Layout) HeaderSegment {
	return h.segment(scenes, index, screen, false)
}

func (h *HeaderSyncController) segment(scenes []Scene, i int, screen Layout, withNext bool) HeaderSegment {
	scene := scenes[i]
	seg := HeaderSegment{
		Route:              scene.Route,
		Index:              i,
		Title:              scene.Options.ResolvedTitle(),
		TruncatedBackTitle: h.defaultBackTitle,
		ShowBack:           i > 0,
		Hidden:             scene.Options.HeaderHidden,
		Current:            scene.Progress.Value(),
	}

	if scene.Options.HeaderTruncatedBackTitle != "" {
		seg.TruncatedBackTitle = scene.Options.HeaderTruncatedBackTitle
	}
	if i > 0 {
		seg.BackTitle = scenes[i-1].Options.ResolvedTitle()
	}
	if scene.Options.HeaderBackTitle != "" {
		seg.BackTitle = scene.Options.HeaderBackTitle
	}
	if withNext && i+1 < len(scenes) {
		seg.Next = scenes[i+1].Progress.Value()
		seg.HasNext = true
		seg.NextTransitioning = scenes[i+1].Transitioning
	}

	layouts := h.layouts[scene.Route.Key]
	seg.Style = h.interpolator(interpolator.HeaderInterpolationProps{
		Current:           seg.Current,
		Next:              seg.Next,
		HasNext:           seg.HasNext,
		NextTransitioning: seg.NextTransitioning,
		Screen:            screen,
		Title:             layouts.Title,
		BackTitle:         layouts.BackTitle,
	})
	return seg
}
