package stackview

import "github.com/BrandonKowalski/stackview/pkg/stackview/interpolator"

// RenderRoute is one entry of the render list with its transition intent.
type RenderRoute struct {
	Route        Route
	IsOpening    bool
	IsClosing    bool
	Progress     *ProgressValue
	NextProgress *ProgressValue // nil for the topmost entry
}

// CardFrame is the state of one card for one frame.
type CardFrame struct {
	Route           Route
	Index           int
	State           CardState
	Progress        float64
	NextProgress    float64
	HasNext         bool
	Opening         bool
	Closing         bool
	Focused         bool // Top of the live stack; closing routes are never focused
	GesturesEnabled bool
	Style           interpolator.CardStyle
	Header          *HeaderSegment // Set in screen header mode
	Component       any
}

// Frame is everything a renderer needs to draw the stack once.
type Frame struct {
	Layout      Layout
	HeaderMode  HeaderMode
	Interactive bool // False until a layout is known
	Cards       []CardFrame
	Header      *HeaderFrame // Set in float header mode
}

// RenderRoutes returns the render list paired with intents and progress
// values, bottom to top.
func (c *Coordinator) RenderRoutes() []RenderRoute {
	out := make([]RenderRoute, len(c.routes))
	for i, r := range c.routes {
		in := c.intents[r.Key]
		out[i] = RenderRoute{
			Route:     r,
			IsOpening: in.opening,
			IsClosing: in.closing,
			Progress:  c.store.Get(r.Key),
		}
		if i+1 < len(c.routes) {
			out[i].NextProgress = c.store.Get(c.routes[i+1].Key)
		}
	}
	return out
}

// Frame samples every card and the header at their current progress.
func (c *Coordinator) Frame() Frame {
	frame := Frame{
		Layout:      c.layout,
		HeaderMode:  c.headerMode,
		Interactive: !c.layout.IsZero(),
		Cards:       make([]CardFrame, 0, len(c.routes)),
	}

	scenes := make([]Scene, len(c.routes))
	for i, r := range c.routes {
		scenes[i] = Scene{Route: r, Progress: c.store.Get(r.Key), Options: c.options(r.Key)}
		if card, ok := c.cards[r.Key]; ok {
			scenes[i].Transitioning = card.InTransition()
		}
	}

	if c.headerMode == HeaderModeFloat && len(scenes) > 0 {
		header := c.header.Float(scenes, c.layout)
		header.Focused = c.visible - 1
		frame.Header = &header
	}

	focused, _ := c.Focused()

	for i, rr := range c.RenderRoutes() {
		card := c.cards[rr.Route.Key]
		cf := CardFrame{
			Route:    rr.Route,
			Index:    i,
			Progress: rr.Progress.Value(),
			Opening:  rr.IsOpening,
			Closing:  rr.IsClosing,
			Focused:  c.visible > 0 && rr.Route.Key == focused.Key,
		}
		if rr.NextProgress != nil {
			cf.NextProgress = rr.NextProgress.Value()
			cf.HasNext = true
		}
		if card != nil {
			cf.State = card.State()
			cf.GesturesEnabled = card.GesturesEnabled()
			cf.Closing = cf.Closing || card.Closing()
		}

		cf.Style = c.preset.CardStyleInterpolator(interpolator.CardInterpolationProps{
			Current: cf.Progress,
			Next:    cf.NextProgress,
			HasNext: cf.HasNext,
			Closing: cf.Closing,
			Layout:  c.layout,
		})

		if c.headerMode == HeaderModeScreen && !scenes[i].Options.HeaderHidden {
			seg := c.header.Screen(scenes, i, c.layout)
			cf.Header = &seg
		}

		if d, ok := c.descriptors[rr.Route.Key]; ok && d.GetComponent != nil {
			cf.Component = d.GetComponent()
		}

		frame.Cards = append(frame.Cards, cf)
	}
	return frame
}
