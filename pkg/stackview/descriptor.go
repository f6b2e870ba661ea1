package stackview

import "github.com/BrandonKowalski/stackview/pkg/stackview/constants"

// GestureResponseDistance is how far from the entering edge, in pixels, a
// drag may start.
type GestureResponseDistance struct {
	Horizontal float64
	Vertical   float64
}

// Options are the per-route settings supplied by the screen.
type Options struct {
	Title                    string
	HeaderTitle              string // Preferred over Title when set
	HeaderBackTitle          string // Overrides the previous scene's title on the back button
	HeaderTruncatedBackTitle string // Used when the back title does not fit
	HeaderHidden             bool

	GesturesEnabled         *bool // nil means enabled
	GestureDirection        GestureDirection
	GestureResponseDistance GestureResponseDistance // Zero fields use the defaults
}

// ResolvedTitle returns HeaderTitle if set, otherwise Title.
func (o Options) ResolvedTitle() string {
	if o.HeaderTitle != "" {
		return o.HeaderTitle
	}
	return o.Title
}

func (o Options) gesturesEnabled() bool {
	return o.GesturesEnabled == nil || *o.GesturesEnabled
}

func (o Options) responseDistance(direction Direction) float64 {
	if direction == DirectionVertical {
		if o.GestureResponseDistance.Vertical > 0 {
			return o.GestureResponseDistance.Vertical
		}
		return constants.DefaultGestureResponseDistanceVertical
	}
	if o.GestureResponseDistance.Horizontal > 0 {
		return o.GestureResponseDistance.Horizontal
	}
	return constants.DefaultGestureResponseDistanceHorizontal
}

// Descriptor pairs a route with its options and a way to obtain the screen
// content. It is owned by the navigation library.
type Descriptor struct {
	Key     string
	Options Options
	// Navigation is the owner-specific handle passed through to screens.
	Navigation any
	// GetComponent returns the screen content. It is called on every frame
	// build and never cached.
	GetComponent func() any
}
