package stackview

import (
	"github.com/BrandonKowalski/stackview/pkg/stackview/interpolator"
)

// Route is an addressable stack entry. Key is its stable identity.
type Route struct {
	Key       string
	RouteName string
}

// Transitions lists the route keys currently entering and leaving the stack.
type Transitions struct {
	Pushing []string
	Popping []string
}

// NavigationState is the authoritative snapshot owned by the navigation
// library. The coordinator only reads it.
type NavigationState struct {
	Index       int
	Routes      []Route
	Transitions Transitions
}

// Visible returns routes[0..index], the logically live part of the stack.
func (s NavigationState) Visible() []Route {
	if len(s.Routes) == 0 || s.Index < 0 {
		return nil
	}
	end := s.Index + 1
	if end > len(s.Routes) {
		end = len(s.Routes)
	}
	return s.Routes[:end]
}

// Layout is the measured size of the stack container.
type Layout = interpolator.Layout

// Direction is the axis cards travel along and gestures track.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

func (d Direction) String() string {
	if d == DirectionVertical {
		return "vertical"
	}
	return "horizontal"
}

// GestureDirection flips which way a drag closes a card. Normal closes on a
// rightward (horizontal) or downward (vertical) drag; inverted on the opposite.
type GestureDirection int

const (
	GestureNormal GestureDirection = iota
	GestureInverted
)

func (g GestureDirection) String() string {
	if g == GestureInverted {
		return "inverted"
	}
	return "normal"
}

// HeaderMode selects how headers are rendered.
type HeaderMode string

const (
	HeaderModeFloat  HeaderMode = "float"  // One shared header cross-fading between scenes
	HeaderModeScreen HeaderMode = "screen" // Every card renders its own header
	HeaderModeNone   HeaderMode = "none"   // No header
)

// Valid reports whether m is one of the known header modes.
func (m HeaderMode) Valid() bool {
	switch m {
	case HeaderModeFloat, HeaderModeScreen, HeaderModeNone:
		return true
	}
	return false
}

// Mode selects the default transition preset.
type Mode string

const (
	ModeCard  Mode = "card"
	ModeModal Mode = "modal"
)

func (m Mode) Valid() bool {
	return m == ModeCard || m == ModeModal
}

func keySet(keys []string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

func sameRoutes(a, b []Route) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// identical reports whether two route slices share the same backing array
// and length, i.e. are the same list reference.
func identical(a, b []Route) bool {
	return len(a) == len(b) && (len(a) == 0 || &a[0] == &b[0])
}
