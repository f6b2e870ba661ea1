package render

import (
	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
	"github.com/veandco/go-sdl2/sdl"
)

// Theme defines the colors and font of the stack.
type Theme struct {
	BackgroundColor     sdl.Color // Behind every card
	CardColor           sdl.Color // Card surface
	HeaderColor         sdl.Color // Header bar
	TextColor           sdl.Color // Titles and content text
	AccentColor         sdl.Color // Back button and back title
	OverlayColor        sdl.Color // Dimming under the card above
	ShadowColor         sdl.Color // Edge shadow of a sliding card
	FontPath            string    // Path to a TTF font
	FontSize            int
	BackgroundImagePath string // Optional image drawn behind every card
	HeaderHeight        int32
	HeaderPadding       Padding
	ContentPadding      Padding
}

// DefaultTheme is a light theme close to a stock navigation bar.
func DefaultTheme(fontPath string, fontSize int) Theme {
	return Theme{
		BackgroundColor: HexToColor(0x000000),
		CardColor:       HexToColor(0xF2F2F7),
		HeaderColor:     HexToColor(0xFFFFFF),
		TextColor:       HexToColor(0x1C1C1E),
		AccentColor:     HexToColor(0x007AFF),
		OverlayColor:    HexToColor(0x000000),
		ShadowColor:     HexToColor(0x000000),
		FontPath:        fontPath,
		FontSize:        fontSize,
		HeaderHeight:    constants.DefaultHeaderHeight,
		HeaderPadding:   Padding{Top: 0, Right: 16, Bottom: 0, Left: 8},
		ContentPadding:  UniformPadding(24),
	}
}

// HexToColor converts 0xRRGGBB to an opaque color.
func HexToColor(hex uint32) sdl.Color {
	return sdl.Color{
		R: uint8(hex >> 16 & 0xFF),
		G: uint8(hex >> 8 & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// alpha converts an opacity in 0..1 to an 8-bit alpha.
func alpha(opacity float64) uint8 {
	switch {
	case opacity <= 0:
		return 0
	case opacity >= 1:
		return 255
	default:
		return uint8(opacity*255 + 0.5)
	}
}

// Padding defines spacing on all four sides of an element.
type Padding struct {
	Top    int32
	Right  int32
	Bottom int32
	Left   int32
}

// UniformPadding creates a Padding with the same value on all sides.
func UniformPadding(value int32) Padding {
	return Padding{
		Top:    value,
		Right:  value,
		Bottom: value,
		Left:   value,
	}
}
