package stackview

import (
	"github.com/BrandonKowalski/stackview/pkg/stackview/animation"
	"github.com/BrandonKowalski/stackview/pkg/stackview/interpolator"
)

// TransitionSpec holds the open and close animations independently.
type TransitionSpec struct {
	Open  animation.Spec
	Close animation.Spec
}

// Preset bundles everything that defines how a stack transitions.
type Preset struct {
	Name                    string
	Direction               Direction
	HeaderMode              HeaderMode
	TransitionSpec          TransitionSpec
	CardStyleInterpolator   interpolator.CardStyleInterpolator
	HeaderStyleInterpolator interpolator.HeaderStyleInterpolator
}

// Validate checks that every part of the preset is present and usable.
func (p Preset) Validate() error {
	if p.CardStyleInterpolator == nil {
		return NewConfigError("Preset.CardStyleInterpolator", ErrMissingInterpolator)
	}
	if p.HeaderStyleInterpolator == nil {
		return NewConfigError("Preset.HeaderStyleInterpolator", ErrMissingInterpolator)
	}
	if p.TransitionSpec.Open.IsZero() {
		return NewConfigError("Preset.TransitionSpec.Open", ErrMissingTransitionSpec)
	}
	if p.TransitionSpec.Close.IsZero() {
		return NewConfigError("Preset.TransitionSpec.Close", ErrMissingTransitionSpec)
	}
	if err := p.TransitionSpec.Open.Validate(); err != nil {
		return NewConfigError("Preset.TransitionSpec.Open", err)
	}
	if err := p.TransitionSpec.Close.Validate(); err != nil {
		return NewConfigError("Preset.TransitionSpec.Close", err)
	}
	if !p.HeaderMode.Valid() {
		return NewConfigError("Preset.HeaderMode", ErrInvalidMode)
	}
	return nil
}

// SlideFromRightIOS pushes cards in from the right with a floating header.
var SlideFromRightIOS = Preset{
	Name:                    "SlideFromRightIOS",
	Direction:               DirectionHorizontal,
	HeaderMode:              HeaderModeFloat,
	TransitionSpec:          TransitionSpec{Open: animation.IOSSpring, Close: animation.IOSSpring},
	CardStyleInterpolator:   interpolator.ForHorizontalIOS,
	HeaderStyleInterpolator: interpolator.ForUIKit,
}

// ModalSlideFromBottomIOS slides cards up from the bottom; each card carries
// its own header.
var ModalSlideFromBottomIOS = Preset{
	Name:                    "ModalSlideFromBottomIOS",
	Direction:               DirectionVertical,
	HeaderMode:              HeaderModeScreen,
	TransitionSpec:          TransitionSpec{Open: animation.IOSSpring, Close: animation.IOSSpring},
	CardStyleInterpolator:   interpolator.ForVerticalIOS,
	HeaderStyleInterpolator: interpolator.ForNoHeaderAnimation,
}

// FadeFromBottomAndroid fades cards in from slightly below.
var FadeFromBottomAndroid = Preset{
	Name:       "FadeFromBottomAndroid",
	Direction:  DirectionVertical,
	HeaderMode: HeaderModeScreen,
	TransitionSpec: TransitionSpec{
		Open:  animation.FadeInFromBottomAndroid,
		Close: animation.FadeOutToBottomAndroid,
	},
	CardStyleInterpolator:   interpolator.ForFadeFromBottomAndroid,
	HeaderStyleInterpolator: interpolator.ForNoHeaderAnimation,
}

// NoTransition swaps cards without animating.
var NoTransition = Preset{
	Name:                    "None",
	Direction:               DirectionHorizontal,
	HeaderMode:              HeaderModeScreen,
	TransitionSpec:          TransitionSpec{Open: animation.Immediate, Close: animation.Immediate},
	CardStyleInterpolator:   interpolator.ForNoAnimation,
	HeaderStyleInterpolator: interpolator.ForNoHeaderAnimation,
}

// DefaultTransition is used for card mode when no preset is configured.
var DefaultTransition = SlideFromRightIOS

// PresetForMode returns the default preset of a stack mode.
func PresetForMode(mode Mode) Preset {
	if mode == ModeModal {
		return ModalSlideFromBottomIOS
	}
	return DefaultTransition
}

// PresetByName looks up one of the built-in presets.
func PresetByName(name string) (Preset, bool) {
	for _, p := range []Preset{SlideFromRightIOS, ModalSlideFromBottomIOS, FadeFromBottomAndroid, NoTransition} {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
