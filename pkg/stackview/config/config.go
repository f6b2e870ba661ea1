// Package config loads stack and demo settings from a TOML file.
//
// A complete file looks like:
//
//	[stack]
//	mode = "card"                 # card | modal
//	preset = "SlideFromRightIOS"  # optional, overrides mode
//	header_mode = "float"         # float | screen | none
//	default_back_title = "Back"
//
//	[gesture]
//	enabled = true
//	direction = "normal"          # normal | inverted
//	velocity_threshold = 500.0
//	response_distance_horizontal = 25.0
//	response_distance_vertical = 135.0
//	velocity_window = "100ms"
//
//	[transition.open]
//	type = "timing"
//	duration = "300ms"
//	easing = "OutCubic"
//
//	[transition.close]
//	type = "spring"
//	stiffness = 1000.0
//	damping = 500.0
//	mass = 3.0
//	overshoot_clamping = true
//
//	[window]
//	width = 1024
//	height = 768
//	fullscreen = false
//	font = "/usr/share/fonts/TTF/DejaVuSans.ttf"
//	font_size = 22
//
//	[log]
//	level = "info"
//	path = ""
//
//	[locale]
//	language = "en"
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/animation"
	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
	"github.com/BurntSushi/toml"
)

var (
	// ErrUnknownKey indicates a key the file format does not define.
	ErrUnknownKey = errors.New("unknown key")

	// ErrInvalidValue indicates a value outside of its allowed set or range.
	ErrInvalidValue = errors.New("invalid value")
)

// Duration is a time.Duration written as a string such as "250ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// File is the decoded configuration file.
type File struct {
	Stack      Stack      `toml:"stack"`
	Gesture    Gesture    `toml:"gesture"`
	Transition Transition `toml:"transition"`
	Window     Window     `toml:"window"`
	Log        Log        `toml:"log"`
	Locale     Locale     `toml:"locale"`
}

type Stack struct {
	Mode             string `toml:"mode"`
	Preset           string `toml:"preset"`
	HeaderMode       string `toml:"header_mode"`
	DefaultBackTitle string `toml:"default_back_title"`
}

type Gesture struct {
	Enabled                    *bool    `toml:"enabled"`
	Direction                  string   `toml:"direction"`
	VelocityThreshold          float64  `toml:"velocity_threshold"`
	ResponseDistanceHorizontal float64  `toml:"response_distance_horizontal"`
	ResponseDistanceVertical   float64  `toml:"response_distance_vertical"`
	VelocityWindow             Duration `toml:"velocity_window"`
}

// Transition overrides the open and close animations of the chosen preset.
type Transition struct {
	Open  *Animation `toml:"open"`
	Close *Animation `toml:"close"`
}

// Animation describes a spring or timing animation.
type Animation struct {
	Type string `toml:"type"` // spring | timing

	Stiffness                 float64 `toml:"stiffness"`
	Damping                   float64 `toml:"damping"`
	Mass                      float64 `toml:"mass"`
	RestSpeedThreshold        float64 `toml:"rest_speed_threshold"`
	RestDisplacementThreshold float64 `toml:"rest_displacement_threshold"`
	OvershootClamping         bool    `toml:"overshoot_clamping"`

	Duration Duration `toml:"duration"`
	Easing   string   `toml:"easing"`
}

type Window struct {
	Width      int32  `toml:"width"`
	Height     int32  `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
	Title      string `toml:"title"`
	Font       string `toml:"font"`
	FontSize   int    `toml:"font_size"`
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

type Locale struct {
	Language string `toml:"language"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Stack: Stack{
			Mode: string(stackview.ModeCard),
		},
		Gesture: Gesture{
			Direction:                  "normal",
			VelocityThreshold:          constants.DefaultGestureVelocityThreshold,
			ResponseDistanceHorizontal: constants.DefaultGestureResponseDistanceHorizontal,
			ResponseDistanceVertical:   constants.DefaultGestureResponseDistanceVertical,
			VelocityWindow:             Duration{constants.GestureVelocityWindow},
		},
		Window: Window{
			Width:    constants.DefaultWindowWidth,
			Height:   constants.DefaultWindowHeight,
			Title:    "stackview",
			FontSize: constants.DefaultFontSize,
		},
		Log: Log{
			Level: "info",
		},
		Locale: Locale{
			Language: "en",
		},
	}
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte) (File, error) {
	f := Default()
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return File{}, fmt.Errorf("config: decode: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return File{}, stackview.NewConfigError(strings.Join(keys, ", "), ErrUnknownKey)
	}

	if err := f.Validate(); err != nil {
		return File{}, err
	}
	return f, nil
}

// Load reads and parses the file at path.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return File{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return f, nil
}

// Validate checks every field that has a restricted set of values.
func (f File) Validate() error {
	if !stackview.Mode(f.Stack.Mode).Valid() {
		return invalid("stack.mode", f.Stack.Mode)
	}
	if f.Stack.HeaderMode != "" && !stackview.HeaderMode(f.Stack.HeaderMode).Valid() {
		return invalid("stack.header_mode", f.Stack.HeaderMode)
	}
	if f.Stack.Preset != "" {
		if _, ok := stackview.PresetByName(f.Stack.Preset); !ok {
			return invalid("stack.preset", f.Stack.Preset)
		}
	}

	switch f.Gesture.Direction {
	case "", "normal", "inverted":
	default:
		return invalid("gesture.direction", f.Gesture.Direction)
	}
	if f.Gesture.VelocityThreshold < 0 {
		return invalid("gesture.velocity_threshold", f.Gesture.VelocityThreshold)
	}
	if f.Gesture.ResponseDistanceHorizontal < 0 || f.Gesture.ResponseDistanceVertical < 0 {
		return invalid("gesture.response_distance", "negative")
	}

	for name, a := range map[string]*Animation{"transition.open": f.Transition.Open, "transition.close": f.Transition.Close} {
		if a == nil {
			continue
		}
		spec, err := a.Spec()
		if err != nil {
			return stackview.NewConfigError(name, err)
		}
		if err := spec.Validate(); err != nil {
			return stackview.NewConfigError(name, err)
		}
	}

	if f.Window.Width < 0 || f.Window.Height < 0 {
		return invalid("window", fmt.Sprintf("%dx%d", f.Window.Width, f.Window.Height))
	}
	return nil
}

func invalid(field string, value any) error {
	return stackview.NewConfigError(field, fmt.Errorf("%w: %v", ErrInvalidValue, value))
}

// Spec converts the section into an animation spec.
func (a Animation) Spec() (animation.Spec, error) {
	switch strings.ToLower(a.Type) {
	case "spring", "":
		return animation.Spring(animation.SpringConfig{
			Stiffness:                 a.Stiffness,
			Damping:                   a.Damping,
			Mass:                      a.Mass,
			RestSpeedThreshold:        a.RestSpeedThreshold,
			RestDisplacementThreshold: a.RestDisplacementThreshold,
			OvershootClamping:         a.OvershootClamping,
		}), nil
	case "timing":
		cfg := animation.TimingConfig{Duration: a.Duration.Duration}
		if a.Easing != "" {
			easing, ok := animation.EasingByName(a.Easing)
			if !ok {
				return animation.Spec{}, fmt.Errorf("%w: easing %q", ErrInvalidValue, a.Easing)
			}
			cfg.Easing = easing
		}
		return animation.Timing(cfg), nil
	default:
		return animation.Spec{}, fmt.Errorf("%w: animation type %q", ErrInvalidValue, a.Type)
	}
}

// Preset resolves the transition preset: the named preset, or the default
// of the stack mode, with the file's overrides applied.
func (f File) Preset() (stackview.Preset, error) {
	preset := stackview.PresetForMode(stackview.Mode(f.Stack.Mode))
	if f.Stack.Preset != "" {
		named, ok := stackview.PresetByName(f.Stack.Preset)
		if !ok {
			return stackview.Preset{}, invalid("stack.preset", f.Stack.Preset)
		}
		preset = named
	}

	if f.Stack.HeaderMode != "" {
		preset.HeaderMode = stackview.HeaderMode(f.Stack.HeaderMode)
	}
	if f.Transition.Open != nil {
		spec, err := f.Transition.Open.Spec()
		if err != nil {
			return stackview.Preset{}, stackview.NewConfigError("transition.open", err)
		}
		preset.TransitionSpec.Open = spec
	}
	if f.Transition.Close != nil {
		spec, err := f.Transition.Close.Spec()
		if err != nil {
			return stackview.Preset{}, stackview.NewConfigError("transition.close", err)
		}
		preset.TransitionSpec.Close = spec
	}
	return preset, nil
}

// StackConfig builds a coordinator configuration. The caller still sets the
// dispatcher, observer and callbacks.
func (f File) StackConfig() (stackview.Config, error) {
	preset, err := f.Preset()
	if err != nil {
		return stackview.Config{}, err
	}
	return stackview.Config{
		Preset:                   &preset,
		Mode:                     stackview.Mode(f.Stack.Mode),
		DefaultBackTitle:         f.Stack.DefaultBackTitle,
		GestureVelocityThreshold: f.Gesture.VelocityThreshold,
	}, nil
}

// DefaultOptions returns route options carrying the file's gesture settings.
func (f File) DefaultOptions() stackview.Options {
	opts := stackview.Options{
		GesturesEnabled: f.Gesture.Enabled,
		GestureResponseDistance: stackview.GestureResponseDistance{
			Horizontal: f.Gesture.ResponseDistanceHorizontal,
			Vertical:   f.Gesture.ResponseDistanceVertical,
		},
	}
	if f.Gesture.Direction == "inverted" {
		opts.GestureDirection = stackview.GestureInverted
	}
	return opts
}
