package main

import (
	"log/slog"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/locale"
	"github.com/BrandonKowalski/stackview/pkg/stackview/render"
	"github.com/BrandonKowalski/stackview/pkg/stackview/router"
	"github.com/veandco/go-sdl2/sdl"
)

const (
	screenHome     = "home"
	screenDetail   = "detail"
	screenSettings = "settings"
)

var swatches = []uint32{0xFF9500, 0x34C759, 0x5856D6, 0xFF2D55, 0x5AC8FA}

type screens struct {
	nav    *router.Router
	loc    *locale.Localizer
	logger *slog.Logger
	opened int
}

func newScreens(nav *router.Router, loc *locale.Localizer, logger *slog.Logger) *screens {
	return &screens{nav: nav, loc: loc, logger: logger}
}

// register (re)installs every screen with defaults as its base options.
func (s *screens) register(defaults stackview.Options) {
	home := defaults
	home.Title = s.loc.Message(locale.HomeTitle, nil)
	s.nav.Register(screenHome, func(any) any {
		return "Enter: open a detail screen\nS: open settings"
	}, home)

	s.nav.Register(screenDetail, func(params any) any {
		n, _ := params.(int)
		return swatch{color: render.HexToColor(swatches[(n-1+len(swatches))%len(swatches)])}
	}, defaults)

	settings := defaults
	settings.Title = s.loc.Message(locale.SettingsTitle, nil)
	disabled := false
	settings.GesturesEnabled = &disabled
	s.nav.Register(screenSettings, func(any) any {
		return "Swipe back is disabled here. Press Escape to go back."
	}, settings)
}

// openDetail pushes a numbered detail screen and titles it.
func (s *screens) openDetail() {
	s.opened++
	n := s.opened

	key, err := s.nav.Push(screenDetail, n)
	if err != nil {
		s.logger.Error("Unable to open screen", "screen", screenDetail, "error", err)
		return
	}

	title := s.loc.Message(locale.DetailTitle, map[string]any{"Number": n})
	if err := s.nav.SetOptions(key, func(o *stackview.Options) { o.Title = title }); err != nil {
		s.logger.Warn("Unable to set title", "key", key, "error", err)
	}
}

func (s *screens) open(name string) {
	if _, err := s.nav.Push(name, nil); err != nil {
		s.logger.Error("Unable to open screen", "screen", name, "error", err)
	}
}

// swatch is detail content drawn as a colored block.
type swatch struct {
	color sdl.Color
}

func (w swatch) Draw(renderer *sdl.Renderer, bounds sdl.Rect, opacity float64) {
	size := bounds.W / 3
	if bounds.H/3 < size {
		size = bounds.H / 3
	}
	rect := sdl.Rect{
		X: bounds.X + (bounds.W-size)/2,
		Y: bounds.Y + (bounds.H-size)/2,
		W: size,
		H: size,
	}
	renderer.SetDrawColor(w.color.R, w.color.G, w.color.B, uint8(opacity*255))
	renderer.FillRect(&rect)
}
