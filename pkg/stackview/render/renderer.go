// Package render draws a stackview frame with SDL.
//
// The renderer never decides anything about transitions. It samples
// Coordinator.Frame, applies the styles it finds there and reports the sizes
// of the header texts back so header interpolators can align titles.
package render

import (
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
	"github.com/BrandonKowalski/stackview/pkg/stackview/render/icon"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

const (
	shadowWidth = 12
	iconSize    = 24
	iconGap     = 4
)

// Drawable is screen content that draws itself inside its card.
type Drawable interface {
	Draw(renderer *sdl.Renderer, bounds sdl.Rect, opacity float64)
}

// Renderer draws coordinator frames into a Window.
type Renderer struct {
	window   *Window
	theme    Theme
	font     *ttf.Font
	text     *textCache
	backIcon *sdl.Texture
	measured map[string]stackview.TitleLayouts
	backRect sdl.Rect
	backKey  string
	logger   *slog.Logger
}

// NewRenderer opens the theme font and prepares the back icon.
func NewRenderer(window *Window, theme Theme) (*Renderer, error) {
	font, err := ttf.OpenFont(theme.FontPath, theme.FontSize)
	if err != nil {
		return nil, stackview.NewInfrastructureError("open_font", fmt.Errorf("%s: %w", theme.FontPath, err))
	}

	r := &Renderer{
		window:   window,
		theme:    theme,
		font:     font,
		text:     newTextCache(defaultTextCacheSize),
		measured: make(map[string]stackview.TitleLayouts),
		logger:   internal.LibraryLogger().With("component", "renderer"),
	}

	if theme.BackgroundImagePath != "" {
		if err := window.LoadBackground(theme.BackgroundImagePath); err != nil {
			r.logger.Warn("Unable to load background image", "path", theme.BackgroundImagePath, "error", err)
		}
	}

	backIcon, err := r.iconTexture(icon.Back, iconSize)
	if err != nil {
		r.logger.Warn("Unable to rasterize back icon", "error", err)
	}
	r.backIcon = backIcon

	return r, nil
}

func (r *Renderer) iconTexture(svg []byte, size int) (*sdl.Texture, error) {
	img, err := icon.Rasterize(svg, size, size)
	if err != nil {
		return nil, err
	}

	texture, err := r.window.Renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888, sdl.TEXTUREACCESS_STATIC, int32(size), int32(size))
	if err != nil {
		return nil, stackview.NewInfrastructureError("create_texture", err)
	}
	if err := texture.Update(nil, unsafe.Pointer(&img.Pix[0]), img.Stride); err != nil {
		texture.Destroy()
		return nil, stackview.NewInfrastructureError("update_texture", err)
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// Close releases the font and every texture.
func (r *Renderer) Close() {
	r.text.clear()
	if r.backIcon != nil {
		r.backIcon.Destroy()
	}
	r.font.Close()
}

// HitBack reports whether (x, y) is on the back button drawn last frame and
// returns the key of the route that button belongs to.
func (r *Renderer) HitBack(x, y int32) (string, bool) {
	if r.backKey == "" {
		return "", false
	}
	p := sdl.Point{X: x, Y: y}
	return r.backKey, p.InRect(&r.backRect)
}

// Draw renders one frame of c. It does not present.
func (r *Renderer) Draw(c *stackview.Coordinator) {
	sr := r.window.Renderer
	frame := c.Frame()

	sr.SetDrawBlendMode(sdl.BLENDMODE_BLEND)
	bg := r.theme.BackgroundColor
	sr.SetDrawColor(bg.R, bg.G, bg.B, 255)
	sr.Clear()
	r.window.RenderBackground()

	r.backKey = ""

	width := int32(frame.Layout.Width)
	height := int32(frame.Layout.Height)
	contentTop := int32(0)
	if frame.HeaderMode == stackview.HeaderModeFloat {
		contentTop = r.theme.HeaderHeight
	}

	for _, card := range frame.Cards {
		opacity := card.Style.Container.Opacity * card.Style.Card.Opacity
		x := round(card.Style.Container.TranslateX + card.Style.Card.TranslateX)
		y := round(card.Style.Container.TranslateY + card.Style.Card.TranslateY)
		bounds := sdl.Rect{X: x, Y: y, W: width, H: height}

		r.drawShadow(bounds, card.Style.ShadowOpacity)
		r.fill(bounds, r.theme.CardColor, opacity)

		content := sdl.Rect{X: x, Y: y + contentTop, W: width, H: height - contentTop}
		if card.Header != nil && !card.Header.Hidden {
			content.Y = y + r.theme.HeaderHeight
			content.H = height - r.theme.HeaderHeight
		}
		r.drawContent(card.Component, content, opacity)

		if card.Header != nil && !card.Header.Hidden {
			bar := sdl.Rect{X: x, Y: y, W: width, H: r.theme.HeaderHeight}
			r.fill(bar, r.theme.HeaderColor, opacity)
			r.drawSegment(c, *card.Header, bar, card.Focused)
		}

		r.fill(bounds, r.theme.OverlayColor, card.Style.Overlay.Opacity*opacity)
	}

	if frame.Header != nil && frame.Header.Focused >= 0 && frame.Header.Focused < len(frame.Header.Segments) {
		r.drawFloatHeader(c, *frame.Header, width)
	}

	r.forgetMeasured(c)
}

func (r *Renderer) drawFloatHeader(c *stackview.Coordinator, header stackview.HeaderFrame, width int32) {
	if header.Segments[header.Focused].Hidden {
		return
	}

	bar := sdl.Rect{X: 0, Y: 0, W: width, H: r.theme.HeaderHeight}
	r.fill(bar, r.theme.HeaderColor, 1)

	for i, seg := range header.Segments {
		if seg.Hidden {
			continue
		}
		r.drawSegment(c, seg, bar, i == header.Focused)
	}

	line := sdl.Rect{X: 0, Y: r.theme.HeaderHeight - 1, W: width, H: 1}
	r.fill(line, r.theme.ShadowColor, 0.15)
}

func (r *Renderer) drawSegment(c *stackview.Coordinator, seg stackview.HeaderSegment, bar sdl.Rect, focused bool) {
	pad := r.theme.HeaderPadding
	layouts := stackview.TitleLayouts{}

	if title, w, h := r.textTexture(seg.Title, 0); title != nil {
		layouts.Title = stackview.Layout{Width: float64(w), Height: float64(h)}
		dst := sdl.Rect{
			X: bar.X + (bar.W-w)/2 + round(seg.Style.Title.TranslateX),
			Y: bar.Y + (bar.H-h)/2 + round(seg.Style.Title.TranslateY),
			W: w,
			H: h,
		}
		r.copyTinted(title, dst, r.theme.TextColor, seg.Style.Title.Opacity)
	}

	if seg.ShowBack {
		left := bar.X + pad.Left + round(seg.Style.LeftButton.TranslateX)
		iconDst := sdl.Rect{X: left, Y: bar.Y + (bar.H-iconSize)/2, W: iconSize, H: iconSize}
		if r.backIcon != nil {
			r.copyTinted(r.backIcon, iconDst, r.theme.AccentColor, seg.Style.LeftButton.Opacity)
		}

		hit := iconDst
		backTitle := r.pickBackTitle(seg, bar, layouts.Title.Width)
		if texture, w, h := r.textTexture(backTitle, 0); texture != nil {
			layouts.BackTitle = stackview.Layout{Width: float64(w), Height: float64(h)}
			dst := sdl.Rect{
				X: bar.X + pad.Left + iconSize + iconGap + round(seg.Style.BackTitle.TranslateX),
				Y: bar.Y + (bar.H-h)/2 + round(seg.Style.BackTitle.TranslateY),
				W: w,
				H: h,
			}
			r.copyTinted(texture, dst, r.theme.AccentColor, seg.Style.BackTitle.Opacity)
			hit.W = dst.X + dst.W - hit.X
		}

		if focused {
			hit.Y, hit.H = bar.Y, bar.H
			r.backRect = hit
			r.backKey = seg.Route.Key
		}
	}

	if r.measured[seg.Route.Key] != layouts {
		r.measured[seg.Route.Key] = layouts
		c.SetTitleLayout(seg.Route.Key, layouts)
	}
}

// pickBackTitle falls back to the truncated title when the full one would
// run into the centered title.
func (r *Renderer) pickBackTitle(seg stackview.HeaderSegment, bar sdl.Rect, titleWidth float64) string {
	if seg.BackTitle == "" {
		return seg.TruncatedBackTitle
	}
	w, _, err := r.font.SizeUTF8(seg.BackTitle)
	if err != nil {
		return seg.TruncatedBackTitle
	}
	room := float64(bar.W)/2 - titleWidth/2 - float64(r.theme.HeaderPadding.Left+iconSize+iconGap)
	if float64(w) > room {
		return seg.TruncatedBackTitle
	}
	return seg.BackTitle
}

func (r *Renderer) drawContent(component any, bounds sdl.Rect, opacity float64) {
	if opacity <= 0 || component == nil {
		return
	}

	var text string
	switch v := component.(type) {
	case Drawable:
		sr := r.window.Renderer
		sr.SetClipRect(&bounds)
		v.Draw(sr, bounds, opacity)
		sr.SetClipRect(nil)
		return
	case string:
		text = v
	case fmt.Stringer:
		text = v.String()
	default:
		r.logger.Debug("Unsupported screen content", "type", fmt.Sprintf("%T", component))
		return
	}

	pad := r.theme.ContentPadding
	texture, w, h := r.textTexture(text, bounds.W-pad.Left-pad.Right)
	if texture == nil {
		return
	}
	dst := sdl.Rect{X: bounds.X + pad.Left, Y: bounds.Y + pad.Top, W: w, H: h}
	r.copyTinted(texture, dst, r.theme.TextColor, opacity)
}

// textTexture renders text in white so it can be tinted per draw. A positive
// wrap breaks lines at that width and at newlines.
func (r *Renderer) textTexture(text string, wrap int32) (*sdl.Texture, int32, int32) {
	if text == "" {
		return nil, 0, 0
	}

	key := textKey{text: text, wrap: wrap}
	if entry, ok := r.text.get(key); ok {
		return entry.texture, entry.w, entry.h
	}

	white := sdl.Color{R: 255, G: 255, B: 255, A: 255}
	var surface *sdl.Surface
	var err error
	if wrap > 0 {
		surface, err = r.font.RenderUTF8BlendedWrapped(text, white, int(wrap))
	} else {
		surface, err = r.font.RenderUTF8Blended(text, white)
	}
	if err != nil {
		r.logger.Error("Failed to render text", "text", text, "error", err)
		return nil, 0, 0
	}
	defer surface.Free()

	texture, err := r.window.Renderer.CreateTextureFromSurface(surface)
	if err != nil {
		r.logger.Error("Failed to create text texture", "text", text, "error", err)
		return nil, 0, 0
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	r.text.put(key, texture, surface.W, surface.H)
	return texture, surface.W, surface.H
}

func (r *Renderer) copyTinted(texture *sdl.Texture, dst sdl.Rect, color sdl.Color, opacity float64) {
	a := alpha(opacity)
	if a == 0 {
		return
	}
	texture.SetColorMod(color.R, color.G, color.B)
	texture.SetAlphaMod(a)
	r.window.Renderer.Copy(texture, nil, &dst)
}

func (r *Renderer) fill(rect sdl.Rect, color sdl.Color, opacity float64) {
	a := alpha(opacity * float64(color.A) / 255)
	if a == 0 {
		return
	}
	sr := r.window.Renderer
	sr.SetDrawColor(color.R, color.G, color.B, a)
	sr.FillRect(&rect)
}

// drawShadow fades from the card's left edge outward.
func (r *Renderer) drawShadow(card sdl.Rect, opacity float64) {
	if opacity <= 0 {
		return
	}
	for i := int32(0); i < shadowWidth; i++ {
		falloff := 1 - float64(i)/shadowWidth
		strip := sdl.Rect{X: card.X - i - 1, Y: card.Y, W: 1, H: card.H}
		r.fill(strip, r.theme.ShadowColor, opacity*falloff*falloff*0.5)
	}
}

// forgetMeasured drops the text sizes reported for routes no longer rendered.
func (r *Renderer) forgetMeasured(c *stackview.Coordinator) {
	live := make(map[string]struct{}, len(c.Routes()))
	for _, route := range c.Routes() {
		live[route.Key] = struct{}{}
	}
	for key := range r.measured {
		if _, ok := live[key]; !ok {
			delete(r.measured, key)
		}
	}
}

func round(v float64) int32 {
	return int32(math.Round(v))
}
