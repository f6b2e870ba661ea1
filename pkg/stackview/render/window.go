package render

import (
	"os"
	"strconv"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/constants"
	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Init starts the SDL subsystems the renderer needs. Call Quit when done.
func Init() error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER); err != nil {
		return stackview.NewInfrastructureError("sdl_init", err)
	}
	if err := ttf.Init(); err != nil {
		sdl.Quit()
		return stackview.NewInfrastructureError("ttf_init", err)
	}
	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.LibraryLogger().Warn("Image support unavailable", "error", err)
	}
	sdl.SetHint(sdl.HINT_TOUCH_MOUSE_EVENTS, "0")
	return nil
}

// Quit shuts SDL down.
func Quit() {
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}

// Window wraps the SDL window and renderer.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	Background      *sdl.Texture
	hasVSync        bool
	lastPresentTime uint64
}

// OpenWindow creates a window of the given size. In dev mode the window is
// decorated and WINDOW_WIDTH / WINDOW_HEIGHT override the size.
func OpenWindow(title string, width, height int32, opts WindowOptions) (*Window, error) {
	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)

	if constants.IsDevMode() {
		opts.Borderless = false
		opts.Fullscreen = false
		x, y = int32(50), int32(50)
		width = envSize(constants.WindowWidthEnvVar, width)
		height = envSize(constants.WindowHeightEnvVar, height)
	}
	if width <= 0 {
		width = constants.DefaultWindowWidth
	}
	if height <= 0 {
		height = constants.DefaultWindowHeight
	}

	internal.LibraryLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, opts.ToSDLFlags())
	if err != nil {
		return nil, stackview.NewInfrastructureError("create_window", err)
	}

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		return nil, stackview.NewInfrastructureError("create_renderer", err)
	}

	info, err := renderer.GetInfo()
	vsync := err == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil || n <= 0 {
		internal.LibraryLogger().Warn("Invalid window size; using default", "env", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Size returns the drawable size in pixels.
func (w *Window) Size() (int32, int32) {
	width, height, err := w.Renderer.GetOutputSize()
	if err != nil {
		return w.Window.GetSize()
	}
	return width, height
}

// Layout returns the drawable size as a stack layout.
func (w *Window) Layout() stackview.Layout {
	width, height := w.Size()
	return stackview.Layout{Width: float64(width), Height: float64(height)}
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// LoadBackground replaces the background image. An empty path removes it.
func (w *Window) LoadBackground(path string) error {
	if w.Background != nil {
		w.Background.Destroy()
		w.Background = nil
	}
	if path == "" {
		return nil
	}
	texture, err := img.LoadTexture(w.Renderer, path)
	if err != nil {
		return stackview.NewInfrastructureError("load_background", err)
	}
	w.Background = texture
	return nil
}

// RenderBackground draws the background image stretched over the window.
func (w *Window) RenderBackground() {
	if w.Background == nil {
		return
	}
	width, height := w.Size()
	w.Renderer.Copy(w.Background, nil, &sdl.Rect{X: 0, Y: 0, W: width, H: height})
}

// Close destroys the renderer and the window.
func (w *Window) Close() {
	if w.Background != nil {
		w.Background.Destroy()
	}
	w.Renderer.Destroy()
	w.Window.Destroy()
}
