package render

import (
	"log/slog"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/gesture"
	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
	"github.com/veandco/go-sdl2/sdl"
)

// Input routes SDL events to a coordinator: pointer drags become swipe-back
// gestures, back keys and the header back button go back.
type Input struct {
	coord       *stackview.Coordinator
	window      *Window
	renderer    *Renderer
	driver      *gesture.Driver
	controllers map[sdl.JoystickID]*sdl.GameController
	backPressed string
	logger      *slog.Logger
}

// NewInput creates an Input. renderer may be nil, in which case the header
// back button is not clickable. velocityWindow of zero uses the default.
func NewInput(coord *stackview.Coordinator, window *Window, renderer *Renderer, velocityWindow time.Duration) *Input {
	return &Input{
		coord:       coord,
		window:      window,
		renderer:    renderer,
		driver:      gesture.NewDriver(coord, velocityWindow),
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		logger:      internal.LibraryLogger().With("component", "input"),
	}
}

// Poll handles every pending SDL event. It returns false once the user asked
// to quit.
func (in *Input) Poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if !in.Handle(event) {
			return false
		}
	}
	return true
}

// Drain feeds pointer events from another source, such as a touch device.
func (in *Input) Drain(events <-chan gesture.Event) {
	in.driver.Drain(events)
}

// Handle applies one event. It returns false for a quit request.
func (in *Input) Handle(event sdl.Event) bool {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return false

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED || e.Event == sdl.WINDOWEVENT_RESIZED {
			in.coord.SetLayout(in.window.Layout())
		}

	case *sdl.MouseButtonEvent:
		if e.Which == uint32(sdl.TOUCH_MOUSEID) || e.Button != sdl.BUTTON_LEFT {
			return true
		}
		in.handleMouseButton(e)

	case *sdl.MouseMotionEvent:
		if e.Which == uint32(sdl.TOUCH_MOUSEID) {
			return true
		}
		in.driver.Handle(gesture.Event{Kind: gesture.KindMove, X: float64(e.X), Y: float64(e.Y), At: time.Now()})

	case *sdl.TouchFingerEvent:
		in.handleFinger(e)

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return true
		}
		switch e.Keysym.Sym {
		case sdl.K_ESCAPE, sdl.K_BACKSPACE, sdl.K_AC_BACK:
			in.goBack("")
		}

	case *sdl.ControllerButtonEvent:
		if e.Type == sdl.CONTROLLERBUTTONDOWN && sdl.GameControllerButton(e.Button) == sdl.CONTROLLER_BUTTON_B {
			in.goBack("")
		}

	case *sdl.ControllerDeviceEvent:
		in.handleController(e)
	}
	return true
}

func (in *Input) handleMouseButton(e *sdl.MouseButtonEvent) {
	x, y := float64(e.X), float64(e.Y)

	if e.Type == sdl.MOUSEBUTTONDOWN {
		if in.renderer != nil {
			if key, hit := in.renderer.HitBack(e.X, e.Y); hit {
				in.backPressed = key
				return
			}
		}
		in.driver.Handle(gesture.Event{Kind: gesture.KindDown, X: x, Y: y, At: time.Now()})
		return
	}

	if in.backPressed != "" {
		key := in.backPressed
		in.backPressed = ""
		if hitKey, hit := in.renderer.HitBack(e.X, e.Y); hit && hitKey == key {
			in.goBack(key)
		}
		return
	}
	in.driver.Handle(gesture.Event{Kind: gesture.KindUp, X: x, Y: y, At: time.Now()})
}

// handleFinger scales normalized touch coordinates to the window.
func (in *Input) handleFinger(e *sdl.TouchFingerEvent) {
	layout := in.window.Layout()
	ev := gesture.Event{
		X:  float64(e.X) * layout.Width,
		Y:  float64(e.Y) * layout.Height,
		At: time.Now(),
	}
	switch e.Type {
	case sdl.FINGERDOWN:
		ev.Kind = gesture.KindDown
	case sdl.FINGERMOTION:
		ev.Kind = gesture.KindMove
	case sdl.FINGERUP:
		ev.Kind = gesture.KindUp
	default:
		return
	}
	in.driver.Handle(ev)
}

func (in *Input) handleController(e *sdl.ControllerDeviceEvent) {
	switch e.Type {
	case sdl.CONTROLLERDEVICEADDED:
		controller := sdl.GameControllerOpen(int(e.Which))
		if controller == nil {
			in.logger.Warn("Unable to open controller", "index", e.Which, "error", sdl.GetError())
			return
		}
		id := controller.Joystick().InstanceID()
		in.controllers[id] = controller
		in.logger.Debug("Controller connected", "name", controller.Name(), "id", id)

	case sdl.CONTROLLERDEVICEREMOVED:
		if controller, ok := in.controllers[e.Which]; ok {
			controller.Close()
			delete(in.controllers, e.Which)
			in.logger.Debug("Controller removed", "id", e.Which)
		}
	}
}

func (in *Input) goBack(key string) {
	if in.driver.Active() {
		return
	}
	if err := in.coord.GoBack(key); err != nil {
		in.logger.Debug("Back refused", "key", key, "error", err)
	}
}

// Close releases every open controller and cancels a drag in progress.
func (in *Input) Close() {
	in.driver.Handle(gesture.Event{Kind: gesture.KindCancel, At: time.Now()})
	for id, controller := range in.controllers {
		controller.Close()
		delete(in.controllers, id)
	}
}
