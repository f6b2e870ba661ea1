package touch

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/gesture"
	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
	"github.com/holoplot/go-evdev"
	"go.uber.org/atomic"
)

const eventBuffer = 64

// Source reads one evdev device in the background.
type Source struct {
	device  *evdev.InputDevice
	decoder *Decoder
	events  chan gesture.Event
	closed  atomic.Bool
	logger  *slog.Logger
}

// Open starts reading the touchscreen at path, mapping it onto a surface of
// width by height pixels.
func Open(path string, width, height float64) (*Source, error) {
	device, err := evdev.Open(path)
	if err != nil {
		return nil, stackview.NewInfrastructureError("open_touch_device", fmt.Errorf("%s: %w", path, err))
	}

	infos, err := device.AbsInfos()
	if err != nil {
		device.Close()
		return nil, stackview.NewInfrastructureError("read_touch_axes", fmt.Errorf("%s: %w", path, err))
	}

	s := &Source{
		device:  device,
		decoder: NewDecoder(axis(infos, evdev.ABS_MT_POSITION_X, evdev.ABS_X), axis(infos, evdev.ABS_MT_POSITION_Y, evdev.ABS_Y), width, height),
		events:  make(chan gesture.Event, eventBuffer),
		logger:  internal.LibraryLogger().With("component", "touch", "device", path),
	}

	name, _ := device.Name()
	s.logger.Debug("Touch device opened", "name", name)

	go s.read()
	return s, nil
}

func axis(infos map[evdev.EvCode]evdev.AbsInfo, codes ...evdev.EvCode) Axis {
	for _, code := range codes {
		if info, ok := infos[code]; ok && info.Maximum > info.Minimum {
			return Axis{Min: info.Minimum, Max: info.Maximum}
		}
	}
	return Axis{}
}

// Events delivers decoded pointer events. It is closed when reading stops.
func (s *Source) Events() <-chan gesture.Event {
	return s.events
}

func (s *Source) read() {
	defer close(s.events)

	for {
		ev, err := s.device.ReadOne()
		if err != nil {
			if !s.closed.Load() {
				s.logger.Error("Touch device read failed", "error", err)
			}
			return
		}

		out, ok := s.decoder.Feed(*ev, time.Now())
		if !ok {
			continue
		}
		select {
		case s.events <- out:
		default:
			s.logger.Warn("Touch event dropped", "kind", out.Kind.String())
		}
	}
}

// Close stops reading and releases the device.
func (s *Source) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	if err := s.device.Close(); err != nil {
		return stackview.NewInfrastructureError("close_touch_device", err)
	}
	return nil
}
