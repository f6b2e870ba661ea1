// Command stackdemo shows a navigation stack with animated transitions,
// swipe-back gestures and a floating header.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview"
	"github.com/BrandonKowalski/stackview/pkg/stackview/config"
	"github.com/BrandonKowalski/stackview/pkg/stackview/gesture"
	"github.com/BrandonKowalski/stackview/pkg/stackview/input/touch"
	"github.com/BrandonKowalski/stackview/pkg/stackview/locale"
	"github.com/BrandonKowalski/stackview/pkg/stackview/metrics"
	"github.com/BrandonKowalski/stackview/pkg/stackview/render"
	"github.com/BrandonKowalski/stackview/pkg/stackview/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/veandco/go-sdl2/sdl"
)

type options struct {
	configPath  string
	mode        string
	headerMode  string
	language    string
	logPath     string
	logLevel    string
	font        string
	touchDevice string
	metricsAddr string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "stackdemo",
		Short: "Animated navigation stack demo",
		Example: `
stackdemo --mode modal
stackdemo --config stack.toml --metrics-addr :9090
ENVIRONMENT=DEV WINDOW_WIDTH=480 WINDOW_HEIGHT=800 stackdemo --header-mode screen
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return run(ctx, o)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&o.configPath, "config", "c", "", "TOML configuration file, reloaded on change")
	flags.StringVar(&o.mode, "mode", "", "stack mode: card or modal")
	flags.StringVar(&o.headerMode, "header-mode", "", "header mode: float, screen or none")
	flags.StringVar(&o.language, "locale", "", "language of the screen titles, e.g. en, de, es")
	flags.StringVar(&o.logPath, "log-path", "", "also write logs to this file")
	flags.StringVar(&o.logLevel, "log-level", "", "debug, info, warn or error")
	flags.StringVar(&o.font, "font", "", "path to a TTF font")
	flags.StringVar(&o.touchDevice, "touch-device", "", "evdev touchscreen, e.g. /dev/input/event1")
	flags.StringVar(&o.metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address")

	return cmd
}

// load reads the configuration file, if any, and applies the flags on top.
func (o *options) load() (config.File, error) {
	cfg := config.Default()
	if o.configPath != "" {
		loaded, err := config.Load(o.configPath)
		if err != nil {
			return config.File{}, err
		}
		cfg = loaded
	}
	o.apply(&cfg)
	return cfg, cfg.Validate()
}

func (o *options) apply(cfg *config.File) {
	if o.mode != "" {
		cfg.Stack.Mode = o.mode
	}
	if o.headerMode != "" {
		cfg.Stack.HeaderMode = o.headerMode
	}
	if o.language != "" {
		cfg.Locale.Language = o.language
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	if o.logPath != "" {
		cfg.Log.Path = o.logPath
	}
	if o.font != "" {
		cfg.Window.Font = o.font
	}
}

func run(ctx context.Context, o *options) error {
	cfg, err := o.load()
	if err != nil {
		return err
	}

	if cfg.Log.Path != "" {
		stackview.SetLogPath(cfg.Log.Path)
	}
	stackview.SetRawLogLevel(cfg.Log.Level)
	defer stackview.CloseLogger()
	logger := stackview.GetLogger()

	if cfg.Window.Font == "" {
		return stackview.NewConfigError("window.font", errors.New("a font is required (--font or window.font)"))
	}

	loc, err := locale.New(cfg.Locale.Language)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	observer := metrics.New(reg)
	if o.metricsAddr != "" {
		srv := serveMetrics(o.metricsAddr, reg, logger)
		defer srv.Shutdown(context.Background())
	}

	if err := render.Init(); err != nil {
		return err
	}
	defer render.Quit()

	win, err := render.OpenWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, render.WindowOptions{
		Resizable:  true,
		Fullscreen: cfg.Window.Fullscreen,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	renderer, err := render.NewRenderer(win, render.DefaultTheme(cfg.Window.Font, cfg.Window.FontSize))
	if err != nil {
		return err
	}
	defer renderer.Close()

	nav := router.New()
	screens := newScreens(nav, loc, logger)
	screens.register(cfg.DefaultOptions())

	app := &demo{
		nav:      nav,
		screens:  screens,
		window:   win,
		renderer: renderer,
		observer: observer,
		loc:      loc,
		logger:   logger,
	}
	if err := app.rebuild(cfg); err != nil {
		return err
	}
	defer app.close()

	if _, err := nav.Reset(screenHome, nil); err != nil {
		return err
	}

	var touchEvents <-chan gesture.Event
	if o.touchDevice != "" {
		layout := win.Layout()
		src, err := touch.Open(o.touchDevice, layout.Width, layout.Height)
		if err != nil {
			logger.Warn("Touch device unavailable", "device", o.touchDevice, "error", err)
		} else {
			defer src.Close()
			touchEvents = src.Events()
		}
	}

	reloads := make(chan config.File, 1)
	if o.configPath != "" {
		err := config.Watch(ctx, o.configPath, func(f config.File, err error) {
			if err != nil {
				logger.Error("Configuration reload failed", "path", o.configPath, "error", err)
				return
			}
			o.apply(&f)
			select {
			case reloads <- f:
			default:
			}
		})
		if err != nil {
			logger.Warn("Configuration is not watched", "path", o.configPath, "error", err)
		}
	}

	logger.Info("Stack demo started", "mode", cfg.Stack.Mode, "header_mode", app.coord.HeaderMode(), "locale", loc.Language().String())

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case f := <-reloads:
			if err := app.rebuild(f); err != nil {
				logger.Error("Configuration not applied", "error", err)
			} else {
				stackview.SetRawLogLevel(f.Log.Level)
				screens.register(f.DefaultOptions())
				logger.Info("Configuration reloaded", "mode", f.Stack.Mode)
			}
		default:
		}

		if !app.poll() {
			return nil
		}
		if touchEvents != nil {
			app.input.Drain(touchEvents)
		}

		now := time.Now()
		app.coord.Step(now.Sub(last))
		last = now

		renderer.Draw(app.coord)
		win.Present()
	}
}

func serveMetrics(addr string, reg *prometheus.Registry, logger *slog.Logger) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("Serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Metrics server stopped", "error", err)
		}
	}()
	return srv
}

// demo holds the parts that are rebuilt when the configuration changes.
type demo struct {
	nav      *router.Router
	screens  *screens
	window   *render.Window
	renderer *render.Renderer
	observer stackview.Observer
	loc      *locale.Localizer
	logger   *slog.Logger

	coord       *stackview.Coordinator
	input       *render.Input
	unsubscribe func()
}

// rebuild replaces the coordinator with one built from cfg. Transitions of
// the old one are finished first, so the router holds no pushing or popping
// routes that the new one would never complete.
func (d *demo) rebuild(cfg config.File) error {
	stackCfg, err := cfg.StackConfig()
	if err != nil {
		return err
	}
	stackCfg.Dispatcher = d.nav
	stackCfg.Observer = d.observer
	if stackCfg.DefaultBackTitle == "" {
		stackCfg.DefaultBackTitle = d.loc.BackTitle()
	}
	stackCfg.OnGestureEnd = func(route stackview.Route) {
		d.logger.Debug("Swiped back", "route", route.RouteName)
	}

	coord, err := stackview.NewCoordinator(stackCfg)
	if err != nil {
		return err
	}
	coord.SetLayout(d.window.Layout())

	if d.coord != nil {
		d.coord.FinishTransitions()
	}
	d.close()
	d.coord = coord
	d.input = render.NewInput(coord, d.window, d.renderer, cfg.Gesture.VelocityWindow.Duration)
	d.unsubscribe = d.nav.Subscribe(coord.Update)
	return nil
}

func (d *demo) close() {
	if d.unsubscribe != nil {
		d.unsubscribe()
		d.unsubscribe = nil
	}
	if d.input != nil {
		d.input.Close()
		d.input = nil
	}
}

// poll handles pending SDL events. Keys that open screens are handled here,
// everything else goes to the stack input.
func (d *demo) poll() bool {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if !d.input.Handle(event) {
			return false
		}

		switch e := event.(type) {
		case *sdl.KeyboardEvent:
			if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_RETURN, sdl.K_RIGHT:
				d.screens.openDetail()
			case sdl.K_s:
				d.screens.open(screenSettings)
			}
		case *sdl.ControllerButtonEvent:
			if e.Type != sdl.CONTROLLERBUTTONDOWN {
				continue
			}
			switch sdl.GameControllerButton(e.Button) {
			case sdl.CONTROLLER_BUTTON_A:
				d.screens.openDetail()
			case sdl.CONTROLLER_BUTTON_START:
				d.screens.open(screenSettings)
			}
		}
	}
	return true
}
