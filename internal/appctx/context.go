package appctx

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"pomo/internal/config"
	"pomo/internal/events"
	"pomo/internal/notify"
	"pomo/internal/tray"
	"pomo/internal/window"
)

const shutdownTimeout = 2 * time.Second

// ApplicationContext wires the tray, the main window lifecycle and the event
// bridge around a single event loop
type ApplicationContext struct {
	Config *config.Config
	Logger *zap.Logger

	Loop     *Loop
	Events   *events.Bridge
	Window   *window.Controller
	Tray     *tray.Manager
	Notifier *notify.Notifier

	trayHost     tray.Host
	shutdownOnce sync.Once
}

// NewApplicationContext creates the application on top of the given hosts
func NewApplicationContext(cfg *config.Config, logger *zap.Logger, hosts Hosts, opts ...tray.Option) (*ApplicationContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}
	if hosts.Tray == nil {
		return nil, fmt.Errorf("tray host cannot be nil")
	}
	if hosts.Window == nil {
		return nil, fmt.Errorf("window host cannot be nil")
	}

	loop := NewLoop(defaultQueueSize, logger)
	bridge := events.NewBridge(hosts.Events, logger)
	controller := window.NewController(exitGuard{Host: hosts.Window, loop: loop}, logger)

	dispatch := func(fn func()) {
		loop.Post(fn)
	}
	opts = append([]tray.Option{tray.WithDispatcher(dispatch)}, opts...)
	manager := tray.NewManager(hosts.Tray, bridge, controller, logger, opts...)

	return &ApplicationContext{
		Config:   cfg,
		Logger:   logger,
		Loop:     loop,
		Events:   bridge,
		Window:   controller,
		Tray:     manager,
		Notifier: notify.New(cfg.Notifications, logger),
		trayHost: hosts.Tray,
	}, nil
}

// Start runs the event loop and creates the tray icon. A tray failure is
// fatal and leaves the loop stopped.
func (a *ApplicationContext) Start() error {
	a.Loop.Start()

	if _, err := a.Tray.Create(a.Config.Tray.Tooltip, tray.DefaultMenu(a.Config.Tray.Labels)); err != nil {
		a.Loop.Stop()
		return fmt.Errorf("failed to create tray: %w", err)
	}

	a.Logger.Info("Application started",
		zap.String("window", window.MainWindowID),
		zap.String("tray", tray.MainTrayID),
		zap.Bool("notifications", a.Notifier.Enabled()))
	return nil
}

// OnCloseRequested handles a close request for the main window and reports
// whether the default close must be prevented. It blocks until the request
// has been processed by the event loop.
func (a *ApplicationContext) OnCloseRequested(ctx context.Context) (prevent bool) {
	if a.Window.Terminated() {
		return false
	}

	err := a.Loop.Do(ctx, func() {
		prevent = a.Window.OnCloseRequested()
	})
	if err != nil {
		return !a.Window.Terminated()
	}
	return prevent
}

// SetTrayTooltip replaces the tray hover text. It returns without waiting for
// the update.
func (a *ApplicationContext) SetTrayTooltip(text string) {
	a.Loop.Post(func() {
		a.Tray.SetTooltip(tray.MainTrayID, text)
	})
}

// Notify shows a desktop notification
func (a *ApplicationContext) Notify(title, body string) error {
	return a.Notifier.Notify(title, body)
}

// Shutdown stops the event loop and removes the tray icon
func (a *ApplicationContext) Shutdown() {
	a.shutdownOnce.Do(func() {
		a.Loop.Stop()
		select {
		case <-a.Loop.Done():
		case <-time.After(shutdownTimeout):
			a.Logger.Warn("Event loop did not drain before shutdown", zap.Duration("timeout", shutdownTimeout))
		}

		if q, ok := a.trayHost.(trayQuitter); ok {
			q.Quit()
		}
		a.Logger.Info("Application shut down")
	})
}
