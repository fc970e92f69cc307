// Package shell hosts the main window in a webview and connects its lifecycle
// callbacks to the application context.
package shell

import (
	"context"
	"embed"
	"io/fs"
	"sync"
	"time"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"
	"go.uber.org/zap"

	"pomo/internal/appctx"
	"pomo/internal/events"
)

//go:embed all:frontend/dist
var assets embed.FS

// closeTimeout bounds how long a close request may wait for the event loop
const closeTimeout = 2 * time.Second

// Assets returns the embedded frontend
func Assets() fs.FS {
	return assets
}

// Shell is the window host and the frontend event sender. It becomes usable
// once the webview runtime called OnStartup.
type Shell struct {
	logger *zap.Logger

	mu          sync.RWMutex
	ctx         context.Context
	app         *appctx.ApplicationContext
	exitCode    int
	pendingQuit bool
}

// New creates a shell
func New(logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{logger: logger.Named("shell")}
}

// Attach connects the shell to the application it hosts
func (s *Shell) Attach(app *appctx.ApplicationContext) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.app = app
}

func (s *Shell) runtimeContext() context.Context {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctx
}

func (s *Shell) application() *appctx.ApplicationContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.app
}

// Show makes the main window visible
func (s *Shell) Show() {
	ctx := s.runtimeContext()
	if ctx == nil {
		return
	}
	wailsruntime.WindowShow(ctx)
	wailsruntime.WindowUnminimise(ctx)
}

// Hide removes the main window from view without destroying it
func (s *Shell) Hide() {
	ctx := s.runtimeContext()
	if ctx == nil {
		return
	}
	wailsruntime.WindowHide(ctx)
}

// Focus brings the main window to the foreground
func (s *Shell) Focus() {
	ctx := s.runtimeContext()
	if ctx == nil {
		return
	}
	wailsruntime.WindowSetAlwaysOnTop(ctx, true)
	wailsruntime.WindowSetAlwaysOnTop(ctx, false)
}

// Exit ends the webview run loop. The quit runs on its own goroutine because
// the runtime calls back into OnBeforeClose while quitting.
func (s *Shell) Exit(code int) {
	s.mu.Lock()
	s.exitCode = code
	ctx := s.ctx
	if ctx == nil {
		s.pendingQuit = true
	}
	s.mu.Unlock()

	if ctx == nil {
		s.logger.Info("Quit requested before the window started, deferring")
		return
	}
	go wailsruntime.Quit(ctx)
}

// ExitCode is the code the process should exit with once the run loop ends
func (s *Shell) ExitCode() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.exitCode
}

// Send delivers a domain event to the frontend
func (s *Shell) Send(e events.Event) {
	ctx := s.runtimeContext()
	if ctx == nil {
		s.logger.Debug("Frontend not ready, dropping event", zap.String("event", string(e.Name)))
		return
	}
	if e.Payload == nil {
		wailsruntime.EventsEmit(ctx, string(e.Name))
		return
	}
	wailsruntime.EventsEmit(ctx, string(e.Name), e.Payload)
}

// OnStartup is called by the webview runtime once the window exists
func (s *Shell) OnStartup(ctx context.Context) {
	s.mu.Lock()
	s.ctx = ctx
	pending := s.pendingQuit
	s.mu.Unlock()

	s.logger.Info("Window started")
	if pending {
		go wailsruntime.Quit(ctx)
	}
}

// OnBeforeClose intercepts every close of the main window. Returning true
// keeps the process alive with the window hidden.
func (s *Shell) OnBeforeClose(ctx context.Context) (prevent bool) {
	app := s.application()
	if app == nil || app.Window.Terminated() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, closeTimeout)
	defer cancel()
	return app.OnCloseRequested(ctx)
}

// OnShutdown is called by the webview runtime after the window is gone
func (s *Shell) OnShutdown(_ context.Context) {
	if app := s.application(); app != nil {
		app.Shutdown()
	}
	s.logger.Info("Window shut down", zap.Int("exit_code", s.ExitCode()))
}
