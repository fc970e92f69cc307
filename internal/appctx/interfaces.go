package appctx

import (
	"pomo/internal/events"
	"pomo/internal/tray"
	"pomo/internal/window"
)

// Hosts are the platform capabilities the application is built on
type Hosts struct {
	// Tray registers the tray icon and delivers its callbacks
	Tray tray.Host

	// Window shows, hides and focuses the main window and exits the process
	Window window.Host

	// Events receives domain events for the frontend. May be nil.
	Events events.Sender
}

// trayQuitter is implemented by tray hosts that own a native loop
type trayQuitter interface {
	Quit()
}

// exitGuard stops the event loop before the process exits so that nothing
// queued behind the quit is processed.
type exitGuard struct {
	window.Host
	loop *Loop
}

func (g exitGuard) Exit(code int) {
	g.loop.Stop()
	g.Host.Exit(code)
}
