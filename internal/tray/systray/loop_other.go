//go:build !nogui && !headless && !darwin

package systray

import (
	"fmt"
	"runtime"
	"time"

	esystray "github.com/energye/systray"
	"go.uber.org/zap"

	"pomo/internal/tray"
)

// CreateIcon starts the native tray loop on its own OS thread and builds the
// icon and menu. It returns once the tray reported ready.
func (h *Host) CreateIcon(spec tray.IconSpec) (tray.Handle, error) {
	if err := h.claim(spec); err != nil {
		return 0, err
	}

	ready := make(chan struct{})
	go func() {
		// The hidden window created by the tray and its message loop must
		// share one OS thread.
		runtime.LockOSThread()
		esystray.Run(func() {
			h.build(spec)
			close(ready)
		}, func() {
			h.logger.Debug("Native tray loop exited")
			close(h.done)
		})
	}()

	select {
	case <-ready:
		h.logger.Debug("Native tray ready", zap.String("tray_id", spec.ID))
		return mainHandle, nil
	case <-h.done:
		return 0, fmt.Errorf("%w: tray loop exited during startup", tray.ErrTrayUnavailable)
	case <-time.After(h.readyTimeout):
		return 0, fmt.Errorf("%w: tray not ready after %s", tray.ErrTrayUnavailable, h.readyTimeout)
	}
}

// Quit removes the icon and stops the native tray loop
func (h *Host) Quit() {
	if !h.isStarted() {
		return
	}

	esystray.Quit()
	select {
	case <-h.done:
	case <-time.After(h.readyTimeout):
		h.logger.Warn("Native tray loop did not exit in time")
	}
}
