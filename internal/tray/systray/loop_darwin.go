//go:build !nogui && !headless && darwin

package systray

import (
	esystray "github.com/energye/systray"
	"go.uber.org/zap"

	"pomo/internal/tray"
)

// CreateIcon attaches the status item to the application run loop. The
// window runtime owns the main thread and runs that loop, so the icon and
// menu are built once it starts; CreateIcon must be called on the main
// goroutine before the window runtime takes over.
func (h *Host) CreateIcon(spec tray.IconSpec) (tray.Handle, error) {
	if err := h.claim(spec); err != nil {
		return 0, err
	}

	esystray.Register(func() {
		h.build(spec)
		h.logger.Debug("Native tray ready", zap.String("tray_id", spec.ID))
	}, func() {
		h.logger.Debug("Native tray detached")
		close(h.done)
	})
	return mainHandle, nil
}

// Quit does nothing: the status item belongs to the application run loop
// and goes away when the window runtime terminates it.
func (h *Host) Quit() {}
