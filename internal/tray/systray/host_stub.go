//go:build nogui || headless

package systray

import (
	"time"

	"go.uber.org/zap"

	"pomo/internal/tray"
)

// DefaultReadyTimeout bounds how long CreateIcon waits for the OS tray
const DefaultReadyTimeout = 5 * time.Second

// Host is the tray host for builds without a native tray. Creating an icon
// always fails with tray.ErrTrayUnavailable.
type Host struct {
	logger *zap.Logger
}

// New creates a tray host that reports the tray as unavailable
func New(logger *zap.Logger, _ time.Duration) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Host{logger: logger.Named("systray")}
}

// CreateIcon always fails
func (h *Host) CreateIcon(tray.IconSpec) (tray.Handle, error) {
	h.logger.Warn("System tray not supported in this build")
	return 0, tray.ErrTrayUnavailable
}

func (h *Host) SetTooltip(tray.Handle, string) {}
func (h *Host) RegisterMenuHandler(tray.Handle, func(string)) {}
func (h *Host) RegisterClickHandler(tray.Handle, func(tray.IconEvent)) {}
func (h *Host) Quit() {}
