// Package notify shows desktop notifications on behalf of the frontend.
package notify

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gen2brain/beeep"
	"go.uber.org/zap"

	"pomo/internal/config"
)

// ErrEmptyNotification is returned when both title and body are blank
var ErrEmptyNotification = errors.New("notification has no title or body")

// sendFunc delivers a notification to the OS
type sendFunc func(title, body string) error

// Notifier shows desktop notifications when they are enabled in config
type Notifier struct {
	enabled bool
	send    sendFunc
	logger  *zap.Logger
}

var appNameOnce sync.Once

// New creates a notifier from config
func New(cfg config.NotificationConfig, logger *zap.Logger) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Enabled && cfg.AppName != "" {
		appNameOnce.Do(func() {
			beeep.AppName = cfg.AppName
		})
	}
	return &Notifier{
		enabled: cfg.Enabled,
		send:    beeepSend,
		logger:  logger.Named("notify"),
	}
}

func beeepSend(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Enabled reports whether notifications are shown
func (n *Notifier) Enabled() bool {
	return n.enabled
}

// Notify shows a notification. When notifications are disabled the call
// is accepted and dropped.
func (n *Notifier) Notify(title, body string) error {
	title = strings.TrimSpace(title)
	body = strings.TrimSpace(body)
	if title == "" && body == "" {
		return ErrEmptyNotification
	}

	if !n.enabled {
		n.logger.Debug("Notifications disabled, dropping", zap.String("title", title))
		return nil
	}

	if err := n.send(title, body); err != nil {
		n.logger.Warn("Failed to show notification",
			zap.String("title", title),
			zap.Error(err))
		return fmt.Errorf("failed to show notification: %w", err)
	}

	n.logger.Debug("Notification shown", zap.String("title", title))
	return nil
}
