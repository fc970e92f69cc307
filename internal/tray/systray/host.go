//go:build !nogui && !headless

// Package systray implements the tray host on top of the native system tray.
package systray

import (
	"sync"
	"time"

	esystray "github.com/energye/systray"
	"go.uber.org/zap"

	"pomo/internal/tray"
)

// DefaultReadyTimeout bounds how long CreateIcon waits for the OS tray
const DefaultReadyTimeout = 5 * time.Second

const mainHandle tray.Handle = 1

// Host drives the process-wide native tray. Only one icon is supported.
type Host struct {
	logger       *zap.Logger
	readyTimeout time.Duration

	mu      sync.RWMutex
	started bool
	ready   bool
	tooltip string
	onMenu  func(id string)
	onClick func(ev tray.IconEvent)
	done    chan struct{}
}

// New creates a native tray host
func New(logger *zap.Logger, readyTimeout time.Duration) *Host {
	if logger == nil {
		logger = zap.NewNop()
	}
	if readyTimeout <= 0 {
		readyTimeout = DefaultReadyTimeout
	}
	return &Host{
		logger:       logger.Named("systray"),
		readyTimeout: readyTimeout,
		done:         make(chan struct{}),
	}
}

// claim marks the singleton tray as taken
func (h *Host) claim(spec tray.IconSpec) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.started {
		return tray.ErrTrayExists
	}
	h.started = true
	h.tooltip = spec.Tooltip
	return nil
}

// build populates the icon and menu. It runs on the native tray thread once
// the tray is ready.
func (h *Host) build(spec tray.IconSpec) {
	esystray.SetIcon(platformIcon(spec.Icon))

	esystray.SetOnClick(func(esystray.IMenu) { h.click(clickEvent(clickLeft)) })
	esystray.SetOnDClick(func(esystray.IMenu) { h.click(clickEvent(clickDouble)) })
	esystray.SetOnRClick(func(menu esystray.IMenu) {
		h.click(clickEvent(clickRight))
		menu.ShowMenu()
	})

	for _, entry := range spec.Menu.Entries {
		if entry.Separator {
			esystray.AddSeparator()
			continue
		}
		id := string(entry.Item.ID)
		item := esystray.AddMenuItem(entry.Item.Label, entry.Item.Label)
		if !entry.Item.Enabled {
			item.Disable()
		}
		item.Click(func() { h.menu(id) })
	}

	// tooltip updates may have arrived before the tray was ready
	h.mu.Lock()
	h.ready = true
	tooltip := h.tooltip
	h.mu.Unlock()
	esystray.SetTooltip(tooltip)
}

func (h *Host) menu(id string) {
	h.mu.RLock()
	fn := h.onMenu
	h.mu.RUnlock()
	if fn != nil {
		fn(id)
	}
}

func (h *Host) click(ev tray.IconEvent) {
	h.mu.RLock()
	fn := h.onClick
	h.mu.RUnlock()
	if fn != nil {
		fn(ev)
	}
}

// SetTooltip replaces the hover text
func (h *Host) SetTooltip(_ tray.Handle, text string) {
	h.mu.Lock()
	h.tooltip = text
	ready := h.ready
	h.mu.Unlock()
	if ready {
		esystray.SetTooltip(text)
	}
}

// RegisterMenuHandler sets the menu selection callback
func (h *Host) RegisterMenuHandler(_ tray.Handle, fn func(id string)) {
	h.mu.Lock()
	h.onMenu = fn
	h.mu.Unlock()
}

// RegisterClickHandler sets the icon click callback
func (h *Host) RegisterClickHandler(_ tray.Handle, fn func(ev tray.IconEvent)) {
	h.mu.Lock()
	h.onClick = fn
	h.mu.Unlock()
}

func (h *Host) isStarted() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.started
}
