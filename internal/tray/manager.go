// Package tray owns the system tray icon: its menu, its tooltip and the
// routing of menu selections and icon clicks to the rest of the application.
package tray

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"pomo/internal/events"
)

// Emitter delivers domain events to the application layer
type Emitter interface {
	Emit(name events.Name, payload interface{})
}

// WindowController is the subset of the main window lifecycle the tray drives
type WindowController interface {
	ShowAndFocus()
	Quit()
}

// Dispatcher runs fn on the application event loop
type Dispatcher func(fn func())

func runInline(fn func()) { fn() }

// Icon is a registered tray icon
type Icon struct {
	ID     string
	handle Handle

	mu      sync.RWMutex
	tooltip string
}

// Tooltip returns the current hover text
func (i *Icon) Tooltip() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.tooltip
}

func (i *Icon) setTooltip(text string) {
	i.mu.Lock()
	i.tooltip = text
	i.mu.Unlock()
}

// Option configures a Manager
type Option func(*Manager)

// WithIconSource overrides the embedded icon
func WithIconSource(src IconSource) Option {
	return func(m *Manager) {
		m.iconSource = src
	}
}

// WithDispatcher routes native callbacks through the given event loop. By
// default callbacks run on the host goroutine that delivered them.
func WithDispatcher(d Dispatcher) Option {
	return func(m *Manager) {
		m.dispatch = d
	}
}

// Manager creates the tray icon and translates its callbacks into domain
// events and window lifecycle actions.
type Manager struct {
	host       Host
	emitter    Emitter
	window     WindowController
	iconSource IconSource
	dispatch   Dispatcher
	logger     *zap.Logger

	mu    sync.RWMutex
	icons map[string]*Icon
}

// NewManager creates a tray manager on top of a platform host
func NewManager(host Host, emitter Emitter, window WindowController, logger *zap.Logger, opts ...Option) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		host:       host,
		emitter:    emitter,
		window:     window,
		iconSource: DefaultIcon,
		dispatch:   runInline,
		logger:     logger.Named("tray"),
		icons:      make(map[string]*Icon),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create builds the main tray icon with the given tooltip and menu and wires
// its callbacks. Any failure is fatal to application startup.
func (m *Manager) Create(tooltip string, menu MenuSpec) (*Icon, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.icons[MainTrayID]; exists {
		return nil, &TrayCreationError{TrayID: MainTrayID, Op: "register", Err: ErrTrayExists}
	}

	if err := menu.Validate(); err != nil {
		return nil, &TrayCreationError{TrayID: MainTrayID, Op: "build menu", Err: err}
	}

	image, err := m.iconSource()
	if err != nil {
		if !errors.Is(err, ErrIconUnavailable) {
			err = errors.Join(ErrIconUnavailable, err)
		}
		return nil, &TrayCreationError{TrayID: MainTrayID, Op: "load icon", Err: err}
	}
	if len(image) == 0 {
		return nil, &TrayCreationError{TrayID: MainTrayID, Op: "load icon", Err: ErrIconUnavailable}
	}

	handle, err := m.host.CreateIcon(IconSpec{
		ID:      MainTrayID,
		Icon:    image,
		Tooltip: tooltip,
		Menu:    menu,
	})
	if err != nil {
		return nil, &TrayCreationError{TrayID: MainTrayID, Op: "register icon", Err: err}
	}

	m.host.RegisterMenuHandler(handle, func(id string) {
		m.dispatch(func() { m.OnRawMenuEvent(id) })
	})
	m.host.RegisterClickHandler(handle, func(ev IconEvent) {
		m.dispatch(func() { m.OnTrayIconEvent(ev) })
	})

	icon := &Icon{ID: MainTrayID, handle: handle, tooltip: tooltip}
	m.icons[MainTrayID] = icon

	m.logger.Info("Tray icon created",
		zap.String("tray_id", MainTrayID),
		zap.String("tooltip", tooltip),
		zap.Int("menu_items", len(menu.Items())))
	return icon, nil
}

// Icon returns the registered tray icon with the given id
func (m *Manager) Icon(id string) (*Icon, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	icon, ok := m.icons[id]
	return icon, ok
}

// OnRawMenuEvent handles a menu selection as reported by the native menu.
// Ids outside the known set are ignored.
func (m *Manager) OnRawMenuEvent(raw string) {
	id, ok := ParseMenuItemID(raw)
	if !ok {
		return
	}
	m.OnMenuEvent(id)
}

// OnMenuEvent routes a menu selection. Timer actions become domain events,
// quit terminates the process.
func (m *Manager) OnMenuEvent(id MenuItemID) {
	switch id {
	case MenuPlayPause:
		m.emit(events.TrayPlayPause)
	case MenuReset:
		m.emit(events.TrayReset)
	case MenuSkip:
		m.emit(events.TraySkip)
	case MenuQuit:
		m.logger.Info("Quit selected from tray menu")
		m.window.Quit()
	}
}

func (m *Manager) emit(name events.Name) {
	m.logger.Debug("Menu item selected", zap.String("event", string(name)))
	m.emitter.Emit(name, nil)
}

// OnTrayIconEvent reveals the main window on a left-button release click.
// Every other gesture is ignored.
func (m *Manager) OnTrayIconEvent(ev IconEvent) {
	if !ev.IsLeftClickUp() {
		return
	}
	m.window.ShowAndFocus()
}

// SetTooltip replaces the hover text of the tray icon. A tray that does not
// exist is not an error.
func (m *Manager) SetTooltip(trayID, text string) {
	icon, ok := m.Icon(trayID)
	if !ok {
		return
	}
	m.host.SetTooltip(icon.handle, text)
	icon.setTooltip(text)
}
