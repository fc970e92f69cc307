package shell

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"pomo/internal/appctx"
	"pomo/internal/config"
	"pomo/internal/events"
	"pomo/internal/tray"
	"pomo/internal/window"
)

type stubTrayHost struct {
	tooltips []string
}

func (h *stubTrayHost) CreateIcon(tray.IconSpec) (tray.Handle, error) { return 1, nil }
func (h *stubTrayHost) SetTooltip(_ tray.Handle, text string) { h.tooltips = append(h.tooltips, text) }
func (h *stubTrayHost) RegisterMenuHandler(tray.Handle, func(string)) {}
func (h *stubTrayHost) RegisterClickHandler(tray.Handle, func(tray.IconEvent)) {}

type stubWindowHost struct {
	hides int
}

func (h *stubWindowHost) Show() {}
func (h *stubWindowHost) Hide() { h.hides++ }
func (h *stubWindowHost) Focus() {}
func (h *stubWindowHost) Exit(int) {}

func newApp(t *testing.T) (*appctx.ApplicationContext, *stubTrayHost, *stubWindowHost) {
	t.Helper()
	trayHost := &stubTrayHost{}
	windowHost := &stubWindowHost{}
	app, err := appctx.NewApplicationContext(config.DefaultConfig(), zaptest.NewLogger(t), appctx.Hosts{
		Tray:   trayHost,
		Window: windowHost,
	})
	require.NoError(t, err)
	require.NoError(t, app.Start())
	t.Cleanup(app.Shutdown)
	return app, trayHost, windowHost
}

func TestShellBeforeStartup(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	assert.NotPanics(t, func() {
		s.Show()
		s.Hide()
		s.Focus()
		s.Send(events.Event{Name: events.TrayPlayPause})
	})
}

func TestExitBeforeStartupIsDeferred(t *testing.T) {
	s := New(zaptest.NewLogger(t))

	s.Exit(window.ExitCodeQuit)

	assert.True(t, s.pendingQuit)
	assert.Equal(t, window.ExitCodeQuit, s.ExitCode())
}

func TestOnBeforeCloseWithoutApp(t *testing.T) {
	s := New(zaptest.NewLogger(t))
	assert.False(t, s.OnBeforeClose(context.Background()))
}

func TestOnBeforeCloseHidesWindow(t *testing.T) {
	app, _, windowHost := newApp(t)
	s := New(zaptest.NewLogger(t))
	s.Attach(app)

	assert.True(t, s.OnBeforeClose(context.Background()))
	assert.True(t, s.OnBeforeClose(context.Background()))

	assert.Equal(t, 1, windowHost.hides)
	assert.Equal(t, window.StateHidden, app.Window.State())
}

func TestOnBeforeCloseAfterQuit(t *testing.T) {
	app, _, _ := newApp(t)
	s := New(zaptest.NewLogger(t))
	s.Attach(app)

	app.Tray.OnMenuEvent(tray.MenuQuit)

	assert.False(t, s.OnBeforeClose(context.Background()))
}

func TestCommandsSetTrayTooltip(t *testing.T) {
	app, trayHost, _ := newApp(t)
	commands := NewCommands(app)

	commands.SetTrayTooltip("Break 04:12")
	require.NoError(t, app.Loop.Do(context.Background(), func() {}))

	assert.Equal(t, []string{"Break 04:12"}, trayHost.tooltips)
}

func TestCommandsNotifyRejectsEmpty(t *testing.T) {
	app, _, _ := newApp(t)
	commands := NewCommands(app)

	assert.Error(t, commands.Notify("", ""))
}

func TestOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	s := New(zaptest.NewLogger(t))
	commands := &Commands{}

	opts := s.Options(cfg.Window, []byte{1}, commands)

	assert.Equal(t, cfg.Window.Title, opts.Title)
	assert.Equal(t, cfg.Window.Width, opts.Width)
	assert.Equal(t, cfg.Window.MinHeight, opts.MinHeight)
	assert.False(t, opts.HideWindowOnClose, "close must reach OnBeforeClose")
	assert.NotNil(t, opts.OnStartup)
	assert.NotNil(t, opts.OnBeforeClose)
	assert.NotNil(t, opts.OnShutdown)
	assert.Equal(t, []interface{}{commands}, opts.Bind)
}

func TestAssetsContainIndex(t *testing.T) {
	data, err := fs.ReadFile(Assets(), "frontend/dist/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(data), "tray-play-pause")
	assert.Contains(t, string(data), "SetTrayTooltip")
}
