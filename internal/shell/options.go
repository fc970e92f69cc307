package shell

import (
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"

	"pomo/internal/config"
)

// Options builds the webview application options for the main window
func (s *Shell) Options(cfg config.WindowConfig, icon []byte, commands *Commands) *options.App {
	return &options.App{
		Title:     cfg.Title,
		Width:     cfg.Width,
		Height:    cfg.Height,
		MinWidth:  cfg.MinWidth,
		MinHeight: cfg.MinHeight,
		// close requests go through OnBeforeClose so the lifecycle
		// controller decides between hiding and exiting
		HideWindowOnClose: false,
		StartHidden:       false,
		BackgroundColour:  &options.RGBA{R: 255, G: 245, B: 242, A: 255},
		AssetServer: &assetserver.Options{
			Assets: Assets(),
		},
		OnStartup:        s.OnStartup,
		OnBeforeClose:    s.OnBeforeClose,
		OnShutdown:       s.OnShutdown,
		WindowStartState: options.Normal,
		Bind: []interface{}{
			commands,
		},
		Linux: &linux.Options{
			Icon: icon,
		},
	}
}
