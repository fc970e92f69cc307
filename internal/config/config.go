package config

import (
	"fmt"
)

const (
	defaultTooltip     = "Pomo"
	defaultWindowTitle = "Pomo"
)

// Config represents the main configuration structure
type Config struct {
	DataDir string `json:"data_dir,omitempty" mapstructure:"data_dir"`

	// Logging configuration
	Logging *LogConfig `json:"logging,omitempty" mapstructure:"logging"`

	Tray          TrayConfig         `json:"tray" mapstructure:"tray"`
	Window        WindowConfig       `json:"window" mapstructure:"window"`
	Notifications NotificationConfig `json:"notifications" mapstructure:"notifications"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level         string `json:"level" mapstructure:"level"`
	EnableFile    bool   `json:"enable_file" mapstructure:"enable_file"`
	EnableConsole bool   `json:"enable_console" mapstructure:"enable_console"`
	Filename      string `json:"filename" mapstructure:"filename"`
	LogDir        string `json:"log_dir,omitempty" mapstructure:"log_dir"` // Custom log directory
	MaxSize       int    `json:"max_size" mapstructure:"max_size"`         // MB
	MaxBackups    int    `json:"max_backups" mapstructure:"max_backups"`   // number of backup files
	MaxAge        int    `json:"max_age" mapstructure:"max_age"`           // days
	Compress      bool   `json:"compress" mapstructure:"compress"`
	JSONFormat    bool   `json:"json_format" mapstructure:"json_format"`
}

// TrayConfig holds the tray icon tooltip and menu labels.
type TrayConfig struct {
	Tooltip string     `json:"tooltip" mapstructure:"tooltip"`
	Labels  MenuLabels `json:"labels" mapstructure:"labels"`
}

// MenuLabels are the display labels of the fixed tray menu items.
type MenuLabels struct {
	PlayPause string `json:"play_pause" mapstructure:"play_pause"`
	Reset     string `json:"reset" mapstructure:"reset"`
	Skip      string `json:"skip" mapstructure:"skip"`
	Quit      string `json:"quit" mapstructure:"quit"`
}

// WindowConfig describes the main webview window.
type WindowConfig struct {
	Title     string `json:"title" mapstructure:"title"`
	Width     int    `json:"width" mapstructure:"width"`
	Height    int    `json:"height" mapstructure:"height"`
	MinWidth  int    `json:"min_width" mapstructure:"min_width"`
	MinHeight int    `json:"min_height" mapstructure:"min_height"`
}

// NotificationConfig controls desktop notification delivery.
type NotificationConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	AppName string `json:"app_name" mapstructure:"app_name"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		DataDir: "", // Will be set to ~/.pomo by loader

		Logging: DefaultLogConfig(),

		Tray: TrayConfig{
			Tooltip: defaultTooltip,
			Labels:  DefaultMenuLabels(),
		},

		Window: WindowConfig{
			Title:     defaultWindowTitle,
			Width:     420,
			Height:    640,
			MinWidth:  320,
			MinHeight: 480,
		},

		Notifications: NotificationConfig{
			Enabled: true,
			AppName: "Pomo",
		},
	}
}

// DefaultLogConfig returns the logging defaults used when the config file
// has no logging section.
func DefaultLogConfig() *LogConfig {
	return &LogConfig{
		Level:         "info",
		EnableFile:    true,
		EnableConsole: true,
		Filename:      "pomo.log",
		MaxSize:       10, // 10MB
		MaxBackups:    5,  // 5 backup files
		MaxAge:        30, // 30 days
		Compress:      true,
		JSONFormat:    false, // Use console format for readability
	}
}

// DefaultMenuLabels returns the stock tray menu labels.
func DefaultMenuLabels() MenuLabels {
	return MenuLabels{
		PlayPause: "Start/Pause",
		Reset:     "Reset",
		Skip:      "Skip Phase",
		Quit:      "Quit",
	}
}

// Validate fills zero values with defaults and rejects inconsistent window
// geometry.
func (c *Config) Validate() error {
	if c.Logging == nil {
		c.Logging = DefaultLogConfig()
	}

	if c.Tray.Tooltip == "" {
		c.Tray.Tooltip = defaultTooltip
	}
	defaults := DefaultMenuLabels()
	if c.Tray.Labels.PlayPause == "" {
		c.Tray.Labels.PlayPause = defaults.PlayPause
	}
	if c.Tray.Labels.Reset == "" {
		c.Tray.Labels.Reset = defaults.Reset
	}
	if c.Tray.Labels.Skip == "" {
		c.Tray.Labels.Skip = defaults.Skip
	}
	if c.Tray.Labels.Quit == "" {
		c.Tray.Labels.Quit = defaults.Quit
	}

	if c.Window.Title == "" {
		c.Window.Title = defaultWindowTitle
	}
	if c.Window.Width < 0 || c.Window.Height < 0 || c.Window.MinWidth < 0 || c.Window.MinHeight < 0 {
		return fmt.Errorf("window dimensions must not be negative")
	}
	if c.Window.Width > 0 && c.Window.MinWidth > c.Window.Width {
		return fmt.Errorf("window min_width %d exceeds width %d", c.Window.MinWidth, c.Window.Width)
	}
	if c.Window.Height > 0 && c.Window.MinHeight > c.Window.Height {
		return fmt.Errorf("window min_height %d exceeds height %d", c.Window.MinHeight, c.Window.Height)
	}

	if c.Notifications.AppName == "" {
		c.Notifications.AppName = defaultTooltip
	}

	return nil
}
