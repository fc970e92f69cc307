package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DefaultDataDir = ".pomo"
	ConfigFileName = "pomo_config.json"
	EnvPrefix      = "POMO"
)

// flagKeys maps command line flag names onto configuration keys
var flagKeys = map[string]string{
	"data-dir":    "data_dir",
	"log-level":   "logging.level",
	"log-to-file": "logging.enable_file",
	"log-dir":     "logging.log_dir",
}

// Load loads configuration from defaults, the JSON config file, POMO_*
// environment variables and the given command line flags, in increasing
// order of precedence. When configPath is empty the file is looked up in
// the working directory and the data directory; if none exists a default
// file is written to the data directory.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := newViper()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	dataDir, err := resolveDataDir(v.GetString("data_dir"))
	if err != nil {
		return nil, err
	}

	if configPath == "" {
		found, path := findConfigFile(dataDir)
		if found {
			configPath = path
		} else {
			if err := os.MkdirAll(dataDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create data directory %s: %w", dataDir, err)
			}
			defaultConfigPath := GetConfigPath(dataDir)
			if err := createDefaultConfigFile(defaultConfigPath, dataDir); err != nil {
				return nil, fmt.Errorf("failed to create default config file: %w", err)
			}
		}
	}

	if configPath != "" {
		if err := readConfigFile(v, configPath); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DataDir == "" {
		cfg.DataDir = dataDir
	}
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", cfg.DataDir, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// newViper creates a viper instance carrying every default value so that
// environment overrides resolve for nested keys as well.
func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	d := DefaultConfig()
	v.SetDefault("data_dir", d.DataDir)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.enable_file", d.Logging.EnableFile)
	v.SetDefault("logging.enable_console", d.Logging.EnableConsole)
	v.SetDefault("logging.filename", d.Logging.Filename)
	v.SetDefault("logging.log_dir", d.Logging.LogDir)
	v.SetDefault("logging.max_size", d.Logging.MaxSize)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)
	v.SetDefault("logging.max_age", d.Logging.MaxAge)
	v.SetDefault("logging.compress", d.Logging.Compress)
	v.SetDefault("logging.json_format", d.Logging.JSONFormat)

	v.SetDefault("tray.tooltip", d.Tray.Tooltip)
	v.SetDefault("tray.labels.play_pause", d.Tray.Labels.PlayPause)
	v.SetDefault("tray.labels.reset", d.Tray.Labels.Reset)
	v.SetDefault("tray.labels.skip", d.Tray.Labels.Skip)
	v.SetDefault("tray.labels.quit", d.Tray.Labels.Quit)

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.min_width", d.Window.MinWidth)
	v.SetDefault("window.min_height", d.Window.MinHeight)

	v.SetDefault("notifications.enabled", d.Notifications.Enabled)
	v.SetDefault("notifications.app_name", d.Notifications.AppName)

	return v
}

// bindFlags binds the known command line flags present in the set
func bindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for name, key := range flagKeys {
		flag := flags.Lookup(name)
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %s: %w", name, err)
		}
	}
	return nil
}

// resolveDataDir expands the data directory, defaulting to ~/.pomo
func resolveDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, DefaultDataDir), nil
	}

	if strings.HasPrefix(dataDir, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get user home directory: %w", err)
		}
		return filepath.Join(homeDir, dataDir[2:]), nil
	}

	return dataDir, nil
}

// findConfigFile tries to find config file in common locations
func findConfigFile(dataDir string) (found bool, path string) {
	locations := []string{
		ConfigFileName,
		GetConfigPath(dataDir),
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return true, location
		}
	}
	return false, ""
}

// readConfigFile merges a JSON config file into v
func readConfigFile(v *viper.Viper, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Empty file (including /dev/null) is treated as no configuration
	if info.Size() == 0 {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetConfigPath returns the path of the config file inside a resolved data
// directory
func GetConfigPath(dataDir string) string {
	return filepath.Join(dataDir, ConfigFileName)
}

// createDefaultConfigFile creates a default configuration file with default settings
func createDefaultConfigFile(path, dataDir string) error {
	defaultCfg := DefaultConfig()
	defaultCfg.DataDir = dataDir
	return SaveConfig(defaultCfg, path)
}
