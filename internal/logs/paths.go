package logs

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appDirName = "pomo"

// platform is the slice of the environment that decides where logs go
type platform struct {
	goos   string
	getenv func(string) string
	home   string // empty when the home directory is unknown
}

func currentPlatform() platform {
	home, _ := os.UserHomeDir()
	return platform{goos: runtime.GOOS, getenv: os.Getenv, home: home}
}

// ResolveLogDir picks the log directory. An explicit directory wins, then
// the OS log location, then <dataDir>/logs, then the temp directory. It
// never touches the filesystem.
func ResolveLogDir(logDir, dataDir string) string {
	return currentPlatform().logDir(logDir, dataDir)
}

func (p platform) logDir(explicit, dataDir string) string {
	if explicit != "" {
		return p.expandHome(explicit)
	}
	if dir := p.osLogDir(); dir != "" {
		return dir
	}
	if dataDir != "" {
		return filepath.Join(p.expandHome(dataDir), "logs")
	}
	return filepath.Join(os.TempDir(), appDirName, "logs")
}

// osLogDir is %LOCALAPPDATA%\pomo\logs on Windows, ~/Library/Logs/pomo on
// macOS and $XDG_STATE_HOME/pomo/logs elsewhere. Empty when the needed
// variables and the home directory are all missing.
func (p platform) osLogDir() string {
	switch p.goos {
	case "windows":
		base := p.getenv("LOCALAPPDATA")
		if base == "" {
			if p.home == "" {
				return ""
			}
			base = filepath.Join(p.home, "AppData", "Local")
		}
		return filepath.Join(base, appDirName, "logs")
	case "darwin":
		if p.home == "" {
			return ""
		}
		return filepath.Join(p.home, "Library", "Logs", appDirName)
	default:
		state := p.getenv("XDG_STATE_HOME")
		if state == "" {
			if p.home == "" {
				return ""
			}
			state = filepath.Join(p.home, ".local", "state")
		}
		return filepath.Join(state, appDirName, "logs")
	}
}

func (p platform) expandHome(path string) string {
	if p.home != "" && strings.HasPrefix(path, "~/") {
		return filepath.Join(p.home, path[2:])
	}
	return path
}
