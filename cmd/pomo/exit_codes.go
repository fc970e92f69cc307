package main

// Exit codes reported by the pomo process

const (
	// ExitCodeSuccess indicates the user quit from the tray menu
	ExitCodeSuccess = 0

	// ExitCodeGeneralError indicates a generic error (default)
	ExitCodeGeneralError = 1

	// ExitCodeTrayUnavailable indicates the system tray could not be created
	ExitCodeTrayUnavailable = 2

	// ExitCodeConfigError indicates configuration loading or validation failed
	ExitCodeConfigError = 4
)

// exitCodeDescription returns a human-readable description of the exit code
func exitCodeDescription(code int) string {
	switch code {
	case ExitCodeSuccess:
		return "Success"
	case ExitCodeGeneralError:
		return "General error"
	case ExitCodeTrayUnavailable:
		return "System tray unavailable"
	case ExitCodeConfigError:
		return "Configuration error"
	default:
		return "Unknown error"
	}
}
