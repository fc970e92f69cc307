// Package window enforces the hide-not-destroy policy for the main window.
package window

// MainWindowID is the id of the single application window
const MainWindowID = "main"

// State represents the visibility of the main window
type State string

const (
	// StateShown is the initial state
	StateShown State = "shown"

	// StateHidden means the window was closed by the user and the app stays resident
	StateHidden State = "hidden"

	// StateTerminated is absorbing: the process is exiting
	StateTerminated State = "terminated"
)

// Event represents events that can trigger state transitions
type Event string

const (
	// EventCloseRequested is the OS asking to close the window
	EventCloseRequested Event = "close_requested"

	// EventTrayLeftClickUp is a left-button release on the tray icon
	EventTrayLeftClickUp Event = "tray_left_click_up"

	// EventQuit is the tray menu quit action
	EventQuit Event = "quit"
)

// CanTransition checks if a transition from one state to another is valid
func CanTransition(from, to State) bool {
	validTransitions := map[State][]State{
		StateShown: {
			StateHidden,
			StateTerminated,
		},
		StateHidden: {
			StateShown,
			StateTerminated,
		},
		StateTerminated: {
			// Terminal state - no transitions out
		},
	}

	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// nextState determines the new state based on current state and event
func nextState(current State, event Event) State {
	switch current {
	case StateShown:
		switch event {
		case EventCloseRequested:
			return StateHidden
		case EventQuit:
			return StateTerminated
		}

	case StateHidden:
		switch event {
		case EventTrayLeftClickUp:
			return StateShown
		case EventQuit:
			return StateTerminated
		}

	case StateTerminated:
		return StateTerminated
	}

	return current
}
