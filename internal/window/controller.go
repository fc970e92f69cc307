package window

import (
	"sync"
	"time"

	"go.uber.org/zap"
)

// ExitCodeQuit is the process exit code of the tray quit action
const ExitCodeQuit = 0

// Host is the window capability of the application shell
type Host interface {
	Show()
	Hide()
	Focus()
	Exit(code int)
}

// Transition represents a state change with metadata
type Transition struct {
	From      State
	To        State
	Event     Event
	Timestamp time.Time
}

// Controller owns the main window state machine. Its methods are called from
// the host event loop only; State and Subscribe are safe from any goroutine.
type Controller struct {
	host   Host
	logger *zap.Logger

	mu    sync.RWMutex
	state State

	subscribersMu sync.RWMutex
	subscribers   []chan Transition
}

// NewController creates a controller for a window that starts shown
func NewController(host Host, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		host:   host,
		logger: logger.Named("window"),
		state:  StateShown,
	}
}

// State returns the current state
func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Terminated reports whether quit has been processed
func (c *Controller) Terminated() bool {
	return c.State() == StateTerminated
}

// Subscribe returns a channel for receiving state transitions
func (c *Controller) Subscribe() <-chan Transition {
	c.subscribersMu.Lock()
	defer c.subscribersMu.Unlock()

	ch := make(chan Transition, 10)
	c.subscribers = append(c.subscribers, ch)
	return ch
}

// OnCloseRequested hides the window instead of destroying it. It returns
// true when the default close must be prevented, which is always the case
// until the process is terminating.
func (c *Controller) OnCloseRequested() (prevent bool) {
	from, to := c.apply(EventCloseRequested)
	if to == StateTerminated {
		return false
	}

	if from == StateShown {
		c.host.Hide()
	}
	return true
}

// ShowAndFocus reveals the window and brings it to the foreground. Focus is
// requested even when the window is already shown.
func (c *Controller) ShowAndFocus() {
	from, to := c.apply(EventTrayLeftClickUp)
	if to == StateTerminated {
		return
	}

	if from == StateHidden {
		c.host.Show()
	}
	c.host.Focus()
}

// Quit terminates the process with exit code 0. It is the only path to
// termination; repeated calls do nothing.
func (c *Controller) Quit() {
	from, _ := c.apply(EventQuit)
	if from == StateTerminated {
		return
	}

	c.logger.Info("Quit requested, exiting", zap.Int("exit_code", ExitCodeQuit))
	c.host.Exit(ExitCodeQuit)
}

// apply runs event through the state machine and returns the states before
// and after it
func (c *Controller) apply(event Event) (from, to State) {
	c.mu.Lock()
	from = c.state
	to = nextState(from, event)
	if to != from && !CanTransition(from, to) {
		c.mu.Unlock()
		c.logger.Error("Invalid state transition",
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.String("event", string(event)))
		return from, from
	}
	c.state = to
	c.mu.Unlock()

	if to == from {
		c.logger.Debug("Event handled without state change",
			zap.String("state", string(from)),
			zap.String("event", string(event)))
		return from, to
	}

	c.logger.Info("Window state transition",
		zap.String("from", string(from)),
		zap.String("to", string(to)),
		zap.String("event", string(event)))

	c.notifySubscribers(Transition{
		From:      from,
		To:        to,
		Event:     event,
		Timestamp: time.Now(),
	})
	return from, to
}

// notifySubscribers sends transition notifications to all subscribers
func (c *Controller) notifySubscribers(transition Transition) {
	c.subscribersMu.RLock()
	defer c.subscribersMu.RUnlock()

	for _, subscriber := range c.subscribers {
		select {
		case subscriber <- transition:
		default:
			c.logger.Debug("Subscriber channel full, dropping transition notification")
		}
	}
}
