// Package events carries named domain events from native tray callbacks to
// the application layer.
package events

import (
	"sync"

	"go.uber.org/zap"
)

// Name identifies a domain event
type Name string

const (
	// TrayPlayPause asks the timer to start or pause
	TrayPlayPause Name = "tray-play-pause"

	// TrayReset asks the timer to reset the current phase
	TrayReset Name = "tray-reset"

	// TraySkip asks the timer to skip to the next phase
	TraySkip Name = "tray-skip"
)

// Event is a single emission. Payload is nil for all tray events.
type Event struct {
	Name    Name
	Payload interface{}
}

// Sender hands events to the application layer. Send must not block.
type Sender interface {
	Send(Event)
}

// Listener receives events in emission order. It runs on the emitting
// goroutine and must return quickly.
type Listener func(Event)

type listenerEntry struct {
	id uint64
	fn Listener
}

// Bridge is a one-directional, fire-and-forget event channel. There is no
// acknowledgement and no buffering for listeners that attach later.
type Bridge struct {
	logger *zap.Logger

	mu        sync.RWMutex
	sender    Sender
	listeners []listenerEntry
	nextID    uint64
}

// NewBridge creates a bridge delivering to sender. A nil sender leaves only
// in-process listeners.
func NewBridge(sender Sender, logger *zap.Logger) *Bridge {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Bridge{
		logger: logger.Named("events"),
		sender: sender,
	}
}

// Listen registers an in-process listener. The returned function removes it.
func (b *Bridge) Listen(fn Listener) (cancel func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.listeners = append(b.listeners, listenerEntry{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() { b.remove(id) })
	}
}

func (b *Bridge) remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for i, l := range b.listeners {
		if l.id == id {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Emit broadcasts an event to the sender and every registered listener.
// Zero listeners is not an error.
func (b *Bridge) Emit(name Name, payload interface{}) {
	b.mu.RLock()
	sender := b.sender
	listeners := make([]Listener, len(b.listeners))
	for i, l := range b.listeners {
		listeners[i] = l.fn
	}
	b.mu.RUnlock()

	e := Event{Name: name, Payload: payload}

	b.logger.Debug("Emitting event",
		zap.String("event", string(name)),
		zap.Int("listeners", len(listeners)),
		zap.Bool("has_sender", sender != nil))

	if sender != nil {
		sender.Send(e)
	}
	for _, fn := range listeners {
		fn(e)
	}
}
