package events

import (
	"go.uber.org/zap"
)

// ChannelSender is a Sender backed by a buffered channel. Sends never block;
// when the buffer is full the event is dropped.
type ChannelSender struct {
	ch     chan Event
	logger *zap.Logger
}

// NewChannelSender creates a sender with the given buffer size
func NewChannelSender(size int, logger *zap.Logger) *ChannelSender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChannelSender{
		ch:     make(chan Event, size),
		logger: logger,
	}
}

// Send implements Sender
func (s *ChannelSender) Send(e Event) {
	select {
	case s.ch <- e:
	default:
		s.logger.Warn("Event channel full, dropping event", zap.String("event", string(e.Name)))
	}
}

// Events returns the receive side of the channel
func (s *ChannelSender) Events() <-chan Event {
	return s.ch
}
