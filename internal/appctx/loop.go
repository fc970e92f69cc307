package appctx

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
)

// ErrLoopStopped is returned when work is submitted after the loop stopped
var ErrLoopStopped = errors.New("event loop stopped")

const defaultQueueSize = 64

// Loop runs tasks one at a time on a single goroutine. Native tray and
// window callbacks are posted here so that lifecycle handlers never run
// concurrently. Do must not be called from a task running on the loop.
type Loop struct {
	logger *zap.Logger
	tasks  chan func()

	startOnce sync.Once
	stopOnce  sync.Once
	stopped   chan struct{}
	done      chan struct{}
}

// NewLoop creates a loop with the given queue size
func NewLoop(queueSize int, logger *zap.Logger) *Loop {
	if logger == nil {
		logger = zap.NewNop()
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}
	return &Loop{
		logger:  logger.Named("loop"),
		tasks:   make(chan func(), queueSize),
		stopped: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Start launches the loop goroutine. Calling it more than once has no effect.
func (l *Loop) Start() {
	l.startOnce.Do(func() {
		go l.run()
	})
}

func (l *Loop) run() {
	defer close(l.done)
	for {
		select {
		case <-l.stopped:
			return
		case fn := <-l.tasks:
			// a task queued before Stop is dropped once Stop has run
			select {
			case <-l.stopped:
				return
			default:
			}
			l.exec(fn)
		}
	}
}

func (l *Loop) exec(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Event loop task panicked", zap.Any("panic", r))
		}
	}()
	fn()
}

// Post queues fn without waiting for it. It returns false when the loop has
// stopped and fn was dropped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.stopped:
		return false
	default:
	}

	select {
	case <-l.stopped:
		return false
	case l.tasks <- fn:
		return true
	}
}

// Do runs fn on the loop and waits for it to finish
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLoopStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.stopped:
		// fn may itself have stopped the loop
		select {
		case <-finished:
			return nil
		default:
			return ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop prevents any further task from running. The task that called Stop,
// if any, runs to completion.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stopped)
		l.logger.Debug("Event loop stopped")
	})
	// never started: nothing will close done
	l.startOnce.Do(func() {
		close(l.done)
	})
}

// Stopped reports whether Stop was called
func (l *Loop) Stopped() bool {
	select {
	case <-l.stopped:
		return true
	default:
		return false
	}
}

// Done is closed when the loop goroutine has exited
func (l *Loop) Done() <-chan struct{} {
	return l.done
}
