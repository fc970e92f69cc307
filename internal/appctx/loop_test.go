package appctx

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestLoopRunsTasksInOrder(t *testing.T) {
	loop := NewLoop(0, zaptest.NewLogger(t))
	loop.Start()
	defer loop.Stop()

	var got []int
	for i := 0; i < 10; i++ {
		i := i
		require.True(t, loop.Post(func() { got = append(got, i) }))
	}
	require.NoError(t, loop.Do(context.Background(), func() {}))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
}

func TestLoopSerializesConcurrentPosts(t *testing.T) {
	loop := NewLoop(8, zaptest.NewLogger(t))
	loop.Start()
	defer loop.Stop()

	var (
		running int
		overlap bool
		count   int
		wg      sync.WaitGroup
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			loop.Post(func() {
				running++
				if running > 1 {
					overlap = true
				}
				count++
				running--
			})
		}()
	}
	wg.Wait()
	require.NoError(t, loop.Do(context.Background(), func() {}))

	assert.False(t, overlap)
	assert.Equal(t, 50, count)
}

func TestLoopStopDropsQueuedTasks(t *testing.T) {
	loop := NewLoop(0, zaptest.NewLogger(t))

	var ran []string
	loop.Post(func() {
		ran = append(ran, "quit")
		loop.Stop()
	})
	loop.Post(func() { ran = append(ran, "after") })
	loop.Start()

	select {
	case <-loop.Done():
	case <-time.After(time.Second):
		t.Fatal("loop did not exit")
	}

	assert.Equal(t, []string{"quit"}, ran)
	assert.True(t, loop.Stopped())
	assert.False(t, loop.Post(func() { ran = append(ran, "late") }))
	assert.ErrorIs(t, loop.Do(context.Background(), func() {}), ErrLoopStopped)
}

func TestLoopDoReturnsWhenTaskStopsLoop(t *testing.T) {
	loop := NewLoop(0, zaptest.NewLogger(t))
	loop.Start()

	err := loop.Do(context.Background(), loop.Stop)
	assert.NoError(t, err)
}

func TestLoopDoHonorsContext(t *testing.T) {
	loop := NewLoop(0, zaptest.NewLogger(t))
	defer loop.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	// not started, so the task never runs
	err := loop.Do(ctx, func() {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestLoopRecoversFromPanic(t *testing.T) {
	loop := NewLoop(0, zaptest.NewLogger(t))
	loop.Start()
	defer loop.Stop()

	require.NoError(t, loop.Do(context.Background(), func() { panic("boom") }))

	ran := false
	require.NoError(t, loop.Do(context.Background(), func() { ran = true }))
	assert.True(t, ran)
}

func TestLoopStopWithoutStart(t *testing.T) {
	loop := NewLoop(0, zaptest.NewLogger(t))
	loop.Stop()
	loop.Stop()

	select {
	case <-loop.Done():
	default:
		t.Fatal("done must be closed after stop")
	}
}
