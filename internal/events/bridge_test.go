package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestEmitWithoutListeners(t *testing.T) {
	b := NewBridge(nil, zaptest.NewLogger(t))

	assert.NotPanics(t, func() {
		b.Emit(TrayPlayPause, nil)
	})
}

func TestEmitReachesSenderAndListeners(t *testing.T) {
	sender := NewChannelSender(4, zaptest.NewLogger(t))
	b := NewBridge(sender, zaptest.NewLogger(t))

	var got []Event
	cancel := b.Listen(func(e Event) { got = append(got, e) })
	defer cancel()

	b.Emit(TrayReset, nil)

	require.Len(t, got, 1)
	assert.Equal(t, TrayReset, got[0].Name)
	assert.Nil(t, got[0].Payload)

	select {
	case e := <-sender.Events():
		assert.Equal(t, TrayReset, e.Name)
	default:
		t.Fatal("sender did not receive the event")
	}
}

func TestEmitPreservesOrder(t *testing.T) {
	sender := NewChannelSender(8, zaptest.NewLogger(t))
	b := NewBridge(sender, zaptest.NewLogger(t))

	sequence := []Name{TraySkip, TrayPlayPause, TrayReset, TrayPlayPause}
	for _, name := range sequence {
		b.Emit(name, nil)
	}

	for _, want := range sequence {
		e := <-sender.Events()
		assert.Equal(t, want, e.Name)
	}
}

func TestListenCancel(t *testing.T) {
	b := NewBridge(nil, zaptest.NewLogger(t))

	var first, second int
	cancelFirst := b.Listen(func(Event) { first++ })
	cancelSecond := b.Listen(func(Event) { second++ })
	defer cancelSecond()

	b.Emit(TraySkip, nil)
	cancelFirst()
	cancelFirst() // second call is a no-op
	b.Emit(TraySkip, nil)

	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestNoBufferingForLateListeners(t *testing.T) {
	b := NewBridge(nil, zaptest.NewLogger(t))

	b.Emit(TrayPlayPause, nil)

	var got []Event
	cancel := b.Listen(func(e Event) { got = append(got, e) })
	defer cancel()

	assert.Empty(t, got, "events emitted before Listen must not be replayed")
}

func TestChannelSenderDropsWhenFull(t *testing.T) {
	sender := NewChannelSender(1, zaptest.NewLogger(t))

	sender.Send(Event{Name: TrayPlayPause})
	sender.Send(Event{Name: TrayReset}) // dropped

	e := <-sender.Events()
	assert.Equal(t, TrayPlayPause, e.Name)

	select {
	case e := <-sender.Events():
		t.Fatalf("unexpected event %s", e.Name)
	default:
	}
}

