package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"pgregory.net/rapid"
)

// fakeHost records every call made by the controller
type fakeHost struct {
	calls []string
	exits []int
}

func (h *fakeHost) Show()  { h.calls = append(h.calls, "show") }
func (h *fakeHost) Hide()  { h.calls = append(h.calls, "hide") }
func (h *fakeHost) Focus() { h.calls = append(h.calls, "focus") }
func (h *fakeHost) Exit(code int) {
	h.calls = append(h.calls, "exit")
	h.exits = append(h.exits, code)
}

func TestInitialState(t *testing.T) {
	c := NewController(&fakeHost{}, zaptest.NewLogger(t))
	assert.Equal(t, StateShown, c.State())
	assert.False(t, c.Terminated())
}

func TestCloseRequestedHidesWindow(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host, zaptest.NewLogger(t))

	prevent := c.OnCloseRequested()

	assert.True(t, prevent)
	assert.Equal(t, StateHidden, c.State())
	assert.Equal(t, []string{"hide"}, host.calls)
}

func TestCloseRequestedIsIdempotent(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host, zaptest.NewLogger(t))

	assert.True(t, c.OnCloseRequested())
	assert.Equal(t, StateHidden, c.State())

	assert.True(t, c.OnCloseRequested())
	assert.Equal(t, StateHidden, c.State())

	assert.Equal(t, []string{"hide"}, host.calls, "already hidden window must not be hidden again")
}

func TestShowAndFocus(t *testing.T) {
	t.Run("hidden window is shown and focused", func(t *testing.T) {
		host := &fakeHost{}
		c := NewController(host, zaptest.NewLogger(t))
		c.OnCloseRequested()
		host.calls = nil

		c.ShowAndFocus()

		assert.Equal(t, StateShown, c.State())
		assert.Equal(t, []string{"show", "focus"}, host.calls)
	})

	t.Run("shown window re-asserts focus", func(t *testing.T) {
		host := &fakeHost{}
		c := NewController(host, zaptest.NewLogger(t))

		c.ShowAndFocus()
		c.ShowAndFocus()

		assert.Equal(t, StateShown, c.State())
		assert.Equal(t, []string{"focus", "focus"}, host.calls)
	})
}

func TestQuit(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host, zaptest.NewLogger(t))
	c.OnCloseRequested()

	c.Quit()

	assert.Equal(t, StateTerminated, c.State())
	assert.Equal(t, []int{0}, host.exits)
}

func TestTerminatedIsAbsorbing(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host, zaptest.NewLogger(t))
	c.Quit()
	host.calls = nil

	assert.False(t, c.OnCloseRequested(), "close must proceed once the process is exiting")
	c.ShowAndFocus()
	c.Quit()

	assert.Equal(t, StateTerminated, c.State())
	assert.Empty(t, host.calls)
}

func TestSubscribe(t *testing.T) {
	c := NewController(&fakeHost{}, zaptest.NewLogger(t))
	ch := c.Subscribe()

	c.OnCloseRequested()
	c.OnCloseRequested() // no state change, no notification
	c.ShowAndFocus()
	c.Quit()

	expected := []Transition{
		{From: StateShown, To: StateHidden, Event: EventCloseRequested},
		{From: StateHidden, To: StateShown, Event: EventTrayLeftClickUp},
		{From: StateShown, To: StateTerminated, Event: EventQuit},
	}
	for _, want := range expected {
		select {
		case got := <-ch:
			assert.Equal(t, want.From, got.From)
			assert.Equal(t, want.To, got.To)
			assert.Equal(t, want.Event, got.Event)
			assert.False(t, got.Timestamp.IsZero())
		default:
			t.Fatalf("missing transition %s -> %s", want.From, want.To)
		}
	}

	select {
	case extra := <-ch:
		t.Fatalf("unexpected transition %+v", extra)
	default:
	}
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to State
		valid    bool
	}{
		{StateShown, StateHidden, true},
		{StateShown, StateTerminated, true},
		{StateHidden, StateShown, true},
		{StateHidden, StateTerminated, true},
		{StateTerminated, StateShown, false},
		{StateTerminated, StateHidden, false},
		{StateShown, StateShown, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.valid, CanTransition(tt.from, tt.to))
		})
	}
}

func TestNextState(t *testing.T) {
	tests := []struct {
		name     string
		current  State
		event    Event
		expected State
	}{
		{"close while shown", StateShown, EventCloseRequested, StateHidden},
		{"close while hidden", StateHidden, EventCloseRequested, StateHidden},
		{"click while hidden", StateHidden, EventTrayLeftClickUp, StateShown},
		{"click while shown", StateShown, EventTrayLeftClickUp, StateShown},
		{"quit while shown", StateShown, EventQuit, StateTerminated},
		{"quit while hidden", StateHidden, EventQuit, StateTerminated},
		{"close after quit", StateTerminated, EventCloseRequested, StateTerminated},
		{"click after quit", StateTerminated, EventTrayLeftClickUp, StateTerminated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, nextState(tt.current, tt.event))
		})
	}
}

// Only an explicit quit ever terminates the window, whatever mix of close
// requests and tray clicks came before it.
func TestOnlyQuitTerminates(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		host := &fakeHost{}
		c := NewController(host, zap.NewNop())

		sequence := rapid.SliceOf(rapid.SampledFrom([]Event{
			EventCloseRequested,
			EventTrayLeftClickUp,
		})).Draw(rt, "events")

		for _, ev := range sequence {
			switch ev {
			case EventCloseRequested:
				if !c.OnCloseRequested() {
					rt.Fatalf("close request was not prevented")
				}
				if c.State() != StateHidden {
					rt.Fatalf("state after close = %s, want hidden", c.State())
				}
			case EventTrayLeftClickUp:
				c.ShowAndFocus()
				if c.State() != StateShown {
					rt.Fatalf("state after click = %s, want shown", c.State())
				}
			}
			if c.Terminated() {
				rt.Fatalf("terminated without quit after %v", sequence)
			}
		}
		if len(host.exits) != 0 {
			rt.Fatalf("exit called without quit")
		}

		c.Quit()
		if !c.Terminated() {
			rt.Fatalf("quit did not terminate")
		}
		if len(host.exits) != 1 || host.exits[0] != 0 {
			rt.Fatalf("exits = %v, want [0]", host.exits)
		}
	})
}

func TestEndToEnd(t *testing.T) {
	host := &fakeHost{}
	c := NewController(host, zaptest.NewLogger(t))
	require.Equal(t, StateShown, c.State())

	require.True(t, c.OnCloseRequested())
	require.Equal(t, StateHidden, c.State())

	c.ShowAndFocus()
	require.Equal(t, StateShown, c.State())

	assert.Equal(t, []string{"hide", "show", "focus"}, host.calls)
}
