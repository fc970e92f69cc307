package systray

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomo/internal/tray"
)

func TestClickEvent(t *testing.T) {
	tests := []struct {
		name    string
		click   nativeClick
		want    tray.IconEvent
		reveals bool
	}{
		{"left", clickLeft, tray.IconEvent{Kind: tray.KindClick, Button: tray.ButtonLeft, State: tray.ButtonUp}, true},
		{"double", clickDouble, tray.IconEvent{Kind: tray.KindDoubleClick, Button: tray.ButtonLeft, State: tray.ButtonUp}, false},
		{"right", clickRight, tray.IconEvent{Kind: tray.KindClick, Button: tray.ButtonRight, State: tray.ButtonUp}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := clickEvent(tt.click)
			assert.Equal(t, tt.want, ev)
			assert.Equal(t, tt.reveals, ev.IsLeftClickUp())
		})
	}
}
