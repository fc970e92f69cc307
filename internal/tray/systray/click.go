package systray

import "pomo/internal/tray"

// nativeClick is a pointer gesture reported by the native tray. The native
// callbacks fire once the button is released.
type nativeClick int

const (
	clickLeft nativeClick = iota
	clickDouble
	clickRight
)

// clickEvent translates a native gesture into a tray icon event
func clickEvent(c nativeClick) tray.IconEvent {
	switch c {
	case clickDouble:
		return tray.IconEvent{Kind: tray.KindDoubleClick, Button: tray.ButtonLeft, State: tray.ButtonUp}
	case clickRight:
		return tray.IconEvent{Kind: tray.KindClick, Button: tray.ButtonRight, State: tray.ButtonUp}
	default:
		return tray.IconEvent{Kind: tray.KindClick, Button: tray.ButtonLeft, State: tray.ButtonUp}
	}
}
