package tray

import (
	_ "embed"
)

// MainTrayID is the id of the single tray icon
const MainTrayID = "main"

//go:embed assets/icon.png
var iconData []byte

// IconSource resolves the tray icon image
type IconSource func() ([]byte, error)

// DefaultIcon returns the embedded application icon
func DefaultIcon() ([]byte, error) {
	if len(iconData) == 0 {
		return nil, ErrIconUnavailable
	}
	return iconData, nil
}

// MouseButton is the button involved in a tray icon gesture
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	}
	return "unknown"
}

// ButtonState is the press state of the button
type ButtonState int

const (
	ButtonUp ButtonState = iota
	ButtonDown
)

func (s ButtonState) String() string {
	if s == ButtonDown {
		return "down"
	}
	return "up"
}

// IconEventKind is the kind of pointer interaction with the tray icon
type IconEventKind int

const (
	KindClick IconEventKind = iota
	KindDoubleClick
	KindEnter
	KindMove
	KindLeave
)

// IconEvent is a pointer interaction reported by the tray host
type IconEvent struct {
	Kind   IconEventKind
	Button MouseButton
	State  ButtonState
}

// IsLeftClickUp reports whether the event is a left-button release click
func (e IconEvent) IsLeftClickUp() bool {
	return e.Kind == KindClick && e.Button == ButtonLeft && e.State == ButtonUp
}

// Handle is an opaque reference to a tray icon owned by a Host
type Handle uint64

// IconSpec is everything a Host needs to register a tray icon
type IconSpec struct {
	ID      string
	Icon    []byte
	Tooltip string
	Menu    MenuSpec
}

// Host is the platform tray capability. Implementations deliver menu and
// click callbacks on their own goroutine.
type Host interface {
	CreateIcon(spec IconSpec) (Handle, error)
	SetTooltip(h Handle, text string)
	RegisterMenuHandler(h Handle, fn func(id string))
	RegisterClickHandler(h Handle, fn func(ev IconEvent))
}
