package tray

import (
	"errors"
	"fmt"
)

var (
	// ErrIconUnavailable is returned when the icon resource cannot be loaded
	ErrIconUnavailable = errors.New("tray icon resource unavailable")

	// ErrTrayUnavailable is returned when the OS refuses tray registration
	ErrTrayUnavailable = errors.New("system tray unavailable")

	// ErrTrayExists is returned when the singleton tray was already created
	ErrTrayExists = errors.New("tray icon already exists")

	ErrEmptyMenu         = errors.New("menu has no items")
	ErrDuplicateMenuItem = errors.New("duplicate menu item id")
	ErrUnknownMenuItem   = errors.New("unknown menu item id")
)

// TrayCreationError is a fatal setup failure while building the tray icon
type TrayCreationError struct {
	TrayID string
	Op     string
	Err    error
}

func (e *TrayCreationError) Error() string {
	return fmt.Sprintf("create tray %q: %s: %v", e.TrayID, e.Op, e.Err)
}

func (e *TrayCreationError) Unwrap() error {
	return e.Err
}
