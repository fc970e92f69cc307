package tray

import (
	"fmt"

	"pomo/internal/config"
)

// MenuItemID identifies a tray menu item. The set is closed.
type MenuItemID string

const (
	MenuPlayPause MenuItemID = "play_pause"
	MenuReset     MenuItemID = "reset"
	MenuSkip      MenuItemID = "skip"
	MenuQuit      MenuItemID = "quit"
)

// MenuItemIDs returns every known menu item id
func MenuItemIDs() []MenuItemID {
	return []MenuItemID{MenuPlayPause, MenuReset, MenuSkip, MenuQuit}
}

// ParseMenuItemID maps an id coming from the native menu onto the closed
// set. ok is false for ids this application never registered.
func ParseMenuItemID(raw string) (id MenuItemID, ok bool) {
	switch MenuItemID(raw) {
	case MenuPlayPause, MenuReset, MenuSkip, MenuQuit:
		return MenuItemID(raw), true
	}
	return "", false
}

// MenuItem is a single selectable menu entry
type MenuItem struct {
	ID      MenuItemID
	Label   string
	Enabled bool
}

// MenuEntry is either an item or a separator
type MenuEntry struct {
	Item      MenuItem
	Separator bool
}

// Item returns an enabled menu entry
func Item(id MenuItemID, label string) MenuEntry {
	return MenuEntry{Item: MenuItem{ID: id, Label: label, Enabled: true}}
}

// Separator returns a visual separator entry
func Separator() MenuEntry {
	return MenuEntry{Separator: true}
}

// MenuSpec is the ordered description of the tray menu
type MenuSpec struct {
	Entries []MenuEntry
}

// DefaultMenu builds the standard menu: play/pause, reset, skip, a
// separator and quit.
func DefaultMenu(labels config.MenuLabels) MenuSpec {
	return MenuSpec{Entries: []MenuEntry{
		Item(MenuPlayPause, labels.PlayPause),
		Item(MenuReset, labels.Reset),
		Item(MenuSkip, labels.Skip),
		Separator(),
		Item(MenuQuit, labels.Quit),
	}}
}

// Items returns the non-separator entries in order
func (s MenuSpec) Items() []MenuItem {
	items := make([]MenuItem, 0, len(s.Entries))
	for _, e := range s.Entries {
		if !e.Separator {
			items = append(items, e.Item)
		}
	}
	return items
}

// Validate checks that the menu has items and that ids are known and unique
func (s MenuSpec) Validate() error {
	items := s.Items()
	if len(items) == 0 {
		return ErrEmptyMenu
	}

	seen := make(map[MenuItemID]bool, len(items))
	for _, item := range items {
		if _, ok := ParseMenuItemID(string(item.ID)); !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMenuItem, item.ID)
		}
		if seen[item.ID] {
			return fmt.Errorf("%w: %q", ErrDuplicateMenuItem, item.ID)
		}
		seen[item.ID] = true
	}
	return nil
}
