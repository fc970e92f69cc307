package shell

import (
	"pomo/internal/appctx"
)

// Commands is the set of backend calls the frontend may invoke
type Commands struct {
	app *appctx.ApplicationContext
}

// NewCommands creates the frontend command set
func NewCommands(app *appctx.ApplicationContext) *Commands {
	return &Commands{app: app}
}

// SetTrayTooltip updates the tray hover text, typically with the remaining
// time of the current phase
func (c *Commands) SetTrayTooltip(text string) {
	c.app.SetTrayTooltip(text)
}

// Notify shows a desktop notification
func (c *Commands) Notify(title, body string) error {
	return c.app.Notify(title, body)
}
