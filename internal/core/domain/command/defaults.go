package command

import (
	"kbot/internal/core/port"
	"kbot/internal/core/service"
	"time"
)

type Dependencies struct {
	Store    port.Store
	Auth     service.Authorizer
	Sender   port.TextSender
	Now      func() time.Time
	BotName  string
	Platform string
}

// RegisterDefaults adds every built-in command to the registry and returns the custom command runner used
// for all other names.
func RegisterDefaults(registry port.CommandRegistry, deps Dependencies) *Custom {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	registry.Register(NewSet(deps.Store, deps.Auth, deps.Sender, "set"))
	registry.Register(NewUnset(deps.Store, deps.Auth, deps.Sender, "unset"))
	registry.Register(NewHelp(deps.Sender, deps.BotName, "help"))
	registry.Register(NewAdmins(deps.Auth, deps.Sender, deps.BotName, deps.Platform, "admins"))
	registry.Register(NewDate(deps.Sender, now, "date"))
	registry.Register(NewCommands(deps.Store, deps.Sender, "commands"))
	registry.Register(NewGvGNeed(deps.Store, deps.Sender, now, "gvg-need"))
	registry.Register(NewGvGRemoveMe(deps.Store, deps.Sender, "gvg-removeme"))
	registry.Register(NewGvGList(deps.Store, deps.Sender, now, "gvg-list"))
	registry.Register(NewGvGClear(deps.Store, deps.Auth, deps.Sender, "gvg-clear-list"))
	registry.Register(NewGvGClear(deps.Store, deps.Auth, deps.Sender, "gvg-clear"))

	return NewCustom(deps.Store, deps.Sender)
}
