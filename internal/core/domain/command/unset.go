package command

import (
	"context"
	"fmt"
	"kbot/internal/core/domain"
	"kbot/internal/core/port"
	"kbot/internal/core/service"
)

// Unset handles `!unset <name> <target>`. When a command called target exists, the command called name is
// deleted. Admins only.
type Unset struct {
	store   port.Store
	auth    service.Authorizer
	sender  port.TextSender
	command string
}

func NewUnset(store port.Store, auth service.Authorizer, sender port.TextSender, command string) *Unset {
	return &Unset{store: store, auth: auth, sender: sender, command: command}
}

func (u *Unset) GetCommand() string {
	return u.command
}

const deleted = "`!%s` has been deleted!"

func (u *Unset) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, u.GetCommand())

	args := ParseCommandArgs(message.Text)
	if args == "" {
		l.Debug().Msg("no arguments, ignoring")
		return nil
	}

	if !u.auth.IsAdmin(message.Username) {
		l.Info().Msg("rejecting non-admin")
		return rejectNonAdmin(ctx, u.sender, message)
	}

	name, target := splitArgs(args)
	if name == "" || target == "" {
		l.Debug().Msg("missing name or target, ignoring")
		return nil
	}

	l.Info().Str("name", name).Str("target", target).Msg("handling request")

	cmds, err := u.store.Commands(ctx)
	if err != nil {
		return fmt.Errorf("failed to load commands: %w", err)
	}

	for _, cmd := range cmds {
		if cmd.Name != target {
			continue
		}

		if err := u.store.RemoveCommand(ctx, name); err != nil {
			return fmt.Errorf("failed to remove command: %w", err)
		}

		return reply(ctx, u.sender, message, fmt.Sprintf(deleted, name))
	}

	l.Debug().Msg("no matching command")

	return nil
}
