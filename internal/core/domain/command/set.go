package command

import (
	"context"
	"fmt"
	"kbot/internal/core/domain"
	"kbot/internal/core/port"
	"kbot/internal/core/service"
)

// Set assigns a reply to a custom command name, replacing any previous reply. Admins only.
type Set struct {
	store   port.Store
	auth    service.Authorizer
	sender  port.TextSender
	command string
}

func NewSet(store port.Store, auth service.Authorizer, sender port.TextSender, command string) *Set {
	return &Set{store: store, auth: auth, sender: sender, command: command}
}

func (s *Set) GetCommand() string {
	return s.command
}

const assigned = "`!%s` has been assigned with `%s`"

func (s *Set) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, s.GetCommand())

	args := ParseCommandArgs(message.Text)
	if args == "" {
		l.Debug().Msg("no arguments, ignoring")
		return nil
	}

	if !s.auth.IsAdmin(message.Username) {
		l.Info().Msg("rejecting non-admin")
		return rejectNonAdmin(ctx, s.sender, message)
	}

	name, text := splitArgs(args)
	if name == "" || text == "" {
		l.Debug().Msg("missing name or reply, ignoring")
		return nil
	}

	l.Info().Str("name", name).Msg("handling request")

	if err := s.store.RemoveCommand(ctx, name); err != nil {
		return fmt.Errorf("failed to remove previous command: %w", err)
	}

	if err := s.store.PushCommand(ctx, domain.CustomCommand{Name: name, Reply: text}); err != nil {
		return fmt.Errorf("failed to store command: %w", err)
	}

	return reply(ctx, s.sender, message, fmt.Sprintf(assigned, name, text))
}
