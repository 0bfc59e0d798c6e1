package command

import (
	"context"
	"fmt"
	"kbot/internal/core/domain"
	"kbot/internal/core/port"
	"strings"
)

// Custom replies with the stored text of a custom command. It is not registered under a name; the dispatcher
// falls back to it for any command without a built-in handler.
type Custom struct {
	store  port.Store
	sender port.TextSender
}

func NewCustom(store port.Store, sender port.TextSender) *Custom {
	return &Custom{store: store, sender: sender}
}

func (c *Custom) GetCommand() string {
	return "custom"
}

func (c *Custom) Respond(ctx context.Context, message *domain.Message) error {
	name := ParseCommand(message.Text)
	if name == "" {
		return nil
	}

	l := requestLogger(message, name)

	cmds, err := c.store.Commands(ctx)
	if err != nil {
		return fmt.Errorf("failed to load commands: %w", err)
	}

	for _, cmd := range cmds {
		if cmd.Name == name {
			l.Info().Msg("handling request")
			return reply(ctx, c.sender, message, cmd.Reply)
		}
	}

	l.Debug().Msg("unknown command")

	return nil
}

// Commands lists the names of all custom commands.
type Commands struct {
	store   port.Store
	sender  port.TextSender
	command string
}

func NewCommands(store port.Store, sender port.TextSender, command string) *Commands {
	return &Commands{store: store, sender: sender, command: command}
}

func (c *Commands) GetCommand() string {
	return c.command
}

const availableCommands = "Available custom commands are: `%s`"

func (c *Commands) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, c.GetCommand())
	l.Info().Msg("handling request")

	cmds, err := c.store.Commands(ctx)
	if err != nil {
		return fmt.Errorf("failed to load commands: %w", err)
	}

	names := make([]string, len(cmds))
	for i, cmd := range cmds {
		names[i] = domain.CommandMarker + cmd.Name
	}

	return reply(ctx, c.sender, message, fmt.Sprintf(availableCommands, strings.Join(names, " ")))
}
