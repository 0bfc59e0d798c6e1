package handler

import (
	"context"
	"kbot/internal/core/domain"
	"kbot/internal/core/domain/command"
	"kbot/internal/core/port"
	"sync"

	"github.com/rs/zerolog/log"
)

// Command routes chat messages to built-in handlers, falling back to the custom command runner. Messages
// are handled one at a time; dispatchers sharing a store should share the lock too.
type Command struct {
	commandRegistry port.CommandRegistry
	fallback        port.Command
	mu              sync.Locker
}

func NewCommand(commandRegistry port.CommandRegistry, fallback port.Command, lock sync.Locker) *Command {
	if lock == nil {
		lock = &sync.Mutex{}
	}

	return &Command{commandRegistry: commandRegistry, fallback: fallback, mu: lock}
}

func (c *Command) Handle(ctx context.Context, message *domain.Message) {
	if message == nil || !command.IsCommand(message.Text) {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	cmd := command.ParseCommand(message.Text)

	log.Debug().
		Str("command", cmd).
		Str("user", message.Username).
		Str("channelId", message.ChannelID).
		Msg("received command")

	commandHandler, err := c.commandRegistry.Get(cmd)
	if err != nil {
		log.Debug().Str("command", cmd).Msg("no built-in handler for command, trying custom commands")
		commandHandler = c.fallback
	}

	if commandHandler == nil {
		return
	}

	err = commandHandler.Respond(ctx, message)
	if err != nil {
		log.Err(err).Str("command", cmd).Msg("failed to respond to command")
	}
}
