package command

import (
	"context"
	"fmt"
	"kbot/internal/core/domain"
	"kbot/internal/core/port"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const notAllowed = "You are not allowed to do that `%s`!"

func requestLogger(message *domain.Message, command string) zerolog.Logger {
	return log.With().
		Str("channelId", message.ChannelID).
		Str("user", message.Username).
		Str("command", command).
		Logger()
}

func reply(ctx context.Context, sender port.TextSender, message *domain.Message, text string) error {
	err := sender.SendMessage(ctx, message.ChannelID, text)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

func rejectNonAdmin(ctx context.Context, sender port.TextSender, message *domain.Message) error {
	return reply(ctx, sender, message, fmt.Sprintf(notAllowed, message.Username))
}
