package port

import "context"

type TextSender interface {
	// SendMessage sends a plain text message to the given channel.
	SendMessage(ctx context.Context, channelID string, text string) error
}
