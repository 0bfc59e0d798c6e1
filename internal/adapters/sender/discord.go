package sender

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

const DiscordMessageLimit = 2000

type DiscordSession interface {
	ChannelMessageSend(channelID string, content string, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

type DiscordSender struct {
	session DiscordSession
}

func NewDiscord(session DiscordSession) *DiscordSender {
	return &DiscordSender{session: session}
}

func (s *DiscordSender) SendMessage(ctx context.Context, channelID string, text string) error {
	for _, part := range chunk(text, DiscordMessageLimit) {
		_, err := s.session.ChannelMessageSend(channelID, part, discordgo.WithContext(ctx))
		if err != nil {
			log.Error().Err(err).Str("channelId", channelID).Msg("failed to send discord message")
			return err
		}
	}

	return nil
}
