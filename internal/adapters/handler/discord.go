package handler

import (
	"context"
	"kbot/internal/core/domain"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

// Discord adapts discordgo message events to the command dispatcher.
type Discord struct {
	ctx        context.Context
	dispatcher *Command
}

func NewDiscord(ctx context.Context, dispatcher *Command) *Discord {
	return &Discord{ctx: ctx, dispatcher: dispatcher}
}

func (d *Discord) Ready(_ *discordgo.Session, r *discordgo.Ready) {
	log.Info().Str("user", r.User.Username).Int("guilds", len(r.Guilds)).Msg("discord session ready")
}

func (d *Discord) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m == nil || m.Message == nil || m.Author == nil {
		return
	}

	if s != nil && s.State != nil && s.State.User != nil && m.Author.ID == s.State.User.ID {
		return
	}

	d.dispatcher.Handle(d.ctx, &domain.Message{
		Username:  m.Author.Username,
		UserID:    m.Author.ID,
		ChannelID: m.ChannelID,
		Text:      m.Content,
	})
}
