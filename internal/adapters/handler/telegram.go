package handler

import (
	"context"
	"kbot/internal/core/domain"
	"strconv"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Telegram adapts go-telegram updates to the command dispatcher.
type Telegram struct {
	dispatcher *Command
}

func NewTelegram(dispatcher *Command) *Telegram {
	return &Telegram{dispatcher: dispatcher}
}

func (t *Telegram) Handle(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil {
		return
	}

	if update.Message.From.IsBot {
		return
	}

	t.dispatcher.Handle(ctx, &domain.Message{
		Username:  getUserNameOrFirstName(update.Message.From),
		UserID:    strconv.FormatInt(update.Message.From.ID, 10),
		ChannelID: strconv.FormatInt(update.Message.Chat.ID, 10),
		Text:      update.Message.Text,
	})
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return user.Username
}
