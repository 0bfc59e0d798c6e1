package handler

import (
	"context"
	"kbot/internal/adapters/store"
	"kbot/internal/core/domain"
	"kbot/internal/core/domain/command"
	"kbot/internal/core/service"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSender struct {
	sent []string
}

func (r *recordingSender) SendMessage(_ context.Context, _ string, text string) error {
	r.sent = append(r.sent, text)
	return nil
}

func (r *recordingSender) last() string {
	if len(r.sent) == 0 {
		return ""
	}
	return r.sent[len(r.sent)-1]
}

func newBot(t *testing.T, now func() time.Time) (*Command, *store.Store, *recordingSender) {
	t.Helper()

	s := store.NewMemory()
	t.Cleanup(func() { s.Close() })

	sender := &recordingSender{}
	registry := &command.Registry{}
	custom := command.RegisterDefaults(registry, command.Dependencies{
		Store:    s,
		Auth:     service.NewStaticAdminPolicy("A"),
		Sender:   sender,
		Now:      now,
		BotName:  "KB Bot",
		Platform: "Discord",
	})

	return NewCommand(registry, custom, nil), s, sender
}

func say(ctx context.Context, c *Command, user, text string) {
	c.Handle(ctx, &domain.Message{Username: user, UserID: user, ChannelID: "general", Text: text})
}

func TestScenario_SetThenRunCustomCommand(t *testing.T) {
	bot, s, sender := newBot(t, time.Now)
	ctx := t.Context()

	say(ctx, bot, "A", "!set eat I eat dog food")
	say(ctx, bot, "U", "!eat")

	assert.Equal(t, "I eat dog food", sender.last())

	say(ctx, bot, "A", "!set eat I eat cake")
	say(ctx, bot, "U", "!eat")

	assert.Equal(t, "I eat cake", sender.last())

	cmds, err := s.Commands(ctx)
	require.NoError(t, err)
	assert.Len(t, cmds, 1)
}

func TestScenario_UnknownCustomCommandIsSilent(t *testing.T) {
	bot, _, sender := newBot(t, time.Now)

	say(t.Context(), bot, "U", "!nothing-here")
	say(t.Context(), bot, "U", "just chatting")

	assert.Empty(t, sender.sent)
}

func TestScenario_NonAdminCannotMutate(t *testing.T) {
	bot, s, sender := newBot(t, time.Now)
	ctx := t.Context()

	say(ctx, bot, "U", "!gvg-need")
	sender.sent = nil

	say(ctx, bot, "N", "!set eat food")
	say(ctx, bot, "N", "!gvg-clear")

	assert.Equal(t, []string{
		"You are not allowed to do that `N`!",
		"You are not allowed to do that `N`!",
	}, sender.sent)

	cmds, err := s.Commands(ctx)
	require.NoError(t, err)
	assert.Empty(t, cmds)

	entries, err := s.Waitlist(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScenario_JoinTwiceThenList(t *testing.T) {
	bot, s, sender := newBot(t, time.Now)
	ctx := t.Context()

	say(ctx, bot, "U", "!gvg-need")
	first := sender.last()
	say(ctx, bot, "U", "!gvg-need")
	second := sender.last()

	assert.NotEqual(t, first, second)

	entries, err := s.Waitlist(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	say(ctx, bot, "U", "!gvg-list")
	assert.Contains(t, sender.last(), "U (0 mins)")
}

func TestScenario_ListOrderAndClear(t *testing.T) {
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	bot, s, sender := newBot(t, clock)
	ctx := t.Context()

	say(ctx, bot, "first", "!gvg-need")
	now = now.Add(10 * time.Minute)
	say(ctx, bot, "second", "!gvg-need")
	now = now.Add(5 * time.Minute)

	say(ctx, bot, "anyone", "!gvg-list")
	assert.Equal(t,
		"Players looking for GvG with waiting times are\n```\nfirst (15 mins)\nsecond (5 mins)\n```",
		sender.last())

	sender.sent = nil
	say(ctx, bot, "A", "!gvg-clear-list")
	say(ctx, bot, "A", "!gvg-clear")

	assert.Equal(t, []string{"GvG list has been cleared!", "GvG list has been cleared!"}, sender.sent)

	entries, err := s.Waitlist(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	say(ctx, bot, "anyone", "!gvg-list")
	assert.Equal(t, "No players are looking for GvG. All good!", sender.last())
}

func TestScenario_RemoveMeWhenAbsentIsSilent(t *testing.T) {
	bot, s, sender := newBot(t, time.Now)
	ctx := t.Context()

	say(ctx, bot, "other", "!gvg-need")
	sender.sent = nil

	say(ctx, bot, "U", "!gvg-removeme")

	assert.Empty(t, sender.sent)

	entries, err := s.Waitlist(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestScenario_OneReplyPerMessage(t *testing.T) {
	bot, _, sender := newBot(t, time.Now)
	ctx := t.Context()

	for _, text := range []string{"!help", "!admins", "!date", "!commands", "!gvg-list"} {
		before := len(sender.sent)
		say(ctx, bot, "U", text)
		assert.Equal(t, before+1, len(sender.sent), text)
	}
}
