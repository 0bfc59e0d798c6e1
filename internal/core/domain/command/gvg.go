package command

import (
	"context"
	"fmt"
	"kbot/internal/core/domain"
	"kbot/internal/core/port"
	"kbot/internal/core/service"
	"slices"
	"strings"
	"time"
)

type GvGNeed struct {
	store   port.Store
	sender  port.TextSender
	now     func() time.Time
	command string
}

func NewGvGNeed(store port.Store, sender port.TextSender, now func() time.Time, command string) *GvGNeed {
	return &GvGNeed{store: store, sender: sender, now: now, command: command}
}

func (g *GvGNeed) GetCommand() string {
	return g.command
}

const (
	lookingForTeam = "`%s` is looking for a GvG team!"
	alreadyListed  = "`%s` is already in the list! Someone team up with `%s`!"
)

func (g *GvGNeed) Respond(ctx context.Context, message *domain.Message) error {
	user := message.Username
	if user == "" {
		return nil
	}

	l := requestLogger(message, g.GetCommand())
	l.Info().Msg("handling request")

	entries, err := g.store.Waitlist(ctx)
	if err != nil {
		return fmt.Errorf("failed to load waitlist: %w", err)
	}

	for _, entry := range entries {
		if entry.User == user {
			l.Debug().Msg("user already on waitlist")
			return reply(ctx, g.sender, message, fmt.Sprintf(alreadyListed, user, user))
		}
	}

	if err := g.store.PushWaitlist(ctx, domain.WaitlistEntry{User: user, JoinedAt: g.now()}); err != nil {
		return fmt.Errorf("failed to add user to waitlist: %w", err)
	}

	return reply(ctx, g.sender, message, fmt.Sprintf(lookingForTeam, user))
}

type GvGRemoveMe struct {
	store   port.Store
	sender  port.TextSender
	command string
}

func NewGvGRemoveMe(store port.Store, sender port.TextSender, command string) *GvGRemoveMe {
	return &GvGRemoveMe{store: store, sender: sender, command: command}
}

func (g *GvGRemoveMe) GetCommand() string {
	return g.command
}

const removedFromList = "`%s` has been removed from the GvG list"

func (g *GvGRemoveMe) Respond(ctx context.Context, message *domain.Message) error {
	user := message.Username
	if user == "" {
		return nil
	}

	l := requestLogger(message, g.GetCommand())
	l.Info().Msg("handling request")

	entries, err := g.store.Waitlist(ctx)
	if err != nil {
		return fmt.Errorf("failed to load waitlist: %w", err)
	}

	for _, entry := range entries {
		if entry.User != user {
			continue
		}

		if err := g.store.RemoveWaitlist(ctx, user); err != nil {
			return fmt.Errorf("failed to remove user from waitlist: %w", err)
		}

		return reply(ctx, g.sender, message, fmt.Sprintf(removedFromList, user))
	}

	l.Debug().Msg("user not on waitlist")

	return nil
}

type GvGList struct {
	store   port.Store
	sender  port.TextSender
	now     func() time.Time
	command string
}

func NewGvGList(store port.Store, sender port.TextSender, now func() time.Time, command string) *GvGList {
	return &GvGList{store: store, sender: sender, now: now, command: command}
}

func (g *GvGList) GetCommand() string {
	return g.command
}

const (
	waitlistHeader = "Players looking for GvG with waiting times are\n```\n%s\n```"
	emptyWaitlist  = "No players are looking for GvG. All good!"
)

func (g *GvGList) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, g.GetCommand())
	l.Info().Msg("handling request")

	entries, err := g.store.Waitlist(ctx)
	if err != nil {
		return fmt.Errorf("failed to load waitlist: %w", err)
	}

	list := FormatWaitlist(entries, g.now())
	if list == "" {
		return reply(ctx, g.sender, message, emptyWaitlist)
	}

	return reply(ctx, g.sender, message, fmt.Sprintf(waitlistHeader, list))
}

// FormatWaitlist orders entries by join time, oldest first, and renders one `user (N mins)` line per entry.
// Entries without a join time count as joining now and go last.
func FormatWaitlist(entries []domain.WaitlistEntry, now time.Time) string {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, compareJoinedAt)

	lines := make([]string, len(sorted))
	for i, entry := range sorted {
		lines[i] = fmt.Sprintf("%s (%d mins)", entry.User, WaitMinutes(entry.JoinedAt, now))
	}

	return strings.Join(lines, "\n")
}

func compareJoinedAt(a, b domain.WaitlistEntry) int {
	switch {
	case a.JoinedAt.IsZero() && b.JoinedAt.IsZero():
		return 0
	case a.JoinedAt.IsZero():
		return 1
	case b.JoinedAt.IsZero():
		return -1
	}

	return a.JoinedAt.Compare(b.JoinedAt)
}

// WaitMinutes returns the whole minutes elapsed since joinedAt, never negative. A zero joinedAt counts as now.
func WaitMinutes(joinedAt, now time.Time) int {
	if joinedAt.IsZero() {
		return 0
	}

	minutes := int(now.Sub(joinedAt) / time.Minute)
	if minutes < 0 {
		return 0
	}

	return minutes
}

// GvGClear empties the waitlist. Admins only.
type GvGClear struct {
	store   port.Store
	auth    service.Authorizer
	sender  port.TextSender
	command string
}

func NewGvGClear(store port.Store, auth service.Authorizer, sender port.TextSender, command string) *GvGClear {
	return &GvGClear{store: store, auth: auth, sender: sender, command: command}
}

func (g *GvGClear) GetCommand() string {
	return g.command
}

const waitlistCleared = "GvG list has been cleared!"

func (g *GvGClear) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, g.GetCommand())

	if !g.auth.IsAdmin(message.Username) {
		l.Info().Msg("rejecting non-admin")
		return rejectNonAdmin(ctx, g.sender, message)
	}

	entries, err := g.store.Waitlist(ctx)
	if err != nil {
		return fmt.Errorf("failed to load waitlist: %w", err)
	}

	l.Info().Int("entries", len(entries)).Msg("handling request")

	for _, entry := range entries {
		if err := g.store.RemoveWaitlist(ctx, entry.User); err != nil {
			return fmt.Errorf("failed to remove %s from waitlist: %w", entry.User, err)
		}
	}

	return reply(ctx, g.sender, message, waitlistCleared)
}
