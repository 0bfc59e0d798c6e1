package port

import (
	"context"
	"kbot/internal/core/domain"
)

// Store holds the custom commands and the GvG waitlist. Every mutating call is flushed to durable storage
// before it returns.
type Store interface {
	Commands(ctx context.Context) ([]domain.CustomCommand, error)
	PushCommand(ctx context.Context, cmd domain.CustomCommand) error
	// RemoveCommand deletes every custom command with the given name.
	RemoveCommand(ctx context.Context, name string) error

	Waitlist(ctx context.Context) ([]domain.WaitlistEntry, error)
	PushWaitlist(ctx context.Context, entry domain.WaitlistEntry) error
	// RemoveWaitlist deletes every waitlist entry for the given user.
	RemoveWaitlist(ctx context.Context, user string) error

	Close() error
}
