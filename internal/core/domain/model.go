package domain

import "time"

// Message is a chat message as seen by the command handlers, independent of the platform it came from.
type Message struct {
	Username  string
	UserID    string
	ChannelID string
	Text      string
}

type CustomCommand struct {
	Name  string
	Reply string
}

// WaitlistEntry is a user waiting for a GvG team. A zero JoinedAt means the stored timestamp was missing or
// could not be parsed.
type WaitlistEntry struct {
	User     string
	JoinedAt time.Time
}
