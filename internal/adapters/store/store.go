package store

import (
	"context"
	"encoding/json"
	"fmt"
	"kbot/internal/core/domain"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// document is the persisted shape, compatible with the lowdb db.json of the original bot.
type document struct {
	Messages []messageRecord `json:"messages"`
	GvG      []gvgRecord     `json:"gvg"`
}

type messageRecord struct {
	Command string `json:"command"`
	Data    string `json:"data"`
}

// gvgRecord keeps the timestamp as raw JSON so values of any type load and are written back untouched.
type gvgRecord struct {
	Name      string          `json:"name"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

func newDocument() document {
	return document{Messages: []messageRecord{}, GvG: []gvgRecord{}}
}

// Store keeps the whole document in memory and hands it to flush after every mutation.
type Store struct {
	mu     sync.Mutex
	doc    document
	flush  func(doc document) error
	close  func() error
	closed bool
	name   string
}

func (s *Store) Commands(_ context.Context) ([]domain.CustomCommand, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrStoreClosed
	}

	cmds := make([]domain.CustomCommand, len(s.doc.Messages))
	for i, m := range s.doc.Messages {
		cmds[i] = domain.CustomCommand{Name: m.Command, Reply: m.Data}
	}

	return cmds, nil
}

func (s *Store) PushCommand(_ context.Context, cmd domain.CustomCommand) error {
	return s.mutate(func(doc *document) {
		doc.Messages = append(doc.Messages, messageRecord{Command: cmd.Name, Data: cmd.Reply})
	})
}

func (s *Store) RemoveCommand(_ context.Context, name string) error {
	return s.mutate(func(doc *document) {
		kept := make([]messageRecord, 0, len(doc.Messages))
		for _, m := range doc.Messages {
			if m.Command != name {
				kept = append(kept, m)
			}
		}
		doc.Messages = kept
	})
}

func (s *Store) Waitlist(_ context.Context) ([]domain.WaitlistEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, domain.ErrStoreClosed
	}

	entries := make([]domain.WaitlistEntry, len(s.doc.GvG))
	for i, g := range s.doc.GvG {
		entries[i] = domain.WaitlistEntry{User: g.Name, JoinedAt: parseTimestamp(g.Timestamp)}
	}

	return entries, nil
}

func (s *Store) PushWaitlist(_ context.Context, entry domain.WaitlistEntry) error {
	return s.mutate(func(doc *document) {
		doc.GvG = append(doc.GvG, gvgRecord{Name: entry.User, Timestamp: formatTimestamp(entry.JoinedAt)})
	})
}

func (s *Store) RemoveWaitlist(_ context.Context, user string) error {
	return s.mutate(func(doc *document) {
		kept := make([]gvgRecord, 0, len(doc.GvG))
		for _, g := range doc.GvG {
			if g.Name != user {
				kept = append(kept, g)
			}
		}
		doc.GvG = kept
	})
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true

	log.Info().Str("backend", s.name).Msg("closing store")

	if s.close == nil {
		return nil
	}

	return s.close()
}

// mutate applies fn to a copy of the document and only keeps the result once it has been flushed.
func (s *Store) mutate(fn func(doc *document)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return domain.ErrStoreClosed
	}

	next := document{
		Messages: append([]messageRecord{}, s.doc.Messages...),
		GvG:      append([]gvgRecord{}, s.doc.GvG...),
	}
	fn(&next)

	if s.flush != nil {
		if err := s.flush(next); err != nil {
			return fmt.Errorf("failed to flush %s store: %w", s.name, err)
		}
	}

	s.doc = next

	return nil
}

func formatTimestamp(t time.Time) json.RawMessage {
	if t.IsZero() {
		return nil
	}

	raw, _ := json.Marshal(t.UTC().Format(time.RFC3339Nano))
	return raw
}

// parseTimestamp accepts an RFC 3339 string (which covers the ISO strings moment wrote) and returns the zero
// time for anything else, including numbers, objects and null.
func parseTimestamp(raw json.RawMessage) time.Time {
	if len(raw) == 0 {
		return time.Time{}
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Debug().RawJSON("timestamp", raw).Msg("ignoring non-string waitlist timestamp")
		return time.Time{}
	}

	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		log.Debug().Str("timestamp", s).Err(err).Msg("ignoring malformed waitlist timestamp")
		return time.Time{}
	}

	return t
}
