package store

import (
	"errors"
	"fmt"

	"github.com/rapidloop/skv"
	"github.com/rs/zerolog/log"
)

const (
	messagesKey = "messages"
	gvgKey      = "gvg"
)

// NewBolt opens a bolt backed key-value file at path and keeps each list under its own key.
func NewBolt(path string) (*Store, error) {
	kv, err := skv.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt store %s: %w", path, err)
	}

	doc := newDocument()

	if err := kv.Get(messagesKey, &doc.Messages); err != nil && !errors.Is(err, skv.ErrNotFound) {
		kv.Close()
		return nil, fmt.Errorf("failed to load %s: %w", messagesKey, err)
	}
	if err := kv.Get(gvgKey, &doc.GvG); err != nil && !errors.Is(err, skv.ErrNotFound) {
		kv.Close()
		return nil, fmt.Errorf("failed to load %s: %w", gvgKey, err)
	}

	flush := func(d document) error {
		if err := kv.Put(messagesKey, d.Messages); err != nil {
			return err
		}

		return kv.Put(gvgKey, d.GvG)
	}

	log.Info().
		Str("path", path).
		Int("commands", len(doc.Messages)).
		Int("waitlist", len(doc.GvG)).
		Msg("loaded bolt store")

	return &Store{
		doc:   doc,
		flush: flush,
		close: kv.Close,
		name:  "bolt",
	}, nil
}
