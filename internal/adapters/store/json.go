package store

import (
	"encoding/json"
	"fmt"
	"kbot/internal/adapters/file"

	"github.com/rs/zerolog/log"
)

// NewJSONFile opens a lowdb style JSON document at path, creating it with empty lists if it does not exist.
func NewJSONFile(path string) (*Store, error) {
	doc := newDocument()

	buf, err := file.ReadIfExists(path)
	if err != nil {
		return nil, err
	}

	if len(buf) > 0 {
		if err := json.Unmarshal(buf, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if doc.Messages == nil {
		doc.Messages = []messageRecord{}
	}
	if doc.GvG == nil {
		doc.GvG = []gvgRecord{}
	}

	flush := func(d document) error {
		data, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}

		return file.WriteAtomic(path, data)
	}

	if err := flush(doc); err != nil {
		return nil, err
	}

	log.Info().
		Str("path", path).
		Int("commands", len(doc.Messages)).
		Int("waitlist", len(doc.GvG)).
		Msg("loaded json store")

	return &Store{doc: doc, flush: flush, name: "json"}, nil
}
