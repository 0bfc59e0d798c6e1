package store

import "github.com/rs/zerolog/log"

// NewMemory returns a store that is never persisted. Its content is lost when the process exits.
func NewMemory() *Store {
	log.Info().Msg("using in-memory store")

	return &Store{doc: newDocument(), name: "memory"}
}
