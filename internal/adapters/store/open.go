package store

import (
	"fmt"
	"kbot/internal/core/domain"
)

const (
	BackendJSON   = "json"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Open returns the store for the configured backend.
func Open(backend, path string) (*Store, error) {
	switch backend {
	case BackendJSON, "":
		return NewJSONFile(path)
	case BackendBolt:
		return NewBolt(path)
	case BackendMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, backend)
	}
}
