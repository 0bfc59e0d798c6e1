package command

import (
	"errors"
	"kbot/internal/core/domain"
	"kbot/internal/core/port"
	"strings"

	"github.com/rs/zerolog/log"
)

type Registry struct {
	commands map[string]port.Command
}

func (r *Registry) Register(handler port.Command) {
	if r.commands == nil {
		r.commands = make(map[string]port.Command)
	}

	log.Info().Str("handler", handler.GetCommand()).Msg("adding command handler to registry")
	r.commands[handler.GetCommand()] = handler
}

func (r *Registry) Get(command string) (port.Command, error) {
	log.Debug().Str("command", command).Msg("fetching command handler from registry")

	if r.commands == nil {
		err := errors.New("can't fetch command, registry not initialized")
		return nil, err
	}

	handler, ok := r.commands[command]
	if !ok {
		return nil, errors.New("command not found")
	}

	return handler, nil
}

func (r *Registry) ListCommands() []string {
	keys := make([]string, len(r.commands))

	i := 0
	for k := range r.commands {
		keys[i] = k
		i++
	}

	return keys
}

// IsCommand reports whether text starts with the command marker.
func IsCommand(text string) bool {
	return strings.HasPrefix(text, domain.CommandMarker)
}

// ParseCommandArgs returns everything after the first space, or an empty string if there is none.
func ParseCommandArgs(args string) string {
	_, rest, _ := strings.Cut(args, " ")
	return rest
}

// ParseCommand returns the first word without the command marker. Command names are case-sensitive.
func ParseCommand(args string) string {
	command, _, _ := strings.Cut(args, " ")
	return strings.TrimPrefix(command, domain.CommandMarker)
}

// splitArgs splits argument text into its first word and the remainder.
func splitArgs(args string) (string, string) {
	first, rest, _ := strings.Cut(args, " ")
	return first, rest
}
