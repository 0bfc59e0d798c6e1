package command

import (
	"errors"
	"kbot/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustom_Respond(t *testing.T) {
	store := &mockStore{commands: []domain.CustomCommand{
		{Name: "eat", Reply: "I eat dog food"},
		{Name: "Eat", Reply: "upper"},
	}}

	tests := []struct {
		name        string
		text        string
		wantReplies []string
	}{
		{
			name:        "known command replies verbatim",
			text:        "!eat",
			wantReplies: []string{"I eat dog food"},
		},
		{
			name:        "arguments are ignored",
			text:        "!eat now please",
			wantReplies: []string{"I eat dog food"},
		},
		{
			name:        "names are case sensitive",
			text:        "!Eat",
			wantReplies: []string{"upper"},
		},
		{
			name:        "unknown command is silent",
			text:        "!sleep",
			wantReplies: nil,
		},
		{
			name:        "bare marker is silent",
			text:        "!",
			wantReplies: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockTextSender{}
			c := NewCustom(store, sender)

			err := c.Respond(t.Context(), msg("anyone", tt.text))
			require.NoError(t, err)

			assert.Equal(t, tt.wantReplies, sender.replyCalls)
		})
	}
}

func TestCustom_StoreFailure(t *testing.T) {
	sender := &mockTextSender{}
	c := NewCustom(&mockStore{err: errors.New("closed")}, sender)

	err := c.Respond(t.Context(), msg("anyone", "!eat"))
	require.Error(t, err)
	assert.Empty(t, sender.replyCalls)
}

func TestCommands_Respond(t *testing.T) {
	tests := []struct {
		name     string
		commands []domain.CustomCommand
		want     string
	}{
		{
			name:     "lists all names",
			commands: []domain.CustomCommand{{Name: "eat", Reply: "a"}, {Name: "drink", Reply: "b"}},
			want:     "Available custom commands are: `!eat !drink`",
		},
		{
			name:     "empty store keeps the wrapper",
			commands: nil,
			want:     "Available custom commands are: ``",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &mockTextSender{}
			c := NewCommands(&mockStore{commands: tt.commands}, sender, "commands")

			err := c.Respond(t.Context(), msg("anyone", "!commands"))
			require.NoError(t, err)

			require.Len(t, sender.replyCalls, 1)
			assert.Equal(t, tt.want, sender.replyCalls[0])
		})
	}
}
