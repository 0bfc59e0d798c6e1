package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterDefaults(t *testing.T) {
	r := &Registry{}

	custom := RegisterDefaults(r, Dependencies{Store: &mockStore{}, Auth: admins, Sender: &mockTextSender{}})

	assert.NotNil(t, custom)
	assert.ElementsMatch(t, []string{
		"set", "unset", "help", "admins", "date", "commands",
		"gvg-need", "gvg-removeme", "gvg-list", "gvg-clear-list", "gvg-clear",
	}, r.ListCommands())
}
