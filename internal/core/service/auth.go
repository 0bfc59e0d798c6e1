package service

import (
	"errors"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Authorizer interface {
	IsAdmin(identity string) bool
	Admins() []string
}

// AdminPolicy decides which users may change custom commands or clear the waitlist. Identities are compared
// as exact strings against the configured usernames.
type AdminPolicy struct {
	admins []string
}

func NewAdminPolicy() (*AdminPolicy, error) {
	var list []string

	err := viper.UnmarshalKey("bot.admins", &list)
	if err != nil {
		return nil, errors.New("failed to load bot admins")
	}

	log.Info().Strs("admins", list).Msg("loaded bot admins")

	return &AdminPolicy{admins: list}, nil
}

func NewStaticAdminPolicy(admins ...string) *AdminPolicy {
	return &AdminPolicy{admins: admins}
}

func (a *AdminPolicy) IsAdmin(identity string) bool {
	for _, admin := range a.admins {
		if admin == identity {
			return true
		}
	}

	return false
}

// Admins returns a copy of the admin list in configuration order.
func (a *AdminPolicy) Admins() []string {
	list := make([]string, len(a.admins))
	copy(list, a.admins)

	return list
}
