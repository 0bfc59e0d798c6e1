package command

import (
	"context"
	"kbot/internal/core/domain"
	"kbot/internal/core/service"
	"time"
)

type mockTextSender struct {
	replyCalls []string
	channels   []string
	replyErr   error
}

func (m *mockTextSender) SendMessage(_ context.Context, channelID string, text string) error {
	m.replyCalls = append(m.replyCalls, text)
	m.channels = append(m.channels, channelID)
	return m.replyErr
}

type mockStore struct {
	commands  []domain.CustomCommand
	waitlist  []domain.WaitlistEntry
	mutations int
	err       error
}

func (m *mockStore) Commands(_ context.Context) ([]domain.CustomCommand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.CustomCommand{}, m.commands...), nil
}

func (m *mockStore) PushCommand(_ context.Context, cmd domain.CustomCommand) error {
	if m.err != nil {
		return m.err
	}
	m.mutations++
	m.commands = append(m.commands, cmd)
	return nil
}

func (m *mockStore) RemoveCommand(_ context.Context, name string) error {
	if m.err != nil {
		return m.err
	}
	m.mutations++
	kept := []domain.CustomCommand{}
	for _, c := range m.commands {
		if c.Name != name {
			kept = append(kept, c)
		}
	}
	m.commands = kept
	return nil
}

func (m *mockStore) Waitlist(_ context.Context) ([]domain.WaitlistEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.WaitlistEntry{}, m.waitlist...), nil
}

func (m *mockStore) PushWaitlist(_ context.Context, entry domain.WaitlistEntry) error {
	if m.err != nil {
		return m.err
	}
	m.mutations++
	m.waitlist = append(m.waitlist, entry)
	return nil
}

func (m *mockStore) RemoveWaitlist(_ context.Context, user string) error {
	if m.err != nil {
		return m.err
	}
	m.mutations++
	kept := []domain.WaitlistEntry{}
	for _, e := range m.waitlist {
		if e.User != user {
			kept = append(kept, e)
		}
	}
	m.waitlist = kept
	return nil
}

func (m *mockStore) Close() error {
	return nil
}

var admins = service.NewStaticAdminPolicy("kmark")

var fixedNow = time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC)

func clock() time.Time {
	return fixedNow
}

func msg(user, text string) *domain.Message {
	return &domain.Message{Username: user, UserID: "id-" + user, ChannelID: "chan", Text: text}
}
