package command

import (
	"context"
	"fmt"
	"kbot/internal/core/domain"
	"kbot/internal/core/port"
	"kbot/internal/core/service"
	"strings"
	"time"
)

const helpMessage = "To set a custom command (admins only), type `!set <command> <message>`. " +
	"For example: `!set eat I eat dog food`\n\n" +
	"To delete a custom command (admins only), type `!unset <command> <command>`. For example: `!unset eat eat`\n\n" +
	"To run a custom command, type `!<command>`. For example: `!eat`\n\n" +
	"To see all custom commands type `!commands`\n\n" +
	"To see all %s admins `!admins`\n\n" +
	"To see the server date `!date`\n\n" +
	"To request for GvG, type `!gvg-need`\n\n" +
	"To see list of players looking for GvG, type `!gvg-list`\n\n" +
	"To remove yourself from the GvG list, type `!gvg-removeme`\n\n" +
	"To clear GvG list (admins only), type `!gvg-clear-list` or `!gvg-clear`\n\n"

type Help struct {
	sender  port.TextSender
	botName string
	command string
}

func NewHelp(sender port.TextSender, botName string, command string) *Help {
	return &Help{sender: sender, botName: botName, command: command}
}

func (h *Help) GetCommand() string {
	return h.command
}

func (h *Help) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, h.GetCommand())
	l.Info().Msg("handling request")

	return reply(ctx, h.sender, message, fmt.Sprintf(helpMessage, h.botName))
}

type Admins struct {
	auth     service.Authorizer
	sender   port.TextSender
	botName  string
	platform string
	command  string
}

func NewAdmins(auth service.Authorizer, sender port.TextSender, botName, platform, command string) *Admins {
	return &Admins{auth: auth, sender: sender, botName: botName, platform: platform, command: command}
}

func (a *Admins) GetCommand() string {
	return a.command
}

const adminsMessage = "%s admins are `%s`. These are not necessarily %s admins."

func (a *Admins) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, a.GetCommand())
	l.Info().Msg("handling request")

	return reply(ctx, a.sender, message,
		fmt.Sprintf(adminsMessage, a.botName, strings.Join(a.auth.Admins(), ", "), a.platform))
}

// DateLayout mimics the default string form of a JavaScript Date.
const DateLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

type Date struct {
	sender  port.TextSender
	now     func() time.Time
	command string
}

func NewDate(sender port.TextSender, now func() time.Time, command string) *Date {
	return &Date{sender: sender, now: now, command: command}
}

func (d *Date) GetCommand() string {
	return d.command
}

func (d *Date) Respond(ctx context.Context, message *domain.Message) error {
	l := requestLogger(message, d.GetCommand())
	l.Info().Msg("handling request")

	return reply(ctx, d.sender, message, fmt.Sprintf("The server date is `%s`", d.now().Format(DateLayout)))
}
