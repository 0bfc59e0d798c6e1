package main

import (
	"context"
	"errors"
	"fmt"
	"kbot/internal/adapters/handler"
	"kbot/internal/adapters/sender"
	"kbot/internal/adapters/store"
	"kbot/internal/core/domain/command"
	"kbot/internal/core/port"
	"kbot/internal/core/service"
	"os"
	"os/signal"
	"slices"
	"strings"
	"sync"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func main() {
	if err := newRootCommand().ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("kbot stopped")
	}
}

func newRootCommand() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "kbot",
		Short:         "Chat command bot with custom commands and a GvG waitlist",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return loadConfig(configFile)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context())
		},
	}

	root.PersistentFlags().StringVarP(&configFile, "config", "c", "", "path to config file (default ./config.toml)")

	return root
}

func loadConfig(configFile string) error {
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.name", "KB Bot")
	viper.SetDefault("bot.platform", "Discord")
	viper.SetDefault("store.backend", store.BackendJSON)
	viper.SetDefault("store.path", "db.json")

	viper.SetEnvPrefix("kbot")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	log.Info().Msg("reading config file...")
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("could not read config file: %w", err)
	}

	var logLevel zerolog.Level

	switch viper.GetString("bot.log_level") {
	case "info":
		logLevel = zerolog.InfoLevel
	case "debug":
		logLevel = zerolog.DebugLevel
	default:
		logLevel = zerolog.InfoLevel
	}

	zerolog.SetGlobalLevel(logLevel)

	if viper.GetBool("bot.pretty_log") {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return nil
}

func run(ctx context.Context) error {
	log.Info().Msg("starting kbot...")

	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	st, err := store.Open(viper.GetString("store.backend"), viper.GetString("store.path"))
	if err != nil {
		return fmt.Errorf("failed initializing store: %w", err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Err(err).Msg("failed closing store")
		}
	}()

	admins, err := service.NewAdminPolicy()
	if err != nil {
		return err
	}

	// one lock for all transports so messages are handled strictly one after another
	lock := &sync.Mutex{}

	discordEnabled := viper.GetBool("discord.enabled")
	telegramEnabled := viper.GetBool("telegram.enabled")

	if !discordEnabled && !telegramEnabled {
		return errors.New("no transport enabled, set discord.enabled or telegram.enabled")
	}

	if discordEnabled {
		session, err := discordgo.New("Bot " + viper.GetString("discord.token"))
		if err != nil {
			return fmt.Errorf("failed initializing discord session: %w", err)
		}

		session.Identify.Intents = discordgo.IntentsGuildMessages |
			discordgo.IntentsDirectMessages |
			discordgo.IntentMessageContent

		dispatcher := newDispatcher(st, admins, sender.NewDiscord(session), lock)
		discord := handler.NewDiscord(ctx, dispatcher)

		session.AddHandler(discord.Ready)
		session.AddHandler(discord.MessageCreate)

		if err := session.Open(); err != nil {
			return fmt.Errorf("failed opening discord session: %w", err)
		}
		defer session.Close()

		log.Info().Msg("discord listening")
	}

	if telegramEnabled {
		b, err := bot.New(viper.GetString("telegram.bot_token"), bot.WithDefaultHandler(noOpHandler))
		if err != nil {
			return fmt.Errorf("failed initializing telegram bot: %w", err)
		}

		dispatcher := newDispatcher(st, admins, sender.NewTelegram(b), lock)
		telegram := handler.NewTelegram(dispatcher)

		b.RegisterHandler(bot.HandlerTypeMessageText, "!", bot.MatchTypePrefix, telegram.Handle)

		go b.Start(ctx)

		log.Info().Msg("telegram listening")
	}

	<-ctx.Done()
	log.Info().Msg("shutting down")

	return nil
}

// newDispatcher wires the built-in commands to the given reply channel.
func newDispatcher(st port.Store, admins service.Authorizer, ts port.TextSender, lock sync.Locker) *handler.Command {
	commandRegistry := &command.Registry{}

	custom := command.RegisterDefaults(commandRegistry, command.Dependencies{
		Store:    st,
		Auth:     admins,
		Sender:   ts,
		BotName:  viper.GetString("bot.name"),
		Platform: viper.GetString("bot.platform"),
	})

	builtins := commandRegistry.ListCommands()
	slices.Sort(builtins)
	log.Info().Strs("commands", builtins).Msg("registered built-in commands")

	return handler.NewCommand(commandRegistry, custom, lock)
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
