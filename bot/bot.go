package bot

import (
	"fmt"

	"ligabet/bot/features/balance"
	"ligabet/bot/features/betting"
	"ligabet/bot/features/matches"
	"ligabet/bot/features/settings"
	"ligabet/bot/features/teams"
	"ligabet/bot/features/transfer"
	"ligabet/domain/interfaces"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// Config holds bot configuration
type Config struct {
	Token            string
	GuildID          string
	ResultsChannelID string
}

// Bot manages the Discord bot and all feature modules
type Bot struct {
	config     Config
	session    *discordgo.Session
	uowFactory interfaces.UnitOfWorkFactory

	betting  *betting.Feature
	matches  *matches.Feature
	teams    *teams.Feature
	balance  *balance.Feature
	transfer *transfer.Feature
	settings *settings.Feature

	stopAutoPlayWorker func()
}

// New creates a new bot instance with all features
func New(config Config, uowFactory interfaces.UnitOfWorkFactory) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:     config,
		session:    dg,
		uowFactory: uowFactory,
	}

	bot.betting = betting.New(uowFactory)
	bot.matches = matches.NewFeature(dg, uowFactory, config.ResultsChannelID)
	bot.teams = teams.New(uowFactory)
	bot.balance = balance.New(uowFactory)
	bot.transfer = transfer.New(uowFactory)
	bot.settings = settings.New(uowFactory)

	dg.AddHandler(bot.handleCommands)

	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	log.WithField("guild_id", config.GuildID).Info("Bot connected and commands registered")
	return bot, nil
}

// Close gracefully shuts down the bot
func (b *Bot) Close() error {
	if b.stopAutoPlayWorker != nil {
		b.stopAutoPlayWorker()
		log.Info("Auto-play worker stopped")
	}
	return b.session.Close()
}

// GetSession returns the Discord session
func (b *Bot) GetSession() *discordgo.Session {
	return b.session
}

// handleCommands routes slash commands to the owning feature
func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "balance", "leaderboard":
		b.balance.HandleCommand(s, i)
	case "bet", "betexact", "betspecial", "betcombo", "mybets", "markets":
		b.betting.HandleCommand(s, i)
	case "creatematch", "generatematch", "matches", "setodds", "setresult", "simulate", "deletematch", "clearmatches":
		b.matches.HandleCommand(s, i)
	case "team", "compare", "updateteam":
		b.teams.HandleCommand(s, i)
	case "transfer", "grant":
		b.transfer.HandleCommand(s, i)
	case "pause", "resume":
		b.settings.HandleCommand(s, i)
	}
}
