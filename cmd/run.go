package cmd

import (
	"context"
	"fmt"
	"time"

	"ligabet/bot"
	"ligabet/config"
	"ligabet/database"
	"ligabet/domain/interfaces"
	"ligabet/infrastructure"
	"ligabet/repository"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting ligabet bot...")

	cfg := config.Get()

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	log.Info("Running database migrations...")
	if err := database.MigrateUp(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.WithField("servers", cfg.NATSServers).Info("Connecting to NATS...")
	natsClient := infrastructure.NewNATSClient(cfg.NATSServers)
	if err := natsClient.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to NATS: %w", err)
	}

	eventPublisher := infrastructure.NewNATSEventPublisher(natsClient, infrastructure.NewEventSubjectMapper())
	if err := eventPublisher.EnsureDomainEventStream(); err != nil {
		return fmt.Errorf("failed to ensure domain event stream: %w", err)
	}
	log.Info("NATS event publisher initialized")

	uowFactory := repository.NewUnitOfWorkFactory(db, func() interfaces.TransactionalEventPublisher {
		return infrastructure.NewNATSTransactionalPublisher(eventPublisher)
	})

	log.Info("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:            cfg.DiscordToken,
		GuildID:          cfg.GuildID,
		ResultsChannelID: cfg.ResultsChannelID,
	}
	discordBot, err := bot.New(botConfig, uowFactory)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}

	if err := discordBot.StartAutoPlayWorker(ctx, cfg.AutoPlayIntervalMinutes); err != nil {
		return fmt.Errorf("failed to start auto-play worker: %w", err)
	}

	log.WithField("environment", cfg.Environment).Info("Bot is running")
	<-ctx.Done()

	log.Info("Shutting down bot...")

	if err := discordBot.Close(); err != nil {
		log.WithError(err).Error("Error closing Discord bot")
	}

	if err := natsClient.Close(); err != nil {
		log.WithError(err).Error("Error closing NATS connection")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	log.Info("Closing database connection...")
	db.Close()

	select {
	case <-shutdownCtx.Done():
		log.Warn("Shutdown timeout exceeded")
	case <-time.After(1 * time.Second):
		log.Info("Shutdown completed")
	}

	return nil
}
