package cmd

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"clanbot/bot"
	"clanbot/config"
	"clanbot/events"
	"clanbot/render"
	"clanbot/service"
	"clanbot/snapshot"
	"clanbot/stats"
)

// Run initializes and starts the bot
func Run(ctx context.Context) error {
	log.Println("Starting clanbot...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize event bus
	eventBus := events.NewBus()

	// Initialize services
	leaderboardService, statsService := buildServices(cfg)

	// Initialize Discord bot
	log.Println("Initializing Discord bot...")
	botConfig := bot.Config{
		Token:          cfg.DiscordToken,
		GuildID:        cfg.DiscordGuildID,
		AuditChannelID: cfg.AuditChannelID,
	}
	discordBot, err := bot.New(botConfig, leaderboardService, statsService, eventBus)
	if err != nil {
		return fmt.Errorf("failed to initialize Discord bot: %w", err)
	}
	log.Println("Discord bot initialized successfully")

	// Wait for context cancellation
	log.Printf("Bot is running in %s mode...", cfg.Environment)
	<-ctx.Done()

	// Cleanup resources
	log.Println("Shutting down bot...")
	if err := discordBot.Close(); err != nil {
		log.Printf("Error closing Discord bot: %v", err)
	}
	log.Println("Shutdown completed")

	return nil
}

// RunLeaderboardOnce runs the leaderboard pipeline a single time without
// connecting to Discord and returns the artifact path. Used by the
// one-shot CLI subcommand.
func RunLeaderboardOnce(ctx context.Context) (string, error) {
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}

	leaderboardService, _ := buildServices(cfg)

	result, err := leaderboardService.Generate(ctx)
	if err != nil {
		return "", err
	}
	return result.ImagePath, nil
}

// buildServices wires the pipeline components from configuration
func buildServices(cfg *config.Config) (service.LeaderboardService, service.StatsService) {
	statsClient := stats.NewClient(cfg.StatsAPIURL, cfg.StatsAPIToken)
	store := snapshot.NewStore(cfg.SnapshotDir)
	renderer := render.NewRenderer(cfg.RenderCommand, cfg.RenderDir, cfg.RenderOutput)

	leaderboardService := service.NewLeaderboardService(statsClient, store, renderer)
	statsService := service.NewStatsService(statsClient)
	return leaderboardService, statsService
}
