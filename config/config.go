package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Discord configuration
	DiscordToken   string
	DiscordGuildID string

	// Clan stats API
	StatsAPIURL   string
	StatsAPIToken string // optional bearer token

	// Snapshot storage
	SnapshotDir string

	// Renderer configuration
	RenderCommand []string // program plus arguments
	RenderDir     string   // working directory for the renderer
	RenderOutput  string   // fixed artifact path the renderer writes

	// Optional channel that receives audit messages for moderation
	// actions and posted leaderboards
	AuditChannelID string

	// Environment
	Environment string // "development", "production" or "test"
}

// Load reads configuration from environment variables. The returned struct
// is passed explicitly into each component; there is no global instance.
func Load() (*Config, error) {
	config := &Config{
		// Discord
		DiscordToken:   os.Getenv("DISCORD_BOT_TOKEN"),
		DiscordGuildID: os.Getenv("DISCORD_GUILD_ID"),

		// Stats API
		StatsAPIURL:   os.Getenv("STATS_API_URL"),
		StatsAPIToken: os.Getenv("STATS_API_TOKEN"),

		// Storage and renderer defaults
		SnapshotDir:  "data",
		RenderDir:    "puppeteer-leaderboard",
		RenderOutput: "puppeteer-leaderboard/output/leaderboard.png",

		// Audit log
		AuditChannelID: os.Getenv("AUDIT_CHANNEL_ID"),

		// Environment
		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override defaults if environment variables are set
	if dir := os.Getenv("SNAPSHOT_DIR"); dir != "" {
		config.SnapshotDir = dir
	}
	if dir := os.Getenv("RENDER_DIR"); dir != "" {
		config.RenderDir = dir
	}
	if out := os.Getenv("RENDER_OUTPUT"); out != "" {
		config.RenderOutput = out
	}

	// The render command is a program plus its arguments in one variable
	renderCommand := os.Getenv("RENDER_COMMAND")
	if renderCommand == "" {
		renderCommand = "node src/render.js"
	}
	config.RenderCommand = strings.Fields(renderCommand)

	// Set default environment if not specified
	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		// Validate required configuration
		if config.DiscordToken == "" {
			return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
		}
		if config.StatsAPIURL == "" {
			return nil, fmt.Errorf("STATS_API_URL is required")
		}
	}

	return config, nil
}
