package bot

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"clanbot/events"
	"clanbot/service"

	"github.com/bwmarrin/discordgo"
)

// Config holds bot configuration
type Config struct {
	Token          string
	GuildID        string
	AuditChannelID string
}

type Bot struct {
	config             Config
	session            *discordgo.Session
	leaderboardService service.LeaderboardService
	statsService       service.StatsService
	eventBus           *events.Bus
}

func New(config Config, leaderboardService service.LeaderboardService, statsService service.StatsService, eventBus *events.Bus) (*Bot, error) {
	dg, err := discordgo.New("Bot " + config.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating discord session: %w", err)
	}
	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers | discordgo.IntentsGuildMessages

	bot := &Bot{
		config:             config,
		session:            dg,
		leaderboardService: leaderboardService,
		statsService:       statsService,
		eventBus:           eventBus,
	}

	// Register slash command handler
	dg.AddHandler(bot.handleCommands)

	// Open websocket connection
	if err := dg.Open(); err != nil {
		return nil, fmt.Errorf("error opening connection: %w", err)
	}

	// Register slash commands with Discord
	if err := bot.registerCommands(); err != nil {
		dg.Close()
		return nil, fmt.Errorf("error registering commands: %w", err)
	}

	// Mirror leaderboard posts and moderation actions to the audit channel
	if bot.config.AuditChannelID != "" {
		eventBus.Subscribe(events.EventTypeLeaderboardPosted, bot.handleAuditEvent)
		eventBus.Subscribe(events.EventTypeModerationAction, bot.handleAuditEvent)
		log.Info("Audit channel logging enabled")
	}

	return bot, nil
}

func (b *Bot) Close() error {
	return b.session.Close()
}

// handleAuditEvent writes a one-line summary of an event to the audit channel
func (b *Bot) handleAuditEvent(ctx context.Context, event events.Event) {
	var message string
	switch e := event.(type) {
	case events.LeaderboardPostedEvent:
		message = fmt.Sprintf("📊 Leaderboard for week %d posted by <@%s>", e.Week, e.RequestedBy)
	case events.ModerationActionEvent:
		message = fmt.Sprintf("🔨 <@%s> used %s on <@%s>. Reason: %s", e.ModeratorID, e.Action, e.TargetID, e.Reason)
	default:
		return
	}

	if _, err := b.session.ChannelMessageSend(b.config.AuditChannelID, message); err != nil {
		log.Errorf("Failed to send audit message: %v", err)
	}
}

func (b *Bot) registerCommands() error {
	kickPermission := int64(discordgo.PermissionKickMembers)
	banPermission := int64(discordgo.PermissionBanMembers)
	timeoutPermission := int64(discordgo.PermissionModerateMembers)

	commands := []*discordgo.ApplicationCommand{
		{
			Name:        "leaderboard",
			Description: "Generate and post this week's clan leaderboard",
		},
		{
			Name:        "clanstats",
			Description: "Show the current clan stats as a text table",
		},
		{
			Name:                     "kick",
			Description:              "Kick a user from the server",
			DefaultMemberPermissions: &kickPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Member to kick",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for the kick",
					Required:    false,
				},
			},
		},
		{
			Name:                     "ban",
			Description:              "Ban a user from the server",
			DefaultMemberPermissions: &banPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Member to ban",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for the ban",
					Required:    false,
				},
			},
		},
		{
			Name:                     "timeout",
			Description:              "Timeout a user",
			DefaultMemberPermissions: &timeoutPermission,
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionUser,
					Name:        "member",
					Description: "Member to timeout",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "duration",
					Description: "Timeout duration in seconds",
					Required:    true,
				},
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "reason",
					Description: "Reason for the timeout",
					Required:    false,
				},
			},
		},
	}

	for _, cmd := range commands {
		_, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
	}

	return nil
}

func (b *Bot) handleCommands(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	switch i.ApplicationCommandData().Name {
	case "leaderboard":
		b.handleLeaderboard(s, i)
	case "clanstats":
		b.handleClanStats(s, i)
	case "kick":
		b.handleModeration(s, i, "kick")
	case "ban":
		b.handleModeration(s, i, "ban")
	case "timeout":
		b.handleModeration(s, i, "timeout")
	}
}
