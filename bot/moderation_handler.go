package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"clanbot/events"
)

// moderationPermissions maps each action to the permission bit it requires
var moderationPermissions = map[string]int64{
	"kick":    discordgo.PermissionKickMembers,
	"ban":     discordgo.PermissionBanMembers,
	"timeout": discordgo.PermissionModerateMembers,
}

// handleModeration handles the /kick, /ban and /timeout commands. Besides
// the permission bit, the moderator's top role must sit above the target's
// top role; a moderator can never act upwards or sideways in the role
// hierarchy.
func (b *Bot) handleModeration(s *discordgo.Session, i *discordgo.InteractionCreate, action string) {
	// Extract command options
	var target *discordgo.User
	var reason string
	var duration int64
	for _, opt := range i.ApplicationCommandData().Options {
		switch opt.Name {
		case "member":
			target = opt.UserValue(s)
		case "reason":
			reason = opt.StringValue()
		case "duration":
			duration = opt.IntValue()
		}
	}

	if target == nil {
		b.respondWithError(s, i, "Invalid member.")
		return
	}
	if reason == "" {
		reason = "No reason provided"
	}

	// Permission check on the invoking member
	if i.Member.Permissions&moderationPermissions[action] == 0 {
		b.respondWithError(s, i, fmt.Sprintf("You don't have permission to %s members.", action))
		return
	}

	// Role hierarchy guard
	allowed, err := b.outranks(s, i.GuildID, i.Member, target.ID)
	if err != nil {
		log.Errorf("Could not check role hierarchy for %s: %v", target.ID, err)
		b.respondWithError(s, i, fmt.Sprintf("Failed to %s %s: could not verify role hierarchy.", action, target.Mention()))
		return
	}
	if !allowed {
		b.respondWithError(s, i, fmt.Sprintf("You cannot %s %s: their top role is not below yours.", action, target.Mention()))
		return
	}

	var actionErr error
	var message string
	switch action {
	case "kick":
		actionErr = s.GuildMemberDeleteWithReason(i.GuildID, target.ID, reason)
		message = fmt.Sprintf("%s has been kicked. Reason: %s", target.Mention(), reason)
	case "ban":
		actionErr = s.GuildBanCreateWithReason(i.GuildID, target.ID, reason, 0)
		message = fmt.Sprintf("%s has been banned. Reason: %s", target.Mention(), reason)
	case "timeout":
		if duration <= 0 {
			b.respondWithError(s, i, "Timeout duration must be positive.")
			return
		}
		until := time.Now().UTC().Add(time.Duration(duration) * time.Second)
		actionErr = s.GuildMemberTimeout(i.GuildID, target.ID, &until)
		message = fmt.Sprintf("%s has been timed out for %d seconds. Reason: %s", target.Mention(), duration, reason)
	}

	if actionErr != nil {
		log.Errorf("Failed to %s user %s: %v", action, target.ID, actionErr)
		b.respondWithError(s, i, fmt.Sprintf("Failed to %s %s: %v", action, target.Mention(), actionErr))
		return
	}

	err = s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseChannelMessageWithSource,
		Data: &discordgo.InteractionResponseData{
			Content: message,
		},
	})
	if err != nil {
		log.Printf("Error responding to %s command: %v", action, err)
	}

	b.eventBus.Emit(context.Background(), events.ModerationActionEvent{
		Action:      action,
		TargetID:    target.ID,
		ModeratorID: i.Member.User.ID,
		Reason:      reason,
	})
}

// outranks reports whether the moderator's highest role is strictly above
// the target member's highest role.
func (b *Bot) outranks(s *discordgo.Session, guildID string, moderator *discordgo.Member, targetID string) (bool, error) {
	targetMember, err := s.GuildMember(guildID, targetID)
	if err != nil {
		return false, fmt.Errorf("could not fetch target member: %w", err)
	}

	roles, err := s.GuildRoles(guildID)
	if err != nil {
		return false, fmt.Errorf("could not fetch guild roles: %w", err)
	}

	positions := make(map[string]int, len(roles))
	for _, role := range roles {
		positions[role.ID] = role.Position
	}

	return highestPosition(moderator.Roles, positions) > highestPosition(targetMember.Roles, positions), nil
}

// highestPosition returns the highest role position among roleIDs. A member
// with no roles sits at the @everyone position, 0.
func highestPosition(roleIDs []string, positions map[string]int) int {
	highest := 0
	for _, id := range roleIDs {
		if pos, ok := positions[id]; ok && pos > highest {
			highest = pos
		}
	}
	return highest
}
