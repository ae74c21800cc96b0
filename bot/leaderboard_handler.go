package bot

import (
	"context"
	"fmt"
	"os"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"clanbot/events"
	"clanbot/service"
)

// handleLeaderboard handles the /leaderboard command. The pipeline blocks
// on the external renderer, so the interaction is deferred immediately and
// the work runs on its own goroutine, keeping the gateway dispatch path
// responsive. Once started, a run always finishes or fails; there is no
// cancellation.
func (b *Bot) handleLeaderboard(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("Error deferring leaderboard response: %v", err)
		return
	}

	requestedBy := i.Member.User.ID

	go func() {
		ctx := context.Background()

		result, err := b.leaderboardService.Generate(ctx)
		if err != nil {
			log.Errorf("Leaderboard run failed: %v", err)
			b.followUpWithError(s, i, leaderboardErrorMessage(err))
			return
		}

		image, err := os.Open(result.ImagePath)
		if err != nil {
			log.Errorf("Could not open leaderboard image %s: %v", result.ImagePath, err)
			b.followUpWithError(s, i, "Internal error while posting the leaderboard.")
			return
		}
		defer image.Close()

		_, err = s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
			Content: fmt.Sprintf("🏆 Clan leaderboard for week %d", result.Week),
			Files: []*discordgo.File{
				{
					Name:        "leaderboard.png",
					ContentType: "image/png",
					Reader:      image,
				},
			},
		})
		if err != nil {
			log.Printf("Error sending leaderboard follow-up: %v", err)
			return
		}

		b.eventBus.Emit(ctx, events.LeaderboardPostedEvent{
			Week:        result.Week,
			RequestedBy: requestedBy,
			ImagePath:   result.ImagePath,
		})
	}()
}

// leaderboardErrorMessage maps a pipeline failure to the user-visible
// reply. Persistence problems are reported as internal; the distinction
// only matters in the logs.
func leaderboardErrorMessage(err error) string {
	switch service.StageOf(err) {
	case service.StageFetch:
		return "Couldn't get the clan data."
	case service.StageRender:
		return "Leaderboard image rendering failed."
	default:
		return "Internal error while generating the leaderboard."
	}
}
