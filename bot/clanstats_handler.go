package bot

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"

	"clanbot/models"
)

// Discord caps messages at 2000 characters; chunks leave headroom for the
// code block fences.
const statsChunkSize = 1900

// handleClanStats handles the /clanstats command: the full clan roster as
// fixed-width text tables, split across as many messages as needed.
func (b *Bot) handleClanStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		log.Printf("Error deferring clanstats response: %v", err)
		return
	}

	ctx := context.Background()
	players, err := b.statsService.GetClanStats(ctx)
	if err != nil {
		log.Errorf("Error getting clan stats: %v", err)
		b.followUpWithError(s, i, "Couldn't get the clan data.")
		return
	}

	if len(players) == 0 {
		b.followUpWithError(s, i, "No players found in the clan data.")
		return
	}

	for _, chunk := range formatClanStats(players) {
		_, err := s.FollowupMessageCreate(i.Interaction, false, &discordgo.WebhookParams{
			Content: fmt.Sprintf("```%s```", chunk),
		})
		if err != nil {
			log.Printf("Error sending clanstats chunk: %v", err)
			return
		}
	}
}

// formatClanStats builds the ranked table lines and groups them into
// message-sized chunks.
func formatClanStats(players []models.PlayerStat) []string {
	var chunks []string
	var current strings.Builder

	for rank, player := range players {
		name := player.Name
		if len(name) > 20 {
			name = name[:17] + "..."
		}

		line := fmt.Sprintf("%d. %-20s Rating: %5d  Peak: %5d  Wins: %5d  Games: %5d\n",
			rank+1, name, player.Rating, player.PeakRating, player.Wins, player.Games)

		if current.Len()+len(line) > statsChunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}
