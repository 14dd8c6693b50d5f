package bot

import (
	"errors"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/spoofgg/rust-scmm-bot/internal/logger"
)

// deferResponse acknowledges the interaction so the handler gets the full
// 15-minute follow-up window. A false return means the interaction token was
// already invalid (expired or unknown) and the handler should abort quietly.
func (b *Bot) deferResponse(s *discordgo.Session, i *discordgo.InteractionCreate, command string) bool {
	err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
	if err != nil {
		logger.Warn("%s: interaction expired or unknown before defer; aborting command: %v", command, err)
		return false
	}
	return true
}

// sendFollowup sends a follow-up message that stays in the channel. Used by
// the debug commands.
func (b *Bot) sendFollowup(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed) {
	_, err := s.FollowupMessageCreate(i.Interaction, true, &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	})
	if err != nil {
		logger.Warn("Failed to send followup: %v", err)
	}
}

// sendFollowupAutodelete sends a follow-up message and schedules its
// deletion after the configured delay.
func (b *Bot) sendFollowupAutodelete(s *discordgo.Session, i *discordgo.InteractionCreate, embed *discordgo.MessageEmbed, components []discordgo.MessageComponent) {
	params := &discordgo.WebhookParams{
		Embeds: []*discordgo.MessageEmbed{embed},
	}
	if len(components) > 0 {
		params.Components = components
	}

	msg, err := s.FollowupMessageCreate(i.Interaction, true, params)
	if err != nil {
		if restErrorCode(err) == discordgo.ErrCodeUnknownInteraction || restErrorCode(err) == discordgo.ErrCodeUnknownWebhook {
			logger.Warn("Interaction expired before followup could be sent.")
			return
		}
		logger.Error("Failed to send followup: %v", err)
		return
	}

	b.scheduleDelete(s, msg.ChannelID, msg.ID, b.cfg.DeleteDelay)
}

// scheduleDelete spawns a tracked timer that deletes the message after the
// delay. "Already gone" and "no permission" outcomes are benign; the timer
// always runs to completion once scheduled.
func (b *Bot) scheduleDelete(s *discordgo.Session, channelID, messageID string, delay time.Duration) {
	b.deletions.Add(1)
	go func() {
		defer b.deletions.Done()
		time.Sleep(delay)

		err := s.ChannelMessageDelete(channelID, messageID)
		switch {
		case err == nil:
			logger.Info("Auto-deleted message %s in #%s", messageID, channelID)
		case restErrorCode(err) == discordgo.ErrCodeUnknownMessage:
			logger.Info("Message %s already deleted.", messageID)
		case restErrorCode(err) == discordgo.ErrCodeMissingPermissions,
			restErrorCode(err) == discordgo.ErrCodeMissingAccess:
			logger.Warn("No permission to delete message %s in %s", messageID, channelID)
		default:
			logger.Error("Failed to auto-delete message %s: %v", messageID, err)
		}
	}()
}

// restErrorCode extracts the Discord JSON error code from a REST error, or 0.
func restErrorCode(err error) int {
	var restErr *discordgo.RESTError
	if errors.As(err, &restErr) && restErr.Message != nil {
		return restErr.Message.Code
	}
	return 0
}
