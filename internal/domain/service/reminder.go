package service

import (
	"fmt"
	"math"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// SendMidwayReminders nudges every pairing that is roughly halfway to its
// due date and hasn't met or been reminded yet. Each pairing is reminded at
// most once; individual failures don't stop the sweep.
func (s *coffeeChatService) SendMidwayReminders() {
	configs, err := s.dm.ChannelConfig().GetActive()
	if err != nil {
		s.log.Error("failed to query active channels", zap.Error(err))
		return
	}

	now := s.localNow()
	totalReminded := 0

	for _, config := range configs {
		midwayDays := config.PairingFrequencyDays / 2

		// ±24h window centered on the midway point
		midway := now.AddDate(0, 0, -midwayDays)
		windowStart := midway.Add(-24 * time.Hour)
		windowEnd := midway.Add(24 * time.Hour)

		pairings, err := s.dm.Pairing().GetNeedingReminder(config.ID, windowStart, windowEnd)
		if err != nil {
			s.log.Error("failed to query pairings needing reminder",
				zap.String("channel", config.SlackChannelID), zap.Error(err))
			continue
		}

		if len(pairings) == 0 {
			continue
		}

		s.log.Info("sending midway reminders",
			zap.String("channel", config.SlackChannelID),
			zap.Int("pairings", len(pairings)))

		for _, pairing := range pairings {
			if err := s.sendReminder(pairing, config.SlackChannelID, now); err != nil {
				s.log.Error("failed to send reminder",
					zap.Int64("pairing", pairing.ID), zap.Error(err))
				continue
			}
			totalReminded++
		}
	}

	s.log.Info("completed midway reminders", zap.Int("sent", totalReminded))
}

func (s *coffeeChatService) sendReminder(pairing *entity.Pairing, slackChannelID string, now time.Time) error {
	daysRemaining := int(math.Ceil(pairing.DueDate.Sub(now).Hours() / 24))
	links := s.getSchedulingLinks(pairing.UserIDs)

	blocks := reminderBlocks(pairing.UserIDs, daysRemaining, links, pairing.ID, slackChannelID)
	_, _, err := s.slackClient.PostMessage(pairing.ConversationID,
		slack.MsgOptionText(fmt.Sprintf("Hey %s! Just a friendly reminder about your coffee chat. ☕", userMentions(pairing.UserIDs)), false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return fmt.Errorf("failed to post reminder: %w", err)
	}

	// Mark only after a successful post so a failed send retries next run
	if err := s.dm.Pairing().MarkReminderSent(pairing.ID); err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}

	return nil
}
