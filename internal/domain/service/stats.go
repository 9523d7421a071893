package service

import (
	"fmt"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// ReportStats posts participation metrics for the most recently completed
// round of every active channel. Channels with no pairings due in the
// window are skipped silently.
func (s *coffeeChatService) ReportStats() {
	configs, err := s.dm.ChannelConfig().GetActive()
	if err != nil {
		s.log.Error("failed to query active channels", zap.Error(err))
		return
	}

	for _, config := range configs {
		if err := s.reportChannelStats(config); err != nil {
			s.log.Error("failed to report stats",
				zap.String("channel", config.SlackChannelID), zap.Error(err))
		}
	}
}

func (s *coffeeChatService) reportChannelStats(config *entity.ChannelConfig) error {
	startOfToday := startOfDay(s.localNow())
	periodAgo := startOfToday.AddDate(0, 0, -config.PairingFrequencyDays)

	// Pairings due inside the window are exactly the last completed round
	pairings, err := s.dm.Pairing().GetDueBetween(config.ID, periodAgo, startOfToday)
	if err != nil {
		return fmt.Errorf("failed to get period pairings: %w", err)
	}
	if len(pairings) == 0 {
		return nil
	}

	completed := 0
	uniqueParticipants := make(map[string]struct{})
	for _, pairing := range pairings {
		if !pairing.MeetupConfirmed {
			continue
		}
		completed++
		for _, userID := range pairing.UserIDs {
			uniqueParticipants[userID] = struct{}{}
		}
	}

	members, err := s.getChannelMembers(config.SlackChannelID)
	if err != nil {
		return err
	}

	participationRate := "0.00"
	if len(members) > 0 {
		participationRate = fmt.Sprintf("%.2f", float64(len(uniqueParticipants))/float64(len(members))*100)
	}

	blocks := statsBlocks(len(pairings), completed, len(uniqueParticipants), len(members),
		participationRate, config.PairingFrequencyDays, s.localNow())

	_, _, err = s.slackClient.PostMessage(config.SlackChannelID,
		slack.MsgOptionText("Coffee Chat Stats", false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return fmt.Errorf("failed to post stats: %w", err)
	}

	s.log.Info("posted stats",
		zap.String("channel", config.SlackChannelID),
		zap.Int("pairings", len(pairings)),
		zap.Int("completed", completed),
		zap.String("participationRate", participationRate))
	return nil
}
