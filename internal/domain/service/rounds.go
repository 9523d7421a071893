package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// RegisterChannel registers a channel for coffee chat pairings. The channel
// stays REGISTERED_INACTIVE until StartChannel kicks off the first round.
func (s *coffeeChatService) RegisterChannel(slackChannelID, channelName string, frequencyDays int) error {
	if frequencyDays == 0 {
		frequencyDays = s.defaultFreq
	}
	if frequencyDays < domain.MinPairingFrequencyDays || frequencyDays > domain.MaxPairingFrequencyDays {
		return domain.ErrInvalidFrequency
	}

	existing, err := s.dm.ChannelConfig().GetBySlackID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to check channel config: %w", err)
	}
	if existing != nil {
		return domain.ErrAlreadyRegistered
	}

	// Registration leaves the channel inactive; StartChannel activates it
	// and kicks off the first round.
	config := &entity.ChannelConfig{
		SlackChannelID:       slackChannelID,
		ChannelName:          channelName,
		IsActive:             false,
		PairingFrequencyDays: frequencyDays,
	}
	if err := s.dm.ChannelConfig().Create(config); err != nil {
		return fmt.Errorf("failed to create channel config: %w", err)
	}

	s.log.Info("registered channel for coffee chats",
		zap.String("channel", slackChannelID),
		zap.String("name", channelName),
		zap.Int("frequencyDays", frequencyDays))
	return nil
}

// StartChannel activates a channel, initializes its schedule and
// immediately creates the first round.
func (s *coffeeChatService) StartChannel(slackChannelID string) (*entity.ChannelConfig, error) {
	config, err := s.dm.ChannelConfig().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel config: %w", err)
	}
	if config == nil {
		s.log.Warn("start requested for unregistered channel", zap.String("channel", slackChannelID))
		return nil, domain.ErrNotRegistered
	}

	if !config.IsActive {
		config.IsActive = true
		s.log.Info("re-activated coffee chats", zap.String("channel", slackChannelID))
	}

	now := s.localNow()
	last := startOfDay(now)
	next := startOfDay(now.AddDate(0, 0, config.PairingFrequencyDays))
	config.LastPairingDate = &last
	config.NextPairingDate = &next

	if err := s.dm.ChannelConfig().Update(config); err != nil {
		return nil, fmt.Errorf("failed to update channel config: %w", err)
	}

	if err := s.createRoundForChannel(config); err != nil {
		s.log.Error("failed to create first round",
			zap.String("channel", slackChannelID), zap.Error(err))
	}

	return config, nil
}

// PauseChannel stops automatic rounds. Existing pairings are untouched.
func (s *coffeeChatService) PauseChannel(slackChannelID string) error {
	config, err := s.dm.ChannelConfig().GetBySlackID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to get channel config: %w", err)
	}
	if config == nil {
		return domain.ErrNotRegistered
	}
	if !config.IsActive {
		return domain.ErrNotActive
	}

	config.IsActive = false
	if err := s.dm.ChannelConfig().Update(config); err != nil {
		return fmt.Errorf("failed to update channel config: %w", err)
	}

	s.log.Info("paused coffee chats", zap.String("channel", slackChannelID))
	return nil
}

// TriggerChannel manually runs round creation for one channel.
func (s *coffeeChatService) TriggerChannel(slackChannelID string) error {
	config, err := s.dm.ChannelConfig().GetBySlackID(slackChannelID)
	if err != nil {
		return fmt.Errorf("failed to get channel config: %w", err)
	}
	if config == nil {
		return domain.ErrNotRegistered
	}

	return s.createRoundForChannel(config)
}

// ResetChannel deletes all pairings and preferences scoped to the channel
// and clears its schedule dates.
func (s *coffeeChatService) ResetChannel(slackChannelID string) (int64, int64, error) {
	config, err := s.dm.ChannelConfig().GetBySlackID(slackChannelID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to get channel config: %w", err)
	}
	if config == nil {
		return 0, 0, domain.ErrNotRegistered
	}

	pairingsDeleted, err := s.dm.Pairing().DeleteByChannel(config.ID)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to delete pairings: %w", err)
	}

	prefsDeleted, err := s.dm.Preference().DeleteByChannel(config.ID)
	if err != nil {
		return pairingsDeleted, 0, fmt.Errorf("failed to delete preferences: %w", err)
	}

	config.LastPairingDate = nil
	config.NextPairingDate = nil
	if err := s.dm.ChannelConfig().Update(config); err != nil {
		return pairingsDeleted, prefsDeleted, fmt.Errorf("failed to clear schedule: %w", err)
	}

	s.log.Info("reset coffee chats",
		zap.String("channel", slackChannelID),
		zap.Int64("pairingsDeleted", pairingsDeleted),
		zap.Int64("preferencesDeleted", prefsDeleted))
	return pairingsDeleted, prefsDeleted, nil
}

func (s *coffeeChatService) GetChannelConfig(slackChannelID string) (*entity.ChannelConfig, error) {
	return s.dm.ChannelConfig().GetBySlackID(slackChannelID)
}

// CreateRoundsForDueChannels creates a round for every active channel whose
// next pairing date has arrived. Channels fail independently.
func (s *coffeeChatService) CreateRoundsForDueChannels() {
	now := s.localNow()

	dueConfigs, err := s.dm.ChannelConfig().GetDue(now)
	if err != nil {
		s.log.Error("failed to query due channels", zap.Error(err))
		return
	}

	if len(dueConfigs) == 0 {
		s.log.Info("no channels due for pairing")
		return
	}

	s.log.Info("processing channels due for pairing", zap.Int("count", len(dueConfigs)))

	for _, config := range dueConfigs {
		if err := s.createRoundForChannel(config); err != nil {
			s.log.Error("failed to create round",
				zap.String("channel", config.SlackChannelID), zap.Error(err))
		}
	}
}

// createRoundForChannel runs one full round: guard against an active round,
// resolve members, match, persist, notify, advance the schedule and consume
// skip flags.
func (s *coffeeChatService) createRoundForChannel(config *entity.ChannelConfig) error {
	now := s.localNow()

	// An active round means we were triggered twice within one cycle
	active, err := s.dm.Pairing().GetActive(config.ID, now)
	if err != nil {
		return fmt.Errorf("failed to check active pairings: %w", err)
	}
	if len(active) > 0 {
		s.log.Info("channel already has active pairings, skipping",
			zap.String("channel", config.SlackChannelID),
			zap.Int("activePairings", len(active)))
		return nil
	}

	members, err := s.getEligibleMembers(config.ID, config.SlackChannelID)
	if err != nil {
		return err
	}
	if len(members) < 2 {
		s.log.Info("not enough members for coffee chats",
			zap.String("channel", config.SlackChannelID),
			zap.Int("eligible", len(members)))
		return nil
	}

	recentPairs, err := s.getRecentPairKeys(config.ID)
	if err != nil {
		return err
	}

	groups, forcedRepeats := matchPairs(members, recentPairs, s.rng)
	if forcedRepeats > 0 {
		s.log.Debug("matcher fell back to repeat pairings",
			zap.String("channel", config.SlackChannelID),
			zap.Int("forcedRepeats", forcedRepeats))
	}

	s.log.Info("created pairings",
		zap.String("channel", config.SlackChannelID),
		zap.Int("pairings", len(groups)))

	dueDate := endOfDay(now.AddDate(0, 0, config.PairingFrequencyDays-1))

	for _, group := range groups {
		pairing := &entity.Pairing{
			ChannelID: config.ID,
			UserIDs:   group,
			CreatedAt: now,
			DueDate:   dueDate,
		}
		if err := s.dm.Pairing().Create(pairing); err != nil {
			s.log.Error("failed to persist pairing",
				zap.String("channel", config.SlackChannelID),
				zap.Strings("users", group), zap.Error(err))
			continue
		}

		// DM failures leave the pairing without a conversation id; the
		// round itself proceeds.
		conversationID := s.notifyPairing(pairing, config.SlackChannelID, dueDate)
		if conversationID != "" {
			if err := s.dm.Pairing().SetConversationID(pairing.ID, conversationID); err != nil {
				s.log.Error("failed to store conversation id",
					zap.Int64("pairing", pairing.ID), zap.Error(err))
			}
		}
	}

	last := now
	next := startOfDay(now.AddDate(0, 0, config.PairingFrequencyDays))
	config.LastPairingDate = &last
	config.NextPairingDate = &next
	if err := s.dm.ChannelConfig().Update(config); err != nil {
		return fmt.Errorf("failed to advance schedule: %w", err)
	}

	// One-shot skip exclusions are consumed by this round
	cleared, err := s.dm.Preference().ClearSkipFlags(config.ID)
	if err != nil {
		s.log.Error("failed to clear skip flags",
			zap.String("channel", config.SlackChannelID), zap.Error(err))
	} else if cleared > 0 {
		s.log.Info("cleared skip flags",
			zap.String("channel", config.SlackChannelID), zap.Int64("cleared", cleared))
	}

	s.postRoundSummary(config.SlackChannelID, len(groups), next)

	return nil
}

// getRecentPairKeys collects canonical keys of all pairings created within
// the lookback window.
func (s *coffeeChatService) getRecentPairKeys(channelID int64) (map[string]struct{}, error) {
	cutoff := s.localNow().AddDate(0, 0, -7*s.lookbackWeeks)

	recent, err := s.dm.Pairing().GetCreatedSince(channelID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent pairings: %w", err)
	}

	keys := make(map[string]struct{}, len(recent))
	for _, pairing := range recent {
		keys[canonicalKey(pairing.UserIDs)] = struct{}{}
	}
	return keys, nil
}

// notifyPairing opens a group DM with the pairing's members and posts the
// announcement. Returns the conversation id, or "" on failure.
func (s *coffeeChatService) notifyPairing(pairing *entity.Pairing, slackChannelID string, dueDate time.Time) string {
	activity := domain.Activities[s.rng.Intn(len(domain.Activities))]
	links := s.getSchedulingLinks(pairing.UserIDs)

	conversation, _, _, err := s.slackClient.OpenConversation(&slack.OpenConversationParameters{
		Users: pairing.UserIDs,
	})
	if err != nil {
		s.log.Error("failed to open group DM",
			zap.String("users", strings.Join(pairing.UserIDs, ",")), zap.Error(err))
		return ""
	}

	blocks := announcementBlocks(pairing.UserIDs, activity, dueDate, links, pairing.ID, slackChannelID)
	_, _, err = s.slackClient.PostMessage(conversation.ID,
		slack.MsgOptionText(fmt.Sprintf("Hey %s! You've been paired for a coffee chat. ☕", userMentions(pairing.UserIDs)), false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		s.log.Error("failed to post pairing announcement",
			zap.String("conversation", conversation.ID), zap.Error(err))
		return ""
	}

	return conversation.ID
}

func (s *coffeeChatService) postRoundSummary(slackChannelID string, pairingCount int, nextPairingDate time.Time) {
	_, _, err := s.slackClient.PostMessage(slackChannelID,
		slack.MsgOptionText("Coffee chat pairings have been created!", false),
		slack.MsgOptionBlocks(roundSummaryBlocks(pairingCount, nextPairingDate)...),
	)
	if err != nil {
		s.log.Error("failed to post round summary",
			zap.String("channel", slackChannelID), zap.Error(err))
	}
}
