package service

import (
	"fmt"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
	"go.uber.org/zap"
)

func (s *coffeeChatService) resolveChannel(slackChannelID string) (*entity.ChannelConfig, error) {
	config, err := s.dm.ChannelConfig().GetBySlackID(slackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get channel config: %w", err)
	}
	if config == nil {
		return nil, domain.ErrNotRegistered
	}
	return config, nil
}

// OptOut excludes a user from future rounds in a channel until they opt
// back in.
func (s *coffeeChatService) OptOut(slackChannelID, slackUserID string) error {
	config, err := s.resolveChannel(slackChannelID)
	if err != nil {
		return err
	}

	if err := s.dm.Preference().SetOptedIn(config.ID, slackUserID, false); err != nil {
		return err
	}

	s.log.Info("user opted out",
		zap.String("user", slackUserID), zap.String("channel", slackChannelID))
	return nil
}

// OptIn re-includes a user in future rounds.
func (s *coffeeChatService) OptIn(slackChannelID, slackUserID string) error {
	config, err := s.resolveChannel(slackChannelID)
	if err != nil {
		return err
	}

	if err := s.dm.Preference().SetOptedIn(config.ID, slackUserID, true); err != nil {
		return err
	}

	s.log.Info("user opted in",
		zap.String("user", slackUserID), zap.String("channel", slackChannelID))
	return nil
}

// SkipNextPairing excludes a user from exactly the next round.
func (s *coffeeChatService) SkipNextPairing(slackChannelID, slackUserID string) error {
	config, err := s.resolveChannel(slackChannelID)
	if err != nil {
		return err
	}

	if err := s.dm.Preference().SetSkipNext(config.ID, slackUserID); err != nil {
		return err
	}

	s.log.Info("user will skip next pairing",
		zap.String("user", slackUserID), zap.String("channel", slackChannelID))
	return nil
}

// ConfirmMeetup marks a pairing as met. Idempotent.
func (s *coffeeChatService) ConfirmMeetup(pairingID int64) error {
	if err := s.dm.Pairing().ConfirmMeetup(pairingID); err != nil {
		return err
	}

	s.log.Info("meetup confirmed", zap.Int64("pairing", pairingID))
	return nil
}

// OptInStatuses reports the user's opt-in state for every active channel.
// A missing preference row means opted in.
func (s *coffeeChatService) OptInStatuses(slackUserID string) ([]entity.ChannelOptInStatus, error) {
	configs, err := s.dm.ChannelConfig().GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to query active channels: %w", err)
	}

	statuses := make([]entity.ChannelOptInStatus, 0, len(configs))
	for _, config := range configs {
		pref, err := s.dm.Preference().Get(config.ID, slackUserID)
		if err != nil {
			return nil, err
		}

		optedIn := true
		if pref != nil {
			optedIn = pref.IsOptedIn
		}
		statuses = append(statuses, entity.ChannelOptInStatus{
			SlackChannelID: config.SlackChannelID,
			OptedIn:        optedIn,
		})
	}

	return statuses, nil
}

// PairingHistory lists all pairings a user has been part of, newest first.
func (s *coffeeChatService) PairingHistory(slackUserID string) ([]entity.PairingHistoryEntry, error) {
	pairings, err := s.dm.Pairing().GetByUser(slackUserID)
	if err != nil {
		return nil, err
	}

	now := s.localNow()

	// Channel configs resolved once per channel, not per pairing
	channelNames := make(map[int64]string)
	entries := make([]entity.PairingHistoryEntry, 0, len(pairings))
	for _, pairing := range pairings {
		slackChannelID, ok := channelNames[pairing.ChannelID]
		if !ok {
			config, err := s.dm.ChannelConfig().GetByID(pairing.ChannelID)
			if err != nil {
				return nil, err
			}
			if config == nil {
				continue
			}
			slackChannelID = config.SlackChannelID
			channelNames[pairing.ChannelID] = slackChannelID
		}

		partners := make([]string, 0, len(pairing.UserIDs)-1)
		for _, id := range pairing.UserIDs {
			if id != slackUserID {
				partners = append(partners, id)
			}
		}

		entries = append(entries, entity.PairingHistoryEntry{
			SlackChannelID:  slackChannelID,
			PartnerIDs:      partners,
			CreatedAt:       pairing.CreatedAt,
			Active:          pairing.Active(now),
			MeetupConfirmed: pairing.MeetupConfirmed,
		})
	}

	return entries, nil
}
