package service

import (
	"fmt"
	"sync"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

// getChannelMembers returns all non-bot member ids of a Slack channel.
// Membership fetch failures wrap domain.ErrMembershipFetch; callers treat
// that as fatal for the channel's round.
func (s *coffeeChatService) getChannelMembers(slackChannelID string) ([]string, error) {
	var memberIDs []string
	cursor := ""
	for {
		ids, nextCursor, err := s.slackClient.GetUsersInConversation(&slack.GetUsersInConversationParameters{
			ChannelID: slackChannelID,
			Cursor:    cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: channel %s: %v", domain.ErrMembershipFetch, slackChannelID, err)
		}
		memberIDs = append(memberIDs, ids...)
		if nextCursor == "" {
			break
		}
		cursor = nextCursor
	}

	// Bot lookups are independent reads, so issue them concurrently.
	isBot := make([]bool, len(memberIDs))
	var wg sync.WaitGroup
	for i, userID := range memberIDs {
		wg.Add(1)
		go func(i int, userID string) {
			defer wg.Done()
			info, err := s.slackClient.GetUserInfo(userID)
			if err != nil {
				// Keep the member; a failed lookup shouldn't drop them
				s.log.Warn("failed to get user info", zap.String("user", userID), zap.Error(err))
				return
			}
			isBot[i] = info.IsBot
		}(i, userID)
	}
	wg.Wait()

	nonBots := make([]string, 0, len(memberIDs))
	for i, userID := range memberIDs {
		if !isBot[i] {
			nonBots = append(nonBots, userID)
		}
	}

	return nonBots, nil
}

// getEligibleMembers is the member resolver: channel membership minus bots
// minus opted-out or skip-flagged users.
func (s *coffeeChatService) getEligibleMembers(channelID int64, slackChannelID string) ([]string, error) {
	members, err := s.getChannelMembers(slackChannelID)
	if err != nil {
		return nil, err
	}

	prefs, err := s.dm.Preference().GetByChannel(channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}

	excluded := make(map[string]struct{})
	for _, pref := range prefs {
		if !pref.IsOptedIn || pref.SkipNextPairing {
			excluded[pref.SlackUserID] = struct{}{}
		}
	}

	eligible := make([]string, 0, len(members))
	for _, userID := range members {
		if _, skip := excluded[userID]; !skip {
			eligible = append(eligible, userID)
		}
	}

	return eligible, nil
}
