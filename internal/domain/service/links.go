package service

import (
	"strings"

	"github.com/coffeepair/coffee-chat-bot/internal/domain"
	"github.com/slack-go/slack"
	"go.uber.org/zap"
)

type schedulingLink struct {
	UserID string
	Link   string
}

// getSchedulingLink scans a user's profile fields for a link to a known
// scheduling service (Calendly, Cal.com, ...). Returns "" when none is
// found or the profile can't be fetched.
func (s *coffeeChatService) getSchedulingLink(userID string) string {
	profile, err := s.slackClient.GetUserProfile(&slack.GetUserProfileParameters{UserID: userID})
	if err != nil {
		s.log.Warn("failed to fetch profile for scheduling link",
			zap.String("user", userID), zap.Error(err))
		return ""
	}

	for _, field := range profile.Fields.ToMap() {
		if link := matchSchedulingLink(field.Value); link != "" {
			return link
		}
	}

	return ""
}

func matchSchedulingLink(text string) string {
	if text == "" {
		return ""
	}
	for _, pattern := range domain.SchedulingLinkPatterns {
		if match := pattern.FindString(text); match != "" {
			if !strings.HasPrefix(match, "http") {
				match = "https://" + match
			}
			return match
		}
	}
	return ""
}

// getSchedulingLinks collects links for every member of a group, keeping
// only users that have one.
func (s *coffeeChatService) getSchedulingLinks(userIDs []string) []schedulingLink {
	var links []schedulingLink
	for _, userID := range userIDs {
		if link := s.getSchedulingLink(userID); link != "" {
			links = append(links, schedulingLink{UserID: userID, Link: link})
		}
	}
	return links
}
