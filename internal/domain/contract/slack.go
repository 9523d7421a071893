package contract

import "github.com/slack-go/slack"

// SlackClient defines the interface for Slack operations.
// *slack.Client satisfies it directly; tests use a mock.
type SlackClient interface {
	// GetUsersInConversation returns one page of channel member ids plus
	// the cursor for the next page.
	GetUsersInConversation(params *slack.GetUsersInConversationParameters) ([]string, string, error)

	// GetUserInfo retrieves user information from Slack
	GetUserInfo(userID string) (*slack.User, error)

	// GetUserProfile retrieves a user's profile including custom fields
	GetUserProfile(params *slack.GetUserProfileParameters) (*slack.UserProfile, error)

	// OpenConversation opens (or resumes) a DM, group DM or channel
	OpenConversation(params *slack.OpenConversationParameters) (*slack.Channel, bool, bool, error)

	// PostMessage sends a message to a Slack channel or conversation
	PostMessage(channelID string, options ...slack.MsgOption) (string, string, error)

	// PostEphemeral sends a message visible only to one user
	PostEphemeral(channelID, userID string, options ...slack.MsgOption) (string, error)
}
