package contract

import (
	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
)

type CoffeeChatService interface {
	RegisterChannel(slackChannelID, channelName string, frequencyDays int) error
	StartChannel(slackChannelID string) (*entity.ChannelConfig, error)
	PauseChannel(slackChannelID string) error
	TriggerChannel(slackChannelID string) error
	ResetChannel(slackChannelID string) (pairingsDeleted, preferencesDeleted int64, err error)
	GetChannelConfig(slackChannelID string) (*entity.ChannelConfig, error)

	CreateRoundsForDueChannels()
	SendMidwayReminders()
	ReportStats()

	OptOut(slackChannelID, slackUserID string) error
	OptIn(slackChannelID, slackUserID string) error
	SkipNextPairing(slackChannelID, slackUserID string) error
	ConfirmMeetup(pairingID int64) error
	OptInStatuses(slackUserID string) ([]entity.ChannelOptInStatus, error)
	PairingHistory(slackUserID string) ([]entity.PairingHistoryEntry, error)
}
