package contract

import (
	"context"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
)

// DataManager aggregates all repository interfaces
type DataManager interface {
	WithTransaction(ctx context.Context, fn func(dm DataManager) error) error
	ChannelConfig() ChannelConfigRepo
	Pairing() PairingRepo
	Preference() PreferenceRepo
}

// ChannelConfigRepo defines the contract for the channel config repository
type ChannelConfigRepo interface {
	Create(config *entity.ChannelConfig) error
	GetBySlackID(slackChannelID string) (*entity.ChannelConfig, error)
	GetByID(id int64) (*entity.ChannelConfig, error)
	Update(config *entity.ChannelConfig) error
	GetActive() ([]*entity.ChannelConfig, error)
	GetDue(now time.Time) ([]*entity.ChannelConfig, error)
}

// PairingRepo defines the contract for the pairing repository
type PairingRepo interface {
	Create(pairing *entity.Pairing) error
	GetByID(id int64) (*entity.Pairing, error)
	GetActive(channelID int64, now time.Time) ([]*entity.Pairing, error)
	GetCreatedSince(channelID int64, since time.Time) ([]*entity.Pairing, error)
	GetNeedingReminder(channelID int64, windowStart, windowEnd time.Time) ([]*entity.Pairing, error)
	GetDueBetween(channelID int64, from, to time.Time) ([]*entity.Pairing, error)
	GetByUser(slackUserID string) ([]*entity.Pairing, error)
	SetConversationID(id int64, conversationID string) error
	MarkReminderSent(id int64) error
	ConfirmMeetup(id int64) error
	DeleteByChannel(channelID int64) (int64, error)
}

// PreferenceRepo defines the contract for the user preference repository.
// Writes are upserts keyed on (channel, user).
type PreferenceRepo interface {
	Get(channelID int64, slackUserID string) (*entity.UserPreference, error)
	GetByChannel(channelID int64) ([]*entity.UserPreference, error)
	SetOptedIn(channelID int64, slackUserID string, optedIn bool) error
	SetSkipNext(channelID int64, slackUserID string) error
	ClearSkipFlags(channelID int64) (int64, error)
	DeleteByChannel(channelID int64) (int64, error)
}
