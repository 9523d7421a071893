package entity

import "time"

// ChannelConfig holds the pairing schedule for a registered channel.
// LastPairingDate and NextPairingDate are nil until the channel is started;
// both are cleared again on reset.
type ChannelConfig struct {
	ID                   int64
	SlackChannelID       string
	ChannelName          string
	IsActive             bool
	PairingFrequencyDays int
	LastPairingDate      *time.Time
	NextPairingDate      *time.Time
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Pairing is one group (two, occasionally three users) formed in a round.
// ConversationID is empty when opening the group DM failed.
type Pairing struct {
	ID                   int64
	ChannelID            int64
	UserIDs              []string
	CreatedAt            time.Time
	DueDate              time.Time
	ConversationID       string
	MidpointReminderSent bool
	MeetupConfirmed      bool
}

// Active reports whether the pairing's meetup window is still open.
func (p *Pairing) Active(now time.Time) bool {
	return !now.After(p.DueDate)
}

// UserPreference is created lazily on the first opt-out/opt-in/skip action;
// a missing row means opted in with no skip.
type UserPreference struct {
	ID              int64
	ChannelID       int64
	SlackUserID     string
	IsOptedIn       bool
	SkipNextPairing bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PairingHistoryEntry is one past pairing from a single user's point of view.
type PairingHistoryEntry struct {
	SlackChannelID  string
	PartnerIDs      []string
	CreatedAt       time.Time
	Active          bool
	MeetupConfirmed bool
}

// ChannelOptInStatus is a user's opt-in state for one registered channel.
type ChannelOptInStatus struct {
	SlackChannelID string
	OptedIn        bool
}
