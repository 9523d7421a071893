package database

import (
	"testing"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestChannel(t *testing.T, db *DB, slackChannelID string) *entity.ChannelConfig {
	t.Helper()

	config := &entity.ChannelConfig{
		SlackChannelID:       slackChannelID,
		ChannelName:          "coffee-chat",
		IsActive:             true,
		PairingFrequencyDays: 14,
	}
	require.NoError(t, newChannelConfigRepo(db.conn).Create(config))
	return config
}

func TestPairingRepository_CreateAndGetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	pairing := &entity.Pairing{
		ChannelID: channel.ID,
		UserIDs:   []string{"U1", "U2", "U3"},
		CreatedAt: now,
		DueDate:   now.AddDate(0, 0, 13),
	}

	require.NoError(t, repo.Create(pairing), "Failed to create pairing")
	assert.NotZero(t, pairing.ID)

	found, err := repo.GetByID(pairing.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, channel.ID, found.ChannelID)
	assert.Equal(t, []string{"U1", "U2", "U3"}, found.UserIDs)
	assert.Empty(t, found.ConversationID)
	assert.False(t, found.MidpointReminderSent)
	assert.False(t, found.MeetupConfirmed)

	notFound, err := repo.GetByID(99999)
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestPairingRepository_GetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)

	active := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U2"}, CreatedAt: now, DueDate: now.AddDate(0, 0, 5)}
	expired := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U3", "U4"}, CreatedAt: now.AddDate(0, 0, -20), DueDate: now.AddDate(0, 0, -7)}
	require.NoError(t, repo.Create(active))
	require.NoError(t, repo.Create(expired))

	pairings, err := repo.GetActive(channel.ID, now)
	require.NoError(t, err)
	require.Len(t, pairings, 1)
	assert.Equal(t, active.ID, pairings[0].ID)
}

func TestPairingRepository_GetCreatedSince(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	cutoff := now.AddDate(0, 0, -42)

	recent := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U2"}, CreatedAt: now.AddDate(0, 0, -14), DueDate: now}
	old := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U3"}, CreatedAt: now.AddDate(0, 0, -60), DueDate: now.AddDate(0, 0, -46)}
	require.NoError(t, repo.Create(recent))
	require.NoError(t, repo.Create(old))

	pairings, err := repo.GetCreatedSince(channel.ID, cutoff)
	require.NoError(t, err)
	require.Len(t, pairings, 1)
	assert.Equal(t, recent.ID, pairings[0].ID)
}

func TestPairingRepository_GetNeedingReminder(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	createdAt := now.AddDate(0, 0, -7)
	windowStart := createdAt.Add(-24 * time.Hour)
	windowEnd := createdAt.Add(24 * time.Hour)
	dueDate := now.AddDate(0, 0, 7)

	needsReminder := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U2"}, CreatedAt: createdAt, DueDate: dueDate, ConversationID: "D1"}
	alreadySent := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U3", "U4"}, CreatedAt: createdAt, DueDate: dueDate, ConversationID: "D2", MidpointReminderSent: true}
	alreadyMet := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U5", "U6"}, CreatedAt: createdAt, DueDate: dueDate, ConversationID: "D3", MeetupConfirmed: true}
	noConversation := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U7", "U8"}, CreatedAt: createdAt, DueDate: dueDate}
	outsideWindow := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U9", "U10"}, CreatedAt: now.AddDate(0, 0, -1), DueDate: dueDate, ConversationID: "D4"}

	for _, p := range []*entity.Pairing{needsReminder, alreadySent, alreadyMet, noConversation, outsideWindow} {
		require.NoError(t, repo.Create(p))
	}

	pairings, err := repo.GetNeedingReminder(channel.ID, windowStart, windowEnd)
	require.NoError(t, err)
	require.Len(t, pairings, 1)
	assert.Equal(t, needsReminder.ID, pairings[0].ID)
}

func TestPairingRepository_GetDueBetween(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	from := now.AddDate(0, 0, -14)

	inside := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U2"}, CreatedAt: from, DueDate: now.AddDate(0, 0, -2)}
	before := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U3", "U4"}, CreatedAt: from.AddDate(0, 0, -20), DueDate: from.AddDate(0, 0, -1)}
	after := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U5", "U6"}, CreatedAt: now, DueDate: now.AddDate(0, 0, 10)}

	for _, p := range []*entity.Pairing{inside, before, after} {
		require.NoError(t, repo.Create(p))
	}

	pairings, err := repo.GetDueBetween(channel.ID, from, now)
	require.NoError(t, err)
	require.Len(t, pairings, 1)
	assert.Equal(t, inside.ID, pairings[0].ID)
}

func TestPairingRepository_GetByUser(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)

	older := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U2"}, CreatedAt: now.AddDate(0, 0, -30), DueDate: now.AddDate(0, 0, -16)}
	newer := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U3", "U4"}, CreatedAt: now, DueDate: now.AddDate(0, 0, 13)}
	other := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U5", "U6"}, CreatedAt: now, DueDate: now.AddDate(0, 0, 13)}

	for _, p := range []*entity.Pairing{older, newer, other} {
		require.NoError(t, repo.Create(p))
	}

	pairings, err := repo.GetByUser("U1")
	require.NoError(t, err)
	require.Len(t, pairings, 2)
	// Newest first
	assert.Equal(t, newer.ID, pairings[0].ID)
	assert.Equal(t, older.ID, pairings[1].ID)

	// "U" alone must not match any quoted id
	none, err := repo.GetByUser("U")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPairingRepository_Updates(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	pairing := &entity.Pairing{ChannelID: channel.ID, UserIDs: []string{"U1", "U2"}, CreatedAt: now, DueDate: now.AddDate(0, 0, 13)}
	require.NoError(t, repo.Create(pairing))

	require.NoError(t, repo.SetConversationID(pairing.ID, "D123"))
	require.NoError(t, repo.MarkReminderSent(pairing.ID))
	require.NoError(t, repo.ConfirmMeetup(pairing.ID))

	found, err := repo.GetByID(pairing.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "D123", found.ConversationID)
	assert.True(t, found.MidpointReminderSent)
	assert.True(t, found.MeetupConfirmed)
}

func TestPairingRepository_DeleteByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	otherChannel := createTestChannel(t, db, "C456")
	repo := newPairingRepo(db.conn)

	now := time.Date(2025, time.March, 12, 12, 0, 0, 0, time.UTC)
	for _, channelID := range []int64{channel.ID, channel.ID, otherChannel.ID} {
		p := &entity.Pairing{ChannelID: channelID, UserIDs: []string{"U1", "U2"}, CreatedAt: now, DueDate: now}
		require.NoError(t, repo.Create(p))
	}

	deleted, err := repo.DeleteByChannel(channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.GetActive(otherChannel.ID, now)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
