package database

import (
	"testing"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChannelConfigRepository_Create(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelConfigRepo(db.conn)

	config := &entity.ChannelConfig{
		SlackChannelID:       "C123456789",
		ChannelName:          "coffee-chat",
		IsActive:             false,
		PairingFrequencyDays: 14,
	}

	err := repo.Create(config)
	require.NoError(t, err, "Failed to create channel config")

	assert.NotZero(t, config.ID, "Expected config ID to be set after creation")
}

func TestChannelConfigRepository_Create_DuplicateSlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelConfigRepo(db.conn)

	first := &entity.ChannelConfig{SlackChannelID: "C123", ChannelName: "one", PairingFrequencyDays: 14}
	require.NoError(t, repo.Create(first))

	dup := &entity.ChannelConfig{SlackChannelID: "C123", ChannelName: "two", PairingFrequencyDays: 7}
	err := repo.Create(dup)
	assert.Error(t, err, "Expected unique constraint violation")
}

func TestChannelConfigRepository_GetBySlackID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelConfigRepo(db.conn)

	original := &entity.ChannelConfig{
		SlackChannelID:       "C123456789",
		ChannelName:          "coffee-chat",
		IsActive:             true,
		PairingFrequencyDays: 7,
	}
	require.NoError(t, repo.Create(original), "Failed to create test config")

	found, err := repo.GetBySlackID("C123456789")
	require.NoError(t, err, "Failed to get config by Slack ID")
	require.NotNil(t, found, "Expected to find config")

	assert.Equal(t, original.SlackChannelID, found.SlackChannelID)
	assert.Equal(t, original.ChannelName, found.ChannelName)
	assert.Equal(t, 7, found.PairingFrequencyDays)
	assert.True(t, found.IsActive)
	assert.Nil(t, found.LastPairingDate)
	assert.Nil(t, found.NextPairingDate)

	notFound, err := repo.GetBySlackID("NONEXISTENT")
	require.NoError(t, err, "Unexpected error when config not found")
	assert.Nil(t, notFound, "Expected nil when config not found")
}

func TestChannelConfigRepository_GetByID(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelConfigRepo(db.conn)

	original := &entity.ChannelConfig{
		SlackChannelID:       "C123456789",
		ChannelName:          "coffee-chat",
		PairingFrequencyDays: 14,
	}
	require.NoError(t, repo.Create(original))

	found, err := repo.GetByID(original.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, original.ID, found.ID)

	notFound, err := repo.GetByID(99999)
	require.NoError(t, err)
	assert.Nil(t, notFound)
}

func TestChannelConfigRepository_Update(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelConfigRepo(db.conn)

	config := &entity.ChannelConfig{
		SlackChannelID:       "C123456789",
		ChannelName:          "coffee-chat",
		IsActive:             false,
		PairingFrequencyDays: 14,
	}
	require.NoError(t, repo.Create(config))

	last := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	next := last.AddDate(0, 0, 14)
	config.IsActive = true
	config.PairingFrequencyDays = 7
	config.LastPairingDate = &last
	config.NextPairingDate = &next

	require.NoError(t, repo.Update(config), "Failed to update config")

	found, err := repo.GetByID(config.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.True(t, found.IsActive)
	assert.Equal(t, 7, found.PairingFrequencyDays)
	require.NotNil(t, found.LastPairingDate)
	require.NotNil(t, found.NextPairingDate)
	assert.True(t, found.LastPairingDate.Equal(last))
	assert.True(t, found.NextPairingDate.Equal(next))

	// Clearing schedule dates persists NULLs
	config.LastPairingDate = nil
	config.NextPairingDate = nil
	require.NoError(t, repo.Update(config))

	found, err = repo.GetByID(config.ID)
	require.NoError(t, err)
	assert.Nil(t, found.LastPairingDate)
	assert.Nil(t, found.NextPairingDate)
}

func TestChannelConfigRepository_GetActive(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelConfigRepo(db.conn)

	active := &entity.ChannelConfig{SlackChannelID: "C1", ChannelName: "a", IsActive: true, PairingFrequencyDays: 14}
	inactive := &entity.ChannelConfig{SlackChannelID: "C2", ChannelName: "b", IsActive: false, PairingFrequencyDays: 14}
	require.NoError(t, repo.Create(active))
	require.NoError(t, repo.Create(inactive))

	configs, err := repo.GetActive()
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "C1", configs[0].SlackChannelID)
}

func TestChannelConfigRepository_GetDue(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	repo := newChannelConfigRepo(db.conn)
	now := time.Date(2025, time.March, 12, 9, 0, 0, 0, time.UTC)

	past := now.AddDate(0, 0, -1)
	future := now.AddDate(0, 0, 5)

	due := &entity.ChannelConfig{SlackChannelID: "C1", ChannelName: "due", IsActive: true, PairingFrequencyDays: 14}
	notYet := &entity.ChannelConfig{SlackChannelID: "C2", ChannelName: "later", IsActive: true, PairingFrequencyDays: 14}
	paused := &entity.ChannelConfig{SlackChannelID: "C3", ChannelName: "paused", IsActive: false, PairingFrequencyDays: 14}
	unscheduled := &entity.ChannelConfig{SlackChannelID: "C4", ChannelName: "new", IsActive: true, PairingFrequencyDays: 14}

	for _, config := range []*entity.ChannelConfig{due, notYet, paused, unscheduled} {
		require.NoError(t, repo.Create(config))
	}

	due.NextPairingDate = &past
	require.NoError(t, repo.Update(due))
	notYet.NextPairingDate = &future
	require.NoError(t, repo.Update(notYet))
	paused.NextPairingDate = &past
	require.NoError(t, repo.Update(paused))

	// Only active channels with an arrived next date qualify
	configs, err := repo.GetDue(now)
	require.NoError(t, err)
	require.Len(t, configs, 1)
	assert.Equal(t, "C1", configs[0].SlackChannelID)
}
