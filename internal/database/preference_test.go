package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository_GetMissing(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPreferenceRepo(db.conn)

	pref, err := repo.Get(channel.ID, "U1")
	require.NoError(t, err, "Unexpected error for missing preference")
	assert.Nil(t, pref, "Expected nil for missing preference")
}

func TestPreferenceRepository_SetOptedIn(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPreferenceRepo(db.conn)

	require.NoError(t, repo.SetOptedIn(channel.ID, "U1", false))

	pref, err := repo.Get(channel.ID, "U1")
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.False(t, pref.IsOptedIn)
	assert.False(t, pref.SkipNextPairing)

	// Upsert flips the same row back
	require.NoError(t, repo.SetOptedIn(channel.ID, "U1", true))

	updated, err := repo.Get(channel.ID, "U1")
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, pref.ID, updated.ID)
	assert.True(t, updated.IsOptedIn)
}

func TestPreferenceRepository_SetOptedIn_ClearsSkipFlag(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPreferenceRepo(db.conn)

	require.NoError(t, repo.SetSkipNext(channel.ID, "U1"))
	require.NoError(t, repo.SetOptedIn(channel.ID, "U1", false))

	pref, err := repo.Get(channel.ID, "U1")
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.False(t, pref.IsOptedIn)
	assert.False(t, pref.SkipNextPairing, "Opt-in change must supersede a pending skip")
}

func TestPreferenceRepository_SetSkipNext(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPreferenceRepo(db.conn)

	// Insert path keeps the user opted in
	require.NoError(t, repo.SetSkipNext(channel.ID, "U1"))

	pref, err := repo.Get(channel.ID, "U1")
	require.NoError(t, err)
	require.NotNil(t, pref)
	assert.True(t, pref.IsOptedIn)
	assert.True(t, pref.SkipNextPairing)

	// Update path must not flip an existing opt-out
	require.NoError(t, repo.SetOptedIn(channel.ID, "U2", false))
	require.NoError(t, repo.SetSkipNext(channel.ID, "U2"))

	optedOut, err := repo.Get(channel.ID, "U2")
	require.NoError(t, err)
	require.NotNil(t, optedOut)
	assert.False(t, optedOut.IsOptedIn)
	assert.True(t, optedOut.SkipNextPairing)
}

func TestPreferenceRepository_GetByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	otherChannel := createTestChannel(t, db, "C456")
	repo := newPreferenceRepo(db.conn)

	require.NoError(t, repo.SetOptedIn(channel.ID, "U1", false))
	require.NoError(t, repo.SetSkipNext(channel.ID, "U2"))
	require.NoError(t, repo.SetOptedIn(otherChannel.ID, "U3", false))

	prefs, err := repo.GetByChannel(channel.ID)
	require.NoError(t, err)
	require.Len(t, prefs, 2)

	users := []string{prefs[0].SlackUserID, prefs[1].SlackUserID}
	assert.ElementsMatch(t, []string{"U1", "U2"}, users)
}

func TestPreferenceRepository_ClearSkipFlags(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	repo := newPreferenceRepo(db.conn)

	require.NoError(t, repo.SetSkipNext(channel.ID, "U1"))
	require.NoError(t, repo.SetSkipNext(channel.ID, "U2"))
	require.NoError(t, repo.SetOptedIn(channel.ID, "U3", false))

	cleared, err := repo.ClearSkipFlags(channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), cleared)

	for _, userID := range []string{"U1", "U2"} {
		pref, err := repo.Get(channel.ID, userID)
		require.NoError(t, err)
		require.NotNil(t, pref)
		assert.False(t, pref.SkipNextPairing)
		assert.True(t, pref.IsOptedIn, "Clearing skip flags must not change opt-in state")
	}

	// Second sweep finds nothing to clear
	cleared, err = repo.ClearSkipFlags(channel.ID)
	require.NoError(t, err)
	assert.Zero(t, cleared)
}

func TestPreferenceRepository_DeleteByChannel(t *testing.T) {
	db := SetupTestDB(t)
	defer CleanupTestDB(t, db)

	channel := createTestChannel(t, db, "C123")
	otherChannel := createTestChannel(t, db, "C456")
	repo := newPreferenceRepo(db.conn)

	require.NoError(t, repo.SetOptedIn(channel.ID, "U1", false))
	require.NoError(t, repo.SetOptedIn(channel.ID, "U2", false))
	require.NoError(t, repo.SetOptedIn(otherChannel.ID, "U3", false))

	deleted, err := repo.DeleteByChannel(channel.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	remaining, err := repo.GetByChannel(otherChannel.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}
