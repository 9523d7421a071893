package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
)

type preferenceRepo struct {
	db dbConn
}

func newPreferenceRepo(db dbConn) contract.PreferenceRepo {
	return &preferenceRepo{db: db}
}

const preferenceColumns = `id, channel_id, slack_user_id, is_opted_in, skip_next_pairing, created_at, updated_at`

func (r *preferenceRepo) Get(channelID int64, slackUserID string) (*entity.UserPreference, error) {
	pref := &entity.UserPreference{}
	query := `
		SELECT ` + preferenceColumns + `
		FROM user_preferences
		WHERE channel_id = ? AND slack_user_id = ?
	`

	err := r.db.QueryRow(query, channelID, slackUserID).Scan(
		&pref.ID,
		&pref.ChannelID,
		&pref.SlackUserID,
		&pref.IsOptedIn,
		&pref.SkipNextPairing,
		&pref.CreatedAt,
		&pref.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get preference: %w", err)
	}

	return pref, nil
}

func (r *preferenceRepo) GetByChannel(channelID int64) ([]*entity.UserPreference, error) {
	query := `
		SELECT ` + preferenceColumns + `
		FROM user_preferences
		WHERE channel_id = ?
	`

	rows, err := r.db.Query(query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	defer rows.Close()

	var prefs []*entity.UserPreference
	for rows.Next() {
		pref := &entity.UserPreference{}
		err := rows.Scan(
			&pref.ID,
			&pref.ChannelID,
			&pref.SlackUserID,
			&pref.IsOptedIn,
			&pref.SkipNextPairing,
			&pref.CreatedAt,
			&pref.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preference: %w", err)
		}
		prefs = append(prefs, pref)
	}

	return prefs, nil
}

// SetOptedIn upserts the opt-in flag and always clears the skip flag:
// explicitly changing opt-in state supersedes a pending skip.
func (r *preferenceRepo) SetOptedIn(channelID int64, slackUserID string, optedIn bool) error {
	query := `
		INSERT INTO user_preferences (channel_id, slack_user_id, is_opted_in, skip_next_pairing)
		VALUES (?, ?, ?, 0)
		ON CONFLICT(channel_id, slack_user_id) DO UPDATE SET
			is_opted_in = excluded.is_opted_in,
			skip_next_pairing = 0,
			updated_at = ?
	`

	_, err := r.db.Exec(query, channelID, slackUserID, optedIn, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set opted in: %w", err)
	}
	return nil
}

func (r *preferenceRepo) SetSkipNext(channelID int64, slackUserID string) error {
	query := `
		INSERT INTO user_preferences (channel_id, slack_user_id, is_opted_in, skip_next_pairing)
		VALUES (?, ?, 1, 1)
		ON CONFLICT(channel_id, slack_user_id) DO UPDATE SET
			skip_next_pairing = 1,
			updated_at = ?
	`

	_, err := r.db.Exec(query, channelID, slackUserID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to set skip next pairing: %w", err)
	}
	return nil
}

func (r *preferenceRepo) ClearSkipFlags(channelID int64) (int64, error) {
	query := `
		UPDATE user_preferences SET
			skip_next_pairing = 0,
			updated_at = ?
		WHERE channel_id = ? AND skip_next_pairing = 1
	`

	result, err := r.db.Exec(query, time.Now(), channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear skip flags: %w", err)
	}

	cleared, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return cleared, nil
}

func (r *preferenceRepo) DeleteByChannel(channelID int64) (int64, error) {
	query := `DELETE FROM user_preferences WHERE channel_id = ?`

	result, err := r.db.Exec(query, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete preferences: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}
