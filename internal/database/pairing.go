package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
)

type pairingRepo struct {
	db dbConn
}

func newPairingRepo(db dbConn) contract.PairingRepo {
	return &pairingRepo{db: db}
}

const pairingColumns = `id, channel_id, user_ids, created_at, due_date,
		conversation_id, midpoint_reminder_sent, meetup_confirmed`

func (r *pairingRepo) Create(pairing *entity.Pairing) error {
	query := `
		INSERT INTO pairings (channel_id, user_ids, created_at, due_date, conversation_id,
			midpoint_reminder_sent, meetup_confirmed)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	// Member ids are stored as a JSON array
	userIDsJSON, err := json.Marshal(pairing.UserIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal user ids: %w", err)
	}

	result, err := r.db.Exec(query,
		pairing.ChannelID,
		string(userIDsJSON),
		pairing.CreatedAt,
		pairing.DueDate,
		pairing.ConversationID,
		pairing.MidpointReminderSent,
		pairing.MeetupConfirmed,
	)
	if err != nil {
		return fmt.Errorf("failed to create pairing: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	pairing.ID = id
	return nil
}

func (r *pairingRepo) GetByID(id int64) (*entity.Pairing, error) {
	query := `
		SELECT ` + pairingColumns + `
		FROM pairings
		WHERE id = ?
	`

	pairing, err := scanPairing(r.db.QueryRow(query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get pairing: %w", err)
	}
	return pairing, nil
}

func (r *pairingRepo) GetActive(channelID int64, now time.Time) ([]*entity.Pairing, error) {
	query := `
		SELECT ` + pairingColumns + `
		FROM pairings
		WHERE channel_id = ? AND due_date >= ?
	`

	rows, err := r.db.Query(query, channelID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get active pairings: %w", err)
	}
	defer rows.Close()

	return scanPairings(rows)
}

func (r *pairingRepo) GetCreatedSince(channelID int64, since time.Time) ([]*entity.Pairing, error) {
	query := `
		SELECT ` + pairingColumns + `
		FROM pairings
		WHERE channel_id = ? AND created_at >= ?
	`

	rows, err := r.db.Query(query, channelID, since)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent pairings: %w", err)
	}
	defer rows.Close()

	return scanPairings(rows)
}

func (r *pairingRepo) GetNeedingReminder(channelID int64, windowStart, windowEnd time.Time) ([]*entity.Pairing, error) {
	query := `
		SELECT ` + pairingColumns + `
		FROM pairings
		WHERE channel_id = ?
			AND created_at >= ? AND created_at <= ?
			AND midpoint_reminder_sent = 0
			AND meetup_confirmed = 0
			AND conversation_id IS NOT NULL AND conversation_id != ''
	`

	rows, err := r.db.Query(query, channelID, windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to get pairings needing reminder: %w", err)
	}
	defer rows.Close()

	return scanPairings(rows)
}

func (r *pairingRepo) GetDueBetween(channelID int64, from, to time.Time) ([]*entity.Pairing, error) {
	query := `
		SELECT ` + pairingColumns + `
		FROM pairings
		WHERE channel_id = ? AND due_date >= ? AND due_date <= ?
	`

	rows, err := r.db.Query(query, channelID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get pairings by due date: %w", err)
	}
	defer rows.Close()

	return scanPairings(rows)
}

func (r *pairingRepo) GetByUser(slackUserID string) ([]*entity.Pairing, error) {
	// user_ids is a JSON array of quoted ids, so a quoted LIKE match is exact
	query := `
		SELECT ` + pairingColumns + `
		FROM pairings
		WHERE user_ids LIKE '%"' || ? || '"%'
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, slackUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get pairings for user: %w", err)
	}
	defer rows.Close()

	return scanPairings(rows)
}

func (r *pairingRepo) SetConversationID(id int64, conversationID string) error {
	query := `UPDATE pairings SET conversation_id = ? WHERE id = ?`
	_, err := r.db.Exec(query, conversationID, id)
	if err != nil {
		return fmt.Errorf("failed to set conversation id: %w", err)
	}
	return nil
}

func (r *pairingRepo) MarkReminderSent(id int64) error {
	query := `UPDATE pairings SET midpoint_reminder_sent = 1 WHERE id = ?`
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to mark reminder sent: %w", err)
	}
	return nil
}

func (r *pairingRepo) ConfirmMeetup(id int64) error {
	query := `UPDATE pairings SET meetup_confirmed = 1 WHERE id = ?`
	_, err := r.db.Exec(query, id)
	if err != nil {
		return fmt.Errorf("failed to confirm meetup: %w", err)
	}
	return nil
}

func (r *pairingRepo) DeleteByChannel(channelID int64) (int64, error) {
	query := `DELETE FROM pairings WHERE channel_id = ?`

	result, err := r.db.Exec(query, channelID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete pairings: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return deleted, nil
}

func scanPairing(row rowScanner) (*entity.Pairing, error) {
	pairing := &entity.Pairing{}
	var userIDsJSON string
	var conversationID sql.NullString

	err := row.Scan(
		&pairing.ID,
		&pairing.ChannelID,
		&userIDsJSON,
		&pairing.CreatedAt,
		&pairing.DueDate,
		&conversationID,
		&pairing.MidpointReminderSent,
		&pairing.MeetupConfirmed,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(userIDsJSON), &pairing.UserIDs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user ids: %w", err)
	}
	pairing.ConversationID = conversationID.String

	return pairing, nil
}

func scanPairings(rows *sql.Rows) ([]*entity.Pairing, error) {
	var pairings []*entity.Pairing
	for rows.Next() {
		pairing, err := scanPairing(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pairing: %w", err)
		}
		pairings = append(pairings, pairing)
	}
	return pairings, nil
}
