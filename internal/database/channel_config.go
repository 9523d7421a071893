package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
	"github.com/coffeepair/coffee-chat-bot/internal/domain/entity"
)

type channelConfigRepo struct {
	db dbConn
}

func newChannelConfigRepo(db dbConn) contract.ChannelConfigRepo {
	return &channelConfigRepo{db: db}
}

const channelConfigColumns = `id, slack_channel_id, channel_name, is_active,
		pairing_frequency_days, last_pairing_date, next_pairing_date, created_at, updated_at`

func (r *channelConfigRepo) Create(config *entity.ChannelConfig) error {
	query := `
		INSERT INTO channel_configs (slack_channel_id, channel_name, is_active, pairing_frequency_days)
		VALUES (?, ?, ?, ?)
	`

	result, err := r.db.Exec(query,
		config.SlackChannelID,
		config.ChannelName,
		config.IsActive,
		config.PairingFrequencyDays,
	)
	if err != nil {
		return fmt.Errorf("failed to create channel config: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	config.ID = id
	return nil
}

func (r *channelConfigRepo) GetBySlackID(slackChannelID string) (*entity.ChannelConfig, error) {
	query := `
		SELECT ` + channelConfigColumns + `
		FROM channel_configs
		WHERE slack_channel_id = ?
	`

	config, err := scanChannelConfig(r.db.QueryRow(query, slackChannelID))
	if err != nil {
		return nil, fmt.Errorf("failed to get channel config: %w", err)
	}
	return config, nil
}

func (r *channelConfigRepo) GetByID(id int64) (*entity.ChannelConfig, error) {
	query := `
		SELECT ` + channelConfigColumns + `
		FROM channel_configs
		WHERE id = ?
	`

	config, err := scanChannelConfig(r.db.QueryRow(query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get channel config: %w", err)
	}
	return config, nil
}

func (r *channelConfigRepo) Update(config *entity.ChannelConfig) error {
	query := `
		UPDATE channel_configs SET
			channel_name = ?,
			is_active = ?,
			pairing_frequency_days = ?,
			last_pairing_date = ?,
			next_pairing_date = ?,
			updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		config.ChannelName,
		config.IsActive,
		config.PairingFrequencyDays,
		nullableTime(config.LastPairingDate),
		nullableTime(config.NextPairingDate),
		time.Now(),
		config.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update channel config: %w", err)
	}

	return nil
}

func (r *channelConfigRepo) GetActive() ([]*entity.ChannelConfig, error) {
	query := `
		SELECT ` + channelConfigColumns + `
		FROM channel_configs
		WHERE is_active = 1
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to get active channel configs: %w", err)
	}
	defer rows.Close()

	return scanChannelConfigs(rows)
}

func (r *channelConfigRepo) GetDue(now time.Time) ([]*entity.ChannelConfig, error) {
	query := `
		SELECT ` + channelConfigColumns + `
		FROM channel_configs
		WHERE is_active = 1 AND next_pairing_date IS NOT NULL AND next_pairing_date <= ?
	`

	rows, err := r.db.Query(query, now)
	if err != nil {
		return nil, fmt.Errorf("failed to get due channel configs: %w", err)
	}
	defer rows.Close()

	return scanChannelConfigs(rows)
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanChannelConfig(row rowScanner) (*entity.ChannelConfig, error) {
	config := &entity.ChannelConfig{}
	var lastPairing, nextPairing sql.NullTime

	err := row.Scan(
		&config.ID,
		&config.SlackChannelID,
		&config.ChannelName,
		&config.IsActive,
		&config.PairingFrequencyDays,
		&lastPairing,
		&nextPairing,
		&config.CreatedAt,
		&config.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if lastPairing.Valid {
		config.LastPairingDate = &lastPairing.Time
	}
	if nextPairing.Valid {
		config.NextPairingDate = &nextPairing.Time
	}

	return config, nil
}

func scanChannelConfigs(rows *sql.Rows) ([]*entity.ChannelConfig, error) {
	var configs []*entity.ChannelConfig
	for rows.Next() {
		config, err := scanChannelConfig(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan channel config: %w", err)
		}
		configs = append(configs, config)
	}
	return configs, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}
