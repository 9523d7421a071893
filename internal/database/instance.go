package database

import (
	"context"
	"fmt"

	"github.com/coffeepair/coffee-chat-bot/internal/domain/contract"
)

// instance implements DataManager interface
type instance struct {
	db             *DB
	channelConfigs contract.ChannelConfigRepo
	pairings       contract.PairingRepo
	preferences    contract.PreferenceRepo
}

// NewInstance creates a new database instance with all repositories
func NewInstance(db *DB) contract.DataManager {
	i := &instance{db: db}
	i.channelConfigs = newChannelConfigRepo(db.conn)
	i.pairings = newPairingRepo(db.conn)
	i.preferences = newPreferenceRepo(db.conn)
	return i
}

// repoInstancesWithConn creates repository instances with custom dbConn
func repoInstancesWithConn(db dbConn) *instance {
	return &instance{
		channelConfigs: newChannelConfigRepo(db),
		pairings:       newPairingRepo(db),
		preferences:    newPreferenceRepo(db),
	}
}

// ChannelConfig returns the channel config repository
func (i *instance) ChannelConfig() contract.ChannelConfigRepo {
	return i.channelConfigs
}

// Pairing returns the pairing repository
func (i *instance) Pairing() contract.PairingRepo {
	return i.pairings
}

// Preference returns the user preference repository
func (i *instance) Preference() contract.PreferenceRepo {
	return i.preferences
}

// WithTransaction executes a function within a database transaction
func (i *instance) WithTransaction(ctx context.Context, fn func(dm contract.DataManager) error) error {
	tx, err := i.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	txInstance := repoInstancesWithConn(tx)
	err = fn(txInstance)
	if err != nil {
		rbErr := tx.Rollback()
		if rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v, original error: %w", rbErr, err)
		}
		return err
	}

	return tx.Commit()
}
