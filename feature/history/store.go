package history

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// DefaultLimit caps ListByGuild when no limit is given.
const DefaultLimit = 20

// Store persists reconcile runs.
type Store struct {
	db *gorm.DB
}

// NewStore creates a Store backed by db.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the reconcile_runs table.
func (s *Store) Migrate() error {
	if err := s.db.AutoMigrate(&Run{}); err != nil {
		return fmt.Errorf("failed to migrate history: %w", err)
	}
	return nil
}

// Record inserts a run. ID and CreatedAt are filled in on success.
func (s *Store) Record(ctx context.Context, run *Run) error {
	if err := s.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run for guild %s: %w", run.GuildID, err)
	}
	return nil
}

// ListByGuild returns the most recent runs for a guild, newest first.
func (s *Store) ListByGuild(ctx context.Context, guildID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	var runs []Run
	err := s.db.WithContext(ctx).
		Where("guild_id = ?", guildID).
		Order("id DESC").
		Limit(limit).
		Find(&runs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list runs for guild %s: %w", guildID, err)
	}
	return runs, nil
}
