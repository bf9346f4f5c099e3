package cmd

import (
	"context"
	"errors"
	"fmt"

	"guild-manager/core/config"
	"guild-manager/core/database"
	"guild-manager/core/storage"
	"guild-manager/feature/archive"
	"guild-manager/feature/guild"
	"guild-manager/feature/history"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// sideStores holds the optional history and archive backends.
type sideStores struct {
	history *history.Store
	archive *archive.Store
}

// openSideStores connects the optional backends concurrently. A backend that
// is disabled or unreachable is left nil. The returned error joins every open
// failure; callers log it and carry on without the failed backends.
func openSideStores(ctx context.Context, cfg *config.Config, l *zap.Logger) (sideStores, error) {
	var (
		s                   sideStores
		g                   errgroup.Group
		historyErr, archErr error
	)

	// A plain group: one failed backend must not cancel the other's open.
	if cfg.Database.Enabled {
		g.Go(func() error {
			s.history, historyErr = openHistory(cfg, l)
			return historyErr
		})
	}
	if cfg.Storage.Enabled {
		g.Go(func() error {
			s.archive, archErr = openArchive(ctx, cfg, l)
			return archErr
		})
	}

	if err := g.Wait(); err != nil {
		return s, errors.Join(historyErr, archErr)
	}
	return s, nil
}

func openHistory(cfg *config.Config, l *zap.Logger) (*history.Store, error) {
	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("history disabled: %w", err)
	}

	store := history.NewStore(db)
	if err := store.Migrate(); err != nil {
		return nil, fmt.Errorf("history disabled: %w", err)
	}
	l.Info("Connected to history database")
	return store, nil
}

func openArchive(ctx context.Context, cfg *config.Config, l *zap.Logger) (*archive.Store, error) {
	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("archive disabled: %w", err)
	}

	store := archive.NewStore(client, cfg.Storage.Bucket)
	if err := store.EnsureBucket(ctx); err != nil {
		return nil, fmt.Errorf("archive disabled: %w", err)
	}
	l.Info("Configuration archive ready", zap.String("bucket", cfg.Storage.Bucket))
	return store, nil
}

// recorder returns the history store as a guild.Recorder, nil when disabled.
func (s sideStores) recorder() guild.Recorder {
	if s.history == nil {
		return nil
	}
	return s.history
}

// archiver returns the archive store as a guild.Archiver, nil when disabled.
func (s sideStores) archiver() guild.Archiver {
	if s.archive == nil {
		return nil
	}
	return s.archive
}
