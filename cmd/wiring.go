package cmd

import (
	"context"
	"time"

	"catalog-sync/core/config"
	"catalog-sync/core/storage"
	"catalog-sync/feature/catalog"

	"go.uber.org/zap"
)

// newArchiver builds the snapshot archiver when storage is enabled.
// Storage problems disable archiving instead of failing the command.
func newArchiver(ctx context.Context, cfg *config.Config, l *zap.Logger) *catalog.Archiver {
	if !cfg.Storage.Enabled {
		return nil
	}

	client, err := storage.NewClient(cfg.Storage)
	if err != nil {
		l.Warn("Snapshot archiving disabled", zap.Error(err))
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
	defer cancel()
	if err := storage.EnsureBucket(ctx, client, cfg.Storage.Bucket, cfg.Storage.Region); err != nil {
		l.Warn("Snapshot archiving disabled", zap.Error(err))
		return nil
	}

	l.Info("Snapshot archiving enabled",
		zap.String("bucket", cfg.Storage.Bucket),
		zap.String("prefix", cfg.Storage.Prefix),
	)
	return catalog.NewArchiver(client, cfg.Storage.Bucket, cfg.Storage.Prefix)
}
