package catalog

import (
	"context"

	"catalog-sync/core/logger"
	"catalog-sync/core/reconcile"

	"go.uber.org/zap"
)

// Service runs catalog syncs and serves upstream pages.
type Service struct {
	adapter  reconcile.Adapter
	pages    *reconcile.PageCache
	archiver *Archiver
	logger   *zap.Logger
}

// NewService creates a new catalog service. archiver may be nil.
func NewService(adapter reconcile.Adapter, pages *reconcile.PageCache, archiver *Archiver, log *zap.Logger) *Service {
	if pages == nil {
		pages = reconcile.NewPageCache(0)
	}
	return &Service{
		adapter:  adapter,
		pages:    pages,
		archiver: archiver,
		logger:   logger.OrNop(log),
	}
}

// Sync reconciles one page into the store. log defaults to the service logger.
func (s *Service) Sync(ctx context.Context, limit, offset int, log *zap.Logger) (*reconcile.Summary, error) {
	if log == nil {
		log = s.logger
	}

	summary, err := reconcile.Reconcile(ctx, &reconcile.Spec{
		Adapter: s.adapter,
		Limit:   limit,
		Offset:  offset,
		Logger:  log,
	})
	if err != nil {
		return nil, err
	}

	if s.archiver != nil && summary.SavedCount > 0 {
		// Snapshots are best-effort and never change the run result
		key, err := s.archiver.Archive(context.WithoutCancel(ctx), summary)
		if err != nil {
			log.Warn("Snapshot archive failed", zap.Error(err))
		} else {
			log.Info("Snapshot archived", zap.String("object", key))
		}
	}

	return summary, nil
}

// ListPage returns one upstream page without touching the store.
func (s *Service) ListPage(ctx context.Context, limit, offset int) (*reconcile.Page, error) {
	return s.pages.GetPage(ctx, s.adapter, limit, offset)
}
