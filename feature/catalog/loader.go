package catalog

import (
	"catalog-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Catalog feature.
func NewFeature(adapter reconcile.Adapter, pages *reconcile.PageCache, archiver *Archiver, logger *zap.Logger, defaultLimit, maxLimit int) *Feature {
	svc := NewService(adapter, pages, archiver, logger)
	h := NewHandler(svc, defaultLimit, maxLimit)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
