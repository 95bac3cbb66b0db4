package health

import (
	"context"

	"catalog-sync/core/database"
	"catalog-sync/feature/health/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Status is the liveness report returned by /health.
type Status struct {
	Status string `json:"status"`
	DB     string `json:"db"`
}

// Service handles health checks.
type Service struct {
	db       *gorm.DB
	expected map[string][]string
	logger   *zap.Logger
}

// NewService creates a new health service.
// expected maps each owned table to the columns it must carry.
func NewService(db *gorm.DB, expected map[string][]string, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		expected: expected,
		logger:   logger,
	}
}

// Check probes the store once. The process itself is always reported "ok".
func (s *Service) Check(ctx context.Context) Status {
	status := Status{Status: "ok", DB: "connected"}
	if err := database.Ping(ctx, s.db); err != nil {
		status.DB = "error: " + err.Error()
	}
	return status
}

// CheckSchema reports missing columns of the owned tables.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, s.expected)
}
