package health

import (
	"catalog-sync/core/logger"
	"catalog-sync/feature/health/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for health checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	// Force import for Swagger
	var _ = checks.SchemaReport{}
	return &Handler{service: service}
}

// RegisterRoutes registers the health routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/health")
	group.Get("/", h.HandleHealth)
	group.Get("/schema", h.HandleSchema)
}

// HandleHealth reports process liveness and store connectivity.
// @Summary Health Check
// @Description Always 200 while the process is up. The db field carries the result of a one-shot SELECT 1.
// @Tags health
// @Produce json
// @Success 200 {object} health.Status "Health Status"
// @Router /health [get]
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	status := h.service.Check(c.UserContext())
	if status.DB != "connected" {
		logger.WithRayID(h.service.logger, c).Warn("Database probe failed", zap.String("db", status.DB))
	}
	return c.JSON(status)
}

// HandleSchema reports missing columns of the catalog tables.
// @Summary Schema Check
// @Description Inspects the catalog tables and lists missing columns.
// @Tags health
// @Produce json
// @Success 200 {object} checks.SchemaReport "Schema Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /health/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(report)
}
