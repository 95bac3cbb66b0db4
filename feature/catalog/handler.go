package catalog

import (
	"errors"

	"catalog-sync/core/logger"
	"catalog-sync/core/reconcile"
	"catalog-sync/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service      *Service
	defaultLimit int
	maxLimit     int
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, defaultLimit, maxLimit int) *Handler {
	return &Handler{service: service, defaultLimit: defaultLimit, maxLimit: maxLimit}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/sync", h.HandleSync)
	app.Get("/debug/list", h.HandleDebugList)
}

// HandleSync reconciles one page of the remote catalog into the store.
// @Summary Sync Catalog Page
// @Description Fetches one page of the remote catalog, resolves every entry and upserts the valid records in one transaction.
// @Tags catalog
// @Accept json
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param offset query int false "Page offset (>= 0)" default(0)
// @Success 200 {object} reconcile.Summary "Sync Summary"
// @Failure 400 {object} map[string]string "Invalid Pagination"
// @Failure 500 {object} map[string]string "Persistence Failure"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /sync [get]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit, offset, err := utils.ParseLimitOffset(c.Query("limit"), c.Query("offset"), h.defaultLimit, h.maxLimit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	l.Info("Sync requested", zap.Int("limit", limit), zap.Int("offset", offset))

	summary, err := h.service.Sync(c.UserContext(), limit, offset, l)
	if err != nil {
		status, message := classify(err)
		l.Error("Sync failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"error": message,
		})
	}

	return c.JSON(summary)
}

// HandleDebugList returns one raw upstream page.
// @Summary Debug Upstream List
// @Description Passes one page of the remote list through unchanged. Nothing is persisted.
// @Tags catalog
// @Accept json
// @Produce json
// @Param limit query int false "Page size (1-100)" default(20)
// @Param offset query int false "Page offset (>= 0)" default(0)
// @Success 200 {object} reconcile.Page "Upstream Page"
// @Failure 400 {object} map[string]string "Invalid Pagination"
// @Failure 502 {object} map[string]string "Upstream Error"
// @Router /debug/list [get]
func (h *Handler) HandleDebugList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit, offset, err := utils.ParseLimitOffset(c.Query("limit"), c.Query("offset"), h.defaultLimit, h.maxLimit)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	page, err := h.service.ListPage(c.UserContext(), limit, offset)
	if err != nil {
		status, message := classify(err)
		l.Error("Upstream list failed", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{
			"error": message,
		})
	}

	return c.JSON(page)
}

// classify maps a run error onto a status code and a public message.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, reconcile.ErrUpstreamUnavailable):
		return fiber.StatusBadGateway, "upstream error"
	case errors.Is(err, reconcile.ErrPersistenceFailure):
		return fiber.StatusInternalServerError, "persistence failure"
	default:
		return fiber.StatusInternalServerError, "internal error"
	}
}
