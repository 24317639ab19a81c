package history

import (
	"errors"

	"application-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for run history.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/runs")
	group.Get("/", h.HandleListRuns)
	group.Get("/:id", h.HandleGetRun)
}

// HandleListRuns returns the most recent runs.
// Query parameter "limit" caps the number of runs (default 20, max 200).
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRequestID(h.service.logger, c)

	runs, err := h.service.ListRuns(c.UserContext(), c.QueryInt("limit", DefaultLimit))
	if err != nil {
		l.Error("Listing runs failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"runs":  runs,
		"count": len(runs),
	})
}

// HandleGetRun returns one run with its per-record outcomes.
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRequestID(h.service.logger, c)

	run, err := h.service.GetRun(c.UserContext(), id)
	if errors.Is(err, ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Loading run failed", zap.String("run_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(run)
}
