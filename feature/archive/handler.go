package archive

import (
	"application-sync/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for archived runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the archive routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/runs/:id/artifacts", h.HandleListArtifacts)
}

// HandleListArtifacts lists the archived files of a run.
func (h *Handler) HandleListArtifacts(c *fiber.Ctx) error {
	id := c.Params("id")
	l := logger.WithRequestID(h.service.logger, c)

	objects, err := h.service.List(c.UserContext(), id)
	if err != nil {
		l.Error("Listing artifacts failed", zap.String("run_id", id), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(objects) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no artifacts for run " + id,
		})
	}

	return c.JSON(fiber.Map{
		"run_id":    id,
		"artifacts": objects,
	})
}
