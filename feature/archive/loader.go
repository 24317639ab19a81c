package archive

import (
	"application-sync/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	enabled bool
	service *Service
	handler *Handler
}

// NewFeature creates a new archive feature.
func NewFeature(client storage.Client, cfg storage.Config, logger *zap.Logger) *Feature {
	svc := NewService(client, cfg.Bucket, logger)
	return &Feature{
		enabled: cfg.Enabled && client != nil,
		service: svc,
		handler: NewHandler(svc),
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "archive"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
