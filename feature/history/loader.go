package history

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new history feature. A nil db disables it.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{}
	if db != nil {
		f.service = NewService(NewRepository(db), logger)
		f.handler = NewHandler(f.service)
	}
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "history"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
