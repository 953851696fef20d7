package catalog

import (
	"icon-curator/core/filesystem"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalog feature. db may be nil.
func NewFeature(fsys *filesystem.FS, root string, db *gorm.DB, cfg Config, logger *zap.Logger) *Feature {
	var store *Store
	if db != nil {
		store = NewStore(db)
	}
	svc := NewService(fsys, root, store, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
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
