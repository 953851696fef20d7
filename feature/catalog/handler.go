package catalog

import (
	"errors"

	"icon-curator/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/catalog")
	group.Get("/styles", h.HandleStyles)
	group.Get("/icons", h.HandleIcons)
	group.Get("/icons/:style/:file", h.HandleIconFile)
}

// HandleStyles lists the style directories.
// @Summary List Styles
// @Description Lists the style directories of the curated output tree with their file counts.
// @Tags catalog
// @Produce json
// @Success 200 {array} catalog.StyleSummary
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/styles [get]
func (h *Handler) HandleStyles(c *fiber.Ctx) error {
	styles, err := h.service.Styles(c.Context())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Failed to list styles", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(styles)
}

// HandleIcons lists the curated icons.
// @Summary List Icons
// @Description Lists the curated icons, optionally filtered by style.
// @Tags catalog
// @Produce json
// @Param style query string false "Style directory"
// @Success 200 {array} catalog.Entry
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /catalog/icons [get]
func (h *Handler) HandleIcons(c *fiber.Ctx) error {
	entries, err := h.service.Icons(c.Context(), c.Query("style"))
	if err != nil {
		return h.fail(c, err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return c.JSON(entries)
}

// HandleIconFile streams one SVG.
// @Summary Get Icon
// @Description Streams one SVG file of the curated output tree.
// @Tags catalog
// @Produce image/svg+xml
// @Param style path string true "Style directory"
// @Param file path string true "File name"
// @Success 200 {file} file
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /catalog/icons/{style}/{file} [get]
func (h *Handler) HandleIconFile(c *fiber.Ctx) error {
	f, err := h.service.Open(c.Context(), c.Params("style"), c.Params("file"))
	if err != nil {
		return h.fail(c, err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return h.fail(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/svg+xml")
	// fasthttp closes the reader once the body is written.
	return c.SendStream(f, int(info.Size()))
}

func (h *Handler) fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvalidName):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	logger.WithRayID(h.service.logger, c).Error("Catalog request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
