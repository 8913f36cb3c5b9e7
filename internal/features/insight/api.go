package insight

import (
	"go-insights/internal/common/api"
	"go-insights/internal/config"
	"go-insights/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type InsightApi struct {
	controller *InsightController
	config     *config.Config
}

func NewInsightApi(controller *InsightController, config *config.Config) api.Route {
	return &InsightApi{
		controller: controller,
		config:     config,
	}
}

func (h *InsightApi) Setup(app *fiber.App) {
	group := app.Group("/api/insights")

	group.Get("/", h.controller.GetInsights)
	group.Get("/search", h.controller.SearchInsights)
	group.Get("/slug/:slug", h.controller.GetInsightBySlug)
	group.Get("/category/:category", h.controller.GetInsightsByCategory)

	admin := middleware.AdminMiddleware(h.config)
	group.Post("/", admin, h.controller.CreateInsight)
	group.Put("/:slug", admin, h.controller.UpdateInsight)
	group.Delete("/:slug", admin, h.controller.DeleteInsight)
}
