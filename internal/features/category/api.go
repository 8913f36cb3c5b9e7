package category

import (
	"go-insights/internal/common/api"
	"go-insights/internal/config"
	"go-insights/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type CategoryApi struct {
	controller *CategoryController
	config     *config.Config
}

func NewCategoryApi(controller *CategoryController, config *config.Config) api.Route {
	return &CategoryApi{
		controller: controller,
		config:     config,
	}
}

func (h *CategoryApi) Setup(app *fiber.App) {
	group := app.Group("/api/categories")

	group.Get("/", h.controller.GetCategories)
	group.Get("/:slug", h.controller.GetCategoryBySlug)

	admin := middleware.AdminMiddleware(h.config)
	group.Post("/", admin, h.controller.CreateCategory)
	group.Delete("/:slug", admin, h.controller.DeleteCategory)
}
