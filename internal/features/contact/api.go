package contact

import (
	"go-insights/internal/common/api"
	"go-insights/internal/config"
	"go-insights/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ContactApi struct {
	controller *ContactController
	config     *config.Config
}

func NewContactApi(controller *ContactController, config *config.Config) api.Route {
	return &ContactApi{
		controller: controller,
		config:     config,
	}
}

func (h *ContactApi) Setup(app *fiber.App) {
	group := app.Group("/api/contacts")

	// Submission is public; everything else is admin-only.
	group.Post("/", h.controller.CreateContact)

	admin := middleware.AdminMiddleware(h.config)
	group.Get("/", admin, h.controller.GetContacts)
	group.Get("/export", admin, h.controller.ExportContacts)
	group.Get("/:id", admin, h.controller.GetContactByID)
	group.Delete("/:id", admin, h.controller.DeleteContact)
}
