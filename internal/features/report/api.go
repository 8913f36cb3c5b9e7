package report

import (
	"go-insights/internal/common/api"
	"go-insights/internal/config"
	"go-insights/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type ReportApi struct {
	controller *ReportController
	config     *config.Config
}

func NewReportApi(controller *ReportController, config *config.Config) api.Route {
	return &ReportApi{
		controller: controller,
		config:     config,
	}
}

func (h *ReportApi) Setup(app *fiber.App) {
	group := app.Group("/api/reports")

	group.Get("/", h.controller.GetReports)
	group.Get("/search", h.controller.SearchReports)
	group.Get("/industry/:industry", h.controller.GetReportsByIndustry)
	group.Get("/slug/:slug", h.controller.GetReportBySlug)

	admin := middleware.AdminMiddleware(h.config)
	group.Post("/", admin, h.controller.CreateReport)
	group.Put("/:slug", admin, h.controller.UpdateReport)
	group.Delete("/:slug", admin, h.controller.DeleteReport)
}
