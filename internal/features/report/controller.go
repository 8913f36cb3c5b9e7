package report

import (
	common_api "go-insights/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type ReportController struct {
	Service ReportService
}

func NewReportController(service ReportService) *ReportController {
	return &ReportController{Service: service}
}

// GetReports godoc
func (c *ReportController) GetReports(ctx *fiber.Ctx) error {
	reports, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OKList(ctx, "Reports fetched successfully", reports, len(reports))
}

// GetReportBySlug godoc
func (c *ReportController) GetReportBySlug(ctx *fiber.Ctx) error {
	report, err := c.Service.GetBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Report fetched successfully", report)
}

// GetReportsByIndustry godoc
func (c *ReportController) GetReportsByIndustry(ctx *fiber.Ctx) error {
	reports, err := c.Service.ListByIndustry(ctx.UserContext(), ctx.Params("industry"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OKList(ctx, "Reports fetched successfully", reports, len(reports))
}

// SearchReports godoc
func (c *ReportController) SearchReports(ctx *fiber.Ctx) error {
	reports, err := c.Service.Search(ctx.UserContext(), ctx.Query("q"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	if len(reports) == 0 {
		return common_api.OKList(ctx, "No reports found matching the criteria.", reports, 0)
	}
	return common_api.OKList(ctx, "Search completed successfully", reports, len(reports))
}

// CreateReport godoc
func (c *ReportController) CreateReport(ctx *fiber.Ctx) error {
	var report Report
	if err := ctx.BodyParser(&report); err != nil {
		return common_api.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := c.Service.Create(ctx.UserContext(), &report)
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.Created(ctx, "Report created successfully", created)
}

// UpdateReport godoc
func (c *ReportController) UpdateReport(ctx *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := ctx.BodyParser(&fields); err != nil {
		return common_api.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := c.Service.Update(ctx.UserContext(), ctx.Params("slug"), fields)
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Report updated successfully", updated)
}

// DeleteReport godoc
func (c *ReportController) DeleteReport(ctx *fiber.Ctx) error {
	if err := c.Service.Delete(ctx.UserContext(), ctx.Params("slug")); err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Report deleted successfully", nil)
}
