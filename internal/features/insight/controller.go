package insight

import (
	common_api "go-insights/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type InsightController struct {
	Service InsightService
}

func NewInsightController(service InsightService) *InsightController {
	return &InsightController{Service: service}
}

// GetInsights godoc
func (c *InsightController) GetInsights(ctx *fiber.Ctx) error {
	insights, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OKList(ctx, "Insights fetched successfully", insights, len(insights))
}

// GetInsightBySlug godoc
func (c *InsightController) GetInsightBySlug(ctx *fiber.Ctx) error {
	insight, err := c.Service.GetBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Insight fetched successfully", insight)
}

// GetInsightsByCategory godoc
func (c *InsightController) GetInsightsByCategory(ctx *fiber.Ctx) error {
	insights, err := c.Service.ListByCategory(ctx.UserContext(), ctx.Params("category"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OKList(ctx, "Insights fetched successfully", insights, len(insights))
}

// SearchInsights godoc
func (c *InsightController) SearchInsights(ctx *fiber.Ctx) error {
	insights, err := c.Service.Search(ctx.UserContext(), ctx.Query("q"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OKList(ctx, "Search completed successfully", insights, len(insights))
}

// CreateInsight godoc
func (c *InsightController) CreateInsight(ctx *fiber.Ctx) error {
	var insight Insight
	if err := ctx.BodyParser(&insight); err != nil {
		return common_api.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := c.Service.Create(ctx.UserContext(), &insight)
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.Created(ctx, "Insight created successfully", created)
}

// UpdateInsight godoc
func (c *InsightController) UpdateInsight(ctx *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := ctx.BodyParser(&fields); err != nil {
		return common_api.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	updated, err := c.Service.Update(ctx.UserContext(), ctx.Params("slug"), fields)
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Insight updated successfully", updated)
}

// DeleteInsight godoc
func (c *InsightController) DeleteInsight(ctx *fiber.Ctx) error {
	if err := c.Service.Delete(ctx.UserContext(), ctx.Params("slug")); err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Insight deleted successfully", nil)
}
