package category

import (
	common_api "go-insights/internal/common/api"

	"github.com/gofiber/fiber/v2"
)

type CategoryController struct {
	Service CategoryService
}

func NewCategoryController(service CategoryService) *CategoryController {
	return &CategoryController{Service: service}
}

// GetCategories godoc
func (c *CategoryController) GetCategories(ctx *fiber.Ctx) error {
	categories, err := c.Service.List(ctx.UserContext())
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OKList(ctx, "Categories fetched", categories, len(categories))
}

// GetCategoryBySlug godoc
func (c *CategoryController) GetCategoryBySlug(ctx *fiber.Ctx) error {
	category, err := c.Service.GetBySlug(ctx.UserContext(), ctx.Params("slug"))
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Category fetched", category)
}

// CreateCategory godoc
func (c *CategoryController) CreateCategory(ctx *fiber.Ctx) error {
	var category Category
	if err := ctx.BodyParser(&category); err != nil {
		return common_api.Fail(ctx, fiber.StatusBadRequest, "Invalid request body")
	}

	created, err := c.Service.Create(ctx.UserContext(), &category)
	if err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.Created(ctx, "Category created successfully", created)
}

// DeleteCategory godoc
func (c *CategoryController) DeleteCategory(ctx *fiber.Ctx) error {
	if err := c.Service.Delete(ctx.UserContext(), ctx.Params("slug")); err != nil {
		return common_api.Error(ctx, err)
	}
	return common_api.OK(ctx, "Category deleted successfully", nil)
}
