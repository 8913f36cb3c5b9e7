package category

import (
	"context"
	"fmt"
	"strings"

	"go-insights/internal/common/apperr"
	"go-insights/pkg/utils"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	Create(ctx context.Context, category *Category) (*Category, error)
	Delete(ctx context.Context, slug string) error
}

type CategoryServiceImpl struct {
	Repo CategoryRepository
	Log  *zap.Logger
}

func NewCategoryService(repo CategoryRepository, log *zap.Logger) CategoryService {
	return &CategoryServiceImpl{Repo: repo, Log: log}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]Category, error) {
	categories, err := s.Repo.FindAll(ctx)
	if err != nil {
		s.Log.Error("list categories failed", zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch categories", err)
	}
	return categories, nil
}

func (s *CategoryServiceImpl) GetBySlug(ctx context.Context, slug string) (*Category, error) {
	category, err := s.Repo.FindBySlug(ctx, slug)
	if err != nil {
		s.Log.Error("get category failed", zap.String("slug", slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch category", err)
	}
	if category == nil {
		return nil, apperr.NotFound("Category not found")
	}
	return category, nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, category *Category) (*Category, error) {
	category.Name = strings.TrimSpace(category.Name)
	category.Slug = utils.Slugify(category.Slug)

	if category.Name == "" || category.Slug == "" {
		return nil, apperr.Validation("Name and slug are required")
	}

	existing, err := s.Repo.FindBySlug(ctx, category.Slug)
	if err != nil {
		s.Log.Error("slug precheck failed", zap.String("slug", category.Slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to create category", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate(fmt.Sprintf("Category with slug %q already exists", category.Slug))
	}

	if err := s.Repo.Create(ctx, category); err != nil {
		s.Log.Error("create category failed", zap.String("slug", category.Slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to create category", err)
	}
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, slug string) error {
	deleted, err := s.Repo.Delete(ctx, slug)
	if err != nil {
		s.Log.Error("delete category failed", zap.String("slug", slug), zap.Error(err))
		return apperr.Persistence("Failed to delete category", err)
	}
	if !deleted {
		return apperr.NotFound("Category not found")
	}
	// Reports and insights referencing this category are left untouched;
	// referential integrity is not enforced here.
	return nil
}
