package insight

import (
	"context"
	"fmt"
	"strings"

	"go-insights/internal/common/apperr"
	"go-insights/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InsightService interface {
	List(ctx context.Context) ([]Insight, error)
	GetBySlug(ctx context.Context, slug string) (*Insight, error)
	ListByCategory(ctx context.Context, category string) ([]Insight, error)
	Search(ctx context.Context, q string) ([]Insight, error)
	Create(ctx context.Context, insight *Insight) (*Insight, error)
	Update(ctx context.Context, slug string, fields map[string]interface{}) (*Insight, error)
	Delete(ctx context.Context, slug string) error
}

type InsightServiceImpl struct {
	Repo InsightRepository
	Log  *zap.Logger
}

func NewInsightService(repo InsightRepository, log *zap.Logger) InsightService {
	return &InsightServiceImpl{Repo: repo, Log: log}
}

func (s *InsightServiceImpl) List(ctx context.Context) ([]Insight, error) {
	insights, err := s.Repo.FindAll(ctx)
	if err != nil {
		s.Log.Error("list insights failed", zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch insights", err)
	}
	return insights, nil
}

func (s *InsightServiceImpl) GetBySlug(ctx context.Context, slug string) (*Insight, error) {
	insight, err := s.Repo.FindBySlug(ctx, slug)
	if err != nil {
		s.Log.Error("get insight failed", zap.String("slug", slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch insight", err)
	}
	if insight == nil {
		return nil, apperr.NotFound("Insight not found")
	}
	return insight, nil
}

// ListByCategory treats an empty category as a normal empty result, unlike
// the report industry path.
func (s *InsightServiceImpl) ListByCategory(ctx context.Context, category string) ([]Insight, error) {
	insights, err := s.Repo.FindByCategory(ctx, category)
	if err != nil {
		s.Log.Error("list insights by category failed", zap.String("category", category), zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch insights", err)
	}
	return insights, nil
}

// Search requires a non-empty term; the absence check lives here so every
// caller gets the same client error.
func (s *InsightServiceImpl) Search(ctx context.Context, q string) ([]Insight, error) {
	filter := SearchFilter(q)
	if filter == nil {
		return nil, apperr.Validation("query required")
	}

	insights, err := s.Repo.Search(ctx, filter)
	if err != nil {
		s.Log.Error("insight search failed", zap.String("q", q), zap.Error(err))
		return nil, apperr.Persistence("Failed to search insights", err)
	}
	return insights, nil
}

func (s *InsightServiceImpl) Create(ctx context.Context, insight *Insight) (*Insight, error) {
	insight.Slug = utils.Slugify(insight.Slug)
	insight.Title = strings.TrimSpace(insight.Title)

	if insight.Slug == "" || insight.Title == "" {
		return nil, apperr.Validation("slug and title are required")
	}
	if insight.InsightID == "" {
		insight.InsightID = uuid.NewString()
	}

	existing, err := s.Repo.FindBySlug(ctx, insight.Slug)
	if err != nil {
		s.Log.Error("slug precheck failed", zap.String("slug", insight.Slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to create insight", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate(fmt.Sprintf("Insight with slug %q already exists", insight.Slug))
	}

	if err := s.Repo.Create(ctx, insight); err != nil {
		s.Log.Error("create insight failed", zap.String("slug", insight.Slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to create insight", err)
	}
	return insight, nil
}

func (s *InsightServiceImpl) Update(ctx context.Context, slug string, fields map[string]interface{}) (*Insight, error) {
	set := SanitizeUpdate(fields)
	if len(set) == 0 {
		return nil, apperr.Validation("No updatable fields supplied")
	}

	updated, err := s.Repo.Update(ctx, slug, set)
	if err != nil {
		s.Log.Error("update insight failed", zap.String("slug", slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to update insight", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("Insight not found")
	}
	return updated, nil
}

func (s *InsightServiceImpl) Delete(ctx context.Context, slug string) error {
	deleted, err := s.Repo.Delete(ctx, slug)
	if err != nil {
		s.Log.Error("delete insight failed", zap.String("slug", slug), zap.Error(err))
		return apperr.Persistence("Failed to delete insight", err)
	}
	if !deleted {
		return apperr.NotFound("Insight not found")
	}
	return nil
}
