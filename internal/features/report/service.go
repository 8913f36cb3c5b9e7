package report

import (
	"context"
	"fmt"
	"strings"

	"go-insights/internal/common/apperr"
	"go-insights/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReportService interface {
	List(ctx context.Context) ([]Report, error)
	GetBySlug(ctx context.Context, slug string) (*Report, error)
	ListByIndustry(ctx context.Context, industry string) ([]Report, error)
	Search(ctx context.Context, q string) ([]Report, error)
	Create(ctx context.Context, report *Report) (*Report, error)
	Update(ctx context.Context, slug string, fields map[string]interface{}) (*Report, error)
	Delete(ctx context.Context, slug string) error
}

type ReportServiceImpl struct {
	Repo ReportRepository
	Log  *zap.Logger
}

func NewReportService(repo ReportRepository, log *zap.Logger) ReportService {
	return &ReportServiceImpl{Repo: repo, Log: log}
}

func (s *ReportServiceImpl) List(ctx context.Context) ([]Report, error) {
	reports, err := s.Repo.FindAll(ctx)
	if err != nil {
		s.Log.Error("list reports failed", zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch reports", err)
	}
	return reports, nil
}

func (s *ReportServiceImpl) GetBySlug(ctx context.Context, slug string) (*Report, error) {
	report, err := s.Repo.FindBySlug(ctx, slug)
	if err != nil {
		s.Log.Error("get report failed", zap.String("slug", slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch report", err)
	}
	if report == nil {
		return nil, apperr.NotFound("Report not found")
	}
	return report, nil
}

// ListByIndustry answers an empty match with not-found naming the industry.
// The general search path returns an empty 200 instead; the asymmetry is
// kept for backward compatibility with existing clients.
func (s *ReportServiceImpl) ListByIndustry(ctx context.Context, industry string) ([]Report, error) {
	reports, err := s.Repo.FindByIndustry(ctx, industry)
	if err != nil {
		s.Log.Error("list reports by industry failed", zap.String("industry", industry), zap.Error(err))
		return nil, apperr.Persistence("Failed to fetch reports", err)
	}
	if len(reports) == 0 {
		return nil, apperr.NotFound(fmt.Sprintf("No reports found for industry: %s", industry))
	}
	return reports, nil
}

// Search returns an empty result set for a blank term, never an error.
func (s *ReportServiceImpl) Search(ctx context.Context, q string) ([]Report, error) {
	filter := SearchFilter(q)
	if filter == nil {
		return []Report{}, nil
	}

	reports, err := s.Repo.Search(ctx, filter)
	if err != nil {
		s.Log.Error("report search failed", zap.String("q", q), zap.Error(err))
		return nil, apperr.Persistence("Failed to search reports", err)
	}
	return reports, nil
}

func (s *ReportServiceImpl) Create(ctx context.Context, report *Report) (*Report, error) {
	report.Slug = utils.Slugify(report.Slug)
	report.Title = strings.TrimSpace(report.Title)

	if report.Slug == "" || report.Title == "" {
		return nil, apperr.Validation("slug and title are required")
	}
	if report.ReportID == "" {
		report.ReportID = uuid.NewString()
	}

	// Slug uniqueness is checked here, not left to the index, so the caller
	// gets a message distinguishing a collision from a store failure.
	existing, err := s.Repo.FindBySlug(ctx, report.Slug)
	if err != nil {
		s.Log.Error("slug precheck failed", zap.String("slug", report.Slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to create report", err)
	}
	if existing != nil {
		return nil, apperr.Duplicate(fmt.Sprintf("Report with slug %q already exists", report.Slug))
	}

	if err := s.Repo.Create(ctx, report); err != nil {
		s.Log.Error("create report failed", zap.String("slug", report.Slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to create report", err)
	}
	return report, nil
}

func (s *ReportServiceImpl) Update(ctx context.Context, slug string, fields map[string]interface{}) (*Report, error) {
	set := SanitizeUpdate(fields)
	if len(set) == 0 {
		return nil, apperr.Validation("No updatable fields supplied")
	}

	updated, err := s.Repo.Update(ctx, slug, set)
	if err != nil {
		s.Log.Error("update report failed", zap.String("slug", slug), zap.Error(err))
		return nil, apperr.Persistence("Failed to update report", err)
	}
	if updated == nil {
		return nil, apperr.NotFound("Report not found")
	}
	return updated, nil
}

func (s *ReportServiceImpl) Delete(ctx context.Context, slug string) error {
	deleted, err := s.Repo.Delete(ctx, slug)
	if err != nil {
		s.Log.Error("delete report failed", zap.String("slug", slug), zap.Error(err))
		return apperr.Persistence("Failed to delete report", err)
	}
	if !deleted {
		return apperr.NotFound("Report not found")
	}
	return nil
}
