package report

import (
	"context"
	"testing"

	"go-insights/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// MockReportRepo captures calls so tests can verify what the service asked
// the store to do without a running Mongo.
type MockReportRepo struct {
	Reports        map[string]*Report
	CreateCalls    int
	CapturedFilter bson.M
	CapturedSet    bson.M
}

func NewMockReportRepo() *MockReportRepo {
	return &MockReportRepo{Reports: map[string]*Report{}}
}

func (m *MockReportRepo) Create(ctx context.Context, report *Report) error {
	m.CreateCalls++
	cp := *report
	m.Reports[report.Slug] = &cp
	return nil
}

func (m *MockReportRepo) FindAll(ctx context.Context) ([]Report, error) {
	out := []Report{}
	for _, r := range m.Reports {
		out = append(out, *r)
	}
	return out, nil
}

func (m *MockReportRepo) FindBySlug(ctx context.Context, slug string) (*Report, error) {
	if r, ok := m.Reports[slug]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (m *MockReportRepo) FindByIndustry(ctx context.Context, industry string) ([]Report, error) {
	out := []Report{}
	for _, r := range m.Reports {
		if r.Industry == industry {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (m *MockReportRepo) Search(ctx context.Context, filter bson.M) ([]Report, error) {
	m.CapturedFilter = filter
	return []Report{}, nil
}

func (m *MockReportRepo) Update(ctx context.Context, slug string, set bson.M) (*Report, error) {
	m.CapturedSet = set
	r, ok := m.Reports[slug]
	if !ok {
		return nil, nil
	}
	if title, ok := set["title"].(string); ok {
		r.Title = title
	}
	cp := *r
	return &cp, nil
}

func (m *MockReportRepo) Delete(ctx context.Context, slug string) (bool, error) {
	if _, ok := m.Reports[slug]; !ok {
		return false, nil
	}
	delete(m.Reports, slug)
	return true, nil
}

func (m *MockReportRepo) EnsureIndexes(ctx context.Context) error { return nil }

func newTestService(repo ReportRepository) ReportService {
	return NewReportService(repo, zap.NewNop())
}

func TestCreateThenGetRoundTrip(t *testing.T) {
	repo := NewMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	created, err := svc.Create(ctx, &Report{
		Slug:     "ai-market-2025",
		Title:    "AI Market",
		Industry: "Technology",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ReportID == "" {
		t.Error("Create() should generate a reportId when absent")
	}

	got, err := svc.GetBySlug(ctx, "ai-market-2025")
	if err != nil {
		t.Fatalf("GetBySlug() error = %v", err)
	}
	if got.Title != "AI Market" || got.Industry != "Technology" {
		t.Errorf("round-trip mismatch: got %+v", got)
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	repo := NewMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &Report{Slug: "dup", Title: "First"}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := svc.Create(ctx, &Report{Slug: "dup", Title: "Second"})
	if !apperr.IsKind(err, apperr.KindDuplicateKey) {
		t.Fatalf("second Create() error = %v, want duplicate-key", err)
	}
	if repo.CreateCalls != 1 {
		t.Errorf("store writes = %d, want 1 (no partial write on duplicate)", repo.CreateCalls)
	}
	if repo.Reports["dup"].Title != "First" {
		t.Error("store state changed after failed duplicate create")
	}
}

func TestCreateMissingRequiredFields(t *testing.T) {
	svc := newTestService(NewMockReportRepo())

	_, err := svc.Create(context.Background(), &Report{Slug: "no-title"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Fatalf("Create() error = %v, want validation", err)
	}
}

func TestSearchBlankTerm(t *testing.T) {
	repo := NewMockReportRepo()
	svc := newTestService(repo)

	for _, q := range []string{"", "   "} {
		reports, err := svc.Search(context.Background(), q)
		if err != nil {
			t.Fatalf("Search(%q) error = %v", q, err)
		}
		if len(reports) != 0 {
			t.Errorf("Search(%q) = %d results, want 0", q, len(reports))
		}
		if repo.CapturedFilter != nil {
			t.Errorf("Search(%q) hit the store; blank terms must short-circuit", q)
		}
	}
}

func TestListByIndustryEmptyIsNotFound(t *testing.T) {
	svc := newTestService(NewMockReportRepo())

	_, err := svc.ListByIndustry(context.Background(), "aerospace")
	if !apperr.IsNotFound(err) {
		t.Fatalf("ListByIndustry() error = %v, want not-found", err)
	}
	if apperr.ClientMessage(err) != "No reports found for industry: aerospace" {
		t.Errorf("message = %q, want it to name the industry", apperr.ClientMessage(err))
	}
}

func TestListByIndustryReturnsMatches(t *testing.T) {
	repo := NewMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	for _, slug := range []string{"a", "b"} {
		if _, err := svc.Create(ctx, &Report{Slug: slug, Title: slug, Industry: "tech"}); err != nil {
			t.Fatalf("Create(%s) error = %v", slug, err)
		}
	}

	reports, err := svc.ListByIndustry(ctx, "tech")
	if err != nil {
		t.Fatalf("ListByIndustry() error = %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("got %d reports, want 2", len(reports))
	}
}

func TestUpdateMissingSlugIsNotFound(t *testing.T) {
	repo := NewMockReportRepo()
	svc := newTestService(repo)

	_, err := svc.Update(context.Background(), "ghost", map[string]interface{}{"title": "x"})
	if !apperr.IsNotFound(err) {
		t.Fatalf("Update() error = %v, want not-found", err)
	}
	if len(repo.Reports) != 0 {
		t.Error("Update() on a missing slug must not upsert")
	}
}

func TestUpdateStripsImmutableFields(t *testing.T) {
	repo := NewMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &Report{Slug: "keep", Title: "Old"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := svc.Update(ctx, "keep", map[string]interface{}{
		"title": "New",
		"slug":  "evil",
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Title != "New" {
		t.Errorf("Title = %q, want New", updated.Title)
	}
	if _, ok := repo.CapturedSet["slug"]; ok {
		t.Error("slug reached the $set document")
	}
}

func TestDeleteLifecycle(t *testing.T) {
	repo := NewMockReportRepo()
	svc := newTestService(repo)
	ctx := context.Background()

	if _, err := svc.Create(ctx, &Report{Slug: "gone", Title: "T"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := svc.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.GetBySlug(ctx, "gone"); !apperr.IsNotFound(err) {
		t.Errorf("GetBySlug() after delete error = %v, want not-found", err)
	}
	if err := svc.Delete(ctx, "gone"); !apperr.IsNotFound(err) {
		t.Errorf("second Delete() error = %v, want not-found", err)
	}
}
