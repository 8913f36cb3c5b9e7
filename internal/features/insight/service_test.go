package insight

import (
	"context"
	"testing"

	"go-insights/internal/common/apperr"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type MockInsightRepo struct {
	Insights       map[string]*Insight
	CapturedFilter bson.M
	SearchResults  []Insight
}

func NewMockInsightRepo() *MockInsightRepo {
	return &MockInsightRepo{Insights: map[string]*Insight{}}
}

func (m *MockInsightRepo) Create(ctx context.Context, insight *Insight) error {
	cp := *insight
	m.Insights[insight.Slug] = &cp
	return nil
}

func (m *MockInsightRepo) FindAll(ctx context.Context) ([]Insight, error) {
	out := []Insight{}
	for _, i := range m.Insights {
		out = append(out, *i)
	}
	return out, nil
}

func (m *MockInsightRepo) FindBySlug(ctx context.Context, slug string) (*Insight, error) {
	if i, ok := m.Insights[slug]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, nil
}

func (m *MockInsightRepo) FindByCategory(ctx context.Context, category string) ([]Insight, error) {
	out := []Insight{}
	for _, i := range m.Insights {
		if i.Category == category {
			out = append(out, *i)
		}
	}
	return out, nil
}

func (m *MockInsightRepo) Search(ctx context.Context, filter bson.M) ([]Insight, error) {
	m.CapturedFilter = filter
	return m.SearchResults, nil
}

func (m *MockInsightRepo) Update(ctx context.Context, slug string, set bson.M) (*Insight, error) {
	i, ok := m.Insights[slug]
	if !ok {
		return nil, nil
	}
	cp := *i
	return &cp, nil
}

func (m *MockInsightRepo) Delete(ctx context.Context, slug string) (bool, error) {
	if _, ok := m.Insights[slug]; !ok {
		return false, nil
	}
	delete(m.Insights, slug)
	return true, nil
}

func (m *MockInsightRepo) EnsureIndexes(ctx context.Context) error { return nil }

func TestSearchRequiresTerm(t *testing.T) {
	repo := NewMockInsightRepo()
	svc := NewInsightService(repo, zap.NewNop())

	for _, q := range []string{"", "   "} {
		_, err := svc.Search(context.Background(), q)
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("Search(%q) error = %v, want validation", q, err)
		}
		if repo.CapturedFilter != nil {
			t.Errorf("Search(%q) hit the store; missing q must be rejected first", q)
		}
	}
}

func TestSearchBuildsDisjunction(t *testing.T) {
	repo := NewMockInsightRepo()
	svc := NewInsightService(repo, zap.NewNop())

	if _, err := svc.Search(context.Background(), "supply chain"); err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	or, ok := repo.CapturedFilter["$or"].([]bson.M)
	if !ok {
		t.Fatalf("filter = %v, want $or disjunction", repo.CapturedFilter)
	}
	if len(or) != 3 {
		t.Errorf("disjunction over %d fields, want 3 (title, tags, category)", len(or))
	}
}

func TestCreateGeneratesInsightID(t *testing.T) {
	svc := NewInsightService(NewMockInsightRepo(), zap.NewNop())

	created, err := svc.Create(context.Background(), &Insight{Slug: "go-adoption", Title: "Go Adoption"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.InsightID == "" {
		t.Error("Create() should generate insightId when absent")
	}
}

func TestCreateDuplicateSlug(t *testing.T) {
	repo := NewMockInsightRepo()
	svc := NewInsightService(repo, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Create(ctx, &Insight{Slug: "dup", Title: "A"}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}
	if _, err := svc.Create(ctx, &Insight{Slug: "dup", Title: "B"}); !apperr.IsKind(err, apperr.KindDuplicateKey) {
		t.Fatalf("second Create() error = %v, want duplicate-key", err)
	}
}

func TestListByCategoryEmptyIsSuccess(t *testing.T) {
	svc := NewInsightService(NewMockInsightRepo(), zap.NewNop())

	insights, err := svc.ListByCategory(context.Background(), "nothing-here")
	if err != nil {
		t.Fatalf("ListByCategory() error = %v, want empty success", err)
	}
	if len(insights) != 0 {
		t.Errorf("got %d insights, want 0", len(insights))
	}
}

func TestUpdateMissingSlug(t *testing.T) {
	svc := NewInsightService(NewMockInsightRepo(), zap.NewNop())

	_, err := svc.Update(context.Background(), "ghost", map[string]interface{}{"title": "x"})
	if !apperr.IsNotFound(err) {
		t.Fatalf("Update() error = %v, want not-found", err)
	}
}
