package insights_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/insights"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
)

const insightsResponse = "```json\n" + `{
  "salaryRanges": [
    { "role": "Software Engineer", "min": 70000, "max": 150000, "median": 100000, "location": "United States" }
  ],
  "growthRate": 12.5,
  "demandLevel": "High",
  "topSkills": ["Go", "SQL"],
  "marketOutlook": "Positive",
  "keyTrends": ["Remote work"],
  "recommendedSkills": ["Cloud Computing"]
}` + "\n```"

type fakeProvider struct {
	response string
	calls    int
}

func (p *fakeProvider) Generate(context.Context, string) (string, error) {
	p.calls++
	return p.response, nil
}

type fakeInsightRepo struct {
	byIndustry map[string]*insights.IndustryInsight
}

func (r *fakeInsightRepo) FindByIndustry(industry string) (*insights.IndustryInsight, error) {
	return r.byIndustry[industry], nil
}

func (r *fakeInsightRepo) Create(i *insights.IndustryInsight) error {
	r.byIndustry[i.Industry] = i
	return nil
}

func (r *fakeInsightRepo) Update(i *insights.IndustryInsight) error {
	r.byIndustry[i.Industry] = i
	return nil
}

type fakeUserRepo struct {
	u *user.User
}

func (r *fakeUserRepo) Create(*user.User) error                   { return nil }
func (r *fakeUserRepo) FindByID(uuid.UUID) (*user.User, error)    { return r.u, nil }
func (r *fakeUserRepo) FindByGoogleID(string) (*user.User, error) { return nil, nil }
func (r *fakeUserRepo) FindByEmail(string) (*user.User, error)    { return nil, nil }
func (r *fakeUserRepo) Update(*user.User) error                   { return nil }

func TestGetForUser(t *testing.T) {
	userID := uuid.New()
	ctx := auth.ContextWithClaims(t.Context(), &auth.Claims{UserID: userID.String(), Role: "user"})

	newService := func(industry string) (insights.Service, *fakeProvider, *fakeInsightRepo) {
		provider := &fakeProvider{response: insightsResponse}
		repo := &fakeInsightRepo{byIndustry: make(map[string]*insights.IndustryInsight)}
		users := &fakeUserRepo{u: &user.User{ID: userID, Industry: industry}}
		return insights.NewService(repo, users, provider), provider, repo
	}

	t.Run("GeneratesOnFirstRequest", func(t *testing.T) {
		service, provider, repo := newService("fintech")

		insight, err := service.GetForUser(ctx)
		if err != nil {
			t.Fatalf("GetForUser failed: %v", err)
		}
		if insight.Industry != "fintech" {
			t.Errorf("Expected industry 'fintech', got %q", insight.Industry)
		}
		if insight.DemandLevel != "High" || insight.GrowthRate != 12.5 {
			t.Errorf("Payload fields not mapped: %+v", insight)
		}
		if provider.calls != 1 {
			t.Errorf("Expected one generation call, got %d", provider.calls)
		}
		if repo.byIndustry["fintech"] == nil {
			t.Error("Generated insights were not persisted")
		}
		if !insight.NextUpdate.After(insight.LastUpdated) {
			t.Error("NextUpdate should be after LastUpdated")
		}
	})

	t.Run("ServesCachedRow", func(t *testing.T) {
		service, provider, _ := newService("fintech")

		if _, err := service.GetForUser(ctx); err != nil {
			t.Fatalf("First GetForUser failed: %v", err)
		}
		if _, err := service.GetForUser(ctx); err != nil {
			t.Fatalf("Second GetForUser failed: %v", err)
		}
		if provider.calls != 1 {
			t.Errorf("Cached insights should not trigger regeneration, got %d calls", provider.calls)
		}
	})

	t.Run("RefreshesExpiredRow", func(t *testing.T) {
		service, provider, repo := newService("fintech")

		repo.byIndustry["fintech"] = &insights.IndustryInsight{
			ID:         uuid.New(),
			Industry:   "fintech",
			NextUpdate: time.Now().Add(-time.Hour),
		}

		if _, err := service.GetForUser(ctx); err != nil {
			t.Fatalf("GetForUser failed: %v", err)
		}
		if provider.calls != 1 {
			t.Errorf("Expired insights should be regenerated, got %d calls", provider.calls)
		}
	})

	t.Run("DefaultsIndustry", func(t *testing.T) {
		service, _, repo := newService("")

		if _, err := service.GetForUser(ctx); err != nil {
			t.Fatalf("GetForUser failed: %v", err)
		}
		if repo.byIndustry["Technology"] == nil {
			t.Error("Missing industry should fall back to Technology")
		}
	})

	t.Run("MissingClaims", func(t *testing.T) {
		service, _, _ := newService("fintech")

		if _, err := service.GetForUser(t.Context()); err == nil {
			t.Error("GetForUser should fail without claims")
		}
	})

	t.Run("MalformedClaimsSubject", func(t *testing.T) {
		service, _, _ := newService("fintech")
		badCtx := auth.ContextWithClaims(t.Context(), &auth.Claims{UserID: "not-a-uuid", Role: "user"})

		if _, err := service.GetForUser(badCtx); !errors.Is(err, insights.ErrUnauthorized) {
			t.Errorf("Expected ErrUnauthorized, got %v", err)
		}
	})
}
