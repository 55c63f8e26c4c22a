package insights

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrParseFailure = errors.New("failed to parse industry insights")
)

const (
	defaultIndustry = "Technology"
	refreshInterval = 7 * 24 * time.Hour
)

type Service interface {
	GetForUser(ctx context.Context) (*IndustryInsight, error)
	EnsureForIndustry(ctx context.Context, industry string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	provider llm.Provider
}

func NewService(repo Repository, userRepo user.Repository, provider llm.Provider) Service {
	return &service{
		repo:     repo,
		userRepo: userRepo,
		provider: provider,
	}
}

func (s *service) GetForUser(ctx context.Context) (*IndustryInsight, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrUnauthorized
	}

	industry := defaultIndustry
	if u, err := s.userRepo.FindByID(userID); err != nil {
		return nil, err
	} else if u != nil && u.Industry != "" {
		industry = u.Industry
	}

	return s.getOrGenerate(ctx, industry)
}

func (s *service) EnsureForIndustry(ctx context.Context, industry string) error {
	_, err := s.getOrGenerate(ctx, industry)
	return err
}

func (s *service) getOrGenerate(ctx context.Context, industry string) (*IndustryInsight, error) {
	log := config.WithContext(ctx)

	insight, err := s.repo.FindByIndustry(industry)
	if err != nil {
		log.WithError(err).Error("Failed to fetch industry insights")
		return nil, err
	}
	if insight != nil && time.Now().Before(insight.NextUpdate) {
		return insight, nil
	}

	payload, err := s.generate(ctx, industry)
	if err != nil {
		// A stale row still beats an error for the caller.
		if insight != nil {
			log.WithError(err).Warnf("Serving stale insights for industry %s", industry)
			return insight, nil
		}
		return nil, err
	}

	now := time.Now()
	fresh, err := toEntity(industry, payload, now)
	if err != nil {
		return nil, err
	}

	if insight == nil {
		fresh.ID = uuid.New()
		if err := s.repo.Create(fresh); err != nil {
			log.WithError(err).Error("Failed to store industry insights")
			return nil, err
		}
		log.Infof("Industry insights created for %s", industry)
		return fresh, nil
	}

	fresh.ID = insight.ID
	if err := s.repo.Update(fresh); err != nil {
		log.WithError(err).Error("Failed to refresh industry insights")
		return nil, err
	}
	log.Infof("Industry insights refreshed for %s", industry)
	return fresh, nil
}

func (s *service) generate(ctx context.Context, industry string) (*insightsPayload, error) {
	raw, err := s.provider.Generate(ctx, BuildInsightsPrompt(industry))
	if err != nil {
		return nil, err
	}

	var payload insightsPayload
	if err := json.Unmarshal([]byte(llm.StripFences(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return &payload, nil
}

func toEntity(industry string, payload *insightsPayload, now time.Time) (*IndustryInsight, error) {
	salaryRanges, err := json.Marshal(payload.SalaryRanges)
	if err != nil {
		return nil, err
	}
	topSkills, err := json.Marshal(payload.TopSkills)
	if err != nil {
		return nil, err
	}
	keyTrends, err := json.Marshal(payload.KeyTrends)
	if err != nil {
		return nil, err
	}
	recommendedSkills, err := json.Marshal(payload.RecommendedSkills)
	if err != nil {
		return nil, err
	}

	return &IndustryInsight{
		Industry:          industry,
		SalaryRanges:      salaryRanges,
		GrowthRate:        payload.GrowthRate,
		DemandLevel:       payload.DemandLevel,
		TopSkills:         topSkills,
		MarketOutlook:     payload.MarketOutlook,
		KeyTrends:         keyTrends,
		RecommendedSkills: recommendedSkills,
		LastUpdated:       now,
		NextUpdate:        now.Add(refreshInterval),
	}, nil
}
