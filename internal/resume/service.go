package resume

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
)

var (
	ErrNotFound       = errors.New("resume not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidContent = errors.New("resume content required")
)

type Service interface {
	Save(ctx context.Context, content string) (*Resume, error)
	Get(ctx context.Context) (*Resume, error)
	Improve(ctx context.Context, dto ImproveContentDTO) (string, error)
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

func (s *service) Save(ctx context.Context, content string) (*Resume, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidContent
	}

	resume, err := s.repo.FindByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch resume")
		return nil, err
	}

	if resume == nil {
		resume = &Resume{
			ID:      uuid.New(),
			UserID:  userID,
			Content: content,
		}
		if err := s.repo.Create(resume); err != nil {
			log.WithError(err).Error("Failed to create resume")
			return nil, err
		}
		log.WithField("resume_id", resume.ID).Info("Resume created successfully")
		return resume, nil
	}

	resume.Content = content
	if err := s.repo.Update(resume); err != nil {
		log.WithError(err).Error("Failed to update resume")
		return nil, err
	}
	log.WithField("resume_id", resume.ID).Info("Resume updated successfully")
	return resume, nil
}

func (s *service) Get(ctx context.Context) (*Resume, error) {
	userID, err := userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	resume, err := s.repo.FindByUser(userID)
	if err != nil {
		return nil, err
	}
	if resume == nil {
		return nil, ErrNotFound
	}
	return resume, nil
}

func (s *service) Improve(ctx context.Context, dto ImproveContentDTO) (string, error) {
	log := config.WithContext(ctx)

	userID, err := userIDFromContext(ctx)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(dto.Current) == "" {
		return "", ErrInvalidContent
	}

	industry := ""
	if u, err := s.userRepo.FindByID(userID); err == nil && u != nil {
		industry = u.Industry
	}
	if industry == "" {
		industry = "technology"
	}

	improved, err := s.provider.Generate(ctx, BuildImprovePrompt(dto, industry))
	if err != nil {
		log.WithError(err).Error("Failed to improve resume content")
		return "", err
	}

	return strings.TrimSpace(improved), nil
}

func userIDFromContext(ctx context.Context) (uuid.UUID, error) {
	claims, err := auth.GetUserClaimsFromContext(ctx)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}
