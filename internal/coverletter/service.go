package coverletter

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
	ErrNotFound       = errors.New("cover letter not found")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrInvalidID      = errors.New("invalid cover letter id")
	ErrInvalidRequest = errors.New("company name and job title are required")
)

type Service interface {
	Generate(ctx context.Context, dto GenerateCoverLetterDTO) (*CoverLetter, error)
	List(ctx context.Context) ([]*CoverLetter, error)
	Get(ctx context.Context, id string) (*CoverLetter, error)
	Update(ctx context.Context, id string, dto UpdateCoverLetterDTO) (*CoverLetter, error)
	Delete(ctx context.Context, id string) error
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

func (s *service) Generate(ctx context.Context, dto GenerateCoverLetterDTO) (*CoverLetter, error) {
	log := config.WithContext(ctx)

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dto.CompanyName) == "" || strings.TrimSpace(dto.JobTitle) == "" {
		return nil, ErrInvalidRequest
	}

	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}

	content, err := s.provider.Generate(ctx, BuildCoverLetterPrompt(dto, u))
	if err != nil {
		log.WithError(err).Error("Cover letter generation failed")
		return nil, err
	}

	letter := &CoverLetter{
		ID:             uuid.New(),
		UserID:         userID,
		CompanyName:    dto.CompanyName,
		JobTitle:       dto.JobTitle,
		JobDescription: dto.JobDescription,
		Content:        strings.TrimSpace(content),
		Status:         "completed",
	}
	if err := s.repo.Create(letter); err != nil {
		log.WithError(err).Error("Failed to store cover letter")
		return nil, err
	}

	log.WithField("cover_letter_id", letter.ID).Info("Cover letter created successfully")
	return letter, nil
}

func (s *service) List(ctx context.Context) ([]*CoverLetter, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByUser(userID)
}

func (s *service) Get(ctx context.Context, id string) (*CoverLetter, error) {
	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	letterID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	letter, err := s.repo.FindByIDAndUser(letterID, userID)
	if err != nil {
		return nil, err
	}
	if letter == nil {
		return nil, ErrNotFound
	}
	return letter, nil
}

func (s *service) Update(ctx context.Context, id string, dto UpdateCoverLetterDTO) (*CoverLetter, error) {
	log := config.WithContext(ctx)

	letter, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if dto.Content != nil {
		letter.Content = *dto.Content
	}

	if err := s.repo.Update(letter); err != nil {
		log.WithError(err).Error("Failed to update cover letter")
		return nil, err
	}
	return letter, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	letterID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.repo.Delete(letterID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to delete cover letter")
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

func (s *service) userIDFromContext(ctx context.Context) (uuid.UUID, error) {
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
