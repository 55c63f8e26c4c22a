package assessment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/saulo-duarte/careerpilot-lambda/internal/auth"
	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
	"gorm.io/datatypes"
)

var (
	ErrNotFound          = errors.New("assessment not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidID         = errors.New("invalid assessment id")
	ErrInvalidRequest    = errors.New("invalid assessment request")
	ErrInvalidAssessment = errors.New("assessment has no questions")
	ErrParseFailure      = errors.New("failed to parse assessment content")
)

type Service interface {
	Generate(ctx context.Context, dto GenerateAssessmentDTO) (*Assessment, error)
	Submit(ctx context.Context, id string, answers []*string) (*Assessment, error)
	Get(ctx context.Context, id string) (*Assessment, error)
	List(ctx context.Context) ([]*Assessment, error)
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

func (s *service) Generate(ctx context.Context, dto GenerateAssessmentDTO) (*Assessment, error) {
	log := config.WithContext(ctx)

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if dto.QuestionCount <= 0 || strings.TrimSpace(dto.Topic) == "" || strings.TrimSpace(dto.Difficulty) == "" {
		return nil, ErrInvalidRequest
	}

	u, err := s.userRepo.FindByID(userID)
	if err != nil {
		log.WithError(err).Error("Failed to load user profile for assessment")
		return nil, err
	}
	if u == nil {
		return nil, ErrUnauthorized
	}

	prompt := BuildAssessmentPrompt(dto, u.Industry, u.Experience)

	raw, err := s.provider.Generate(ctx, prompt)
	if err != nil {
		log.WithError(err).Error("Assessment generation failed")
		return nil, err
	}

	questions, err := ParseQuestions(raw, dto.QuestionCount)
	if err != nil {
		log.WithError(err).Error("Assessment response rejected by parser")
		return nil, err
	}

	data, err := json.Marshal(questions)
	if err != nil {
		return nil, err
	}

	a := &Assessment{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  dto.Topic,
		Questions: datatypes.JSON(data),
		QuizScore: 0,
	}
	if err := s.repo.Create(a); err != nil {
		log.WithError(err).Error("Failed to store assessment")
		return nil, err
	}

	log.WithField("assessment_id", a.ID).Infof("Assessment created with %d questions", len(questions))
	return a, nil
}

func (s *service) Submit(ctx context.Context, id string, answers []*string) (*Assessment, error) {
	log := config.WithContext(ctx)

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	assessmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	a, err := s.repo.FindByIDAndUser(assessmentID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch assessment")
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}

	// Graded questions carry extra fields, so regrading a resubmission
	// decodes back to the same base questions.
	var questions []Question
	if err := json.Unmarshal(a.Questions, &questions); err != nil {
		log.WithError(err).Error("Stored assessment questions are unreadable")
		return nil, ErrInvalidAssessment
	}

	result, err := Grade(questions, answers)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(result.Questions)
	if err != nil {
		return nil, err
	}

	a.Questions = datatypes.JSON(data)
	a.QuizScore = result.Score
	tip := result.ImprovementTip
	a.ImprovementTip = &tip

	if err := s.repo.Update(a); err != nil {
		log.WithError(err).Error("Failed to store graded assessment")
		return nil, err
	}

	log.WithField("assessment_id", a.ID).Infof("Assessment graded with score %.0f", a.QuizScore)
	return a, nil
}

func (s *service) Get(ctx context.Context, id string) (*Assessment, error) {
	log := config.WithContext(ctx)

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}
	assessmentID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	a, err := s.repo.FindByIDAndUser(assessmentID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch assessment")
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *service) List(ctx context.Context) ([]*Assessment, error) {
	log := config.WithContext(ctx)

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return nil, err
	}

	assessments, err := s.repo.ListByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list assessments")
		return nil, err
	}
	return assessments, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	userID, err := s.userIDFromContext(ctx)
	if err != nil {
		return err
	}
	assessmentID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	deleted, err := s.repo.Delete(assessmentID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to delete assessment")
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	log.WithField("assessment_id", id).Info("Assessment deleted successfully")
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
