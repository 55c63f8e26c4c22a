package assessment

import (
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
	"gorm.io/gorm"
)

type AssessmentContainer struct {
	Handler *Handler
	Service Service
}

func NewAssessmentContainer(db *gorm.DB, provider llm.Provider, userRepo user.Repository) *AssessmentContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo, provider)
	handler := NewHandler(service)

	return &AssessmentContainer{
		Handler: handler,
		Service: service,
	}
}
