package resume

import (
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
	"gorm.io/gorm"
)

type ResumeContainer struct {
	Handler *Handler
	Service Service
}

func NewResumeContainer(db *gorm.DB, provider llm.Provider, userRepo user.Repository) *ResumeContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo, provider)
	handler := NewHandler(service)

	return &ResumeContainer{
		Handler: handler,
		Service: service,
	}
}
