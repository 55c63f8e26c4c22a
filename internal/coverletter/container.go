package coverletter

import (
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
	"gorm.io/gorm"
)

type CoverLetterContainer struct {
	Handler *Handler
	Service Service
}

func NewCoverLetterContainer(db *gorm.DB, provider llm.Provider, userRepo user.Repository) *CoverLetterContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo, provider)
	handler := NewHandler(service)

	return &CoverLetterContainer{
		Handler: handler,
		Service: service,
	}
}
