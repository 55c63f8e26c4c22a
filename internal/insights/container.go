package insights

import (
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
	"gorm.io/gorm"
)

type InsightsContainer struct {
	Handler *Handler
	Service Service
}

func NewInsightsContainer(db *gorm.DB, provider llm.Provider, userRepo user.Repository) *InsightsContainer {
	repo := NewRepository(db)
	service := NewService(repo, userRepo, provider)
	handler := NewHandler(service)

	return &InsightsContainer{
		Handler: handler,
		Service: service,
	}
}
