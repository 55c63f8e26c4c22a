package chat

import (
	"context"
	"errors"
	"strings"

	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
)

var ErrEmptyConversation = errors.New("conversation history required")

type Service interface {
	GetAdvice(ctx context.Context, messages []Message) (string, error)
}

type service struct {
	provider llm.Provider
}

func NewService(provider llm.Provider) Service {
	return &service{provider: provider}
}

func (s *service) GetAdvice(ctx context.Context, messages []Message) (string, error) {
	log := config.WithContext(ctx)

	if len(messages) == 0 {
		return "", ErrEmptyConversation
	}

	reply, err := s.provider.Generate(ctx, BuildChatPrompt(messages))
	if err != nil {
		log.WithError(err).Error("Failed to get chat advice")
		return "", err
	}

	return strings.TrimSpace(reply), nil
}
