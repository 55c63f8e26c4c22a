package chat

import "github.com/saulo-duarte/careerpilot-lambda/internal/llm"

type ChatContainer struct {
	Handler *Handler
}

func NewChatContainer(provider llm.Provider) *ChatContainer {
	service := NewService(provider)
	handler := NewHandler(service)

	return &ChatContainer{
		Handler: handler,
	}
}
