package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"google.golang.org/genai"
)

const (
	geminiModel       = "gemini-2.5-flash"
	generationTimeout = 60 * time.Second
)

type geminiProvider struct {
	client *genai.Client
}

func NewGeminiProvider(ctx context.Context) (Provider, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &geminiProvider{client: client}, nil
}

func (p *geminiProvider) Generate(ctx context.Context, prompt string) (string, error) {
	log := config.WithContext(ctx)

	ctx, cancel := context.WithTimeout(ctx, generationTimeout)
	defer cancel()

	result, err := p.client.Models.GenerateContent(ctx, geminiModel, genai.Text(prompt), nil)
	if err != nil {
		log.WithError(err).Error("Gemini content generation failed")
		return "", fmt.Errorf("%w: %v", ErrGenerationFailure, err)
	}

	raw := result.Text()
	if raw == "" {
		return "", fmt.Errorf("%w: empty response from model", ErrGenerationFailure)
	}

	log.Debugf("Raw model response:\n%s", raw)
	return raw, nil
}
