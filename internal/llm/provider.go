package llm

import (
	"context"
	"errors"
	"strings"
)

var ErrGenerationFailure = errors.New("generation failure")

// Provider abstracts the text-generation backend so services can be
// exercised with fakes instead of a live model.
type Provider interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// StripFences removes markdown code-fence markers that models often wrap
// around JSON output.
func StripFences(raw string) string {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	return strings.TrimSpace(clean)
}
