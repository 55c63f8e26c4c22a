package assessment

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/careerpilot-lambda/internal/llm"
)

type questionsPayload struct {
	Questions []Question `json:"questions"`
}

// ParseQuestions decodes the raw model response into validated questions.
// When expected > 0 the question count must match it exactly. Any violation
// is a parse failure; nothing partial is ever returned.
func ParseQuestions(raw string, expected int) ([]Question, error) {
	clean := llm.StripFences(raw)

	var payload questionsPayload
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailure, err)
	}

	if len(payload.Questions) == 0 {
		return nil, fmt.Errorf("%w: response contains no questions", ErrParseFailure)
	}
	if expected > 0 && len(payload.Questions) != expected {
		return nil, fmt.Errorf("%w: expected %d questions, got %d", ErrParseFailure, expected, len(payload.Questions))
	}

	for i, q := range payload.Questions {
		if err := validateQuestion(q); err != nil {
			return nil, fmt.Errorf("%w: question %d: %v", ErrParseFailure, i+1, err)
		}
	}

	return payload.Questions, nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return errors.New("missing question text")
	}
	if len(q.Options) != optionCount {
		return fmt.Errorf("expected %d options, got %d", optionCount, len(q.Options))
	}
	if idx := answerIndex(q.CorrectAnswer); idx < 0 || idx >= optionCount {
		return fmt.Errorf("correct answer %q is not one of A-D", q.CorrectAnswer)
	}
	return nil
}

const optionCount = 4

// answerIndex maps a label to a zero-based option index: "A" -> 0 ... "D" -> 3.
// Anything outside that range (including an empty label) yields an index the
// caller must treat as unanswered.
func answerIndex(label string) int {
	if label == "" {
		return -1
	}
	return int(label[0]) - 'A'
}
