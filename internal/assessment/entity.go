package assessment

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Assessment struct {
	ID             uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Category       string         `gorm:"type:text;not null" json:"category"`
	Questions      datatypes.JSON `gorm:"type:jsonb;not null" json:"questions"`
	QuizScore      float64        `gorm:"not null;default:0" json:"quiz_score"`
	ImprovementTip *string        `gorm:"type:text" json:"improvement_tip,omitempty"`
	CreatedAt      time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
}

// Question is one generated multiple-choice item. Options are positional:
// label "A" selects Options[0], "D" selects Options[3].
type Question struct {
	Question      string          `json:"question"`
	Options       []string        `json:"options"`
	CorrectAnswer string          `json:"correctAnswer"`
	Explanation   string          `json:"explanation"`
	Difficulty    int             `json:"difficulty,omitempty"`
	TimeToAnswer  json.RawMessage `json:"timeToAnswer,omitempty"`
	Skills        []string        `json:"skills,omitempty"`
}

// GradedQuestion is a Question annotated with the grading outcome.
type GradedQuestion struct {
	Question
	UserAnswer        string `json:"userAnswer"`
	CorrectAnswerText string `json:"correctAnswerText"`
	IsCorrect         bool   `json:"isCorrect"`
}
