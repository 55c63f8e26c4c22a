package assessment

import (
	"fmt"
	"math"
	"strings"
)

const noAnswerText = "No answer provided"

const (
	tipFundamentals = "Focus on reviewing fundamental concepts in this area. Consider taking additional practice assessments."
	tipGoodEffort   = "Good effort! Review the questions you missed and practice similar problems."
	tipExcellent    = "Excellent work! Continue practicing to maintain your skills."
)

type GradeResult struct {
	Score          float64
	ImprovementTip string
	Questions      []GradedQuestion
}

// Grade scores submitted answer labels against the stored questions. Answers
// are index-aligned with questions; missing or null entries count as
// unanswered. Correctness is label equality, independent of whether the
// option text could be resolved.
func Grade(questions []Question, answers []*string) (*GradeResult, error) {
	if len(questions) == 0 {
		return nil, ErrInvalidAssessment
	}

	answerAt := func(i int) string {
		if i < len(answers) && answers[i] != nil {
			return *answers[i]
		}
		return ""
	}

	correct := 0
	for i := range questions {
		if answerAt(i) == questions[i].CorrectAnswer {
			correct++
		}
	}
	score := math.Round(float64(correct) / float64(len(questions)) * 100)

	graded := make([]GradedQuestion, 0, len(questions))
	for i, q := range questions {
		label := answerAt(i)

		userAnswer := noAnswerText
		if idx := answerIndex(label); idx >= 0 && idx < len(q.Options) {
			userAnswer = q.Options[idx]
		}

		correctAnswerText := ""
		if idx := answerIndex(q.CorrectAnswer); idx >= 0 && idx < len(q.Options) {
			correctAnswerText = q.Options[idx]
		}

		if q.Explanation == "" {
			q.Explanation = explanationFallback(q.Skills)
		}

		graded = append(graded, GradedQuestion{
			Question:          q,
			UserAnswer:        userAnswer,
			CorrectAnswerText: correctAnswerText,
			IsCorrect:         label == q.CorrectAnswer,
		})
	}

	return &GradeResult{
		Score:          score,
		ImprovementTip: improvementTip(score),
		Questions:      graded,
	}, nil
}

func improvementTip(score float64) string {
	switch {
	case score < 50:
		return tipFundamentals
	case score < 75:
		return tipGoodEffort
	default:
		return tipExcellent
	}
}

func explanationFallback(skills []string) string {
	if len(skills) == 0 {
		return "This question tests your knowledge of relevant skills."
	}
	return fmt.Sprintf("This question tests your knowledge of %s.", strings.Join(skills, ", "))
}
