package assessment_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/saulo-duarte/careerpilot-lambda/internal/assessment"
)

func ptr(s string) *string { return &s }

func makeQuestions(n int) []assessment.Question {
	questions := make([]assessment.Question, n)
	for i := range questions {
		questions[i] = assessment.Question{
			Question:      "What does ACID stand for?",
			Options:       []string{"opt A", "opt B", "opt C", "opt D"},
			CorrectAnswer: "A",
			Explanation:   "Atomicity, Consistency, Isolation, Durability.",
		}
	}
	return questions
}

// answersFor returns n answers of which the first correct are "A" (the
// correct label) and the rest "B".
func answersFor(n, correct int) []*string {
	answers := make([]*string, n)
	for i := 0; i < n; i++ {
		if i < correct {
			answers[i] = ptr("A")
		} else {
			answers[i] = ptr("B")
		}
	}
	return answers
}

func TestGradeScoring(t *testing.T) {
	t.Run("AllCorrect", func(t *testing.T) {
		result, err := assessment.Grade(makeQuestions(4), answersFor(4, 4))
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 100 {
			t.Errorf("Expected score 100, got %v", result.Score)
		}
		for i, q := range result.Questions {
			if !q.IsCorrect {
				t.Errorf("Question %d should be correct", i)
			}
		}
	})

	t.Run("RoundingOneThird", func(t *testing.T) {
		result, err := assessment.Grade(makeQuestions(3), answersFor(3, 1))
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 33 {
			t.Errorf("Expected score 33, got %v", result.Score)
		}
	})

	t.Run("RoundingTwoThirds", func(t *testing.T) {
		result, err := assessment.Grade(makeQuestions(3), answersFor(3, 2))
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 67 {
			t.Errorf("Expected score 67, got %v", result.Score)
		}
	})

	t.Run("ZeroQuestions", func(t *testing.T) {
		_, err := assessment.Grade(nil, nil)
		if !errors.Is(err, assessment.ErrInvalidAssessment) {
			t.Errorf("Expected ErrInvalidAssessment, got %v", err)
		}
	})
}

func TestGradeImprovementTipBands(t *testing.T) {
	cases := []struct {
		correct int
		want    string
	}{
		{49, "fundamental"},
		{50, "Good effort"},
		{74, "Good effort"},
		{75, "Excellent"},
	}

	for _, tc := range cases {
		result, err := assessment.Grade(makeQuestions(100), answersFor(100, tc.correct))
		if err != nil {
			t.Fatalf("Grade failed for %d correct: %v", tc.correct, err)
		}
		if result.Score != float64(tc.correct) {
			t.Fatalf("Expected score %d, got %v", tc.correct, result.Score)
		}
		if !strings.Contains(result.ImprovementTip, tc.want) {
			t.Errorf("Score %d: expected tip containing %q, got %q", tc.correct, tc.want, result.ImprovementTip)
		}
	}
}

func TestGradeUnanswered(t *testing.T) {
	questions := makeQuestions(4)

	t.Run("NullAndOutOfRangeLabels", func(t *testing.T) {
		answers := []*string{nil, ptr(""), ptr("E"), ptr("A")}
		result, err := assessment.Grade(questions, answers)
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}

		for i := 0; i < 3; i++ {
			q := result.Questions[i]
			if q.UserAnswer != "No answer provided" {
				t.Errorf("Question %d: expected 'No answer provided', got %q", i, q.UserAnswer)
			}
			if q.IsCorrect {
				t.Errorf("Question %d should not be correct", i)
			}
		}
		if !result.Questions[3].IsCorrect {
			t.Error("Question 3 should be correct")
		}
		if result.Score != 25 {
			t.Errorf("Expected score 25, got %v", result.Score)
		}
	})

	t.Run("AnswersShorterThanQuestions", func(t *testing.T) {
		result, err := assessment.Grade(questions, []*string{ptr("A")})
		if err != nil {
			t.Fatalf("Grade failed: %v", err)
		}
		if result.Score != 25 {
			t.Errorf("Expected score 25, got %v", result.Score)
		}
		for i := 1; i < 4; i++ {
			if result.Questions[i].UserAnswer != "No answer provided" {
				t.Errorf("Question %d should be unanswered, got %q", i, result.Questions[i].UserAnswer)
			}
		}
	})
}

func TestGradeAnnotations(t *testing.T) {
	questions := []assessment.Question{
		{
			Question:      "Which SQL clause filters grouped rows?",
			Options:       []string{"WHERE", "HAVING", "GROUP BY", "ORDER BY"},
			CorrectAnswer: "B",
			Explanation:   "HAVING filters after aggregation.",
		},
		{
			Question:      "Which index type suits equality lookups best?",
			Options:       []string{"Hash", "B-tree", "GiST", "BRIN"},
			CorrectAnswer: "A",
			Skills:        []string{"SQL", "Indexing"},
		},
	}

	result, err := assessment.Grade(questions, []*string{ptr("B"), ptr("C")})
	if err != nil {
		t.Fatalf("Grade failed: %v", err)
	}

	first := result.Questions[0]
	if !first.IsCorrect || first.UserAnswer != "HAVING" || first.CorrectAnswerText != "HAVING" {
		t.Errorf("Unexpected grading of first question: %+v", first)
	}

	second := result.Questions[1]
	if second.IsCorrect {
		t.Error("Second question should be incorrect")
	}
	if second.UserAnswer != "GiST" {
		t.Errorf("Expected user answer 'GiST', got %q", second.UserAnswer)
	}
	if second.CorrectAnswerText != "Hash" {
		t.Errorf("Expected correct answer text 'Hash', got %q", second.CorrectAnswerText)
	}
	if second.Explanation != "This question tests your knowledge of SQL, Indexing." {
		t.Errorf("Unexpected explanation fallback: %q", second.Explanation)
	}
	if result.Score != 50 {
		t.Errorf("Expected score 50, got %v", result.Score)
	}
}
