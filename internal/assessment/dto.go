package assessment

type GenerateAssessmentDTO struct {
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	QuestionCount int    `json:"questionCount"`
}

// SubmitAnswersDTO carries one label per question, index-aligned with the
// stored questions. Entries may be null for skipped questions.
type SubmitAnswersDTO struct {
	Answers []*string `json:"answers"`
}
