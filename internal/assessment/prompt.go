package assessment

import "fmt"

// BuildAssessmentPrompt renders the generation instructions for a technical
// assessment tailored to the user's industry and experience.
func BuildAssessmentPrompt(dto GenerateAssessmentDTO, industry string, experience int) string {
	if industry == "" {
		industry = "technology"
	}

	return fmt.Sprintf(`As an expert interviewer and career advisor, generate a technical assessment for a %s professional with %d years of experience.

Assessment Details:
Topic: %s
Difficulty: %s
Number of Questions: %d

Requirements:
1. Generate exactly %d multiple choice questions
2. Include a mix of question types (technical, behavioral, situational)
3. Tailor questions to %s difficulty level
4. Focus on %s within the context of %s
5. For each question, provide:
   - The question text
   - Four answer options (A, B, C, D)
   - The correct answer (one of A, B, C, or D)
   - An explanation for the correct answer
   - Difficulty rating (1-5)
   - Estimated time to answer (in minutes)
   - Key skills being assessed
6. Format the response as JSON with the following structure:
   {
     "questions": [
       {
         "question": "Question text",
         "options": ["Option A", "Option B", "Option C", "Option D"],
         "correctAnswer": "A",
         "explanation": "Explanation of why the correct answer is right",
         "difficulty": 1,
         "timeToAnswer": "2",
         "skills": ["skill1", "skill2"]
       }
     ]
   }
7. Do not include any additional text, explanations, or markdown formatting
8. Make sure each question has exactly one correct answer
9. Ensure the options are plausible but only one is correct`,
		industry, experience,
		dto.Topic, dto.Difficulty, dto.QuestionCount,
		dto.QuestionCount, dto.Difficulty, dto.Topic, industry,
	)
}
