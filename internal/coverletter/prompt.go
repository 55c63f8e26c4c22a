package coverletter

import (
	"fmt"

	"github.com/saulo-duarte/careerpilot-lambda/internal/user"
)

func BuildCoverLetterPrompt(dto GenerateCoverLetterDTO, u *user.User) string {
	bio := u.Bio
	if bio == "" {
		bio = "Not provided"
	}
	skills := u.Skills
	if skills == "" {
		skills = "Not provided"
	}
	additionalInfo := dto.AdditionalInfo
	if additionalInfo == "" {
		additionalInfo = "None provided"
	}

	return fmt.Sprintf(`As an expert career advisor and cover letter writer, create a compelling cover letter for a %s professional with %d years of experience.

Applicant Information:
Name: %s
Industry: %s
Experience: %d years
Bio: %s
Skills: %s

Job Details:
Company: %s
Position: %s
Job Description: %s
Additional Information: %s

Requirements:
1. Address the hiring manager professionally
2. Highlight relevant skills and experiences that match the job description
3. Show enthusiasm for the company and position
4. Include a strong opening that captures attention
5. Provide specific examples of achievements
6. Conclude with a call to action for an interview
7. Keep it concise (3-4 paragraphs)
8. Use a professional tone
9. Do not include any markdown or formatting
10. End with a professional closing (e.g., "Sincerely," followed by the applicant's name)

Format the response as plain text without any additional explanations or notes.`,
		u.Industry, u.Experience,
		u.Name, u.Industry, u.Experience, bio, skills,
		dto.CompanyName, dto.JobTitle, dto.JobDescription, additionalInfo,
	)
}
