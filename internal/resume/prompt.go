package resume

import "fmt"

func BuildImprovePrompt(dto ImproveContentDTO, industry string) string {
	if dto.Type == "skills" {
		return fmt.Sprintf(`As an expert career advisor, generate a list of relevant technical skills based on the following topic: "%s"

Requirements:
1. Only return skill names, separated by commas
2. Focus on technical skills, tools, and technologies
3. Include both foundational and advanced skills
4. Prioritize in-demand skills in this field
5. Do not include explanations or descriptions
6. Do not include project names or general terms
7. Format as a single line of comma-separated values`, dto.Current)
	}

	return fmt.Sprintf(`As an expert resume writer, improve the following %s description for a %s professional.
Make it more impactful, quantifiable, and aligned with industry standards.
Current content: "%s"

Requirements:
1. Use action verbs
2. Include metrics and results where possible
3. Highlight relevant technical skills
4. Keep it concise but detailed
5. Focus on achievements over responsibilities
6. Use industry-specific keywords

Format the response as a single paragraph without any additional text or explanations.`, dto.Type, industry, dto.Current)
}
