package coverletter

type GenerateCoverLetterDTO struct {
	CompanyName    string `json:"companyName"`
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
	AdditionalInfo string `json:"additionalInfo"`
}

type UpdateCoverLetterDTO struct {
	Content *string `json:"content"`
}
