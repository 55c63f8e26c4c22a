package resume

type SaveResumeDTO struct {
	Content string `json:"content"`
}

type ImproveContentDTO struct {
	Current string `json:"current"`
	Type    string `json:"type"`
}

type ImprovedContentResponse struct {
	Content string `json:"content"`
}
