package chat

type Message struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type ChatRequestDTO struct {
	Messages []Message `json:"messages"`
}

type ChatResponseDTO struct {
	Reply string `json:"reply"`
}
