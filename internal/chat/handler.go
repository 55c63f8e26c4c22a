package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GetAdvice(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ChatRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for chat")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	reply, err := h.service.GetAdvice(r.Context(), dto.Messages)
	if err != nil {
		if errors.Is(err, ErrEmptyConversation) {
			http.Error(w, "conversation history required", http.StatusBadRequest)
			return
		}
		log.WithError(err).Error("Failed to get response from AI")
		http.Error(w, "failed to get response", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, ChatResponseDTO{Reply: reply})
}
