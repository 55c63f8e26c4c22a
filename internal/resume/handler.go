package resume

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

func (h *Handler) SaveResume(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto SaveResumeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for resume save")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resume, err := h.service.Save(r.Context(), dto.Content)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidContent):
			http.Error(w, "resume content required", http.StatusBadRequest)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to save resume")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, resume)
}

func (h *Handler) GetResume(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	resume, err := h.service.Get(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "resume not found", http.StatusNotFound)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to get resume")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, resume)
}

func (h *Handler) ImproveContent(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto ImproveContentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for content improvement")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	improved, err := h.service.Improve(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidContent):
			http.Error(w, "current content required", http.StatusBadRequest)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to improve resume content")
			http.Error(w, "failed to improve content", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, ImprovedContentResponse{Content: improved})
}
