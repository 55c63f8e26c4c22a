package assessment

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateAssessmentDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for assessment generation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	a, err := h.service.Generate(r.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidRequest) {
			http.Error(w, "topic, difficulty and a positive question count are required", http.StatusBadRequest)
			return
		}
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to generate assessment")
		http.Error(w, "failed to generate assessment", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusCreated, a)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "assessment id required", http.StatusBadRequest)
		return
	}

	var dto SubmitAnswersDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for answer submission")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	a, err := h.service.Submit(r.Context(), id, dto.Answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "assessment not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidID), errors.Is(err, ErrInvalidAssessment):
			http.Error(w, "invalid assessment", http.StatusBadRequest)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to submit assessment answers")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, a)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	a, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "assessment not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid assessment id", http.StatusBadRequest)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to fetch assessment")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, a)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	assessments, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to list assessments")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, assessments)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			http.Error(w, "assessment not found", http.StatusNotFound)
		case errors.Is(err, ErrInvalidID):
			http.Error(w, "invalid assessment id", http.StatusBadRequest)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to delete assessment")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"success": true})
}
