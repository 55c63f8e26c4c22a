package coverletter

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/careerpilot-lambda/internal/config"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto GenerateCoverLetterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for cover letter generation")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	letter, err := h.service.Generate(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidRequest):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrUnauthorized):
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("Failed to generate cover letter")
			http.Error(w, "failed to generate cover letter", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, letter)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	letters, err := h.service.List(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to list cover letters")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, letters)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	letter, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, log, err, "Failed to fetch cover letter")
		return
	}

	config.JSON(w, http.StatusOK, letter)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto UpdateCoverLetterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for cover letter update")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	letter, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), dto)
	if err != nil {
		h.writeError(w, log, err, "Failed to update cover letter")
		return
	}

	config.JSON(w, http.StatusOK, letter)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeError(w, log, err, "Failed to delete cover letter")
		return
	}

	config.JSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *Handler) writeError(w http.ResponseWriter, log *logrus.Entry, err error, msg string) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "cover letter not found", http.StatusNotFound)
	case errors.Is(err, ErrInvalidID):
		http.Error(w, "invalid cover letter id", http.StatusBadRequest)
	case errors.Is(err, ErrUnauthorized):
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	default:
		log.WithError(err).Error(msg)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
