package insights

import (
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

func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	insight, err := h.service.GetForUser(r.Context())
	if err != nil {
		if errors.Is(err, ErrUnauthorized) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		log.WithError(err).Error("Failed to get industry insights")
		http.Error(w, "failed to get industry insights", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, insight)
}
