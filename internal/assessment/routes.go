package assessment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/", h.Generate)
	r.Get("/", h.List)
	r.Get("/{id}", h.Get)
	r.Post("/{id}/submit", h.Submit)
	r.Delete("/{id}", h.Delete)
	return r
}
