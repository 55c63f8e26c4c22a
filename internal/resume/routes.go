package resume

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.GetResume)
	r.Put("/", h.SaveResume)
	r.Post("/improve", h.ImproveContent)
	return r
}
