package user

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/me", h.GetUser)
	r.Put("/me", h.UpdateUser)
	return r
}
