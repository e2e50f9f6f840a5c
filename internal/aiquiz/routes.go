package aiquiz

import (
	"net/http"

	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)
	r.Use(auth.AdminMiddleware)

	r.Post("/", h.GenerateQuestions)
	return r
}
