package user

import (
	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.With(auth.AuthMiddleware).Get("/me", h.GetUser)
	return r
}
