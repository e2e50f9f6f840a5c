package quiz

import (
	"net/http"

	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Get("/start", h.StartQuiz)
	r.Post("/history", h.SubmitHistory)
	r.Get("/history", h.GetHistory)
	r.With(auth.AdminMiddleware).Get("/history/all", h.GetAllHistory)
	return r
}
