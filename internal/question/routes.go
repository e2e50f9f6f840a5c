package question

import (
	"net/http"

	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/go-chi/chi/v5"
)

// Routes covers the admin authoring surface. Every operation here mutates
// or exposes the answer key, so the whole subtree sits behind the admin gate.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)
	r.Use(auth.AdminMiddleware)

	r.Get("/", h.ListQuestions)
	r.Post("/", h.CreateQuestion)
	r.Put("/{id}", h.UpdateQuestion)
	r.Delete("/{id}", h.DeleteQuestion)
	return r
}
