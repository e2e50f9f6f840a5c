package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/abaakil35/Qiuz-App/internal/aiquiz"
	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/abaakil35/Qiuz-App/internal/middlewares"
	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/abaakil35/Qiuz-App/internal/quiz"
	"github.com/abaakil35/Qiuz-App/internal/user"
)

type RouterConfig struct {
	UserHandler     *user.Handler
	QuestionHandler *question.Handler
	QuizHandler     *quiz.Handler
	AIQuizHandler   *aiquiz.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/google", cfg.UserHandler.GoogleLogin)
		r.Post("/logout", auth.NewHandler().Logout)
	})

	r.Mount("/users", user.Routes(cfg.UserHandler))
	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/quiz", quiz.Routes(cfg.QuizHandler))
	r.Mount("/ai-quiz", aiquiz.Routes(cfg.AIQuizHandler))

	return r
}
