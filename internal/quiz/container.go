package quiz

import (
	"github.com/abaakil35/Qiuz-App/internal/question"
	"gorm.io/gorm"
)

type QuizContainer struct {
	Handler *Handler
	Service Service
}

func NewQuizContainer(db *gorm.DB, questions question.Service) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, questions)
	handler := NewHandler(service)

	return &QuizContainer{
		Handler: handler,
		Service: service,
	}
}
