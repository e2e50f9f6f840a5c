package container

import (
	"context"
	"log"
	"os"

	"github.com/abaakil35/Qiuz-App/internal/aiquiz"
	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/abaakil35/Qiuz-App/internal/quiz"
	"github.com/abaakil35/Qiuz-App/internal/user"
)

type Container struct {
	UserContainer     *user.UserContainer
	QuestionContainer *question.QuestionContainer
	QuizContainer     *quiz.QuizContainer
	AIQuizContainer   *aiquiz.AIQuizContainer
}

func New() *Container {
	config.Init()
	auth.Init()
	config.InitCrypto()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(&user.User{}, &question.Question{}, &quiz.QuizHistory{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	questionContainer := question.NewQuestionContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(config.DB, questionContainer.Service)
	aiQuizContainer := aiquiz.NewAIQuizContainer(questionContainer.Service)

	return &Container{
		UserContainer:     userContainer,
		QuestionContainer: questionContainer,
		QuizContainer:     quizContainer,
		AIQuizContainer:   aiQuizContainer,
	}
}
