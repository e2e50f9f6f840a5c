package aiquiz

import (
	"context"

	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/abaakil35/Qiuz-App/internal/question"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(questions question.Service) *AIQuizContainer {
	ctx := context.Background()
	provider, err := NewGeminiProvider(ctx)
	if err != nil {
		config.Log.WithError(err).Warn("Gemini provider unavailable; AI question generation disabled")
	}
	service := NewService(provider, questions)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}
