package aiquiz

import (
	"context"
	"errors"

	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/google/uuid"
)

const defaultCount = 5

var ErrProviderUnavailable = errors.New("question generation provider is not configured")

type Service interface {
	GenerateQuestions(ctx context.Context, createdBy uuid.UUID, req GenerateRequest) ([]*question.Question, error)
}

type service struct {
	provider  Provider
	questions question.Service
}

func NewService(provider Provider, questions question.Service) Service {
	return &service{provider: provider, questions: questions}
}

// GenerateQuestions asks the model for candidates and persists each one
// through the question service, so generated content passes the same write
// validation as hand-authored questions.
func (s *service) GenerateQuestions(ctx context.Context, createdBy uuid.UUID, req GenerateRequest) ([]*question.Question, error) {
	log := config.WithContext(ctx)

	if s.provider == nil {
		return nil, ErrProviderUnavailable
	}
	if req.Count <= 0 {
		req.Count = defaultCount
	}
	if req.Category == "" {
		return nil, question.NewValidationError("category is required")
	}
	if req.Difficulty == "" {
		req.Difficulty = string(question.DifficultyMedium)
	}

	generated, err := s.provider.SendPrompt(ctx, systemPrompt, BuildUserPrompt(req))
	if err != nil {
		return nil, err
	}

	created := make([]*question.Question, 0, len(generated))
	for _, g := range generated {
		q, err := s.questions.Create(ctx, createdBy, question.QuestionInput{
			Question:      g.Question,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Category:      req.Category,
			Difficulty:    req.Difficulty,
		})
		if err != nil {
			if question.IsValidationError(err) {
				log.WithError(err).Warn("Skipping invalid generated question")
				continue
			}
			return nil, err
		}
		created = append(created, q)
	}

	return created, nil
}
