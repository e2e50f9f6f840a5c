package quiz

import (
	"context"
	"time"

	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// quizSize is how many questions one attempt presents. When the pool is
// smaller, every available question is used.
const quizSize = 10

type Service interface {
	StartQuiz(ctx context.Context) ([]QuestionView, error)
	SubmitHistory(ctx context.Context, userID uuid.UUID, input SubmitHistoryInput) (*QuizHistory, error)
	HistoryForUser(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error)
	AllHistory(ctx context.Context) ([]HistoryEntry, error)
}

type service struct {
	repo      Repository
	questions question.Service
}

func NewService(repo Repository, questions question.Service) Service {
	return &service{
		repo:      repo,
		questions: questions,
	}
}

func (s *service) StartQuiz(ctx context.Context) ([]QuestionView, error) {
	log := config.WithContext(ctx)

	sampled, err := s.questions.Sample(ctx, quizSize)
	if err != nil {
		log.WithError(err).Warn("Failed to assemble quiz session")
		return nil, err
	}

	views := make([]QuestionView, len(sampled))
	for i, q := range sampled {
		views[i] = NewQuestionView(q)
	}

	log.WithField("count", len(views)).Info("Quiz session assembled")
	return views, nil
}

func validateSubmission(input SubmitHistoryInput) error {
	if input.TotalQuestions < 1 {
		return question.NewValidationError("totalQuestions must be at least 1")
	}
	if len(input.Answers) != input.TotalQuestions {
		return question.NewValidationError("answers length must equal totalQuestions")
	}
	if input.Score < 0 || input.Score > input.TotalQuestions {
		return question.NewValidationError("score must be between 0 and totalQuestions")
	}
	return nil
}

func (s *service) SubmitHistory(ctx context.Context, userID uuid.UUID, input SubmitHistoryInput) (*QuizHistory, error) {
	log := config.WithContext(ctx)

	quizID, err := uuid.Parse(input.QuizID)
	if err != nil {
		return nil, question.NewValidationError("invalid quizId")
	}
	if err := validateSubmission(input); err != nil {
		log.WithError(err).Warn("Rejected invalid quiz submission")
		return nil, err
	}

	history := &QuizHistory{
		ID:             uuid.New(),
		UserID:         userID,
		QuizID:         quizID,
		Score:          input.Score,
		TotalQuestions: input.TotalQuestions,
		Answers:        datatypes.JSONSlice[*int](input.Answers),
		Date:           time.Now(),
	}

	if err := s.repo.Create(history); err != nil {
		log.WithError(err).Error("Failed to record quiz history")
		return nil, err
	}

	log.WithField("history_id", history.ID.String()).Info("Quiz history recorded")
	return history, nil
}

func (s *service) HistoryForUser(ctx context.Context, userID uuid.UUID) ([]HistoryEntry, error) {
	entries, err := s.repo.ListByUser(userID)
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list quiz history")
		return nil, err
	}
	return entries, nil
}

func (s *service) AllHistory(ctx context.Context) ([]HistoryEntry, error) {
	entries, err := s.repo.ListAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list all quiz history")
		return nil, err
	}
	return entries, nil
}
