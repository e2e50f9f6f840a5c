package question

import (
	"context"
	"math/rand"

	"github.com/abaakil35/Qiuz-App/internal/config"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Service interface {
	List(ctx context.Context) ([]*Question, error)
	Create(ctx context.Context, createdBy uuid.UUID, input QuestionInput) (*Question, error)
	Update(ctx context.Context, id string, input QuestionInput) (*Question, error)
	Delete(ctx context.Context, id string) error
	Sample(ctx context.Context, k int) ([]*Question, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]*Question, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to list questions")
		return nil, err
	}
	return questions, nil
}

func (s *service) Create(ctx context.Context, createdBy uuid.UUID, input QuestionInput) (*Question, error) {
	log := config.WithContext(ctx)

	q := &Question{
		ID:            uuid.New(),
		Title:         input.Title,
		Question:      input.Question,
		Options:       datatypes.JSONSlice[string](input.Options),
		CorrectAnswer: input.CorrectAnswer,
		Category:      input.Category,
		Difficulty:    Difficulty(input.Difficulty),
		CreatedBy:     createdBy,
	}

	q.Normalize()
	if err := q.Validate(); err != nil {
		log.WithError(err).Warn("Rejected invalid question")
		return nil, err
	}

	if err := s.repo.Create(q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	log.WithField("question_id", q.ID.String()).Info("Question created")
	return q, nil
}

func (s *service) Update(ctx context.Context, id string, input QuestionInput) (*Question, error) {
	log := config.WithContext(ctx)

	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	q, err := s.repo.FindByID(questionID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch question for update")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}

	q.Question = input.Question
	q.Options = datatypes.JSONSlice[string](input.Options)
	q.CorrectAnswer = input.CorrectAnswer
	q.Category = input.Category
	q.Difficulty = Difficulty(input.Difficulty)
	if input.Title != "" {
		q.Title = input.Title
	}

	q.Normalize()
	if err := q.Validate(); err != nil {
		log.WithError(err).Warn("Rejected invalid question update")
		return nil, err
	}

	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}

	return q, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	log := config.WithContext(ctx)

	questionID, err := uuid.Parse(id)
	if err != nil {
		return ErrInvalidID
	}

	q, err := s.repo.FindByID(questionID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch question for delete")
		return err
	}
	if q == nil {
		return ErrQuestionNotFound
	}

	if err := s.repo.Delete(questionID); err != nil {
		log.WithError(err).Error("Failed to delete question")
		return err
	}

	log.WithField("question_id", id).Info("Question deleted")
	return nil
}

// Sample returns k uniformly random distinct questions, or every question
// when fewer than k exist. The order of the returned slice is the order the
// quiz presents and scores them in.
func (s *service) Sample(ctx context.Context, k int) ([]*Question, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		config.WithContext(ctx).WithError(err).Error("Failed to load questions for sampling")
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	shuffled := make([]*Question, len(questions))
	copy(shuffled, questions)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	if k <= 0 || k > len(shuffled) {
		k = len(shuffled)
	}
	return shuffled[:k], nil
}
