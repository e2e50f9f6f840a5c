package aiquiz

import (
	"context"
	"errors"
	"testing"

	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type stubProvider struct {
	questions []GeneratedQuestion
	err       error
}

func (s *stubProvider) SendPrompt(ctx context.Context, system, user string) ([]GeneratedQuestion, error) {
	return s.questions, s.err
}

type recordingQuestionService struct {
	question.Service
	created []question.QuestionInput
}

func (r *recordingQuestionService) Create(ctx context.Context, createdBy uuid.UUID, input question.QuestionInput) (*question.Question, error) {
	q := &question.Question{
		ID:            uuid.New(),
		Question:      input.Question,
		Options:       datatypes.JSONSlice[string](input.Options),
		CorrectAnswer: input.CorrectAnswer,
		Category:      input.Category,
		Difficulty:    question.Difficulty(input.Difficulty),
		CreatedBy:     createdBy,
	}
	q.Normalize()
	if err := q.Validate(); err != nil {
		return nil, err
	}
	r.created = append(r.created, input)
	return q, nil
}

func TestGenerateQuestions(t *testing.T) {
	t.Run("PersistsValidQuestions", func(t *testing.T) {
		provider := &stubProvider{questions: []GeneratedQuestion{
			{Question: "What is 2 + 2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: 1},
			{Question: "What is 3 + 3?", Options: []string{"5", "6", "7", "8"}, CorrectAnswer: 1},
		}}
		recorder := &recordingQuestionService{}
		svc := NewService(provider, recorder)

		created, err := svc.GenerateQuestions(context.Background(), uuid.New(), GenerateRequest{
			Category: "Math",
		})
		if err != nil {
			t.Fatalf("GenerateQuestions failed: %v", err)
		}
		if len(created) != 2 {
			t.Errorf("Expected 2 created questions, got %d", len(created))
		}
		for _, input := range recorder.created {
			if input.Category != "Math" {
				t.Errorf("Category not applied to generated question, got %q", input.Category)
			}
			if input.Difficulty != string(question.DifficultyMedium) {
				t.Errorf("Difficulty default not applied, got %q", input.Difficulty)
			}
		}
	})

	t.Run("SkipsInvalidGeneratedQuestions", func(t *testing.T) {
		provider := &stubProvider{questions: []GeneratedQuestion{
			{Question: "Broken", Options: []string{"a", "b"}, CorrectAnswer: 7},
			{Question: "Fine", Options: []string{"a", "b"}, CorrectAnswer: 0},
		}}
		recorder := &recordingQuestionService{}
		svc := NewService(provider, recorder)

		created, err := svc.GenerateQuestions(context.Background(), uuid.New(), GenerateRequest{
			Category: "Math",
		})
		if err != nil {
			t.Fatalf("GenerateQuestions failed: %v", err)
		}
		if len(created) != 1 {
			t.Errorf("Expected the invalid question to be skipped, got %d created", len(created))
		}
	})

	t.Run("MissingCategory", func(t *testing.T) {
		svc := NewService(&stubProvider{}, &recordingQuestionService{})
		if _, err := svc.GenerateQuestions(context.Background(), uuid.New(), GenerateRequest{}); !question.IsValidationError(err) {
			t.Errorf("Expected ValidationError, got %v", err)
		}
	})

	t.Run("NilProvider", func(t *testing.T) {
		svc := NewService(nil, &recordingQuestionService{})
		_, err := svc.GenerateQuestions(context.Background(), uuid.New(), GenerateRequest{Category: "Math"})
		if !errors.Is(err, ErrProviderUnavailable) {
			t.Errorf("Expected ErrProviderUnavailable, got %v", err)
		}
	})
}

func TestParseQuestions(t *testing.T) {
	t.Run("PlainJSON", func(t *testing.T) {
		questions, err := parseQuestions(`[{"question":"q","options":["a","b"],"correctAnswer":1}]`)
		if err != nil {
			t.Fatalf("parseQuestions failed: %v", err)
		}
		if len(questions) != 1 || questions[0].CorrectAnswer != 1 {
			t.Errorf("Unexpected parse result: %+v", questions)
		}
	})

	t.Run("FencedJSON", func(t *testing.T) {
		raw := "```json\n[{\"question\":\"q\",\"options\":[\"a\",\"b\"],\"correctAnswer\":0}]\n```"
		questions, err := parseQuestions(raw)
		if err != nil {
			t.Fatalf("parseQuestions failed on fenced JSON: %v", err)
		}
		if len(questions) != 1 {
			t.Errorf("Expected 1 question, got %d", len(questions))
		}
	})

	t.Run("Garbage", func(t *testing.T) {
		if _, err := parseQuestions("not json at all"); err == nil {
			t.Error("parseQuestions should fail on non-JSON input")
		}
	})
}
