package quiz

import (
	"testing"

	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

func intPtr(v int) *int { return &v }

func questionsWithAnswers(correct ...int) []*question.Question {
	questions := make([]*question.Question, len(correct))
	for i, c := range correct {
		questions[i] = &question.Question{
			ID:            uuid.New(),
			Question:      "q",
			Options:       datatypes.JSONSlice[string]{"a", "b", "c", "d"},
			CorrectAnswer: c,
			Category:      "test",
			Difficulty:    question.DifficultyMedium,
		}
	}
	return questions
}

func TestScore(t *testing.T) {
	t.Run("MixedAnswers", func(t *testing.T) {
		questions := questionsWithAnswers(1, 0, 2)
		answers := []*int{intPtr(1), nil, intPtr(2)}

		if got := Score(questions, answers); got != 2 {
			t.Errorf("Score = %d, expected 2", got)
		}
	})

	t.Run("AllUnanswered", func(t *testing.T) {
		questions := questionsWithAnswers(0, 1, 2)
		answers := []*int{nil, nil, nil}

		if got := Score(questions, answers); got != 0 {
			t.Errorf("Score = %d, expected 0", got)
		}
	})

	t.Run("AllCorrect", func(t *testing.T) {
		questions := questionsWithAnswers(0, 1, 2, 3)
		answers := []*int{intPtr(0), intPtr(1), intPtr(2), intPtr(3)}

		if got := Score(questions, answers); got != len(questions) {
			t.Errorf("Score = %d, expected %d", got, len(questions))
		}
	})

	t.Run("OutOfRangeAnswerIsJustWrong", func(t *testing.T) {
		questions := questionsWithAnswers(1)
		answers := []*int{intPtr(99)}

		if got := Score(questions, answers); got != 0 {
			t.Errorf("Score = %d, expected 0", got)
		}
	})

	t.Run("Deterministic", func(t *testing.T) {
		questions := questionsWithAnswers(1, 2, 0, 3, 1)
		answers := []*int{intPtr(1), intPtr(0), intPtr(0), nil, intPtr(1)}

		first := Score(questions, answers)
		for i := 0; i < 10; i++ {
			if got := Score(questions, answers); got != first {
				t.Fatalf("Score is not deterministic: %d != %d", got, first)
			}
		}
	})
}
