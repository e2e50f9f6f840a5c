package question

import (
	"testing"

	"gorm.io/datatypes"
)

func validQuestion() *Question {
	return &Question{
		Question:      "What is the capital of France?",
		Options:       datatypes.JSONSlice[string]{"Paris", "London", "Berlin", "Madrid"},
		CorrectAnswer: 0,
		Category:      "Geography",
		Difficulty:    DifficultyEasy,
	}
}

func TestValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		q := validQuestion()
		q.Normalize()
		if err := q.Validate(); err != nil {
			t.Errorf("Validate failed for a valid question: %v", err)
		}
	})

	t.Run("CorrectAnswerOutOfBounds", func(t *testing.T) {
		q := validQuestion()
		q.Options = datatypes.JSONSlice[string]{"a", "b"}
		q.CorrectAnswer = 2
		q.Normalize()
		if err := q.Validate(); err == nil {
			t.Error("Validate should reject correctAnswer == len(options)")
		}
	})

	t.Run("NegativeCorrectAnswer", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = -1
		q.Normalize()
		if err := q.Validate(); err == nil {
			t.Error("Validate should reject a negative correctAnswer")
		}
	})

	t.Run("EmptyQuestionAfterTrim", func(t *testing.T) {
		q := validQuestion()
		q.Question = "   "
		q.Normalize()
		if err := q.Validate(); err == nil {
			t.Error("Validate should reject a question that is empty after trimming")
		}
	})

	t.Run("EmptyOptionAfterTrim", func(t *testing.T) {
		q := validQuestion()
		q.Options = datatypes.JSONSlice[string]{"Paris", "  ", "Berlin"}
		q.Normalize()
		if err := q.Validate(); err == nil {
			t.Error("Validate should reject an option that is empty after trimming")
		}
	})

	t.Run("MissingCategory", func(t *testing.T) {
		q := validQuestion()
		q.Category = ""
		q.Normalize()
		if err := q.Validate(); err == nil {
			t.Error("Validate should reject an empty category")
		}
	})

	t.Run("UnknownDifficulty", func(t *testing.T) {
		q := validQuestion()
		q.Difficulty = "impossible"
		q.Normalize()
		if err := q.Validate(); err == nil {
			t.Error("Validate should reject an unknown difficulty")
		}
	})

	t.Run("ValidationErrorType", func(t *testing.T) {
		q := validQuestion()
		q.CorrectAnswer = 99
		q.Normalize()
		err := q.Validate()
		if !IsValidationError(err) {
			t.Errorf("Expected a *ValidationError, got %T", err)
		}
	})
}

func TestNormalizeDefaults(t *testing.T) {
	q := validQuestion()
	q.Title = ""
	q.Difficulty = ""
	q.Options = datatypes.JSONSlice[string]{" Paris ", "London"}

	q.Normalize()

	if q.Title != DefaultTitle {
		t.Errorf("Title default not applied, got %q", q.Title)
	}
	if q.Difficulty != DifficultyMedium {
		t.Errorf("Difficulty default not applied, got %q", q.Difficulty)
	}
	if q.Options[0] != "Paris" {
		t.Errorf("Options were not trimmed, got %q", q.Options[0])
	}
}
