package question

import "strings"

// Normalize trims the free-text fields and applies defaults, mirroring
// what the persistence schema would otherwise do implicitly.
func (q *Question) Normalize() {
	q.Title = strings.TrimSpace(q.Title)
	if q.Title == "" {
		q.Title = DefaultTitle
	}
	q.Question = strings.TrimSpace(q.Question)
	q.Category = strings.TrimSpace(q.Category)
	for i, opt := range q.Options {
		q.Options[i] = strings.TrimSpace(opt)
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}
}

// Validate enforces the write invariants. It is called on every create and
// update before the record reaches the store.
func (q *Question) Validate() error {
	if q.Question == "" {
		return NewValidationError("question text is required")
	}
	if q.Category == "" {
		return NewValidationError("category is required")
	}
	if len(q.Options) == 0 {
		return NewValidationError("options must not be empty")
	}
	for _, opt := range q.Options {
		if opt == "" {
			return NewValidationError("options must not contain empty entries")
		}
	}
	if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
		return NewValidationError("correct answer index must be within options array bounds")
	}
	switch q.Difficulty {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
	default:
		return NewValidationError("difficulty must be one of easy, medium, hard")
	}
	return nil
}
