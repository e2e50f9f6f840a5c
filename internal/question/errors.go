package question

import "errors"

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidID        = errors.New("invalid id format")
	ErrNoQuestions      = errors.New("no questions available")
)

// ValidationError marks input that breaks a question invariant. Handlers
// surface it as a client error and never retry.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
