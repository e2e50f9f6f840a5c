package quizclient

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

type State string

const (
	StateLoading    State = "LOADING"
	StateInProgress State = "IN_PROGRESS"
	StateSubmitting State = "SUBMITTING"
	StateResults    State = "RESULTS"
	StateError      State = "ERROR"
)

var (
	ErrWrongState      = errors.New("operation not allowed in current state")
	ErrNotAnswered     = errors.New("every question must be answered before submitting")
	ErrIndexOutOfRange = errors.New("answer index out of range")
)

// Result is what the Results state carries: the score the flow computed,
// the server-confirmed record, and per-question correctness (false whenever
// the answer key was not in hand).
type Result struct {
	Score          int
	TotalQuestions int
	Percentage     float64
	Correct        []bool
	Record         *HistoryRecord
}

// snapshot is the InProgress payload. It is replaced wholesale on every
// transition; answers are never mutated in place.
type snapshot struct {
	questions    []SessionQuestion
	currentIndex int
	answers      []*int
}

// Flow steps a single quiz attempt through
// Loading -> InProgress -> Submitting -> Results, with Error reachable from
// Loading and Submitting. The mutex serializes transitions, so a fetch
// triggered while another is in flight fails fast instead of racing it.
type Flow struct {
	client *Client

	mu      sync.Mutex
	state   State
	snap    snapshot
	result  *Result
	lastErr string
}

func NewFlow(client *Client) *Flow {
	return &Flow{
		client: client,
		state:  StateLoading,
	}
}

func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// ErrorMessage is the human-readable message the Error state displays.
func (f *Flow) ErrorMessage() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Start fetches the session questions. Legal from Loading (initial) and
// Error (retry after a failed fetch or submit).
func (f *Flow) Start(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateLoading && f.state != StateError {
		return fmt.Errorf("%w: start from %s", ErrWrongState, f.state)
	}
	f.state = StateLoading
	f.lastErr = ""

	questions, err := f.client.fetchQuestions(ctx)
	if err != nil {
		f.state = StateError
		f.lastErr = "Failed to load questions. Please try again."
		return err
	}

	f.snap = snapshot{
		questions:    questions,
		currentIndex: 0,
		answers:      make([]*int, len(questions)),
	}
	f.state = StateInProgress
	return nil
}

// Retry re-enters Loading from the Error state.
func (f *Flow) Retry(ctx context.Context) error {
	return f.Start(ctx)
}

func (f *Flow) CurrentQuestion() (SessionQuestion, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateInProgress {
		return SessionQuestion{}, 0, fmt.Errorf("%w: current question in %s", ErrWrongState, f.state)
	}
	return f.snap.questions[f.snap.currentIndex], f.snap.currentIndex, nil
}

// Select records an answer for the current question. Re-selecting simply
// overwrites the previous choice.
func (f *Flow) Select(answerIndex int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateInProgress {
		return fmt.Errorf("%w: select in %s", ErrWrongState, f.state)
	}
	current := f.snap.questions[f.snap.currentIndex]
	if answerIndex < 0 || answerIndex >= len(current.Options) {
		return ErrIndexOutOfRange
	}

	answers := make([]*int, len(f.snap.answers))
	copy(answers, f.snap.answers)
	selected := answerIndex
	answers[f.snap.currentIndex] = &selected

	f.snap = snapshot{
		questions:    f.snap.questions,
		currentIndex: f.snap.currentIndex,
		answers:      answers,
	}
	return nil
}

func (f *Flow) Next() error {
	return f.move(1)
}

func (f *Flow) Prev() error {
	return f.move(-1)
}

// move clamps navigation to the question range and never touches answers.
func (f *Flow) move(delta int) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateInProgress {
		return fmt.Errorf("%w: navigate in %s", ErrWrongState, f.state)
	}
	next := f.snap.currentIndex + delta
	if next < 0 || next >= len(f.snap.questions) {
		return nil
	}
	f.snap = snapshot{
		questions:    f.snap.questions,
		currentIndex: next,
		answers:      f.snap.answers,
	}
	return nil
}

func (f *Flow) Answers() []*int {
	f.mu.Lock()
	defer f.mu.Unlock()

	answers := make([]*int, len(f.snap.answers))
	copy(answers, f.snap.answers)
	return answers
}

// CanSubmit reports whether every question has an answer.
func (f *Flow) CanSubmit() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateInProgress || len(f.snap.answers) == 0 {
		return false
	}
	for _, a := range f.snap.answers {
		if a == nil {
			return false
		}
	}
	return true
}

// Submit scores the attempt against whatever answer keys the session
// carries, persists the history record, and enters Results.
func (f *Flow) Submit(ctx context.Context) (*Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateInProgress {
		return nil, fmt.Errorf("%w: submit in %s", ErrWrongState, f.state)
	}
	for _, a := range f.snap.answers {
		if a == nil {
			return nil, ErrNotAnswered
		}
	}

	f.state = StateSubmitting

	correct := make([]bool, len(f.snap.questions))
	score := 0
	for i, q := range f.snap.questions {
		if q.CorrectAnswer != nil && f.snap.answers[i] != nil && *f.snap.answers[i] == *q.CorrectAnswer {
			correct[i] = true
			score++
		}
	}

	record, err := f.client.submitHistory(ctx, submitPayload{
		QuizID:         f.snap.questions[0].ID,
		Score:          score,
		TotalQuestions: len(f.snap.questions),
		Answers:        f.snap.answers,
	})
	if err != nil {
		f.state = StateError
		f.lastErr = "Failed to submit quiz. Please try again."
		return nil, err
	}

	total := len(f.snap.questions)
	f.result = &Result{
		Score:          record.Score,
		TotalQuestions: total,
		Percentage:     float64(record.Score) / float64(total) * 100,
		Correct:        correct,
		Record:         record,
	}
	f.state = StateResults
	return f.result, nil
}

func (f *Flow) Result() (*Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state != StateResults {
		return nil, fmt.Errorf("%w: result in %s", ErrWrongState, f.state)
	}
	return f.result, nil
}
