package quiz

import (
	"time"

	"github.com/abaakil35/Qiuz-App/internal/question"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionView is a question as shown to a quiz-taker: the answer key and
// the author reference never leave the server.
type QuestionView struct {
	ID         uuid.UUID           `json:"id"`
	Question   string              `json:"question"`
	Options    []string            `json:"options"`
	Category   string              `json:"category"`
	Difficulty question.Difficulty `json:"difficulty"`
}

func NewQuestionView(q *question.Question) QuestionView {
	return QuestionView{
		ID:         q.ID,
		Question:   q.Question,
		Options:    q.Options,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

type SubmitHistoryInput struct {
	QuizID         string `json:"quizId"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
	Answers        []*int `json:"answers"`
}

// HistoryEntry is a history record with its references resolved to display
// fields. Username is only populated on the admin listing.
type HistoryEntry struct {
	ID             uuid.UUID                 `gorm:"column:id" json:"id"`
	UserID         uuid.UUID                 `gorm:"column:user_id" json:"user"`
	Username       string                    `gorm:"column:username" json:"username,omitempty"`
	QuizID         uuid.UUID                 `gorm:"column:quiz_id" json:"quiz"`
	QuizTitle      string                    `gorm:"column:quiz_title" json:"quizTitle"`
	Score          int                       `gorm:"column:score" json:"score"`
	TotalQuestions int                       `gorm:"column:total_questions" json:"totalQuestions"`
	Answers        datatypes.JSONSlice[*int] `gorm:"column:answers" json:"answers"`
	Date           time.Time                 `gorm:"column:date" json:"date"`
}
