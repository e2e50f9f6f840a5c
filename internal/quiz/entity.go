package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuizHistory is one completed attempt. Records are append-only: nothing in
// the exposed contract mutates or deletes them. QuizID references the first
// sampled question of the attempt, which is how the wire contract identifies
// a quiz.
type QuizHistory struct {
	ID             uuid.UUID                 `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID         uuid.UUID                 `gorm:"type:uuid;not null;index" json:"user"`
	QuizID         uuid.UUID                 `gorm:"type:uuid;not null" json:"quiz"`
	Score          int                       `gorm:"not null" json:"score"`
	TotalQuestions int                       `gorm:"not null" json:"totalQuestions"`
	Answers        datatypes.JSONSlice[*int] `gorm:"type:jsonb;not null" json:"answers"`
	Date           time.Time                 `gorm:"autoCreateTime" json:"date"`
}
