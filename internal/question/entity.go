package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

const DefaultTitle = "Quiz"

type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title         string                      `gorm:"type:text;not null;default:'Quiz'" json:"title"`
	Question      string                      `gorm:"type:text;not null" json:"question"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer int                         `gorm:"not null" json:"correctAnswer"`
	Category      string                      `gorm:"type:text;not null;index" json:"category"`
	Difficulty    Difficulty                  `gorm:"type:text;not null;default:'medium'" json:"difficulty"`
	CreatedBy     uuid.UUID                   `gorm:"type:uuid;not null;index" json:"createdBy"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}
