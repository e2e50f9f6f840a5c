package quiz

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(h *QuizHistory) error
	ListByUser(userID uuid.UUID) ([]HistoryEntry, error)
	ListAll() ([]HistoryEntry, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(h *QuizHistory) error {
	return r.db.Create(h).Error
}

// Left joins: a deleted question leaves a dangling quiz reference, and the
// history record must still come back (with an empty title).
func (r *repository) ListByUser(userID uuid.UUID) ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := r.db.
		Table("quiz_histories").
		Select("quiz_histories.*, questions.title AS quiz_title").
		Joins("LEFT JOIN questions ON questions.id = quiz_histories.quiz_id").
		Where("quiz_histories.user_id = ?", userID).
		Order("quiz_histories.date DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *repository) ListAll() ([]HistoryEntry, error) {
	var entries []HistoryEntry
	if err := r.db.
		Table("quiz_histories").
		Select("quiz_histories.*, questions.title AS quiz_title, users.username AS username").
		Joins("LEFT JOIN questions ON questions.id = quiz_histories.quiz_id").
		Joins("LEFT JOIN users ON users.id = quiz_histories.user_id").
		Order("quiz_histories.date DESC").
		Scan(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
