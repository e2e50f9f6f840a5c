package user

import (
	"time"

	"github.com/abaakil35/Qiuz-App/internal/auth"
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username     string    `gorm:"type:text;not null;uniqueIndex" json:"username"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"type:text" json:"-"`
	Role         string    `gorm:"type:text;not null;default:'user'" json:"role"`
	// Google refresh token, AES-GCM encrypted before it touches the store.
	GoogleRefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt          time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == auth.RoleAdmin
}
