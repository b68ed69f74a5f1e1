package model

import (
	"time"

	"github.com/google/uuid"
)

// PasswordResetTokenModel stores the sha256 of an issued reset token.
// Row is marked used on a successful reset so a token cannot be replayed.
type PasswordResetTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash string     `gorm:"size:64;not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at,omitempty"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
