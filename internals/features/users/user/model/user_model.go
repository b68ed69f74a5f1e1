package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sam002696/tuition-management-backend/internals/constants"
)

// UserModel represents the users table. custom_id is the human-shareable
// lookup key (role prefix + phone number), set once and immutable.
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone     *string   `gorm:"size:30;uniqueIndex" json:"phone,omitempty"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	CustomID  *string   `gorm:"size:40;uniqueIndex" json:"custom_id,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// DeriveCustomID builds the role-prefixed id ("T"+phone for teachers,
// "S"+phone for students). Nil when the phone is missing or the role is
// outside the known set.
func DeriveCustomID(role string, phone *string) *string {
	if phone == nil || *phone == "" {
		return nil
	}
	var prefix string
	switch role {
	case constants.RoleTeacher:
		prefix = "T"
	case constants.RoleStudent:
		prefix = "S"
	default:
		return nil
	}
	id := prefix + *phone
	return &id
}

// BackfillCustomIDs fills custom_id for legacy rows that predate the
// derivation rule. Existing values are never rewritten.
func BackfillCustomIDs(db *gorm.DB) error {
	var users []UserModel
	if err := db.Where("custom_id IS NULL").Find(&users).Error; err != nil {
		return err
	}
	for i := range users {
		u := &users[i]
		customID := DeriveCustomID(u.Role, u.Phone)
		if customID == nil {
			continue
		}
		if err := db.Model(u).Update("custom_id", *customID).Error; err != nil {
			return err
		}
	}
	return nil
}
