package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification type tags.
const (
	TypeConnectionRequest = "connection_request"
	TypeTuitionEvent      = "tuition_event"
)

// NotificationModel is the persisted inbox entry; the realtime push copy
// goes out through the dispatcher.
type NotificationModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         string     `gorm:"type:varchar(40);not null" json:"type"`
	Title        string     `gorm:"size:255;not null" json:"title"`
	Body         string     `gorm:"type:text;not null" json:"body"`
	EntityID     uuid.UUID  `gorm:"type:uuid;not null" json:"entity_id"`
	AudienceRole string     `gorm:"type:varchar(20);not null" json:"audience_role"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
