package model

import (
	"time"

	"github.com/google/uuid"

	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
)

// Connection request lifecycle: pending → accepted | rejected. An
// accepted connection stays accepted forever; disconnecting flips
// is_active to false and is terminal.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

type ConnectionRequestModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"teacher_id"`
	StudentID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"student_id"`
	TuitionDetailsID *uuid.UUID `gorm:"type:uuid" json:"tuition_details_id,omitempty"`
	Status           string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	IsActive         bool       `gorm:"not null;default:true" json:"is_active"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	Teacher *userModel.UserModel `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Student *userModel.UserModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

func (ConnectionRequestModel) TableName() string {
	return "connection_requests"
}

// IsRespondStatus reports whether a student may set this status on a
// pending request.
func IsRespondStatus(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}

// CanDisconnect reports whether the row is in the one state a teacher
// may disconnect from.
func (m *ConnectionRequestModel) CanDisconnect() bool {
	return m.Status == StatusAccepted && m.IsActive
}
