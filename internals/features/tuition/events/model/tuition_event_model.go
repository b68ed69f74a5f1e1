package model

import (
	"time"

	"github.com/google/uuid"

	userModel "github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
)

// Stored event statuses. started/completed are set by the session
// lifecycle outside this API; the student respond flow only moves
// pending → accepted | rejected.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusStarted   = "started"
	StatusCompleted = "completed"
)

type TuitionEventModel struct {
	ID          uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null;index" json:"teacher_id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;index" json:"student_id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ScheduledAt time.Time `gorm:"not null;index" json:"scheduled_at"`
	Status      string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Teacher *userModel.UserModel `gorm:"foreignKey:TeacherID;constraint:OnDelete:CASCADE" json:"teacher,omitempty"`
	Student *userModel.UserModel `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"student,omitempty"`
}

func (TuitionEventModel) TableName() string {
	return "tuition_events"
}

func IsRespondStatus(status string) bool {
	return status == StatusAccepted || status == StatusRejected
}
