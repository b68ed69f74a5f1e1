package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/tuition/events/model"
	userDTO "github.com/sam002696/tuition-management-backend/internals/features/users/user/dto"
)

// ================== REQUEST ==================

type CreateEventRequest struct {
	StudentID   uuid.UUID `json:"student_id" validate:"required"`
	Title       string    `json:"title" validate:"required,max=255"`
	Description *string   `json:"description"`
	ScheduledAt time.Time `json:"scheduled_at" validate:"required"`
}

type RespondEventRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

// ================== RESPONSE ==================

type EventResponse struct {
	ID          uuid.UUID            `json:"id"`
	TeacherID   uuid.UUID            `json:"teacher_id"`
	StudentID   uuid.UUID            `json:"student_id"`
	Title       string               `json:"title"`
	Description *string              `json:"description,omitempty"`
	ScheduledAt time.Time            `json:"scheduled_at"`
	Status      string               `json:"status"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Teacher     *userDTO.UserSummary `json:"teacher,omitempty"`
	Student     *userDTO.UserSummary `json:"student,omitempty"`
}

func ToEventResponse(m *model.TuitionEventModel) *EventResponse {
	return &EventResponse{
		ID:          m.ID,
		TeacherID:   m.TeacherID,
		StudentID:   m.StudentID,
		Title:       m.Title,
		Description: m.Description,
		ScheduledAt: m.ScheduledAt,
		Status:      m.Status,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Teacher:     userDTO.ToUserSummary(m.Teacher),
		Student:     userDTO.ToUserSummary(m.Student),
	}
}

func ToEventResponseList(models []model.TuitionEventModel) []EventResponse {
	result := make([]EventResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToEventResponse(&models[i]))
	}
	return result
}
