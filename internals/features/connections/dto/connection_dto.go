package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/connections/model"
	userDTO "github.com/sam002696/tuition-management-backend/internals/features/users/user/dto"
)

// ================== REQUEST ==================

type SendRequest struct {
	CustomID         string     `json:"custom_id" validate:"required"`
	TuitionDetailsID *uuid.UUID `json:"tuition_details_id" validate:"omitempty"`
}

type RespondRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

type CheckStatusRequest struct {
	CustomID string `json:"custom_id" validate:"required"`
}

type FindStudentRequest struct {
	CustomID string `json:"custom_id" validate:"required"`
}

// ================== RESPONSE ==================

type ConnectionResponse struct {
	ID               uuid.UUID            `json:"id"`
	TeacherID        uuid.UUID            `json:"teacher_id"`
	StudentID        uuid.UUID            `json:"student_id"`
	TuitionDetailsID *uuid.UUID           `json:"tuition_details_id,omitempty"`
	Status           string               `json:"status"`
	IsActive         bool                 `json:"is_active"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
	Teacher          *userDTO.UserSummary `json:"teacher,omitempty"`
	Student          *userDTO.UserSummary `json:"student,omitempty"`
}

type ConnectionCounts struct {
	Active   int64 `json:"active"`
	Inactive int64 `json:"inactive"`
	Pending  int64 `json:"pending"`
}

// ================ CONVERSION =================

func ToConnectionResponse(m *model.ConnectionRequestModel) *ConnectionResponse {
	return &ConnectionResponse{
		ID:               m.ID,
		TeacherID:        m.TeacherID,
		StudentID:        m.StudentID,
		TuitionDetailsID: m.TuitionDetailsID,
		Status:           m.Status,
		IsActive:         m.IsActive,
		CreatedAt:        m.CreatedAt,
		UpdatedAt:        m.UpdatedAt,
		Teacher:          userDTO.ToUserSummary(m.Teacher),
		Student:          userDTO.ToUserSummary(m.Student),
	}
}

func ToConnectionResponseList(models []model.ConnectionRequestModel) []ConnectionResponse {
	result := make([]ConnectionResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToConnectionResponse(&models[i]))
	}
	return result
}
