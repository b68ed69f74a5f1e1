package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/home/notifications/model"
)

type NotificationResponse struct {
	ID           uuid.UUID  `json:"id"`
	Type         string     `json:"type"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	EntityID     uuid.UUID  `json:"entity_id"`
	AudienceRole string     `json:"audience_role"`
	ReadAt       *time.Time `json:"read_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		ID:           m.ID,
		Type:         m.Type,
		Title:        m.Title,
		Body:         m.Body,
		EntityID:     m.EntityID,
		AudienceRole: m.AudienceRole,
		ReadAt:       m.ReadAt,
		CreatedAt:    m.CreatedAt,
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificationResponse(&models[i]))
	}
	return result
}
