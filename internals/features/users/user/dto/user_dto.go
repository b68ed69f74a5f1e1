package dto

import (
	"github.com/google/uuid"

	"github.com/sam002696/tuition-management-backend/internals/features/users/user/model"
)

// UserResponse is the public projection of a user (no password hash).
type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Phone    *string   `json:"phone,omitempty"`
	Role     string    `json:"role"`
	CustomID *string   `json:"custom_id,omitempty"`
}

// UserSummary is the compact counterparty projection embedded in
// connection and event payloads.
type UserSummary struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	CustomID *string   `json:"custom_id,omitempty"`
}

func ToUserResponse(m *model.UserModel) *UserResponse {
	if m == nil {
		return nil
	}
	return &UserResponse{
		ID:       m.ID,
		Name:     m.Name,
		Email:    m.Email,
		Phone:    m.Phone,
		Role:     m.Role,
		CustomID: m.CustomID,
	}
}

func ToUserSummary(m *model.UserModel) *UserSummary {
	if m == nil {
		return nil
	}
	return &UserSummary{
		ID:       m.ID,
		Name:     m.Name,
		CustomID: m.CustomID,
	}
}
