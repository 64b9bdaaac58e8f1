// Package dto provides Data Transfer Objects for API requests and responses.
package dto

import (
	"time"

	"github.com/rosterhq/roster/internal/model"
	"github.com/rosterhq/roster/internal/repository"
)

// UserResponse represents a user in API responses. Timestamps serialize
// as RFC 3339 text.
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Pagination describes the windowed view returned by list endpoints.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// UserData wraps a single user payload.
type UserData struct {
	User UserResponse `json:"user"`
}

// UserListData is the data payload for the list endpoint.
type UserListData struct {
	Users      []UserResponse `json:"users"`
	Pagination Pagination     `json:"pagination"`
}

// SuccessResponse is the envelope for successful responses.
type SuccessResponse struct {
	Status string `json:"status"`
	Data   any    `json:"data"`
}

// ErrorResponse is the envelope for error responses.
type ErrorResponse struct {
	Status    string              `json:"status"`
	Message   string              `json:"message"`
	ErrorCode string              `json:"error_code"`
	Errors    map[string][]string `json:"errors,omitempty"`
}

// ToUserResponse converts a User model to its external representation.
func ToUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// ToUserListData converts a page of users plus pagination metadata.
func ToUserListData(users []model.User, p repository.Pagination) UserListData {
	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = ToUserResponse(&users[i])
	}
	return UserListData{
		Users: responses,
		Pagination: Pagination{
			Total: p.Total,
			Page:  p.Page,
			Limit: p.Limit,
			Pages: p.Pages,
		},
	}
}
