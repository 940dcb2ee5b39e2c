package api

import (
	"time"

	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/service/auth"
)

// Common request/response structures. Field names follow the wire format of
// the public API (camelCase).

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName"  validate:"required"`
	Email     string `json:"email"     validate:"required,email"`
	Password  string `json:"password"  validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateTaskRequest defines the payload for task creation.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description" validate:"required"`
}

// UpdateTaskRequest defines the payload for a partial task update. Absent
// fields are left unchanged; the status enum is validated by the task store
// before any field is merged.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Status      *string `json:"status,omitempty"`
}

// UserResponse is the public view of a user: never the password hash.
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// AuthData is the success payload of the registration and login endpoints.
type AuthData struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expiresIn"`
}

// ProfileData wraps the authenticated identity for the profile endpoint.
type ProfileData struct {
	User UserResponse `json:"user"`
}

// TaskResponse is the wire form of a task record.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	UserID      string    `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

func authResultToData(result *auth.AuthResult) AuthData {
	return AuthData{
		User:      userToResponse(result.User),
		Token:     result.Token,
		ExpiresIn: int64(result.ExpiresIn.Seconds()),
	}
}

func taskToResponse(task *domain.Task) TaskResponse {
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		UserID:      task.OwnerID.String(),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func tasksToResponse(tasks []*domain.Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, taskToResponse(t))
	}
	return out
}
