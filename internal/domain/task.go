package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

// Task validation errors
var (
	ErrEmptyTaskTitle       = errors.New("task title cannot be empty")
	ErrEmptyTaskDescription = errors.New("task description cannot be empty")
	ErrEmptyTaskOwner       = errors.New("task owner cannot be empty")
	ErrInvalidStatus        = errors.New("invalid status")
)

// Status is the closed set of task states.
type Status string

// Valid task statuses. A task always starts in StatusTodo.
const (
	StatusTodo       Status = "todo"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
)

// Valid reports whether s is a member of the closed status set.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Task represents a single task record owned by exactly one user.
// The ID is assigned by the task store on creation; it is a ULID so that
// concurrently created tasks get distinct, roughly time-ordered identifiers.
type Task struct {
	ID          ulid.ULID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      Status    `json:"status"`
	OwnerID     uuid.UUID `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewTask creates a new Task owned by ownerID with the initial status
// StatusTodo. The ID field is left zero; the store assigns it on Create.
// Returns an error if validation fails.
func NewTask(title, description string, ownerID uuid.UUID) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      StatusTodo,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
func (t *Task) Validate() error {
	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if t.Description == "" {
		return ErrEmptyTaskDescription
	}

	if t.OwnerID == uuid.Nil {
		return ErrEmptyTaskOwner
	}

	if !t.Status.Valid() {
		return ErrInvalidStatus
	}

	return nil
}
