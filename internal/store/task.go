package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/taskslite/tasks-lite-api/internal/domain"
)

// UpdateTaskParams carries the optional fields of a partial task update.
// A nil field is left unchanged.
type UpdateTaskParams struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskStore defines the interface for task data persistence. Every read or
// mutation is scoped to an owner: a task belonging to another user is
// indistinguishable from a non-existent one.
type TaskStore interface {
	// Create saves a new task and assigns its ID. ID generation is owned by
	// the store and is collision-free under concurrent creation.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by ID, filtered by ownership.
	// Returns ErrTaskNotFound if the task does not exist or is owned by
	// another user.
	GetByID(ctx context.Context, id ulid.ULID, ownerID uuid.UUID) (*domain.Task, error)

	// ListByOwner returns all tasks owned by ownerID in insertion order.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error)

	// Update merges the provided fields into the task identified by id,
	// if it is owned by ownerID. The full field set is validated before any
	// state change: an out-of-enum status fails with domain.ErrInvalidStatus
	// and leaves the record untouched. UpdatedAt is refreshed on success.
	Update(ctx context.Context, id ulid.ULID, ownerID uuid.UUID, params UpdateTaskParams) (*domain.Task, error)

	// Delete removes a task only if both id and ownership match.
	// Returns ErrTaskNotFound otherwise.
	Delete(ctx context.Context, id ulid.ULID, ownerID uuid.UUID) error

	// DeleteByOwner removes all tasks owned by ownerID and reports how many
	// were removed. Used when an account is deleted.
	DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error)
}
