package memory

import (
	"context"
	"crypto/rand"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// TaskStore is an in-memory implementation of store.TaskStore.
//
// Task IDs are ULIDs drawn from a monotonic entropy source. The source is
// only touched under the write lock, so concurrent creations always get
// distinct, strictly increasing IDs. IDs are never derived from wall-clock
// time alone.
type TaskStore struct {
	mu      sync.RWMutex
	tasks   map[ulid.ULID]domain.Task
	order   []ulid.ULID // insertion order for listings
	entropy *ulid.MonotonicEntropy
}

var _ store.TaskStore = (*TaskStore)(nil)

// NewTaskStore creates an empty in-memory task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{
		tasks:   make(map[ulid.ULID]domain.Task),
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Create validates the task, assigns a fresh ULID, and appends it to the
// store. Returns store.ErrInvalidEntity wrapping the domain error when
// title, description, or owner are missing.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	if err := task.Validate(); err != nil {
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(time.Now().UTC()), s.entropy)
	if err != nil {
		return fmt.Errorf("generate task id: %w", err)
	}
	task.ID = id

	s.tasks[id] = *task
	s.order = append(s.order, id)
	return nil
}

// GetByID retrieves a task by ID, filtered by ownership. A task owned by a
// different user yields the same store.ErrTaskNotFound as a missing one.
func (s *TaskStore) GetByID(ctx context.Context, id ulid.ULID, ownerID uuid.UUID) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}
	return &task, nil
}

// ListByOwner returns the owner's tasks in insertion order. The result is
// never nil, so an empty listing serializes as [] rather than null.
func (s *TaskStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]*domain.Task, 0)
	for _, id := range s.order {
		task, ok := s.tasks[id]
		if !ok || task.OwnerID != ownerID {
			continue
		}
		t := task
		tasks = append(tasks, &t)
	}
	return tasks, nil
}

// Update merges the provided fields into the stored task. The incoming
// field set is validated in full before any state change: an out-of-enum
// status fails with domain.ErrInvalidStatus and the record keeps its prior
// values. UpdatedAt is refreshed on success.
func (s *TaskStore) Update(
	ctx context.Context,
	id ulid.ULID,
	ownerID uuid.UUID,
	params store.UpdateTaskParams,
) (*domain.Task, error) {
	// Validate before taking the lock; nothing here depends on store state.
	if params.Status != nil && !domain.Status(*params.Status).Valid() {
		return nil, domain.ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return nil, store.ErrTaskNotFound
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Status != nil {
		task.Status = domain.Status(*params.Status)
	}
	task.UpdatedAt = time.Now().UTC()

	s.tasks[id] = task
	return &task, nil
}

// Delete removes a task only if both id and ownership match.
func (s *TaskStore) Delete(ctx context.Context, id ulid.ULID, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task, ok := s.tasks[id]
	if !ok || task.OwnerID != ownerID {
		return store.ErrTaskNotFound
	}

	delete(s.tasks, id)
	s.removeFromOrder(id)
	return nil
}

// DeleteByOwner removes all tasks owned by ownerID.
func (s *TaskStore) DeleteByOwner(ctx context.Context, ownerID uuid.UUID) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	kept := s.order[:0]
	for _, id := range s.order {
		if task, ok := s.tasks[id]; ok && task.OwnerID == ownerID {
			delete(s.tasks, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.order = kept
	return removed, nil
}

// removeFromOrder drops a single id from the insertion-order slice.
// Caller must hold the write lock.
func (s *TaskStore) removeFromOrder(id ulid.ULID) {
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}
