package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

// UserService handles account-level operations that span the user and task
// stores. Tasks hold a weak reference to their owner, so deletion order
// matters: the user goes first (revoking all outstanding tokens via the
// authenticator's live-user check), then the tasks are swept.
type UserService struct {
	userStore store.UserStore
	taskStore store.TaskStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService with the given dependencies.
func NewUserService(userStore store.UserStore, taskStore store.TaskStore, logger *slog.Logger) *UserService {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserService{
		userStore: userStore,
		taskStore: taskStore,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// DeleteAccount removes a user and cascades over their tasks. The two
// deletes are not transactional: if the task sweep fails after the user is
// gone, the orphaned tasks are unreachable anyway because authentication
// for that user always fails.
func (s *UserService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := s.userStore.Delete(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	removed, err := s.taskStore.DeleteByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("user deleted but task cleanup failed",
			"error", err,
			"user_id", userID)
		return fmt.Errorf("failed to delete user tasks: %w", err)
	}

	s.logger.Info("account deleted",
		"user_id", userID,
		"tasks_removed", removed)
	return nil
}
