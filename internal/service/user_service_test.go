package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/taskslite/tasks-lite-api/internal/domain"
	"github.com/taskslite/tasks-lite-api/internal/platform/memory"
	"github.com/taskslite/tasks-lite-api/internal/service"
	"github.com/taskslite/tasks-lite-api/internal/store"
)

func seedUser(t *testing.T, userStore store.UserStore, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Jane", "Doe", email, "secret1")
	require.NoError(t, err)
	user.HashedPassword = "$2a$10$fakehashfortesting"
	user.Password = ""
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func seedTask(t *testing.T, taskStore store.TaskStore, title string, ownerID uuid.UUID) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, "description", ownerID)
	require.NoError(t, err)
	require.NoError(t, taskStore.Create(context.Background(), task))
	return task
}

func TestUserServiceDeleteAccountCascades(t *testing.T) {
	ctx := context.Background()
	userStore := memory.NewUserStore()
	taskStore := memory.NewTaskStore()
	svc := service.NewUserService(userStore, taskStore, nil)

	jane := seedUser(t, userStore, "jane@x.com")
	bob := seedUser(t, userStore, "bob@x.com")

	seedTask(t, taskStore, "jane-1", jane.ID)
	seedTask(t, taskStore, "jane-2", jane.ID)
	bobTask := seedTask(t, taskStore, "bob-1", bob.ID)

	require.NoError(t, svc.DeleteAccount(ctx, jane.ID))

	_, err := userStore.GetByID(ctx, jane.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	janesTasks, err := taskStore.ListByOwner(ctx, jane.ID)
	require.NoError(t, err)
	assert.Len(t, janesTasks, 0)

	// Bob's account and tasks survive.
	_, err = userStore.GetByID(ctx, bob.ID)
	assert.NoError(t, err)
	got, err := taskStore.GetByID(ctx, bobTask.ID, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "bob-1", got.Title)
}

func TestUserServiceDeleteAccountUnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := service.NewUserService(memory.NewUserStore(), memory.NewTaskStore(), nil)

	err := svc.DeleteAccount(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserServiceDeleteAccountWithNoTasks(t *testing.T) {
	ctx := context.Background()
	userStore := memory.NewUserStore()
	taskStore := memory.NewTaskStore()
	svc := service.NewUserService(userStore, taskStore, nil)

	jane := seedUser(t, userStore, "jane@x.com")
	require.NoError(t, svc.DeleteAccount(ctx, jane.ID))

	_, err := userStore.GetByID(ctx, jane.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
